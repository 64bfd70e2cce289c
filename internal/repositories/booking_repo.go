package repositories

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"sync"

	"busboard/internal/domain"
	"busboard/internal/domain/models"
	"busboard/internal/storage"
	"busboard/internal/utils"
)

// DefaultStoreKey is the single fixed key the whole store blob lives under.
const DefaultStoreKey = "busboard:store"

// BookingRepo persists the booking store as one JSON blob behind a KV
// surface. Every mutation is a full read-modify-write of the blob,
// serialized by an in-process mutex; concurrent writers in other processes
// remain a documented limitation of the single-writer design.
//
// When the surface errors on first access the repo silently degrades to a
// process-lifetime in-memory store. The decision is cached so a dead
// surface is not probed on every call.
type BookingRepo struct {
	KV  storage.KV
	Key string

	mu        sync.Mutex
	probeOnce sync.Once
	fallback  *storage.MemoryStore
}

func NewBookingRepo(kv storage.KV) *BookingRepo {
	return &BookingRepo{KV: kv, Key: DefaultStoreKey}
}

func (r *BookingRepo) key() string {
	if r.Key != "" {
		return r.Key
	}
	return DefaultStoreKey
}

// surface returns the live KV, switching permanently to the in-memory
// fallback when the configured surface proves unusable.
func (r *BookingRepo) surface() storage.KV {
	r.probeOnce.Do(func() {
		if r.KV == nil {
			utils.LogEvent("", "repo", "fallback", "no store surface configured, using in-memory store")
			r.fallback = storage.NewMemoryStore()
			return
		}
		if _, err := r.KV.Get(r.key()); err != nil && !errors.Is(err, storage.ErrKeyNotFound) {
			utils.LogEvent("", "repo", "fallback", "store surface unusable, using in-memory store: "+err.Error())
			r.fallback = storage.NewMemoryStore()
		}
	})
	if r.fallback != nil {
		return r.fallback
	}
	return r.KV
}

// UsingFallback reports whether the repo degraded to the in-memory store.
func (r *BookingRepo) UsingFallback() bool {
	r.surface()
	return r.fallback != nil
}

// rawStore defers field decoding so shape problems can be detected per
// field instead of duck-typed away.
type rawStore struct {
	Bookings           json.RawMessage `json:"bookings"`
	LastSequenceNumber json.RawMessage `json:"lastSequenceNumber"`
}

func decodeStore(data []byte) (models.Store, error) {
	var raw rawStore
	if err := json.Unmarshal(data, &raw); err != nil {
		return models.Store{}, domain.PersistenceError{Kind: domain.PersistenceCorrupt, Msg: "store blob is not an object", Err: err}
	}
	out := models.Store{Bookings: []models.Booking{}}
	if len(raw.Bookings) > 0 {
		if err := json.Unmarshal(raw.Bookings, &out.Bookings); err != nil {
			return models.Store{}, domain.PersistenceError{Kind: domain.PersistenceCorrupt, Msg: "bookings is not an array of records", Err: err}
		}
	}
	if len(raw.LastSequenceNumber) > 0 {
		if err := json.Unmarshal(raw.LastSequenceNumber, &out.LastSequenceNumber); err != nil {
			return models.Store{}, domain.PersistenceError{Kind: domain.PersistenceCorrupt, Msg: "lastSequenceNumber is not numeric", Err: err}
		}
	}
	if out.Bookings == nil {
		out.Bookings = []models.Booking{}
	}
	return out, nil
}

// LoadAll reads the persisted store. An absent blob yields an empty store;
// a corrupt blob is discarded with a logged warning and also yields an
// empty store rather than an error.
func (r *BookingRepo) LoadAll() models.Store {
	kv := r.surface()
	data, err := kv.Get(r.key())
	if errors.Is(err, storage.ErrKeyNotFound) {
		return models.Store{Bookings: []models.Booking{}}
	}
	if err != nil {
		utils.LogEvent("", "repo", "load", "store read failed, treating as empty: "+err.Error())
		return models.Store{Bookings: []models.Booking{}}
	}
	store, derr := decodeStore(data)
	if derr != nil {
		utils.LogEvent("", "repo", "load", "discarding corrupt store blob: "+derr.Error())
		return models.Store{Bookings: []models.Booking{}}
	}
	return store
}

func (r *BookingRepo) persist(store models.Store) error {
	data, err := json.Marshal(store)
	if err != nil {
		return domain.PersistenceError{Kind: domain.PersistenceWriteFailed, Msg: "encode store", Err: err}
	}
	if err := r.surface().Put(r.key(), data); err != nil {
		return domain.PersistenceError{Kind: domain.PersistenceWriteFailed, Msg: "write store", Err: err}
	}
	return nil
}

// NextSequenceNumber peeks at the next id sequence value without mutating
// the store; the advance happens atomically inside Upsert.
func (r *BookingRepo) NextSequenceNumber() int64 {
	return r.LoadAll().LastSequenceNumber + 1
}

// NumericSuffix extracts the sequence part of a booking id, e.g.
// "BK-20260829-000042" -> 42. Returns 0 for malformed ids.
func NumericSuffix(bookingID string) int64 {
	idx := strings.LastIndex(bookingID, "-")
	if idx < 0 || idx == len(bookingID)-1 {
		return 0
	}
	n, err := strconv.ParseInt(bookingID[idx+1:], 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// Upsert inserts or replaces a booking and persists the whole store. An
// existing booking keeps its position in the sequence; a new one is
// appended and lastSequenceNumber advances to cover its id suffix. On a
// write failure the prior persisted state is left untouched.
func (r *BookingRepo) Upsert(b models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	store := r.LoadAll()
	replaced := false
	for i := range store.Bookings {
		if store.Bookings[i].BookingID == b.BookingID {
			store.Bookings[i] = b
			replaced = true
			break
		}
	}
	if !replaced {
		store.Bookings = append(store.Bookings, b)
		if suffix := NumericSuffix(b.BookingID); suffix > store.LastSequenceNumber {
			store.LastSequenceNumber = suffix
		}
	}
	return r.persist(store)
}

// Remove hard-deletes a booking. The sequence counter is left alone so the
// id is never reissued.
func (r *BookingRepo) Remove(bookingID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	store := r.LoadAll()
	idx := -1
	for i := range store.Bookings {
		if store.Bookings[i].BookingID == bookingID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return domain.NotFoundError{Resource: "booking", ID: bookingID}
	}
	store.Bookings = append(store.Bookings[:idx], store.Bookings[idx+1:]...)
	return r.persist(store)
}

// FindByID returns the booking with the given id.
func (r *BookingRepo) FindByID(bookingID string) (models.Booking, error) {
	for _, b := range r.LoadAll().Bookings {
		if b.BookingID == bookingID {
			return b, nil
		}
	}
	return models.Booking{}, domain.NotFoundError{Resource: "booking", ID: bookingID}
}

// FindByDate lists bookings for one travel date in stored order.
func (r *BookingRepo) FindByDate(date string) []models.Booking {
	out := []models.Booking{}
	for _, b := range r.LoadAll().Bookings {
		if b.TravelDate == date {
			out = append(out, b)
		}
	}
	return out
}

// FindByMobileAndDate lists a phone number's bookings for a date,
// optionally excluding the booking being edited.
func (r *BookingRepo) FindByMobileAndDate(mobile, date, excludeID string) []models.Booking {
	out := []models.Booking{}
	for _, b := range r.LoadAll().Bookings {
		if b.TravelDate != date || b.MobileNumber != mobile {
			continue
		}
		if excludeID != "" && b.BookingID == excludeID {
			continue
		}
		out = append(out, b)
	}
	return out
}

// BookedSeats returns the set of seats taken on a date, optionally
// excluding one booking's own seats (for the edit path).
func (r *BookingRepo) BookedSeats(date, excludeID string) map[domain.SeatID]bool {
	taken := map[domain.SeatID]bool{}
	for _, b := range r.LoadAll().Bookings {
		if b.TravelDate != date {
			continue
		}
		if excludeID != "" && b.BookingID == excludeID {
			continue
		}
		for _, s := range b.Seats {
			taken[s] = true
		}
	}
	return taken
}

// SeatCountByMobile sums seat counts across a phone number's bookings for a
// date, optionally excluding the booking being edited.
func (r *BookingRepo) SeatCountByMobile(mobile, date, excludeID string) int {
	n := 0
	for _, b := range r.FindByMobileAndDate(mobile, date, excludeID) {
		n += b.SeatCount()
	}
	return n
}
