package repositories

import (
	"errors"
	"testing"

	"busboard/internal/domain"
	"busboard/internal/domain/models"
	"busboard/internal/storage"
)

func memRepo() *BookingRepo {
	return NewBookingRepo(storage.NewMemoryStore())
}

func stored(id, date string, seats ...domain.SeatID) models.Booking {
	return models.Booking{
		BookingID:      id,
		TravelDate:     date,
		MobileNumber:   "9876543210",
		Seats:          seats,
		BoardingStatus: models.StatusNotBoarded,
	}
}

func TestLoadAllEmptyStore(t *testing.T) {
	repo := memRepo()
	store := repo.LoadAll()
	if len(store.Bookings) != 0 || store.LastSequenceNumber != 0 {
		t.Fatalf("expected empty store, got %+v", store)
	}
}

func TestLoadAllDiscardsCorruptBlob(t *testing.T) {
	cases := []string{
		`{"bookings": 42, "lastSequenceNumber": 1}`,
		`{"bookings": [], "lastSequenceNumber": "seven"}`,
		`[1,2,3]`,
		`not json at all`,
	}
	for _, blob := range cases {
		kv := storage.NewMemoryStore()
		if err := kv.Put(DefaultStoreKey, []byte(blob)); err != nil {
			t.Fatalf("seed error: %v", err)
		}
		repo := NewBookingRepo(kv)
		store := repo.LoadAll()
		if len(store.Bookings) != 0 || store.LastSequenceNumber != 0 {
			t.Fatalf("blob %q: expected empty store, got %+v", blob, store)
		}
	}
}

func TestUpsertAppendAdvancesSequence(t *testing.T) {
	repo := memRepo()
	if err := repo.Upsert(stored("BK-20260901-000007", "2026-09-01", "A1")); err != nil {
		t.Fatalf("upsert error: %v", err)
	}
	store := repo.LoadAll()
	if store.LastSequenceNumber != 7 {
		t.Fatalf("lastSequenceNumber should cover the id suffix, got %d", store.LastSequenceNumber)
	}
	if repo.NextSequenceNumber() != 8 {
		t.Fatalf("next sequence should be 8, got %d", repo.NextSequenceNumber())
	}
}

func TestUpsertReplacePreservesPosition(t *testing.T) {
	repo := memRepo()
	for _, id := range []string{"BK-20260901-000001", "BK-20260901-000002", "BK-20260901-000003"} {
		if err := repo.Upsert(stored(id, "2026-09-01", "A1")); err != nil {
			t.Fatalf("upsert error: %v", err)
		}
	}

	updated := stored("BK-20260901-000002", "2026-09-01", "D15")
	if err := repo.Upsert(updated); err != nil {
		t.Fatalf("replace error: %v", err)
	}

	store := repo.LoadAll()
	if len(store.Bookings) != 3 {
		t.Fatalf("replace should not append, got %d bookings", len(store.Bookings))
	}
	if store.Bookings[1].BookingID != "BK-20260901-000002" || store.Bookings[1].Seats[0] != "D15" {
		t.Fatalf("replaced booking moved or kept stale seats: %+v", store.Bookings[1])
	}
	if store.LastSequenceNumber != 3 {
		t.Fatalf("replace should not advance sequence, got %d", store.LastSequenceNumber)
	}
}

func TestRemove(t *testing.T) {
	repo := memRepo()
	if err := repo.Upsert(stored("BK-20260901-000001", "2026-09-01", "A1")); err != nil {
		t.Fatalf("upsert error: %v", err)
	}

	if err := repo.Remove("BK-20260901-000099"); !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
	if err := repo.Remove("BK-20260901-000001"); err != nil {
		t.Fatalf("remove error: %v", err)
	}
	store := repo.LoadAll()
	if len(store.Bookings) != 0 {
		t.Fatalf("booking not removed")
	}
	if store.LastSequenceNumber != 1 {
		t.Fatalf("removal must not roll back the sequence, got %d", store.LastSequenceNumber)
	}
}

func TestProjections(t *testing.T) {
	repo := memRepo()
	seed := []models.Booking{
		stored("BK-20260901-000001", "2026-09-01", "A1", "B1"),
		stored("BK-20260901-000002", "2026-09-01", "C1"),
		stored("BK-20260902-000003", "2026-09-02", "A1"),
	}
	seed[1].MobileNumber = "6111111111"
	for _, b := range seed {
		if err := repo.Upsert(b); err != nil {
			t.Fatalf("upsert error: %v", err)
		}
	}

	if got := repo.FindByDate("2026-09-01"); len(got) != 2 {
		t.Fatalf("FindByDate: got %d, want 2", len(got))
	}
	if got := repo.FindByMobileAndDate("9876543210", "2026-09-01", ""); len(got) != 1 {
		t.Fatalf("FindByMobileAndDate: got %d, want 1", len(got))
	}
	if got := repo.FindByMobileAndDate("9876543210", "2026-09-01", "BK-20260901-000001"); len(got) != 0 {
		t.Fatalf("exclusion ignored: got %d", len(got))
	}

	booked := repo.BookedSeats("2026-09-01", "")
	if len(booked) != 3 || !booked["A1"] || !booked["C1"] {
		t.Fatalf("BookedSeats wrong: %v", booked)
	}
	booked = repo.BookedSeats("2026-09-01", "BK-20260901-000001")
	if len(booked) != 1 || !booked["C1"] {
		t.Fatalf("BookedSeats exclusion wrong: %v", booked)
	}

	if n := repo.SeatCountByMobile("9876543210", "2026-09-01", ""); n != 2 {
		t.Fatalf("SeatCountByMobile: got %d, want 2", n)
	}
	if n := repo.SeatCountByMobile("9876543210", "2026-09-01", "BK-20260901-000001"); n != 0 {
		t.Fatalf("SeatCountByMobile exclusion: got %d, want 0", n)
	}
}

// brokenKV fails on every access, like a storage surface that throws.
type brokenKV struct{}

func (brokenKV) Get(string) ([]byte, error) { return nil, errors.New("surface exploded") }
func (brokenKV) Put(string, []byte) error { return errors.New("surface exploded") }
func (brokenKV) Close() error { return nil }

func TestFallbackToMemoryWhenSurfaceUnusable(t *testing.T) {
	repo := NewBookingRepo(brokenKV{})
	if !repo.UsingFallback() {
		t.Fatalf("expected fallback after first failed access")
	}

	// All operations behave normally against the in-memory store.
	if err := repo.Upsert(stored("BK-20260901-000001", "2026-09-01", "A1")); err != nil {
		t.Fatalf("upsert on fallback error: %v", err)
	}
	if got := repo.FindByDate("2026-09-01"); len(got) != 1 {
		t.Fatalf("fallback store lost data")
	}
}

// quotaKV reads fine but rejects writes, like a full disk or quota limit.
type quotaKV struct{ mem *storage.MemoryStore }

func (q quotaKV) Get(key string) ([]byte, error) { return q.mem.Get(key) }
func (q quotaKV) Put(string, []byte) error { return errors.New("quota exceeded") }
func (q quotaKV) Close() error { return nil }

var _ storage.KV = quotaKV{}

func TestUpsertWriteFailedLeavesPriorState(t *testing.T) {
	repo := NewBookingRepo(quotaKV{mem: storage.NewMemoryStore()})
	if repo.UsingFallback() {
		t.Fatalf("readable surface must not trigger fallback")
	}

	err := repo.Upsert(stored("BK-20260901-000001", "2026-09-01", "A1"))
	if domain.PersistenceKindOf(err) != domain.PersistenceWriteFailed {
		t.Fatalf("expected write_failed, got %v", err)
	}
	if len(repo.LoadAll().Bookings) != 0 {
		t.Fatalf("failed write must leave prior state untouched")
	}
}

func TestNumericSuffix(t *testing.T) {
	cases := map[string]int64{
		"BK-20260829-000042": 42,
		"BK-20260829-000001": 1,
		"no-dash-suffix-":    0,
		"garbage":            0,
		"":                   0,
	}
	for id, want := range cases {
		if got := NumericSuffix(id); got != want {
			t.Fatalf("NumericSuffix(%q) = %d, want %d", id, got, want)
		}
	}
}
