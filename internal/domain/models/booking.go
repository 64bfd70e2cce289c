package models

import (
	"sort"
	"time"

	"busboard/internal/domain"
)

// BoardingStatus is the passenger-group boarding state for a booking.
type BoardingStatus string

const (
	StatusNotBoarded BoardingStatus = "NOT_BOARDED"
	StatusBoarded    BoardingStatus = "BOARDED"
)

// Booking is the persisted seat reservation record.
// BookingID and BookingTime are fixed at creation and never change on update.
type Booking struct {
	BookingID      string          `json:"bookingId"`
	TravelDate     string          `json:"travelDate"` // canonical YYYY-MM-DD
	MobileNumber   string          `json:"mobileNumber"`
	Seats          []domain.SeatID `json:"seats"`
	BookingTime    time.Time       `json:"bookingTime"`
	BoardingStatus BoardingStatus  `json:"boardingStatus"`
}

// SeatCount returns the number of seats on the booking.
func (b Booking) SeatCount() int { return len(b.Seats) }

// SortedSeats returns the booking's seats in lexicographic order without
// mutating the record.
func (b Booking) SortedSeats() []domain.SeatID {
	out := make([]domain.SeatID, len(b.Seats))
	copy(out, b.Seats)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// FarthestRow is the highest row number among the booking's seats.
func (b Booking) FarthestRow() int {
	far := 0
	for _, s := range b.Seats {
		if r := s.Row(); r > far {
			far = r
		}
	}
	return far
}

// SeatsInRow counts the booking's seats sitting in the given row.
func (b Booking) SeatsInRow(row int) int {
	n := 0
	for _, s := range b.Seats {
		if s.Row() == row {
			n++
		}
	}
	return n
}

// Store is the whole persisted blob: every booking plus the id sequence
// high-water mark. LastSequenceNumber never decreases, even when bookings
// are removed.
type Store struct {
	Bookings           []Booking `json:"bookings"`
	LastSequenceNumber int64     `json:"lastSequenceNumber"`
}

// PlannedBooking is a booking annotated with its 1-based boarding rank.
type PlannedBooking struct {
	Booking
	SequenceNumber int `json:"sequenceNumber"`
}
