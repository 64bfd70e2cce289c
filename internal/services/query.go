package services

import (
	"math"
	"sort"
	"strings"

	"busboard/internal/domain/models"
)

// Sortable columns for the day's booking table.
const (
	SortBySequence = "sequence"
	SortByID       = "bookingId"
	SortBySeat     = "seat"
	SortByMobile   = "mobile"
)

// SortByColumn stable-sorts planned bookings by one column. dir "desc"
// negates the comparator; anything else means ascending. Unknown columns
// fall back to sequence order.
func SortByColumn(bookings []models.PlannedBooking, column, dir string) []models.PlannedBooking {
	out := make([]models.PlannedBooking, len(bookings))
	copy(out, bookings)

	less := func(a, b models.PlannedBooking) bool {
		switch column {
		case SortByID:
			return a.BookingID < b.BookingID
		case SortBySeat:
			return firstSeat(a) < firstSeat(b)
		case SortByMobile:
			return a.MobileNumber < b.MobileNumber
		default:
			return a.SequenceNumber < b.SequenceNumber
		}
	}
	desc := strings.EqualFold(dir, "desc")
	sort.SliceStable(out, func(i, j int) bool {
		if desc {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})
	return out
}

func firstSeat(b models.PlannedBooking) string {
	seats := b.SortedSeats()
	if len(seats) == 0 {
		return ""
	}
	return string(seats[0])
}

// FilterBySearch keeps bookings whose id or mobile number contains the
// term, case-insensitive. A blank term returns the input unchanged.
func FilterBySearch(bookings []models.PlannedBooking, term string) []models.PlannedBooking {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return bookings
	}
	out := []models.PlannedBooking{}
	for _, b := range bookings {
		if strings.Contains(strings.ToLower(b.BookingID), term) ||
			strings.Contains(strings.ToLower(b.MobileNumber), term) {
			out = append(out, b)
		}
	}
	return out
}

// BoardingStats aggregates one travel date's boarding progress.
type BoardingStats struct {
	TotalBookings           int `json:"totalBookings"`
	TotalPassengers         int `json:"totalPassengers"`
	BoardedPassengers       int `json:"boardedPassengers"`
	NotBoardedPassengers    int `json:"notBoardedPassengers"`
	BoardingProgressPercent int `json:"boardingProgressPercent"`
}

// Statistics counts passengers (seats) per boarding state. Progress is 0
// when there are no passengers at all.
func Statistics(bookings []models.Booking) BoardingStats {
	stats := BoardingStats{TotalBookings: len(bookings)}
	for _, b := range bookings {
		stats.TotalPassengers += b.SeatCount()
		if b.BoardingStatus == models.StatusBoarded {
			stats.BoardedPassengers += b.SeatCount()
		} else {
			stats.NotBoardedPassengers += b.SeatCount()
		}
	}
	if stats.TotalPassengers > 0 {
		stats.BoardingProgressPercent = int(math.Round(
			float64(stats.BoardedPassengers) / float64(stats.TotalPassengers) * 100))
	}
	return stats
}

// AllBoarded is vacuously true for an empty list.
func AllBoarded(bookings []models.Booking) bool {
	for _, b := range bookings {
		if b.BoardingStatus != models.StatusBoarded {
			return false
		}
	}
	return true
}

// NextToBoard returns the lowest-sequence booking still waiting to board.
func NextToBoard(bookings []models.PlannedBooking) (models.PlannedBooking, bool) {
	best := models.PlannedBooking{}
	found := false
	for _, b := range bookings {
		if b.BoardingStatus == models.StatusBoarded {
			continue
		}
		if !found || b.SequenceNumber < best.SequenceNumber {
			best = b
			found = true
		}
	}
	return best, found
}
