package services

import (
	"testing"

	"busboard/internal/domain"
	"busboard/internal/domain/models"
)

func planned(id, mobile string, seq int, status models.BoardingStatus, seats ...domain.SeatID) models.PlannedBooking {
	return models.PlannedBooking{
		Booking: models.Booking{
			BookingID:      id,
			MobileNumber:   mobile,
			Seats:          seats,
			BoardingStatus: status,
		},
		SequenceNumber: seq,
	}
}

func TestStatisticsEmpty(t *testing.T) {
	stats := Statistics(nil)
	if stats != (BoardingStats{}) {
		t.Fatalf("expected all zeros, got %+v", stats)
	}
}

func TestStatisticsCountsPassengersNotBookings(t *testing.T) {
	bookings := []models.Booking{
		{BoardingStatus: models.StatusBoarded, Seats: []domain.SeatID{"A1", "B1", "C1"}},
		{BoardingStatus: models.StatusNotBoarded, Seats: []domain.SeatID{"A2"}},
	}
	stats := Statistics(bookings)
	if stats.TotalBookings != 2 || stats.TotalPassengers != 4 {
		t.Fatalf("totals wrong: %+v", stats)
	}
	if stats.BoardedPassengers != 3 || stats.NotBoardedPassengers != 1 {
		t.Fatalf("boarded split wrong: %+v", stats)
	}
	if stats.BoardingProgressPercent != 75 {
		t.Fatalf("progress: got %d, want 75", stats.BoardingProgressPercent)
	}
}

func TestAllBoardedVacuouslyTrue(t *testing.T) {
	if !AllBoarded(nil) {
		t.Fatalf("empty list should count as all boarded")
	}
	if AllBoarded([]models.Booking{{BoardingStatus: models.StatusNotBoarded}}) {
		t.Fatalf("waiting booking should fail AllBoarded")
	}
}

func TestNextToBoardPicksLowestSequence(t *testing.T) {
	list := []models.PlannedBooking{
		planned("BK-1", "9", 1, models.StatusBoarded, "A15"),
		planned("BK-3", "9", 3, models.StatusNotBoarded, "A5"),
		planned("BK-2", "9", 2, models.StatusNotBoarded, "A10"),
	}
	next, ok := NextToBoard(list)
	if !ok {
		t.Fatalf("expected a next booking")
	}
	if next.BookingID != "BK-2" {
		t.Fatalf("got %s, want BK-2", next.BookingID)
	}

	if _, ok := NextToBoard(nil); ok {
		t.Fatalf("empty list should have no next")
	}
}

func TestFilterBySearch(t *testing.T) {
	list := []models.PlannedBooking{
		planned("BK-20260830-000001", "9876543210", 1, models.StatusNotBoarded, "A1"),
		planned("BK-20260830-000002", "6123456789", 2, models.StatusNotBoarded, "A2"),
	}

	if got := FilterBySearch(list, "  "); len(got) != 2 {
		t.Fatalf("blank term should return input unchanged, got %d", len(got))
	}
	if got := FilterBySearch(list, "000002"); len(got) != 1 || got[0].BookingID != "BK-20260830-000002" {
		t.Fatalf("id search failed: %+v", got)
	}
	if got := FilterBySearch(list, "98765"); len(got) != 1 || got[0].MobileNumber != "9876543210" {
		t.Fatalf("mobile search failed: %+v", got)
	}
	if got := FilterBySearch(list, "bk-"); len(got) != 2 {
		t.Fatalf("search should be case-insensitive, got %d", len(got))
	}
}

func TestSortByColumn(t *testing.T) {
	list := []models.PlannedBooking{
		planned("BK-2", "6000000000", 2, models.StatusNotBoarded, "C1"),
		planned("BK-1", "9000000000", 1, models.StatusNotBoarded, "B9", "A2"),
		planned("BK-3", "7000000000", 3, models.StatusNotBoarded, "D4"),
	}

	byID := SortByColumn(list, SortByID, "asc")
	if byID[0].BookingID != "BK-1" || byID[2].BookingID != "BK-3" {
		t.Fatalf("id sort wrong: %s %s %s", byID[0].BookingID, byID[1].BookingID, byID[2].BookingID)
	}

	byIDDesc := SortByColumn(list, SortByID, "desc")
	if byIDDesc[0].BookingID != "BK-3" {
		t.Fatalf("desc should negate the comparator, got %s first", byIDDesc[0].BookingID)
	}

	// Seat column compares each booking's own lexicographically first seat.
	bySeat := SortByColumn(list, SortBySeat, "asc")
	if bySeat[0].BookingID != "BK-1" { // A2 < C1 < D4
		t.Fatalf("seat sort wrong, got %s first", bySeat[0].BookingID)
	}

	byMobile := SortByColumn(list, SortByMobile, "asc")
	if byMobile[0].MobileNumber != "6000000000" {
		t.Fatalf("mobile sort wrong, got %s first", byMobile[0].MobileNumber)
	}

	bySeq := SortByColumn(list, "bogus-column", "asc")
	if bySeq[0].SequenceNumber != 1 {
		t.Fatalf("unknown column should fall back to sequence order")
	}
}
