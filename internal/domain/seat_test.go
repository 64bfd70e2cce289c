package domain

import "testing"

func TestParseSeatCanonicalizes(t *testing.T) {
	seat, err := ParseSeat("  b7 ")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if seat != "B7" {
		t.Fatalf("expected B7, got %s", seat)
	}
	if seat.Row() != 7 {
		t.Fatalf("row parsed incorrectly, got %d", seat.Row())
	}
	if seat.Column() != "B" {
		t.Fatalf("column parsed incorrectly, got %s", seat.Column())
	}
}

func TestParseSeatRejectsBadCodes(t *testing.T) {
	for _, code := range []string{"", "A", "E5", "A0", "A16", "AX", "5A"} {
		if _, err := ParseSeat(code); err == nil {
			t.Fatalf("expected error for %q", code)
		}
	}
}

func TestAllSeatsCoversWholeGrid(t *testing.T) {
	seats := AllSeats()
	if len(seats) != TotalSeats {
		t.Fatalf("expected %d seats, got %d", TotalSeats, len(seats))
	}
	seen := map[SeatID]bool{}
	for _, s := range seats {
		if seen[s] {
			t.Fatalf("duplicate seat %s in layout", s)
		}
		seen[s] = true
		if s.Row() < 1 || s.Row() > MaxRow {
			t.Fatalf("seat %s row out of range", s)
		}
	}
}
