package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Bus layout: four seat columns across the aisle, fifteen rows.
const (
	SeatColumns = "ABCD"
	MaxRow      = 15
	TotalSeats  = len(SeatColumns) * MaxRow
)

// SeatID addresses one of the 60 seats, e.g. "A5" or "D15".
type SeatID string

// ParseSeat validates and canonicalizes a seat code.
func ParseSeat(code string) (SeatID, error) {
	s := strings.ToUpper(strings.TrimSpace(code))
	if len(s) < 2 {
		return "", fmt.Errorf("seat code %q too short", code)
	}
	col := s[:1]
	if !strings.Contains(SeatColumns, col) {
		return "", fmt.Errorf("seat column %q not in %s", col, SeatColumns)
	}
	row, err := strconv.Atoi(s[1:])
	if err != nil || row < 1 || row > MaxRow {
		return "", fmt.Errorf("seat row in %q out of range 1-%d", code, MaxRow)
	}
	return SeatID(col + strconv.Itoa(row)), nil
}

// Row returns the seat's row number, or 0 for a malformed seat.
func (s SeatID) Row() int {
	if len(s) < 2 {
		return 0
	}
	row, err := strconv.Atoi(string(s[1:]))
	if err != nil {
		return 0
	}
	return row
}

// Column returns the seat's column letter.
func (s SeatID) Column() string {
	if len(s) == 0 {
		return ""
	}
	return string(s[0])
}

// AllSeats lists every seat in the layout, row-major (A1..D1, A2..D2, ...).
func AllSeats() []SeatID {
	out := make([]SeatID, 0, TotalSeats)
	for row := 1; row <= MaxRow; row++ {
		for _, col := range SeatColumns {
			out = append(out, SeatID(string(col)+strconv.Itoa(row)))
		}
	}
	return out
}
