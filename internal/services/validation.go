package services

import (
	"fmt"
	"regexp"
	"time"

	"busboard/internal/domain"
	"busboard/internal/utils"
)

const (
	// MaxSeatsPerBooking caps a single reservation.
	MaxSeatsPerBooking = 6
	// MaxSeatsPerMobile caps the total seats one phone number may hold for
	// a travel date, across all of its bookings.
	MaxSeatsPerMobile = 6
)

var mobileRe = regexp.MustCompile(`^[6-9]\d{9}$`)

// BookingCandidate is the raw user-entered booking a handler hands to the
// validation engine. BookingID is set only on the edit path.
type BookingCandidate struct {
	BookingID    string   `json:"bookingId"`
	TravelDate   string   `json:"travelDate"`
	MobileNumber string   `json:"mobileNumber"`
	Seats        []string `json:"seats"`
}

// ValidationResult collects per-field rule violations. CleanMobile and
// CleanSeats carry the normalized values; they are only meaningful when
// Valid is true.
type ValidationResult struct {
	Valid       bool              `json:"valid"`
	Errors      map[string]string `json:"errors"`
	CleanMobile string            `json:"-"`
	CleanDate   string            `json:"-"`
	CleanSeats  []domain.SeatID   `json:"-"`
}

// Validate checks a candidate against the booking rules. It is pure: the
// caller supplies the repository-derived facts (seats already taken on the
// date with the candidate's own booking excluded, and the phone number's
// existing seat count likewise excluded) and the calendar day to compare
// against. Rules accumulate one message per field; fields are checked
// independently, never short-circuited across each other.
func Validate(c BookingCandidate, bookedSeats map[domain.SeatID]bool, existingSeatCount int, today time.Time) ValidationResult {
	res := ValidationResult{Errors: map[string]string{}}

	// Mobile: required, 10 digits starting 6-9 after stripping separators.
	mobile := utils.CleanMobile(c.MobileNumber)
	switch {
	case mobile == "":
		res.Errors["mobileNumber"] = "mobile number is required"
	case !mobileRe.MatchString(mobile):
		res.Errors["mobileNumber"] = "mobile number must be 10 digits starting with 6-9"
	default:
		res.CleanMobile = mobile
	}

	// Travel date: required, today or later (time-of-day ignored).
	if c.TravelDate == "" {
		res.Errors["travelDate"] = "travel date is required"
	} else if d, err := utils.ParseDate(c.TravelDate); err != nil {
		res.Errors["travelDate"] = "travel date must be YYYY-MM-DD"
	} else if d.Before(today) {
		res.Errors["travelDate"] = "travel date cannot be in the past"
	} else {
		res.CleanDate = utils.FormatDate(d)
	}

	// Seats: required, 1..6 valid seat codes, no repeats in the selection.
	seats, seatErr := parseSeatSelection(c.Seats)
	if seatErr != "" {
		res.Errors["seats"] = seatErr
	} else {
		res.CleanSeats = seats

		// Conflict with other bookings on the same date. The caller already
		// excluded the candidate's own booking from bookedSeats on the edit
		// path, so re-selecting currently held seats passes.
		for _, s := range seats {
			if bookedSeats[s] {
				res.Errors["seats"] = fmt.Sprintf("seat %s is already booked for this date", s)
				break
			}
		}
	}

	// Per-mobile daily cap across all of the number's bookings.
	if len(c.Seats) > 0 && len(c.Seats)+existingSeatCount > MaxSeatsPerMobile {
		remaining := MaxSeatsPerMobile - existingSeatCount
		if remaining < 0 {
			remaining = 0
		}
		res.Errors["seatLimit"] = fmt.Sprintf(
			"this mobile number already has %d seat(s) booked for this date; only %d more allowed",
			existingSeatCount, remaining,
		)
	}

	res.Valid = len(res.Errors) == 0
	return res
}

func parseSeatSelection(raw []string) ([]domain.SeatID, string) {
	if len(raw) == 0 {
		return nil, "select at least one seat"
	}
	if len(raw) > MaxSeatsPerBooking {
		return nil, fmt.Sprintf("at most %d seats per booking", MaxSeatsPerBooking)
	}
	seen := map[domain.SeatID]bool{}
	out := make([]domain.SeatID, 0, len(raw))
	for _, code := range raw {
		seat, err := domain.ParseSeat(code)
		if err != nil {
			return nil, fmt.Sprintf("invalid seat code %q", code)
		}
		if seen[seat] {
			return nil, fmt.Sprintf("seat %s selected twice", seat)
		}
		seen[seat] = true
		out = append(out, seat)
	}
	return out, ""
}
