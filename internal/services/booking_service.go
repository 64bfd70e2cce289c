package services

import (
	"fmt"
	"strings"
	"time"

	"busboard/internal/domain"
	"busboard/internal/domain/models"
	"busboard/internal/repositories"
	"busboard/internal/utils"
)

// IDPrefix starts every booking id: BK-YYYYMMDD-NNNNNN.
const IDPrefix = "BK"

// BookingService runs the validate-then-persist pipeline around the
// repository. Now/Today are injectable for tests and default to the
// real clock.
type BookingService struct {
	Repo      *repositories.BookingRepo
	RequestID string
	Now       func() time.Time
	Today     func() time.Time
}

func (s BookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return utils.NowUTC()
}

func (s BookingService) today() time.Time {
	if s.Today != nil {
		return s.Today()
	}
	return utils.Today()
}

// GenerateBookingID formats the next id for a travel date. The sequence
// number is only peeked here; it advances when the booking is persisted.
func (s BookingService) GenerateBookingID(date string) string {
	seq := s.Repo.NextSequenceNumber()
	return fmt.Sprintf("%s-%s-%06d", IDPrefix, strings.ReplaceAll(date, "-", ""), seq)
}

// Create validates a new booking against current store facts and persists
// it. A failed validation is not an error: the result carries the field
// messages and the zero booking.
func (s BookingService) Create(c BookingCandidate) (models.Booking, ValidationResult, error) {
	c.BookingID = ""
	date := canonicalDate(c.TravelDate)
	mobile := utils.CleanMobile(c.MobileNumber)

	res := Validate(c, s.Repo.BookedSeats(date, ""), s.Repo.SeatCountByMobile(mobile, date, ""), s.today())
	if !res.Valid {
		return models.Booking{}, res, nil
	}

	booking := models.Booking{
		BookingID:      s.GenerateBookingID(res.CleanDate),
		TravelDate:     res.CleanDate,
		MobileNumber:   res.CleanMobile,
		Seats:          res.CleanSeats,
		BookingTime:    s.now(),
		BoardingStatus: models.StatusNotBoarded,
	}
	if err := s.Repo.Upsert(booking); err != nil {
		return models.Booking{}, res, err
	}
	utils.LogEvent(s.RequestID, "booking", "create", "id="+booking.BookingID)
	return booking, res, nil
}

// Update revalidates and replaces an existing booking. BookingID and
// BookingTime are preserved; seats already held by this booking do not
// count as conflicts because the facts exclude it.
func (s BookingService) Update(bookingID string, c BookingCandidate) (models.Booking, ValidationResult, error) {
	existing, err := s.Repo.FindByID(bookingID)
	if err != nil {
		return models.Booking{}, ValidationResult{}, err
	}

	c.BookingID = bookingID
	date := canonicalDate(c.TravelDate)
	mobile := utils.CleanMobile(c.MobileNumber)

	res := Validate(c, s.Repo.BookedSeats(date, bookingID), s.Repo.SeatCountByMobile(mobile, date, bookingID), s.today())
	if !res.Valid {
		return models.Booking{}, res, nil
	}

	updated := models.Booking{
		BookingID:      existing.BookingID,
		TravelDate:     res.CleanDate,
		MobileNumber:   res.CleanMobile,
		Seats:          res.CleanSeats,
		BookingTime:    existing.BookingTime,
		BoardingStatus: existing.BoardingStatus,
	}
	if err := s.Repo.Upsert(updated); err != nil {
		return models.Booking{}, res, err
	}
	utils.LogEvent(s.RequestID, "booking", "update", "id="+bookingID)
	return updated, res, nil
}

// Cancel hard-deletes a booking. Its id suffix stays burned in the
// sequence counter.
func (s BookingService) Cancel(bookingID string) error {
	if err := s.Repo.Remove(bookingID); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "booking", "cancel", "id="+bookingID)
	return nil
}

// SetBoardingStatus flips a booking between NOT_BOARDED and BOARDED.
func (s BookingService) SetBoardingStatus(bookingID string, status models.BoardingStatus) (models.Booking, error) {
	if status != models.StatusBoarded && status != models.StatusNotBoarded {
		return models.Booking{}, domain.ValidationError{Field: "boardingStatus", Msg: "must be BOARDED or NOT_BOARDED"}
	}
	booking, err := s.Repo.FindByID(bookingID)
	if err != nil {
		return models.Booking{}, err
	}
	booking.BoardingStatus = status
	if err := s.Repo.Upsert(booking); err != nil {
		return models.Booking{}, err
	}
	utils.LogEvent(s.RequestID, "booking", "boarding_status", fmt.Sprintf("id=%s status=%s", bookingID, status))
	return booking, nil
}

// BoardingSequence plans one date's boarding order with its time estimate.
func (s BookingService) BoardingSequence(date string) ([]models.PlannedBooking, TimeEstimate) {
	planned := PlanBoarding(s.Repo.FindByDate(canonicalDate(date)))
	return planned, EstimateTimes(len(planned))
}

func canonicalDate(raw string) string {
	d, err := utils.ParseDate(raw)
	if err != nil {
		return strings.TrimSpace(raw)
	}
	return utils.FormatDate(d)
}
