package services

import (
	"math"
	"sort"

	"busboard/internal/domain/models"
)

// SettleTime is the fixed cost of one settle event: a passenger group
// taking its seats while the aisle behind it is blocked.
const SettleTime = 60

// PlanBoarding orders one travel date's bookings back-to-front and assigns
// 1-based sequence numbers. Groups sitting deeper in the bus board first;
// among groups tied on farthest row, the one with more seats in that row
// goes first, then the larger group overall, then ascending booking id so
// the order is deterministic.
func PlanBoarding(bookings []models.Booking) []models.PlannedBooking {
	sorted := make([]models.Booking, len(bookings))
	copy(sorted, bookings)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		ar, br := a.FarthestRow(), b.FarthestRow()
		if ar != br {
			return ar > br
		}
		af, bf := a.SeatsInRow(ar), b.SeatsInRow(br)
		if af != bf {
			return af > bf
		}
		if a.SeatCount() != b.SeatCount() {
			return a.SeatCount() > b.SeatCount()
		}
		return a.BookingID < b.BookingID
	})

	out := make([]models.PlannedBooking, len(sorted))
	for i, b := range sorted {
		out[i] = models.PlannedBooking{Booking: b, SequenceNumber: i + 1}
	}
	return out
}

// TimeEstimate models boarding duration in abstract time-units.
type TimeEstimate struct {
	NaturalOrderTime int `json:"naturalOrderTime"`
	OptimalTime      int `json:"optimalTime"`
	TimeSavings      int `json:"timeSavings"`
	SavingsPercent   int `json:"savingsPercent"`
}

// EstimateTimes derives the time savings of the optimized order for a
// booking count. Natural (unordered) boarding costs one settle event per
// group; the optimized back-to-front order is modeled as a single settle
// duration under the idealized assumption that groups never block each
// other. That constant is a documented approximation, not a simulation —
// downstream statistics depend on it.
func EstimateTimes(bookingCount int) TimeEstimate {
	if bookingCount == 0 {
		return TimeEstimate{}
	}
	natural := bookingCount * SettleTime
	optimal := SettleTime
	savings := natural - optimal
	percent := int(math.Round(float64(savings) / float64(natural) * 100))
	return TimeEstimate{
		NaturalOrderTime: natural,
		OptimalTime:      optimal,
		TimeSavings:      savings,
		SavingsPercent:   percent,
	}
}
