package handlers

import (
	"net/http"

	"busboard/internal/domain/models"
	"busboard/internal/services"
	"busboard/internal/utils"

	"github.com/gin-gonic/gin"
)

// ListBookings returns one travel date's bookings in optimized boarding
// order, optionally filtered by ?search= and re-sorted by ?sort=&dir=.
func (a *API) ListBookings(c *gin.Context) {
	date := dateParam(c, utils.FormatDate(utils.Today()))
	planned, est := a.service(c).BoardingSequence(date)

	planned = services.FilterBySearch(planned, c.Query("search"))
	if col := c.Query("sort"); col != "" {
		planned = services.SortByColumn(planned, col, c.Query("dir"))
	}

	c.JSON(http.StatusOK, gin.H{
		"date":         date,
		"bookings":     planned,
		"total":        len(planned),
		"timeEstimate": est,
	})
}

// CreateBooking runs the full validate-then-persist pipeline.
func (a *API) CreateBooking(c *gin.Context) {
	var candidate services.BookingCandidate
	if !BindJSONOrError(c, &candidate) {
		return
	}

	booking, res, err := a.service(c).Create(candidate)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if !res.Valid {
		c.JSON(http.StatusBadRequest, gin.H{"valid": false, "errors": res.Errors})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "booking confirmed",
		"booking": booking,
	})
}

func (a *API) GetBooking(c *gin.Context) {
	booking, err := a.Repo.FindByID(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": booking})
}

// UpdateBooking replaces seats/date/mobile on an existing booking. The
// booking id and creation time are preserved.
func (a *API) UpdateBooking(c *gin.Context) {
	var candidate services.BookingCandidate
	if !BindJSONOrError(c, &candidate) {
		return
	}

	booking, res, err := a.service(c).Update(c.Param("id"), candidate)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if !res.Valid {
		c.JSON(http.StatusBadRequest, gin.H{"valid": false, "errors": res.Errors})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "booking updated",
		"booking": booking,
	})
}

// DeleteBooking cancels a booking outright (hard delete).
func (a *API) DeleteBooking(c *gin.Context) {
	if err := a.service(c).Cancel(c.Param("id")); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "booking cancelled"})
}

type boardingStatusRequest struct {
	BoardingStatus models.BoardingStatus `json:"boardingStatus"`
}

// UpdateBoardingStatus marks a booking BOARDED or back to NOT_BOARDED.
func (a *API) UpdateBoardingStatus(c *gin.Context) {
	var req boardingStatusRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	booking, err := a.service(c).SetBoardingStatus(c.Param("id"), req.BoardingStatus)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "booking": booking})
}
