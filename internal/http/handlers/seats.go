package handlers

import (
	"net/http"

	"busboard/internal/domain"
	"busboard/internal/utils"

	"github.com/gin-gonic/gin"
)

type seatView struct {
	Seat   domain.SeatID `json:"seat"`
	Row    int           `json:"row"`
	Column string        `json:"column"`
	Booked bool          `json:"booked"`
}

// GetSeats returns the full 60-seat grid with booked flags for a date, so
// the seat-map frontend does not need to re-derive the layout.
func (a *API) GetSeats(c *gin.Context) {
	date := dateParam(c, utils.FormatDate(utils.Today()))
	booked := a.Repo.BookedSeats(date, c.Query("exclude"))

	grid := make([]seatView, 0, domain.TotalSeats)
	for _, seat := range domain.AllSeats() {
		grid = append(grid, seatView{
			Seat:   seat,
			Row:    seat.Row(),
			Column: seat.Column(),
			Booked: booked[seat],
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"date":      date,
		"seats":     grid,
		"total":     domain.TotalSeats,
		"available": domain.TotalSeats - len(booked),
	})
}
