package handlers

import (
	"net/http"

	"busboard/internal/http/middleware"
	"busboard/internal/services"
	"busboard/internal/utils"

	"github.com/gin-gonic/gin"
)

// GetBoardingSequence returns the optimized back-to-front order plus the
// time-savings estimate for one travel date.
func (a *API) GetBoardingSequence(c *gin.Context) {
	date := dateParam(c, utils.FormatDate(utils.Today()))
	planned, est := a.service(c).BoardingSequence(date)
	c.JSON(http.StatusOK, gin.H{
		"date":         date,
		"sequence":     planned,
		"timeEstimate": est,
	})
}

// GetNextToBoard returns the lowest-sequence booking still waiting.
func (a *API) GetNextToBoard(c *gin.Context) {
	date := dateParam(c, utils.FormatDate(utils.Today()))
	planned, _ := a.service(c).BoardingSequence(date)

	next, ok := services.NextToBoard(planned)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"date": date, "next": nil, "allBoarded": len(planned) > 0})
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "next": next, "allBoarded": false})
}

// GetBoardingStatistics aggregates boarding progress for one travel date.
func (a *API) GetBoardingStatistics(c *gin.Context) {
	date := dateParam(c, utils.FormatDate(utils.Today()))
	bookings := a.Repo.FindByDate(date)
	c.JSON(http.StatusOK, gin.H{
		"date":       date,
		"statistics": services.Statistics(bookings),
		"allBoarded": len(bookings) > 0 && services.AllBoarded(bookings),
	})
}

// GetBoardingManifest streams the boarding order as a printable PDF.
func (a *API) GetBoardingManifest(c *gin.Context) {
	date := dateParam(c, utils.FormatDate(utils.Today()))
	planned, est := a.service(c).BoardingSequence(date)

	svc := services.ManifestService{RequestID: middleware.GetRequestID(c)}
	pdfBytes, filename, err := svc.GenerateManifest(date, planned, est)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "could not render manifest", err)
		return
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
