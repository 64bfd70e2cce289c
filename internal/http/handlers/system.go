package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (a *API) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "busboard backend running"})
}

// StoreCheck reports which surface is live and how much it holds.
func (a *API) StoreCheck(c *gin.Context) {
	store := a.Repo.LoadAll()
	c.JSON(http.StatusOK, gin.H{
		"message":            "store OK",
		"fallback":           a.Repo.UsingFallback(),
		"bookings":           len(store.Bookings),
		"lastSequenceNumber": store.LastSequenceNumber,
	})
}
