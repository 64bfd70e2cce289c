package api

import (
	"log"
	stdhttp "net/http"

	intconfig "busboard/internal/config"
	h "busboard/internal/http/handlers"
	"busboard/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env, a *h.API) *gin.Engine {
	_ = env

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS())

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.OPTIONS("/*path", func(c *gin.Context) { c.AbortWithStatus(stdhttp.StatusNoContent) })

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/health", a.Health)
		apiGroup.GET("/store-check", a.StoreCheck)

		apiGroup.GET("/seats", a.GetSeats)

		bookings := apiGroup.Group("/bookings")
		bookings.GET("", a.ListBookings)
		bookings.POST("", a.CreateBooking)
		bookings.GET("/:id", a.GetBooking)
		bookings.PUT("/:id", a.UpdateBooking)
		bookings.DELETE("/:id", a.DeleteBooking)
		bookings.PUT("/:id/boarding-status", a.UpdateBoardingStatus)

		boarding := apiGroup.Group("/boarding")
		boarding.GET("/sequence", a.GetBoardingSequence)
		boarding.GET("/next", a.GetNextToBoard)
		boarding.GET("/statistics", a.GetBoardingStatistics)
		boarding.GET("/manifest", a.GetBoardingManifest)
	}

	return r
}
