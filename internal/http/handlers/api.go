package handlers

import (
	"busboard/internal/http/middleware"
	"busboard/internal/repositories"
	"busboard/internal/services"

	"github.com/gin-gonic/gin"
)

// API bundles the handler dependencies. Constructed once in main and
// handed to the router; per-request services are built from it so each
// carries the request id for logging.
type API struct {
	Repo *repositories.BookingRepo
}

func NewAPI(repo *repositories.BookingRepo) *API {
	return &API{Repo: repo}
}

func (a *API) service(c *gin.Context) services.BookingService {
	return services.BookingService{Repo: a.Repo, RequestID: middleware.GetRequestID(c)}
}
