package handlers

import (
	"net/http"

	"busboard/internal/domain"

	"github.com/gin-gonic/gin"
)

// RespondDomainError maps domain errors to HTTP responses.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		RespondError(c, http.StatusBadRequest, err.Error(), nil)
	case domain.IsNotFound(err):
		RespondError(c, http.StatusNotFound, err.Error(), nil)
	case domain.PersistenceKindOf(err) == domain.PersistenceUnavailable:
		RespondError(c, http.StatusServiceUnavailable, "storage is unavailable, please retry", err)
	case domain.IsPersistence(err):
		RespondError(c, http.StatusInternalServerError, "could not save changes, existing data is untouched", err)
	default:
		RespondError(c, http.StatusInternalServerError, "something went wrong", nil)
	}
}
