package v1

import (
	"errors"
	"net/http"

	"github.com/Tsilavina4274/odyssea/internal/domain/applications"
	"github.com/Tsilavina4274/odyssea/internal/domain/events"
	"github.com/Tsilavina4274/odyssea/internal/domain/shared"
	"github.com/Tsilavina4274/odyssea/internal/domain/users"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Message string `json:"message"`
}

// InfoResponse carries a plain confirmation
type InfoResponse struct {
	Message string `json:"message"`
}

// internalErrorMessage hides the cause of unexpected failures from clients
const internalErrorMessage = "internal server error"

// StatusFor maps a service error to its HTTP status code
func StatusFor(err error) int {
	switch {
	case errors.Is(err, shared.ErrValidation), errors.Is(err, users.ErrWeakPassword):
		return http.StatusBadRequest
	case errors.Is(err, users.ErrInvalidCredentials), errors.Is(err, users.ErrInvalidToken):
		return http.StatusUnauthorized
	case errors.Is(err, shared.ErrForbidden), errors.Is(err, users.ErrInactiveAccount):
		return http.StatusForbidden
	case errors.Is(err, shared.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, shared.ErrConflict),
		errors.Is(err, users.ErrEmailExists),
		errors.Is(err, applications.ErrInvalidTransition),
		errors.Is(err, applications.ErrNotEligible),
		errors.Is(err, events.ErrEventFull),
		errors.Is(err, events.ErrRegistrationClosed),
		errors.Is(err, events.ErrAlreadyRegistered):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondError aborts the request with the status mapped from err.
// Unexpected errors are recorded on the context for the request logger.
func respondError(ctx *gin.Context, err error) {
	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		_ = ctx.Error(err)
		ctx.AbortWithStatusJSON(status, ErrorResponse{Message: internalErrorMessage})
		return
	}
	ctx.AbortWithStatusJSON(status, ErrorResponse{Message: err.Error()})
}

func respondBadRequest(ctx *gin.Context, message string, err error) {
	ctx.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Message: message + ": " + err.Error()})
}
