package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jungle-app/jungle-booking/apperr"
	bk "github.com/jungle-app/jungle-booking/booking"
	"github.com/jungle-app/jungle-booking/catalog"
	"github.com/jungle-app/jungle-booking/profile"
	"github.com/jungle-app/jungle-booking/supabase"
)

// errorResponse maps err to a status and the message shown to the client.
// fallback is used when err carries no message meant for users.
func errorResponse(err error, fallback string) (int, string) {
	switch {
	case apperr.Is(err, apperr.ErrNotConfigured):
		return http.StatusServiceUnavailable, apperr.UserMessage(err, fallback)
	case errors.Is(err, catalog.ErrServiceNotFound):
		return http.StatusNotFound, "service not found"
	case errors.Is(err, bk.ErrBookingNotFound):
		return http.StatusNotFound, "booking not found"
	case errors.Is(err, bk.ErrNotAllowed):
		return http.StatusForbidden, apperr.UserMessage(err, "not allowed to access this booking")
	case errors.Is(err, bk.ErrCancelRejected):
		return http.StatusForbidden, apperr.UserMessage(err, "booking cancellation was rejected")
	case errors.Is(err, bk.ErrSignInRequired):
		return http.StatusUnauthorized, "sign in required"
	case errors.Is(err, supabase.ErrInvalidToken):
		return http.StatusUnauthorized, "invalid authentication"
	case errors.Is(err, bk.ErrSlotNotFound):
		return http.StatusBadRequest, "selected time does not match an available slot"
	case errors.Is(err, bk.ErrInvalidBookingState):
		return http.StatusBadRequest, "invalid booking state"
	case errors.Is(err, catalog.ErrUnknownSortKey),
		errors.Is(err, catalog.ErrInvalidCriteria),
		errors.Is(err, profile.ErrEmptyAvatar),
		errors.Is(err, profile.ErrUnsupportedImage):
		return http.StatusBadRequest, err.Error()
	}

	var apiErr *supabase.APIError
	if errors.As(err, &apiErr) {
		status := http.StatusBadGateway
		if apiErr.Status >= 400 && apiErr.Status < 500 {
			status = apiErr.Status
		}
		return status, apperr.UserMessage(err, fallback)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// class 22 is bad input data and class 23 a constraint violation,
		// both caused by the request
		switch pgErrorClass(pgErr) {
		case "22", "23":
			return http.StatusBadRequest, apperr.UserMessage(err, fallback)
		}
		return http.StatusInternalServerError, apperr.UserMessage(err, fallback)
	}

	return http.StatusInternalServerError, apperr.UserMessage(err, fallback)
}

func pgErrorClass(pgErr *pgconn.PgError) string {
	if len(pgErr.Code) < 2 {
		return ""
	}
	return pgErr.Code[:2]
}

func respondError(c *gin.Context, err error, fallback string) {
	c.Error(err)
	status, msg := errorResponse(err, fallback)
	c.JSON(status, gin.H{"error": msg})
}
