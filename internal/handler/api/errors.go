package api

import (
	"net/http"

	"trainer-booking/internal/domain/booking"
	"trainer-booking/internal/domain/schedule"
	"trainer-booking/internal/handler/httperr"
	"trainer-booking/internal/pkg/errs"
	"trainer-booking/internal/usecase/commands"
	"trainer-booking/internal/usecase/queries"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
)

// Error codes carried in the response detail.
const (
	codeNotFound           = "not_found"
	codeCapacityExceeded   = "capacity_exceeded"
	codeInvalidTransition  = "invalid_transition"
	codeSessionUnavailable = "session_unavailable"
	codePartialFailure     = "partial_failure"
	codeValidation         = "validation_error"
	codeForbidden          = "forbidden"
	codeRefundFailed       = "refund_failed"
)

type errorDetail struct {
	Code       string   `json:"code"`
	SessionID  string   `json:"session_id,omitempty"`
	SessionIDs []string `json:"session_ids,omitempty"`
	From       string   `json:"from,omitempty"`
	Event      string   `json:"event,omitempty"`
	BookingID  string   `json:"booking_id,omitempty"`
	RefundID   string   `json:"refund_id,omitempty"`
	Completed  []string `json:"completed,omitempty"`
	Failed     []string `json:"failed,omitempty"`
}

// abortWithDomainError maps usecase errors onto the HTTP error taxonomy.
func abortWithDomainError(c *gin.Context, err error) {
	var (
		capErr     *schedule.CapacityError
		transErr   *booking.TransitionError
		unavailErr *commands.SessionUnavailableError
		partialErr *commands.PartialFailureError
	)

	switch {
	case errors.As(err, &partialErr):
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Refund issued but booking was not fully updated", errorDetail{
			Code:      codePartialFailure,
			BookingID: partialErr.BookingID.String(),
			RefundID:  partialErr.RefundID,
			Completed: partialErr.Completed,
			Failed:    partialErr.Failed,
		})
	case errors.Is(err, commands.ErrRefundFailed):
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Refund could not be issued", errorDetail{Code: codeRefundFailed})
	case errors.Is(err, errs.ErrValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, validationMessage(err), errorDetail{Code: codeValidation})
	case errors.Is(err, commands.ErrForbidden):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Forbidden", errorDetail{Code: codeForbidden})
	case errors.Is(err, commands.ErrBookingNotFound), errors.Is(err, queries.ErrBookingNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", errorDetail{Code: codeNotFound})
	case errors.Is(err, commands.ErrSessionNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Session not found", errorDetail{Code: codeNotFound})
	case errors.Is(err, queries.ErrHistoryNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "History record not found", errorDetail{Code: codeNotFound})
	case errors.Is(err, queries.ErrRefundNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Refund record not found", errorDetail{Code: codeNotFound})
	case errors.Is(err, schedule.ErrParticipantNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, err.Error(), errorDetail{Code: codeNotFound})
	case errors.As(err, &capErr):
		httperr.AbortWithError(c, http.StatusConflict, err, capErr.Error(), errorDetail{
			Code:      codeCapacityExceeded,
			SessionID: capErr.SessionID,
		})
	case errors.Is(err, schedule.ErrCapacityExceeded):
		httperr.AbortWithError(c, http.StatusConflict, err, "Capacity exceeded", errorDetail{Code: codeCapacityExceeded})
	case errors.As(err, &unavailErr):
		httperr.AbortWithError(c, http.StatusConflict, err, unavailErr.Error(), errorDetail{
			Code:       codeSessionUnavailable,
			SessionIDs: unavailErr.InvalidSessionIDs,
		})
	case errors.As(err, &transErr):
		httperr.AbortWithError(c, http.StatusConflict, err, "Invalid status transition", errorDetail{
			Code:  codeInvalidTransition,
			From:  transErr.From.Status().String(),
			Event: transErr.Event,
		})
	case errors.Is(err, booking.ErrInvalidTransition), errors.Is(err, commands.ErrNotClearable),
		errors.Is(err, commands.ErrDropInProgress):
		httperr.AbortWithError(c, http.StatusConflict, err, "Invalid status transition", errorDetail{Code: codeInvalidTransition})
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

// validationMessage keeps the innermost message, which is the one written for clients.
func validationMessage(err error) string {
	cause := errors.UnwrapAll(err)
	if cause == nil {
		return "Invalid request"
	}
	return cause.Error()
}

func abortBadRequest(c *gin.Context, err error, msg string) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, msg, errorDetail{Code: codeValidation})
}
