package commands

import (
	"context"
	"fmt"
	"strings"

	"trainer-booking/internal/domain/money"
	"trainer-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound    = errs.New("booking not found")
	ErrSessionNotFound    = errs.New("session not found")
	ErrSessionUnavailable = errs.New("session unavailable")
	ErrPartialFailure     = errs.New("partial failure")
	ErrRefundFailed       = errs.New("refund could not be issued")
	ErrDropInProgress     = errs.New("booking already has a refund in progress")
	ErrForbidden          = errs.New("actor is not allowed to perform this action")
	ErrNotClearable       = errs.New("only ended or expired bookings can be cleared")
	ErrUnsupportedPatch   = errs.Validation("status cannot be set through a patch")
)

// SessionUnavailableError lists the sessions that failed re-validation.
type SessionUnavailableError struct {
	InvalidSessionIDs []string
	Reason            string
}

func (e *SessionUnavailableError) Error() string {
	if e.Reason != "" {
		return e.Reason
	}
	return "Session unavailable, session id: " + strings.Join(e.InvalidSessionIDs, ", ")
}

func (e *SessionUnavailableError) Is(target error) bool {
	return target == ErrSessionUnavailable
}

// PartialFailureError reports a drop whose refund was issued but whose local writes were not committed.
type PartialFailureError struct {
	BookingID uuid.UUID
	RefundID  string
	Completed []string
	Failed    []string
	Cause     error
}

func (e *PartialFailureError) Error() string {
	return fmt.Sprintf("partial failure for booking %s (refund %s): completed [%s], failed [%s]: %v",
		e.BookingID, e.RefundID, strings.Join(e.Completed, ", "), strings.Join(e.Failed, ", "), e.Cause)
}

func (e *PartialFailureError) Is(target error) bool {
	return target == ErrPartialFailure
}

func (e *PartialFailureError) Unwrap() error { return e.Cause }

// RefundInstruction is what gets sent to the payment gateway.
type RefundInstruction struct {
	// IdempotencyKey is the same for every attempt on one booking.
	IdempotencyKey string
	BookingID      uuid.UUID
	PaymentID      string
	Amount         money.Money
}

type RefundGateway interface {
	Refund(ctx context.Context, in RefundInstruction) error
}
