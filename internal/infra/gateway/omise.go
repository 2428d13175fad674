package gateway

import (
	"context"
	"fmt"
	"log/slog"

	"trainer-booking/internal/usecase/commands"

	"github.com/omise/omise-go"
	"github.com/omise/omise-go/operations"
)

// OmiseRefunds refunds the Omise charge recorded as the booking's payment id.
type OmiseRefunds struct {
	client *omise.Client
}

func NewOmiseClient(pub, sec string) (*omise.Client, error) {
	c, err := omise.NewClient(pub, sec)
	if err != nil {
		return nil, err
	}
	c.SetDebug(false)
	return c, nil
}

func NewOmiseRefunds(client *omise.Client) *OmiseRefunds {
	return &OmiseRefunds{client: client}
}

func (g *OmiseRefunds) Refund(ctx context.Context, in commands.RefundInstruction) error {
	if in.PaymentID == "" {
		return fmt.Errorf("booking %s has no charge to refund", in.BookingID)
	}
	// Omise does not deduplicate on metadata; the key is kept for reconciliation.
	result := &omise.Refund{}
	err := g.client.Do(result, &operations.CreateRefund{
		ChargeID: in.PaymentID,
		Amount:   in.Amount.Cents(),
		Metadata: map[string]interface{}{
			"booking_id":      in.BookingID.String(),
			"idempotency_key": in.IdempotencyKey,
		},
	})
	if err != nil {
		return fmt.Errorf("omise create refund: %w", err)
	}
	slog.InfoContext(ctx, "refund issued",
		slog.String("booking_id", in.BookingID.String()),
		slog.String("idempotency_key", in.IdempotencyKey),
		slog.String("omise_refund_id", result.ID))
	return nil
}
