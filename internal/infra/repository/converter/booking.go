package converter

import (
	"encoding/json"
	"fmt"
	"math"

	"trainer-booking/internal/domain/booking"
	"trainer-booking/internal/domain/money"
	"trainer-booking/internal/domain/refund"
	sqlc "trainer-booking/internal/infra/sqlc/generated"
	"trainer-booking/internal/pkg/pgconv"
)

func BookingToCreateParams(b *booking.Booking) sqlc.CreateBookingParams {
	s := b.Snapshot()
	return sqlc.CreateBookingParams{
		ID:              s.ID,
		BookerID:        s.BookerID,
		TrainerID:       s.TrainerID,
		SessionIds:      s.SessionIDs,
		DurationWeeks:   toInt32(s.DurationWeeks),
		TotalPriceCents: pgconv.Int64PtrToPgtype(s.TotalPrice.CentsPtr()),
		Phase:           s.Phase.String(),
		BookedAt:        pgconv.TimeToPgtype(s.BookedAt),
	}
}

func BookingToUpdateParams(b *booking.Booking) sqlc.UpdateBookingStateParams {
	s := b.Snapshot()
	return sqlc.UpdateBookingStateParams{
		ID:         s.ID,
		Phase:      s.Phase.String(),
		AcceptedAt: pgconv.TimePtrToPgtype(s.AcceptedAt),
		PaidAt:     pgconv.TimePtrToPgtype(s.PaidAt),
		PaymentID:  pgconv.OptionalStringToPgtype(s.PaymentID),
		StartAt:    pgconv.TimePtrToPgtype(s.StartAt),
		EndDate:    pgconv.TimePtrToPgtype(s.EndDate),
		Reason:     pgconv.OptionalStringToPgtype(s.Reason),
		RejectedAt: pgconv.TimePtrToPgtype(s.RejectedAt),
		CancelAt:   pgconv.TimePtrToPgtype(s.CancelAt),
		ExpiredAt:  pgconv.TimePtrToPgtype(s.ExpiredAt),
		EndedAt:    pgconv.TimePtrToPgtype(s.EndedAt),
		DroppedAt:  pgconv.TimePtrToPgtype(s.DroppedAt),
	}
}

func SnapshotFromRow(row sqlc.Bookings) (*booking.Snapshot, error) {
	price, err := money.PriceFromCents(pgconv.Int64PtrFromPgtype(row.TotalPriceCents))
	if err != nil {
		return nil, err
	}
	phase := booking.Phase(row.Phase)
	if !phase.IsValid() {
		return nil, fmt.Errorf("%w: unknown phase %q", booking.ErrInconsistentSnapshot, row.Phase)
	}
	return &booking.Snapshot{
		ID:            row.ID,
		BookerID:      row.BookerID,
		TrainerID:     row.TrainerID,
		SessionIDs:    row.SessionIds,
		DurationWeeks: int(row.DurationWeeks),
		TotalPrice:    price,
		Phase:         phase,
		BookedAt:      pgconv.TimeFromPgtype(row.BookedAt),
		AcceptedAt:    pgconv.TimePtrFromPgtype(row.AcceptedAt),
		PaidAt:        pgconv.TimePtrFromPgtype(row.PaidAt),
		PaymentID:     pgconv.StringFromPgtype(row.PaymentID),
		StartAt:       pgconv.TimePtrFromPgtype(row.StartAt),
		EndDate:       pgconv.TimePtrFromPgtype(row.EndDate),
		Reason:        pgconv.StringFromPgtype(row.Reason),
		RejectedAt:    pgconv.TimePtrFromPgtype(row.RejectedAt),
		CancelAt:      pgconv.TimePtrFromPgtype(row.CancelAt),
		ExpiredAt:     pgconv.TimePtrFromPgtype(row.ExpiredAt),
		EndedAt:       pgconv.TimePtrFromPgtype(row.EndedAt),
		DroppedAt:     pgconv.TimePtrFromPgtype(row.DroppedAt),
	}, nil
}

func BookingFromRow(row sqlc.Bookings) (*booking.Booking, error) {
	snap, err := SnapshotFromRow(row)
	if err != nil {
		return nil, err
	}
	return booking.Restore(*snap)
}

func HistoryToUpsertParams(rec *booking.HistoryRecord) (sqlc.UpsertHistoryParams, error) {
	payload, err := json.Marshal(rec.Booking)
	if err != nil {
		return sqlc.UpsertHistoryParams{}, fmt.Errorf("failed to encode history snapshot: %w", err)
	}
	return sqlc.UpsertHistoryParams{
		BookingID:  rec.Booking.ID,
		BookerID:   rec.Booking.BookerID,
		TrainerID:  rec.Booking.TrainerID,
		Phase:      rec.Booking.Phase.String(),
		Reason:     pgconv.OptionalStringToPgtype(rec.Booking.Reason),
		TerminalAt: pgconv.TimePtrToPgtype(rec.Booking.TerminalAt()),
		ArchivedAt: pgconv.TimeToPgtype(rec.ArchivedAt),
		Snapshot:   payload,
	}, nil
}

func HistoryFromRow(row sqlc.BookingHistory) (*booking.HistoryRecord, error) {
	var snap booking.Snapshot
	if err := json.Unmarshal(row.Snapshot, &snap); err != nil {
		return nil, fmt.Errorf("%w: %v", booking.ErrInconsistentSnapshot, err)
	}
	return &booking.HistoryRecord{Booking: snap, ArchivedAt: pgconv.TimeFromPgtype(row.ArchivedAt)}, nil
}

func RefundToCreateParams(rec *refund.Record) (sqlc.CreateRefundParams, error) {
	payload, err := json.Marshal(rec.Snapshot)
	if err != nil {
		return sqlc.CreateRefundParams{}, fmt.Errorf("failed to encode refund snapshot: %w", err)
	}
	return sqlc.CreateRefundParams{
		ID:          rec.ID,
		BookingID:   rec.BookingID,
		BookerID:    rec.BookerID,
		RefundedAt:  pgconv.TimeToPgtype(rec.RefundedAt),
		Percentage:  toInt32(rec.Percentage.Int()),
		AmountCents: rec.Amount.Cents(),
		PaymentID:   rec.PaymentID,
		Reason:      rec.Reason,
		Snapshot:    payload,
		Status:      string(rec.Status),
	}, nil
}

func RefundFromRow(row sqlc.Refunds) (*refund.Record, error) {
	pct, err := refund.NewPercentage(int(row.Percentage))
	if err != nil {
		return nil, err
	}
	amount, err := money.FromCents(row.AmountCents)
	if err != nil {
		return nil, err
	}
	var snap booking.Snapshot
	if err = json.Unmarshal(row.Snapshot, &snap); err != nil {
		return nil, fmt.Errorf("%w: %v", booking.ErrInconsistentSnapshot, err)
	}
	return &refund.Record{
		ID:         row.ID,
		BookingID:  row.BookingID,
		BookerID:   row.BookerID,
		RefundedAt: pgconv.TimeFromPgtype(row.RefundedAt),
		Percentage: pct,
		Amount:     amount,
		PaymentID:  row.PaymentID,
		Reason:     row.Reason,
		Snapshot:   snap,
		Status:     refund.Status(row.Status),
	}, nil
}

func toInt32(v int) int32 {
	if v > math.MaxInt32 || v < math.MinInt32 {
		panic(fmt.Sprintf("value out of int32 range: %d", v))
	}
	return int32(v) // #nosec G115 -- range checked above
}
