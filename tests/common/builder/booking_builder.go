//go:build unit || e2e

package builder

import (
	"fmt"
	"testing"
	"time"

	"trainer-booking/internal/domain/booking"
	"trainer-booking/internal/domain/money"
	reqdto "trainer-booking/internal/handler/dto/request"
	"trainer-booking/internal/infra/repository/converter"
	sqlc "trainer-booking/internal/infra/sqlc/generated"
	"trainer-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type BookingBuilder struct {
	ID            uuid.UUID
	BookerID      uuid.UUID
	TrainerID     uuid.UUID
	Slots         []string
	DurationWeeks int
	Price         string
	BookedAt      time.Time
	Target        booking.Phase
	PaymentID     string
	StartAt       time.Time
	Reason        string
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:            uuid.New(),
		BookerID:      uuid.New(),
		TrainerID:     uuid.New(),
		Slots:         []string{"Monday-09:00"},
		DurationWeeks: 4,
		Price:         "200",
		BookedAt:      time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
		Target:        booking.PhasePending,
		PaymentID:     "chrg_test_5xp6sm3hpbkkmnmf5wb",
		StartAt:       time.Date(2024, 1, 8, 9, 0, 0, 0, time.UTC),
		Reason:        "schedule conflict",
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// SessionIDs renders Slots ("Day-HH:MM") against the builder's trainer.
func (b *BookingBuilder) SessionIDs() []string {
	ids := make([]string, len(b.Slots))
	for i, slot := range b.Slots {
		ids[i] = fmt.Sprintf("%s-%s", b.TrainerID, slot)
	}
	return ids
}

// Build methods
func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	price, err := money.ParsePrice(b.Price)
	if err != nil {
		return nil, err
	}
	bk, err := booking.NewBooking(b.ID, b.BookerID, b.TrainerID, b.SessionIDs(), b.DurationWeeks, price, b.BookedAt)
	if err != nil {
		return nil, err
	}
	if err := b.advance(bk); err != nil {
		return nil, err
	}
	return bk, nil
}

func (b *BookingBuilder) MustBuildDomain(t testing.TB) *booking.Booking {
	t.Helper()
	bk, err := b.BuildDomain()
	require.NoError(t, err)
	return bk
}

func (b *BookingBuilder) BuildSnapshot(t testing.TB) booking.Snapshot {
	t.Helper()
	return b.MustBuildDomain(t).Snapshot()
}

// BuildView projects the snapshot as a read at now.
func (b *BookingBuilder) BuildView(t testing.TB, now time.Time) *queries.BookingView {
	t.Helper()
	snap := b.BuildSnapshot(t)
	view, err := queries.NewBookingView(&snap, now)
	require.NoError(t, err)
	return view
}

// BuildRow renders the booking as the bookings table stores it.
func (b *BookingBuilder) BuildRow(t testing.TB) sqlc.Bookings {
	t.Helper()
	bk := b.MustBuildDomain(t)
	c := converter.BookingToCreateParams(bk)
	u := converter.BookingToUpdateParams(bk)
	return sqlc.Bookings{
		ID:              c.ID,
		BookerID:        c.BookerID,
		TrainerID:       c.TrainerID,
		SessionIds:      c.SessionIds,
		DurationWeeks:   c.DurationWeeks,
		TotalPriceCents: c.TotalPriceCents,
		Phase:           u.Phase,
		BookedAt:        c.BookedAt,
		AcceptedAt:      u.AcceptedAt,
		PaidAt:          u.PaidAt,
		PaymentID:       u.PaymentID,
		StartAt:         u.StartAt,
		EndDate:         u.EndDate,
		Reason:          u.Reason,
		RejectedAt:      u.RejectedAt,
		CancelAt:        u.CancelAt,
		ExpiredAt:       u.ExpiredAt,
		EndedAt:         u.EndedAt,
		DroppedAt:       u.DroppedAt,
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		BookerID:      b.BookerID,
		TrainerID:     b.TrainerID,
		SessionIDs:    b.SessionIDs(),
		DurationWeeks: b.DurationWeeks,
		TotalPrice:    b.Price,
	}
}

// advance walks the state machine up to Target using the builder's timestamps.
func (b *BookingBuilder) advance(bk *booking.Booking) error {
	acceptedAt := b.BookedAt.Add(time.Hour)
	paidAt := b.BookedAt.Add(2 * time.Hour)
	endedAt := b.StartAt.AddDate(0, 0, 7*b.DurationWeeks)

	steps := map[booking.Phase][]func() error{
		booking.PhasePending:   nil,
		booking.PhaseAccepted:  {func() error { return bk.Accept(acceptedAt) }},
		booking.PhasePaid:      {func() error { return bk.Accept(acceptedAt) }, func() error { return bk.Pay(b.PaymentID, paidAt) }},
		booking.PhaseRejected:  {func() error { return bk.Reject(b.Reason, acceptedAt) }},
		booking.PhaseCancelled: {func() error { return bk.Cancel(b.Reason, acceptedAt) }},
		booking.PhaseExpired:   {func() error { return bk.Expire(b.BookedAt.AddDate(0, 0, 8)) }},
	}
	started := []func() error{
		func() error { return bk.Accept(acceptedAt) },
		func() error { return bk.Pay(b.PaymentID, paidAt) },
		func() error { return bk.Start(b.StartAt) },
	}
	steps[booking.PhaseStarted] = started
	steps[booking.PhaseEnded] = append(append([]func() error{}, started...), func() error { return bk.End(endedAt) })
	steps[booking.PhaseDropped] = append(append([]func() error{}, started...), func() error { return bk.Drop(b.Reason, b.StartAt.AddDate(0, 0, 7)) })

	path, ok := steps[b.Target]
	if !ok {
		return fmt.Errorf("builder: unsupported target phase %q", b.Target)
	}
	for _, step := range path {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

// Fluent builder methods
func (b *BookingBuilder) WithID(id uuid.UUID) *BookingBuilder {
	b.ID = id
	return b
}

func (b *BookingBuilder) WithBookerID(id uuid.UUID) *BookingBuilder {
	b.BookerID = id
	return b
}

func (b *BookingBuilder) WithTrainerID(id uuid.UUID) *BookingBuilder {
	b.TrainerID = id
	return b
}

func (b *BookingBuilder) WithSlots(slots ...string) *BookingBuilder {
	b.Slots = slots
	return b
}

func (b *BookingBuilder) WithDurationWeeks(weeks int) *BookingBuilder {
	b.DurationWeeks = weeks
	return b
}

func (b *BookingBuilder) WithPrice(price string) *BookingBuilder {
	b.Price = price
	return b
}

func (b *BookingBuilder) WithBookedAt(at time.Time) *BookingBuilder {
	b.BookedAt = at
	return b
}

func (b *BookingBuilder) WithStartAt(at time.Time) *BookingBuilder {
	b.StartAt = at
	return b
}

func (b *BookingBuilder) WithReason(reason string) *BookingBuilder {
	b.Reason = reason
	return b
}

func (b *BookingBuilder) WithPaymentID(id string) *BookingBuilder {
	b.PaymentID = id
	return b
}

func (b *BookingBuilder) AsPhase(phase booking.Phase) *BookingBuilder {
	b.Target = phase
	return b
}

func (b *BookingBuilder) AsAccepted() *BookingBuilder { return b.AsPhase(booking.PhaseAccepted) }
func (b *BookingBuilder) AsPaid() *BookingBuilder     { return b.AsPhase(booking.PhasePaid) }
func (b *BookingBuilder) AsStarted() *BookingBuilder  { return b.AsPhase(booking.PhaseStarted) }
func (b *BookingBuilder) AsEnded() *BookingBuilder    { return b.AsPhase(booking.PhaseEnded) }
func (b *BookingBuilder) AsDropped() *BookingBuilder  { return b.AsPhase(booking.PhaseDropped) }
