//go:build unit

package commands_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"trainer-booking/internal/domain/booking"
	"trainer-booking/internal/domain/schedule"
	"trainer-booking/internal/infra"
	"trainer-booking/internal/infra/memstore"
	"trainer-booking/internal/pkg/clock"
	"trainer-booking/internal/pkg/errs"
	"trainer-booking/internal/usecase/commands"
	"trainer-booking/internal/usecase/shared"
	commandsmock "trainer-booking/tests/mock/commands"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var t0 = time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

type fixture struct {
	store    *memstore.Store
	clock    *clock.MockClock
	gateway  *commandsmock.MockRefundGateway
	schedule commands.ScheduleCommands
	bookings commands.BookingCommands
	expiry   commands.ExpiryCommands
	drop     commands.DropCommands
	trainer  uuid.UUID
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	store := memstore.New()
	clk := clock.NewMockClock(t0)
	expiry := commands.NewExpiryUseCase(store, clk, commands.RetryConfig{Attempts: 1})
	gw := commandsmock.NewMockRefundGateway(ctrl)
	return &fixture{
		store:    store,
		clock:    clk,
		gateway:  gw,
		schedule: commands.NewScheduleUseCase(store),
		bookings: commands.NewBookingUseCase(store, expiry, clk),
		expiry:   expiry,
		drop:     commands.NewDropUseCase(store, gw, clk),
		trainer:  uuid.New(),
	}
}

func (f *fixture) trainerActor() shared.Actor {
	return shared.Actor{ID: f.trainer, Role: shared.RoleTrainer}
}

func member(id uuid.UUID) shared.Actor {
	return shared.Actor{ID: id, Role: shared.RoleMember}
}

func (f *fixture) publish(t *testing.T, day, at string, limit *int32) string {
	t.Helper()
	sess, err := f.schedule.PublishSession(context.Background(), f.trainerActor(), commands.PublishSessionInput{
		TrainerID:        f.trainer,
		Day:              day,
		Time:             at,
		ClassType:        "strength",
		ParticipantLimit: limit,
		ClassPrice:       "50",
	})
	require.NoError(t, err)
	return sess.ID()
}

func (f *fixture) create(t *testing.T, bookerID uuid.UUID, sessionIDs ...string) uuid.UUID {
	t.Helper()
	view, err := f.bookings.Create(context.Background(), member(bookerID), commands.CreateBookingInput{
		BookerID:      bookerID,
		TrainerID:     f.trainer,
		SessionIDs:    sessionIDs,
		DurationWeeks: 4,
		TotalPrice:    "200",
	})
	require.NoError(t, err)
	return view.ID
}

func (f *fixture) paid(t *testing.T, bookerID uuid.UUID, sessionIDs ...string) uuid.UUID {
	t.Helper()
	ctx := context.Background()
	id := f.create(t, bookerID, sessionIDs...)
	_, err := f.bookings.Accept(ctx, f.trainerActor(), id)
	require.NoError(t, err)
	_, err = f.bookings.Pay(ctx, member(bookerID), id, "chrg_"+bookerID.String()[:8])
	require.NoError(t, err)
	return id
}

func (f *fixture) session(t *testing.T, id string) *schedule.Session {
	t.Helper()
	key, err := schedule.ParseSessionID(id)
	require.NoError(t, err)
	found, err := f.store.FindSessions(context.Background(), []schedule.SessionKey{key})
	require.NoError(t, err)
	require.Contains(t, found, key)
	return found[key]
}

func limit(n int32) *int32 { return &n }

func TestBookingLifecycle(t *testing.T) {
	ctx := context.Background()

	t.Run("paying commits capacity and the second payer is refused", func(t *testing.T) {
		f := newFixture(t)
		sid := f.publish(t, "Monday", "09:00", limit(1))
		first, second := uuid.New(), uuid.New()

		a := f.create(t, first, sid)
		b := f.create(t, second, sid)
		for _, id := range []uuid.UUID{a, b} {
			_, err := f.bookings.Accept(ctx, f.trainerActor(), id)
			require.NoError(t, err)
		}

		view, err := f.bookings.Pay(ctx, member(first), a, "chrg_1")
		require.NoError(t, err)
		assert.Equal(t, "accepted", view.Status)
		assert.True(t, view.Paid)

		_, err = f.bookings.Pay(ctx, member(second), b, "chrg_2")
		var capErr *schedule.CapacityError
		require.ErrorAs(t, err, &capErr)
		assert.Equal(t, sid, capErr.SessionID)

		snap, err := f.store.FindByID(ctx, b)
		require.NoError(t, err)
		assert.Equal(t, booking.PhaseAccepted, snap.Phase)
		assert.False(t, snap.Paid())

		sess := f.session(t, sid)
		assert.Equal(t, 1, sess.ParticipantCount())
		p, ok := sess.Participant(first)
		require.True(t, ok)
		assert.True(t, p.Paid)
		assert.Equal(t, "chrg_1", p.PaymentID)
	})

	t.Run("concurrent payers never overfill a session", func(t *testing.T) {
		f := newFixture(t)
		const seats, payers = 3, 12
		sid := f.publish(t, "Tuesday", "18:00", limit(seats))

		bookers := make([]uuid.UUID, payers)
		ids := make([]uuid.UUID, payers)
		for i := range bookers {
			bookers[i] = uuid.New()
			ids[i] = f.create(t, bookers[i], sid)
			_, err := f.bookings.Accept(ctx, f.trainerActor(), ids[i])
			require.NoError(t, err)
		}

		var (
			wg      sync.WaitGroup
			mu      sync.Mutex
			paid    int
			refused int
		)
		start := make(chan struct{})
		for i := range ids {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				<-start
				_, err := f.bookings.Pay(ctx, member(bookers[i]), ids[i], fmt.Sprintf("chrg_%d", i))
				mu.Lock()
				defer mu.Unlock()
				switch {
				case err == nil:
					paid++
				case errors.Is(err, schedule.ErrCapacityExceeded):
					refused++
				default:
					t.Errorf("unexpected pay error: %v", err)
				}
			}(i)
		}
		close(start)
		wg.Wait()

		assert.Equal(t, seats, paid)
		assert.Equal(t, payers-seats, refused)
		assert.Equal(t, seats, f.session(t, sid).ParticipantCount())
	})

	t.Run("a booker cannot pay for a seat they already hold", func(t *testing.T) {
		f := newFixture(t)
		sid := f.publish(t, "Monday", "09:00", limit(1))
		booker := uuid.New()

		first := f.create(t, booker, sid)
		second := f.create(t, booker, sid)
		for _, id := range []uuid.UUID{first, second} {
			_, err := f.bookings.Accept(ctx, f.trainerActor(), id)
			require.NoError(t, err)
		}
		_, err := f.bookings.Pay(ctx, member(booker), first, "chrg_first")
		require.NoError(t, err)

		_, err = f.bookings.Pay(ctx, member(booker), second, "chrg_second")
		var unavailErr *commands.SessionUnavailableError
		require.ErrorAs(t, err, &unavailErr)
		assert.Equal(t, []string{sid}, unavailErr.InvalidSessionIDs)
		assert.Contains(t, unavailErr.Error(), "already booked")

		snap, err := f.store.FindByID(ctx, second)
		require.NoError(t, err)
		assert.Equal(t, booking.PhaseAccepted, snap.Phase)
		assert.False(t, snap.Paid())

		// cancelling the unpaid duplicate keeps the paid seat
		_, err = f.bookings.Cancel(ctx, member(booker), second, "duplicate", nil)
		require.NoError(t, err)

		sess := f.session(t, sid)
		assert.Equal(t, 1, sess.ParticipantCount())
		p, ok := sess.Participant(booker)
		require.True(t, ok)
		assert.True(t, p.Paid)
		assert.Equal(t, "chrg_first", p.PaymentID)
	})

	t.Run("create refuses unknown sessions", func(t *testing.T) {
		f := newFixture(t)
		ghost := f.trainer.String() + "-Friday-07:00"

		_, err := f.bookings.Create(ctx, member(uuid.Nil), commands.CreateBookingInput{})
		require.Error(t, err)

		booker := uuid.New()
		_, err = f.bookings.Create(ctx, member(booker), commands.CreateBookingInput{
			BookerID:      booker,
			TrainerID:     f.trainer,
			SessionIDs:    []string{ghost},
			DurationWeeks: 4,
			TotalPrice:    "200",
		})
		var unavail *commands.SessionUnavailableError
		require.ErrorAs(t, err, &unavail)
		assert.Equal(t, []string{ghost}, unavail.InvalidSessionIDs)
	})

	t.Run("only the booker may create", func(t *testing.T) {
		f := newFixture(t)
		sid := f.publish(t, "Monday", "09:00", nil)

		_, err := f.bookings.Create(ctx, member(uuid.New()), commands.CreateBookingInput{
			BookerID:      uuid.New(),
			TrainerID:     f.trainer,
			SessionIDs:    []string{sid},
			DurationWeeks: 4,
			TotalPrice:    "200",
		})
		assert.ErrorIs(t, err, commands.ErrForbidden)
	})

	t.Run("cancel archives and removes the live row", func(t *testing.T) {
		f := newFixture(t)
		sid := f.publish(t, "Tuesday", "18:30", limit(1))
		booker := uuid.New()
		id := f.create(t, booker, sid)
		_, err := f.bookings.Accept(ctx, f.trainerActor(), id)
		require.NoError(t, err)

		view, err := f.bookings.Cancel(ctx, member(booker), id, "travel", nil)
		require.NoError(t, err)
		assert.Equal(t, "cancelled", view.Status)

		_, err = f.store.FindByID(ctx, id)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		rec, err := f.store.History().FindByBookingID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, booking.PhaseCancelled, rec.Booking.Phase)
	})

	t.Run("a paid booking can no longer be cancelled", func(t *testing.T) {
		f := newFixture(t)
		sid := f.publish(t, "Tuesday", "18:30", nil)
		booker := uuid.New()
		id := f.paid(t, booker, sid)

		_, err := f.bookings.Cancel(ctx, member(booker), id, "travel", nil)
		var transErr *booking.TransitionError
		require.ErrorAs(t, err, &transErr)
		assert.Equal(t, "cancel", transErr.Event)
		assert.Equal(t, 1, f.session(t, sid).ParticipantCount())
	})

	t.Run("start sets the end date and ended bookings can be cleared", func(t *testing.T) {
		f := newFixture(t)
		sid := f.publish(t, "Monday", "09:00", nil)
		booker := uuid.New()
		id := f.paid(t, booker, sid)

		start := time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)
		view, err := f.bookings.SetStart(ctx, f.trainerActor(), id, start)
		require.NoError(t, err)
		require.NotNil(t, view.EndDate)
		assert.True(t, start.AddDate(0, 0, 28).Equal(*view.EndDate))

		err = f.bookings.Clear(ctx, f.trainerActor(), id)
		assert.ErrorIs(t, err, commands.ErrNotClearable)

		f.clock.Set(start.AddDate(0, 0, 29))
		ended, err := f.expiry.AutoEnd(ctx, 10)
		require.NoError(t, err)
		assert.Equal(t, 1, ended)
		assert.Equal(t, 0, f.session(t, sid).ParticipantCount())

		require.NoError(t, f.bookings.Clear(ctx, f.trainerActor(), id))
		_, err = f.store.FindByID(ctx, id)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		rec, err := f.store.History().FindByBookingID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, booking.PhaseEnded, rec.Booking.Phase)
	})

	t.Run("patch rejects an unknown status", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.bookings.Patch(ctx, f.trainerActor(), uuid.New(), commands.PatchInput{Status: "paused"})
		assert.True(t, errs.IsValidation(err))
	})
}

func TestExpiry(t *testing.T) {
	ctx := context.Background()

	t.Run("sweep expires pending bookings past the window", func(t *testing.T) {
		f := newFixture(t)
		sid := f.publish(t, "Monday", "09:00", nil)
		stale := f.create(t, uuid.New(), sid)
		f.clock.Add(6 * 24 * time.Hour)
		fresh := f.create(t, uuid.New(), sid)

		f.clock.Set(t0.Add(8 * 24 * time.Hour))
		n, err := f.expiry.SweepExpired(ctx, 10)
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		snap, err := f.store.FindByID(ctx, stale)
		require.NoError(t, err)
		assert.Equal(t, booking.PhaseExpired, snap.Phase)
		_, err = f.store.History().FindByBookingID(ctx, stale)
		require.NoError(t, err)

		snap, err = f.store.FindByID(ctx, fresh)
		require.NoError(t, err)
		assert.Equal(t, booking.PhasePending, snap.Phase)
	})

	t.Run("observed ids are skipped once no longer expirable", func(t *testing.T) {
		f := newFixture(t)
		sid := f.publish(t, "Monday", "09:00", nil)
		id := f.create(t, uuid.New(), sid)
		f.clock.Set(t0.Add(8 * 24 * time.Hour))

		n, err := f.expiry.ObserveExpiry(ctx, id, uuid.New())
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		n, err = f.expiry.ObserveExpiry(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, 0, n)
	})

	t.Run("explicit expire inside the window is refused", func(t *testing.T) {
		f := newFixture(t)
		sid := f.publish(t, "Monday", "09:00", nil)
		booker := uuid.New()
		id := f.create(t, booker, sid)

		_, err := f.expiry.Expire(ctx, member(booker), id)
		assert.True(t, errors.Is(err, booking.ErrInvalidTransition))
		assert.True(t, errors.Is(err, booking.ErrNotExpired))
	})
}

func TestDrop(t *testing.T) {
	ctx := context.Background()

	started := func(t *testing.T, f *fixture) (uuid.UUID, uuid.UUID, string) {
		sid := f.publish(t, "Monday", "09:00", nil)
		booker := uuid.New()
		id := f.paid(t, booker, sid)
		_, err := f.bookings.SetStart(ctx, f.trainerActor(), id, time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		f.clock.Set(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC))
		return id, booker, sid
	}

	t.Run("refunds half of the total and archives", func(t *testing.T) {
		f := newFixture(t)
		id, booker, sid := started(t, f)

		f.gateway.EXPECT().Refund(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in commands.RefundInstruction) error {
				assert.Equal(t, id, in.BookingID)
				assert.Equal(t, "100.00", in.Amount.String())
				assert.NotEmpty(t, in.IdempotencyKey)
				return nil
			}).Times(1)

		view, err := f.drop.Drop(ctx, f.trainerActor(), commands.DropInput{BookingID: id, Percentage: 50, Reason: "injury"})
		require.NoError(t, err)
		assert.Equal(t, "100.00", view.RefundAmount)
		assert.Equal(t, booker, view.BookerID)
		assert.Equal(t, "dropped", view.SourceBookingSnapshot.Status)

		rec, err := f.store.Refunds().FindByID(ctx, view.RefundID)
		require.NoError(t, err)
		assert.Equal(t, 50, rec.Percentage.Int())
		_, err = f.store.FindByID(ctx, id)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		assert.Equal(t, 0, f.session(t, sid).ParticipantCount())
	})

	t.Run("zero percent skips the gateway", func(t *testing.T) {
		f := newFixture(t)
		id, _, _ := started(t, f)

		view, err := f.drop.Drop(ctx, f.trainerActor(), commands.DropInput{BookingID: id, Percentage: 0, Reason: "injury"})
		require.NoError(t, err)
		assert.Equal(t, "0.00", view.RefundAmount)
	})

	t.Run("invalid percentage writes nothing", func(t *testing.T) {
		f := newFixture(t)
		id, _, _ := started(t, f)

		_, err := f.drop.Drop(ctx, f.trainerActor(), commands.DropInput{BookingID: id, Percentage: 40, Reason: "injury"})
		assert.True(t, errs.IsValidation(err))

		snap, err := f.store.FindByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, booking.PhaseStarted, snap.Phase)
	})

	t.Run("gateway failure leaves the booking started and a retry reuses the key", func(t *testing.T) {
		f := newFixture(t)
		id, _, _ := started(t, f)

		var keys []string
		gomock.InOrder(
			f.gateway.EXPECT().Refund(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, in commands.RefundInstruction) error {
					keys = append(keys, in.IdempotencyKey)
					return errors.New("declined")
				}),
			f.gateway.EXPECT().Refund(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, in commands.RefundInstruction) error {
					keys = append(keys, in.IdempotencyKey)
					return nil
				}),
		)

		_, err := f.drop.Drop(ctx, f.trainerActor(), commands.DropInput{BookingID: id, Percentage: 100, Reason: "injury"})
		assert.True(t, errors.Is(err, commands.ErrRefundFailed))

		snap, err := f.store.FindByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, booking.PhaseStarted, snap.Phase)

		_, err = f.drop.Drop(ctx, f.trainerActor(), commands.DropInput{BookingID: id, Percentage: 100, Reason: "injury"})
		require.NoError(t, err)
		assert.Equal(t, []string{"drop-" + id.String(), "drop-" + id.String()}, keys)
	})

	t.Run("a second drop while the refund is in flight is refused", func(t *testing.T) {
		f := newFixture(t)
		id, booker, _ := started(t, f)

		entered, release := make(chan struct{}), make(chan struct{})
		f.gateway.EXPECT().Refund(gomock.Any(), gomock.Any()).
			DoAndReturn(func(context.Context, commands.RefundInstruction) error {
				close(entered)
				<-release
				return nil
			}).Times(1)

		done := make(chan error, 1)
		go func() {
			_, err := f.drop.Drop(ctx, f.trainerActor(), commands.DropInput{BookingID: id, Percentage: 100, Reason: "injury"})
			done <- err
		}()
		select {
		case <-entered:
		case err := <-done:
			t.Fatalf("first drop returned before reaching the gateway: %v", err)
		}

		_, err := f.drop.Drop(ctx, member(booker), commands.DropInput{BookingID: id, Percentage: 100, Reason: "injury"})
		assert.True(t, errors.Is(err, commands.ErrDropInProgress))
		assert.False(t, errors.Is(err, commands.ErrPartialFailure))

		close(release)
		require.NoError(t, <-done)

		_, err = f.drop.Drop(ctx, member(booker), commands.DropInput{BookingID: id, Percentage: 100, Reason: "injury"})
		assert.True(t, errors.Is(err, commands.ErrBookingNotFound))
	})

	t.Run("a failed bookkeeping write after the refund is a partial failure", func(t *testing.T) {
		f := newFixture(t)
		id, booker, _ := started(t, f)

		f.gateway.EXPECT().Refund(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, _ commands.RefundInstruction) error {
				// the live row is cleared while the refund is in flight
				return f.store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
					return tx.Bookings().Delete(ctx, id)
				})
			}).Times(1)

		_, err := f.drop.Drop(ctx, member(booker), commands.DropInput{BookingID: id, Percentage: 100, Reason: "injury"})
		var pf *commands.PartialFailureError
		require.ErrorAs(t, err, &pf)
		assert.True(t, errors.Is(err, commands.ErrPartialFailure))
		assert.Equal(t, id, pf.BookingID)
		assert.Equal(t, []string{"refund_issued"}, pf.Completed)
		assert.Contains(t, pf.Failed, "refund_record")
		assert.NotEmpty(t, pf.RefundID)

		_, err = f.store.Refunds().FindByID(ctx, pf.RefundID)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("the booker can drop", func(t *testing.T) {
		f := newFixture(t)
		id, booker, sid := started(t, f)
		f.gateway.EXPECT().Refund(gomock.Any(), gomock.Any()).Return(nil).Times(1)

		view, err := f.drop.Drop(ctx, member(booker), commands.DropInput{BookingID: id, Percentage: 25, Reason: "moved away"})
		require.NoError(t, err)
		assert.Equal(t, "50.00", view.RefundAmount)
		assert.Equal(t, 0, f.session(t, sid).ParticipantCount())
	})

	t.Run("a stranger cannot drop", func(t *testing.T) {
		f := newFixture(t)
		id, _, _ := started(t, f)

		_, err := f.drop.Drop(ctx, member(uuid.New()), commands.DropInput{BookingID: id, Percentage: 50, Reason: "injury"})
		assert.ErrorIs(t, err, commands.ErrForbidden)

		snap, err := f.store.FindByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, booking.PhaseStarted, snap.Phase)
	})
}
