//go:build unit

package readstore

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"trainer-booking/internal/domain/booking"
	"trainer-booking/internal/domain/schedule"
	"trainer-booking/internal/infra"
	sqlc "trainer-booking/internal/infra/sqlc/generated"
	"trainer-booking/internal/pkg/pgconv"
	"trainer-booking/internal/usecase/queries"
	"trainer-booking/tests/common/builder"
	readstoremock "trainer-booking/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBookingReadStore_FindByID(t *testing.T) {
	started := builder.NewBookingBuilder().AsStarted()
	startedRow := started.BuildRow(t)

	tests := []struct {
		name      string
		row       sqlc.Bookings
		mockError error
		wantKind  infra.RepositoryErrorKind
	}{
		{name: "success - started booking", row: startedRow},
		{name: "not found - pgx", mockError: pgx.ErrNoRows, wantKind: infra.KindNotFound},
		{name: "not found - sql", mockError: sql.ErrNoRows, wantKind: infra.KindNotFound},
		{name: "database error", mockError: assert.AnError, wantKind: infra.KindDBFailure},
		{
			name: "unknown phase is a db failure",
			row: func() sqlc.Bookings {
				r := startedRow
				r.Phase = "paused"
				return r
			}(),
			wantKind: infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := readstoremock.NewMockBookingViewQueries(ctrl)
			mockQueries.EXPECT().GetBooking(gomock.Any(), gomock.Any(), started.ID).Return(tt.row, tt.mockError).Times(1)

			store := NewBookingReadStore(mockQueries, nil)
			snap, err := store.FindByID(context.Background(), started.ID)

			if tt.wantKind != "" {
				assert.Error(t, err)
				assert.Nil(t, snap)
				assert.True(t, infra.IsKind(err, tt.wantKind))
				return
			}
			require.NoError(t, err)
			want := started.BuildSnapshot(t)
			assert.Equal(t, booking.PhaseStarted, snap.Phase)
			assert.Equal(t, want.SessionIDs, snap.SessionIDs)
			assert.Equal(t, "chrg_test_5xp6sm3hpbkkmnmf5wb", snap.PaymentID)
			require.NotNil(t, snap.EndDate)
			assert.True(t, want.EndDate.Equal(*snap.EndDate))
			assert.Equal(t, "200.00", snap.TotalPrice.String())
		})
	}
}

func TestBookingReadStore_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockBookingViewQueries(ctrl)

	trainerID := uuid.New()
	after := &queries.Keyset{At: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), ID: uuid.New()}
	rows := []sqlc.Bookings{
		builder.NewBookingBuilder().WithTrainerID(trainerID).BuildRow(t),
		builder.NewBookingBuilder().WithTrainerID(trainerID).AsAccepted().BuildRow(t),
	}

	mockQueries.EXPECT().ListBookings(gomock.Any(), gomock.Any(), sqlc.ListBookingsParams{
		BookerID:      pgconv.UUIDPtrToPgtype(nil),
		TrainerID:     pgconv.UUIDPtrToPgtype(&trainerID),
		Phases:        []string{"pending", "accepted"},
		AfterBookedAt: pgconv.TimeToPgtype(after.At),
		AfterID:       pgconv.UUIDToPgtype(after.ID),
		RowLimit:      21,
	}).Return(rows, nil).Times(1)

	store := NewBookingReadStore(mockQueries, nil)
	got, err := store.List(context.Background(), queries.BookingFilter{
		TrainerID: &trainerID,
		Phases:    []booking.Phase{booking.PhasePending, booking.PhaseAccepted},
		After:     after,
		Limit:     21,
	})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, booking.PhasePending, got[0].Phase)
	assert.Equal(t, booking.PhaseAccepted, got[1].Phase)
}

func TestBookingReadStore_PendingBookedBefore(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockBookingViewQueries(ctrl)
	cutoff := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	ids := []uuid.UUID{uuid.New()}

	mockQueries.EXPECT().ListPendingBookedBefore(gomock.Any(), gomock.Any(), gomock.Any()).Return(ids, nil).Times(1)
	mockQueries.EXPECT().ListStartedEndingBefore(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, assert.AnError).Times(1)

	store := NewBookingReadStore(mockQueries, nil)
	got, err := store.PendingBookedBefore(context.Background(), cutoff, 10)
	require.NoError(t, err)
	assert.Equal(t, ids, got)

	_, err = store.StartedEndingBefore(context.Background(), cutoff, 10)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
}

func TestScheduleReadStore(t *testing.T) {
	ctx := context.Background()
	booker := uuid.New()
	b := builder.NewSessionBuilder().WithLimit(2).WithParticipant(booker, true)
	row, participants := b.BuildRows(t)
	key := b.Key(t)

	t.Run("FindSessions omits missing keys", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockScheduleViewQueries(ctrl)
		missing := builder.NewSessionBuilder().WithTrainerID(b.TrainerID).WithSlot("Friday", "07:00").Key(t)

		mockQueries.EXPECT().GetSession(gomock.Any(), gomock.Any(), sqlc.GetSessionParams{
			TrainerID: key.TrainerID, Day: "Monday", TimeOfDay: "09:00",
		}).Return(row, nil).Times(1)
		mockQueries.EXPECT().ListParticipantsBySession(gomock.Any(), gomock.Any(), gomock.Any()).Return(participants, nil).Times(1)
		mockQueries.EXPECT().GetSession(gomock.Any(), gomock.Any(), sqlc.GetSessionParams{
			TrainerID: key.TrainerID, Day: "Friday", TimeOfDay: "07:00",
		}).Return(sqlc.Sessions{}, pgx.ErrNoRows).Times(1)

		store := NewScheduleReadStore(mockQueries, nil)
		found, err := store.FindSessions(ctx, []schedule.SessionKey{key, missing, key})
		require.NoError(t, err)
		require.Len(t, found, 1)
		sess := found[key]
		assert.Equal(t, 1, sess.ParticipantCount())
		p, ok := sess.Participant(booker)
		require.True(t, ok)
		assert.True(t, p.Paid)
	})

	t.Run("FindByTrainer groups participants by slot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockScheduleViewQueries(ctrl)
		emptyRow, _ := builder.NewSessionBuilder().WithTrainerID(b.TrainerID).WithSlot("Tuesday", "18:30").BuildRows(t)

		mockQueries.EXPECT().ListSessionsByTrainer(gomock.Any(), gomock.Any(), b.TrainerID).Return([]sqlc.Sessions{row, emptyRow}, nil).Times(1)
		mockQueries.EXPECT().ListParticipantsByTrainer(gomock.Any(), gomock.Any(), b.TrainerID).Return(participants, nil).Times(1)

		store := NewScheduleReadStore(mockQueries, nil)
		sessions, err := store.FindByTrainer(ctx, b.TrainerID)
		require.NoError(t, err)
		require.Len(t, sessions, 2)
		assert.Equal(t, 1, sessions[0].ParticipantCount())
		assert.Equal(t, 0, sessions[1].ParticipantCount())
	})
}
