//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"trainer-booking/internal/domain/booking"
	"trainer-booking/internal/domain/refund"
	"trainer-booking/internal/handler/api"
	"trainer-booking/internal/handler/middleware"
	resdto "trainer-booking/internal/handler/dto/response"
	"trainer-booking/internal/usecase/commands"
	"trainer-booking/internal/usecase/queries"
	"trainer-booking/internal/usecase/shared"
	"trainer-booking/tests/common/builder"
	"trainer-booking/tests/common/httptest"
	"trainer-booking/tests/common/testutil"
	commandsmock "trainer-booking/tests/mock/commands"
	queriesmock "trainer-booking/tests/mock/queries"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type HistoryHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockDrop    *commandsmock.MockDropCommands
	mockArchive *commandsmock.MockArchiveCommands
	mockQueries *queriesmock.MockHistoryQueries
	handler     *api.HistoryHandler
}

func (s *HistoryHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockDrop = commandsmock.NewMockDropCommands(s.mockCtrl)
	s.mockArchive = commandsmock.NewMockArchiveCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockHistoryQueries(s.mockCtrl)
	s.handler = api.NewHistoryHandler(s.mockDrop, s.mockArchive, s.mockQueries)

	actor := middleware.RequireActor()
	s.router.POST("/refunds", actor, s.handler.Drop)
	s.router.GET("/refunds/:id", s.handler.GetRefund)
	s.router.POST("/history/archive", actor, s.handler.Archive)
	s.router.GET("/history", s.handler.List)
	s.router.GET("/history/:id", s.handler.Get)
}

func (s *HistoryHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestHistoryHandlerSuite(t *testing.T) {
	suite.Run(t, new(HistoryHandlerTestSuite))
}

func (s *HistoryHandlerTestSuite) refundView(b *builder.BookingBuilder, pct int) *queries.RefundView {
	t := s.T()
	bk := b.MustBuildDomain(t)
	p, err := refund.NewPercentage(pct)
	require.NoError(t, err)
	rec, err := refund.NewRecord(bk, p, b.StartAt.AddDate(0, 0, 7))
	require.NoError(t, err)
	view, err := queries.NewRefundView(rec)
	require.NoError(t, err)
	return view
}

func (s *HistoryHandlerTestSuite) historyView(b *builder.BookingBuilder, archivedAt time.Time) *queries.HistoryView {
	view, err := queries.NewHistoryView(&booking.HistoryRecord{Booking: b.BuildSnapshot(s.T()), ArchivedAt: archivedAt})
	require.NoError(s.T(), err)
	return view
}

// ================================================================================
// TestDrop
// ================================================================================

func (s *HistoryHandlerTestSuite) TestDrop() {
	b := builder.NewBookingBuilder().WithReason("injury").WithPaymentID("chrg_1").AsDropped()
	trainer := httptest.Trainer(b.TrainerID)
	reqBody := map[string]any{"booking_id": b.ID, "refund_percentage": 50, "reason": "injury"}

	s.Run("success: 201 with the refund record", func() {
		view := s.refundView(b, 50)
		s.mockDrop.EXPECT().
			Drop(gomock.Any(), shared.Actor{ID: b.TrainerID, Role: shared.RoleTrainer}, commands.DropInput{
				BookingID:  b.ID,
				Percentage: 50,
				Reason:     "injury",
			}).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/refunds", reqBody, trainer)

		var body resdto.RefundResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(view.RefundID, body.RefundID)
		s.Equal("100.00", body.RefundAmount)
		s.Equal(50, body.RefundPercentage)
		s.Equal("chrg_1", body.PaymentID)
		s.Equal("dropped", body.SourceBookingSnapshot.Status)
	})

	s.Run("success: zero percent is a valid choice", func() {
		s.mockDrop.EXPECT().
			Drop(gomock.Any(), gomock.Any(), commands.DropInput{BookingID: b.ID, Percentage: 0, Reason: "injury"}).
			Return(s.refundView(b, 0), nil).Times(1)

		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("refund_percentage", 0))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/refunds", body, trainer)

		var res resdto.RefundResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &res)
		s.Equal("0.00", res.RefundAmount)
	})

	s.Run("error: 400 on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing booking_id", mutate: testutil.Field("booking_id", nil)},
			{name: "missing refund_percentage", mutate: testutil.Field("refund_percentage", nil)},
			{name: "missing reason", mutate: testutil.Field("reason", nil)},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/refunds", body, trainer)
				httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "validation_error")
			})
		}
	})

	s.Run("error: 502 when the gateway refuses", func() {
		s.mockDrop.EXPECT().Drop(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.Mark(errors.New("card declined"), commands.ErrRefundFailed)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/refunds", reqBody, trainer)
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadGateway, "refund_failed")
	})

	s.Run("error: 502 with the completed and failed steps", func() {
		pf := &commands.PartialFailureError{
			BookingID: b.ID,
			RefundID:  "r-1",
			Completed: []string{"refund_issued"},
			Failed:    []string{"refund_record", "archive"},
			Cause:     errors.New("connection reset"),
		}
		s.mockDrop.EXPECT().Drop(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, pf).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/refunds", reqBody, trainer)

		var body struct {
			Detail struct {
				Code      string   `json:"code"`
				BookingID string   `json:"booking_id"`
				RefundID  string   `json:"refund_id"`
				Completed []string `json:"completed"`
				Failed    []string `json:"failed"`
			} `json:"detail"`
		}
		s.Equal(http.StatusBadGateway, rec.Code)
		require.NoError(s.T(), httptest.DecodeResponseBody(s.T(), rec.Body, &body))
		s.Equal("partial_failure", body.Detail.Code)
		s.Equal(b.ID.String(), body.Detail.BookingID)
		s.Equal("r-1", body.Detail.RefundID)
		s.Equal([]string{"refund_issued"}, body.Detail.Completed)
		s.Equal([]string{"refund_record", "archive"}, body.Detail.Failed)
	})

	s.Run("error: 409 while another drop holds the booking", func() {
		s.mockDrop.EXPECT().Drop(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.Mark(errors.New("duplicate key"), commands.ErrDropInProgress)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/refunds", reqBody, trainer)
		httptest.AssertErrorCode(s.T(), rec, http.StatusConflict, "invalid_transition")
	})

	s.Run("error: 404 when the booking is gone", func() {
		s.mockDrop.EXPECT().Drop(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/refunds", reqBody, trainer)
		httptest.AssertErrorCode(s.T(), rec, http.StatusNotFound, "not_found")
	})

	s.Run("error: 401 without an actor", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/refunds", reqBody, httptest.Anonymous)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Actor required")
	})
}

// ================================================================================
// TestGetRefund
// ================================================================================

func (s *HistoryHandlerTestSuite) TestGetRefund() {
	b := builder.NewBookingBuilder().WithReason("moved away").AsDropped()

	s.Run("success", func() {
		view := s.refundView(b, 100)
		s.mockQueries.EXPECT().GetRefund(gomock.Any(), view.RefundID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/refunds/"+view.RefundID, nil, httptest.Anonymous)

		var body resdto.RefundResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("200.00", body.RefundAmount)
		s.Equal(b.ID, body.BookingID)
	})

	s.Run("error: 404 for an unknown id", func() {
		s.mockQueries.EXPECT().GetRefund(gomock.Any(), "nope").Return(nil, queries.ErrRefundNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/refunds/nope", nil, httptest.Anonymous)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Refund record not found")
	})
}

// ================================================================================
// TestArchive
// ================================================================================

func (s *HistoryHandlerTestSuite) TestArchive() {
	b := builder.NewBookingBuilder().AsEnded()
	archivedAt := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	s.Run("success: repeatable", func() {
		view := s.historyView(b, archivedAt)
		s.mockArchive.EXPECT().Archive(gomock.Any(), shared.SystemActor(), b.ID).Return(view, nil).Times(2)

		for range 2 {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/history/archive",
				map[string]any{"booking_id": b.ID}, httptest.System())

			var body resdto.HistoryResponse
			httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
			s.Equal("ended", body.Status)
			s.True(archivedAt.Equal(body.ArchivedAt))
		}
	})

	s.Run("error: 409 for a live booking", func() {
		s.mockArchive.EXPECT().Archive(gomock.Any(), gomock.Any(), b.ID).Return(nil, commands.ErrNotClearable).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/history/archive",
			map[string]any{"booking_id": b.ID}, httptest.System())
		httptest.AssertErrorCode(s.T(), rec, http.StatusConflict, "invalid_transition")
	})

	s.Run("error: 400 without booking_id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/history/archive", map[string]any{}, httptest.System())
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "validation_error")
	})
}

// ================================================================================
// TestGet / TestList
// ================================================================================

func (s *HistoryHandlerTestSuite) TestGet() {
	b := builder.NewBookingBuilder().AsEnded()

	s.Run("success", func() {
		s.mockQueries.EXPECT().GetByBookingID(gomock.Any(), b.ID).
			Return(s.historyView(b, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/history/"+b.ID.String(), nil, httptest.Anonymous)

		var body resdto.HistoryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(b.ID, body.ID)
		s.Empty(body.RemainingTime)
	})

	s.Run("error: 404", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByBookingID(gomock.Any(), id).Return(nil, queries.ErrHistoryNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/history/"+id.String(), nil, httptest.Anonymous)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "History record not found")
	})

	s.Run("error: 400 for a malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/history/x", nil, httptest.Anonymous)
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "validation_error")
	})
}

func (s *HistoryHandlerTestSuite) TestList() {
	trainerID := uuid.New()
	b := builder.NewBookingBuilder().WithTrainerID(trainerID).AsEnded()

	s.Run("success: forwards filters and cursor", func() {
		views := []*queries.HistoryView{s.historyView(b, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))}
		s.mockQueries.EXPECT().
			List(gomock.Any(), gomock.Nil(), &trainerID, &queries.Cursor{After: "abc"}, 5).
			Return(views, &queries.Cursor{After: "def"}, nil).Times(1)

		url := "/history?trainerId=" + trainerID.String() + "&after=abc&limit=5"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, httptest.Anonymous)

		var body resdto.HistoryListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Items, 1)
		s.Equal("def", body.NextCursor)
	})

	s.Run("error: 400 for a limit above 100", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/history?trainerId="+trainerID.String()+"&limit=101", nil, httptest.Anonymous)
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "validation_error")
	})
}
