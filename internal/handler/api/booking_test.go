//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"trainer-booking/internal/domain/booking"
	"trainer-booking/internal/domain/schedule"
	"trainer-booking/internal/handler/api"
	"trainer-booking/internal/handler/middleware"
	resdto "trainer-booking/internal/handler/dto/response"
	"trainer-booking/internal/pkg/errs"
	"trainer-booking/internal/usecase/commands"
	"trainer-booking/internal/usecase/queries"
	"trainer-booking/internal/usecase/shared"
	"trainer-booking/tests/common/builder"
	"trainer-booking/tests/common/httptest"
	"trainer-booking/tests/common/testutil"
	commandsmock "trainer-booking/tests/mock/commands"
	queriesmock "trainer-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)

	actor := middleware.RequireActor()
	s.router.GET("/bookings", s.handler.List)
	s.router.GET("/bookings/:id", s.handler.Get)
	s.router.POST("/bookings", actor, s.handler.Create)
	s.router.PATCH("/bookings/:id", actor, s.handler.Patch)
	s.router.DELETE("/bookings/:id", actor, s.handler.Clear)
	s.router.POST("/bookings/:id/accept", actor, s.handler.Accept)
	s.router.POST("/bookings/:id/payment", actor, s.handler.Pay)
	s.router.POST("/bookings/:id/start", actor, s.handler.Start)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

type testCaseBooking struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/bookings"

	b := builder.NewBookingBuilder()
	reqBody := b.BuildCreateRequestDTO()
	returnView := b.BuildView(s.T(), fixedNow)
	member := httptest.Member(b.BookerID)

	bound := []testCaseBooking{
		{name: "duration boundary OK (1)", mutate: testutil.Field("duration_weeks", 1), expectCode: http.StatusCreated},
		{name: "duration boundary invalid (0)", mutate: testutil.Field("duration_weeks", 0), expectCode: http.StatusBadRequest},
		{name: "empty session list", mutate: testutil.Field("session_ids", []string{}), expectCode: http.StatusBadRequest},
		{name: "blank session id", mutate: testutil.Field("session_ids", []string{""}), expectCode: http.StatusBadRequest},
		{name: "malformed booker id", mutate: testutil.Field("booker_id", "not-a-uuid"), expectCode: http.StatusBadRequest},
	}

	missing := []testCaseBooking{
		{name: "missing field: booker_id (required)", mutate: testutil.Field("booker_id", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: trainer_id (required)", mutate: testutil.Field("trainer_id", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: session_ids (required)", mutate: testutil.Field("session_ids", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: total_price (required)", mutate: testutil.Field("total_price", nil), expectCode: http.StatusBadRequest},
	}

	allValidationTestCases := [][]testCaseBooking{bound, missing}

	s.Run("success: returns 201 Created with a pending booking", func() {
		want := shared.Actor{ID: b.BookerID, Role: shared.RoleMember}
		s.mockCommands.EXPECT().Create(gomock.Any(), want, reqBody.ToInput()).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, member)

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(b.ID, body.ID)
		s.Equal("pending", body.Status)
		s.Equal(b.SessionIDs(), body.SessionIDs)
		s.NotNil(body.ExpiresAt)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		for _, testCaseGroup := range allValidationTestCases {
			for _, tc := range testCaseGroup {
				s.Run(tc.name, func() {
					requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

					if tc.expectCode == http.StatusCreated {
						s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
							Return(returnView, nil).Times(1)
					}
					rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, member)
					if tc.expectCode == http.StatusCreated {
						httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
					} else {
						httptest.AssertErrorCode(s.T(), rec, tc.expectCode, "validation_error")
					}
				})
			}
		}
	})

	s.Run("error: 401 Unauthorized without actor headers", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, httptest.Anonymous)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Actor required")
	})

	s.Run("error: 401 Unauthorized for an unknown role", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, httptest.Caller{ID: b.BookerID.String(), Role: "admin"})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid actor role")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedCode   string
		}{
			{
				name:           "actor is not the booker",
				commandsError:  commands.ErrForbidden,
				expectedStatus: http.StatusForbidden,
				expectedCode:   "forbidden",
			},
			{
				name:           "malformed price",
				commandsError:  errs.Validation("invalid price"),
				expectedStatus: http.StatusBadRequest,
				expectedCode:   "validation_error",
			},
			{
				name:           "session became unavailable",
				commandsError:  &commands.SessionUnavailableError{InvalidSessionIDs: b.SessionIDs()},
				expectedStatus: http.StatusConflict,
				expectedCode:   "session_unavailable",
			},
			{
				name:           "session full",
				commandsError:  &schedule.CapacityError{SessionID: b.SessionIDs()[0]},
				expectedStatus: http.StatusConflict,
				expectedCode:   "capacity_exceeded",
			},
			{
				name:           "trainer schedule missing",
				commandsError:  commands.ErrSessionNotFound,
				expectedStatus: http.StatusNotFound,
				expectedCode:   "not_found",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, member)
				httptest.AssertErrorCode(s.T(), rec, tc.expectedStatus, tc.expectedCode)
			})
		}
	})

	s.Run("error: 500 on unexpected errors", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, member)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *BookingHandlerTestSuite) TestGet() {
	b := builder.NewBookingBuilder()

	s.Run("success: stale pending booking reads as expired", func() {
		view := b.BuildView(s.T(), b.BookedAt.AddDate(0, 0, 8))
		s.mockQueries.EXPECT().GetByID(gomock.Any(), b.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+b.ID.String(), nil, httptest.Anonymous)

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("expired", body.Status)
		s.Equal("Expired", body.RemainingTime)
	})

	s.Run("error: 400 for a malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/nope", nil, httptest.Anonymous)
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "validation_error")
	})

	s.Run("error: 404 when the booking does not exist", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), b.ID).Return(nil, queries.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+b.ID.String(), nil, httptest.Anonymous)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *BookingHandlerTestSuite) TestList() {
	b := builder.NewBookingBuilder()
	view := b.BuildView(s.T(), fixedNow)

	s.Run("success: forwards filters and returns the next cursor", func() {
		bookerID := b.BookerID
		s.mockQueries.EXPECT().
			List(gomock.Any(), &bookerID, gomock.Nil(), "pending", &queries.Cursor{After: "abc"}, 5).
			Return([]*queries.BookingView{view}, &queries.Cursor{After: "next"}, nil).Times(1)

		url := "/bookings?bookerId=" + b.BookerID.String() + "&status=pending&after=abc&limit=5"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, httptest.Anonymous)

		var body resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Items, 1)
		s.Equal("next", body.NextCursor)
	})

	s.Run("success: empty page keeps an empty items array", func() {
		trainerID := b.TrainerID
		s.mockQueries.EXPECT().
			List(gomock.Any(), gomock.Nil(), &trainerID, "", gomock.Nil(), 0).
			Return([]*queries.BookingView{}, nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?trainerId="+b.TrainerID.String(), nil, httptest.Anonymous)

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"items":[]}`, rec.Body.String())
	})

	s.Run("error: 400 for malformed filters", func() {
		testCases := []struct {
			name string
			url  string
		}{
			{name: "malformed bookerId", url: "/bookings?bookerId=123"},
			{name: "malformed trainerId", url: "/bookings?trainerId=abc"},
			{name: "limit above maximum", url: "/bookings?bookerId=" + b.BookerID.String() + "&limit=101"},
			{name: "limit below minimum", url: "/bookings?bookerId=" + b.BookerID.String() + "&limit=-1"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, tc.url, nil, httptest.Anonymous)
				httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "validation_error")
			})
		}
	})

	s.Run("error: 400 when no filter is given", func() {
		s.mockQueries.EXPECT().
			List(gomock.Any(), gomock.Nil(), gomock.Nil(), "", gomock.Nil(), 0).
			Return(nil, nil, queries.ErrFilterRequired).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, httptest.Anonymous)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "either bookerId or trainerId is required")
	})
}

// ================================================================================
// TestPatch
// ================================================================================

func (s *BookingHandlerTestSuite) TestPatch() {
	b := builder.NewBookingBuilder().WithReason("")
	url := "/bookings/" + b.ID.String()
	member := httptest.Member(b.BookerID)

	s.Run("success: legacy cancel_at is parsed as UTC", func() {
		cancelAt := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
		want := commands.PatchInput{Status: "cancelled", Reason: "moved away", CancelAt: &cancelAt}
		view := builder.NewBookingBuilder().WithID(b.ID).WithReason("moved away").
			AsPhase(booking.PhaseCancelled).BuildView(s.T(), fixedNow)
		s.mockCommands.EXPECT().Patch(gomock.Any(), gomock.Any(), b.ID, want).Return(view, nil).Times(1)

		body := map[string]any{"status": "cancelled", "reason": "moved away", "cancel_at": "15-01-2024T10:00"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, body, member)

		var res resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal("cancelled", res.Status)
		s.Equal("moved away", res.Reason)
	})

	s.Run("error: 400 when status is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"reason": "x"}, member)
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "validation_error")
	})

	s.Run("error: 400 when cancel_at is unparseable", func() {
		body := map[string]any{"status": "cancelled", "cancel_at": "next tuesday"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, body, member)
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "validation_error")
	})

	s.Run("error: 409 with the current status on an invalid transition", func() {
		s.mockCommands.EXPECT().Patch(gomock.Any(), gomock.Any(), b.ID, gomock.Any()).
			Return(nil, &booking.TransitionError{From: booking.PhaseEnded, Event: "cancel"}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "cancelled"}, member)

		s.Equal(http.StatusConflict, rec.Code)
		s.Contains(rec.Body.String(), `"code":"invalid_transition"`)
		s.Contains(rec.Body.String(), `"from":"ended"`)
		s.Contains(rec.Body.String(), `"event":"cancel"`)
	})
}

// ================================================================================
// TestLifecycleActions
// ================================================================================

func (s *BookingHandlerTestSuite) TestLifecycleActions() {
	b := builder.NewBookingBuilder()
	trainer := httptest.Trainer(b.TrainerID)
	trainerActor := shared.Actor{ID: b.TrainerID, Role: shared.RoleTrainer}

	s.Run("accept: 200 with accepted status", func() {
		view := builder.NewBookingBuilder().WithID(b.ID).AsAccepted().BuildView(s.T(), fixedNow)
		s.mockCommands.EXPECT().Accept(gomock.Any(), trainerActor, b.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+b.ID.String()+"/accept", nil, trainer)

		var res resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal("accepted", res.Status)
	})

	s.Run("accept: 409 when a session is no longer valid", func() {
		s.mockCommands.EXPECT().Accept(gomock.Any(), trainerActor, b.ID).
			Return(nil, &commands.SessionUnavailableError{InvalidSessionIDs: b.SessionIDs()}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+b.ID.String()+"/accept", nil, trainer)
		httptest.AssertErrorCode(s.T(), rec, http.StatusConflict, "session_unavailable")
	})

	s.Run("pay: 200 and forwards the payment id", func() {
		view := builder.NewBookingBuilder().WithID(b.ID).AsPaid().BuildView(s.T(), fixedNow)
		s.mockCommands.EXPECT().Pay(gomock.Any(), gomock.Any(), b.ID, "chrg_1").Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+b.ID.String()+"/payment",
			map[string]any{"payment_id": "chrg_1"}, httptest.Member(b.BookerID))

		var res resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal("accepted", res.Status)
		s.True(res.Paid)
	})

	s.Run("pay: 400 without a payment id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+b.ID.String()+"/payment",
			map[string]any{}, httptest.Member(b.BookerID))
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "validation_error")
	})

	s.Run("pay: 409 when a session filled up", func() {
		s.mockCommands.EXPECT().Pay(gomock.Any(), gomock.Any(), b.ID, "chrg_1").
			Return(nil, &schedule.CapacityError{SessionID: b.SessionIDs()[0]}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+b.ID.String()+"/payment",
			map[string]any{"payment_id": "chrg_1"}, httptest.Member(b.BookerID))

		httptest.AssertErrorCode(s.T(), rec, http.StatusConflict, "capacity_exceeded")
		s.Contains(rec.Body.String(), b.SessionIDs()[0])
	})

	s.Run("start: accepts a bare date", func() {
		startAt := time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)
		view := builder.NewBookingBuilder().WithID(b.ID).WithStartAt(startAt).AsStarted().BuildView(s.T(), fixedNow)
		s.mockCommands.EXPECT().SetStart(gomock.Any(), trainerActor, b.ID, startAt).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+b.ID.String()+"/start",
			map[string]any{"start_at": "2024-01-08"}, trainer)

		var res resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal("accepted", res.Status)
		s.Require().NotNil(res.EndDate)
		s.Equal(startAt.AddDate(0, 0, 7*b.DurationWeeks), res.EndDate.UTC())
	})

	s.Run("clear: 204 No Content", func() {
		s.mockCommands.EXPECT().Clear(gomock.Any(), trainerActor, b.ID).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/bookings/"+b.ID.String(), nil, trainer)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("clear: 409 while the booking is still live", func() {
		s.mockCommands.EXPECT().Clear(gomock.Any(), trainerActor, b.ID).Return(commands.ErrNotClearable).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/bookings/"+b.ID.String(), nil, trainer)
		httptest.AssertErrorCode(s.T(), rec, http.StatusConflict, "invalid_transition")
	})

	s.Run("system actor may omit the user id", func() {
		s.mockCommands.EXPECT().Clear(gomock.Any(), shared.SystemActor(), b.ID).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/bookings/"+b.ID.String(), nil, httptest.System())
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("member without an id is rejected", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/bookings/"+uuid.NewString(), nil, httptest.Caller{Role: "member"})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Actor required")
	})
}
