//go:build unit

package api_test

import (
	"net/http"
	"testing"

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

type ScheduleHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockCommands  *commandsmock.MockScheduleCommands
	mockQueries   *queriesmock.MockScheduleQueries
	mockValidator *queriesmock.MockSessionValidator
	handler       *api.ScheduleHandler
}

func (s *ScheduleHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockScheduleCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockScheduleQueries(s.mockCtrl)
	s.mockValidator = queriesmock.NewMockSessionValidator(s.mockCtrl)
	s.handler = api.NewScheduleHandler(s.mockCommands, s.mockQueries, s.mockValidator)

	actor := middleware.RequireActor()
	s.router.GET("/sessions/validity", s.handler.Validity)
	s.router.PUT("/schedule/participants", actor, s.handler.UpdateParticipants)
	s.router.GET("/trainers/:id/schedule", s.handler.GetSchedule)
	s.router.PUT("/trainers/:id/schedule/slots", actor, s.handler.PublishSlot)
	s.router.DELETE("/trainers/:id/schedule/slots/:day/:time", actor, s.handler.ResetSlot)
}

func (s *ScheduleHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestScheduleHandlerSuite(t *testing.T) {
	suite.Run(t, new(ScheduleHandlerTestSuite))
}

// ================================================================================
// TestValidity
// ================================================================================

func (s *ScheduleHandlerTestSuite) TestValidity() {
	trainerID := uuid.New()
	bookerID := uuid.New()
	monday := trainerID.String() + "-Monday-09:00"
	tuesday := trainerID.String() + "-Tuesday-18:30"

	s.Run("success: splits session ids and never mutates", func() {
		s.mockValidator.EXPECT().
			Validate(gomock.Any(), trainerID, []string{monday, tuesday}, &bookerID).
			Return(&queries.ValidationResult{
				Valid:          false,
				Reason:         "Session is full, session id: " + tuesday,
				FullSessionIDs: []string{tuesday},
			}, nil).Times(1)

		url := "/sessions/validity?trainerId=" + trainerID.String() + "&sessionIds=" + monday + ",%20" + tuesday + "&bookerId=" + bookerID.String()
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, httptest.Anonymous)

		var body resdto.SessionValidityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.False(body.Valid)
		s.Equal([]string{tuesday}, body.FullSessionIDs)
		s.Equal([]string{}, body.MissingSessionIDs)
	})

	s.Run("error: 400 on malformed query", func() {
		testCases := []struct {
			name string
			url  string
		}{
			{name: "missing trainerId", url: "/sessions/validity?sessionIds=" + monday},
			{name: "missing sessionIds", url: "/sessions/validity?trainerId=" + trainerID.String()},
			{name: "malformed bookerId", url: "/sessions/validity?trainerId=" + trainerID.String() + "&sessionIds=" + monday + "&bookerId=x"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, tc.url, nil, httptest.Anonymous)
				httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "validation_error")
			})
		}
	})

	s.Run("error: 400 when an id does not parse", func() {
		s.mockValidator.EXPECT().Validate(gomock.Any(), trainerID, []string{"garbage"}, gomock.Nil()).
			Return(nil, errs.Validation("invalid session id: garbage")).Times(1)

		url := "/sessions/validity?trainerId=" + trainerID.String() + "&sessionIds=garbage"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, httptest.Anonymous)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid session id: garbage")
	})
}

// ================================================================================
// TestGetSchedule
// ================================================================================

func (s *ScheduleHandlerTestSuite) TestGetSchedule() {
	trainerID := uuid.New()

	s.Run("success: returns every weekday", func() {
		view := &queries.WeeklyScheduleView{TrainerID: trainerID}
		for _, d := range schedule.Weekdays() {
			view.Days = append(view.Days, &queries.DayScheduleView{Day: d.String(), Sessions: []*queries.SessionView{}})
		}
		s.mockQueries.EXPECT().GetWeeklySchedule(gomock.Any(), trainerID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/trainers/"+trainerID.String()+"/schedule", nil, httptest.Anonymous)

		var body resdto.WeeklyScheduleResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Days, 7)
	})

	s.Run("error: 400 for a malformed trainer id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/trainers/x/schedule", nil, httptest.Anonymous)
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "validation_error")
	})
}

// ================================================================================
// TestPublishSlot
// ================================================================================

func (s *ScheduleHandlerTestSuite) TestPublishSlot() {
	b := builder.NewSessionBuilder()
	url := "/trainers/" + b.TrainerID.String() + "/schedule/slots"
	reqBody := b.BuildPublishRequestDTO()
	trainer := httptest.Trainer(b.TrainerID)

	s.Run("success: returns the published session", func() {
		want := commands.PublishSessionInput{
			TrainerID:        b.TrainerID,
			Day:              b.Day,
			Time:             b.Time,
			ClassType:        b.ClassType,
			ParticipantLimit: b.Limit,
			ClassPrice:       b.Price,
		}
		s.mockCommands.EXPECT().
			PublishSession(gomock.Any(), shared.Actor{ID: b.TrainerID, Role: shared.RoleTrainer}, want).
			Return(b.BuildDomain(s.T()), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, trainer)

		var body resdto.SessionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(b.SessionID(s.T()), body.SessionID)
		s.Equal("strength", body.ClassType)
		s.True(body.Available)
	})

	s.Run("success: omitted limit is forwarded as unlimited", func() {
		s.mockCommands.EXPECT().
			PublishSession(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, _ shared.Actor, in commands.PublishSessionInput) (*schedule.Session, error) {
				s.Nil(in.ParticipantLimit)
				return builder.NewSessionBuilder().WithTrainerID(b.TrainerID).Unlimited().BuildDomain(s.T()), nil
			}).Times(1)

		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("participant_limit", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, body, trainer)

		var res resdto.SessionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.True(res.Unlimited)
		s.Nil(res.ParticipantLimit)
	})

	s.Run("error: 400 on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing day", mutate: testutil.Field("day", nil)},
			{name: "missing time", mutate: testutil.Field("time", nil)},
			{name: "missing class_type", mutate: testutil.Field("class_type", nil)},
			{name: "missing class_price", mutate: testutil.Field("class_price", nil)},
			{name: "negative limit", mutate: testutil.Field("participant_limit", -1)},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, body, trainer)
				httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "validation_error")
			})
		}
	})

	s.Run("error: 403 when publishing another trainer's week", func() {
		s.mockCommands.EXPECT().PublishSession(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrForbidden).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, httptest.Trainer(uuid.New()))
		httptest.AssertErrorCode(s.T(), rec, http.StatusForbidden, "forbidden")
	})
}

// ================================================================================
// TestResetSlot
// ================================================================================

func (s *ScheduleHandlerTestSuite) TestResetSlot() {
	trainerID := uuid.New()

	s.Run("success: 204 No Content", func() {
		s.mockCommands.EXPECT().
			ResetSlot(gomock.Any(), shared.Actor{ID: trainerID, Role: shared.RoleTrainer}, trainerID, "Monday", "09:00").
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete,
			"/trainers/"+trainerID.String()+"/schedule/slots/Monday/09:00", nil, httptest.Trainer(trainerID))
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 when the slot was never published", func() {
		s.mockCommands.EXPECT().ResetSlot(gomock.Any(), gomock.Any(), trainerID, "Sunday", "07:00").
			Return(commands.ErrSessionNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete,
			"/trainers/"+trainerID.String()+"/schedule/slots/Sunday/07:00", nil, httptest.Trainer(trainerID))
		httptest.AssertErrorCode(s.T(), rec, http.StatusNotFound, "not_found")
	})
}

// ================================================================================
// TestUpdateParticipants
// ================================================================================

func (s *ScheduleHandlerTestSuite) TestUpdateParticipants() {
	url := "/schedule/participants"
	bookerID := uuid.New()
	ids := []string{uuid.NewString() + "-Monday-09:00"}
	system := httptest.System()

	s.Run("reserve", func() {
		s.mockCommands.EXPECT().ReserveParticipants(gomock.Any(), shared.SystemActor(), ids, bookerID).Return(nil).Times(1)

		body := map[string]any{"action": "reserve", "session_ids": ids, "booker_id": bookerID}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, body, system)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("mark_paid", func() {
		s.mockCommands.EXPECT().MarkParticipantsPaid(gomock.Any(), shared.SystemActor(), ids, bookerID, "chrg_9").Return(nil).Times(1)

		body := map[string]any{"action": "mark_paid", "session_ids": ids, "booker_id": bookerID, "payment_id": "chrg_9"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, body, system)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("remove", func() {
		s.mockCommands.EXPECT().RemoveParticipants(gomock.Any(), shared.SystemActor(), ids, bookerID).Return(nil).Times(1)

		body := map[string]any{"action": "remove", "session_ids": ids, "booker_id": bookerID}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, body, system)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 on validation errors", func() {
		testCases := []struct {
			name string
			body map[string]any
		}{
			{name: "unknown action", body: map[string]any{"action": "book", "session_ids": ids, "booker_id": bookerID}},
			{name: "mark_paid without payment id", body: map[string]any{"action": "mark_paid", "session_ids": ids, "booker_id": bookerID}},
			{name: "empty session list", body: map[string]any{"action": "reserve", "session_ids": []string{}, "booker_id": bookerID}},
			{name: "missing booker", body: map[string]any{"action": "reserve", "session_ids": ids}},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, tc.body, system)
				httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "validation_error")
			})
		}
	})

	s.Run("error: 404 when the participant entry is missing", func() {
		s.mockCommands.EXPECT().MarkParticipantsPaid(gomock.Any(), gomock.Any(), ids, bookerID, "chrg_9").
			Return(&schedule.ParticipantError{SessionID: ids[0], BookerID: bookerID}).Times(1)

		body := map[string]any{"action": "mark_paid", "session_ids": ids, "booker_id": bookerID, "payment_id": "chrg_9"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, body, system)
		httptest.AssertErrorCode(s.T(), rec, http.StatusNotFound, "not_found")
	})

	s.Run("error: 409 when a session is full", func() {
		s.mockCommands.EXPECT().ReserveParticipants(gomock.Any(), gomock.Any(), ids, bookerID).
			Return(&schedule.CapacityError{SessionID: ids[0]}).Times(1)

		body := map[string]any{"action": "reserve", "session_ids": ids, "booker_id": bookerID}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, body, system)
		httptest.AssertErrorCode(s.T(), rec, http.StatusConflict, "capacity_exceeded")
	})
}
