package api

import (
	"net/http"

	reqdto "trainer-booking/internal/handler/dto/request"
	resdto "trainer-booking/internal/handler/dto/response"
	"trainer-booking/internal/usecase/commands"
	"trainer-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ScheduleHandler struct {
	cmds      commands.ScheduleCommands
	q         queries.ScheduleQueries
	validator queries.SessionValidator
}

func NewScheduleHandler(cmds commands.ScheduleCommands, q queries.ScheduleQueries, validator queries.SessionValidator) *ScheduleHandler {
	return &ScheduleHandler{cmds: cmds, q: q, validator: validator}
}

// @Summary Check session validity
// @Description Report which of the given sessions are missing, full or already booked by the booker
// @Tags sessions
// @Produce json
// @Param trainerId query string true "Trainer ID"
// @Param sessionIds query string true "Comma separated session ids"
// @Param bookerId query string false "Booker ID used for double-booking checks"
// @Success 200 {object} resdto.SessionValidityResponse
// @Failure 400 {object} httperr.Response
// @Router /api/sessions/validity [get]
func (h *ScheduleHandler) Validity(c *gin.Context) {
	var q reqdto.SessionValidityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortBadRequest(c, err, "Invalid request")
		return
	}
	trainerID, err := uuid.Parse(q.TrainerID)
	if err != nil {
		abortBadRequest(c, err, "Invalid trainerId")
		return
	}
	bookerID, ok := optionalUUID(c, q.BookerID, "bookerId")
	if !ok {
		return
	}
	res, err := h.validator.Validate(c.Request.Context(), trainerID, q.IDs(), bookerID)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromValidationResult(res))
}

// @Summary Weekly schedule
// @Description List a trainer's configured sessions grouped by weekday
// @Tags schedule
// @Produce json
// @Param id path string true "Trainer ID"
// @Success 200 {object} resdto.WeeklyScheduleResponse
// @Failure 400 {object} httperr.Response
// @Router /api/trainers/{id}/schedule [get]
func (h *ScheduleHandler) GetSchedule(c *gin.Context) {
	trainerID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetWeeklySchedule(c.Request.Context(), trainerID)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Publish slot
// @Description Create or redefine one weekly slot
// @Tags schedule
// @Accept json
// @Produce json
// @Param id path string true "Trainer ID"
// @Param request body reqdto.PublishSlotRequest true "Slot definition"
// @Success 200 {object} resdto.SessionResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/trainers/{id}/schedule/slots [put]
func (h *ScheduleHandler) PublishSlot(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	trainerID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req reqdto.PublishSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request")
		return
	}
	sess, err := h.cmds.PublishSession(c.Request.Context(), actor, commands.PublishSessionInput{
		TrainerID:        trainerID,
		Day:              req.Day,
		Time:             req.Time,
		ClassType:        req.ClassType,
		ParticipantLimit: req.ParticipantLimit,
		ClassPrice:       req.ClassPrice,
	})
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, queries.NewSessionView(sess))
}

// @Summary Reset slot
// @Description Clear a slot's class type, limit and price
// @Tags schedule
// @Param id path string true "Trainer ID"
// @Param day path string true "Weekday"
// @Param time path string true "HH:MM"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/trainers/{id}/schedule/slots/{day}/{time} [delete]
func (h *ScheduleHandler) ResetSlot(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	trainerID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.ResetSlot(c.Request.Context(), actor, trainerID, c.Param("day"), c.Param("time")); err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Update participants
// @Description Reserve, mark paid or remove a booker across sessions, all or nothing
// @Tags schedule
// @Accept json
// @Param request body reqdto.UpdateParticipantsRequest true "Participant update"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/schedule/participants [put]
func (h *ScheduleHandler) UpdateParticipants(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	var req reqdto.UpdateParticipantsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request")
		return
	}

	ctx := c.Request.Context()
	var err error
	switch req.Action {
	case reqdto.ParticipantActionReserve:
		err = h.cmds.ReserveParticipants(ctx, actor, req.SessionIDs, req.BookerID)
	case reqdto.ParticipantActionMarkPaid:
		err = h.cmds.MarkParticipantsPaid(ctx, actor, req.SessionIDs, req.BookerID, req.PaymentID)
	case reqdto.ParticipantActionRemove:
		err = h.cmds.RemoveParticipants(ctx, actor, req.SessionIDs, req.BookerID)
	}
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
