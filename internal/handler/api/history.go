package api

import (
	"net/http"

	reqdto "trainer-booking/internal/handler/dto/request"
	resdto "trainer-booking/internal/handler/dto/response"
	"trainer-booking/internal/usecase/commands"
	"trainer-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type HistoryHandler struct {
	drop    commands.DropCommands
	archive commands.ArchiveCommands
	q       queries.HistoryQueries
}

func NewHistoryHandler(drop commands.DropCommands, archive commands.ArchiveCommands, q queries.HistoryQueries) *HistoryHandler {
	return &HistoryHandler{drop: drop, archive: archive, q: q}
}

// @Summary Drop booking
// @Description End a started booking early with a refund
// @Tags refunds
// @Accept json
// @Produce json
// @Param request body reqdto.DropBookingRequest true "Drop request"
// @Success 201 {object} resdto.RefundResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/refunds [post]
func (h *HistoryHandler) Drop(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	var req reqdto.DropBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request")
		return
	}
	view, err := h.drop.Drop(c.Request.Context(), actor, req.ToInput())
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromRefundView(view))
}

// @Summary Get refund
// @Tags refunds
// @Produce json
// @Param id path string true "Refund ID"
// @Success 200 {object} resdto.RefundResponse
// @Failure 404 {object} httperr.Response
// @Router /api/refunds/{id} [get]
func (h *HistoryHandler) GetRefund(c *gin.Context) {
	view, err := h.q.GetRefund(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRefundView(view))
}

// @Summary Archive booking
// @Description Copy a terminal booking into history; safe to repeat
// @Tags history
// @Accept json
// @Produce json
// @Param request body reqdto.ArchiveBookingRequest true "Archive request"
// @Success 200 {object} resdto.HistoryResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/history/archive [post]
func (h *HistoryHandler) Archive(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	var req reqdto.ArchiveBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request")
		return
	}
	view, err := h.archive.Archive(c.Request.Context(), actor, req.BookingID)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromHistoryView(view))
}

// @Summary Get history record
// @Tags history
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.HistoryResponse
// @Failure 404 {object} httperr.Response
// @Router /api/history/{id} [get]
func (h *HistoryHandler) Get(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetByBookingID(c.Request.Context(), id)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromHistoryView(view))
}

// @Summary List history
// @Tags history
// @Produce json
// @Param bookerId query string false "Booker ID"
// @Param trainerId query string false "Trainer ID"
// @Param after query string false "Cursor"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.HistoryListResponse
// @Failure 400 {object} httperr.Response
// @Router /api/history [get]
func (h *HistoryHandler) List(c *gin.Context) {
	var q reqdto.ListHistoryQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortBadRequest(c, err, "Invalid request")
		return
	}
	bookerID, ok := optionalUUID(c, q.BookerID, "bookerId")
	if !ok {
		return
	}
	trainerID, ok := optionalUUID(c, q.TrainerID, "trainerId")
	if !ok {
		return
	}
	views, next, err := h.q.List(c.Request.Context(), bookerID, trainerID, cursorFrom(q.After), q.Limit)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromHistoryList(views, next))
}
