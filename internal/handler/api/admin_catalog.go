package api

import (
	"net/http"

	reqdto "padel-booking/internal/handler/dto/request"
	resdto "padel-booking/internal/handler/dto/response"
	"padel-booking/internal/handler/httperr"
	"padel-booking/internal/usecase/commands"
	"padel-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AdminCatalogHandler struct {
	catalog commands.CatalogCommands
	content commands.ContentCommands
	q       queries.CatalogQueries
}

func NewAdminCatalogHandler(catalog commands.CatalogCommands, content commands.ContentCommands, q queries.CatalogQueries) *AdminCatalogHandler {
	return &AdminCatalogHandler{catalog: catalog, content: content, q: q}
}

var courtRules = []httperr.Rule{
	{Target: commands.ErrInvalidCourt, Status: http.StatusBadRequest},
	{Target: commands.ErrCourtNotFound, Status: http.StatusNotFound, Message: "Court not found"},
	{Target: queries.ErrCourtNotFound, Status: http.StatusNotFound, Message: "Court not found"},
	{Target: commands.ErrCourtNameTaken, Status: http.StatusConflict, Message: "A court with this name already exists"},
	{Target: commands.ErrCourtInUse, Status: http.StatusConflict, Message: "Court has bookings; deactivate it instead"},
}

var timeSlotRules = []httperr.Rule{
	{Target: commands.ErrInvalidTimeSlot, Status: http.StatusBadRequest},
	{Target: commands.ErrTimeSlotNotFound, Status: http.StatusNotFound, Message: "Time slot not found"},
	{Target: queries.ErrTimeSlotNotFound, Status: http.StatusNotFound, Message: "Time slot not found"},
	{Target: commands.ErrTimeSlotDuplicate, Status: http.StatusConflict, Message: "A time slot with these times already exists"},
	{Target: commands.ErrTimeSlotInUse, Status: http.StatusConflict, Message: "Time slot has bookings; deactivate it instead"},
}

// @Summary List courts (admin)
// @Description All courts including inactive ones
// @Tags admin-catalog
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.CourtResponse
// @Router /admin/courts [get]
func (h *AdminCatalogHandler) ListCourts(c *gin.Context) {
	courts, err := h.q.ListCourts(c.Request.Context(), false)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCourts(courts))
}

// @Summary Create court
// @Tags admin-catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CourtRequest true "Court"
// @Success 201 {object} resdto.CourtResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/courts [post]
func (h *AdminCatalogHandler) CreateCourt(c *gin.Context) {
	var req reqdto.CourtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	id, err := h.catalog.CreateCourt(c.Request.Context(), req)
	if err != nil {
		httperr.Respond(c, err, courtRules...)
		return
	}
	h.respondCourt(c, http.StatusCreated, id)
}

// @Summary Update court
// @Tags admin-catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Court ID"
// @Param request body reqdto.CourtRequest true "Court"
// @Success 200 {object} resdto.CourtResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/courts/{id} [put]
func (h *AdminCatalogHandler) UpdateCourt(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.CourtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.catalog.UpdateCourt(c.Request.Context(), id, req); err != nil {
		httperr.Respond(c, err, courtRules...)
		return
	}
	h.respondCourt(c, http.StatusOK, id)
}

// @Summary Delete court
// @Tags admin-catalog
// @Security BearerAuth
// @Param id path string true "Court ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/courts/{id} [delete]
func (h *AdminCatalogHandler) DeleteCourt(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.catalog.DeleteCourt(c.Request.Context(), id); err != nil {
		httperr.Respond(c, err, courtRules...)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AdminCatalogHandler) respondCourt(c *gin.Context, status int, id uuid.UUID) {
	view, err := h.q.GetCourt(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err, courtRules...)
		return
	}
	c.JSON(status, resdto.FromCourtView(view))
}

// @Summary List time slots (admin)
// @Tags admin-catalog
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.TimeSlotResponse
// @Router /admin/time-slots [get]
func (h *AdminCatalogHandler) ListTimeSlots(c *gin.Context) {
	slots, err := h.q.ListTimeSlots(c.Request.Context(), false)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTimeSlots(slots))
}

// @Summary Create time slot
// @Tags admin-catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.TimeSlotRequest true "Time slot"
// @Success 201 {object} resdto.TimeSlotResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/time-slots [post]
func (h *AdminCatalogHandler) CreateTimeSlot(c *gin.Context) {
	var req reqdto.TimeSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	id, err := h.catalog.CreateTimeSlot(c.Request.Context(), req)
	if err != nil {
		httperr.Respond(c, err, timeSlotRules...)
		return
	}
	view, err := h.q.GetTimeSlot(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err, timeSlotRules...)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromTimeSlotView(view))
}

// @Summary Update time slot
// @Tags admin-catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Time slot ID"
// @Param request body reqdto.TimeSlotRequest true "Time slot"
// @Success 200 {object} resdto.TimeSlotResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/time-slots/{id} [put]
func (h *AdminCatalogHandler) UpdateTimeSlot(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.TimeSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.catalog.UpdateTimeSlot(c.Request.Context(), id, req); err != nil {
		httperr.Respond(c, err, timeSlotRules...)
		return
	}
	view, err := h.q.GetTimeSlot(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err, timeSlotRules...)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTimeSlotView(view))
}

// @Summary Delete time slot
// @Tags admin-catalog
// @Security BearerAuth
// @Param id path string true "Time slot ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/time-slots/{id} [delete]
func (h *AdminCatalogHandler) DeleteTimeSlot(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.catalog.DeleteTimeSlot(c.Request.Context(), id); err != nil {
		httperr.Respond(c, err, timeSlotRules...)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List content (admin)
// @Description All content blocks including drafts
// @Tags admin-catalog
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ContentResponse
// @Router /admin/content [get]
func (h *AdminCatalogHandler) ListContent(c *gin.Context) {
	blocks, err := h.q.ListContent(c.Request.Context(), false)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromContentList(blocks))
}

// @Summary Upsert content block
// @Tags admin-catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param key path string true "Content key"
// @Param request body reqdto.UpsertContentRequest true "Content"
// @Success 200 {object} resdto.ContentResponse
// @Failure 400 {object} httperr.Response
// @Router /admin/content/{key} [put]
func (h *AdminCatalogHandler) UpsertContent(c *gin.Context) {
	var req reqdto.UpsertContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	key := c.Param("key")
	if err := h.content.Upsert(c.Request.Context(), key, req); err != nil {
		httperr.Respond(c, err, httperr.Rule{Target: commands.ErrInvalidContent, Status: http.StatusBadRequest})
		return
	}
	block, err := h.q.GetContent(c.Request.Context(), key, false)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromContentView(block))
}
