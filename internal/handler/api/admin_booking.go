package api

import (
	"net/http"

	reqdto "padel-booking/internal/handler/dto/request"
	resdto "padel-booking/internal/handler/dto/response"
	"padel-booking/internal/handler/httperr"
	"padel-booking/internal/usecase/commands"
	"padel-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AdminBookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewAdminBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *AdminBookingHandler {
	return &AdminBookingHandler{cmds: cmds, q: q}
}

var bookingNotFound = httperr.Rule{Target: queries.ErrBookingNotFound, Status: http.StatusNotFound, Message: "Booking not found"}

// @Summary List bookings
// @Tags admin-bookings
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status"
// @Param date query string false "Filter by date (YYYY-MM-DD)"
// @Param court_id query string false "Filter by court"
// @Param limit query int false "Page size, at most 200"
// @Param offset query int false "Page offset"
// @Success 200 {object} resdto.BookingListResponse
// @Failure 400 {object} httperr.Response
// @Router /admin/bookings [get]
func (h *AdminBookingHandler) List(c *gin.Context) {
	var query reqdto.BookingListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	filter, err := query.ToFilter()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}

	page, err := h.q.AdminList(c.Request.Context(), filter)
	if err != nil {
		httperr.Respond(c, err, httperr.Rule{Target: queries.ErrInvalidBookingFilter, Status: http.StatusBadRequest, Message: "Invalid query"})
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingPage(page))
}

// @Summary Get booking
// @Tags admin-bookings
// @Produce json
// @Security BearerAuth
// @Param ref path string true "Booking reference"
// @Success 200 {object} resdto.AdminBookingResponse
// @Failure 404 {object} httperr.Response
// @Router /admin/bookings/{ref} [get]
func (h *AdminBookingHandler) Get(c *gin.Context) {
	view, err := h.q.AdminGet(c.Request.Context(), c.Param("ref"))
	if err != nil {
		httperr.Respond(c, err, bookingNotFound)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAdminBookingView(view))
}

// @Summary Change booking status
// @Description Moves a booking along pending, paid, completed, cancelled, refunded. The first move to paid stamps paid_at.
// @Tags admin-bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param ref path string true "Booking reference"
// @Param request body reqdto.ChangeBookingStatusRequest true "New status"
// @Success 200 {object} resdto.AdminBookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/bookings/{ref}/status [patch]
func (h *AdminBookingHandler) ChangeStatus(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	var req reqdto.ChangeBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	ref := c.Param("ref")
	if err := h.cmds.ChangeStatus(c.Request.Context(), ref, req, actor); err != nil {
		httperr.Respond(c, err,
			httperr.Rule{Target: commands.ErrBookingNotFound, Status: http.StatusNotFound, Message: "Booking not found"},
			httperr.Rule{Target: commands.ErrInvalidTransition, Status: http.StatusConflict},
			httperr.Rule{Target: commands.ErrConcurrentUpdate, Status: http.StatusConflict, Message: "Booking was changed by someone else, reload and retry"},
		)
		return
	}

	view, err := h.q.AdminGet(c.Request.Context(), ref)
	if err != nil {
		httperr.Respond(c, err, bookingNotFound)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAdminBookingView(view))
}
