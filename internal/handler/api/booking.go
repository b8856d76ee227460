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

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

var createBookingRules = []httperr.Rule{
	// the closed message configured by the club is shown as is
	{Target: commands.ErrBookingsClosed, Status: http.StatusConflict},
	{Target: commands.ErrInvalidBooking, Status: http.StatusBadRequest},
	{Target: commands.ErrCourtUnavailable, Status: http.StatusNotFound, Message: "Court not found"},
	{Target: commands.ErrSlotUnavailable, Status: http.StatusNotFound, Message: "Time slot not found"},
	{Target: commands.ErrSlotTaken, Status: http.StatusConflict, Message: "This court is already booked for that date and time"},
}

// @Summary Create booking
// @Description Book a court for a date and time slot. The booking starts as pending.
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Create booking request"
// @Success 201 {object} resdto.CreateBookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.Create(c.Request.Context(), req)
	if err != nil {
		httperr.Respond(c, err, createBookingRules...)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCreateBookingResult(result))
}

// @Summary Booking success page
// @Description Shows the booking when access is granted, otherwise the status lookup URL to redirect to
// @Tags bookings
// @Produce json
// @Param ref path string true "Booking reference"
// @Success 200 {object} resdto.SuccessPageResponse
// @Router /bookings/{ref}/success [get]
func (h *BookingHandler) Success(c *gin.Context) {
	result := h.q.SuccessPage(c.Request.Context(), c.Param("ref"))
	c.JSON(http.StatusOK, resdto.FromSuccessPage(result))
}

// @Summary Booking status lookup
// @Description Find a booking by reference and the email it was made with
// @Tags bookings
// @Produce json
// @Param email query string true "Customer email"
// @Param booking_ref query string true "Booking reference"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/lookup [get]
func (h *BookingHandler) Lookup(c *gin.Context) {
	var query reqdto.BookingLookupQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	view, err := h.q.Lookup(c.Request.Context(), query.Email, query.BookingRef)
	if err != nil {
		httperr.Respond(c, err,
			httperr.Rule{Target: queries.ErrLookupParamsRequired, Status: http.StatusBadRequest, Message: "email and booking_ref are required"},
			httperr.Rule{Target: queries.ErrBookingNotFound, Status: http.StatusNotFound, Message: "Booking not found"},
		)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}
