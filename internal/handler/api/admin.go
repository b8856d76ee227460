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

// AdminHandler covers club settings, the notification inbox and reports.
type AdminHandler struct {
	settingsCmds  commands.SettingsCommands
	settings      queries.SettingsQueries
	notifyCmds    commands.NotificationCommands
	notifications queries.NotificationQueries
	reports       queries.ReportQueries
}

func NewAdminHandler(
	settingsCmds commands.SettingsCommands,
	settings queries.SettingsQueries,
	notifyCmds commands.NotificationCommands,
	notifications queries.NotificationQueries,
	reports queries.ReportQueries,
) *AdminHandler {
	return &AdminHandler{
		settingsCmds:  settingsCmds,
		settings:      settings,
		notifyCmds:    notifyCmds,
		notifications: notifications,
		reports:       reports,
	}
}

var settingsRules = []httperr.Rule{
	{Target: commands.ErrNothingToUpdate, Status: http.StatusBadRequest, Message: "No settings to update"},
	{Target: commands.ErrInvalidSettings, Status: http.StatusBadRequest},
}

// @Summary Get settings
// @Tags admin-settings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} queries.SettingsView
// @Router /admin/settings [get]
func (h *AdminHandler) GetSettings(c *gin.Context) {
	view, err := h.settings.Get(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Update settings
// @Description Partial update; omitted fields keep their value
// @Tags admin-settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpdateSettingsRequest true "Settings"
// @Success 200 {object} queries.SettingsView
// @Failure 400 {object} httperr.Response
// @Router /admin/settings [put]
func (h *AdminHandler) UpdateSettings(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	var req reqdto.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	updated, err := h.settingsCmds.Update(c.Request.Context(), req, actor)
	if err != nil {
		httperr.Respond(c, err, settingsRules...)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSettings(updated))
}

// @Summary Open or close bookings
// @Tags admin-settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.BookingWindowRequest true "Booking window"
// @Success 200 {object} queries.BookingWindowView
// @Failure 400 {object} httperr.Response
// @Router /admin/settings/booking-window [put]
func (h *AdminHandler) SetBookingWindow(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	var req reqdto.BookingWindowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	window, err := h.settingsCmds.SetBookingWindow(c.Request.Context(), req, actor)
	if err != nil {
		httperr.Respond(c, err, settingsRules...)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingWindow(window))
}

// @Summary List notifications
// @Tags admin-notifications
// @Produce json
// @Security BearerAuth
// @Param unread query bool false "Only unread"
// @Param limit query int false "Max items, at most 200"
// @Success 200 {object} resdto.NotificationListResponse
// @Router /admin/notifications [get]
func (h *AdminHandler) ListNotifications(c *gin.Context) {
	var query reqdto.NotificationListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	inbox, err := h.notifications.Inbox(c.Request.Context(), query.Unread, query.Limit)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromInbox(inbox))
}

// @Summary Mark notification read
// @Tags admin-notifications
// @Security BearerAuth
// @Param id path string true "Notification ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /admin/notifications/{id}/read [post]
func (h *AdminHandler) MarkNotificationRead(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.notifyCmds.MarkRead(c.Request.Context(), id); err != nil {
		httperr.Respond(c, err, httperr.Rule{Target: commands.ErrNotificationNotFound, Status: http.StatusNotFound, Message: "Notification not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Booking summary report
// @Description Counts per status, paid revenue and bookings per court. Defaults to the current month.
// @Tags admin-reports
// @Produce json
// @Security BearerAuth
// @Param from query string false "First day (YYYY-MM-DD)"
// @Param to query string false "Last day (YYYY-MM-DD)"
// @Success 200 {object} resdto.ReportSummaryResponse
// @Failure 400 {object} httperr.Response
// @Router /admin/reports/summary [get]
func (h *AdminHandler) ReportSummary(c *gin.Context) {
	var query reqdto.ReportQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	from, to, err := query.Range()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	summary, err := h.reports.Summary(c.Request.Context(), from, to)
	if err != nil {
		httperr.Respond(c, err, httperr.Rule{Target: queries.ErrInvalidReportRange, Status: http.StatusBadRequest, Message: "Invalid report range"})
		return
	}
	c.JSON(http.StatusOK, resdto.FromReportSummary(summary))
}
