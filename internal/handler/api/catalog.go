package api

import (
	"net/http"

	resdto "padel-booking/internal/handler/dto/response"
	"padel-booking/internal/handler/httperr"
	"padel-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the public, unauthenticated site data.
type CatalogHandler struct {
	catalog  queries.CatalogQueries
	settings queries.SettingsQueries
}

func NewCatalogHandler(catalog queries.CatalogQueries, settings queries.SettingsQueries) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, settings: settings}
}

// @Summary List courts
// @Description Active courts in display order
// @Tags catalog
// @Produce json
// @Success 200 {array} resdto.PublicCourtResponse
// @Router /courts [get]
func (h *CatalogHandler) Courts(c *gin.Context) {
	courts, err := h.catalog.ListCourts(c.Request.Context(), true)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPublicCourts(courts))
}

// @Summary List time slots
// @Description Active time slots ordered by start time
// @Tags catalog
// @Produce json
// @Success 200 {array} resdto.PublicTimeSlotResponse
// @Router /time-slots [get]
func (h *CatalogHandler) TimeSlots(c *gin.Context) {
	slots, err := h.catalog.ListTimeSlots(c.Request.Context(), true)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPublicTimeSlots(slots))
}

// @Summary List content
// @Description Published content blocks
// @Tags catalog
// @Produce json
// @Success 200 {array} resdto.ContentResponse
// @Router /content [get]
func (h *CatalogHandler) ContentList(c *gin.Context) {
	blocks, err := h.catalog.ListContent(c.Request.Context(), true)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromContentList(blocks))
}

// @Summary Get content block
// @Tags catalog
// @Produce json
// @Param key path string true "Content key, e.g. home.hero"
// @Success 200 {object} resdto.ContentResponse
// @Failure 404 {object} httperr.Response
// @Router /content/{key} [get]
func (h *CatalogHandler) Content(c *gin.Context) {
	block, err := h.catalog.GetContent(c.Request.Context(), c.Param("key"), true)
	if err != nil {
		httperr.Respond(c, err, httperr.Rule{Target: queries.ErrContentNotFound, Status: http.StatusNotFound, Message: "Content not found"})
		return
	}
	c.JSON(http.StatusOK, resdto.FromContentView(block))
}

// @Summary Booking window
// @Description Whether online bookings are currently accepted
// @Tags catalog
// @Produce json
// @Success 200 {object} queries.BookingWindowView
// @Router /booking-window [get]
func (h *CatalogHandler) BookingWindow(c *gin.Context) {
	window, err := h.settings.BookingWindow(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, window)
}
