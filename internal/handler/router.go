package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"padel-booking/internal/domain/user"
	"padel-booking/internal/handler/api"
	"padel-booking/internal/handler/middleware"
	"padel-booking/internal/pkg/config"
	"padel-booking/internal/pkg/metrics"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth         *api.AuthHandler
	Booking      *api.BookingHandler
	Catalog      *api.CatalogHandler
	AdminBooking *api.AdminBookingHandler
	AdminCatalog *api.AdminCatalogHandler
	Admin        *api.AdminHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware, m *metrics.Metrics) {
	setupMiddleware(engine, cfg, m)
	setupRoutes(engine, cfg, h, authMiddleware, m)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, m *metrics.Metrics) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	if cfg.Metrics.Enabled {
		engine.Use(middleware.MetricsMiddleware(m))
	}
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware, m *metrics.Metrics) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
	if cfg.Metrics.Enabled {
		engine.GET(cfg.Metrics.Path, gin.WrapH(m.Handler()))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/bookings", Handler: h.Booking.Create},
			{Method: http.MethodGet, Path: "/bookings/lookup", Handler: h.Booking.Lookup},
			{Method: http.MethodGet, Path: "/bookings/:ref/success", Handler: h.Booking.Success},
			{Method: http.MethodGet, Path: "/courts", Handler: h.Catalog.Courts},
			{Method: http.MethodGet, Path: "/time-slots", Handler: h.Catalog.TimeSlots},
			{Method: http.MethodGet, Path: "/content", Handler: h.Catalog.ContentList},
			{Method: http.MethodGet, Path: "/content/:key", Handler: h.Catalog.Content},
			{Method: http.MethodGet, Path: "/booking-window", Handler: h.Catalog.BookingWindow},
		})

		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		// every admin route needs at least viewer; writes raise the bar per route
		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleViewer))
		{
			operator := []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(user.RoleOperator)}
			adminOnly := []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(user.RoleAdmin)}

			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/bookings", Handler: h.AdminBooking.List},
				{Method: http.MethodGet, Path: "/bookings/:ref", Handler: h.AdminBooking.Get},
				{Method: http.MethodPatch, Path: "/bookings/:ref/status", Handler: h.AdminBooking.ChangeStatus, Mw: operator},

				{Method: http.MethodGet, Path: "/courts", Handler: h.AdminCatalog.ListCourts},
				{Method: http.MethodPost, Path: "/courts", Handler: h.AdminCatalog.CreateCourt, Mw: adminOnly},
				{Method: http.MethodPut, Path: "/courts/:id", Handler: h.AdminCatalog.UpdateCourt, Mw: adminOnly},
				{Method: http.MethodDelete, Path: "/courts/:id", Handler: h.AdminCatalog.DeleteCourt, Mw: adminOnly},

				{Method: http.MethodGet, Path: "/time-slots", Handler: h.AdminCatalog.ListTimeSlots},
				{Method: http.MethodPost, Path: "/time-slots", Handler: h.AdminCatalog.CreateTimeSlot, Mw: operator},
				{Method: http.MethodPut, Path: "/time-slots/:id", Handler: h.AdminCatalog.UpdateTimeSlot, Mw: operator},
				{Method: http.MethodDelete, Path: "/time-slots/:id", Handler: h.AdminCatalog.DeleteTimeSlot, Mw: operator},

				{Method: http.MethodGet, Path: "/content", Handler: h.AdminCatalog.ListContent},
				{Method: http.MethodPut, Path: "/content/:key", Handler: h.AdminCatalog.UpsertContent, Mw: operator},

				{Method: http.MethodGet, Path: "/settings", Handler: h.Admin.GetSettings},
				{Method: http.MethodPut, Path: "/settings", Handler: h.Admin.UpdateSettings, Mw: adminOnly},
				{Method: http.MethodPut, Path: "/settings/booking-window", Handler: h.Admin.SetBookingWindow, Mw: operator},

				{Method: http.MethodGet, Path: "/notifications", Handler: h.Admin.ListNotifications},
				{Method: http.MethodPost, Path: "/notifications/:id/read", Handler: h.Admin.MarkNotificationRead},

				{Method: http.MethodGet, Path: "/reports/summary", Handler: h.Admin.ReportSummary},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
