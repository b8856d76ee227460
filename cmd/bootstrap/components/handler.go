package components

import (
	"padel-booking/internal/handler"
	"padel-booking/internal/handler/api"
	"padel-booking/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewBookingHandler,
		api.NewCatalogHandler,
		api.NewAdminBookingHandler,
		api.NewAdminCatalogHandler,
		api.NewAdminHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

type handlerParams struct {
	fx.In

	Auth         *api.AuthHandler
	Booking      *api.BookingHandler
	Catalog      *api.CatalogHandler
	AdminBooking *api.AdminBookingHandler
	AdminCatalog *api.AdminCatalogHandler
	Admin        *api.AdminHandler
}

func newHandlers(p handlerParams) handler.Handlers {
	return handler.Handlers{
		Auth:         p.Auth,
		Booking:      p.Booking,
		Catalog:      p.Catalog,
		AdminBooking: p.AdminBooking,
		AdminCatalog: p.AdminCatalog,
		Admin:        p.Admin,
	}
}
