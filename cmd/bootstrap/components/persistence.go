package components

import (
	"padel-booking/internal/infra/pgquery"
	"padel-booking/internal/infra/readstore"
	"padel-booking/internal/infra/uow"
	"padel-booking/internal/usecase/queries"
	"padel-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	uowModule,
)

var baseOption = fx.Provide(
	NewQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Booking
		fx.Annotate(
			NewQueries,
			fx.As(new(readstore.BookingViewQueries)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		// Catalog
		fx.Annotate(
			NewQueries,
			fx.As(new(readstore.CourtViewQueries)),
		),
		fx.Annotate(
			readstore.NewCourtReadStore,
			fx.As(new(queries.CourtReadStore)),
		),
		fx.Annotate(
			NewQueries,
			fx.As(new(readstore.TimeSlotViewQueries)),
		),
		fx.Annotate(
			readstore.NewTimeSlotReadStore,
			fx.As(new(queries.TimeSlotReadStore)),
		),
		fx.Annotate(
			NewQueries,
			fx.As(new(readstore.ContentViewQueries)),
		),
		fx.Annotate(
			readstore.NewContentReadStore,
			fx.As(new(queries.ContentReadStore)),
		),
		// Settings
		fx.Annotate(
			NewQueries,
			fx.As(new(readstore.SettingQueries)),
		),
		fx.Annotate(
			readstore.NewSettingReadStore,
			fx.As(new(queries.SettingReadStore)),
		),
		// Notification
		fx.Annotate(
			NewQueries,
			fx.As(new(readstore.NotificationViewQueries)),
		),
		fx.Annotate(
			readstore.NewNotificationReadStore,
			fx.As(new(queries.NotificationReadStore)),
		),
		// Report
		fx.Annotate(
			NewQueries,
			fx.As(new(readstore.ReportQueries)),
		),
		fx.Annotate(
			readstore.NewReportReadStore,
			fx.As(new(queries.ReportReadStore)),
		),
		// User
		fx.Annotate(
			NewQueries,
			fx.As(new(readstore.UserReadQueries)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
	),
)

// Write repositories are built per transaction inside the unit of work.
var uowModule = fx.Module("persistence/uow",
	fx.Provide(
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
			fx.As(new(queries.ReadOnlyRunner)),
		),
	),
)

func NewQueries(_ *pgxpool.Pool) *pgquery.Queries {
	return pgquery.New()
}

func NewDBTX(pool *pgxpool.Pool) pgquery.DBTX {
	return pool
}
