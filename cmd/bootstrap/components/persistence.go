package components

import (
	"slot-booking/internal/infra/readstore"
	"slot-booking/internal/infra/repository"
	sqlc "slot-booking/internal/infra/sqlc/generated"
	"slot-booking/internal/infra/uow"
	"slot-booking/internal/pkg/config"
	"slot-booking/internal/pkg/metrics"
	"slot-booking/internal/usecase/queries"
	"slot-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Slot
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.SlotReadQueries)),
		),
		fx.Annotate(
			readstore.NewSlotReadStore,
			fx.As(new(queries.SlotReadStore)),
		),
		// Booking
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.BookingReadQueries)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		// ServiceType
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ServiceTypeReadQueries)),
		),
		fx.Annotate(
			readstore.NewServiceTypeReadStore,
			fx.As(new(queries.ServiceTypeReadStore)),
		),
		// User
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.UserReadQueries)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// UnitOfWork
		fx.Annotate(
			NewUnitOfWork,
			fx.As(new(shared.UnitOfWork)),
		),
		// Slot repository used outside a transaction by bulk generation
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.SlotWriteQueries)),
		),
		fx.Annotate(
			repository.NewSlotRepository,
			fx.As(new(shared.SlotRepository)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}

func NewUnitOfWork(pool *pgxpool.Pool, q *sqlc.Queries, cfg config.Config, m *metrics.Metrics) *uow.PostgresUoW {
	return uow.NewPostgresUoW(pool, q, uow.Options{
		MaxRetries:  cfg.DB.TxMaxRetries,
		BaseBackoff: cfg.DB.TxRetryDelay,
		LockTimeout: cfg.DB.LockTimeout,
		Metrics:     m,
	})
}
