package bootstrap

import (
	"context"
	"log/slog"

	"slot-booking/internal/infra/db"
	"slot-booking/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

// NewDB opens the pool eagerly so a bad DSN fails startup, and closes it after
// the HTTP server has drained on shutdown.
func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return pool.Ping(ctx)
		},
		OnStop: func(_ context.Context) error {
			stat := pool.Stat()
			logger.Info("Closing database pool",
				slog.Int("acquired", int(stat.AcquiredConns())),
				slog.Int("total", int(stat.TotalConns())),
				slog.Int64("acquire_count", stat.AcquireCount()))
			cleanup()
			return nil
		},
	})

	return pool, nil
}
