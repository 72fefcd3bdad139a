package bootstrap

import (
	"log/slog"

	"slot-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
	fx.Invoke(logConfig),
)

// logConfig records the effective tuning knobs once at startup. Credentials
// are never logged.
func logConfig(cfg config.Config, logger *slog.Logger) {
	logger.Info("Configuration loaded",
		slog.String("port", cfg.Server.Port),
		slog.String("db_host", cfg.DB.Host),
		slog.String("db_name", cfg.DB.DBName),
		slog.Duration("lock_timeout", cfg.DB.LockTimeout),
		slog.Int("tx_max_retries", cfg.DB.TxMaxRetries),
		slog.Bool("rate_limit", cfg.RateLimit.Enabled),
		slog.Bool("metrics", cfg.Metrics.Enabled))
}
