package bootstrap

import (
	"slot-booking/internal/pkg/config"
	"slot-booking/internal/pkg/metrics"

	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		NewMetrics,
	),
)

// NewMetrics returns nil when metrics are disabled; a nil *metrics.Metrics records nothing.
func NewMetrics(cfg config.Config) *metrics.Metrics {
	if !cfg.Metrics.Enabled {
		return nil
	}
	return metrics.New(metrics.NewRegistry())
}
