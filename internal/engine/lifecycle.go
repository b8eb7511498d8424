package engine

import (
	"context"

	"go.uber.org/zap"
)

// InitializeAll initializes every engine and returns the active set in
// registration order. An engine that fails to initialize is logged and
// excluded; the orchestration layer never sees it.
func InitializeAll(ctx context.Context, engines []Engine) []Engine {
	logger := zap.S().Named("engine")

	active := make([]Engine, 0, len(engines))
	for _, eng := range engines {
		if err := eng.Initialize(ctx); err != nil {
			logger.Warnw("Engine excluded from active set", "engine", eng.Name(), "error", err)
			continue
		}
		logger.Infow("Engine ready", "engine", eng.Name())
		active = append(active, eng)
	}

	return active
}

// CleanupAll releases the resources of every engine. Individual cleanup
// failures are logged, not propagated.
func CleanupAll(engines []Engine) {
	logger := zap.S().Named("engine")
	for _, eng := range engines {
		if err := eng.Cleanup(); err != nil {
			logger.Warnw("Engine cleanup failed", "engine", eng.Name(), "error", err)
		}
	}
}
