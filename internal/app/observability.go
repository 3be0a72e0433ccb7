package app

import (
	"context"
	"time"

	"github.com/riskibarqy/esports-club/internal/config"
	"github.com/riskibarqy/esports-club/internal/observability"
	"github.com/riskibarqy/esports-club/internal/platform/logging"
)

const telemetryFlushTimeout = 5 * time.Second

// StartObservability enables tracing, profiling and pprof as configured.
// The returned stop func flushes everything that was started.
func StartObservability(cfg config.Config, logger *logging.Logger) (func(), error) {
	shutdownTracer, err := observability.InitUptrace(cfg, logger)
	if err != nil {
		return nil, err
	}

	stopProfiler, err := observability.InitPyroscope(cfg, logger)
	if err != nil {
		_ = shutdownTracer(context.Background())
		return nil, err
	}

	pprofServer, err := observability.StartPprofServer(cfg, logger)
	if err != nil {
		_ = stopProfiler()
		_ = shutdownTracer(context.Background())
		return nil, err
	}

	return func() {
		if err := observability.StopPprofServer(pprofServer, logger, telemetryFlushTimeout); err != nil {
			logger.Warn("stop pprof server", "error", err)
		}
		if err := stopProfiler(); err != nil {
			logger.Warn("stop pyroscope", "error", err)
		}

		ctx, cancel := context.WithTimeout(context.Background(), telemetryFlushTimeout)
		defer cancel()
		if err := shutdownTracer(ctx); err != nil {
			logger.Warn("flush tracer", "error", err)
		}
	}, nil
}
