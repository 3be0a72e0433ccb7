package observability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/esports-club/internal/config"
	"github.com/riskibarqy/esports-club/internal/platform/logging"
)

func TestInitUptrace_Disabled(t *testing.T) {
	cfg := config.Config{
		UptraceEnabled: false,
		ServiceName:    "esports-club-bot",
		ServiceVersion: "dev",
		AppEnv:         config.EnvDev,
	}

	shutdown, err := InitUptrace(cfg, logging.NewNop())
	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))
}

func TestInitPyroscope_Disabled(t *testing.T) {
	stop, err := InitPyroscope(config.Config{}, logging.NewNop())
	require.NoError(t, err)
	require.NoError(t, stop())
}

func TestStartPprofServer_Disabled(t *testing.T) {
	srv, err := StartPprofServer(config.Config{}, logging.NewNop())
	require.NoError(t, err)
	require.Nil(t, srv)
	require.NoError(t, StopPprofServer(srv, logging.NewNop(), 0))
}
