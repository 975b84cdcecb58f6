package main

import (
	"context"
	"io"
	"testing"

	"github.com/quantmind-br/appfind/internal/cmd"
	"github.com/quantmind-br/appfind/internal/config"
	"github.com/quantmind-br/appfind/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWiring(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err, "configuration should load without error")
	assert.NotNil(t, cfg)

	log := logging.NewLogger(logging.Config{
		Level:   cfg.Logging.Level,
		LogFile: "",
		NoColor: true,
	})
	require.NotNil(t, log)

	// The bare root command launches the default version and needs real
	// templates; the version subcommand exercises the full wiring safely.
	rootCmd := cmd.NewRootCmd(cfg, log, version)
	rootCmd.SetOut(io.Discard)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs([]string{"version"})
	err = rootCmd.ExecuteContext(context.Background())
	assert.NoError(t, err)
}
