package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/quantmind-br/appfind/internal/cmd"
	"github.com/quantmind-br/appfind/internal/config"
	"github.com/quantmind-br/appfind/internal/core"
	"github.com/quantmind-br/appfind/internal/logging"
	"github.com/quantmind-br/appfind/internal/ui"
)

var version = "dev"

func main() {
	ctx := context.Background()

	ui.InitColors()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(core.ExitInvalidArgs)
	}

	log := logging.NewLogger(logging.Config{
		Level:   cfg.Logging.Level,
		LogFile: cfg.Paths.LogFile,
		NoColor: cfg.Logging.Color == "never",
	})

	rootCmd := cmd.NewRootCmd(cfg, log, version)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(exitCode(err))
	}
}

// exitCode maps error kinds to process exit codes
func exitCode(err error) int {
	var cfgErr *core.ConfigError
	var selErr *core.SelectionError
	switch {
	case errors.As(err, &cfgErr):
		return core.ExitInvalidArgs
	case errors.Is(err, core.ErrNoMatches):
		return core.ExitNoMatch
	case errors.As(err, &selErr):
		return core.ExitLaunch
	default:
		return core.ExitGeneral
	}
}
