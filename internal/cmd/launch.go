package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/quantmind-br/appfind/internal/config"
	"github.com/quantmind-br/appfind/internal/core"
	"github.com/quantmind-br/appfind/internal/launcher"
	"github.com/quantmind-br/appfind/internal/ui"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// newLauncher is swapped by tests to capture launch invocations
var newLauncher = launcher.New

// NewLaunchCmd creates the launch command
func NewLaunchCmd(cfg *config.Config, log *zerolog.Logger) *cobra.Command {
	var (
		appver  string
		appHelp bool
	)

	cmd := &cobra.Command{
		Use:   "launch [flags] [-- app-args...]",
		Short: "Launch the found app, default version unless requested otherwise",
		Long: `Launches the executable found from the configured templates. By default
the version tagged 'default' is launched. The built-in selectors 'latest'
and 'default' are always available; pre-release token names (like 'beta')
select the latest version carrying that token. Any exact version string
works as well. Arguments after '--' are passed through to the app.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLaunch(cmd, cfg, log, appver, appHelp, passThroughArgs(cmd, args))
		},
	}

	cmd.Flags().StringVar(&appver, "appver", "default",
		"version or tag of the found app to run (see 'list' for candidates)")
	cmd.Flags().BoolVar(&appHelp, "apphelp", false,
		"pass a --help flag to the wrapped app, since appfind's own --help shadows it")

	return cmd
}

func runLaunch(cmd *cobra.Command, cfg *config.Config, log *zerolog.Logger, appver string, appHelp bool, extraArgs []string) error {
	matches, err := discoverMatches(cfg, log)
	if err != nil {
		if errors.Is(err, core.ErrNoMatches) {
			ui.PrintError("no executables found matching templates")
		} else {
			ui.PrintError("%v", err)
		}
		return err
	}

	match, err := launcher.Select(matches, appver)
	if err != nil {
		ui.PrintError("%v", err)
		if suggestions := launcher.Suggest(matches, appver); len(suggestions) > 0 {
			ui.PrintInfo("did you mean: %s", strings.Join(suggestions, ", "))
		}
		return err
	}

	display := append([]string{match.Path}, extraArgs...)
	ui.PrintInfo("Launching: %s", strings.Join(display, " "))

	l := newLauncher(log)
	if err := l.Launch(cmd.Context(), match, extraArgs, appHelp); err != nil {
		return fmt.Errorf("launch: %w", err)
	}
	return nil
}
