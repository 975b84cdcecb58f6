package cmd

import (
	"github.com/quantmind-br/appfind/internal/config"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command. Running appfind with no subcommand
// launches the default version, so the bare binary behaves as a wrapper for
// the application it finds.
func NewRootCmd(cfg *config.Config, log *zerolog.Logger, version string) *cobra.Command {
	var (
		templates      []string
		prTokens       []string
		tokenSort      []string
		defaultVersion string
	)

	cmd := &cobra.Command{
		Use:   "appfind [-- app-args...]",
		Short: "Universal app finder and wrapper",
		Long: `A universal app finder and wrapper. Finds all installed versions of the
same application from path templates, ranks them, and launches either the
'default' or a requested version. Arguments after '--' are passed through
to the launched application.

Path templates contain {token} placeholders in place of version integers,
with the version sub-template delimited by brackets:

  /apps/App[{major}.{minor}]/bin{major}.{minor}

Templates are typically configured through the APPFIND_TEMPLATES environment
variable, multiple entries separated with the OS path-list separator.`,
		Version:      version,
		SilenceUsage: true,
		Args:         cobra.ArbitraryArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Flags override file/env configuration when given.
			if cmd.Flags().Changed("templates") {
				cfg.Discovery.Templates = templates
			}
			if cmd.Flags().Changed("prtokens") {
				cfg.Discovery.PreReleaseTokens = prTokens
			}
			if cmd.Flags().Changed("tsort") {
				cfg.Discovery.SortPriority = tokenSort
			}
			if cmd.Flags().Changed("default-version") {
				cfg.Discovery.DefaultVersion = defaultVersion
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default command: launch the 'default' version.
			return runLaunch(cmd, cfg, log, "default", false, passThroughArgs(cmd, args))
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringSliceVarP(&templates, "templates", "t", nil,
		"path templates to executable files (env: APPFIND_TEMPLATES)")
	pf.StringSliceVar(&prTokens, "prtokens", nil,
		"pre-release token names, e.g. alpha,beta,dev (env: APPFIND_PR_TOKENS)")
	pf.StringSliceVar(&tokenSort, "tsort", nil,
		"token precedence for version sorting (env: APPFIND_TOKEN_SORT)")
	pf.StringVar(&defaultVersion, "default-version", "",
		"version to tag as default instead of the latest (env: APPFIND_DEFAULT_VERSION)")

	cmd.AddCommand(NewLaunchCmd(cfg, log))
	cmd.AddCommand(NewListCmd(cfg, log))
	cmd.AddCommand(NewDoctorCmd(cfg, log))
	cmd.AddCommand(NewCompletionCmd(cfg, log))
	cmd.AddCommand(NewVersionCmd(version))

	return cmd
}

// passThroughArgs returns the arguments destined for the wrapped
// application: everything after '--', or all positional args when no '--'
// was given.
func passThroughArgs(cmd *cobra.Command, args []string) []string {
	if at := cmd.ArgsLenAtDash(); at >= 0 {
		return args[at:]
	}
	return args
}
