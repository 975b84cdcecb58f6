package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/quantmind-br/appfind/internal/config"
	"github.com/quantmind-br/appfind/internal/fsops"
	"github.com/quantmind-br/appfind/internal/template"
	"github.com/quantmind-br/appfind/internal/ui"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// NewDoctorCmd creates the doctor command
func NewDoctorCmd(cfg *config.Config, log *zerolog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check template configuration and discovery health",
		Long:  `Validates each configured path template, checks that its search root exists, and reports how many executables it currently matches.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ui.PrintHeader("Configuration Diagnostics")

			var issues []string

			ui.PrintSubheader("Environment")
			for _, env := range []string{"APPFIND_TEMPLATES", "APPFIND_PR_TOKENS", "APPFIND_TOKEN_SORT", "APPFIND_DEFAULT_VERSION"} {
				if val := os.Getenv(env); val != "" {
					ui.PrintSuccess("%s=%s", env, val)
				} else {
					fmt.Printf("  %s: not set\n", env)
				}
			}

			ui.PrintSubheader("Templates")
			if len(cfg.Discovery.Templates) == 0 {
				ui.PrintError("no path templates configured")
				issues = append(issues, "no path templates configured")
			}

			for _, raw := range cfg.Discovery.Templates {
				tmplIssues := checkTemplate(discoveryFs, raw)
				issues = append(issues, tmplIssues...)
			}

			if len(cfg.Discovery.SortPriority) > 0 {
				ui.PrintSubheader("Sort Priority")
				known := knownTokens(cfg.Discovery.Templates)
				for _, name := range cfg.Discovery.SortPriority {
					if _, ok := known[name]; ok {
						ui.PrintSuccess("token %q declared by a template", name)
					} else {
						// Unknown sort tokens zero-fill every key slot;
						// harmless but usually a typo.
						ui.PrintWarning("token %q not declared by any template", name)
					}
				}
			}

			fmt.Println()
			if len(issues) == 0 {
				ui.PrintSuccess("No issues found")
				return nil
			}

			ui.PrintError("%d issue(s) found", len(issues))
			return fmt.Errorf("doctor found %d issue(s)", len(issues))
		},
	}

	return cmd
}

// checkTemplate validates one template and reports its current match count
func checkTemplate(fs afero.Fs, raw string) []string {
	var issues []string

	t, err := template.Parse(raw)
	if err != nil {
		ui.PrintError("%s", err)
		return append(issues, err.Error())
	}

	pattern := template.Compile(t)

	root := globRoot(pattern.Glob)
	if !fsops.IsDir(fs, root) {
		ui.PrintWarning("%s: search root %s does not exist", raw, root)
		issues = append(issues, fmt.Sprintf("search root missing: %s", root))
	}

	candidates, err := afero.Glob(fs, pattern.Glob)
	if err != nil {
		ui.PrintError("%s: bad glob pattern: %v", raw, err)
		return append(issues, err.Error())
	}

	matched := 0
	for _, path := range candidates {
		if _, ok := pattern.Match(path); ok {
			matched++
		}
	}

	ui.PrintSuccess("%s: %d candidate(s), %d match(es)", raw, len(candidates), matched)
	return issues
}

// globRoot returns the deepest literal directory prefix of a glob pattern
func globRoot(glob string) string {
	if i := strings.IndexAny(glob, "*?["); i >= 0 {
		glob = glob[:i]
	}
	return filepath.Dir(glob)
}

// knownTokens returns the union of token names declared by parseable
// templates
func knownTokens(templates []string) map[string]struct{} {
	known := make(map[string]struct{})
	for _, raw := range templates {
		t, err := template.Parse(raw)
		if err != nil {
			continue
		}
		for _, name := range t.Tokens {
			known[name] = struct{}{}
		}
	}
	return known
}
