// Package launcher resolves a discovered match from a version or tag
// selector and spawns the executable with pass-through arguments.
package launcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/quantmind-br/appfind/internal/core"
	"github.com/rs/zerolog"
)

// CommandRunner executes the resolved executable. Abstracted for testing.
type CommandRunner interface {
	// RunInteractive executes a command attached to the caller's stdio
	// and blocks until it exits.
	RunInteractive(ctx context.Context, name string, args ...string) error

	// GetExitCode extracts the exit code from a command error
	GetExitCode(err error) int
}

// OSCommandRunner is the default implementation using os/exec
type OSCommandRunner struct {
	Stdout io.Writer
	Stderr io.Writer
}

// NewOSCommandRunner creates an OSCommandRunner wired to the process stdio
func NewOSCommandRunner() *OSCommandRunner {
	return &OSCommandRunner{Stdout: os.Stdout, Stderr: os.Stderr}
}

// RunInteractive implements CommandRunner.RunInteractive
func (r *OSCommandRunner) RunInteractive(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("command %q failed: %w", name, err)
	}
	return nil
}

// GetExitCode implements CommandRunner.GetExitCode
func (r *OSCommandRunner) GetExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}

// Launcher launches discovered application versions
type Launcher struct {
	Runner CommandRunner
	Logger *zerolog.Logger
}

// New creates a Launcher using the default OS command runner
func New(log *zerolog.Logger) *Launcher {
	return &Launcher{Runner: NewOSCommandRunner(), Logger: log}
}

// Select resolves a selector against the discovered matches. Tags win over
// version strings, so built-in selectors like "latest" and "default" and
// pre-release token names resolve before an equally named version would.
func Select(matches []*core.Match, selector string) (*core.Match, error) {
	for _, m := range matches {
		if m.HasTag(selector) {
			return m, nil
		}
	}
	for _, m := range matches {
		if m.Version == selector {
			return m, nil
		}
	}
	return nil, &core.SelectionError{Selector: selector}
}

// Suggest returns versions and tags close to a selector that resolved to
// nothing, best first. Used for "did you mean" hints.
func Suggest(matches []*core.Match, selector string) []string {
	seen := make(map[string]struct{})
	var candidates []string
	for _, m := range matches {
		for _, s := range append([]string{m.Version}, m.Tags...) {
			if _, ok := seen[s]; ok {
				continue
			}
			seen[s] = struct{}{}
			candidates = append(candidates, s)
		}
	}

	ranks := fuzzy.RankFindNormalizedFold(selector, candidates)
	sort.Sort(ranks)

	suggestions := make([]string, 0, len(ranks))
	for _, r := range ranks {
		suggestions = append(suggestions, r.Target)
	}
	return suggestions
}

// Launch spawns the match's executable. Extra args are passed through
// untouched; appHelp prepends a --help flag, since the wrapper's own --help
// shadows the wrapped application's.
func (l *Launcher) Launch(ctx context.Context, match *core.Match, extraArgs []string, appHelp bool) error {
	args := extraArgs
	if appHelp {
		args = append([]string{"--help"}, extraArgs...)
	}

	l.Logger.Info().
		Str("path", match.Path).
		Str("version", match.Version).
		Strs("args", args).
		Msg("launching")

	if err := l.Runner.RunInteractive(ctx, match.Path, args...); err != nil {
		return fmt.Errorf("launch %s: %w", match.Version, err)
	}
	return nil
}
