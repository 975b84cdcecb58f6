// Package finder discovers installed application versions from path
// templates and ranks them.
package finder

import (
	"github.com/quantmind-br/appfind/internal/core"
	"github.com/quantmind-br/appfind/internal/template"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// Finder runs template-based executable discovery against a filesystem
type Finder struct {
	fs  afero.Fs
	log *zerolog.Logger
}

// New creates a Finder backed by the given filesystem
func New(fs afero.Fs, log *zerolog.Logger) *Finder {
	return &Finder{fs: fs, log: log}
}

// Discover locates every executable matching the configured templates and
// returns the ranked, tagged match list. Template errors abort the whole
// run; a run that simply finds nothing returns an empty list and no error.
func (f *Finder) Discover(opts core.DiscoveryOptions) ([]*core.Match, error) {
	if len(opts.Templates) == 0 {
		return nil, &core.ConfigError{Reason: "no path templates configured"}
	}

	// Parse everything up front so a malformed template fails the run
	// before any filesystem work.
	templates := make([]*template.Template, 0, len(opts.Templates))
	for _, raw := range opts.Templates {
		t, err := template.Parse(raw)
		if err != nil {
			return nil, err
		}
		templates = append(templates, t)
	}

	// Union of token names across all templates, first-seen order. Every
	// match gets a value slot for every known token so cross-template sort
	// keys stay homogeneous; tokens foreign to a match's template stay 0.
	allTokens := unionTokens(templates)

	var matches []*core.Match
	for _, t := range templates {
		found, err := f.matchTemplate(t, allTokens)
		if err != nil {
			return nil, err
		}
		matches = append(matches, found...)
	}

	return rankAndTag(matches, opts), nil
}

// matchTemplate globs candidates for one template and captures token values
// from each. Candidates the capture pattern rejects are skipped silently.
func (f *Finder) matchTemplate(t *template.Template, allTokens []string) ([]*core.Match, error) {
	pattern := template.Compile(t)

	candidates, err := afero.Glob(f.fs, pattern.Glob)
	if err != nil {
		// filepath.ErrBadPattern from glob metacharacters in the template
		return nil, &core.ConfigError{Template: t.Raw, Reason: err.Error()}
	}

	f.log.Debug().
		Str("template", t.Raw).
		Str("glob", pattern.Glob).
		Int("candidates", len(candidates)).
		Msg("globbed template")

	var matches []*core.Match
	for _, path := range candidates {
		values, ok := pattern.Match(path)
		if !ok {
			f.log.Debug().Str("path", path).Msg("candidate rejected by capture pattern")
			continue
		}

		version, err := t.RenderVersion(values)
		if err != nil {
			return nil, err
		}

		tokenValues := make(map[string]int, len(allTokens))
		for _, name := range allTokens {
			tokenValues[name] = 0
		}
		for name, v := range values {
			tokenValues[name] = v
		}

		matches = append(matches, &core.Match{
			Path:        path,
			Version:     version,
			TokenValues: tokenValues,
		})
	}
	return matches, nil
}

func unionTokens(templates []*template.Template) []string {
	seen := make(map[string]struct{})
	var tokens []string
	for _, t := range templates {
		for _, name := range t.Tokens {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			tokens = append(tokens, name)
		}
	}
	return tokens
}
