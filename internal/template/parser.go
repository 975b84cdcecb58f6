// Package template implements the path template grammar used to locate
// installed application versions.
//
// A template is a filesystem path containing {token} placeholders in place
// of version integers, with exactly one bracket-delimited span marking the
// version sub-template:
//
//	/apps/App[{major}.{minor}]/bin{major}.{minor}
//
// The bracketed span defines how the human-readable version string is
// rendered; the brackets themselves never reach the filesystem pattern.
package template

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/quantmind-br/appfind/internal/core"
)

// tokenPattern matches one {token} placeholder. Token names are lowercase
// ASCII letters only.
var tokenPattern = regexp.MustCompile(`\{([a-z]+)\}`)

// Template is one parsed path template
type Template struct {
	Raw           string   // original template string as configured
	Path          string   // absolute, bracket-stripped path template
	VersionFormat string   // sub-template between the first '[' and last ']'
	Tokens        []string // distinct token names, first-seen order
}

// Parse parses a raw template string. The version sub-template is the text
// between the first '[' and the last ']'; additional brackets are not
// supported (extraction follows the first-open/last-close rule).
func Parse(raw string) (*Template, error) {
	start := strings.Index(raw, "[")
	end := strings.LastIndex(raw, "]")
	if start == -1 || end == -1 || end < start {
		return nil, &core.ConfigError{
			Template: raw,
			Reason:   "version must be captured with brackets, e.g. 'App[{major}.{minor}]'",
		}
	}

	versionFormat := raw[start+1 : end]

	path := strings.ReplaceAll(raw, "[", "")
	path = strings.ReplaceAll(path, "]", "")
	path = expandHome(path)
	abs, err := filepath.Abs(path)
	if err == nil {
		path = abs
	}

	return &Template{
		Raw:           raw,
		Path:          path,
		VersionFormat: versionFormat,
		Tokens:        scanTokens(raw),
	}, nil
}

// scanTokens returns the distinct token names of a template in first-seen
// order. Order matters downstream for deterministic capture groups.
func scanTokens(s string) []string {
	seen := make(map[string]struct{})
	var tokens []string
	for _, m := range tokenPattern.FindAllStringSubmatch(s, -1) {
		name := m[1]
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		tokens = append(tokens, name)
	}
	return tokens
}

// HasToken reports whether the template declares the given token
func (t *Template) HasToken(name string) bool {
	for _, tok := range t.Tokens {
		if tok == name {
			return true
		}
	}
	return false
}

// expandHome expands a leading ~ to the user home directory
func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
