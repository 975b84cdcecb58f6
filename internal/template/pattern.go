package template

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/quantmind-br/appfind/internal/core"
)

// occurrence is one {token} placeholder found in a path template
type occurrence struct {
	start, end int
	name       string
}

// Pattern holds the two derived forms of one template: a filesystem glob
// for candidate discovery and an anchored capture regexp for extraction.
type Pattern struct {
	Glob string

	re     *regexp.Regexp
	groups []string // token name per capture group, in group order
}

// Compile derives the glob and capture patterns from a parsed template.
//
// The glob replaces every placeholder with '*'. The capture pattern gives
// every placeholder occurrence its own (\d+) group; repeated occurrences of
// one token are cross-checked after matching, so all repeats within a single
// template must carry the identical digit string. The pattern is anchored at
// both ends and matched case-insensitively.
func Compile(t *Template) *Pattern {
	occs := scanOccurrences(t.Path)

	var glob, expr strings.Builder
	expr.WriteString(`(?i)^`)
	groups := make([]string, 0, len(occs))

	last := 0
	for _, occ := range occs {
		literal := t.Path[last:occ.start]
		glob.WriteString(literal)
		expr.WriteString(regexp.QuoteMeta(literal))

		glob.WriteString("*")
		expr.WriteString(`(\d+)`)
		groups = append(groups, occ.name)

		last = occ.end
	}
	tail := t.Path[last:]
	glob.WriteString(tail)
	expr.WriteString(regexp.QuoteMeta(tail))
	expr.WriteString(`$`)

	return &Pattern{
		Glob:   glob.String(),
		re:     regexp.MustCompile(expr.String()),
		groups: groups,
	}
}

// scanOccurrences lists every placeholder occurrence with its offsets, in a
// single pass. Building both patterns from this one list keeps token names
// that are substrings of other token names from colliding.
func scanOccurrences(s string) []occurrence {
	idx := tokenPattern.FindAllStringSubmatchIndex(s, -1)
	occs := make([]occurrence, 0, len(idx))
	for _, m := range idx {
		occs = append(occs, occurrence{start: m[0], end: m[1], name: s[m[2]:m[3]]})
	}
	return occs
}

// Match applies the capture pattern to a candidate path. It returns the
// token value mapping and true on success. A path that does not match, or
// whose repeated occurrences of one token disagree, yields false; that is
// expected noise from a loose glob, not an error.
func (p *Pattern) Match(path string) (map[string]int, bool) {
	m := p.re.FindStringSubmatch(path)
	if m == nil {
		return nil, false
	}

	raw := make(map[string]string, len(p.groups))
	for i, name := range p.groups {
		captured := m[i+1]
		if prev, ok := raw[name]; ok && prev != captured {
			// mixed-version install, e.g. App1.2/bin1.3
			return nil, false
		}
		raw[name] = captured
	}

	values := make(map[string]int, len(raw))
	for name, digits := range raw {
		n, err := strconv.Atoi(digits)
		if err != nil {
			return nil, false
		}
		values[name] = n
	}
	return values, true
}

// RenderVersion formats a version sub-template with extracted token values.
// Referencing a token the owning template never declares is a configuration
// error.
func (t *Template) RenderVersion(values map[string]int) (string, error) {
	occs := scanOccurrences(t.VersionFormat)

	var out strings.Builder
	last := 0
	for _, occ := range occs {
		if !t.HasToken(occ.name) {
			return "", &core.ConfigError{
				Template: t.Raw,
				Reason:   "version sub-template references undeclared token {" + occ.name + "}",
			}
		}
		out.WriteString(t.VersionFormat[last:occ.start])
		out.WriteString(strconv.Itoa(values[occ.name]))
		last = occ.end
	}
	out.WriteString(t.VersionFormat[last:])
	return out.String(), nil
}
