package finder

import (
	"sort"

	"github.com/quantmind-br/appfind/internal/core"
)

// rankAndTag sorts matches newest-first and assigns semantic tags in one
// sequential pass. The pass is stateful across the whole sorted sequence:
// each tag category is first-match-wins.
func rankAndTag(matches []*core.Match, opts core.DiscoveryOptions) []*core.Match {
	sortMatches(matches, opts.SortPriority)

	// Working copy: a pre-release token tags only its first carrier.
	pending := append([]string(nil), opts.PreReleaseTokens...)

	latestFound := false
	defaultFound := opts.DefaultVersion == ""

	for _, m := range matches {
		if latestFound && defaultFound && len(pending) == 0 {
			break
		}

		if !latestFound && !carriesPreRelease(m, pending) {
			if opts.DefaultVersion == "" {
				m.Tags = append(m.Tags, core.TagDefault)
			}
			m.Tags = append(m.Tags, core.TagLatest)
			latestFound = true
		}

		if opts.DefaultVersion != "" && !defaultFound && m.Version == opts.DefaultVersion {
			m.Tags = append(m.Tags, core.TagDefault)
			defaultFound = true
		}

		for _, name := range opts.PreReleaseTokens {
			if m.TokenValue(name) == 0 {
				continue
			}
			if i := indexOf(pending, name); i >= 0 {
				m.Tags = append(m.Tags, name)
				pending = append(pending[:i], pending[i+1:]...)
			}
		}
	}

	return matches
}

// sortMatches orders matches descending: by the configured token-priority
// tuple when present, otherwise by version string. The sort is stable, so
// equal keys keep their discovery order.
func sortMatches(matches []*core.Match, priority []string) {
	if len(priority) > 0 {
		sort.SliceStable(matches, func(i, j int) bool {
			for _, name := range priority {
				a, b := matches[i].TokenValue(name), matches[j].TokenValue(name)
				if a != b {
					return a > b
				}
			}
			return false
		})
		return
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Version > matches[j].Version
	})
}

// carriesPreRelease reports whether any of the match's non-zero tokens is
// still present in the working pre-release list. Only the pending list
// counts: once a token has been handed out as a tag it no longer blocks
// later matches from becoming latest.
func carriesPreRelease(m *core.Match, pending []string) bool {
	for _, name := range pending {
		if m.TokenValue(name) != 0 {
			return true
		}
	}
	return false
}

func indexOf(list []string, s string) int {
	for i, v := range list {
		if v == s {
			return i
		}
	}
	return -1
}
