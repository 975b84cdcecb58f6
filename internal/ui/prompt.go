package ui

import (
	"errors"
	"fmt"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/manifoldco/promptui"
)

// VersionOption is one selectable row in the interactive version picker
type VersionOption struct {
	Version string
	Tags    string
	Path    string
}

// SelectVersion presents an interactive, fuzzy-searchable picker over the
// discovered versions and returns the chosen index.
func SelectVersion(label string, options []VersionOption) (int, error) {
	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "▸ {{ .Version | cyan }} {{ if .Tags }}({{ .Tags | faint }}){{ end }}",
		Inactive: "  {{ .Version | faint }} {{ if .Tags }}({{ .Tags | faint }}){{ end }}",
		Selected: "▸ {{ .Version | green }}",
		Details:  "{{ .Path | faint }}",
	}

	prompt := promptui.Select{
		Label:     label,
		Items:     options,
		Templates: templates,
		Searcher: func(input string, index int) bool {
			opt := options[index]
			return fuzzy.MatchNormalizedFold(input, opt.Version) ||
				fuzzy.MatchNormalizedFold(input, opt.Tags)
		},
		StartInSearchMode: false,
	}

	index, _, err := prompt.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrAbort) || errors.Is(err, promptui.ErrInterrupt) {
			return -1, fmt.Errorf("selection cancelled by user")
		}
		return -1, err
	}
	return index, nil
}
