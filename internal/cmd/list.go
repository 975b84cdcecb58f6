package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/quantmind-br/appfind/internal/config"
	"github.com/quantmind-br/appfind/internal/core"
	"github.com/quantmind-br/appfind/internal/fsops"
	"github.com/quantmind-br/appfind/internal/ui"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// NewListCmd creates the list command
func NewListCmd(cfg *config.Config, log *zerolog.Logger) *cobra.Command {
	var (
		showPaths   bool
		ask         bool
		jsonOutput  bool
		showDetails bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the found versions",
		Long:  `Lists every application version discovered from the configured templates, newest first, with assigned tags.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			matches, err := discoverMatches(cfg, log)
			if err != nil {
				if errors.Is(err, core.ErrNoMatches) {
					ui.PrintWarning("No executables found matching templates")
				}
				return err
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(matches)
			}

			printMatchTable(cmd, matches, ask, showPaths, showDetails)

			if !ask {
				return nil
			}

			options := make([]ui.VersionOption, 0, len(matches))
			for _, m := range matches {
				options = append(options, ui.VersionOption{
					Version: m.Version,
					Tags:    strings.Join(m.Tags, ", "),
					Path:    m.Path,
				})
			}
			index, err := ui.SelectVersion("Which version of the app do you want to launch?", options)
			if err != nil {
				return err
			}

			return runLaunch(cmd, cfg, log, matches[index].Version, false, nil)
		},
	}

	cmd.Flags().BoolVarP(&showPaths, "paths", "p", false, "list the full executable paths")
	cmd.Flags().BoolVarP(&ask, "ask", "a", false, "prompt to choose the version to launch")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output in JSON format")
	cmd.Flags().BoolVarP(&showDetails, "details", "d", false, "show install age of each executable")

	return cmd
}

// printMatchTable renders the discovered versions as a table
func printMatchTable(cmd *cobra.Command, matches []*core.Match, numbered, showPaths, showDetails bool) {
	headers := []string{"Version", "Tags"}
	if numbered {
		headers = append([]string{"#"}, headers...)
	}
	if showDetails {
		headers = append(headers, "Modified")
	}
	if showPaths {
		headers = append(headers, "Path")
	}

	table := tablewriter.NewTable(cmd.OutOrStdout(),
		tablewriter.WithHeader(headers),
		tablewriter.WithAlignment(tw.MakeAlign(len(headers), tw.AlignLeft)),
		tablewriter.WithSymbols(tw.NewSymbols(tw.StyleNone)),
	)

	for i, m := range matches {
		row := []string{m.Version, ui.ColorizeTags(m.Tags)}
		if numbered {
			row = append([]string{strconv.Itoa(i + 1)}, row...)
		}
		if showDetails {
			modified := "-"
			if info, ok := fsops.Stat(discoveryFs, m.Path); ok {
				modified = humanize.Time(info.ModTime())
			}
			row = append(row, modified)
		}
		if showPaths {
			row = append(row, m.Path)
		}
		cells := make([]any, len(row))
		for j, c := range row {
			cells[j] = c
		}
		table.Append(cells...)
	}

	fmt.Fprintln(cmd.OutOrStdout())
	table.Render()
	fmt.Fprintln(cmd.OutOrStdout())
}
