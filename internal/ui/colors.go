package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Color scheme for appfind
var (
	Success = color.New(color.FgGreen)
	Error   = color.New(color.FgRed, color.Bold)
	Warning = color.New(color.FgYellow)
	Info    = color.New(color.FgCyan)

	Highlight = color.New(color.FgHiCyan, color.Bold)
	Muted     = color.New(color.Faint)
	Bold      = color.New(color.Bold)

	CheckMark = color.GreenString("✓")
	CrossMark = color.RedString("✗")
	Arrow     = color.CyanString("→")

	// Tag colors
	TagLatest     = color.New(color.FgGreen, color.Bold)
	TagDefault    = color.New(color.FgCyan)
	TagPreRelease = color.New(color.FgYellow)
)

// InitColors initializes color settings based on environment
func InitColors() {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		color.NoColor = true
	}
}

// PrintSuccess prints a success message
func PrintSuccess(format string, args ...interface{}) {
	Success.Fprintf(os.Stdout, "%s %s\n", CheckMark, fmt.Sprintf(format, args...))
}

// PrintError prints an error message
func PrintError(format string, args ...interface{}) {
	Error.Fprintf(os.Stderr, "%s Error: %s\n", CrossMark, fmt.Sprintf(format, args...))
}

// PrintWarning prints a warning message
func PrintWarning(format string, args ...interface{}) {
	Warning.Fprintf(os.Stderr, "Warning: %s\n", fmt.Sprintf(format, args...))
}

// PrintInfo prints an info message
func PrintInfo(format string, args ...interface{}) {
	Info.Fprintf(os.Stdout, "%s %s\n", Arrow, fmt.Sprintf(format, args...))
}

// PrintHeader prints a section header
func PrintHeader(text string) {
	fmt.Fprintln(os.Stdout)
	Bold.Fprintln(os.Stdout, text)
	Muted.Fprintln(os.Stdout, strings.Repeat("─", 40))
}

// PrintSubheader prints a subsection header
func PrintSubheader(text string) {
	fmt.Fprintln(os.Stdout)
	Highlight.Fprintln(os.Stdout, text)
}

// ColorizeTag returns a colored tag string. The built-in latest/default
// tags get their own colors; anything else is a pre-release token name.
func ColorizeTag(tag string) string {
	switch tag {
	case "latest":
		return TagLatest.Sprint(tag)
	case "default":
		return TagDefault.Sprint(tag)
	default:
		return TagPreRelease.Sprint(tag)
	}
}

// ColorizeTags joins and colors a tag list for table output
func ColorizeTags(tags []string) string {
	if len(tags) == 0 {
		return "-"
	}
	colored := make([]string, 0, len(tags))
	for _, tag := range tags {
		colored = append(colored, ColorizeTag(tag))
	}
	return strings.Join(colored, ", ")
}

// DisableColors disables all color output
func DisableColors() {
	color.NoColor = true
}

// EnableColors enables color output
func EnableColors() {
	color.NoColor = false
}
