// Package ui holds the terminal styling for the interactive flow. All
// rendering is plain strings; commands decide where to print them.
package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"payflow/internal/domain/flow"
)

// Palette, muted and dark-terminal friendly.
var (
	purple = lipgloss.Color("99")
	green  = lipgloss.Color("76")
	red    = lipgloss.Color("204")
	yellow = lipgloss.Color("214")
	dim    = lipgloss.Color("243")
)

var (
	AccentStyle  = lipgloss.NewStyle().Foreground(purple)
	SuccessStyle = lipgloss.NewStyle().Foreground(green)
	ErrorStyle   = lipgloss.NewStyle().Foreground(red)
	WarnStyle    = lipgloss.NewStyle().Foreground(yellow)
	MutedStyle   = lipgloss.NewStyle().Foreground(dim)
	BoldStyle    = lipgloss.NewStyle().Bold(true)
	TitleStyle   = lipgloss.NewStyle().Foreground(purple).Bold(true)
)

func Accent(s string) string { return AccentStyle.Render(s) }
func Muted(s string) string  { return MutedStyle.Render(s) }
func Bold(s string) string   { return BoldStyle.Render(s) }

// Entry renders one journal entry with its level marker.
func Entry(e flow.Entry) string {
	ts := MutedStyle.Render(e.Time.Format("15:04:05"))
	switch e.Level {
	case flow.LevelSuccess:
		return fmt.Sprintf("%s %s %s", ts, SuccessStyle.Render("✓"), e.Message)
	case flow.LevelWarning:
		return fmt.Sprintf("%s %s %s", ts, WarnStyle.Render("!"), e.Message)
	case flow.LevelError:
		return fmt.Sprintf("%s %s %s", ts, ErrorStyle.Render("✗"), e.Message)
	default:
		return fmt.Sprintf("%s %s %s", ts, AccentStyle.Render("●"), e.Message)
	}
}

// Status renders the one-line flow status banner.
func Status(s flow.StatusLine) string {
	switch s.Level {
	case flow.StatusError:
		return ErrorStyle.Render(s.Message)
	case flow.StatusWarning:
		return WarnStyle.Render(s.Message)
	default:
		return SuccessStyle.Render(s.Message)
	}
}
