package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

const (
	promptColorConstant   = "6"
	warningColorConstant  = "3"
	errorColorConstant    = "1"
	progressColorConstant = "2"
)

// OutputStyler renders terminal text with the oops color palette. Styling is
// disabled when the destination is not a terminal so piped output stays plain.
type OutputStyler struct {
	enabled       bool
	promptStyle   lipgloss.Style
	warningStyle  lipgloss.Style
	errorStyle    lipgloss.Style
	progressStyle lipgloss.Style
}

// NewOutputStyler builds a styler that colorizes only when enabled.
func NewOutputStyler(enabled bool) OutputStyler {
	return OutputStyler{
		enabled:       enabled,
		promptStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color(promptColorConstant)),
		warningStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color(warningColorConstant)),
		errorStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color(errorColorConstant)),
		progressStyle: lipgloss.NewStyle().Foreground(lipgloss.Color(progressColorConstant)),
	}
}

// NewTerminalOutputStyler enables styling when standard output is a terminal.
func NewTerminalOutputStyler() OutputStyler {
	return NewOutputStyler(isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()))
}

// Prompt renders confirmation prompt text.
func (styler OutputStyler) Prompt(text string) string {
	return styler.render(styler.promptStyle, text)
}

// Warning renders cautionary text, including dry-run plan lines.
func (styler OutputStyler) Warning(text string) string {
	return styler.render(styler.warningStyle, text)
}

// Error renders failure text.
func (styler OutputStyler) Error(text string) string {
	return styler.render(styler.errorStyle, text)
}

// Progress renders step announcements for executing plans.
func (styler OutputStyler) Progress(text string) string {
	return styler.render(styler.progressStyle, text)
}

func (styler OutputStyler) render(style lipgloss.Style, text string) string {
	if !styler.enabled {
		return text
	}
	return style.Render(text)
}
