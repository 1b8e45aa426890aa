package main

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorPrimary = lipgloss.Color("#7C3AED")
	colorAccent  = lipgloss.Color("#F59E0B")
	colorMuted   = lipgloss.Color("#6B7280")
)

// styles are bound to one output; non-terminal writers render plain text.
type styles struct {
	title     lipgloss.Style
	heading   lipgloss.Style
	focus     lipgloss.Style
	condition lipgloss.Style
	muted     lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		title:     r.NewStyle().Bold(true).Foreground(colorPrimary),
		heading:   r.NewStyle().Bold(true),
		focus:     r.NewStyle().Bold(true).Foreground(colorAccent),
		condition: r.NewStyle().Foreground(colorMuted).Italic(true),
		muted:     r.NewStyle().Foreground(colorMuted),
	}
}
