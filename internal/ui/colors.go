package ui

import (
	"github.com/charmbracelet/lipgloss"
)

var styles = NewPalette("#04B575", "#FF0000", "#FFA500", "#626262")

// interface Painter defines coloring text with [lipgloss] styles
type Painter interface {
	On(string, lipgloss.Color) string // Sets background color
	As(string, lipgloss.Color) string // Sets foreground color
}

// struct Palette is a simple stylesheet built with named [lipgloss.Style] fields
type Palette struct {
	ok   lipgloss.Style
	err  lipgloss.Style
	warn lipgloss.Style
	help lipgloss.Style
}

func NewPalette(s, e, w, h string) *Palette {
	return &Palette{
		ok:   NewBold(s),
		err:  NewBold(e),
		warn: NewStyle(w),
		help: NewEm(h),
	}
}

func (p *Palette) On(text string, bg lipgloss.Color) string {
	return lipgloss.NewStyle().Background(bg).Render(text)
}

func (p *Palette) As(text string, fg lipgloss.Color) string {
	return lipgloss.NewStyle().Foreground(fg).Render(text)
}

func NewStyle(fg string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(fg))
}

func NewBold(fg string) lipgloss.Style {
	return NewStyle(fg).Bold(true)
}

func NewEm(fg string) lipgloss.Style {
	return NewStyle(fg).Italic(true)
}

// Ok renders a success line, e.g. "Done! Saved: ...".
func Ok(text string) string { return styles.ok.Render(text) }

// Error renders a failure line.
func Error(text string) string { return styles.err.Render(text) }

// Warn renders a non-fatal notice.
func Warn(text string) string { return styles.warn.Render(text) }

// Help renders hints such as the configuration command.
func Help(text string) string { return styles.help.Render(text) }
