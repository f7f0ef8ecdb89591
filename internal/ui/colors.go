package ui

import (
	"github.com/charmbracelet/lipgloss"
)

var styles = NewPalette("#7D56F4", "#04B575", "#FF0000", "#626262")

// struct Palette is a simple stylesheet built with named [lipgloss.Style] fields
type Palette struct {
	title     lipgloss.Style
	label     lipgloss.Style
	err       lipgloss.Style
	help      lipgloss.Style
	buttonOn  lipgloss.Style
	buttonOff lipgloss.Style
}

func NewPalette(t, s, e, h string) *Palette {
	return &Palette{
		title:     NewBold(t).MarginBottom(1),
		label:     NewBold(s),
		err:       NewBold(e),
		help:      NewEm(h),
		buttonOn:  NewBold(s).Padding(0, 1),
		buttonOff: NewStyle(h).Padding(0, 1).Faint(true),
	}
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
