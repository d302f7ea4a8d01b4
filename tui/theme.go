// ABOUTME: Light and dark palettes for the terminal UI
// ABOUTME: Styles are rebuilt from the store's dark flag on every render
package tui

import "github.com/charmbracelet/lipgloss"

type palette struct {
	accent  lipgloss.Color
	text    lipgloss.Color
	muted   lipgloss.Color
	surface lipgloss.Color
	success lipgloss.Color
	warning lipgloss.Color
	danger  lipgloss.Color
}

var (
	darkPalette = palette{
		accent:  lipgloss.Color("170"),
		text:    lipgloss.Color("252"),
		muted:   lipgloss.Color("240"),
		surface: lipgloss.Color("235"),
		success: lipgloss.Color("42"),
		warning: lipgloss.Color("214"),
		danger:  lipgloss.Color("9"),
	}

	lightPalette = palette{
		accent:  lipgloss.Color("91"),
		text:    lipgloss.Color("235"),
		muted:   lipgloss.Color("245"),
		surface: lipgloss.Color("254"),
		success: lipgloss.Color("28"),
		warning: lipgloss.Color("130"),
		danger:  lipgloss.Color("160"),
	}
)

type styles struct {
	palette palette

	title       lipgloss.Style
	tabActive   lipgloss.Style
	tabInactive lipgloss.Style
	help        lipgloss.Style
	label       lipgloss.Style
	value       lipgloss.Style
	card        lipgloss.Style
	errText     lipgloss.Style
	okText      lipgloss.Style
	selected    lipgloss.Style
	confirmBox  lipgloss.Style
	warning     lipgloss.Style
	button      lipgloss.Style
	cancel      lipgloss.Style
}

func newStyles(dark bool) styles {
	p := lightPalette
	if dark {
		p = darkPalette
	}

	return styles{
		palette: p,

		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.accent),

		tabActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.accent).
			Background(p.surface).
			Padding(0, 2),

		tabInactive: lipgloss.NewStyle().
			Foreground(p.muted).
			Padding(0, 2),

		help: lipgloss.NewStyle().
			Foreground(p.muted).
			MarginTop(1),

		label: lipgloss.NewStyle().
			Foreground(p.muted),

		value: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.text),

		card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.muted).
			Padding(0, 2).
			MarginRight(1),

		errText: lipgloss.NewStyle().
			Foreground(p.danger).
			Bold(true),

		okText: lipgloss.NewStyle().
			Foreground(p.success),

		selected: lipgloss.NewStyle().
			Foreground(p.accent).
			Bold(true),

		confirmBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.danger).
			Padding(1, 2).
			Width(60).
			Align(lipgloss.Center),

		warning: lipgloss.NewStyle().
			Foreground(p.danger).
			Bold(true),

		button: lipgloss.NewStyle().
			Foreground(lipgloss.Color("15")).
			Background(p.danger).
			Padding(0, 2).
			MarginRight(2),

		cancel: lipgloss.NewStyle().
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("8")).
			Padding(0, 2),
	}
}

func (s styles) status(status string) lipgloss.Style {
	switch status {
	case "paid", "completed":
		return lipgloss.NewStyle().Foreground(s.palette.success)
	case "overdue":
		return lipgloss.NewStyle().Foreground(s.palette.danger)
	case "sent", "on-hold":
		return lipgloss.NewStyle().Foreground(s.palette.warning)
	default:
		return lipgloss.NewStyle().Foreground(s.palette.text)
	}
}
