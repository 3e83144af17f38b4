package screen

import (
	"github.com/bnema/gamelan-harmony/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

type palette struct {
	accent lipgloss.Color
	text   lipgloss.Color
	muted  lipgloss.Color
	gold   lipgloss.Color
	danger lipgloss.Color
	ok     lipgloss.Color
}

var (
	lightPalette = palette{
		accent: lipgloss.Color("94"),
		text:   lipgloss.Color("235"),
		muted:  lipgloss.Color("244"),
		gold:   lipgloss.Color("136"),
		danger: lipgloss.Color("160"),
		ok:     lipgloss.Color("28"),
	}
	darkPalette = palette{
		accent: lipgloss.Color("179"),
		text:   lipgloss.Color("252"),
		muted:  lipgloss.Color("245"),
		gold:   lipgloss.Color("221"),
		danger: lipgloss.Color("203"),
		ok:     lipgloss.Color("114"),
	}
)

type styles struct {
	title    lipgloss.Style
	subtitle lipgloss.Style
	name     lipgloss.Style
	id       lipgloss.Style
	label    lipgloss.Style
	value    lipgloss.Style
	detail   lipgloss.Style
	price    lipgloss.Style
	on       lipgloss.Style
	off      lipgloss.Style
	warning  lipgloss.Style
	section  lipgloss.Style
	card     lipgloss.Style
	empty    lipgloss.Style
}

func newStyles(theme domain.Theme) styles {
	p := lightPalette
	if theme == domain.ThemeDark {
		p = darkPalette
	}

	return styles{
		title:    lipgloss.NewStyle().Bold(true).Foreground(p.accent),
		subtitle: lipgloss.NewStyle().Foreground(p.muted),
		name:     lipgloss.NewStyle().Bold(true).Foreground(p.text),
		id:       lipgloss.NewStyle().Foreground(p.gold),
		label:    lipgloss.NewStyle().Foreground(p.muted),
		value:    lipgloss.NewStyle().Foreground(p.text),
		detail:   lipgloss.NewStyle().Foreground(p.text).Width(72),
		price:    lipgloss.NewStyle().Bold(true).Foreground(p.gold),
		on:       lipgloss.NewStyle().Bold(true).Foreground(p.ok),
		off:      lipgloss.NewStyle().Foreground(p.muted),
		warning:  lipgloss.NewStyle().Bold(true).Foreground(p.danger),
		section:  lipgloss.NewStyle().MarginTop(1),
		card:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.accent).Padding(0, 1),
		empty:    lipgloss.NewStyle().Faint(true),
	}
}
