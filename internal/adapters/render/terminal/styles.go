package terminal

import (
	"github.com/bnema/prefbot/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	title       lipgloss.Style
	text        lipgloss.Style
	embed       lipgloss.Style
	embedTitle  lipgloss.Style
	row         lipgloss.Style
	customID    lipgloss.Style
	empty       lipgloss.Style
	buttonBase  lipgloss.Style
	buttonColor map[domain.ButtonStyle]lipgloss.Color
}

func newStyles() styles {
	return styles{
		title:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("241")),
		text:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		embed:      lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("63")).PaddingLeft(1),
		embedTitle: lipgloss.NewStyle().Bold(true),
		row:        lipgloss.NewStyle().MarginTop(1),
		customID:   lipgloss.NewStyle().Faint(true),
		empty:      lipgloss.NewStyle().Faint(true).Italic(true),
		buttonBase: lipgloss.NewStyle().Padding(0, 1).MarginRight(1).Foreground(lipgloss.Color("255")),
		buttonColor: map[domain.ButtonStyle]lipgloss.Color{
			domain.ButtonStylePrimary:   lipgloss.Color("62"),
			domain.ButtonStyleSecondary: lipgloss.Color("240"),
			domain.ButtonStyleSuccess:   lipgloss.Color("28"),
			domain.ButtonStyleDanger:    lipgloss.Color("160"),
		},
	}
}

func (s styles) button(style domain.ButtonStyle) lipgloss.Style {
	color, ok := s.buttonColor[style]
	if !ok {
		color = s.buttonColor[domain.ButtonStyleSecondary]
	}

	return s.buttonBase.Background(color)
}
