package terminal

import (
	"fmt"
	"strings"

	"github.com/bnema/prefbot/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

type RenderOptions struct {
	// Title is printed above the payload, e.g. the preview name.
	Title string
	// ShowIDs prints the custom id under every button row.
	ShowIDs bool
}

func renderView(payload domain.Payload, opts RenderOptions, s styles) string {
	var blocks []string
	if opts.Title != "" {
		blocks = append(blocks, s.title.Render(opts.Title))
	}

	if payload.Text != "" {
		blocks = append(blocks, s.text.Render(payload.Text))
	}

	if payload.Embed != nil {
		blocks = append(blocks, renderEmbed(*payload.Embed, s))
	}

	if !payload.HasButtons() {
		blocks = append(blocks, s.empty.Render("(no buttons)"))
		return lipgloss.JoinVertical(lipgloss.Left, blocks...)
	}

	for i, row := range payload.Rows {
		blocks = append(blocks, s.row.Render(renderRow(i, row, opts, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

func renderEmbed(embed domain.Embed, s styles) string {
	parts := make([]string, 0, 2)
	if embed.Title != "" {
		parts = append(parts, s.embedTitle.Render(embed.Title))
	}
	if embed.Description != "" {
		parts = append(parts, embed.Description)
	}

	return s.embed.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func renderRow(index int, row domain.Row, opts RenderOptions, s styles) string {
	buttons := make([]string, 0, len(row))
	ids := make([]string, 0, len(row))
	for _, button := range row {
		buttons = append(buttons, s.button(button.Style).Render(buttonLabel(button)))
		ids = append(ids, button.ID)
	}

	line := lipgloss.JoinHorizontal(lipgloss.Top, buttons...)
	if !opts.ShowIDs {
		return line
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		line,
		s.customID.Render(fmt.Sprintf("row %d: %s", index+1, strings.Join(ids, "  "))),
	)
}

func buttonLabel(button domain.Button) string {
	switch {
	case button.Emoji != "" && button.Label != "":
		return button.Emoji + " " + button.Label
	case button.Emoji != "":
		return button.Emoji
	default:
		return button.Label
	}
}
