package discord

import (
	"strings"

	"github.com/bnema/prefbot/internal/domain"
	"github.com/bwmarrin/discordgo"
)

var buttonStyles = map[domain.ButtonStyle]discordgo.ButtonStyle{
	domain.ButtonStylePrimary:   discordgo.PrimaryButton,
	domain.ButtonStyleSecondary: discordgo.SecondaryButton,
	domain.ButtonStyleSuccess:   discordgo.SuccessButton,
	domain.ButtonStyleDanger:    discordgo.DangerButton,
}

// components always returns a non-nil slice: an empty list is what clears
// the buttons of an updated message.
func components(payload domain.Payload) []discordgo.MessageComponent {
	rows := make([]discordgo.MessageComponent, 0, len(payload.Rows))
	for _, row := range payload.Rows {
		if len(row) == 0 {
			continue
		}

		buttons := make([]discordgo.MessageComponent, 0, len(row))
		for _, button := range row {
			buttons = append(buttons, toButton(button))
		}
		rows = append(rows, discordgo.ActionsRow{Components: buttons})
	}

	return rows
}

func embeds(payload domain.Payload) []*discordgo.MessageEmbed {
	if payload.Embed == nil {
		return []*discordgo.MessageEmbed{}
	}

	return []*discordgo.MessageEmbed{{
		Title:       payload.Embed.Title,
		Description: payload.Embed.Description,
	}}
}

func toButton(button domain.Button) discordgo.Button {
	style, ok := buttonStyles[button.Style]
	if !ok {
		style = discordgo.SecondaryButton
	}

	return discordgo.Button{
		CustomID: button.ID,
		Label:    button.Label,
		Style:    style,
		Emoji:    parseEmoji(button.Emoji),
	}
}

// parseEmoji accepts a unicode emoji or a custom guild emoji in message
// form (<:name:id> or <a:name:id>).
func parseEmoji(raw string) *discordgo.ComponentEmoji {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	if strings.HasPrefix(raw, "<") && strings.HasSuffix(raw, ">") {
		parts := strings.Split(strings.Trim(raw, "<>"), ":")
		if len(parts) == 3 && parts[1] != "" && parts[2] != "" {
			return &discordgo.ComponentEmoji{
				Name:     parts[1],
				ID:       parts[2],
				Animated: parts[0] == "a",
			}
		}
	}

	return &discordgo.ComponentEmoji{Name: raw}
}

func responseData(payload domain.Payload, private bool) *discordgo.InteractionResponseData {
	data := &discordgo.InteractionResponseData{
		Content:    payload.Text,
		Embeds:     embeds(payload),
		Components: components(payload),
	}
	if private {
		data.Flags = discordgo.MessageFlagsEphemeral
	}

	return data
}

// webhookEdit replaces every part of the message, so content, embeds and
// buttons left over from the previous step are cleared.
func webhookEdit(payload domain.Payload) *discordgo.WebhookEdit {
	content := payload.Text
	messageEmbeds := embeds(payload)
	messageComponents := components(payload)

	return &discordgo.WebhookEdit{
		Content:    &content,
		Embeds:     &messageEmbeds,
		Components: &messageComponents,
	}
}

func followup(payload domain.Payload, private bool) *discordgo.WebhookParams {
	params := &discordgo.WebhookParams{
		Content:    payload.Text,
		Embeds:     embeds(payload),
		Components: components(payload),
	}
	if private {
		params.Flags = discordgo.MessageFlagsEphemeral
	}

	return params
}

func messageSend(payload domain.Payload) *discordgo.MessageSend {
	return &discordgo.MessageSend{
		Content:    payload.Text,
		Embeds:     embeds(payload),
		Components: components(payload),
	}
}

func stringIDs(roleIDs []domain.RoleID) []string {
	out := make([]string, 0, len(roleIDs))
	for _, id := range roleIDs {
		out = append(out, string(id))
	}

	return out
}
