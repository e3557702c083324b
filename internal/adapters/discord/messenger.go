package discord

import (
	"context"
	"fmt"

	"github.com/bnema/prefbot/internal/domain"
	"github.com/bnema/prefbot/internal/ports"
	"github.com/bwmarrin/discordgo"
)

type directAPI interface {
	UserChannelCreate(recipientID string, options ...discordgo.RequestOption) (*discordgo.Channel, error)
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

type DirectMessenger struct {
	api directAPI
}

var _ ports.DirectMessenger = (*DirectMessenger)(nil)

func NewDirectMessenger(api directAPI) *DirectMessenger {
	return &DirectMessenger{api: api}
}

// SendDirect opens (or reuses) the member's DM channel and posts payload.
// Members who block DMs from server members make the send fail; every
// failure is reported as domain.ErrDeliveryFailed.
func (m *DirectMessenger) SendDirect(ctx context.Context, userID domain.UserID, payload domain.Payload) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	channel, err := m.api.UserChannelCreate(string(userID), discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("%w: open channel for %s: %w", domain.ErrDeliveryFailed, userID, err)
	}

	if _, err := m.api.ChannelMessageSendComplex(channel.ID, messageSend(payload), discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("%w: send to %s: %w", domain.ErrDeliveryFailed, userID, err)
	}

	return nil
}
