package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/bnema/prefbot/internal/application"
	"github.com/bnema/prefbot/internal/domain"
	"github.com/bwmarrin/discordgo"
)

const (
	intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages | discordgo.IntentsDirectMessages

	defaultInteractionTimeout = 10 * time.Second
)

type interactionAPI interface {
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
	InteractionResponseEdit(interaction *discordgo.Interaction, newresp *discordgo.WebhookEdit, options ...discordgo.RequestOption) (*discordgo.Message, error)
	FollowupMessageCreate(interaction *discordgo.Interaction, wait bool, data *discordgo.WebhookParams, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

type BotOptions struct {
	// ApplicationID is used to register commands. When empty the bot user id
	// is used, which is the same value for bot applications.
	ApplicationID      string
	StatusMessage      string
	InteractionTimeout time.Duration
	Logger             *slog.Logger
}

// Bot owns the gateway connection and routes interactions to the dispatcher.
type Bot struct {
	session    *discordgo.Session
	dispatcher *application.Dispatcher
	opts       BotOptions
	logger     *slog.Logger
}

// NewSession creates a session with the intents the bot relies on. The
// connection is opened by Bot.Run.
func NewSession(token string) (*discordgo.Session, error) {
	if token == "" {
		return nil, errors.New("discord token is empty")
	}

	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}
	session.Identify.Intents = intents

	return session, nil
}

func NewBot(session *discordgo.Session, dispatcher *application.Dispatcher, opts BotOptions) *Bot {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.InteractionTimeout <= 0 {
		opts.InteractionTimeout = defaultInteractionTimeout
	}

	return &Bot{
		session:    session,
		dispatcher: dispatcher,
		opts:       opts,
		logger:     opts.Logger,
	}
}

// Run connects, registers the slash commands and blocks until ctx is done.
func (b *Bot) Run(ctx context.Context) error {
	b.session.AddHandler(b.onReady)
	b.session.AddHandler(func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		b.handleInteraction(ctx, s, i.Interaction)
	})

	if err := b.session.Open(); err != nil {
		return fmt.Errorf("open discord session: %w", err)
	}
	defer func() {
		if err := b.session.Close(); err != nil {
			b.logger.Warn("close discord session", slog.Any("error", err))
		}
	}()

	b.registerCommands(ctx)

	<-ctx.Done()
	b.logger.Info("shutting down")
	return nil
}

func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	b.logger.Info("logged in", slog.String("user", r.User.String()), slog.Int("guilds", len(r.Guilds)))

	if b.opts.StatusMessage == "" {
		return
	}
	if err := s.UpdateGameStatus(0, b.opts.StatusMessage); err != nil {
		b.logger.Warn("set status message", slog.Any("error", err))
	}
}

// registerCommands replaces the global command set. A failure leaves the
// previously registered commands in place, so it is logged and not fatal.
func (b *Bot) registerCommands(ctx context.Context) {
	appID := b.opts.ApplicationID
	if appID == "" && b.session.State != nil && b.session.State.User != nil {
		appID = b.session.State.User.ID
	}
	if appID == "" {
		b.logger.Error("register commands: application id unknown")
		return
	}

	registered, err := b.session.ApplicationCommandBulkOverwrite(appID, "", applicationCommands(b.dispatcher.Commands()), discordgo.WithContext(ctx))
	if err != nil {
		b.logger.Error("register commands", slog.Any("error", err))
		return
	}

	b.logger.Info("registered commands", slog.Int("count", len(registered)))
}

func applicationCommands(specs []application.CommandSpec) []*discordgo.ApplicationCommand {
	commands := make([]*discordgo.ApplicationCommand, 0, len(specs))
	for _, spec := range specs {
		commands = append(commands, &discordgo.ApplicationCommand{
			Name:        spec.Name,
			Description: spec.Description,
		})
	}

	return commands
}

// handleInteraction acknowledges before any role or DM call so the
// interaction stays valid however long those calls take. Errors are logged
// and end here; they never reach other interactions.
func (b *Bot) handleInteraction(ctx context.Context, api interactionAPI, i *discordgo.Interaction) {
	inv, ok := invocationFrom(i)
	if !ok {
		b.logger.Debug("interaction without user", slog.String("interaction", i.ID))
		return
	}

	logger := b.logger.With(
		slog.String("interaction", i.ID),
		slog.String("user", string(inv.UserID)),
		slog.Bool("direct", inv.Direct),
	)

	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		b.handleCommand(ctx, api, i, inv, logger)
	case discordgo.InteractionMessageComponent:
		b.handlePress(ctx, api, i, inv, logger)
	}
}

// handleCommand defers only in DMs, where visibility is moot. Guild
// invocations never reach the role gateway or the messenger, so they answer
// directly and keep control over whether the reply is private.
func (b *Bot) handleCommand(ctx context.Context, api interactionAPI, i *discordgo.Interaction, inv application.Invocation, logger *slog.Logger) {
	name := i.ApplicationCommandData().Name
	if !b.dispatcher.HasCommand(name) {
		logger.Warn("command", slog.String("command", name), slog.Any("error", application.ErrUnknownCommand))
		return
	}

	if inv.Direct {
		deferred := &discordgo.InteractionResponse{Type: discordgo.InteractionResponseDeferredChannelMessageWithSource}
		if err := api.InteractionRespond(i, deferred, discordgo.WithContext(ctx)); err != nil {
			logger.Error("defer command", slog.String("command", name), slog.Any("error", err))
			return
		}
	}

	dispatchCtx, cancel := context.WithTimeout(ctx, b.opts.InteractionTimeout)
	reply, err := b.dispatcher.Command(dispatchCtx, inv, name)
	cancel()
	if err != nil {
		logger.Warn("command", slog.String("command", name), slog.Any("error", err))
		return
	}
	logger.Debug("command handled", slog.String("command", name))

	if inv.Direct {
		if _, err := api.InteractionResponseEdit(i, webhookEdit(reply.Payload), discordgo.WithContext(ctx)); err != nil {
			logger.Error("edit command response", slog.Any("error", err))
		}
		return
	}

	if err := api.InteractionRespond(i, interactionResponse(reply), discordgo.WithContext(ctx)); err != nil {
		logger.Error("respond to interaction", slog.Any("error", err))
	}
}

// handlePress defers the message update first, then applies the reply as an
// edit of the pressed message or as a follow-up. The interaction timeout
// bounds the dispatch only, so a failure notice still goes out after it.
func (b *Bot) handlePress(ctx context.Context, api interactionAPI, i *discordgo.Interaction, inv application.Invocation, logger *slog.Logger) {
	customID := i.MessageComponentData().CustomID

	deferred := &discordgo.InteractionResponse{Type: discordgo.InteractionResponseDeferredMessageUpdate}
	if err := api.InteractionRespond(i, deferred, discordgo.WithContext(ctx)); err != nil {
		logger.Error("defer button", slog.String("custom_id", customID), slog.Any("error", err))
		return
	}

	dispatchCtx, cancel := context.WithTimeout(ctx, b.opts.InteractionTimeout)
	reply := b.dispatcher.Press(dispatchCtx, inv, customID)
	cancel()
	logger.Debug("button handled", slog.String("custom_id", customID))

	var err error
	switch reply.Mode {
	case application.ReplyAck:
		return
	case application.ReplyUpdate:
		_, err = api.InteractionResponseEdit(i, webhookEdit(reply.Payload), discordgo.WithContext(ctx))
	default:
		_, err = api.FollowupMessageCreate(i, true, followup(reply.Payload, reply.Private), discordgo.WithContext(ctx))
	}
	if err != nil {
		logger.Error("deliver button reply", slog.String("custom_id", customID), slog.Any("error", err))
	}
}

func invocationFrom(i *discordgo.Interaction) (application.Invocation, bool) {
	var user *discordgo.User
	switch {
	case i.Member != nil && i.Member.User != nil:
		user = i.Member.User
	case i.User != nil:
		user = i.User
	default:
		return application.Invocation{}, false
	}

	return application.Invocation{
		UserID: domain.UserID(user.ID),
		Direct: i.GuildID == "",
	}, true
}

func interactionResponse(reply application.Reply) *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: responseData(reply.Payload, reply.Private),
	}
}
