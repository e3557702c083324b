package application

import (
	"context"
	"errors"
	"log/slog"

	"github.com/bnema/prefbot/internal/domain"
	"github.com/bnema/prefbot/internal/ports"
)

const (
	msgDirectOnly     = "Please DM me to use this command."
	msgNotAuthorised  = "You are not authorised to use this command."
	msgCheckDirect    = "📩 Check your DMs for the menu!"
	msgDeliveryFailed = "❗ I could not DM you. Please allow direct messages from server members and try again."
)

// Invocation identifies who triggered an interaction and where. It is built
// fresh from every inbound event; nothing about it is stored.
type Invocation struct {
	UserID domain.UserID
	Direct bool
}

type ReplyMode int

const (
	// ReplyAck acknowledges the interaction without changing anything visible.
	ReplyAck ReplyMode = iota
	// ReplyUpdate replaces the message the pressed button belongs to.
	ReplyUpdate
	// ReplyMessage answers with a new message.
	ReplyMessage
)

type Reply struct {
	Mode ReplyMode
	// Private replies are only visible to the invoking user.
	Private bool
	Payload domain.Payload
}

type ServiceOptions struct {
	OwnerID  domain.UserID
	Observer ports.TransitionObserver
	Logger   *slog.Logger
}

// Service holds the entry points for slash commands and button presses. It
// applies the DM-versus-guild rules around the Machine.
type Service struct {
	machine   *Machine
	messenger ports.DirectMessenger
	observer  ports.TransitionObserver
	ownerID   domain.UserID
	logger    *slog.Logger
}

func NewService(catalog *domain.Catalog, gateway ports.RoleGateway, messenger ports.DirectMessenger, opts ServiceOptions) *Service {
	if opts.Observer == nil {
		opts.Observer = ports.NopObserver{}
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	return &Service{
		machine:   NewMachine(catalog, gateway),
		messenger: messenger,
		observer:  opts.Observer,
		ownerID:   opts.OwnerID,
		logger:    opts.Logger,
	}
}

func (s *Service) Preferences(_ context.Context, inv Invocation) Reply {
	if !inv.Direct {
		s.observer.ObserveTransition(CommandPreferences, domain.StateDropped)
		return privateNotice(msgDirectOnly)
	}

	t := s.machine.Start()
	s.observer.ObserveTransition(CommandPreferences, t.State)

	return Reply{Mode: ReplyMessage, Payload: t.Payload}
}

func (s *Service) PostPanel(_ context.Context, inv Invocation) Reply {
	if s.ownerID == "" || inv.UserID != s.ownerID {
		s.logger.Warn("postpanel denied", "user_id", inv.UserID)
		s.observer.ObserveTransition(CommandPostPanel, domain.StateDropped)
		return privateNotice(msgNotAuthorised)
	}

	s.observer.ObserveTransition(CommandPostPanel, domain.StateIdle)
	return Reply{Mode: ReplyMessage, Payload: s.machine.Renderer().Panel()}
}

func (s *Service) ClearRoles(ctx context.Context, inv Invocation) Reply {
	if !inv.Direct {
		s.observer.ObserveTransition(CommandClearRoles, domain.StateDropped)
		return privateNotice(msgDirectOnly)
	}

	t := s.machine.RemoveAll(ctx, inv.UserID)
	s.record(CommandClearRoles, inv, t)

	return Reply{Mode: ReplyMessage, Payload: t.Payload}
}

// Press handles a button. In a DM the pressed message is updated in place.
// Outside a DM the detailed menu is relayed to the user's DM channel and the
// originating channel only sees a short private notice or the final outcome.
func (s *Service) Press(ctx context.Context, inv Invocation, customID string) Reply {
	action := domain.ParseAction(customID)
	if action.Kind == domain.ActionOpenPreferences {
		return s.openPreferences(ctx, inv)
	}

	t := s.machine.Apply(ctx, inv.UserID, action)
	s.record(action.Kind.String(), inv, t)

	switch {
	case t.State == domain.StateDropped:
		return Reply{Mode: ReplyAck}
	case inv.Direct:
		return Reply{Mode: ReplyUpdate, Payload: t.Payload}
	case t.State.Terminal():
		return Reply{Mode: ReplyMessage, Private: true, Payload: t.Payload}
	default:
		return s.relay(ctx, inv, t.Payload)
	}
}

func (s *Service) openPreferences(ctx context.Context, inv Invocation) Reply {
	t := s.machine.Start()
	s.observer.ObserveTransition(t.Action.Kind.String(), t.State)

	if inv.Direct {
		return Reply{Mode: ReplyMessage, Payload: t.Payload}
	}

	return s.relay(ctx, inv, t.Payload)
}

func (s *Service) relay(ctx context.Context, inv Invocation, payload domain.Payload) Reply {
	if err := s.messenger.SendDirect(ctx, inv.UserID, payload); err != nil {
		level := slog.LevelError
		if errors.Is(err, domain.ErrDeliveryFailed) {
			level = slog.LevelWarn
		}
		s.logger.Log(ctx, level, "relay menu to direct messages", "user_id", inv.UserID, "error", err)
		return privateNotice(msgDeliveryFailed)
	}

	return privateNotice(msgCheckDirect)
}

func (s *Service) record(trigger string, inv Invocation, t Transition) {
	s.observer.ObserveTransition(trigger, t.State)

	switch t.State {
	case domain.StateDropped:
		s.logger.Debug("action dropped", "trigger", trigger, "user_id", inv.UserID, "error", t.Err)
	case domain.StateFailed:
		s.logger.Warn("role mutation failed", "trigger", trigger, "user_id", inv.UserID, "error", t.Err)
	default:
		s.logger.Debug("transition", "trigger", trigger, "user_id", inv.UserID, "state", t.State, "direct", inv.Direct)
	}
}

func privateNotice(text string) Reply {
	return Reply{Mode: ReplyMessage, Private: true, Payload: Notice(text)}
}
