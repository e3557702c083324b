package discord

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/bnema/prefbot/internal/domain"
	"github.com/bnema/prefbot/internal/ports"
	"github.com/bwmarrin/discordgo"
)

type memberAPI interface {
	GuildMember(guildID, userID string, options ...discordgo.RequestOption) (*discordgo.Member, error)
	GuildMemberEdit(guildID, userID string, data *discordgo.GuildMemberParams, options ...discordgo.RequestOption) (*discordgo.Member, error)
}

// RoleGateway edits guild member roles with a single member read followed by
// a single edit that carries the complete role list. Calls for the same
// member are serialised so concurrent presses cannot lose each other's edit.
type RoleGateway struct {
	api     memberAPI
	guildID string

	mu    sync.Mutex
	locks map[domain.UserID]*memberLock
}

// memberLock is dropped from the map once no caller holds or waits on it.
type memberLock struct {
	mu   sync.Mutex
	refs int
}

var _ ports.RoleGateway = (*RoleGateway)(nil)

func NewRoleGateway(api memberAPI, guildID string) *RoleGateway {
	return &RoleGateway{
		api:     api,
		guildID: guildID,
		locks:   make(map[domain.UserID]*memberLock),
	}
}

func (g *RoleGateway) AddRoles(ctx context.Context, userID domain.UserID, roleIDs []domain.RoleID) error {
	return g.edit(ctx, "add", userID, func(current []string) []string {
		next := slices.Clone(current)
		for _, id := range stringIDs(roleIDs) {
			if !slices.Contains(next, id) {
				next = append(next, id)
			}
		}
		return next
	})
}

func (g *RoleGateway) RemoveRoles(ctx context.Context, userID domain.UserID, roleIDs []domain.RoleID) error {
	remove := stringIDs(roleIDs)
	return g.edit(ctx, "remove", userID, func(current []string) []string {
		return slices.DeleteFunc(slices.Clone(current), func(id string) bool {
			return slices.Contains(remove, id)
		})
	})
}

func (g *RoleGateway) edit(ctx context.Context, op string, userID domain.UserID, mutate func([]string) []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	unlock := g.lockMember(userID)
	defer unlock()

	member, err := g.api.GuildMember(g.guildID, string(userID), discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("%s roles: fetch member %s: %w", op, userID, err)
	}

	next := mutate(member.Roles)
	if sameRoles(member.Roles, next) {
		return nil
	}

	if _, err := g.api.GuildMemberEdit(g.guildID, string(userID), &discordgo.GuildMemberParams{Roles: &next}, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("%s roles: edit member %s: %w", op, userID, err)
	}

	return nil
}

func (g *RoleGateway) lockMember(userID domain.UserID) func() {
	g.mu.Lock()
	lock, ok := g.locks[userID]
	if !ok {
		lock = &memberLock{}
		g.locks[userID] = lock
	}
	lock.refs++
	g.mu.Unlock()

	lock.mu.Lock()

	return func() {
		lock.mu.Unlock()

		g.mu.Lock()
		defer g.mu.Unlock()
		lock.refs--
		if lock.refs == 0 {
			delete(g.locks, userID)
		}
	}
}

func (g *RoleGateway) trackedMembers() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return len(g.locks)
}

func sameRoles(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for _, id := range b {
		if !slices.Contains(a, id) {
			return false
		}
	}

	return true
}
