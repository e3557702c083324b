package ports

import (
	"context"

	"github.com/bnema/prefbot/internal/domain"
)

// RoleGateway mutates a member's role set. Each call is all-or-nothing; adding
// a held role or removing an absent one is not an error.
type RoleGateway interface {
	AddRoles(ctx context.Context, userID domain.UserID, roleIDs []domain.RoleID) error
	RemoveRoles(ctx context.Context, userID domain.UserID, roleIDs []domain.RoleID) error
}
