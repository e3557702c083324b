package ports

import (
	"context"

	"github.com/bnema/prefbot/internal/domain"
)

type DirectMessenger interface {
	SendDirect(ctx context.Context, userID domain.UserID, payload domain.Payload) error
}
