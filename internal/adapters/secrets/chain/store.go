package chain

import (
	"context"
	"errors"
	"fmt"

	filestore "github.com/bnema/prefbot/internal/adapters/secrets/file"
	passstore "github.com/bnema/prefbot/internal/adapters/secrets/pass"
	"github.com/bnema/prefbot/internal/ports"
)

var errNoBackends = errors.New("secret store chain has no backends")

type backend struct {
	name  string
	store ports.SecretStore
}

// Store tries its backends in order. Reads and writes stop at the first
// backend that succeeds; deletes reach every backend so a stale credential
// cannot survive in a fallback.
type Store struct {
	backends []backend
}

var _ ports.SecretStore = (*Store)(nil)

type Option func(*Store)

func WithBackend(name string, store ports.SecretStore) Option {
	return func(s *Store) {
		if store != nil {
			s.backends = append(s.backends, backend{name: name, store: store})
		}
	}
}

func NewStore(opts ...Option) (*Store, error) {
	store := &Store{}
	for _, opt := range opts {
		opt(store)
	}
	if len(store.backends) == 0 {
		return nil, errNoBackends
	}

	return store, nil
}

// NewPassFirstWithFileFallback keeps the bot token in pass when it is
// installed and in a 0600 file under fileRoot otherwise.
func NewPassFirstWithFileFallback(fileRoot string) (*Store, error) {
	return NewStore(
		WithBackend("pass", passstore.NewStore()),
		WithBackend("file", filestore.NewStore(fileRoot)),
	)
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	var errs []error
	for _, b := range s.backends {
		value, err := b.store.Get(ctx, key)
		if err == nil {
			return value, nil
		}
		if isContextError(err) {
			return "", err
		}
		errs = append(errs, fmt.Errorf("%s backend get: %w", b.name, err))
	}

	return "", errors.Join(errs...)
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	var errs []error
	for _, b := range s.backends {
		err := b.store.Put(ctx, key, value)
		if err == nil {
			return nil
		}
		if isContextError(err) {
			return err
		}
		errs = append(errs, fmt.Errorf("%s backend put: %w", b.name, err))
	}

	return errors.Join(errs...)
}

func (s *Store) Delete(ctx context.Context, key string) error {
	var errs []error
	succeeded := false
	for _, b := range s.backends {
		err := b.store.Delete(ctx, key)
		if err == nil {
			succeeded = true
			continue
		}
		if isContextError(err) {
			return err
		}
		errs = append(errs, fmt.Errorf("%s backend delete: %w", b.name, err))
	}

	if succeeded {
		return nil
	}

	return errors.Join(errs...)
}

func isContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
