package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bnema/prefbot/internal/domain"
	"github.com/bnema/prefbot/internal/ports"
)

const (
	storeDirMode   = 0o700
	secretFileMode = 0o600

	pendingSuffix = ".pending"
)

// Store keeps each secret in its own file below dir. Every access goes through
// an os.Root opened on dir, so a key can never resolve outside of it, even via
// a symlink planted inside the store.
type Store struct {
	dir string
	mu  sync.RWMutex
}

var _ ports.SecretStore = (*Store)(nil)

func NewStore(dir string) *Store {
	return &Store{dir: filepath.Clean(dir)}
}

// Put replaces the secret atomically: the value is written and synced to a
// pending file that is then renamed over the key, so a crash never leaves a
// truncated token behind.
func (s *Store) Put(ctx context.Context, key string, value string) error {
	name, err := secretName(key)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, storeDirMode); err != nil {
		return fmt.Errorf("create secret store %s: %w", s.dir, err)
	}
	root, err := os.OpenRoot(s.dir)
	if err != nil {
		return fmt.Errorf("open secret store %s: %w", s.dir, err)
	}
	defer root.Close()

	if parent := filepath.Dir(name); parent != "." {
		if err := root.MkdirAll(parent, storeDirMode); err != nil {
			return fmt.Errorf("create directory for secret %q: %w", key, err)
		}
	}

	pending := name + pendingSuffix
	if err := writeSynced(root, pending, value); err != nil {
		_ = root.Remove(pending)
		return fmt.Errorf("write secret %q: %w", key, err)
	}
	if err := root.Rename(pending, name); err != nil {
		_ = root.Remove(pending)
		return fmt.Errorf("commit secret %q: %w", key, err)
	}

	return nil
}

// Get returns the stored value with surrounding whitespace removed; a token
// file edited by hand usually ends with a newline.
func (s *Store) Get(ctx context.Context, key string) (string, error) {
	name, err := secretName(key)
	if err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	root, err := os.OpenRoot(s.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: %q", domain.ErrSecretNotFound, key)
	}
	if err != nil {
		return "", fmt.Errorf("open secret store %s: %w", s.dir, err)
	}
	defer root.Close()

	data, err := root.ReadFile(name)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: %q", domain.ErrSecretNotFound, key)
	}
	if err != nil {
		return "", fmt.Errorf("read secret %q: %w", key, err)
	}

	return strings.TrimSpace(string(data)), nil
}

// Delete removes the secret and any directories the key left empty. A
// missing secret is not an error.
func (s *Store) Delete(ctx context.Context, key string) error {
	name, err := secretName(key)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	root, err := os.OpenRoot(s.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("open secret store %s: %w", s.dir, err)
	}
	defer root.Close()

	if err := root.Remove(name); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("delete secret %q: %w", key, err)
	}

	for dir := filepath.Dir(name); dir != "."; dir = filepath.Dir(dir) {
		if root.Remove(dir) != nil {
			break
		}
	}

	return nil
}

func writeSynced(root *os.Root, name string, value string) error {
	f, err := root.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, secretFileMode)
	if err != nil {
		return err
	}
	if _, err := f.WriteString(value); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// secretName maps a key such as "prefbot/discord/token" to a path relative
// to the store.
func secretName(key string) (string, error) {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return "", errors.New("secret key is empty")
	}

	name := filepath.Clean(filepath.FromSlash(trimmed))
	if name == "." || !filepath.IsLocal(name) || strings.HasSuffix(name, pendingSuffix) {
		return "", fmt.Errorf("invalid secret key %q", key)
	}

	return name, nil
}
