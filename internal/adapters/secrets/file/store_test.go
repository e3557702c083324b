package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/bnema/prefbot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tokenKey = "prefbot/discord/token"

func TestStoreRejectsInvalidKeys(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())
	testCases := []struct {
		name    string
		key     string
		wantErr string
	}{
		{name: "empty", key: "", wantErr: "secret key is empty"},
		{name: "whitespace", key: "   ", wantErr: "secret key is empty"},
		{name: "absolute", key: "/absolute/path", wantErr: "invalid secret key"},
		{name: "traversal", key: "../escape", wantErr: "invalid secret key"},
		{name: "parent", key: "..", wantErr: "invalid secret key"},
		{name: "dot", key: ".", wantErr: "invalid secret key"},
		{name: "pending file", key: "prefbot/discord/token.pending", wantErr: "invalid secret key"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := store.Put(context.Background(), tc.key, "value")
			require.Error(t, err)
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestStorePutGetRoundTripAndPermissions(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	store := NewStore(root)

	require.NoError(t, store.Put(context.Background(), tokenKey, "bot-token"))

	got, err := store.Get(context.Background(), tokenKey)
	require.NoError(t, err)
	assert.Equal(t, "bot-token", got)

	info, err := os.Stat(filepath.Join(root, tokenKey))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(secretFileMode), info.Mode().Perm())

	require.NoError(t, store.Put(context.Background(), tokenKey, "rotated-token"))
	got, err = store.Get(context.Background(), tokenKey)
	require.NoError(t, err)
	assert.Equal(t, "rotated-token", got)

	entries, err := os.ReadDir(filepath.Dir(filepath.Join(root, tokenKey)))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "token", entries[0].Name())
}

func TestStoreGetTrimsHandEditedFiles(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	path := filepath.Join(root, tokenKey)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), storeDirMode))
	require.NoError(t, os.WriteFile(path, []byte("bot-token\n"), secretFileMode))

	got, err := NewStore(root).Get(context.Background(), tokenKey)
	require.NoError(t, err)
	assert.Equal(t, "bot-token", got)
}

func TestStoreGetMissingSecret(t *testing.T) {
	t.Parallel()

	_, err := NewStore(t.TempDir()).Get(context.Background(), tokenKey)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSecretNotFound)

	_, err = NewStore(filepath.Join(t.TempDir(), "never-created")).Get(context.Background(), tokenKey)
	assert.ErrorIs(t, err, domain.ErrSecretNotFound)
}

func TestStoreGetRefusesSymlinkOutsideStore(t *testing.T) {
	t.Parallel()

	outside := filepath.Join(t.TempDir(), "elsewhere")
	require.NoError(t, os.WriteFile(outside, []byte("not a secret"), 0o600))

	root := t.TempDir()
	require.NoError(t, os.Symlink(outside, filepath.Join(root, "leak")))

	_, err := NewStore(root).Get(context.Background(), "leak")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrSecretNotFound)
}

func TestStoreDeleteIsIdempotentWhenSecretMissing(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())

	require.NoError(t, store.Delete(context.Background(), tokenKey))
	require.NoError(t, store.Delete(context.Background(), tokenKey))

	require.NoError(t, NewStore(filepath.Join(t.TempDir(), "never-created")).Delete(context.Background(), tokenKey))
}

func TestStoreDeletePrunesEmptyDirectories(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	store := NewStore(root)
	require.NoError(t, store.Put(context.Background(), tokenKey, "bot-token"))
	require.NoError(t, store.Put(context.Background(), "prefbot/other", "kept"))

	require.NoError(t, store.Delete(context.Background(), tokenKey))

	_, err := os.Stat(filepath.Join(root, "prefbot", "discord"))
	assert.ErrorIs(t, err, os.ErrNotExist)
	_, err = os.Stat(filepath.Join(root, "prefbot", "other"))
	assert.NoError(t, err)
}
