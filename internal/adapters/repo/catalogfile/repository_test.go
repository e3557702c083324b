package catalogfile

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bnema/prefbot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCatalog(t *testing.T, name string, lines ...string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o600))
	return path
}

func TestRepositoryLoadsTOMLCatalog(t *testing.T) {
	t.Parallel()

	path := writeCatalog(t, "catalog.toml",
		"version = 1",
		"",
		"[menu]",
		"picker_prompt = \"Pick:\"",
		"",
		"[[packs]]",
		"key = \"autism\"",
		"name = \"Autism Pack\"",
		"roles = [\"101\", \"102\"]",
		"",
		"[[packs]]",
		"key = \"adhd\"",
		"name = \"ADHD Pack\"",
		"roles = [\"102\", \"201\"]",
		"",
		"[[individuals]]",
		"label = \"No pings\"",
		"role = \"301\"",
		"",
		"[buttons.pack_autism]",
		"emoji = \"🧩\"",
		"style = \"success\"",
	)

	repo, err := NewRepository(path)
	require.NoError(t, err)

	catalog, err := repo.Load(context.Background())
	require.NoError(t, err)

	packs := catalog.Packs()
	require.Len(t, packs, 2)
	assert.Equal(t, domain.PackKey("autism"), packs[0].Key)
	assert.Equal(t, domain.PackKey("adhd"), packs[1].Key)
	assert.Equal(t, []domain.RoleID{"101", "102", "201", "301"}, catalog.ManagedRoleIDs())

	option, err := catalog.Individual(0)
	require.NoError(t, err)
	assert.Equal(t, "No pings", option.Label)

	style := catalog.Presentation()
	assert.Equal(t, domain.ButtonAppearance{Style: domain.ButtonStyleSuccess, Emoji: "🧩"}, style.Buttons["pack_autism"])
	assert.Equal(t, "Pick:", style.Text.PickerPrompt)
}

func TestRepositoryLoadsYAMLCatalog(t *testing.T) {
	t.Parallel()

	path := writeCatalog(t, "catalog.yml",
		"version: 1",
		"packs:",
		"  - key: autism",
		"    name: Autism Pack",
		"    roles: [\"101\"]",
		"individuals:",
		"  - label: Tone tags",
		"    role: \"401\"",
		"buttons:",
		"  done:",
		"    label: Finish",
	)

	repo, err := NewRepository(path)
	require.NoError(t, err)

	catalog, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.RoleID{"101", "401"}, catalog.ManagedRoleIDs())
	assert.Equal(t, "Finish", catalog.Presentation().Buttons["done"].Label)
}

func TestRepositoryRejectsMalformedCatalogs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		file    string
		lines   []string
		wantErr string
	}{
		{
			name:    "empty pack roles",
			file:    "catalog.toml",
			lines:   []string{"[[packs]]", "key = \"autism\"", "name = \"Autism\"", "roles = []"},
			wantErr: "roles are required",
		},
		{
			name:    "duplicate keys",
			file:    "catalog.toml",
			lines:   []string{"[[packs]]", "key = \"a\"", "name = \"A\"", "roles = [\"1\"]", "[[packs]]", "key = \"a\"", "name = \"B\"", "roles = [\"2\"]"},
			wantErr: "duplicate pack key",
		},
		{
			name:    "unknown field",
			file:    "catalog.toml",
			lines:   []string{"[[packs]]", "key = \"a\"", "nmae = \"A\""},
			wantErr: "decode catalog file",
		},
		{
			name:    "unknown yaml field",
			file:    "catalog.yaml",
			lines:   []string{"packs:", "  - key: a", "    colour: red"},
			wantErr: "decode catalog file",
		},
		{
			name:    "future version",
			file:    "catalog.toml",
			lines:   []string{"version = 9"},
			wantErr: "unsupported catalog schema version 9",
		},
		{
			name:    "bad button style",
			file:    "catalog.toml",
			lines:   []string{"[buttons.cancel]", "style = \"neon\""},
			wantErr: "unsupported style \"neon\"",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			repo, err := NewRepository(writeCatalog(t, tc.file, tc.lines...))
			require.NoError(t, err)

			_, err = repo.Load(context.Background())
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidCatalog)
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestRepositoryEmptyYAMLIsAnEmptyCatalog(t *testing.T) {
	t.Parallel()

	repo, err := NewRepository(writeCatalog(t, "catalog.yaml"))
	require.NoError(t, err)

	catalog, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, catalog.Packs())
	assert.Empty(t, catalog.ManagedRoleIDs())
}

func TestNewRepositoryValidatesPath(t *testing.T) {
	t.Parallel()

	_, err := NewRepository("  ")
	assert.ErrorContains(t, err, "catalog path is empty")

	_, err = NewRepository("roles.json")
	assert.ErrorContains(t, err, "unsupported catalog file extension \".json\"")

	repo, err := NewRepository("catalog.toml")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(repo.Path()))
}

func TestRepositoryLoadMissingFile(t *testing.T) {
	t.Parallel()

	repo, err := NewRepository(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)

	_, err = repo.Load(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRepositoryLoadHonoursCancelledContext(t *testing.T) {
	t.Parallel()

	repo, err := NewRepository(writeCatalog(t, "catalog.toml", "version = 1"))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = repo.Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
