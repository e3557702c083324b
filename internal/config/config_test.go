package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, dir string, body string) string {
	t.Helper()

	require.NoError(t, os.MkdirAll(dir, 0o700))
	path := filepath.Join(dir, "prefbot.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaultsWithoutConfigFile(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	t.Chdir(t.TempDir())

	v, err := New("")
	require.NoError(t, err)

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Empty(t, cfg.File)
	assert.Equal(t, DefaultToken, cfg.TokenRef)
	assert.Equal(t, filepath.Join(xdg, "prefbot", "catalog.toml"), cfg.CatalogPath)
	assert.Equal(t, filepath.Join(xdg, "prefbot", "secrets"), cfg.SecretsDir)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, 10*time.Second, cfg.InteractionTimeout)
	assert.Empty(t, cfg.MetricsAddr)
}

func TestLoadReadsSearchPathFile(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	t.Chdir(t.TempDir())

	writeConfigFile(t, filepath.Join(xdg, "prefbot"), `
guild_id = "guild-1"
owner_id = "owner-1"
status_message = "Ask me in DMs"
log_level = "debug"
interaction_timeout = "3s"
metrics_addr = "127.0.0.1:9300"
`)

	v, err := New("")
	require.NoError(t, err)

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "guild-1", cfg.GuildID)
	assert.Equal(t, "owner-1", cfg.OwnerID)
	assert.Equal(t, "Ask me in DMs", cfg.StatusMessage)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, 3*time.Second, cfg.InteractionTimeout)
	assert.Equal(t, "127.0.0.1:9300", cfg.MetricsAddr)
	assert.NotEmpty(t, cfg.File)
}

func TestLoadEnvironmentOverridesFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("PREFBOT_OWNER_ID", "owner-from-env")
	t.Setenv("PREFBOT_TOKEN", "  token-from-env  ")

	path := writeConfigFile(t, dir, `owner_id = "owner-from-file"`)

	v, err := New(path)
	require.NoError(t, err)

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "owner-from-env", cfg.OwnerID)
	assert.Equal(t, "token-from-env", cfg.Token)
}

func TestLoadExplicitMissingFileFails(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	_, err := New(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{name: "log level", body: `log_level = "loud"`, wantErr: "log level \"loud\""},
		{name: "timeout format", body: `interaction_timeout = "soon"`, wantErr: "interaction_timeout \"soon\""},
		{name: "timeout sign", body: `interaction_timeout = "-1s"`, wantErr: "must be positive"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("XDG_CONFIG_HOME", t.TempDir())

			v, err := New(writeConfigFile(t, t.TempDir(), tc.body))
			require.NoError(t, err)

			_, err = Load(v)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestLoadExpandsHomeInPaths(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	v, err := New(writeConfigFile(t, t.TempDir(), `catalog_path = "~/bots/catalog.yaml"`))
	require.NoError(t, err)

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "bots", "catalog.yaml"), cfg.CatalogPath)
}

func TestValidateServe(t *testing.T) {
	t.Parallel()

	valid := Config{GuildID: "g", OwnerID: "o", TokenRef: DefaultToken, CatalogPath: "/tmp/catalog.toml"}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "direct token only", mutate: func(c *Config) { c.TokenRef = ""; c.Token = "t" }},
		{name: "missing guild", mutate: func(c *Config) { c.GuildID = "" }, wantErr: "missing guild_id"},
		{name: "missing owner", mutate: func(c *Config) { c.OwnerID = "" }, wantErr: "missing owner_id"},
		{name: "missing token", mutate: func(c *Config) { c.TokenRef = "" }, wantErr: "token or token_ref"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg := valid
			tc.mutate(&cfg)

			err := cfg.ValidateServe()
			if tc.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrInvalidConfig)
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	level, err := ParseLevel("WARN")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, level)

	_, err = ParseLevel("verbose")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
