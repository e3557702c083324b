package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

var ErrInvalidConfig = errors.New("invalid config")

const (
	KeyToken              = "token"
	KeyTokenRef           = "token_ref"
	KeyApplicationID      = "application_id"
	KeyGuildID            = "guild_id"
	KeyOwnerID            = "owner_id"
	KeyStatusMessage      = "status_message"
	KeyCatalogPath        = "catalog_path"
	KeySecretsDir         = "secrets_dir"
	KeyLogLevel           = "log_level"
	KeyMetricsAddr        = "metrics_addr"
	KeyInteractionTimeout = "interaction_timeout"
)

const (
	appName        = "prefbot"
	configName     = "prefbot"
	envPrefix      = "PREFBOT"
	DefaultToken   = "prefbot/discord/token"
	defaultTimeout = 10 * time.Second
)

// Config is the startup configuration. It is read once and never reloaded.
type Config struct {
	Token              string
	TokenRef           string
	ApplicationID      string
	GuildID            string
	OwnerID            string
	StatusMessage      string
	CatalogPath        string
	SecretsDir         string
	LogLevel           slog.Level
	MetricsAddr        string
	InteractionTimeout time.Duration

	// File is the config file that was read, empty when none was found.
	File string
}

// New returns a viper instance with defaults, the search path and the
// PREFBOT_ environment overrides in place. An explicit file wins over the
// search path.
func New(explicitFile string) (*viper.Viper, error) {
	v := viper.New()
	v.SetConfigType("toml")

	configDir, err := defaultConfigDir()
	if err != nil {
		return nil, err
	}

	v.SetDefault(KeyTokenRef, DefaultToken)
	v.SetDefault(KeyStatusMessage, "DM me /preferences")
	v.SetDefault(KeyCatalogPath, filepath.Join(configDir, "catalog.toml"))
	v.SetDefault(KeySecretsDir, filepath.Join(configDir, "secrets"))
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyInteractionTimeout, defaultTimeout.String())

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if explicitFile != "" {
		if _, err := os.Stat(explicitFile); err != nil {
			return nil, fmt.Errorf("%w: config file: %w", ErrInvalidConfig, err)
		}
		v.SetConfigFile(explicitFile)
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(configDir)
		v.AddConfigPath(".")
	}

	return v, nil
}

// Load reads the config file, if one was found, and decodes every key.
func Load(v *viper.Viper) (Config, error) {
	if v == nil {
		return Config{}, fmt.Errorf("%w: nil viper instance", ErrInvalidConfig)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("%w: read config file: %w", ErrInvalidConfig, err)
		}
	}

	level, err := ParseLevel(v.GetString(KeyLogLevel))
	if err != nil {
		return Config{}, err
	}

	timeout, err := parseTimeout(v.GetString(KeyInteractionTimeout))
	if err != nil {
		return Config{}, err
	}

	return Config{
		Token:              strings.TrimSpace(v.GetString(KeyToken)),
		TokenRef:           strings.TrimSpace(v.GetString(KeyTokenRef)),
		ApplicationID:      strings.TrimSpace(v.GetString(KeyApplicationID)),
		GuildID:            strings.TrimSpace(v.GetString(KeyGuildID)),
		OwnerID:            strings.TrimSpace(v.GetString(KeyOwnerID)),
		StatusMessage:      v.GetString(KeyStatusMessage),
		CatalogPath:        expandHome(strings.TrimSpace(v.GetString(KeyCatalogPath))),
		SecretsDir:         expandHome(strings.TrimSpace(v.GetString(KeySecretsDir))),
		LogLevel:           level,
		MetricsAddr:        strings.TrimSpace(v.GetString(KeyMetricsAddr)),
		InteractionTimeout: timeout,
		File:               v.ConfigFileUsed(),
	}, nil
}

// ValidateServe checks what the bot needs to connect. The token itself may
// still come from the secret store behind TokenRef.
func (c Config) ValidateServe() error {
	var missing []string
	if c.GuildID == "" {
		missing = append(missing, KeyGuildID)
	}
	if c.OwnerID == "" {
		missing = append(missing, KeyOwnerID)
	}
	if c.Token == "" && c.TokenRef == "" {
		missing = append(missing, KeyToken+" or "+KeyTokenRef)
	}
	if c.CatalogPath == "" {
		missing = append(missing, KeyCatalogPath)
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrInvalidConfig, strings.Join(missing, ", "))
	}

	return nil
}

func ParseLevel(raw string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(raw))); err != nil {
		return 0, fmt.Errorf("%w: log level %q", ErrInvalidConfig, raw)
	}

	return level, nil
}

func parseTimeout(raw string) (time.Duration, error) {
	timeout, err := time.ParseDuration(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q: %w", ErrInvalidConfig, KeyInteractionTimeout, raw, err)
	}
	if timeout <= 0 {
		return 0, fmt.Errorf("%w: %s must be positive", ErrInvalidConfig, KeyInteractionTimeout)
	}

	return timeout, nil
}

func defaultConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}

	return filepath.Join(homeDir, ".config", appName), nil
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	return filepath.Join(homeDir, strings.TrimPrefix(path, "~"))
}
