package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bnema/prefbot/internal/adapters/repo/catalogfile"
	chainstore "github.com/bnema/prefbot/internal/adapters/secrets/chain"
	"github.com/bnema/prefbot/internal/config"
	"github.com/bnema/prefbot/internal/domain"
	"github.com/bnema/prefbot/internal/ports"
	"github.com/spf13/cobra"
)

var (
	errNoToken        = errors.New("no bot token configured: set token, PREFBOT_TOKEN or run `prefbot token set`")
	errMalformedToken = errors.New("bot token is malformed: expected three dot-separated segments")
)

type app struct {
	configFile string

	cfg         config.Config
	logger      *slog.Logger
	secretStore ports.SecretStore
}

// init loads configuration once the flags are parsed, so --config and
// --log-level take effect before anything is wired.
func (a *app) init(cmd *cobra.Command) error {
	v, err := config.New(a.configFile)
	if err != nil {
		return err
	}
	if flag := cmd.Flags().Lookup("log-level"); flag != nil && flag.Changed {
		if err := v.BindPFlag(config.KeyLogLevel, flag); err != nil {
			return fmt.Errorf("bind log level flag: %w", err)
		}
	}

	cfg, err := config.Load(v)
	if err != nil {
		return err
	}

	secretStore, err := chainstore.NewPassFirstWithFileFallback(cfg.SecretsDir)
	if err != nil {
		return fmt.Errorf("wire secret store chain: %w", err)
	}

	a.cfg = cfg
	a.logger = newLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	a.secretStore = secretStore

	if cfg.File != "" {
		a.logger.Debug("config loaded", "file", cfg.File)
	}

	return nil
}

func (a *app) catalogRepository() (*catalogfile.Repository, error) {
	repo, err := catalogfile.NewRepository(a.cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("wire catalog repository: %w", err)
	}

	return repo, nil
}

func (a *app) loadCatalog(ctx context.Context) (*domain.Catalog, error) {
	repo, err := a.catalogRepository()
	if err != nil {
		return nil, err
	}

	return readCatalog(ctx, repo, repo.Path())
}

func readCatalog(ctx context.Context, repo ports.CatalogRepository, source string) (*domain.Catalog, error) {
	catalog, err := repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", source, err)
	}

	return catalog, nil
}

// botToken prefers an inline token over the secret store.
func (a *app) botToken(ctx context.Context) (string, error) {
	if a.cfg.Token != "" {
		return normalizeToken(a.cfg.Token)
	}
	if a.cfg.TokenRef == "" {
		return "", errNoToken
	}

	token, err := a.secretStore.Get(ctx, a.cfg.TokenRef)
	if err != nil {
		if errors.Is(err, domain.ErrSecretNotFound) {
			return "", errNoToken
		}
		return "", fmt.Errorf("read bot token %q: %w", a.cfg.TokenRef, err)
	}
	if token == "" {
		return "", errNoToken
	}

	return normalizeToken(token)
}

// normalizeToken strips a pasted "Bot " prefix, which the session adds itself,
// and rejects values that cannot be a bot token before any network call.
func normalizeToken(raw string) (string, error) {
	token := strings.TrimSpace(raw)
	token = strings.TrimSpace(strings.TrimPrefix(token, "Bot "))

	segments := strings.Split(token, ".")
	if len(segments) != 3 || strings.ContainsAny(token, " \t\r\n") {
		return "", errMalformedToken
	}
	for _, segment := range segments {
		if segment == "" {
			return "", errMalformedToken
		}
	}

	return token, nil
}
