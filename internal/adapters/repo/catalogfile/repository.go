package catalogfile

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/prefbot/internal/domain"
	"github.com/bnema/prefbot/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

type format string

const (
	formatTOML format = "toml"
	formatYAML format = "yaml"
)

// Repository loads the preference catalog from a TOML or YAML file. The file
// is read on every Load; callers load once at startup and share the result.
type Repository struct {
	catalogPath string
	format      format
}

var _ ports.CatalogRepository = (*Repository)(nil)

func NewRepository(path string) (*Repository, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("catalog path is empty")
	}

	catalogPath, err := normalizeCatalogPath(path)
	if err != nil {
		return nil, err
	}

	detected, err := formatForPath(catalogPath)
	if err != nil {
		return nil, err
	}

	return &Repository{catalogPath: catalogPath, format: detected}, nil
}

func (r *Repository) Path() string {
	return r.catalogPath
}

func (r *Repository) Load(ctx context.Context) (*domain.Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := r.readSchema()
	if err != nil {
		return nil, err
	}

	return file.toDomain()
}

func (r *Repository) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(r.catalogPath)
	if err != nil {
		return fileSchema{}, fmt.Errorf("read catalog file: %w", err)
	}

	var file fileSchema
	switch r.format {
	case formatYAML:
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)
		if err := decoder.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
			return fileSchema{}, fmt.Errorf("%w: decode catalog file: %w", domain.ErrInvalidCatalog, err)
		}
	default:
		if err := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields().Decode(&file); err != nil {
			return fileSchema{}, fmt.Errorf("%w: decode catalog file: %w", domain.ErrInvalidCatalog, err)
		}
	}

	if err := file.validateVersion(); err != nil {
		return fileSchema{}, fmt.Errorf("%w: %w", domain.ErrInvalidCatalog, err)
	}
	file.applyDefaults()

	return file, nil
}

func formatForPath(path string) (format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return formatTOML, nil
	case ".yaml", ".yml":
		return formatYAML, nil
	default:
		return "", fmt.Errorf("unsupported catalog file extension %q (want .toml, .yaml or .yml)", filepath.Ext(path))
	}
}

func normalizeCatalogPath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve catalog path: %w", err)
	}

	return filepath.Clean(absPath), nil
}
