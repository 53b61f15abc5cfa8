package configurations

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Repository persists the store as a single TOML file. The file is
// human-editable; top-level tables are configuration names.
type Repository struct {
	config   Config
	validate *validator.Validate
	logger   *zap.Logger
}

func NewRepository(config Config, validate *validator.Validate, logger *zap.Logger) *Repository {
	return &Repository{
		config:   config,
		validate: validate,
		logger:   logger,
	}
}

// Load reads the store file. A missing or empty file yields an empty store;
// content that does not deserialize into the expected shape is fatal.
func (r *Repository) Load(_ context.Context) (Store, error) {
	data, err := os.ReadFile(r.config.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return Store{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration store: %w", err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return Store{}, nil
	}

	store := Store{}
	if err := toml.Unmarshal(data, &store); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStoreCorrupt, err)
	}

	for name, cfg := range store {
		if err := r.validate.Struct(cfg); err != nil {
			return nil, fmt.Errorf("%w: configuration %q: %w", ErrStoreCorrupt, name, err)
		}
	}

	r.logger.Debug("configuration store loaded",
		zap.String("path", r.config.Path),
		zap.Int("count", len(store)))

	return store, nil
}

// Save serializes the whole store and overwrites the file.
func (r *Repository) Save(_ context.Context, store Store) error {
	if err := os.MkdirAll(filepath.Dir(r.config.Path), 0o755); err != nil {
		return fmt.Errorf("failed to create configuration directory: %w", err)
	}

	file, err := os.Create(r.config.Path)
	if err != nil {
		return fmt.Errorf("failed to open configuration store: %w", err)
	}

	if err := toml.NewEncoder(file).Encode(store); err != nil {
		_ = file.Close()
		return fmt.Errorf("failed to write configuration store: %w", err)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close configuration store: %w", err)
	}

	r.logger.Debug("configuration store saved",
		zap.String("path", r.config.Path),
		zap.Int("count", len(store)))

	return nil
}
