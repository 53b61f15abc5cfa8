package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-core-fx/config"
)

type storeConfig struct {
	// Dir holds the configuration store and the action history database.
	Dir string `koanf:"dir"`
}

type dockerConfig struct {
	Host       string        `koanf:"host"`
	APIVersion string        `koanf:"api_version"`
	Timeout    time.Duration `koanf:"timeout"`
	TLSEnabled bool          `koanf:"tls_enabled"`
	CAFile     string        `koanf:"ca_file"`
	CertFile   string        `koanf:"cert_file"`
	KeyFile    string        `koanf:"key_file"`
}

type gitConfig struct {
	Timeout time.Duration `koanf:"timeout"`
}

type composeConfig struct {
	Binary  string        `koanf:"binary"`
	Timeout time.Duration `koanf:"timeout"`
}

type networkConfig struct {
	Name string `koanf:"name"`
}

type Config struct {
	Store   storeConfig   `koanf:"store"`
	Docker  dockerConfig  `koanf:"docker"`
	Git     gitConfig     `koanf:"git"`
	Compose composeConfig `koanf:"compose"`
	Network networkConfig `koanf:"network"`
}

func Default() Config {
	//nolint:exhaustruct,mnd //default values
	return Config{
		Docker: dockerConfig{
			Timeout: 30 * time.Second,
		},
		Git: gitConfig{
			Timeout: 5 * time.Minute,
		},
		Compose: composeConfig{
			Binary:  "docker",
			Timeout: 10 * time.Minute,
		},
		Network: networkConfig{
			Name: "comphost",
		},
	}
}

func New() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("failed to resolve home directory: %w", err)
	}

	cfg := Default()
	cfg.Store.Dir = filepath.Join(home, ".config", "comphost")

	options := []config.Option{}
	if yamlPath := os.Getenv("COMPHOST_CONFIG"); yamlPath != "" {
		options = append(options, config.WithLocalYAML(yamlPath))
	}

	if err := config.Load(&cfg, options...); err != nil {
		return Config{}, fmt.Errorf("failed to load config: %w", err)
	}

	return cfg, nil
}
