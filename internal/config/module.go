package config

import (
	"path/filepath"

	"github.com/comphost/comphost/internal/compose"
	"github.com/comphost/comphost/internal/configurations"
	"github.com/comphost/comphost/internal/git"
	"github.com/comphost/comphost/internal/network"
	"github.com/comphost/comphost/pkg/badgerfx"
	"github.com/comphost/comphost/pkg/dockerfx"
	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module(
		"config",
		fx.Provide(New),
		fx.Provide(func(cfg Config) configurations.Config {
			return configurations.Config{
				Path: filepath.Join(cfg.Store.Dir, "config.toml"),
			}
		}),
		fx.Provide(func(cfg Config) badgerfx.Config {
			return badgerfx.Config{
				Dir: filepath.Join(cfg.Store.Dir, "data"),
			}
		}),
		fx.Provide(func(cfg Config) dockerfx.Config {
			return dockerfx.Config{
				Host:       cfg.Docker.Host,
				APIVersion: cfg.Docker.APIVersion,
				Timeout:    cfg.Docker.Timeout,
				TLSEnabled: cfg.Docker.TLSEnabled,
				TLSConfig: dockerfx.TLSConfig{
					CAFile:   cfg.Docker.CAFile,
					CertFile: cfg.Docker.CertFile,
					KeyFile:  cfg.Docker.KeyFile,
				},
			}
		}),
		fx.Provide(func(cfg Config) git.Config {
			return git.Config{
				Timeout: cfg.Git.Timeout,
			}
		}),
		fx.Provide(func(cfg Config) compose.Config {
			return compose.Config{
				Binary:  cfg.Compose.Binary,
				Timeout: cfg.Compose.Timeout,
			}
		}),
		fx.Provide(func(cfg Config) network.Config {
			return network.Config{
				Name: cfg.Network.Name,
			}
		}),
	)
}
