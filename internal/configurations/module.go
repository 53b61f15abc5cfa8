package configurations

import (
	"github.com/comphost/comphost/internal/compose"
	"github.com/comphost/comphost/internal/history"
	"github.com/comphost/comphost/internal/network"
	"github.com/go-core-fx/logger"
	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module(
		"configurations",
		logger.WithNamedLogger("configurations"),
		fx.Provide(NewRepository, fx.Private),
		fx.Provide(newGitCloner, fx.Private),
		fx.Provide(func(s *compose.Service) Orchestrator { return s }, fx.Private),
		fx.Provide(func(s *network.Service) NetworkManager { return s }, fx.Private),
		fx.Provide(func(s *history.Service) Recorder { return s }, fx.Private),
		fx.Provide(NewService),
	)
}
