package network

import (
	"github.com/go-core-fx/logger"
	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module(
		"network",
		logger.WithNamedLogger("network"),
		fx.Provide(NewService),
	)
}
