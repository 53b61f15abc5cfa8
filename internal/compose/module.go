package compose

import (
	"github.com/go-core-fx/logger"
	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module(
		"compose",
		logger.WithNamedLogger("compose"),
		fx.Provide(NewService),
	)
}
