package internal

import (
	"context"

	"github.com/capcom6/go-infra-fx/validator"
	"github.com/comphost/comphost/internal/compose"
	"github.com/comphost/comphost/internal/config"
	"github.com/comphost/comphost/internal/configurations"
	"github.com/comphost/comphost/internal/git"
	"github.com/comphost/comphost/internal/history"
	"github.com/comphost/comphost/internal/network"
	"github.com/comphost/comphost/pkg/badgerfx"
	"github.com/comphost/comphost/pkg/dockerfx"
	"github.com/go-core-fx/logger"
	"go.uber.org/fx"
)

// Services bundles the service layer handed to a subcommand.
type Services struct {
	fx.In

	Configurations *configurations.Service
	History        *history.Service
}

// Run assembles the application, starts it, executes fn, and shuts the
// application down. One invocation runs exactly one subcommand.
func Run(ctx context.Context, fn func(ctx context.Context, svc Services) error) error {
	var svc Services

	app := fx.New(
		// CORE MODULES
		logger.Module(),
		logger.WithFxDefaultLogger(),
		badgerfx.Module(),
		dockerfx.Module(),
		validator.Module,
		//
		// APP MODULES
		config.Module(),
		git.Module(),
		compose.Module(),
		network.Module(),
		//
		// BUSINESS MODULES
		history.Module(),
		configurations.Module(),
		//
		fx.Populate(&svc),
	)
	if err := app.Err(); err != nil {
		return err
	}

	startCtx, cancelStart := context.WithTimeout(ctx, app.StartTimeout())
	defer cancelStart()

	if err := app.Start(startCtx); err != nil {
		return err
	}

	runErr := fn(ctx, svc)

	stopCtx, cancelStop := context.WithTimeout(context.WithoutCancel(ctx), app.StopTimeout())
	defer cancelStop()

	if err := app.Stop(stopCtx); err != nil && runErr == nil {
		runErr = err
	}

	return runErr
}
