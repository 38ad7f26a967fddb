package http

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/vaenkat/health-ecosystem-hub/config"
	"github.com/vaenkat/health-ecosystem-hub/internal/api/http/router"
	"github.com/vaenkat/health-ecosystem-hub/internal/app"
)

func Start(cfg *config.Config, timeout time.Duration) {
	fx.New(
		fx.Supply(cfg),
		app.InfraModule,
		app.ServiceModule,
		app.WorkerModule,
		router.Module,
		Module, // the http.Module from server.go

		// Invoking *fiber.App forces NewServer to run, which registers
		// the Listen/Shutdown lifecycle hooks.
		fx.Invoke(func(*fiber.App) {}),

		fx.StopTimeout(timeout),

		// fx's own event log is noise next to the slog output.
		fx.WithLogger(func() fxevent.Logger { return fxevent.NopLogger }),
	).Run()
}
