package main

import (
	"context"
	"log/slog"
	"os"

	"verifiedtutors/config"
	"verifiedtutors/internal/delivery"
	httphandler "verifiedtutors/internal/delivery/http/router/handler"
	"verifiedtutors/internal/delivery/worker"
	"verifiedtutors/internal/delivery/worker/handler"
	"verifiedtutors/internal/infra/auth"
	logs "verifiedtutors/internal/infra/log"
	"verifiedtutors/internal/infra/push"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		push.NewHub,
		auth.NewJWTService,
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
			httphandler.NewWSHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
