package main

import (
	"context"
	"log/slog"
	"os"

	"verifiedtutors/config"
	"verifiedtutors/internal/delivery"
	"verifiedtutors/internal/delivery/http"
	httpmiddleware "verifiedtutors/internal/delivery/http/middleware"
	"verifiedtutors/internal/delivery/http/router/handler"
	"verifiedtutors/internal/delivery/middleware"
	"verifiedtutors/internal/domain/service"
	"verifiedtutors/internal/infra/auth"
	"verifiedtutors/internal/infra/auth/google"
	logs "verifiedtutors/internal/infra/log"
	"verifiedtutors/internal/infra/mail"
	"verifiedtutors/internal/infra/persistence/postgres"
	"verifiedtutors/internal/infra/pubsub"
	"verifiedtutors/internal/infra/push"
	"verifiedtutors/internal/infra/sms"
	"verifiedtutors/internal/usecase/impl"

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
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
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
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewTutorRepository,
			postgres.NewSubjectRepository,
			postgres.NewLocationRepository,
			postgres.NewBookingRepository,
			postgres.NewRatingRepository,
			postgres.NewFavoriteRepository,
			postgres.NewNotificationRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newPasswordHasher,
			auth.NewJWTService,
			google.NewAuthService,
			mail.NewMailer,
			sms.NewSender,
			push.NewHub,
			push.NewPushHub,
			pubsub.NewEventPublisher,
		),
	)
}

// newPasswordHasher creates a bcrypt hasher with the configured cost
func newPasswordHasher(cfg *config.Config) service.PasswordHasher {
	cost := 0
	if cfg.Auth != nil {
		cost = cfg.Auth.BcryptCost
	}

	return auth.NewBcryptHasher(cost)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewTutorService,
			impl.NewVerificationService,
			impl.NewCatalogService,
			impl.NewLocationService,
			impl.NewBookingService,
			impl.NewRatingService,
			impl.NewFavoriteService,
			impl.NewNotificationService,
			impl.NewNotificationDispatcher,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewRequestIDMiddleware,
			middleware.NewLoggerMiddleware,
			httpmiddleware.NewAuthMiddleware,
			httpmiddleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewTutorHandler,
			handler.NewVerificationHandler,
			handler.NewCatalogHandler,
			handler.NewLocationHandler,
			handler.NewBookingHandler,
			handler.NewRatingHandler,
			handler.NewFavoriteHandler,
			handler.NewNotificationHandler,
			handler.NewWSHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
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
