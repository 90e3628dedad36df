package main

import (
	"context"
	"log/slog"
	"os"

	"go.uber.org/fx"

	"tuition/config"
	"tuition/internal/delivery"
	"tuition/internal/delivery/api"
	"tuition/internal/delivery/api/middleware"
	"tuition/internal/delivery/api/router/handler"
	"tuition/internal/infra/auth"
	"tuition/internal/infra/cache"
	logs "tuition/internal/infra/log"
	"tuition/internal/infra/metrics"
	"tuition/internal/infra/persistence/postgres"
	"tuition/internal/infra/pubsub"
	"tuition/internal/infra/qrcode"
	"tuition/internal/usecase/impl"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

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
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		metrics.Module,
		cache.Module,
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
		),
		qrcode.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewConfigService,
			impl.NewDynamicProfileService,
			impl.NewTeacherProfileService,
			impl.NewAuthService,
			impl.NewActivityService,
			impl.NewNotificationService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewConfigHandler,
			handler.NewDynamicProfileHandler,
			handler.NewTeacherHandler,
			handler.NewAuthHandler,
			handler.NewActivityHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
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

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
