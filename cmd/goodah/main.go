package main

import (
	"context"
	"log/slog"
	"os"

	"goodah/config"
	"goodah/internal/delivery"
	"goodah/internal/delivery/http"
	"goodah/internal/delivery/http/middleware"
	"goodah/internal/delivery/http/router/handler"
	"goodah/internal/delivery/scheduler"
	"goodah/internal/domain/service"
	"goodah/internal/infra/identity"
	logs "goodah/internal/infra/log"
	"goodah/internal/infra/persistence/postgres"
	"goodah/internal/infra/persistence/sqlite"
	"goodah/internal/infra/push"
	"goodah/internal/infra/pubsub"
	"goodah/internal/usecase"
	"goodah/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
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
		newDB,
	)
}

// newDB selects the storage backend. Postgres is the production target;
// sqlite keeps local development free of external services.
func newDB(lc fx.Lifecycle, cfg *config.Config, logger *slog.Logger) (*gorm.DB, error) {
	switch cfg.Database.Driver {
	case "", "postgres":
		return postgres.New(postgres.Params{
			Lifecycle: lc,
			Config:    cfg,
			Logger:    logger,
		})
	case "sqlite":
		return sqlite.New(sqlite.Params{
			Lifecycle: lc,
			Config:    cfg,
			Logger:    logger,
		})
	default:
		return nil, errors.Errorf("unknown database driver: %s", cfg.Database.Driver)
	}
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewReportRepository,
			postgres.NewDeviceRepository,
			postgres.NewFeedbackRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			identity.NewAnonymousResolver,
			push.NewPushGateway,
			pubsub.NewCampaignEventPublisher,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewReportService,
			impl.NewDeviceService,
			newPushService,
			impl.NewCampaignService,
			impl.NewFeedbackService,
		),
	)
}

// newPushService threads the configured per-dispatch timeout into the push
// service.
func newPushService(gateway service.PushGateway, cfg *config.Config, logger *slog.Logger) usecase.PushUsecase {
	return impl.NewPushService(gateway, cfg.Push.Timeout, logger)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewReportHandler,
			handler.NewDeviceHandler,
			handler.NewPushHandler,
			handler.NewCampaignHandler,
			handler.NewFeedbackHandler,
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
			fx.Annotate(
				scheduler.NewScheduler,
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
