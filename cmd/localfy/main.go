package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"localfy/config"
	"localfy/internal/delivery"
	"localfy/internal/delivery/http"
	"localfy/internal/delivery/http/middleware"
	"localfy/internal/delivery/http/router/handler"
	"localfy/internal/domain/service"
	"localfy/internal/infra/auth"
	"localfy/internal/infra/localstore"
	logs "localfy/internal/infra/log"
	"localfy/internal/infra/notification"
	"localfy/internal/infra/persistence/firestore"
	"localfy/internal/infra/pubsub"
	"localfy/internal/infra/qrcode"
	"localfy/internal/infra/storage"
	"localfy/internal/usecase"
	"localfy/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
	Directory  usecase.DirectoryUsecase
	Watcher    usecase.WatcherUsecase
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
		firestore.NewClient,
		localstore.NewKVStore,
		pubsub.NewEventPublisher,
		storage.NewMediaStorage,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			firestore.NewBusinessRepository,
			firestore.NewReviewRepository,
			localstore.NewSnapshotStore,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			auth.NewFirebaseIdentityProvider,
			newFirebaseService,
			newQRCodeService,
		),
	)
}

// newFirebaseService creates a Firebase service with dependency injection
func newFirebaseService(ctx context.Context, cfg *config.Config) (service.NotificationService, error) {
	if cfg.Firebase == nil {
		return nil, nil // Firebase is optional
	}

	svc, err := notification.NewFirebaseService(ctx, cfg.Firebase.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firebase service: %w", err)
	}

	return svc, nil
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewDirectoryService,
			impl.NewBusinessWatcher,
			impl.NewReviewService,
			impl.NewAnalyticsService,
			impl.NewSessionService,
			impl.NewMediaService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewRequestIDMiddleware,
			middleware.NewLoggerMiddleware,
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewBusinessHandler,
			handler.NewReviewHandler,
			handler.NewSessionHandler,
			handler.NewMediaHandler,
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
	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			return params.Directory.Init(ctx)
		},
		OnStop: func(context.Context) error {
			params.Watcher.Close()
			params.Directory.Dispose()

			return nil
		},
	})

	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
