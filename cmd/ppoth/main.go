package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"ppoth/config"
	"ppoth/internal/delivery"
	"ppoth/internal/delivery/http"
	"ppoth/internal/delivery/http/middleware"
	"ppoth/internal/delivery/http/router/handler"
	"ppoth/internal/domain/service"
	"ppoth/internal/infra/auth"
	"ppoth/internal/infra/bus"
	"ppoth/internal/infra/concierge"
	logs "ppoth/internal/infra/log"
	"ppoth/internal/infra/media"
	"ppoth/internal/infra/persistence/snapshot"
	"ppoth/internal/infra/persistence/store"
	"ppoth/internal/infra/qrcode"
	"ppoth/internal/usecase/impl"

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
		snapshot.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			store.NewDirectoryRepository,
			store.NewSettingsRepository,
			store.NewPageRepository,
			store.NewUserRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			bus.New,
			auth.NewBcryptHasher,
			auth.NewJWTService,
			concierge.NewGeminiClient,
			newQRCodeService,
			newMediaStore,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M", "https://ppoth.com")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

// newMediaStore creates the blob-backed media store and ties its teardown
// to the application lifecycle.
func newMediaStore(lc fx.Lifecycle, cfg *config.Config) (service.MediaStore, error) {
	dir := "./data/media"
	baseURL := "/media"
	if cfg.Media != nil {
		if cfg.Media.Dir != "" {
			dir = cfg.Media.Dir
		}
		if cfg.Media.BaseURL != "" {
			baseURL = cfg.Media.BaseURL
		}
	}

	mediaStore, closeFn, err := media.NewFileMediaStore(dir, baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create media store: %w", err)
	}

	lc.Append(fx.StopHook(closeFn))

	return mediaStore, nil
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewDirectoryLock,
			impl.NewDirectoryService,
			impl.NewMetricsService,
			impl.NewContentService,
			impl.NewAuthService,
			impl.NewConciergeService,
			impl.NewPartnerService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewDirectoryHandler,
			handler.NewContentHandler,
			handler.NewConciergeHandler,
			handler.NewAuthHandler,
			handler.NewAdminHandler,
			handler.NewPartnerHandler,
			handler.NewEventsHandler,
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
