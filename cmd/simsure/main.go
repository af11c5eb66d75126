package main

import (
	"context"
	"log/slog"
	"os"

	firebasesdk "firebase.google.com/go/v4"
	"go.uber.org/fx"

	"simsure/config"
	"simsure/internal/delivery"
	"simsure/internal/delivery/http"
	"simsure/internal/delivery/http/middleware"
	"simsure/internal/delivery/http/router/handler"
	"simsure/internal/domain/constants"
	"simsure/internal/domain/service"
	"simsure/internal/infra/challenge"
	"simsure/internal/infra/export"
	"simsure/internal/infra/firebase"
	logs "simsure/internal/infra/log"
	"simsure/internal/infra/notification"
	"simsure/internal/infra/persistence/firestore"
	"simsure/internal/infra/persistence/postgres"
	"simsure/internal/infra/pubsub"
	"simsure/internal/infra/qrcode"
	"simsure/internal/infra/verification"
	"simsure/internal/usecase/impl"
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
		firebase.NewApp,
		firebase.NewAuthClient,
		firestore.NewClient,
		postgres.New,
		export.NewBucket,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			firestore.NewAccountRepository,
			postgres.NewDealerRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newSMTPNotifier,
			newPushService,
			newChallengeService,
			newQRCodeService,
			newFraudPolicy,
			pubsub.NewEventPublisher,
			export.NewBlobObjectStore,
			export.NewAlertExporter,
			verification.NewFaceVerifier,
		),
	)
}

// newSMTPNotifier creates the email notifier when an SMTP relay is configured
func newSMTPNotifier(cfg *config.Config) (service.Notifier, error) {
	if cfg.SMTP == nil {
		return nil, nil // Email notification is optional
	}

	return notification.NewSMTPNotifier(cfg)
}

// newPushService creates the FCM push service when enabled in config
func newPushService(ctx context.Context, cfg *config.Config, app *firebasesdk.App) (service.PushService, error) {
	if cfg.Firebase == nil || !cfg.Firebase.Push {
		return nil, nil // Push delivery is optional
	}

	return notification.NewFirebasePushService(ctx, app)
}

// newChallengeService creates the code challenge service when the policy needs it
func newChallengeService(cfg *config.Config) (service.ChallengeService, error) {
	if cfg.Authorization == nil || cfg.Authorization.Policy != constants.AuthorizationPolicyCode {
		return nil, nil
	}

	return challenge.NewJWTChallengeService(cfg)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

// newFraudPolicy creates the threshold fraud policy from config
func newFraudPolicy(cfg *config.Config) service.FraudPolicy {
	if cfg.Fraud == nil {
		return service.NewThresholdFraudPolicy(0, 0)
	}

	return service.NewThresholdFraudPolicy(cfg.Fraud.HighSpikeThreshold, cfg.Fraud.MediumSpikeThreshold)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAccountService,
			impl.NewAlertService,
			impl.NewDealerService,
			impl.NewExportService,
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
			handler.NewAccountHandler,
			handler.NewAlertHandler,
			handler.NewExportHandler,
			handler.NewDealerHandler,
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
