package bootstrap

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/loopwell/mailcheck-api/config"
	"github.com/loopwell/mailcheck-api/internal/adapters/resend"
	"github.com/loopwell/mailcheck-api/internal/data"
	"github.com/loopwell/mailcheck-api/internal/observability/notify"
	"github.com/loopwell/mailcheck-api/internal/observability/notify/logsink"
	"github.com/loopwell/mailcheck-api/internal/service"
	"github.com/loopwell/mailcheck-api/internal/service/deliverynotifier"
)

// ServiceContainer holds all application services.
type ServiceContainer struct {
	Emails   *service.EmailService
	Auth     *service.AuthService
	Notifier *deliverynotifier.Service
}

// ServiceDeps groups dependencies for service initialization.
type ServiceDeps struct {
	Config      *config.AppConfig
	DB          *sql.DB
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// BuildServices wires repositories, adapters, and services together.
func BuildServices(deps ServiceDeps) (ServiceContainer, error) {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	userRepo := data.NewUserRepo(deps.DB)
	emailRepo := data.NewSentEmailRepo(deps.DB)

	gateway, err := resend.NewClient(resend.Config{
		APIKey:  deps.Config.Mailer.APIKey,
		BaseURL: deps.Config.Mailer.BaseURL,
		Timeout: deps.Config.Mailer.Timeout,
	})
	if err != nil {
		return ServiceContainer{}, fmt.Errorf("build delivery gateway: %w", err)
	}

	emailSvc := service.NewEmailService(service.EmailServiceOptions{
		Users:   userRepo,
		Emails:  emailRepo,
		Gateway: gateway,
		Logger:  logger,
	})

	authSvc := BuildAuthService(AuthConfig{
		Auth:        deps.Config.Auth,
		BaseURL:     deps.Config.HTTP.BaseURL,
		IsDev:       deps.Config.IsDev,
		RedisClient: deps.RedisClient,
		Users:       userRepo,
		Logger:      logger,
	})

	notifier, err := buildDeliveryNotifier(logger, deps.Config.Notify)
	if err != nil {
		return ServiceContainer{}, err
	}

	return ServiceContainer{
		Emails:   emailSvc,
		Auth:     authSvc,
		Notifier: notifier,
	}, nil
}

// buildDeliveryNotifier assembles the fire-and-forget delivery event pipeline.
func buildDeliveryNotifier(logger *slog.Logger, cfg config.NotifyConfig) (*deliverynotifier.Service, error) {
	var filter notify.EventFilter
	if cfg.EventFilter != "" {
		f, err := notify.NewJMESPathFilter(cfg.EventFilter)
		if err != nil {
			return nil, fmt.Errorf("compile delivery event filter: %w", err)
		}
		filter = f
	}

	return deliverynotifier.NewService(deliverynotifier.Options{
		Logger: logger,
		Filter: filter,
		Sinks: []deliverynotifier.SinkRegistration{
			{Name: "log", Sink: logsink.New(logger)},
		},
	}), nil
}
