package bootstrap

import (
	"log/slog"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/loopwell/mailcheck-api/config"
	"github.com/loopwell/mailcheck-api/internal/adapters/authroles"
	"github.com/loopwell/mailcheck-api/internal/adapters/devauth"
	"github.com/loopwell/mailcheck-api/internal/adapters/oidc"
	redisadapter "github.com/loopwell/mailcheck-api/internal/adapters/redis"
	"github.com/loopwell/mailcheck-api/internal/core"
	"github.com/loopwell/mailcheck-api/internal/service"
)

// AuthConfig contains configuration for auth service.
type AuthConfig struct {
	Auth config.AuthConfig

	// BaseURL is the externally visible base URL of the application,
	// used to derive the OAuth callback URL when none is configured.
	BaseURL string

	// IsDev marks a development environment; mock auth outside of it is
	// flagged at startup.
	IsDev bool

	RedisClient redis.UniversalClient
	Users       core.UserRepository
	Logger      *slog.Logger
}

// BuildAuthService creates an auth service based on the configured auth mode.
// Returns nil if auth is not configured or configuration is invalid.
func BuildAuthService(cfg AuthConfig) *service.AuthService {
	if cfg.RedisClient == nil {
		if cfg.Logger != nil {
			cfg.Logger.Warn("auth service disabled: redis client not configured", "mode", cfg.Auth.Mode)
		}
		return nil
	}

	// Create Redis session store shared by both modes
	sessionStore := redisadapter.NewSessionStoreWithPrefix(cfg.RedisClient, "session:")

	// Role mapper is shared
	roleMapper := authroles.StaticRoleMapper{
		AdminGroup: cfg.Auth.AdminGroup,
		UserGroup:  cfg.Auth.UserGroup,
	}

	switch cfg.Auth.Mode {
	case config.AuthModeMock:
		if !cfg.IsDev && cfg.Logger != nil {
			cfg.Logger.Warn("mock auth enabled outside development mode")
		}
		return buildDevAuthService(cfg, sessionStore, roleMapper)

	case config.AuthModeOAuth:
		return buildOAuthService(cfg, sessionStore, roleMapper)

	default:
		return nil
	}
}

func buildDevAuthService(
	cfg AuthConfig,
	sessionStore *redisadapter.SessionStore,
	roleMapper authroles.StaticRoleMapper,
) *service.AuthService {
	// Explicitly enabled dev auth mode; build a local provider.
	prov, err := devauth.NewProvider(devauth.Config{
		UserID:          cfg.Auth.DevAuth.UserID,
		Email:           cfg.Auth.DevAuth.Email,
		DisplayName:     cfg.Auth.DevAuth.DisplayName,
		Groups:          cfg.Auth.DevAuth.Groups,
		SessionDuration: cfg.Auth.SessionDuration,
	})
	if err != nil {
		if cfg.Logger != nil {
			cfg.Logger.Warn("failed to create dev auth provider, auth disabled", "error", err)
		}
		return nil
	}

	return service.NewAuthService(service.AuthServiceOptions{
		Provider: prov,
		Sessions: sessionStore,
		Roles:    roleMapper,
		Users:    cfg.Users,
	})
}

func buildOAuthService(
	cfg AuthConfig,
	sessionStore *redisadapter.SessionStore,
	roleMapper authroles.StaticRoleMapper,
) *service.AuthService {
	// Only enable when fully configured
	oauth := cfg.Auth.OAuth
	if oauth.DiscoveryURL == "" || oauth.ClientID == "" || oauth.ClientSecret == "" {
		if cfg.Logger != nil {
			cfg.Logger.Warn("AuthModeOAuth selected but required config missing; auth disabled",
				"discovery_url_empty", oauth.DiscoveryURL == "",
				"client_id_empty", oauth.ClientID == "",
				"client_secret_empty", oauth.ClientSecret == "",
			)
		}
		return nil
	}

	redirectURL := oauth.RedirectURL
	if redirectURL == "" {
		redirectURL = strings.TrimRight(cfg.BaseURL, "/") + "/auth/callback"
	}

	prov, err := oidc.NewProvider(oidc.ProviderConfig{
		ClientID:     oauth.ClientID,
		ClientSecret: oauth.ClientSecret,
		RedirectURL:  redirectURL,
		Scope:        oauth.Scope,
		DiscoveryURL: oauth.DiscoveryURL,
	})
	if err != nil {
		if cfg.Logger != nil {
			cfg.Logger.Warn("failed to create OIDC provider, auth disabled", "error", err)
		}
		return nil
	}

	return service.NewAuthService(service.AuthServiceOptions{
		Provider: prov,
		Sessions: sessionStore,
		Roles:    roleMapper,
		Users:    cfg.Users,
	})
}
