package httpx

import (
	"log/slog"
	"net/http"

	"github.com/loopwell/mailcheck-api/internal/service"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Emails       *service.EmailService
	Auth         AuthServiceInterface
	Notifier     DeliveryNotifier
	CookieDomain string
	Logger       *slog.Logger // Logger for HTTP errors (optional)
}

// NewRouter creates and configures a new HTTP router.
func NewRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()

	emailHandlers := &EmailHandlers{Svc: services.Emails}
	webhookHandlers := &WebhookHandlers{Notifier: services.Notifier, Logger: services.Logger}

	registerEmailRoutes(mux, emailHandlers, services.Auth)
	registerWebhookRoutes(mux, webhookHandlers)
	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))

	if services.Auth != nil {
		authHandlers := &AuthHandlers{Svc: services.Auth, CookieDomain: services.CookieDomain, Logger: services.Logger}
		registerAuthRoutes(mux, authHandlers)
	}

	return mux
}

// registerEmailRoutes wires the send and list endpoints.
//
// Listing uses OptionalAuth: an unauthenticated caller sees an empty
// history instead of an error. Sending sits behind RequireAuth, and the
// service repeats the caller check for non-HTTP entry points.
func registerEmailRoutes(mux *http.ServeMux, h *EmailHandlers, authSvc AuthServiceInterface) {
	send := http.HandlerFunc(h.Send)
	list := http.HandlerFunc(h.List)
	if authSvc != nil {
		mux.Handle("POST /api/emails", RequireAuth(authSvc)(send))
		mux.Handle("GET /api/emails", OptionalAuth(authSvc)(list))
		return
	}
	mux.Handle("POST /api/emails", send)
	mux.Handle("GET /api/emails", list)
}

func registerWebhookRoutes(mux *http.ServeMux, h *WebhookHandlers) {
	mux.HandleFunc("POST /api/webhooks/resend", h.HandleResendEvent)
}

func registerAuthRoutes(mux *http.ServeMux, h *AuthHandlers) {
	mux.HandleFunc("GET /auth/login", h.Login)
	mux.HandleFunc("GET /auth/callback", h.Callback)
	mux.HandleFunc("POST /auth/logout", h.Logout)
	mux.HandleFunc("GET /auth/status", h.Status)
}
