package httpx

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	domainauth "github.com/loopwell/mailcheck-api/internal/domain/auth"
	"github.com/loopwell/mailcheck-api/internal/domain/model"
	"github.com/loopwell/mailcheck-api/internal/mocks"
	"github.com/loopwell/mailcheck-api/internal/service"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	emailSvc := service.NewEmailService(service.EmailServiceOptions{
		Users:   mocks.NewMockUserRepository(ctrl),
		Emails:  mocks.NewMockSentEmailRepository(ctrl),
		Gateway: mocks.NewMockDeliveryGateway(ctrl),
	})
	return NewRouter(RouterServices{
		Emails:   emailSvc,
		Auth:     &mockAuthService{},
		Notifier: &capturingNotifier{},
	})
}

func TestRouter_Routes(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name     string
		method   string
		target   string
		body     string
		wantCode int
	}{
		{name: "health", method: http.MethodGet, target: "/healthz", wantCode: http.StatusOK},
		{name: "health head", method: http.MethodHead, target: "/healthz", wantCode: http.StatusOK},
		{
			name:     "webhook always acknowledged",
			method:   http.MethodPost,
			target:   "/api/webhooks/resend",
			body:     `not json`,
			wantCode: http.StatusNoContent,
		},
		{
			name:     "auth status without session",
			method:   http.MethodGet,
			target:   "/auth/status",
			wantCode: http.StatusOK,
		},
		{
			name:     "login redirects to provider",
			method:   http.MethodGet,
			target:   "/auth/login",
			wantCode: http.StatusFound,
		},
		{
			name:     "unknown route",
			method:   http.MethodGet,
			target:   "/api/nope",
			wantCode: http.StatusNotFound,
		},
		{
			name:     "wrong method on webhook",
			method:   http.MethodGet,
			target:   "/api/webhooks/resend",
			wantCode: http.StatusMethodNotAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req *http.Request
			if tt.body == "" {
				req = httptest.NewRequest(tt.method, tt.target, nil)
			} else {
				req = httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body))
			}
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}

func TestRouter_UnauthenticatedListing(t *testing.T) {
	router := newTestRouter(t)

	// No session cookie: the listing succeeds with an empty page.
	req := httptest.NewRequest(http.MethodGet, "/api/emails", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"emails":[]}`, w.Body.String())
}

func TestRouter_AuthenticatedSend(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	userRepo := mocks.NewMockUserRepository(ctrl)
	emailRepo := mocks.NewMockSentEmailRepository(ctrl)
	gateway := mocks.NewMockDeliveryGateway(ctrl)

	userRepo.EXPECT().
		GetByID(gomock.Any(), "test-user").
		Return(&model.User{ID: "test-user", Email: "test@example.com"}, nil).
		Times(1)
	gateway.EXPECT().
		Send(gomock.Any(), gomock.Any()).
		Return("re_router_1", nil).
		Times(1)
	emailRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(&model.SentEmail{DeliveryID: "re_router_1"}, nil).
		Times(1)

	emailSvc := service.NewEmailService(service.EmailServiceOptions{
		Users:   userRepo,
		Emails:  emailRepo,
		Gateway: gateway,
	})
	router := NewRouter(RouterServices{
		Emails: emailSvc,
		Auth:   &mockAuthService{},
	})

	// The session cookie is resolved by the middleware; the handler sees
	// the caller id without re-reading the cookie.
	req := httptest.NewRequest(
		http.MethodPost,
		"/api/emails",
		strings.NewReader(`{"to":"to@example.com","body":"hi"}`),
	)
	req.AddCookie(&http.Cookie{Name: "session_id", Value: "test-session-id"})
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.JSONEq(t, `{"delivery_id":"re_router_1"}`, w.Body.String())
}

func TestRouter_UnauthenticatedSendRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	emailSvc := service.NewEmailService(service.EmailServiceOptions{
		Users:   mocks.NewMockUserRepository(ctrl),
		Emails:  mocks.NewMockSentEmailRepository(ctrl),
		Gateway: mocks.NewMockDeliveryGateway(ctrl),
	})
	// Auth service with no valid sessions at all.
	router := NewRouter(RouterServices{
		Emails: emailSvc,
		Auth: &mockAuthService{
			getSessionFunc: func(_ context.Context, _ string) (*domainauth.Session, error) {
				return nil, errors.New("no session")
			},
		},
	})

	req := httptest.NewRequest(
		http.MethodPost,
		"/api/emails",
		strings.NewReader(`{"to":"to@example.com","body":"hi"}`),
	)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
