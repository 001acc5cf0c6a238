// Package httpx provides HTTP handlers and utilities for the mailcheck API.
package httpx

import (
	"net/http"

	"github.com/loopwell/mailcheck-api/internal/domain/model"
	apperrors "github.com/loopwell/mailcheck-api/internal/errors"
	"github.com/loopwell/mailcheck-api/internal/service"
)

// EmailHandlers provides HTTP handlers for sending and listing test emails.
type EmailHandlers struct {
	Svc *service.EmailService
}

// Send handles HTTP requests to send a test email.
// POST /api/emails.
func (h *EmailHandlers) Send(w http.ResponseWriter, r *http.Request) {
	var req model.SendEmailRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	deliveryID, err := h.Svc.SendTestEmail(r.Context(), CallerID(r.Context()), req)
	if err != nil {
		switch {
		case apperrors.IsUnauthenticated(err):
			WriteError(w, ErrorParams{Code: http.StatusUnauthorized, ErrCode: "authentication_required", Err: err})
		case apperrors.IsNotFound(err):
			WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "user_not_found", Err: err})
		case apperrors.IsValidation(err):
			WriteError(w, ErrorParams{Code: http.StatusUnprocessableEntity, ErrCode: "validation_failed", Err: err})
		case apperrors.IsUnavailable(err):
			WriteError(w, ErrorParams{Code: http.StatusBadGateway, ErrCode: "delivery_failed", Err: err})
		default:
			WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "send_failed", Err: err})
		}
		return
	}

	// 202: the provider accepted the message but final delivery is pending.
	WriteJSON(w, http.StatusAccepted, map[string]string{"delivery_id": deliveryID})
}

// List handles HTTP requests to list the caller's recent emails with live status.
// GET /api/emails.
func (h *EmailHandlers) List(w http.ResponseWriter, r *http.Request) {
	emails, err := h.Svc.ListRecentWithStatus(r.Context(), CallerID(r.Context()))
	if err != nil {
		if apperrors.IsUnavailable(err) {
			WriteError(w, ErrorParams{Code: http.StatusBadGateway, ErrCode: "status_lookup_failed", Err: err})
			return
		}
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "list_failed", Err: err})
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{"emails": emails})
}
