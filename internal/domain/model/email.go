//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	maxRecipientLen = 320
	maxSubjectLen   = 998

	// RecentEmailsPageSize caps how many sent emails a listing returns.
	RecentEmailsPageSize = 10
)

// DeliveryState is the provider-side lifecycle state of a sent email.
type DeliveryState string

const (
	DeliveryStateQueued     DeliveryState = "queued"
	DeliveryStateScheduled  DeliveryState = "scheduled"
	DeliveryStateSent       DeliveryState = "sent"
	DeliveryStateDelivered  DeliveryState = "delivered"
	DeliveryStateDelayed    DeliveryState = "delivery_delayed"
	DeliveryStateBounced    DeliveryState = "bounced"
	DeliveryStateComplained DeliveryState = "complained"
	DeliveryStateCanceled   DeliveryState = "canceled"
	DeliveryStateFailed     DeliveryState = "failed"
)

// Valid reports whether the delivery state is one we recognize.
func (s DeliveryState) Valid() bool {
	switch s {
	case DeliveryStateQueued, DeliveryStateScheduled, DeliveryStateSent,
		DeliveryStateDelivered, DeliveryStateDelayed, DeliveryStateBounced,
		DeliveryStateComplained, DeliveryStateCanceled, DeliveryStateFailed:
		return true
	default:
		return false
	}
}

// Terminal reports whether the provider will emit no further transitions.
func (s DeliveryState) Terminal() bool {
	switch s {
	case DeliveryStateDelivered, DeliveryStateBounced, DeliveryStateComplained,
		DeliveryStateCanceled, DeliveryStateFailed:
		return true
	default:
		return false
	}
}

// ParseDeliveryState normalizes a provider state string and reports whether it is supported.
func ParseDeliveryState(value string) (DeliveryState, bool) {
	state := DeliveryState(strings.ToLower(strings.TrimSpace(value)))
	if state.Valid() {
		return state, true
	}
	return "", false
}

// DeliveryStatus is the transient per-message status fetched live from the
// delivery provider. It is never persisted locally.
type DeliveryStatus struct {
	State      DeliveryState `json:"state"`
	Complained bool          `json:"complained"`
}

// SentEmail is the locally persisted record of one accepted send.
// Rows are append-only: created once after the provider accepts the message,
// never updated, never deleted.
type SentEmail struct {
	ID         string    `json:"id"          db:"id"`
	OwnerID    string    `json:"owner_id"    db:"owner_id"`
	DeliveryID string    `json:"delivery_id" db:"delivery_id"`
	Recipient  string    `json:"recipient"   db:"recipient"`
	Subject    string    `json:"subject"     db:"subject"`
	CreatedAt  time.Time `json:"created_at"  db:"created_at"`
}

// SendEmailRequest represents the user-facing input for sending a test email.
// Subject may be empty; it is stored verbatim.
type SendEmailRequest struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Validate validates SendEmailRequest. Recipient syntax beyond basic shape is
// left to the delivery provider, which is authoritative about what it accepts.
func (r *SendEmailRequest) Validate() error {
	to := strings.TrimSpace(r.To)
	if to == "" {
		return errors.New("to is required and cannot be empty")
	}
	if utf8.RuneCountInString(to) > maxRecipientLen {
		return errors.New("to cannot exceed 320 characters")
	}
	if !strings.Contains(to, "@") {
		return errors.New("to must be an email address")
	}
	if utf8.RuneCountInString(r.Subject) > maxSubjectLen {
		return errors.New("subject cannot exceed 998 characters")
	}
	r.To = to
	return nil
}

// CreateSentEmailRequest represents parameters to persist a SentEmail record.
type CreateSentEmailRequest struct {
	OwnerID    string `json:"owner_id"`
	DeliveryID string `json:"delivery_id"`
	Recipient  string `json:"recipient"`
	Subject    string `json:"subject"`
}

// Validate validates CreateSentEmailRequest.
func (r *CreateSentEmailRequest) Validate() error {
	if strings.TrimSpace(r.OwnerID) == "" {
		return errors.New("owner_id is required")
	}
	if strings.TrimSpace(r.DeliveryID) == "" {
		return errors.New("delivery_id is required")
	}
	if strings.TrimSpace(r.Recipient) == "" {
		return errors.New("recipient is required")
	}
	return nil
}

// EmailWithStatus joins a stored SentEmail with its freshly fetched delivery
// status for the listing read model.
type EmailWithStatus struct {
	DeliveryID string         `json:"delivery_id"`
	SentAt     time.Time      `json:"sent_at"`
	To         string         `json:"to"`
	Subject    string         `json:"subject"`
	Status     DeliveryStatus `json:"status"`
}
