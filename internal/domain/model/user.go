package model

import (
	"errors"
	"strings"
	"time"
)

// DefaultSenderLabel is used in the sender display string when a user has no
// stored display name.
const DefaultSenderLabel = "Me"

// User is a locally stored profile for an authenticated principal.
// Rows are upserted at login from the identity provider's claims; the IdP
// remains authoritative for authentication itself.
type User struct {
	ID          string    `json:"id"                     db:"id"`
	Email       string    `json:"email"                  db:"email"`
	DisplayName *string   `json:"display_name,omitempty" db:"display_name"`
	CreatedAt   time.Time `json:"created_at"             db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"             db:"updated_at"`
}

// SenderDisplay builds the "Name <address>" string used as the From header
// for test sends, falling back to DefaultSenderLabel when the user has no
// display name on file.
func (u *User) SenderDisplay() string {
	name := DefaultSenderLabel
	if u.DisplayName != nil && strings.TrimSpace(*u.DisplayName) != "" {
		name = strings.TrimSpace(*u.DisplayName)
	}
	return name + " <" + u.Email + ">"
}

// UpsertUserRequest represents parameters to create or refresh a User row.
type UpsertUserRequest struct {
	ID          string  `json:"id"`
	Email       string  `json:"email"`
	DisplayName *string `json:"display_name,omitempty"`
}

// Validate validates UpsertUserRequest.
func (r *UpsertUserRequest) Validate() error {
	if strings.TrimSpace(r.ID) == "" {
		return errors.New("id is required")
	}
	email := strings.TrimSpace(r.Email)
	if email == "" {
		return errors.New("email is required")
	}
	if !strings.Contains(email, "@") {
		return errors.New("email must be an email address")
	}
	r.Email = email
	return nil
}
