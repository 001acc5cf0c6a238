package core

import (
	"context"

	"github.com/loopwell/mailcheck-api/internal/domain/model"
)

// This file contains repository interface definitions (ports in hexagonal architecture).
// These interfaces define the contracts between the service layer and data layer.
// Service implementations should depend on these interfaces, not concrete implementations.

// SentEmailRepository defines the interface for sent email data operations.
// The table is append-only: there is deliberately no update or delete method.
type SentEmailRepository interface {
	Create(ctx context.Context, req *model.CreateSentEmailRequest) (*model.SentEmail, error)
	// ListRecentByOwner returns the owner's newest records first, capped at limit.
	ListRecentByOwner(ctx context.Context, ownerID string, limit int) ([]*model.SentEmail, error)
}

// UserRepository defines the interface for user profile data operations.
type UserRepository interface {
	Upsert(ctx context.Context, req *model.UpsertUserRequest) (*model.User, error)
	GetByID(ctx context.Context, id string) (*model.User, error)
}
