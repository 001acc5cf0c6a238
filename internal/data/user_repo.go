package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/loopwell/mailcheck-api/internal/data/pgxutil"
	"github.com/loopwell/mailcheck-api/internal/domain/model"
	apperrors "github.com/loopwell/mailcheck-api/internal/errors"
)

// ErrUserNotFound is returned when a user profile is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepo provides database operations for user profiles.
type UserRepo struct {
	DB *sql.DB
}

// NewUserRepo creates a new UserRepo.
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{DB: db}
}

// Upsert creates or refreshes a user profile keyed by the IdP subject.
// Called on every completed login so the profile tracks the IdP claims.
func (r *UserRepo) Upsert(ctx context.Context, req *model.UpsertUserRequest) (*model.User, error) {
	if req == nil {
		return nil, errors.New("upsert user request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var out model.User
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO users (id, email, display_name)
			VALUES ($1, $2, $3)
			ON CONFLICT (id) DO UPDATE
			SET email = EXCLUDED.email,
			    display_name = EXCLUDED.display_name,
			    updated_at = now()
			RETURNING id, email, display_name, created_at, updated_at`,
			req.ID,
			req.Email,
			req.DisplayName,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.User])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to upsert user: %w", apperrors.MapDBError(err))
	}
	return &out, nil
}

// GetByID retrieves a user profile by ID.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			SELECT id, email, display_name, created_at, updated_at
			FROM users
			WHERE id = $1`, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		user, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.User])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by ID: %w", apperrors.MapDBError(err))
	}
	return &user, nil
}
