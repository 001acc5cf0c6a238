package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jackc/pgerrcode"
	"github.com/loopwell/mailcheck-api/internal/data/pgxutil"
	"github.com/loopwell/mailcheck-api/internal/domain/model"
	apperrors "github.com/loopwell/mailcheck-api/internal/errors"
)

var (
	// ErrDeliveryIDExists is returned when a record with the same delivery id already exists.
	// Delivery ids are provider-issued and never reused, so hitting this means
	// the same accepted send was persisted twice.
	ErrDeliveryIDExists = errors.New("delivery id already recorded")
	// ErrOwnerMissing is returned when the owning user row does not exist.
	ErrOwnerMissing = errors.New("owner does not exist")
)

// SentEmailRepo provides database operations for the append-only sent_emails
// table. There is intentionally no update or delete method: records are
// written once, after the delivery provider accepts the message.
type SentEmailRepo struct {
	DB *sql.DB
}

// NewSentEmailRepo creates a new SentEmailRepo.
func NewSentEmailRepo(db *sql.DB) *SentEmailRepo {
	return &SentEmailRepo{DB: db}
}

// Create inserts a new sent email record.
func (r *SentEmailRepo) Create(ctx context.Context, req *model.CreateSentEmailRequest) (*model.SentEmail, error) {
	if req == nil {
		return nil, errors.New("create sent email request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var out model.SentEmail
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO sent_emails (owner_id, delivery_id, recipient, subject)
			VALUES ($1, $2, $3, $4)
			RETURNING id, owner_id, delivery_id, recipient, subject, created_at`,
			req.OwnerID,
			req.DeliveryID,
			req.Recipient,
			req.Subject,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.SentEmail])
		return err
	}); err != nil {
		return nil, r.mapWriteErr(err)
	}
	return &out, nil
}

// ListRecentByOwner retrieves the owner's most recent records, newest first.
// Only rows belonging to ownerID are ever returned.
func (r *SentEmailRepo) ListRecentByOwner(
	ctx context.Context,
	ownerID string,
	limit int,
) ([]*model.SentEmail, error) {
	if limit <= 0 {
		limit = model.RecentEmailsPageSize
	}

	var rowsOut []model.SentEmail
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, sentEmailListByOwnerQuery, ownerID, limit)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.SentEmail])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list sent emails: %w", apperrors.MapDBError(err))
	}

	res := make([]*model.SentEmail, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

const sentEmailListByOwnerQuery = `
	SELECT id, owner_id, delivery_id, recipient, subject, created_at
	FROM sent_emails
	WHERE owner_id = $1
	ORDER BY created_at DESC, id DESC
	LIMIT $2`

func (r *SentEmailRepo) mapWriteErr(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return ErrDeliveryIDExists
		case pgerrcode.ForeignKeyViolation:
			return ErrOwnerMissing
		}
	}
	return apperrors.MapDBError(err)
}
