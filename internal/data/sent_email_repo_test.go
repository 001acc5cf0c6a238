package data

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loopwell/mailcheck-api/internal/domain/model"
	"github.com/loopwell/mailcheck-api/internal/testutil"
)

func seedUser(t *testing.T, db *sql.DB, id string) {
	t.Helper()
	repo := NewUserRepo(db)
	_, err := repo.Upsert(context.Background(), &model.UpsertUserRequest{
		ID:    id,
		Email: id + "@example.com",
	})
	require.NoError(t, err)
}

func TestSentEmailRepo_Create(t *testing.T) {
	testutil.SkipIfNoTestDB(t)
	testutil.WithTestDB(t, func(db *sql.DB) {
		seedUser(t, db, "owner-1")
		repo := NewSentEmailRepo(db)

		created, err := repo.Create(context.Background(), &model.CreateSentEmailRequest{
			OwnerID:    "owner-1",
			DeliveryID: "re_create_1",
			Recipient:  "to@example.com",
			Subject:    "subject line",
		})

		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, "owner-1", created.OwnerID)
		assert.Equal(t, "re_create_1", created.DeliveryID)
		assert.Equal(t, "to@example.com", created.Recipient)
		assert.Equal(t, "subject line", created.Subject)
		assert.False(t, created.CreatedAt.IsZero())
	})
}

func TestSentEmailRepo_Create_EmptySubject(t *testing.T) {
	testutil.SkipIfNoTestDB(t)
	testutil.WithTestDB(t, func(db *sql.DB) {
		seedUser(t, db, "owner-1")
		repo := NewSentEmailRepo(db)

		created, err := repo.Create(context.Background(), &model.CreateSentEmailRequest{
			OwnerID:    "owner-1",
			DeliveryID: "re_nosubject",
			Recipient:  "to@example.com",
		})

		require.NoError(t, err)
		assert.Empty(t, created.Subject)
	})
}

func TestSentEmailRepo_Create_DuplicateDeliveryID(t *testing.T) {
	testutil.SkipIfNoTestDB(t)
	testutil.WithTestDB(t, func(db *sql.DB) {
		seedUser(t, db, "owner-1")
		repo := NewSentEmailRepo(db)

		req := &model.CreateSentEmailRequest{
			OwnerID:    "owner-1",
			DeliveryID: "re_dup",
			Recipient:  "to@example.com",
		}
		_, err := repo.Create(context.Background(), req)
		require.NoError(t, err)

		_, err = repo.Create(context.Background(), req)
		assert.ErrorIs(t, err, ErrDeliveryIDExists)
	})
}

func TestSentEmailRepo_Create_MissingOwner(t *testing.T) {
	testutil.SkipIfNoTestDB(t)
	testutil.WithTestDB(t, func(db *sql.DB) {
		repo := NewSentEmailRepo(db)

		_, err := repo.Create(context.Background(), &model.CreateSentEmailRequest{
			OwnerID:    "no-such-user",
			DeliveryID: "re_orphan",
			Recipient:  "to@example.com",
		})

		assert.ErrorIs(t, err, ErrOwnerMissing)
	})
}

func TestSentEmailRepo_ListRecentByOwner(t *testing.T) {
	testutil.SkipIfNoTestDB(t)
	testutil.WithTestDB(t, func(db *sql.DB) {
		seedUser(t, db, "owner-1")
		seedUser(t, db, "owner-2")
		repo := NewSentEmailRepo(db)
		ctx := context.Background()

		// 12 rows for owner-1, one for owner-2.
		for i := range 12 {
			_, err := repo.Create(ctx, &model.CreateSentEmailRequest{
				OwnerID:    "owner-1",
				DeliveryID: fmt.Sprintf("re_list_%d", i),
				Recipient:  "to@example.com",
			})
			require.NoError(t, err)
		}
		_, err := repo.Create(ctx, &model.CreateSentEmailRequest{
			OwnerID:    "owner-2",
			DeliveryID: "re_other",
			Recipient:  "other@example.com",
		})
		require.NoError(t, err)

		rows, err := repo.ListRecentByOwner(ctx, "owner-1", model.RecentEmailsPageSize)
		require.NoError(t, err)

		// Capped at the page size, newest first, never another owner's rows.
		require.Len(t, rows, model.RecentEmailsPageSize)
		assert.Equal(t, "re_list_11", rows[0].DeliveryID)
		assert.Equal(t, "re_list_2", rows[len(rows)-1].DeliveryID)
		for i := 1; i < len(rows); i++ {
			assert.False(t, rows[i].CreatedAt.After(rows[i-1].CreatedAt))
			assert.Equal(t, "owner-1", rows[i].OwnerID)
		}
	})
}

func TestSentEmailRepo_ListRecentByOwner_Empty(t *testing.T) {
	testutil.SkipIfNoTestDB(t)
	testutil.WithTestDB(t, func(db *sql.DB) {
		seedUser(t, db, "owner-1")
		repo := NewSentEmailRepo(db)

		rows, err := repo.ListRecentByOwner(context.Background(), "owner-1", 10)
		require.NoError(t, err)
		assert.Empty(t, rows)
	})
}
