package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/localhub/backend/internal/domain/shared"
)

func listingColumns() []string {
	return []string{"id", "created_at", "updated_at", "version", "owner_id", "unlinked", "contact_email", "name", "category", "address", "phone", "website", "description", "status"}
}

func TestGormListingRepository_FindUnlinkedByEmail(t *testing.T) {
	db, mock, mockDB := newMockGormDB(t)
	defer mockDB.Close()
	repo := NewGormListingRepository(db)

	listingID := uuid.New()
	now := time.Now()
	rows := sqlmock.NewRows(listingColumns()).
		AddRow(listingID, now, now, 2, nil, true, "owner@shop.example", "Corner Bakery", "food", "", "", "", "", "approved")

	mock.ExpectQuery(`SELECT \* FROM "listings" WHERE unlinked = \$1 AND contact_email = \$2`).
		WithArgs(true, "owner@shop.example").
		WillReturnRows(rows)

	listings, err := repo.FindUnlinkedByEmail(context.Background(), "owner@shop.example")

	assert.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, listingID, listings[0].ID)
	assert.True(t, listings[0].Unlinked)
	assert.Nil(t, listings[0].OwnerID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormListingRepository_FindByID(t *testing.T) {
	t.Run("maps missing row to ErrNotFound", func(t *testing.T) {
		db, mock, mockDB := newMockGormDB(t)
		defer mockDB.Close()
		repo := NewGormListingRepository(db)

		listingID := uuid.New()
		mock.ExpectQuery(`SELECT \* FROM "listings" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(listingID, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		listing, err := repo.FindByID(context.Background(), listingID)

		assert.Nil(t, listing)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormListingRepository_Delete(t *testing.T) {
	t.Run("returns rows removed", func(t *testing.T) {
		db, mock, mockDB := newMockGormDB(t)
		defer mockDB.Close()
		repo := NewGormListingRepository(db)

		listingID := uuid.New()
		mock.ExpectExec(`DELETE FROM "listings" WHERE id = \$1`).
			WithArgs(listingID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		n, err := repo.Delete(context.Background(), listingID)

		assert.NoError(t, err)
		assert.Equal(t, int64(1), n)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("deleting an absent row is a no-op", func(t *testing.T) {
		db, mock, mockDB := newMockGormDB(t)
		defer mockDB.Close()
		repo := NewGormListingRepository(db)

		listingID := uuid.New()
		mock.ExpectExec(`DELETE FROM "listings" WHERE id = \$1`).
			WithArgs(listingID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		n, err := repo.Delete(context.Background(), listingID)

		assert.NoError(t, err)
		assert.Equal(t, int64(0), n)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormListingRepository_ExistsByContactEmail(t *testing.T) {
	db, mock, mockDB := newMockGormDB(t)
	defer mockDB.Close()
	repo := NewGormListingRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "listings" WHERE contact_email = \$1`).
		WithArgs("nobody@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	exists, err := repo.ExistsByContactEmail(context.Background(), "nobody@example.com")

	assert.NoError(t, err)
	assert.False(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}
