package persistence

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/localhub/backend/internal/domain/shared"
)

// newMockGormDB creates a GORM DB backed by a mocked SQL connection
func newMockGormDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return gormDB, mock, mockDB
}

func profileColumns() []string {
	return []string{"id", "created_at", "updated_at", "version", "email", "name", "role", "phone", "avatar", "bio", "notify_opt_in"}
}

func TestGormProfileRepository_FindByEmail(t *testing.T) {
	t.Run("finds existing profile", func(t *testing.T) {
		db, mock, mockDB := newMockGormDB(t)
		defer mockDB.Close()
		repo := NewGormProfileRepository(db)

		profileID := uuid.New()
		now := time.Now()
		rows := sqlmock.NewRows(profileColumns()).
			AddRow(profileID, now, now, 1, "alice@example.com", "Alice", "community", "", "", "", false)

		mock.ExpectQuery(`SELECT \* FROM "profiles" WHERE email = \$1 ORDER BY .* LIMIT .*`).
			WithArgs("alice@example.com", 1).
			WillReturnRows(rows)

		profile, err := repo.FindByEmail(context.Background(), "alice@example.com")

		assert.NoError(t, err)
		require.NotNil(t, profile)
		assert.Equal(t, profileID, profile.ID)
		assert.Equal(t, "Alice", profile.Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("maps missing row to ErrNotFound", func(t *testing.T) {
		db, mock, mockDB := newMockGormDB(t)
		defer mockDB.Close()
		repo := NewGormProfileRepository(db)

		mock.ExpectQuery(`SELECT \* FROM "profiles" WHERE email = \$1 ORDER BY .* LIMIT .*`).
			WithArgs("ghost@example.com", 1).
			WillReturnError(gorm.ErrRecordNotFound)

		profile, err := repo.FindByEmail(context.Background(), "ghost@example.com")

		assert.Nil(t, profile)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormProfileRepository_UpdateFields(t *testing.T) {
	t.Run("issues a single UPDATE with the computed column set", func(t *testing.T) {
		db, mock, mockDB := newMockGormDB(t)
		defer mockDB.Close()
		repo := NewGormProfileRepository(db)

		profileID := uuid.New()
		mock.ExpectExec(`UPDATE "profiles" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateFields(context.Background(), profileID, map[string]any{
			"name":  "Alice",
			"phone": "555-0100",
		})

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty field set issues no query", func(t *testing.T) {
		db, mock, mockDB := newMockGormDB(t)
		defer mockDB.Close()
		repo := NewGormProfileRepository(db)

		err := repo.UpdateFields(context.Background(), uuid.New(), map[string]any{})

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("updating an absent row returns ErrNotFound", func(t *testing.T) {
		db, mock, mockDB := newMockGormDB(t)
		defer mockDB.Close()
		repo := NewGormProfileRepository(db)

		mock.ExpectExec(`UPDATE "profiles" SET`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateFields(context.Background(), uuid.New(), map[string]any{"name": "Alice"})

		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormProfileRepository_Delete(t *testing.T) {
	t.Run("returns rows removed", func(t *testing.T) {
		db, mock, mockDB := newMockGormDB(t)
		defer mockDB.Close()
		repo := NewGormProfileRepository(db)

		profileID := uuid.New()
		mock.ExpectExec(`DELETE FROM "profiles" WHERE id = \$1`).
			WithArgs(profileID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		n, err := repo.Delete(context.Background(), profileID)

		assert.NoError(t, err)
		assert.Equal(t, int64(1), n)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("deleting an absent row is a no-op", func(t *testing.T) {
		db, mock, mockDB := newMockGormDB(t)
		defer mockDB.Close()
		repo := NewGormProfileRepository(db)

		profileID := uuid.New()
		mock.ExpectExec(`DELETE FROM "profiles" WHERE id = \$1`).
			WithArgs(profileID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		n, err := repo.Delete(context.Background(), profileID)

		assert.NoError(t, err)
		assert.Equal(t, int64(0), n)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormProfileRepository_ExistsByEmail(t *testing.T) {
	db, mock, mockDB := newMockGormDB(t)
	defer mockDB.Close()
	repo := NewGormProfileRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "profiles" WHERE email = \$1`).
		WithArgs("alice@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	exists, err := repo.ExistsByEmail(context.Background(), "alice@example.com")

	assert.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}
