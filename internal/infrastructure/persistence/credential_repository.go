package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/localhub/backend/internal/domain/account"
	"github.com/localhub/backend/internal/domain/shared"
	"github.com/localhub/backend/internal/infrastructure/persistence/models"
)

// GormCredentialRepository implements CredentialRepository using GORM
type GormCredentialRepository struct {
	db *gorm.DB
}

// NewGormCredentialRepository creates a new GormCredentialRepository
func NewGormCredentialRepository(db *gorm.DB) *GormCredentialRepository {
	return &GormCredentialRepository{db: db}
}

// Create inserts a new credential row
func (r *GormCredentialRepository) Create(ctx context.Context, credential *account.Credential) error {
	model := models.CredentialModelFromDomain(credential)
	return r.db.WithContext(ctx).Create(model).Error
}

// FindByEmail finds a credential by normalized email
func (r *GormCredentialRepository) FindByEmail(ctx context.Context, email string) (*account.Credential, error) {
	var model models.CredentialModel
	if err := r.db.WithContext(ctx).First(&model, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByProfileID finds the credential backing a profile
func (r *GormCredentialRepository) FindByProfileID(ctx context.Context, profileID uuid.UUID) (*account.Credential, error) {
	var model models.CredentialModel
	if err := r.db.WithContext(ctx).First(&model, "profile_id = ?", profileID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// RecordLogin stamps the last successful login time
func (r *GormCredentialRepository) RecordLogin(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&models.CredentialModel{}).
		Where("id = ?", id).
		Update("last_login_at", time.Now()).Error
}

// DeleteByProfileID removes the auth record for a profile. An absent row
// is not an error: the cascade may be re-run after a partial failure.
func (r *GormCredentialRepository) DeleteByProfileID(ctx context.Context, profileID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&models.CredentialModel{}, "profile_id = ?", profileID)
	return result.RowsAffected, result.Error
}

// Ensure GormCredentialRepository implements CredentialRepository
var _ account.CredentialRepository = (*GormCredentialRepository)(nil)
