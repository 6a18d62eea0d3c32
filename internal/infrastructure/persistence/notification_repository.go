package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/localhub/backend/internal/domain/account"
	"github.com/localhub/backend/internal/infrastructure/persistence/models"
)

// GormNotificationRepository implements NotificationRepository using GORM
type GormNotificationRepository struct {
	db *gorm.DB
}

// NewGormNotificationRepository creates a new GormNotificationRepository
func NewGormNotificationRepository(db *gorm.DB) *GormNotificationRepository {
	return &GormNotificationRepository{db: db}
}

// Create inserts a new notification
func (r *GormNotificationRepository) Create(ctx context.Context, notification *account.Notification) error {
	model := models.NotificationModelFromDomain(notification)
	return r.db.WithContext(ctx).Create(model).Error
}

// FindByProfileID finds all notifications for a profile, newest first
func (r *GormNotificationRepository) FindByProfileID(ctx context.Context, profileID uuid.UUID) ([]*account.Notification, error) {
	var notificationModels []models.NotificationModel
	if err := r.db.WithContext(ctx).
		Where("profile_id = ?", profileID).
		Order("created_at DESC").
		Find(&notificationModels).Error; err != nil {
		return nil, err
	}

	notifications := make([]*account.Notification, len(notificationModels))
	for i := range notificationModels {
		notifications[i] = notificationModels[i].ToDomain()
	}
	return notifications, nil
}

// DeleteByProfileID removes all notifications for a profile
func (r *GormNotificationRepository) DeleteByProfileID(ctx context.Context, profileID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&models.NotificationModel{}, "profile_id = ?", profileID)
	return result.RowsAffected, result.Error
}

// Ensure GormNotificationRepository implements NotificationRepository
var _ account.NotificationRepository = (*GormNotificationRepository)(nil)

// GormPreferenceRepository implements PreferenceRepository using GORM
type GormPreferenceRepository struct {
	db *gorm.DB
}

// NewGormPreferenceRepository creates a new GormPreferenceRepository
func NewGormPreferenceRepository(db *gorm.DB) *GormPreferenceRepository {
	return &GormPreferenceRepository{db: db}
}

// Set upserts a preference by (profile_id, key)
func (r *GormPreferenceRepository) Set(ctx context.Context, preference *account.Preference) error {
	model := models.PreferenceModelFromDomain(preference)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "profile_id"}, {Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(model).Error
}

// FindByProfileID finds all preferences for a profile
func (r *GormPreferenceRepository) FindByProfileID(ctx context.Context, profileID uuid.UUID) ([]*account.Preference, error) {
	var preferenceModels []models.PreferenceModel
	if err := r.db.WithContext(ctx).
		Where("profile_id = ?", profileID).
		Find(&preferenceModels).Error; err != nil {
		return nil, err
	}

	preferences := make([]*account.Preference, len(preferenceModels))
	for i := range preferenceModels {
		preferences[i] = preferenceModels[i].ToDomain()
	}
	return preferences, nil
}

// DeleteByProfileID removes all preferences for a profile
func (r *GormPreferenceRepository) DeleteByProfileID(ctx context.Context, profileID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&models.PreferenceModel{}, "profile_id = ?", profileID)
	return result.RowsAffected, result.Error
}

// Ensure GormPreferenceRepository implements PreferenceRepository
var _ account.PreferenceRepository = (*GormPreferenceRepository)(nil)
