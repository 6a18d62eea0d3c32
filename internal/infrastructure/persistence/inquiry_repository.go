package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/localhub/backend/internal/domain/directory"
	"github.com/localhub/backend/internal/infrastructure/persistence/models"
)

// GormInquiryRepository implements InquiryRepository using GORM
type GormInquiryRepository struct {
	db *gorm.DB
}

// NewGormInquiryRepository creates a new GormInquiryRepository
func NewGormInquiryRepository(db *gorm.DB) *GormInquiryRepository {
	return &GormInquiryRepository{db: db}
}

// Create inserts a new inquiry
func (r *GormInquiryRepository) Create(ctx context.Context, inquiry *directory.Inquiry) error {
	model := models.InquiryModelFromDomain(inquiry)
	return r.db.WithContext(ctx).Create(model).Error
}

// FindByEmail finds all inquiries for an email
func (r *GormInquiryRepository) FindByEmail(ctx context.Context, email string) ([]*directory.Inquiry, error) {
	var inquiryModels []models.InquiryModel
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		Find(&inquiryModels).Error; err != nil {
		return nil, err
	}

	inquiries := make([]*directory.Inquiry, len(inquiryModels))
	for i := range inquiryModels {
		inquiries[i] = inquiryModels[i].ToDomain()
	}
	return inquiries, nil
}

// ExistsByEmail checks whether any inquiry carries the email
func (r *GormInquiryRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.InquiryModel{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// DeleteByEmail removes all inquiries for an email and returns the rows removed
func (r *GormInquiryRepository) DeleteByEmail(ctx context.Context, email string) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&models.InquiryModel{}, "email = ?", email)
	return result.RowsAffected, result.Error
}

// Ensure GormInquiryRepository implements InquiryRepository
var _ directory.InquiryRepository = (*GormInquiryRepository)(nil)
