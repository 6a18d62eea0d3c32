package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/localhub/backend/internal/domain/directory"
	"github.com/localhub/backend/internal/domain/shared"
	"github.com/localhub/backend/internal/infrastructure/persistence/models"
)

// GormListingRepository implements ListingRepository using GORM
type GormListingRepository struct {
	db *gorm.DB
}

// NewGormListingRepository creates a new GormListingRepository
func NewGormListingRepository(db *gorm.DB) *GormListingRepository {
	return &GormListingRepository{db: db}
}

// Create inserts a new listing
func (r *GormListingRepository) Create(ctx context.Context, listing *directory.Listing) error {
	model := models.ListingModelFromDomain(listing)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update saves all columns of an existing listing. Select("*") forces
// owner_id to be written even when nil, which is exactly what unlinking
// needs.
func (r *GormListingRepository) Update(ctx context.Context, listing *directory.Listing) error {
	model := models.ListingModelFromDomain(listing)
	result := r.db.WithContext(ctx).
		Model(model).
		Select("*").
		Omit("id", "created_at").
		Where("id = ?", listing.ID).
		Updates(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete permanently removes a listing row. Deleting an absent row is a no-op.
func (r *GormListingRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&models.ListingModel{}, "id = ?", id)
	return result.RowsAffected, result.Error
}

// FindByID finds a listing by ID
func (r *GormListingRepository) FindByID(ctx context.Context, id uuid.UUID) (*directory.Listing, error) {
	var model models.ListingModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByOwner finds all listings owned by a profile
func (r *GormListingRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*directory.Listing, error) {
	var listingModels []models.ListingModel
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Find(&listingModels).Error; err != nil {
		return nil, err
	}
	return toListings(listingModels), nil
}

// FindByContactEmail finds all listings with a matching contact email
func (r *GormListingRepository) FindByContactEmail(ctx context.Context, email string) ([]*directory.Listing, error) {
	var listingModels []models.ListingModel
	if err := r.db.WithContext(ctx).
		Where("contact_email = ?", email).
		Find(&listingModels).Error; err != nil {
		return nil, err
	}
	return toListings(listingModels), nil
}

// FindUnlinkedByEmail finds reclaimable listings for an email
func (r *GormListingRepository) FindUnlinkedByEmail(ctx context.Context, email string) ([]*directory.Listing, error) {
	var listingModels []models.ListingModel
	if err := r.db.WithContext(ctx).
		Where("unlinked = ? AND contact_email = ?", true, email).
		Find(&listingModels).Error; err != nil {
		return nil, err
	}
	return toListings(listingModels), nil
}

// FindByStatus lists listings in a given approval state
func (r *GormListingRepository) FindByStatus(ctx context.Context, status directory.ListingStatus) ([]*directory.Listing, error) {
	var listingModels []models.ListingModel
	if err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("created_at DESC").
		Find(&listingModels).Error; err != nil {
		return nil, err
	}
	return toListings(listingModels), nil
}

// ExistsByContactEmail checks whether any listing carries the email
func (r *GormListingRepository) ExistsByContactEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.ListingModel{}).
		Where("contact_email = ?", email).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func toListings(listingModels []models.ListingModel) []*directory.Listing {
	listings := make([]*directory.Listing, len(listingModels))
	for i := range listingModels {
		listings[i] = listingModels[i].ToDomain()
	}
	return listings
}

// Ensure GormListingRepository implements ListingRepository
var _ directory.ListingRepository = (*GormListingRepository)(nil)
