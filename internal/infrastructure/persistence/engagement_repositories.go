package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/localhub/backend/internal/domain/directory"
	"github.com/localhub/backend/internal/infrastructure/persistence/models"
)

// GormSavedListingRepository implements SavedListingRepository using GORM
type GormSavedListingRepository struct {
	db *gorm.DB
}

// NewGormSavedListingRepository creates a new GormSavedListingRepository
func NewGormSavedListingRepository(db *gorm.DB) *GormSavedListingRepository {
	return &GormSavedListingRepository{db: db}
}

// Save upserts a bookmark; saving the same listing twice is a no-op
func (r *GormSavedListingRepository) Save(ctx context.Context, saved *directory.SavedListing) error {
	model := models.SavedListingModelFromDomain(saved)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "profile_id"}, {Name: "listing_id"}},
			DoNothing: true,
		}).
		Create(model).Error
}

// FindByProfileID finds all bookmarks for a profile
func (r *GormSavedListingRepository) FindByProfileID(ctx context.Context, profileID uuid.UUID) ([]*directory.SavedListing, error) {
	var savedModels []models.SavedListingModel
	if err := r.db.WithContext(ctx).
		Where("profile_id = ?", profileID).
		Find(&savedModels).Error; err != nil {
		return nil, err
	}

	saves := make([]*directory.SavedListing, len(savedModels))
	for i := range savedModels {
		saves[i] = savedModels[i].ToDomain()
	}
	return saves, nil
}

// DeleteByProfileID removes all bookmarks for a profile
func (r *GormSavedListingRepository) DeleteByProfileID(ctx context.Context, profileID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&models.SavedListingModel{}, "profile_id = ?", profileID)
	return result.RowsAffected, result.Error
}

// Ensure GormSavedListingRepository implements SavedListingRepository
var _ directory.SavedListingRepository = (*GormSavedListingRepository)(nil)

// GormReviewRepository implements ReviewRepository using GORM
type GormReviewRepository struct {
	db *gorm.DB
}

// NewGormReviewRepository creates a new GormReviewRepository
func NewGormReviewRepository(db *gorm.DB) *GormReviewRepository {
	return &GormReviewRepository{db: db}
}

// Create inserts a new review
func (r *GormReviewRepository) Create(ctx context.Context, review *directory.Review) error {
	model := models.ReviewModelFromDomain(review)
	return r.db.WithContext(ctx).Create(model).Error
}

// FindByProfileID finds all reviews written by a profile
func (r *GormReviewRepository) FindByProfileID(ctx context.Context, profileID uuid.UUID) ([]*directory.Review, error) {
	var reviewModels []models.ReviewModel
	if err := r.db.WithContext(ctx).
		Where("profile_id = ?", profileID).
		Find(&reviewModels).Error; err != nil {
		return nil, err
	}
	return toReviews(reviewModels), nil
}

// FindByListing finds all reviews against a listing
func (r *GormReviewRepository) FindByListing(ctx context.Context, listingID uuid.UUID) ([]*directory.Review, error) {
	var reviewModels []models.ReviewModel
	if err := r.db.WithContext(ctx).
		Where("listing_id = ?", listingID).
		Order("created_at DESC").
		Find(&reviewModels).Error; err != nil {
		return nil, err
	}
	return toReviews(reviewModels), nil
}

// DeleteByProfileID removes all reviews written by a profile
func (r *GormReviewRepository) DeleteByProfileID(ctx context.Context, profileID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&models.ReviewModel{}, "profile_id = ?", profileID)
	return result.RowsAffected, result.Error
}

func toReviews(reviewModels []models.ReviewModel) []*directory.Review {
	reviews := make([]*directory.Review, len(reviewModels))
	for i := range reviewModels {
		reviews[i] = reviewModels[i].ToDomain()
	}
	return reviews
}

// Ensure GormReviewRepository implements ReviewRepository
var _ directory.ReviewRepository = (*GormReviewRepository)(nil)

// GormListingFlagRepository implements ListingFlagRepository using GORM
type GormListingFlagRepository struct {
	db *gorm.DB
}

// NewGormListingFlagRepository creates a new GormListingFlagRepository
func NewGormListingFlagRepository(db *gorm.DB) *GormListingFlagRepository {
	return &GormListingFlagRepository{db: db}
}

// Create inserts a new flag
func (r *GormListingFlagRepository) Create(ctx context.Context, flag *directory.ListingFlag) error {
	model := models.ListingFlagModelFromDomain(flag)
	return r.db.WithContext(ctx).Create(model).Error
}

// FindByListing finds all flags raised against a listing
func (r *GormListingFlagRepository) FindByListing(ctx context.Context, listingID uuid.UUID) ([]*directory.ListingFlag, error) {
	var flagModels []models.ListingFlagModel
	if err := r.db.WithContext(ctx).
		Where("listing_id = ?", listingID).
		Find(&flagModels).Error; err != nil {
		return nil, err
	}

	flags := make([]*directory.ListingFlag, len(flagModels))
	for i := range flagModels {
		flags[i] = flagModels[i].ToDomain()
	}
	return flags, nil
}

// DeleteByProfileID removes all flags raised by a profile
func (r *GormListingFlagRepository) DeleteByProfileID(ctx context.Context, profileID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&models.ListingFlagModel{}, "profile_id = ?", profileID)
	return result.RowsAffected, result.Error
}

// Ensure GormListingFlagRepository implements ListingFlagRepository
var _ directory.ListingFlagRepository = (*GormListingFlagRepository)(nil)
