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

// GormBookingRepository implements BookingRepository using GORM
type GormBookingRepository struct {
	db *gorm.DB
}

// NewGormBookingRepository creates a new GormBookingRepository
func NewGormBookingRepository(db *gorm.DB) *GormBookingRepository {
	return &GormBookingRepository{db: db}
}

// Create inserts a new booking
func (r *GormBookingRepository) Create(ctx context.Context, booking *directory.Booking) error {
	model := models.BookingModelFromDomain(booking)
	return r.db.WithContext(ctx).Create(model).Error
}

// FindByID finds a booking by ID
func (r *GormBookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*directory.Booking, error) {
	var model models.BookingModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByEmail finds all bookings for an email
func (r *GormBookingRepository) FindByEmail(ctx context.Context, email string) ([]*directory.Booking, error) {
	var bookingModels []models.BookingModel
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		Find(&bookingModels).Error; err != nil {
		return nil, err
	}
	return toBookings(bookingModels), nil
}

// FindByListing finds all bookings against a listing
func (r *GormBookingRepository) FindByListing(ctx context.Context, listingID uuid.UUID) ([]*directory.Booking, error) {
	var bookingModels []models.BookingModel
	if err := r.db.WithContext(ctx).
		Where("listing_id = ?", listingID).
		Find(&bookingModels).Error; err != nil {
		return nil, err
	}
	return toBookings(bookingModels), nil
}

// ExistsByEmail checks whether any booking carries the email
func (r *GormBookingRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.BookingModel{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// DeleteByEmail removes all bookings for an email and returns the rows removed
func (r *GormBookingRepository) DeleteByEmail(ctx context.Context, email string) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&models.BookingModel{}, "email = ?", email)
	return result.RowsAffected, result.Error
}

func toBookings(bookingModels []models.BookingModel) []*directory.Booking {
	bookings := make([]*directory.Booking, len(bookingModels))
	for i := range bookingModels {
		bookings[i] = bookingModels[i].ToDomain()
	}
	return bookings
}

// Ensure GormBookingRepository implements BookingRepository
var _ directory.BookingRepository = (*GormBookingRepository)(nil)
