package directory

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/localhub/backend/internal/domain/directory"
	"github.com/localhub/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// ListingService handles listing submission, the admin approval workflow,
// and the engagement flows (bookings, inquiries, reviews, flags, saves)
// that the account deletion cascade later cleans up.
type ListingService struct {
	listingRepo    directory.ListingRepository
	bookingRepo    directory.BookingRepository
	inquiryRepo    directory.InquiryRepository
	savedRepo      directory.SavedListingRepository
	reviewRepo     directory.ReviewRepository
	flagRepo       directory.ListingFlagRepository
	eventPublisher shared.EventPublisher
	logger         *zap.Logger
}

// NewListingService creates a new listing service
func NewListingService(
	listingRepo directory.ListingRepository,
	bookingRepo directory.BookingRepository,
	inquiryRepo directory.InquiryRepository,
	savedRepo directory.SavedListingRepository,
	reviewRepo directory.ReviewRepository,
	flagRepo directory.ListingFlagRepository,
	eventPublisher shared.EventPublisher,
	logger *zap.Logger,
) *ListingService {
	return &ListingService{
		listingRepo:    listingRepo,
		bookingRepo:    bookingRepo,
		inquiryRepo:    inquiryRepo,
		savedRepo:      savedRepo,
		reviewRepo:     reviewRepo,
		flagRepo:       flagRepo,
		eventPublisher: eventPublisher,
		logger:         logger,
	}
}

// Submit creates a pending listing owned by the submitting profile
func (s *ListingService) Submit(ctx context.Context, input SubmitListingInput) (*ListingInfo, error) {
	if input.OwnerID == uuid.Nil {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Owner profile ID is required")
	}

	listing, err := directory.NewListing(input.OwnerID, input.ContactEmail, input.Name, input.Category)
	if err != nil {
		return nil, err
	}
	listing.Address = input.Address
	listing.Phone = input.Phone
	listing.Website = input.Website
	listing.Description = input.Description

	if err := s.listingRepo.Create(ctx, listing); err != nil {
		s.logger.Error("Failed to create listing",
			zap.String("owner_id", input.OwnerID.String()),
			zap.Error(err))
		return nil, shared.ErrPersistence
	}

	s.publishEvents(ctx, listing)

	s.logger.Info("Listing submitted",
		zap.String("listing_id", listing.ID.String()),
		zap.String("owner_id", input.OwnerID.String()),
		zap.String("name", listing.Name))

	info := newListingInfo(listing)
	return &info, nil
}

// Approve marks a pending listing visible in the directory
func (s *ListingService) Approve(ctx context.Context, listingID uuid.UUID) (*ListingInfo, error) {
	return s.transition(ctx, listingID, (*directory.Listing).Approve)
}

// Reject declines a pending listing
func (s *ListingService) Reject(ctx context.Context, listingID uuid.UUID) (*ListingInfo, error) {
	return s.transition(ctx, listingID, (*directory.Listing).Reject)
}

func (s *ListingService) transition(ctx context.Context, listingID uuid.UUID, apply func(*directory.Listing) error) (*ListingInfo, error) {
	listing, err := s.findListing(ctx, listingID)
	if err != nil {
		return nil, err
	}

	if err := apply(listing); err != nil {
		return nil, err
	}

	if err := s.listingRepo.Update(ctx, listing); err != nil {
		s.logger.Error("Failed to update listing status",
			zap.String("listing_id", listingID.String()),
			zap.Error(err))
		return nil, shared.ErrPersistence
	}

	s.publishEvents(ctx, listing)

	s.logger.Info("Listing status changed",
		zap.String("listing_id", listingID.String()),
		zap.String("status", string(listing.Status)))

	info := newListingInfo(listing)
	return &info, nil
}

// HardDelete permanently removes a listing. This is the explicit admin
// action that takes even an unlinked listing to its terminal state.
func (s *ListingService) HardDelete(ctx context.Context, listingID uuid.UUID) error {
	n, err := s.listingRepo.Delete(ctx, listingID)
	if err != nil {
		s.logger.Error("Failed to hard delete listing",
			zap.String("listing_id", listingID.String()),
			zap.Error(err))
		return shared.ErrPersistence
	}
	if n == 0 {
		return shared.NewDomainError("LISTING_NOT_FOUND", "Listing not found")
	}

	s.logger.Info("Listing hard deleted", zap.String("listing_id", listingID.String()))
	return nil
}

// GetListing loads a listing by id
func (s *ListingService) GetListing(ctx context.Context, listingID uuid.UUID) (*ListingInfo, error) {
	listing, err := s.findListing(ctx, listingID)
	if err != nil {
		return nil, err
	}
	info := newListingInfo(listing)
	return &info, nil
}

// ListByStatus returns listings in the given approval state
func (s *ListingService) ListByStatus(ctx context.Context, status directory.ListingStatus) ([]ListingInfo, error) {
	listings, err := s.listingRepo.FindByStatus(ctx, status)
	if err != nil {
		return nil, shared.ErrPersistence
	}
	infos := make([]ListingInfo, len(listings))
	for i, listing := range listings {
		infos[i] = newListingInfo(listing)
	}
	return infos, nil
}

// CreateBooking records a booking request against an approved listing.
// Bookings are keyed by email so guests without accounts can book.
func (s *ListingService) CreateBooking(ctx context.Context, input CreateBookingInput) (*BookingInfo, error) {
	listing, err := s.findListing(ctx, input.ListingID)
	if err != nil {
		return nil, err
	}
	if listing.Status != directory.ListingStatusApproved {
		return nil, shared.NewDomainError("LISTING_NOT_APPROVED", "Only approved listings accept bookings")
	}

	booking, err := directory.NewBooking(input.Email, input.ListingID, input.StartsAt, input.EndsAt, input.PartySize, input.Amount)
	if err != nil {
		return nil, err
	}

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		s.logger.Error("Failed to create booking",
			zap.String("listing_id", input.ListingID.String()),
			zap.Error(err))
		return nil, shared.ErrPersistence
	}

	s.logger.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("listing_id", input.ListingID.String()))

	return &BookingInfo{
		ID:        booking.ID,
		Email:     booking.Email,
		ListingID: booking.ListingID,
		StartsAt:  booking.StartsAt,
		EndsAt:    booking.EndsAt,
		PartySize: booking.PartySize,
		Amount:    booking.Amount,
		Status:    booking.Status,
	}, nil
}

// CreateInquiry records a contact-form submission keyed by email
func (s *ListingService) CreateInquiry(ctx context.Context, input CreateInquiryInput) error {
	if input.ListingID != nil {
		if _, err := s.findListing(ctx, *input.ListingID); err != nil {
			return err
		}
	}

	inquiry, err := directory.NewInquiry(input.Email, input.ListingID, input.Subject, input.Message)
	if err != nil {
		return err
	}

	if err := s.inquiryRepo.Create(ctx, inquiry); err != nil {
		s.logger.Error("Failed to create inquiry", zap.Error(err))
		return shared.ErrPersistence
	}
	return nil
}

// SaveListing bookmarks a listing for a profile
func (s *ListingService) SaveListing(ctx context.Context, profileID, listingID uuid.UUID) error {
	if _, err := s.findListing(ctx, listingID); err != nil {
		return err
	}
	if err := s.savedRepo.Save(ctx, directory.NewSavedListing(profileID, listingID)); err != nil {
		s.logger.Error("Failed to save listing", zap.Error(err))
		return shared.ErrPersistence
	}
	return nil
}

// CreateReview records a review left by a profile on a listing
func (s *ListingService) CreateReview(ctx context.Context, input CreateReviewInput) error {
	if _, err := s.findListing(ctx, input.ListingID); err != nil {
		return err
	}

	review, err := directory.NewReview(input.ProfileID, input.ListingID, input.Rating, input.Comment)
	if err != nil {
		return err
	}

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		s.logger.Error("Failed to create review", zap.Error(err))
		return shared.ErrPersistence
	}
	return nil
}

// FlagListing reports a listing to the admins
func (s *ListingService) FlagListing(ctx context.Context, input FlagListingInput) error {
	if _, err := s.findListing(ctx, input.ListingID); err != nil {
		return err
	}

	flag, err := directory.NewListingFlag(input.ProfileID, input.ListingID, input.Reason)
	if err != nil {
		return err
	}

	if err := s.flagRepo.Create(ctx, flag); err != nil {
		s.logger.Error("Failed to flag listing", zap.Error(err))
		return shared.ErrPersistence
	}
	return nil
}

func (s *ListingService) findListing(ctx context.Context, listingID uuid.UUID) (*directory.Listing, error) {
	listing, err := s.listingRepo.FindByID(ctx, listingID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("LISTING_NOT_FOUND", "Listing not found")
		}
		return nil, shared.ErrPersistence
	}
	return listing, nil
}

func (s *ListingService) publishEvents(ctx context.Context, listing *directory.Listing) {
	events := listing.GetDomainEvents()
	if len(events) == 0 {
		return
	}
	if err := s.eventPublisher.Publish(ctx, events...); err != nil {
		s.logger.Warn("Failed to publish listing events", zap.Error(err))
	}
	listing.ClearDomainEvents()
}
