package directory

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/localhub/backend/internal/domain/directory"
	"github.com/localhub/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockListingRepository is a mock implementation of directory.ListingRepository
type MockListingRepository struct {
	mock.Mock
}

func (m *MockListingRepository) Create(ctx context.Context, listing *directory.Listing) error {
	args := m.Called(ctx, listing)
	return args.Error(0)
}

func (m *MockListingRepository) Update(ctx context.Context, listing *directory.Listing) error {
	args := m.Called(ctx, listing)
	return args.Error(0)
}

func (m *MockListingRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockListingRepository) FindByID(ctx context.Context, id uuid.UUID) (*directory.Listing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*directory.Listing), args.Error(1)
}

func (m *MockListingRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*directory.Listing, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]*directory.Listing), args.Error(1)
}

func (m *MockListingRepository) FindByContactEmail(ctx context.Context, email string) ([]*directory.Listing, error) {
	args := m.Called(ctx, email)
	return args.Get(0).([]*directory.Listing), args.Error(1)
}

func (m *MockListingRepository) FindUnlinkedByEmail(ctx context.Context, email string) ([]*directory.Listing, error) {
	args := m.Called(ctx, email)
	return args.Get(0).([]*directory.Listing), args.Error(1)
}

func (m *MockListingRepository) FindByStatus(ctx context.Context, status directory.ListingStatus) ([]*directory.Listing, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]*directory.Listing), args.Error(1)
}

func (m *MockListingRepository) ExistsByContactEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

// MockBookingRepository is a mock implementation of directory.BookingRepository
type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, booking *directory.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *MockBookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*directory.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*directory.Booking), args.Error(1)
}

func (m *MockBookingRepository) FindByEmail(ctx context.Context, email string) ([]*directory.Booking, error) {
	args := m.Called(ctx, email)
	return args.Get(0).([]*directory.Booking), args.Error(1)
}

func (m *MockBookingRepository) FindByListing(ctx context.Context, listingID uuid.UUID) ([]*directory.Booking, error) {
	args := m.Called(ctx, listingID)
	return args.Get(0).([]*directory.Booking), args.Error(1)
}

func (m *MockBookingRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockBookingRepository) DeleteByEmail(ctx context.Context, email string) (int64, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(int64), args.Error(1)
}

// MockInquiryRepository is a mock implementation of directory.InquiryRepository
type MockInquiryRepository struct {
	mock.Mock
}

func (m *MockInquiryRepository) Create(ctx context.Context, inquiry *directory.Inquiry) error {
	args := m.Called(ctx, inquiry)
	return args.Error(0)
}

func (m *MockInquiryRepository) FindByEmail(ctx context.Context, email string) ([]*directory.Inquiry, error) {
	args := m.Called(ctx, email)
	return args.Get(0).([]*directory.Inquiry), args.Error(1)
}

func (m *MockInquiryRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockInquiryRepository) DeleteByEmail(ctx context.Context, email string) (int64, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(int64), args.Error(1)
}

// MockSavedListingRepository is a mock implementation of directory.SavedListingRepository
type MockSavedListingRepository struct {
	mock.Mock
}

func (m *MockSavedListingRepository) Save(ctx context.Context, saved *directory.SavedListing) error {
	args := m.Called(ctx, saved)
	return args.Error(0)
}

func (m *MockSavedListingRepository) FindByProfileID(ctx context.Context, profileID uuid.UUID) ([]*directory.SavedListing, error) {
	args := m.Called(ctx, profileID)
	return args.Get(0).([]*directory.SavedListing), args.Error(1)
}

func (m *MockSavedListingRepository) DeleteByProfileID(ctx context.Context, profileID uuid.UUID) (int64, error) {
	args := m.Called(ctx, profileID)
	return args.Get(0).(int64), args.Error(1)
}

// MockReviewRepository is a mock implementation of directory.ReviewRepository
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Create(ctx context.Context, review *directory.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewRepository) FindByProfileID(ctx context.Context, profileID uuid.UUID) ([]*directory.Review, error) {
	args := m.Called(ctx, profileID)
	return args.Get(0).([]*directory.Review), args.Error(1)
}

func (m *MockReviewRepository) FindByListing(ctx context.Context, listingID uuid.UUID) ([]*directory.Review, error) {
	args := m.Called(ctx, listingID)
	return args.Get(0).([]*directory.Review), args.Error(1)
}

func (m *MockReviewRepository) DeleteByProfileID(ctx context.Context, profileID uuid.UUID) (int64, error) {
	args := m.Called(ctx, profileID)
	return args.Get(0).(int64), args.Error(1)
}

// MockListingFlagRepository is a mock implementation of directory.ListingFlagRepository
type MockListingFlagRepository struct {
	mock.Mock
}

func (m *MockListingFlagRepository) Create(ctx context.Context, flag *directory.ListingFlag) error {
	args := m.Called(ctx, flag)
	return args.Error(0)
}

func (m *MockListingFlagRepository) FindByListing(ctx context.Context, listingID uuid.UUID) ([]*directory.ListingFlag, error) {
	args := m.Called(ctx, listingID)
	return args.Get(0).([]*directory.ListingFlag), args.Error(1)
}

func (m *MockListingFlagRepository) DeleteByProfileID(ctx context.Context, profileID uuid.UUID) (int64, error) {
	args := m.Called(ctx, profileID)
	return args.Get(0).(int64), args.Error(1)
}

type listingMocks struct {
	listings  *MockListingRepository
	bookings  *MockBookingRepository
	inquiries *MockInquiryRepository
	saved     *MockSavedListingRepository
	reviews   *MockReviewRepository
	flags     *MockListingFlagRepository
}

func newListingService(t *testing.T) (*ListingService, *listingMocks) {
	t.Helper()
	m := &listingMocks{
		listings:  new(MockListingRepository),
		bookings:  new(MockBookingRepository),
		inquiries: new(MockInquiryRepository),
		saved:     new(MockSavedListingRepository),
		reviews:   new(MockReviewRepository),
		flags:     new(MockListingFlagRepository),
	}
	svc := NewListingService(m.listings, m.bookings, m.inquiries, m.saved, m.reviews, m.flags,
		shared.NoopEventPublisher{}, zap.NewNop())
	return svc, m
}

func approvedListing(t *testing.T) *directory.Listing {
	t.Helper()
	listing, err := directory.NewListing(uuid.New(), "owner@example.com", "Corner Bakery", "food")
	require.NoError(t, err)
	require.NoError(t, listing.Approve())
	listing.ClearDomainEvents()
	return listing
}

func TestListingService_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a pending listing", func(t *testing.T) {
		svc, m := newListingService(t)
		ownerID := uuid.New()
		m.listings.On("Create", ctx, mock.AnythingOfType("*directory.Listing")).Return(nil)

		info, err := svc.Submit(ctx, SubmitListingInput{
			OwnerID:      ownerID,
			ContactEmail: "owner@example.com",
			Name:         "Corner Bakery",
			Category:     "food",
			Address:      "12 Main St",
		})
		require.NoError(t, err)
		assert.Equal(t, directory.ListingStatusPending, info.Status)
		require.NotNil(t, info.OwnerID)
		assert.Equal(t, ownerID, *info.OwnerID)
		assert.Equal(t, "12 Main St", info.Address)
	})

	t.Run("requires an owner", func(t *testing.T) {
		svc, m := newListingService(t)

		_, err := svc.Submit(ctx, SubmitListingInput{
			ContactEmail: "owner@example.com",
			Name:         "Corner Bakery",
		})
		require.Error(t, err)
		m.listings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestListingService_Approval(t *testing.T) {
	ctx := context.Background()

	t.Run("approves a pending listing", func(t *testing.T) {
		svc, m := newListingService(t)
		listing, err := directory.NewListing(uuid.New(), "owner@example.com", "Corner Bakery", "food")
		require.NoError(t, err)
		listing.ClearDomainEvents()

		m.listings.On("FindByID", ctx, listing.ID).Return(listing, nil)
		m.listings.On("Update", ctx, listing).Return(nil)

		info, err := svc.Approve(ctx, listing.ID)
		require.NoError(t, err)
		assert.Equal(t, directory.ListingStatusApproved, info.Status)
	})

	t.Run("unknown listing is not found", func(t *testing.T) {
		svc, m := newListingService(t)
		id := uuid.New()
		m.listings.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)

		_, err := svc.Approve(ctx, id)
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "LISTING_NOT_FOUND", domainErr.Code)
	})
}

func TestListingService_HardDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("removes the row", func(t *testing.T) {
		svc, m := newListingService(t)
		id := uuid.New()
		m.listings.On("Delete", ctx, id).Return(int64(1), nil)

		require.NoError(t, svc.HardDelete(ctx, id))
	})

	t.Run("absent row reports not found", func(t *testing.T) {
		svc, m := newListingService(t)
		id := uuid.New()
		m.listings.On("Delete", ctx, id).Return(int64(0), nil)

		err := svc.HardDelete(ctx, id)
		require.Error(t, err)
	})
}

func TestListingService_CreateBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("books an approved listing by email", func(t *testing.T) {
		svc, m := newListingService(t)
		listing := approvedListing(t)
		m.listings.On("FindByID", ctx, listing.ID).Return(listing, nil)
		m.bookings.On("Create", ctx, mock.AnythingOfType("*directory.Booking")).Return(nil)

		start := time.Now().Add(24 * time.Hour)
		info, err := svc.CreateBooking(ctx, CreateBookingInput{
			Email:     "guest@example.com",
			ListingID: listing.ID,
			StartsAt:  start,
			EndsAt:    start.Add(2 * time.Hour),
			PartySize: 4,
			Amount:    decimal.NewFromInt(80),
		})
		require.NoError(t, err)
		assert.Equal(t, "guest@example.com", info.Email)
		assert.Equal(t, directory.BookingStatusRequested, info.Status)
	})

	t.Run("rejects booking a pending listing", func(t *testing.T) {
		svc, m := newListingService(t)
		listing, err := directory.NewListing(uuid.New(), "owner@example.com", "Corner Bakery", "food")
		require.NoError(t, err)
		m.listings.On("FindByID", ctx, listing.ID).Return(listing, nil)

		start := time.Now().Add(24 * time.Hour)
		_, err = svc.CreateBooking(ctx, CreateBookingInput{
			Email:     "guest@example.com",
			ListingID: listing.ID,
			StartsAt:  start,
			EndsAt:    start.Add(time.Hour),
			PartySize: 2,
			Amount:    decimal.Zero,
		})
		require.Error(t, err)
		m.bookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestListingService_CreateReview(t *testing.T) {
	ctx := context.Background()

	t.Run("records a review", func(t *testing.T) {
		svc, m := newListingService(t)
		listing := approvedListing(t)
		m.listings.On("FindByID", ctx, listing.ID).Return(listing, nil)
		m.reviews.On("Create", ctx, mock.AnythingOfType("*directory.Review")).Return(nil)

		err := svc.CreateReview(ctx, CreateReviewInput{
			ProfileID: uuid.New(),
			ListingID: listing.ID,
			Rating:    5,
			Comment:   "Great bread",
		})
		require.NoError(t, err)
	})

	t.Run("rejects an out-of-range rating", func(t *testing.T) {
		svc, m := newListingService(t)
		listing := approvedListing(t)
		m.listings.On("FindByID", ctx, listing.ID).Return(listing, nil)

		err := svc.CreateReview(ctx, CreateReviewInput{
			ProfileID: uuid.New(),
			ListingID: listing.ID,
			Rating:    6,
		})
		require.Error(t, err)
		m.reviews.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}
