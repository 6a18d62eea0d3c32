package directory

import (
	"context"

	"github.com/google/uuid"
)

// ListingRepository defines the interface for listing persistence
type ListingRepository interface {
	// Create inserts a new listing
	Create(ctx context.Context, listing *Listing) error

	// Update updates an existing listing
	Update(ctx context.Context, listing *Listing) error

	// Delete permanently removes a listing row. Deleting an absent row
	// is a no-op; the returned count is the rows actually removed.
	Delete(ctx context.Context, id uuid.UUID) (int64, error)

	// FindByID finds a listing by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Listing, error)

	// FindByOwner finds all listings owned by a profile
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*Listing, error)

	// FindByContactEmail finds all listings with a matching contact email,
	// owned or not
	FindByContactEmail(ctx context.Context, email string) ([]*Listing, error)

	// FindUnlinkedByEmail finds reclaimable listings for an email: rows
	// with the unlinked marker set and a matching contact email
	FindUnlinkedByEmail(ctx context.Context, email string) ([]*Listing, error)

	// FindByStatus lists listings in a given approval state
	FindByStatus(ctx context.Context, status ListingStatus) ([]*Listing, error)

	// ExistsByContactEmail checks whether any listing carries the email
	ExistsByContactEmail(ctx context.Context, email string) (bool, error)
}

// BookingRepository defines the interface for booking persistence.
// Bookings are keyed by email, not profile id: they exist whether or not
// the booker ever created an account.
type BookingRepository interface {
	Create(ctx context.Context, booking *Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*Booking, error)
	FindByEmail(ctx context.Context, email string) ([]*Booking, error)
	FindByListing(ctx context.Context, listingID uuid.UUID) ([]*Booking, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// DeleteByEmail removes all bookings for an email and returns the
	// number of rows removed
	DeleteByEmail(ctx context.Context, email string) (int64, error)
}

// InquiryRepository defines the interface for inquiry persistence.
// Inquiries are email-keyed like bookings.
type InquiryRepository interface {
	Create(ctx context.Context, inquiry *Inquiry) error
	FindByEmail(ctx context.Context, email string) ([]*Inquiry, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// DeleteByEmail removes all inquiries for an email and returns the
	// number of rows removed
	DeleteByEmail(ctx context.Context, email string) (int64, error)
}

// SavedListingRepository defines the interface for saved-listing persistence
type SavedListingRepository interface {
	Save(ctx context.Context, saved *SavedListing) error
	FindByProfileID(ctx context.Context, profileID uuid.UUID) ([]*SavedListing, error)
	// DeleteByProfileID removes all saves for a profile and returns the
	// number of rows removed
	DeleteByProfileID(ctx context.Context, profileID uuid.UUID) (int64, error)
}

// ReviewRepository defines the interface for review persistence
type ReviewRepository interface {
	Create(ctx context.Context, review *Review) error
	FindByProfileID(ctx context.Context, profileID uuid.UUID) ([]*Review, error)
	FindByListing(ctx context.Context, listingID uuid.UUID) ([]*Review, error)
	// DeleteByProfileID removes all reviews written by a profile and
	// returns the number of rows removed
	DeleteByProfileID(ctx context.Context, profileID uuid.UUID) (int64, error)
}

// ListingFlagRepository defines the interface for listing-flag persistence
type ListingFlagRepository interface {
	Create(ctx context.Context, flag *ListingFlag) error
	FindByListing(ctx context.Context, listingID uuid.UUID) ([]*ListingFlag, error)
	// DeleteByProfileID removes all flags raised by a profile and returns
	// the number of rows removed
	DeleteByProfileID(ctx context.Context, profileID uuid.UUID) (int64, error)
}
