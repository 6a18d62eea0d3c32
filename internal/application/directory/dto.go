package directory

import (
	"time"

	"github.com/google/uuid"
	"github.com/localhub/backend/internal/domain/directory"
	"github.com/shopspring/decimal"
)

// SubmitListingInput contains the input for submitting a listing
type SubmitListingInput struct {
	OwnerID      uuid.UUID
	ContactEmail string
	Name         string
	Category     string
	Address      string
	Phone        string
	Website      string
	Description  string
}

// ListingInfo is the listing view returned by the directory services
type ListingInfo struct {
	ID           uuid.UUID
	OwnerID      *uuid.UUID
	Unlinked     bool
	ContactEmail string
	Name         string
	Category     string
	Address      string
	Phone        string
	Website      string
	Description  string
	Status       directory.ListingStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func newListingInfo(listing *directory.Listing) ListingInfo {
	return ListingInfo{
		ID:           listing.ID,
		OwnerID:      listing.OwnerID,
		Unlinked:     listing.Unlinked,
		ContactEmail: listing.ContactEmail,
		Name:         listing.Name,
		Category:     listing.Category,
		Address:      listing.Address,
		Phone:        listing.Phone,
		Website:      listing.Website,
		Description:  listing.Description,
		Status:       listing.Status,
		CreatedAt:    listing.CreatedAt,
		UpdatedAt:    listing.UpdatedAt,
	}
}

// CreateBookingInput contains the input for booking a listing
type CreateBookingInput struct {
	Email     string
	ListingID uuid.UUID
	StartsAt  time.Time
	EndsAt    time.Time
	PartySize int
	Amount    decimal.Decimal
}

// BookingInfo is the booking view returned to callers
type BookingInfo struct {
	ID        uuid.UUID
	Email     string
	ListingID uuid.UUID
	StartsAt  time.Time
	EndsAt    time.Time
	PartySize int
	Amount    decimal.Decimal
	Status    directory.BookingStatus
}

// CreateInquiryInput contains the input for a contact-form inquiry
type CreateInquiryInput struct {
	Email     string
	ListingID *uuid.UUID
	Subject   string
	Message   string
}

// CreateReviewInput contains the input for reviewing a listing
type CreateReviewInput struct {
	ProfileID uuid.UUID
	ListingID uuid.UUID
	Rating    int
	Comment   string
}

// FlagListingInput contains the input for flagging a listing
type FlagListingInput struct {
	ProfileID uuid.UUID
	ListingID uuid.UUID
	Reason    string
}
