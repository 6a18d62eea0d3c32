package directory

import (
	"time"

	"github.com/google/uuid"
	"github.com/localhub/backend/internal/domain/account"
	"github.com/localhub/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// BookingStatus represents the state of a booking
type BookingStatus string

const (
	BookingStatusRequested BookingStatus = "requested"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Booking is a reservation against a listing, keyed by the booker's email
type Booking struct {
	shared.BaseEntity
	Email     string
	ListingID uuid.UUID
	StartsAt  time.Time
	EndsAt    time.Time
	PartySize int
	Amount    decimal.Decimal
	Status    BookingStatus
}

// NewBooking creates a booking request for a listing
func NewBooking(email string, listingID uuid.UUID, startsAt, endsAt time.Time, partySize int, amount decimal.Decimal) (*Booking, error) {
	email, err := account.NormalizeEmail(email)
	if err != nil {
		return nil, err
	}
	if listingID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_LISTING_ID", "Listing ID cannot be empty")
	}
	if !endsAt.After(startsAt) {
		return nil, shared.NewDomainError("INVALID_BOOKING_WINDOW", "Booking end must be after its start")
	}
	if partySize <= 0 {
		return nil, shared.NewDomainError("INVALID_PARTY_SIZE", "Party size must be positive")
	}
	if amount.IsNegative() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Booking amount cannot be negative")
	}

	return &Booking{
		BaseEntity: shared.NewBaseEntity(),
		Email:      email,
		ListingID:  listingID,
		StartsAt:   startsAt,
		EndsAt:     endsAt,
		PartySize:  partySize,
		Amount:     amount,
		Status:     BookingStatusRequested,
	}, nil
}
