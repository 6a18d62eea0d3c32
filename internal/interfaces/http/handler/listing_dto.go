package handler

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	appdirectory "github.com/localhub/backend/internal/application/directory"
)

// SubmitListingRequest is the request body for submitting a listing
type SubmitListingRequest struct {
	ContactEmail string `json:"contact_email" binding:"required,email"`
	Name         string `json:"name" binding:"required,max=200"`
	Category     string `json:"category" binding:"required,max=100"`
	Address      string `json:"address" binding:"omitempty,max=500"`
	Phone        string `json:"phone" binding:"omitempty,max=30"`
	Website      string `json:"website" binding:"omitempty,url"`
	Description  string `json:"description" binding:"omitempty,max=5000"`
}

// ListingResponse is the listing view in API responses
type ListingResponse struct {
	ID           uuid.UUID  `json:"id"`
	OwnerID      *uuid.UUID `json:"owner_id,omitempty"`
	Unlinked     bool       `json:"unlinked"`
	ContactEmail string     `json:"contact_email"`
	Name         string     `json:"name"`
	Category     string     `json:"category"`
	Address      string     `json:"address,omitempty"`
	Phone        string     `json:"phone,omitempty"`
	Website      string     `json:"website,omitempty"`
	Description  string     `json:"description,omitempty"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func newListingResponse(info appdirectory.ListingInfo) ListingResponse {
	return ListingResponse{
		ID:           info.ID,
		OwnerID:      info.OwnerID,
		Unlinked:     info.Unlinked,
		ContactEmail: info.ContactEmail,
		Name:         info.Name,
		Category:     info.Category,
		Address:      info.Address,
		Phone:        info.Phone,
		Website:      info.Website,
		Description:  info.Description,
		Status:       string(info.Status),
		CreatedAt:    info.CreatedAt,
		UpdatedAt:    info.UpdatedAt,
	}
}

// CreateBookingRequest is the request body for booking a listing.
// Bookings are keyed by email so guests without accounts can book.
type CreateBookingRequest struct {
	Email     string          `json:"email" binding:"required,email"`
	StartsAt  time.Time       `json:"starts_at" binding:"required"`
	EndsAt    time.Time       `json:"ends_at" binding:"required"`
	PartySize int             `json:"party_size" binding:"required,gte=1"`
	Amount    decimal.Decimal `json:"amount"`
}

// BookingResponse is the booking view in API responses
type BookingResponse struct {
	ID        uuid.UUID       `json:"id"`
	Email     string          `json:"email"`
	ListingID uuid.UUID       `json:"listing_id"`
	StartsAt  time.Time       `json:"starts_at"`
	EndsAt    time.Time       `json:"ends_at"`
	PartySize int             `json:"party_size"`
	Amount    decimal.Decimal `json:"amount"`
	Status    string          `json:"status"`
}

// CreateInquiryRequest is the request body for a contact-form inquiry
type CreateInquiryRequest struct {
	Email     string     `json:"email" binding:"required,email"`
	ListingID *uuid.UUID `json:"listing_id"`
	Subject   string     `json:"subject" binding:"omitempty,max=300"`
	Message   string     `json:"message" binding:"required,max=5000"`
}

// CreateReviewRequest is the request body for reviewing a listing
type CreateReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,gte=1,lte=5"`
	Comment string `json:"comment" binding:"omitempty,max=5000"`
}

// FlagListingRequest is the request body for flagging a listing
type FlagListingRequest struct {
	Reason string `json:"reason" binding:"required,max=1000"`
}
