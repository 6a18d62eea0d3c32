package directory

import (
	"strings"

	"github.com/google/uuid"
	"github.com/localhub/backend/internal/domain/account"
	"github.com/localhub/backend/internal/domain/shared"
)

// Inquiry is a contact-form submission, keyed by the sender's email.
// The listing reference is optional: general inquiries carry none.
type Inquiry struct {
	shared.BaseEntity
	Email     string
	ListingID *uuid.UUID
	Subject   string
	Message   string
}

// NewInquiry creates an inquiry from a form submission
func NewInquiry(email string, listingID *uuid.UUID, subject, message string) (*Inquiry, error) {
	email, err := account.NormalizeEmail(email)
	if err != nil {
		return nil, err
	}

	message = strings.TrimSpace(message)
	if message == "" {
		return nil, shared.NewDomainError("INVALID_MESSAGE", "Inquiry message cannot be empty")
	}

	return &Inquiry{
		BaseEntity: shared.NewBaseEntity(),
		Email:      email,
		ListingID:  listingID,
		Subject:    strings.TrimSpace(subject),
		Message:    message,
	}, nil
}
