package directory

import (
	"strings"

	"github.com/google/uuid"
	"github.com/localhub/backend/internal/domain/account"
	"github.com/localhub/backend/internal/domain/shared"
)

// ListingStatus represents the admin approval state of a listing
type ListingStatus string

const (
	ListingStatusPending  ListingStatus = "pending"  // Awaiting admin approval
	ListingStatusApproved ListingStatus = "approved" // Visible in the directory
	ListingStatusRejected ListingStatus = "rejected" // Declined by an admin
)

// Listing represents a business listing in the directory.
// It is the aggregate root for listing operations.
//
// Ownership moves through three states: owned (OwnerID set), unlinked
// (OwnerID nil, Unlinked true, reclaimable by contact-email match), and
// hard-deleted (row removed, terminal). The invariant is that Unlinked
// implies a nil OwnerID; the aggregate enforces it on every transition.
type Listing struct {
	shared.BaseAggregateRoot
	OwnerID      *uuid.UUID
	Unlinked     bool
	ContactEmail string
	Name         string
	Category     string
	Address      string
	Phone        string
	Website      string
	Description  string
	Status       ListingStatus
}

// NewListing creates a pending listing owned by the submitting profile
func NewListing(ownerID uuid.UUID, contactEmail, name, category string) (*Listing, error) {
	contactEmail, err := account.NormalizeEmail(contactEmail)
	if err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_LISTING_NAME", "Listing name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewDomainError("INVALID_LISTING_NAME", "Listing name cannot exceed 200 characters")
	}

	listing := &Listing{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		OwnerID:           &ownerID,
		ContactEmail:      contactEmail,
		Name:              name,
		Category:          strings.TrimSpace(category),
		Status:            ListingStatusPending,
	}

	listing.AddDomainEvent(NewListingSubmittedEvent(listing))

	return listing, nil
}

// IsOwned reports whether the listing is attached to a profile
func (l *Listing) IsOwned() bool {
	return l.OwnerID != nil
}

// OwnedBy reports whether the listing is owned by the given profile
func (l *Listing) OwnedBy(profileID uuid.UUID) bool {
	return l.OwnerID != nil && *l.OwnerID == profileID
}

// Unlink clears the owner and marks the listing reclaimable. The listing
// and any public references to it are preserved. Unlinking an already
// unlinked listing is a no-op.
func (l *Listing) Unlink() {
	if l.Unlinked && l.OwnerID == nil {
		return
	}

	l.OwnerID = nil
	l.Unlinked = true
	l.IncrementVersion()

	l.AddDomainEvent(NewListingUnlinkedEvent(l))
}

// ClaimBy reattaches an unlinked listing to a profile. Reclaiming a
// listing that is not unlinked is rejected so an active owner can never
// be silently displaced.
func (l *Listing) ClaimBy(profileID uuid.UUID) error {
	if !l.Unlinked {
		return shared.NewDomainError("LISTING_NOT_UNLINKED", "Listing is not reclaimable")
	}

	l.OwnerID = &profileID
	l.Unlinked = false
	l.IncrementVersion()

	l.AddDomainEvent(NewListingReclaimedEvent(l, profileID))

	return nil
}

// Approve marks the listing visible in the directory
func (l *Listing) Approve() error {
	if l.Status == ListingStatusApproved {
		return shared.NewDomainError("ALREADY_APPROVED", "Listing is already approved")
	}

	l.Status = ListingStatusApproved
	l.IncrementVersion()

	l.AddDomainEvent(NewListingStatusChangedEvent(l, ListingStatusApproved))

	return nil
}

// Reject declines a pending listing
func (l *Listing) Reject() error {
	if l.Status != ListingStatusPending {
		return shared.NewDomainError("INVALID_STATE", "Only pending listings can be rejected")
	}

	l.Status = ListingStatusRejected
	l.IncrementVersion()

	l.AddDomainEvent(NewListingStatusChangedEvent(l, ListingStatusRejected))

	return nil
}
