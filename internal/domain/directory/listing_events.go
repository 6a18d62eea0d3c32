package directory

import (
	"github.com/google/uuid"
	"github.com/localhub/backend/internal/domain/shared"
)

// Event type constants for the directory domain
const (
	EventTypeListingSubmitted     = "directory.listing.submitted"
	EventTypeListingStatusChanged = "directory.listing.status_changed"
	EventTypeListingUnlinked      = "directory.listing.unlinked"
	EventTypeListingReclaimed     = "directory.listing.reclaimed"
)

// ListingSubmittedEvent is raised when a new listing is submitted
type ListingSubmittedEvent struct {
	shared.BaseDomainEvent
	Name         string `json:"name"`
	ContactEmail string `json:"contact_email"`
}

// NewListingSubmittedEvent creates a new ListingSubmittedEvent
func NewListingSubmittedEvent(listing *Listing) *ListingSubmittedEvent {
	return &ListingSubmittedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeListingSubmitted, "Listing", listing.ID),
		Name:            listing.Name,
		ContactEmail:    listing.ContactEmail,
	}
}

// ListingStatusChangedEvent is raised when an admin approves or rejects a listing
type ListingStatusChangedEvent struct {
	shared.BaseDomainEvent
	Status ListingStatus `json:"status"`
}

// NewListingStatusChangedEvent creates a new ListingStatusChangedEvent
func NewListingStatusChangedEvent(listing *Listing, status ListingStatus) *ListingStatusChangedEvent {
	return &ListingStatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeListingStatusChanged, "Listing", listing.ID),
		Status:          status,
	}
}

// ListingUnlinkedEvent is raised when a listing loses its owner during
// account deletion
type ListingUnlinkedEvent struct {
	shared.BaseDomainEvent
	ContactEmail string `json:"contact_email"`
}

// NewListingUnlinkedEvent creates a new ListingUnlinkedEvent
func NewListingUnlinkedEvent(listing *Listing) *ListingUnlinkedEvent {
	return &ListingUnlinkedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeListingUnlinked, "Listing", listing.ID),
		ContactEmail:    listing.ContactEmail,
	}
}

// ListingReclaimedEvent is raised when reconciliation reattaches an
// unlinked listing to a newly authenticated profile
type ListingReclaimedEvent struct {
	shared.BaseDomainEvent
	NewOwnerID uuid.UUID `json:"new_owner_id"`
}

// NewListingReclaimedEvent creates a new ListingReclaimedEvent
func NewListingReclaimedEvent(listing *Listing, newOwnerID uuid.UUID) *ListingReclaimedEvent {
	return &ListingReclaimedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeListingReclaimed, "Listing", listing.ID),
		NewOwnerID:      newOwnerID,
	}
}
