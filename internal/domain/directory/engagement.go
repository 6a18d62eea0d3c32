package directory

import (
	"strings"

	"github.com/google/uuid"
	"github.com/localhub/backend/internal/domain/shared"
)

// SavedListing bookmarks a listing for a profile
type SavedListing struct {
	shared.BaseEntity
	ProfileID uuid.UUID
	ListingID uuid.UUID
}

// NewSavedListing creates a bookmark
func NewSavedListing(profileID, listingID uuid.UUID) *SavedListing {
	return &SavedListing{
		BaseEntity: shared.NewBaseEntity(),
		ProfileID:  profileID,
		ListingID:  listingID,
	}
}

// Review is a rating and comment left by a profile on a listing
type Review struct {
	shared.BaseEntity
	ProfileID uuid.UUID
	ListingID uuid.UUID
	Rating    int
	Comment   string
}

// NewReview creates a review for a listing
func NewReview(profileID, listingID uuid.UUID, rating int, comment string) (*Review, error) {
	if rating < 1 || rating > 5 {
		return nil, shared.NewDomainError("INVALID_RATING", "Rating must be between 1 and 5")
	}

	return &Review{
		BaseEntity: shared.NewBaseEntity(),
		ProfileID:  profileID,
		ListingID:  listingID,
		Rating:     rating,
		Comment:    strings.TrimSpace(comment),
	}, nil
}

// ListingFlag reports a listing to the admins
type ListingFlag struct {
	shared.BaseEntity
	ProfileID uuid.UUID
	ListingID uuid.UUID
	Reason    string
}

// NewListingFlag creates a flag raised by a profile against a listing
func NewListingFlag(profileID, listingID uuid.UUID, reason string) (*ListingFlag, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, shared.NewDomainError("INVALID_REASON", "Flag reason cannot be empty")
	}

	return &ListingFlag{
		BaseEntity: shared.NewBaseEntity(),
		ProfileID:  profileID,
		ListingID:  listingID,
		Reason:     reason,
	}, nil
}
