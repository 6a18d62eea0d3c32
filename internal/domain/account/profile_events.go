package account

import (
	"github.com/google/uuid"
	"github.com/localhub/backend/internal/domain/shared"
)

// Event type constants for the account domain
const (
	EventTypeProfileCreated = "account.profile.created"
	EventTypeProfileUpdated = "account.profile.updated"
	EventTypeAccountDeleted = "account.deleted"
)

// ProfileCreatedEvent is raised when a new profile row is inserted
type ProfileCreatedEvent struct {
	shared.BaseDomainEvent
	Email string      `json:"email"`
	Role  AccountRole `json:"role,omitempty"`
}

// NewProfileCreatedEvent creates a new ProfileCreatedEvent
func NewProfileCreatedEvent(profile *Profile) *ProfileCreatedEvent {
	return &ProfileCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeProfileCreated, "Profile", profile.ID),
		Email:           profile.Email,
		Role:            profile.Role,
	}
}

// ProfileUpdatedEvent is raised when an existing profile is merged with a patch
type ProfileUpdatedEvent struct {
	shared.BaseDomainEvent
	Email         string   `json:"email"`
	UpdatedFields []string `json:"updated_fields"`
	SkippedFields []string `json:"skipped_fields,omitempty"`
}

// NewProfileUpdatedEvent creates a new ProfileUpdatedEvent
func NewProfileUpdatedEvent(profile *Profile, merge MergeResult) *ProfileUpdatedEvent {
	updated := make([]string, 0, len(merge.Fields))
	for field := range merge.Fields {
		updated = append(updated, field)
	}
	return &ProfileUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeProfileUpdated, "Profile", profile.ID),
		Email:           profile.Email,
		UpdatedFields:   updated,
		SkippedFields:   merge.Skipped,
	}
}

// AccountDeletedEvent is raised after a deletion cascade has run.
// It is raised for both full and partial identities; ProfileID is nil for
// the latter.
type AccountDeletedEvent struct {
	shared.BaseDomainEvent
	Email        string     `json:"email"`
	ProfileID    *uuid.UUID `json:"profile_id,omitempty"`
	HardDeleted  int        `json:"listings_hard_deleted"`
	SoftDeleted  int        `json:"listings_soft_deleted"`
	FailureCount int        `json:"failure_count"`
}

// NewAccountDeletedEvent creates a new AccountDeletedEvent
func NewAccountDeletedEvent(email string, profileID *uuid.UUID, hardDeleted, softDeleted, failures int) *AccountDeletedEvent {
	aggID := uuid.Nil
	if profileID != nil {
		aggID = *profileID
	}
	return &AccountDeletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeAccountDeleted, "Profile", aggID),
		Email:           email,
		ProfileID:       profileID,
		HardDeleted:     hardDeleted,
		SoftDeleted:     softDeleted,
		FailureCount:    failures,
	}
}
