package account

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/localhub/backend/internal/domain/shared"
)

// Notification is an in-app notification addressed to a profile
type Notification struct {
	shared.BaseEntity
	ProfileID uuid.UUID
	Kind      string
	Payload   string
	ReadAt    *time.Time
}

// NewNotification creates a notification for a profile
func NewNotification(profileID uuid.UUID, kind, payload string) *Notification {
	return &Notification{
		BaseEntity: shared.NewBaseEntity(),
		ProfileID:  profileID,
		Kind:       kind,
		Payload:    payload,
	}
}

// Preference is a single settings key/value stored per profile
type Preference struct {
	shared.BaseEntity
	ProfileID uuid.UUID
	Key       string
	Value     string
}

// NewPreference creates a preference entry for a profile
func NewPreference(profileID uuid.UUID, key, value string) *Preference {
	return &Preference{
		BaseEntity: shared.NewBaseEntity(),
		ProfileID:  profileID,
		Key:        key,
		Value:      value,
	}
}

// NotificationRepository defines the interface for notification persistence
type NotificationRepository interface {
	Create(ctx context.Context, notification *Notification) error
	FindByProfileID(ctx context.Context, profileID uuid.UUID) ([]*Notification, error)
	// DeleteByProfileID removes all notifications for a profile and
	// returns the number of rows removed
	DeleteByProfileID(ctx context.Context, profileID uuid.UUID) (int64, error)
}

// PreferenceRepository defines the interface for preference persistence
type PreferenceRepository interface {
	Set(ctx context.Context, preference *Preference) error
	FindByProfileID(ctx context.Context, profileID uuid.UUID) ([]*Preference, error)
	// DeleteByProfileID removes all preferences for a profile and returns
	// the number of rows removed
	DeleteByProfileID(ctx context.Context, profileID uuid.UUID) (int64, error)
}
