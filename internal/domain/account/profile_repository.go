package account

import (
	"context"

	"github.com/google/uuid"
)

// ProfileRepository defines the interface for profile persistence
type ProfileRepository interface {
	// Create inserts a new profile row
	Create(ctx context.Context, profile *Profile) error

	// UpdateFields applies a single UPDATE carrying exactly the given
	// column set to the profile row. The map never includes immutable
	// columns that are already set; callers compute it via Profile.Merge.
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]any) error

	// Delete removes a profile row. Deleting an absent row is a no-op.
	Delete(ctx context.Context, id uuid.UUID) (int64, error)

	// FindByID finds a profile by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Profile, error)

	// FindByEmail finds a profile by normalized email
	FindByEmail(ctx context.Context, email string) (*Profile, error)

	// ExistsByEmail checks whether a profile exists for the email
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// CredentialRepository defines the interface for auth record persistence
type CredentialRepository interface {
	// Create inserts a new credential row
	Create(ctx context.Context, credential *Credential) error

	// FindByEmail finds a credential by normalized email
	FindByEmail(ctx context.Context, email string) (*Credential, error)

	// FindByProfileID finds the credential backing a profile
	FindByProfileID(ctx context.Context, profileID uuid.UUID) (*Credential, error)

	// RecordLogin stamps the last successful login time
	RecordLogin(ctx context.Context, id uuid.UUID) error

	// DeleteByProfileID removes the auth record for a profile. The removal
	// is irreversible and must tolerate an already-removed row: it returns
	// the number of rows affected and no error when the row is absent.
	DeleteByProfileID(ctx context.Context, profileID uuid.UUID) (int64, error)
}
