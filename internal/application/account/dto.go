package account

import (
	"time"

	"github.com/google/uuid"
	"github.com/localhub/backend/internal/domain/account"
)

// UpsertProfileInput contains the input for a profile upsert.
// Source is an opaque caller tag used for diagnostics only.
type UpsertProfileInput struct {
	ProfileID uuid.UUID
	Email     string
	Fields    account.ProfilePatch
	Source    string
}

// ProfileInfo is the profile view returned by the account services
type ProfileInfo struct {
	ID          uuid.UUID
	Email       string
	Name        string
	Role        account.AccountRole
	Phone       string
	Avatar      string
	Bio         string
	NotifyOptIn bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func newProfileInfo(profile *account.Profile) ProfileInfo {
	return ProfileInfo{
		ID:          profile.ID,
		Email:       profile.Email,
		Name:        profile.Name,
		Role:        profile.Role,
		Phone:       profile.Phone,
		Avatar:      profile.Avatar,
		Bio:         profile.Bio,
		NotifyOptIn: profile.NotifyOptIn,
		CreatedAt:   profile.CreatedAt,
		UpdatedAt:   profile.UpdatedAt,
	}
}

// UpsertProfileResult contains the outcome of a profile upsert
type UpsertProfileResult struct {
	Profile ProfileInfo
	Created bool
	// SkippedFields lists immutable fields silently excluded from the
	// write because the stored row already had a value for them
	SkippedFields []string
}

// DeleteAccountInput contains the input for an account deletion.
// Identity is a profile id or an email address.
type DeleteAccountInput struct {
	Identity        string
	HardDeleteOwned bool
	RequestedBy     string // diagnostics only: "self" or an admin identifier
}

// ListingDisposition summarizes what happened to owned listings
type ListingDisposition struct {
	HardDeleted int `json:"hard_deleted"`
	SoftDeleted int `json:"soft_deleted"`
}

// StepFailure records a cascade step that failed. Remaining steps still
// ran; operators use the list to complete cleanup manually.
type StepFailure struct {
	Table  string `json:"table"`
	Reason string `json:"reason"`
}

// DeletionReport itemizes the outcome of a deletion cascade
type DeletionReport struct {
	Identity      string             `json:"identity"`
	Kind          ResolutionKind     `json:"kind"`
	RemovedCounts map[string]int64   `json:"removed_counts"`
	Listings      ListingDisposition `json:"listings"`
	Failures      []StepFailure      `json:"failures,omitempty"`
}

// Completed reports whether every cascade step succeeded
func (r *DeletionReport) Completed() bool {
	return len(r.Failures) == 0
}

// ReconcileInput contains the input for post-login ownership reconciliation
type ReconcileInput struct {
	ProfileID uuid.UUID
	Email     string
}

// ReclaimedListing describes one listing reattached by reconciliation
type ReclaimedListing struct {
	ID           uuid.UUID
	Name         string
	ContactEmail string
}

// SignupInput contains the input for account signup
type SignupInput struct {
	Email    string
	Password string
	Name     string
	Role     account.AccountRole
}

// SignupResult contains the outcome of a signup
type SignupResult struct {
	Profile ProfileInfo
}

// LoginInput contains the input for login
type LoginInput struct {
	Email    string
	Password string
	IP       string // Client IP for diagnostics
}

// LoginResult contains the outcome of a successful login
type LoginResult struct {
	AccessToken           string
	RefreshToken          string
	AccessTokenExpiresAt  time.Time
	RefreshTokenExpiresAt time.Time
	TokenType             string
	Profile               ProfileInfo
	// Reclaimed lists listings reattached by post-login reconciliation
	Reclaimed []ReclaimedListing
}

// RefreshInput contains the input for rotating a token pair
type RefreshInput struct {
	RefreshToken string
}

// RefreshResult contains the rotated token pair
type RefreshResult struct {
	AccessToken           string
	RefreshToken          string
	AccessTokenExpiresAt  time.Time
	RefreshTokenExpiresAt time.Time
	TokenType             string
}

// LogoutInput contains the input for logout
type LogoutInput struct {
	ProfileID uuid.UUID
	TokenJTI  string
	ExpiresAt time.Time
}
