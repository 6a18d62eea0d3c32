package account

import (
	"regexp"
	"strings"

	"github.com/localhub/backend/internal/domain/shared"
)

// AccountRole classifies what kind of member an account belongs to.
// The role is immutable once set: a community member who later claims a
// business listing keeps the role they signed up with.
type AccountRole string

const (
	RoleCommunity AccountRole = "community" // Regular member: saves listings, books, reviews
	RoleBusiness  AccountRole = "business"  // Business owner: submits and manages listings
	RoleAdmin     AccountRole = "admin"     // Directory administrator
)

// IsValid reports whether the role is one of the known account roles
func (r AccountRole) IsValid() bool {
	switch r {
	case RoleCommunity, RoleBusiness, RoleAdmin:
		return true
	}
	return false
}

// Profile represents a member's profile in the directory.
// It is the aggregate root for account-related operations.
type Profile struct {
	shared.BaseAggregateRoot
	Email       string
	Name        string
	Role        AccountRole
	Phone       string
	Avatar      string
	Bio         string
	NotifyOptIn bool
}

// NewProfile creates a new profile for the given email
func NewProfile(email string) (*Profile, error) {
	email, err := NormalizeEmail(email)
	if err != nil {
		return nil, err
	}

	profile := &Profile{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Email:             email,
	}

	profile.AddDomainEvent(NewProfileCreatedEvent(profile))

	return profile, nil
}

// HasRole reports whether the immutable role field has already been set
func (p *Profile) HasRole() bool {
	return p.Role != ""
}

// ProfilePatch is a partial profile update. Nil fields are absent from the
// request and must be preserved as stored; non-nil fields are written.
type ProfilePatch struct {
	Name        *string
	Role        *AccountRole
	Phone       *string
	Avatar      *string
	Bio         *string
	NotifyOptIn *bool
}

// IsEmpty reports whether the patch carries no fields at all
func (p ProfilePatch) IsEmpty() bool {
	return p.Name == nil && p.Role == nil && p.Phone == nil &&
		p.Avatar == nil && p.Bio == nil && p.NotifyOptIn == nil
}

// Validate checks the values the patch does carry
func (p ProfilePatch) Validate() error {
	if p.Role != nil && !p.Role.IsValid() {
		return shared.NewDomainError("INVALID_ROLE", "Unknown account role: "+string(*p.Role))
	}
	if p.Name != nil && len(*p.Name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Name cannot exceed 200 characters")
	}
	if p.Phone != nil && len(*p.Phone) > 50 {
		return shared.NewDomainError("INVALID_PHONE", "Phone cannot exceed 50 characters")
	}
	if p.Avatar != nil && len(*p.Avatar) > 500 {
		return shared.NewDomainError("INVALID_AVATAR", "Avatar URL cannot exceed 500 characters")
	}
	return nil
}

// MergeResult is the outcome of merging a patch into an existing profile.
// Fields holds the exact column set the single UPDATE must carry; Skipped
// lists immutable fields that were silently excluded because the stored
// row already has a value for them.
type MergeResult struct {
	Fields  map[string]any
	Skipped []string
}

// Changed reports whether the merge produced anything to write
func (m MergeResult) Changed() bool {
	return len(m.Fields) > 0
}

// Merge computes the field-by-field merge of a patch against the current
// profile. Absent (nil) fields are excluded so previously stored values are
// never cleared by a partial update. Immutable fields already set on the
// stored row are excluded rather than rejected.
func (p *Profile) Merge(patch ProfilePatch) MergeResult {
	result := MergeResult{Fields: make(map[string]any)}

	if patch.Name != nil {
		result.Fields["name"] = *patch.Name
		p.Name = *patch.Name
	}
	if patch.Role != nil {
		if p.HasRole() {
			result.Skipped = append(result.Skipped, "role")
		} else {
			result.Fields["role"] = *patch.Role
			p.Role = *patch.Role
		}
	}
	if patch.Phone != nil {
		result.Fields["phone"] = *patch.Phone
		p.Phone = *patch.Phone
	}
	if patch.Avatar != nil {
		result.Fields["avatar"] = *patch.Avatar
		p.Avatar = *patch.Avatar
	}
	if patch.Bio != nil {
		result.Fields["bio"] = *patch.Bio
		p.Bio = *patch.Bio
	}
	if patch.NotifyOptIn != nil {
		result.Fields["notify_opt_in"] = *patch.NotifyOptIn
		p.NotifyOptIn = *patch.NotifyOptIn
	}

	if result.Changed() {
		p.IncrementVersion()
		p.AddDomainEvent(NewProfileUpdatedEvent(p, result))
	}

	return result
}

// Apply sets the patch fields on a freshly created profile. Used on the
// INSERT path where immutable fields may still be set.
func (p *Profile) Apply(patch ProfilePatch) {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Role != nil {
		p.Role = *patch.Role
	}
	if patch.Phone != nil {
		p.Phone = *patch.Phone
	}
	if patch.Avatar != nil {
		p.Avatar = *patch.Avatar
	}
	if patch.Bio != nil {
		p.Bio = *patch.Bio
	}
	if patch.NotifyOptIn != nil {
		p.NotifyOptIn = *patch.NotifyOptIn
	}
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// NormalizeEmail lowercases, trims, and validates an email address
func NormalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return "", shared.NewDomainError("INVALID_EMAIL", "Email cannot be empty")
	}
	if len(email) > 200 {
		return "", shared.NewDomainError("INVALID_EMAIL", "Email cannot exceed 200 characters")
	}
	if !emailRegex.MatchString(email) {
		return "", shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
	}
	return email, nil
}
