package account

import (
	"time"

	"github.com/google/uuid"
	"github.com/localhub/backend/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// Password cost for bcrypt
const bcryptCost = 12

// Credential is the auth record backing a profile. It is the last row
// removed during full account deletion because removing it is irreversible.
type Credential struct {
	shared.BaseEntity
	ProfileID    uuid.UUID
	Email        string
	PasswordHash string
	LastLoginAt  *time.Time
}

// NewCredential creates a credential for a profile with a hashed password
func NewCredential(profileID uuid.UUID, email, password string) (*Credential, error) {
	email, err := NormalizeEmail(email)
	if err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	return &Credential{
		BaseEntity:   shared.NewBaseEntity(),
		ProfileID:    profileID,
		Email:        email,
		PasswordHash: string(hash),
	}, nil
}

// VerifyPassword verifies if the provided password matches
func (c *Credential) VerifyPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(password)) == nil
}

func validatePassword(password string) error {
	if password == "" {
		return shared.NewDomainError("INVALID_PASSWORD", "Password cannot be empty")
	}
	if len(password) < 8 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password must be at least 8 characters")
	}
	if len(password) > 128 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password cannot exceed 128 characters")
	}
	return nil
}
