package account

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/localhub/backend/internal/domain/account"
	"github.com/localhub/backend/internal/domain/directory"
	"github.com/localhub/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// ResolutionKind classifies what exists for an identity
type ResolutionKind string

const (
	// ResolutionFull means a profile (and backing auth record) exists
	ResolutionFull ResolutionKind = "full"
	// ResolutionPartial means no profile exists but email-keyed rows do
	ResolutionPartial ResolutionKind = "partial"
	// ResolutionNone means nothing was found anywhere
	ResolutionNone ResolutionKind = "none"
)

// Resolution is the outcome of resolving an identity
type Resolution struct {
	Kind      ResolutionKind
	Email     string
	ProfileID *uuid.UUID
	Profile   *account.Profile
}

// ResolverService determines whether a full identity, a partial identity,
// or nothing exists for an email or profile id. Pure read, no side effects.
type ResolverService struct {
	profileRepo    account.ProfileRepository
	credentialRepo account.CredentialRepository
	listingRepo    directory.ListingRepository
	bookingRepo    directory.BookingRepository
	inquiryRepo    directory.InquiryRepository
	logger         *zap.Logger
}

// NewResolverService creates a new resolver service
func NewResolverService(
	profileRepo account.ProfileRepository,
	credentialRepo account.CredentialRepository,
	listingRepo directory.ListingRepository,
	bookingRepo directory.BookingRepository,
	inquiryRepo directory.InquiryRepository,
	logger *zap.Logger,
) *ResolverService {
	return &ResolverService{
		profileRepo:    profileRepo,
		credentialRepo: credentialRepo,
		listingRepo:    listingRepo,
		bookingRepo:    bookingRepo,
		inquiryRepo:    inquiryRepo,
		logger:         logger,
	}
}

// Resolve classifies an identity given as a profile id or an email address.
// Profile existence is checked before email-keyed rows: an identity with a
// profile is always full even when it also owns email-keyed records.
func (s *ResolverService) Resolve(ctx context.Context, identity string) (*Resolution, error) {
	if identity == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Identity cannot be empty")
	}

	if id, err := uuid.Parse(identity); err == nil {
		return s.resolveByID(ctx, id)
	}

	email, err := account.NormalizeEmail(identity)
	if err != nil {
		return nil, err
	}
	return s.resolveByEmail(ctx, email)
}

func (s *ResolverService) resolveByID(ctx context.Context, id uuid.UUID) (*Resolution, error) {
	profile, err := s.profileRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			// An id with no profile row cannot be a partial identity;
			// partial identities are keyed by email alone
			return &Resolution{Kind: ResolutionNone}, nil
		}
		return nil, err
	}

	return &Resolution{
		Kind:      ResolutionFull,
		Email:     profile.Email,
		ProfileID: &profile.ID,
		Profile:   profile,
	}, nil
}

func (s *ResolverService) resolveByEmail(ctx context.Context, email string) (*Resolution, error) {
	profile, err := s.profileRepo.FindByEmail(ctx, email)
	if err == nil {
		return &Resolution{
			Kind:      ResolutionFull,
			Email:     email,
			ProfileID: &profile.ID,
			Profile:   profile,
		}, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	// An orphan auth record without a profile row still counts as full:
	// the account half-exists and deletion must remove the record
	credential, err := s.credentialRepo.FindByEmail(ctx, email)
	if err == nil {
		s.logger.Warn("Auth record found without a profile row",
			zap.String("email", email),
			zap.String("profile_id", credential.ProfileID.String()))
		return &Resolution{
			Kind:      ResolutionFull,
			Email:     email,
			ProfileID: &credential.ProfileID,
		}, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	partial, err := s.hasEmailKeyedRows(ctx, email)
	if err != nil {
		return nil, err
	}
	if partial {
		return &Resolution{Kind: ResolutionPartial, Email: email}, nil
	}

	return &Resolution{Kind: ResolutionNone, Email: email}, nil
}

func (s *ResolverService) hasEmailKeyedRows(ctx context.Context, email string) (bool, error) {
	if exists, err := s.bookingRepo.ExistsByEmail(ctx, email); err != nil {
		return false, err
	} else if exists {
		return true, nil
	}

	if exists, err := s.inquiryRepo.ExistsByEmail(ctx, email); err != nil {
		return false, err
	} else if exists {
		return true, nil
	}

	return s.listingRepo.ExistsByContactEmail(ctx, email)
}
