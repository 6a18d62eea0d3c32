package account

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/localhub/backend/internal/domain/account"
	"github.com/localhub/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// ProfileService merges partial profile updates into storage with
// immutable-field and preserve-on-absent semantics.
type ProfileService struct {
	profileRepo    account.ProfileRepository
	eventPublisher shared.EventPublisher
	logger         *zap.Logger
}

// NewProfileService creates a new profile service
func NewProfileService(
	profileRepo account.ProfileRepository,
	eventPublisher shared.EventPublisher,
	logger *zap.Logger,
) *ProfileService {
	return &ProfileService{
		profileRepo:    profileRepo,
		eventPublisher: eventPublisher,
		logger:         logger,
	}
}

// Upsert creates or merges a profile. A missing profile row is inserted
// with exactly the supplied fields; an existing row is fetched first, the
// merge computed field by field, and a single UPDATE carries the result.
// Absent fields never clear stored values; immutable fields already set
// are silently excluded rather than rejected. Repeating the same call
// leaves the same stored state as calling it once.
func (s *ProfileService) Upsert(ctx context.Context, input UpsertProfileInput) (*UpsertProfileResult, error) {
	if input.ProfileID == uuid.Nil {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Profile ID is required")
	}
	email, err := account.NormalizeEmail(input.Email)
	if err != nil {
		return nil, err
	}
	if err := input.Fields.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.profileRepo.FindByID(ctx, input.ProfileID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return s.insert(ctx, input.ProfileID, email, input)
		}
		s.logger.Error("Failed to load profile for upsert",
			zap.String("profile_id", input.ProfileID.String()),
			zap.Error(err))
		return nil, shared.ErrPersistence
	}

	return s.merge(ctx, existing, input)
}

func (s *ProfileService) insert(ctx context.Context, id uuid.UUID, email string, input UpsertProfileInput) (*UpsertProfileResult, error) {
	profile, err := account.NewProfile(email)
	if err != nil {
		return nil, err
	}
	// The caller supplies the identity id; the row must be keyed by it
	profile.ID = id
	profile.Apply(input.Fields)

	if err := s.profileRepo.Create(ctx, profile); err != nil {
		s.logger.Error("Failed to insert profile",
			zap.String("profile_id", id.String()),
			zap.String("source", input.Source),
			zap.Error(err))
		return nil, shared.ErrPersistence
	}

	s.publishEvents(ctx, profile)

	s.logger.Info("Profile created",
		zap.String("profile_id", id.String()),
		zap.String("email", email),
		zap.String("source", input.Source))

	return &UpsertProfileResult{Profile: newProfileInfo(profile), Created: true}, nil
}

func (s *ProfileService) merge(ctx context.Context, profile *account.Profile, input UpsertProfileInput) (*UpsertProfileResult, error) {
	result := profile.Merge(input.Fields)

	if len(result.Skipped) > 0 {
		// Immutable conflict is not an error; log it for diagnostics
		s.logger.Info("Immutable fields excluded from profile update",
			zap.String("profile_id", profile.ID.String()),
			zap.Strings("skipped", result.Skipped),
			zap.String("source", input.Source))
	}

	if !result.Changed() {
		return &UpsertProfileResult{
			Profile:       newProfileInfo(profile),
			SkippedFields: result.Skipped,
		}, nil
	}

	if err := s.profileRepo.UpdateFields(ctx, profile.ID, result.Fields); err != nil {
		s.logger.Error("Failed to update profile",
			zap.String("profile_id", profile.ID.String()),
			zap.String("source", input.Source),
			zap.Error(err))
		return nil, shared.ErrPersistence
	}

	s.publishEvents(ctx, profile)

	s.logger.Info("Profile updated",
		zap.String("profile_id", profile.ID.String()),
		zap.Int("fields", len(result.Fields)),
		zap.String("source", input.Source))

	return &UpsertProfileResult{
		Profile:       newProfileInfo(profile),
		SkippedFields: result.Skipped,
	}, nil
}

// GetProfile loads a profile by id
func (s *ProfileService) GetProfile(ctx context.Context, id uuid.UUID) (*ProfileInfo, error) {
	profile, err := s.profileRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("PROFILE_NOT_FOUND", "Profile not found")
		}
		return nil, err
	}
	info := newProfileInfo(profile)
	return &info, nil
}

func (s *ProfileService) publishEvents(ctx context.Context, profile *account.Profile) {
	events := profile.GetDomainEvents()
	if len(events) == 0 {
		return
	}
	if err := s.eventPublisher.Publish(ctx, events...); err != nil {
		s.logger.Warn("Failed to publish profile events", zap.Error(err))
	}
	profile.ClearDomainEvents()
}
