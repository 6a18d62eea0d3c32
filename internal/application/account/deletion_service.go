package account

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/localhub/backend/internal/domain/account"
	"github.com/localhub/backend/internal/domain/directory"
	"github.com/localhub/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// SessionRevoker invalidates every live session of a profile. Deletion
// treats revocation as best-effort: a revocation failure is logged, not
// reported as a cascade failure.
type SessionRevoker interface {
	RevokeProfile(ctx context.Context, profileID uuid.UUID) error
}

// deletionTarget carries the resolved identity through the cascade.
// ProfileID is nil for a partial identity.
type deletionTarget struct {
	ProfileID       *uuid.UUID
	Email           string
	HardDeleteOwned bool
}

// stepOutcome is what one cascade step did
type stepOutcome struct {
	removed     int64
	hardDeleted int
	softDeleted int
}

// stepExecutor runs the cascade step for one registered table. A step may
// return partial progress alongside its error; both are recorded.
type stepExecutor func(ctx context.Context, target deletionTarget) (stepOutcome, error)

// DeletionService cascades deletion of all data referencing an identity.
// It iterates the deletion registry in order, executing each step
// independently with no cross-table transaction: a failed step is recorded
// in the report and the remaining steps still run. Every step is a no-op
// on absent rows, so re-running a partially failed deletion is safe.
type DeletionService struct {
	resolver       *ResolverService
	profileRepo    account.ProfileRepository
	credentialRepo account.CredentialRepository
	listingRepo    directory.ListingRepository
	bookingRepo    directory.BookingRepository
	inquiryRepo    directory.InquiryRepository
	savedRepo      directory.SavedListingRepository
	reviewRepo     directory.ReviewRepository
	flagRepo       directory.ListingFlagRepository
	notifRepo      account.NotificationRepository
	prefRepo       account.PreferenceRepository
	sessions       SessionRevoker
	eventPublisher shared.EventPublisher
	executors      map[string]stepExecutor
	logger         *zap.Logger
}

// NewDeletionService creates a new deletion service. It panics when the
// deletion registry lists a table it has no executor for: an unregistered
// or unwired table means the cascade would silently leave rows behind.
func NewDeletionService(
	resolver *ResolverService,
	profileRepo account.ProfileRepository,
	credentialRepo account.CredentialRepository,
	listingRepo directory.ListingRepository,
	bookingRepo directory.BookingRepository,
	inquiryRepo directory.InquiryRepository,
	savedRepo directory.SavedListingRepository,
	reviewRepo directory.ReviewRepository,
	flagRepo directory.ListingFlagRepository,
	notifRepo account.NotificationRepository,
	prefRepo account.PreferenceRepository,
	sessions SessionRevoker,
	eventPublisher shared.EventPublisher,
	logger *zap.Logger,
) *DeletionService {
	s := &DeletionService{
		resolver:       resolver,
		profileRepo:    profileRepo,
		credentialRepo: credentialRepo,
		listingRepo:    listingRepo,
		bookingRepo:    bookingRepo,
		inquiryRepo:    inquiryRepo,
		savedRepo:      savedRepo,
		reviewRepo:     reviewRepo,
		flagRepo:       flagRepo,
		notifRepo:      notifRepo,
		prefRepo:       prefRepo,
		sessions:       sessions,
		eventPublisher: eventPublisher,
		logger:         logger,
	}

	s.executors = map[string]stepExecutor{
		"saved_listings": byProfileStep(savedRepo.DeleteByProfileID),
		"reviews":        byProfileStep(reviewRepo.DeleteByProfileID),
		"listing_flags":  byProfileStep(flagRepo.DeleteByProfileID),
		"notifications":  byProfileStep(notifRepo.DeleteByProfileID),
		"preferences":    byProfileStep(prefRepo.DeleteByProfileID),
		"bookings":       byEmailStep(bookingRepo.DeleteByEmail),
		"inquiries":      byEmailStep(inquiryRepo.DeleteByEmail),
		"listings":       s.disposeListings,
		"profiles":       s.deleteProfileRow,
		"credentials":    s.deleteCredentialRow,
	}

	for _, reg := range account.DeletionRegistry() {
		if _, ok := s.executors[reg.Table]; !ok {
			panic(fmt.Sprintf("deletion registry lists table %q with no executor", reg.Table))
		}
	}

	return s
}

// DeleteAccount resolves the identity and runs the cascade. A partial
// identity (email-keyed rows only) walks only the email-keyed registry
// entries; a full identity walks the whole registry, with the profile row
// and the auth record last. The returned report itemizes per-table counts
// and failures; failures do not make the call itself fail.
func (s *DeletionService) DeleteAccount(ctx context.Context, input DeleteAccountInput) (*DeletionReport, error) {
	resolution, err := s.resolver.Resolve(ctx, input.Identity)
	if err != nil {
		return nil, err
	}
	if resolution.Kind == ResolutionNone {
		return nil, shared.NewDomainError("ACCOUNT_NOT_FOUND", "No account or account data found for identity")
	}

	target := deletionTarget{
		ProfileID:       resolution.ProfileID,
		Email:           resolution.Email,
		HardDeleteOwned: input.HardDeleteOwned,
	}

	s.logger.Info("Account deletion started",
		zap.String("kind", string(resolution.Kind)),
		zap.String("email", target.Email),
		zap.Bool("hard_delete_owned", input.HardDeleteOwned),
		zap.String("requested_by", input.RequestedBy))

	report := &DeletionReport{
		Identity:      input.Identity,
		Kind:          resolution.Kind,
		RemovedCounts: make(map[string]int64),
	}

	for _, reg := range account.DeletionRegistry() {
		if resolution.Kind == ResolutionPartial && !reg.AppliesToPartial() {
			continue
		}

		outcome, err := s.executors[reg.Table](ctx, target)
		report.RemovedCounts[reg.Table] += outcome.removed
		report.Listings.HardDeleted += outcome.hardDeleted
		report.Listings.SoftDeleted += outcome.softDeleted

		if err != nil {
			s.logger.Error("Deletion step failed, continuing cascade",
				zap.String("table", reg.Table),
				zap.String("email", target.Email),
				zap.Error(err))
			report.Failures = append(report.Failures, StepFailure{
				Table:  reg.Table,
				Reason: err.Error(),
			})
		}
	}

	if target.ProfileID != nil {
		s.revokeSessions(ctx, *target.ProfileID)
	}
	s.publishDeleted(ctx, target, report)

	s.logger.Info("Account deletion finished",
		zap.String("email", target.Email),
		zap.Int("failures", len(report.Failures)),
		zap.Int("listings_hard_deleted", report.Listings.HardDeleted),
		zap.Int("listings_soft_deleted", report.Listings.SoftDeleted))

	return report, nil
}

// byProfileStep adapts a DeleteByProfileID repository call into a step.
// Partial identities have no profile id, so the step is a no-op for them.
func byProfileStep(del func(ctx context.Context, profileID uuid.UUID) (int64, error)) stepExecutor {
	return func(ctx context.Context, target deletionTarget) (stepOutcome, error) {
		if target.ProfileID == nil {
			return stepOutcome{}, nil
		}
		n, err := del(ctx, *target.ProfileID)
		return stepOutcome{removed: n}, err
	}
}

// byEmailStep adapts a DeleteByEmail repository call into a step
func byEmailStep(del func(ctx context.Context, email string) (int64, error)) stepExecutor {
	return func(ctx context.Context, target deletionTarget) (stepOutcome, error) {
		n, err := del(ctx, target.Email)
		return stepOutcome{removed: n}, err
	}
}

// disposeListings handles the owned-entity step. Matches are collected by
// owner id and by contact email; rows owned by a different profile that
// merely share the contact email are left alone. Hard deletion removes the
// rows; the default unlinks them, preserving the listing and any public
// references to it.
func (s *DeletionService) disposeListings(ctx context.Context, target deletionTarget) (stepOutcome, error) {
	var outcome stepOutcome

	matches, err := s.matchListings(ctx, target)
	if err != nil {
		return outcome, err
	}

	for _, listing := range matches {
		foreign := listing.OwnerID != nil &&
			(target.ProfileID == nil || *listing.OwnerID != *target.ProfileID)
		if foreign {
			continue
		}

		if target.HardDeleteOwned {
			n, err := s.listingRepo.Delete(ctx, listing.ID)
			if err != nil {
				return outcome, err
			}
			if n > 0 {
				outcome.removed += n
				outcome.hardDeleted++
			}
			continue
		}

		// Already-unlinked rows stay untouched so a re-run stays a no-op
		if listing.Unlinked && listing.OwnerID == nil {
			continue
		}
		listing.Unlink()
		if err := s.listingRepo.Update(ctx, listing); err != nil {
			return outcome, err
		}
		outcome.softDeleted++
	}

	return outcome, nil
}

func (s *DeletionService) matchListings(ctx context.Context, target deletionTarget) ([]*directory.Listing, error) {
	seen := make(map[uuid.UUID]bool)
	var matches []*directory.Listing

	if target.ProfileID != nil {
		owned, err := s.listingRepo.FindByOwner(ctx, *target.ProfileID)
		if err != nil {
			return nil, err
		}
		for _, listing := range owned {
			seen[listing.ID] = true
			matches = append(matches, listing)
		}
	}

	byEmail, err := s.listingRepo.FindByContactEmail(ctx, target.Email)
	if err != nil {
		return nil, err
	}
	for _, listing := range byEmail {
		if !seen[listing.ID] {
			seen[listing.ID] = true
			matches = append(matches, listing)
		}
	}

	return matches, nil
}

func (s *DeletionService) deleteProfileRow(ctx context.Context, target deletionTarget) (stepOutcome, error) {
	if target.ProfileID == nil {
		return stepOutcome{}, nil
	}
	n, err := s.profileRepo.Delete(ctx, *target.ProfileID)
	return stepOutcome{removed: n}, err
}

// deleteCredentialRow removes the auth record. It runs last of all because
// it is irreversible, and it tolerates an already-removed record so a
// re-run of the cascade stays safe.
func (s *DeletionService) deleteCredentialRow(ctx context.Context, target deletionTarget) (stepOutcome, error) {
	if target.ProfileID == nil {
		return stepOutcome{}, nil
	}
	n, err := s.credentialRepo.DeleteByProfileID(ctx, *target.ProfileID)
	return stepOutcome{removed: n}, err
}

func (s *DeletionService) revokeSessions(ctx context.Context, profileID uuid.UUID) {
	if err := s.sessions.RevokeProfile(ctx, profileID); err != nil {
		s.logger.Warn("Failed to revoke sessions for deleted account",
			zap.String("profile_id", profileID.String()),
			zap.Error(err))
	}
}

func (s *DeletionService) publishDeleted(ctx context.Context, target deletionTarget, report *DeletionReport) {
	event := account.NewAccountDeletedEvent(
		target.Email,
		target.ProfileID,
		report.Listings.HardDeleted,
		report.Listings.SoftDeleted,
		len(report.Failures),
	)
	if err := s.eventPublisher.Publish(ctx, event); err != nil {
		s.logger.Warn("Failed to publish account deleted event", zap.Error(err))
	}
}
