package account

import (
	"context"

	"github.com/google/uuid"
	"github.com/localhub/backend/internal/domain/account"
	"github.com/localhub/backend/internal/domain/directory"
	"github.com/localhub/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// ReconciliationService reattaches listings left unlinked by a prior soft
// delete to the authenticating profile, matched by contact email. It runs
// synchronously after every successful login and is idempotent: once a
// listing is reclaimed it no longer matches, so a second run is a no-op,
// and concurrent logins for the same email converge to the same state.
type ReconciliationService struct {
	listingRepo    directory.ListingRepository
	eventPublisher shared.EventPublisher
	logger         *zap.Logger
}

// NewReconciliationService creates a new reconciliation service
func NewReconciliationService(
	listingRepo directory.ListingRepository,
	eventPublisher shared.EventPublisher,
	logger *zap.Logger,
) *ReconciliationService {
	return &ReconciliationService{
		listingRepo:    listingRepo,
		eventPublisher: eventPublisher,
		logger:         logger,
	}
}

// Reconcile finds unlinked listings whose contact email matches and
// reattaches each to the profile. Listings that fail to save are skipped
// and picked up by the next login.
func (s *ReconciliationService) Reconcile(ctx context.Context, input ReconcileInput) ([]ReclaimedListing, error) {
	if input.ProfileID == uuid.Nil {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Profile ID is required")
	}
	email, err := account.NormalizeEmail(input.Email)
	if err != nil {
		return nil, err
	}

	unlinked, err := s.listingRepo.FindUnlinkedByEmail(ctx, email)
	if err != nil {
		s.logger.Error("Failed to query unlinked listings",
			zap.String("email", email),
			zap.Error(err))
		return nil, shared.ErrPersistence
	}
	if len(unlinked) == 0 {
		return nil, nil
	}

	reclaimed := make([]ReclaimedListing, 0, len(unlinked))
	for _, listing := range unlinked {
		if err := listing.ClaimBy(input.ProfileID); err != nil {
			// Another login raced us to this listing; leave it be
			s.logger.Debug("Listing no longer reclaimable",
				zap.String("listing_id", listing.ID.String()),
				zap.Error(err))
			continue
		}
		if err := s.listingRepo.Update(ctx, listing); err != nil {
			s.logger.Warn("Failed to reattach listing, will retry on next login",
				zap.String("listing_id", listing.ID.String()),
				zap.String("profile_id", input.ProfileID.String()),
				zap.Error(err))
			continue
		}

		s.publishEvents(ctx, listing)
		reclaimed = append(reclaimed, ReclaimedListing{
			ID:           listing.ID,
			Name:         listing.Name,
			ContactEmail: listing.ContactEmail,
		})
	}

	if len(reclaimed) > 0 {
		s.logger.Info("Reattached unlinked listings after login",
			zap.String("profile_id", input.ProfileID.String()),
			zap.String("email", email),
			zap.Int("count", len(reclaimed)))
	}

	return reclaimed, nil
}

func (s *ReconciliationService) publishEvents(ctx context.Context, listing *directory.Listing) {
	events := listing.GetDomainEvents()
	if len(events) == 0 {
		return
	}
	if err := s.eventPublisher.Publish(ctx, events...); err != nil {
		s.logger.Warn("Failed to publish listing events", zap.Error(err))
	}
	listing.ClearDomainEvents()
}
