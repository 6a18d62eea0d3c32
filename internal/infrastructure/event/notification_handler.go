package event

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/localhub/backend/internal/domain/account"
	"github.com/localhub/backend/internal/domain/directory"
	"github.com/localhub/backend/internal/domain/shared"
)

// ReclaimNotificationHandler writes an in-app notification for the new
// owner whenever login reconciliation reattaches an unlinked listing.
type ReclaimNotificationHandler struct {
	notificationRepo account.NotificationRepository
	logger           *zap.Logger
}

// NewReclaimNotificationHandler creates a new ReclaimNotificationHandler
func NewReclaimNotificationHandler(notificationRepo account.NotificationRepository, logger *zap.Logger) *ReclaimNotificationHandler {
	return &ReclaimNotificationHandler{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

// EventTypes implements Handler
func (h *ReclaimNotificationHandler) EventTypes() []string {
	return []string{directory.EventTypeListingReclaimed}
}

// Handle implements Handler
func (h *ReclaimNotificationHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	reclaimed, ok := event.(*directory.ListingReclaimedEvent)
	if !ok {
		return fmt.Errorf("unexpected event type %T for %s", event, event.EventType())
	}

	payload, err := json.Marshal(map[string]string{
		"listing_id": reclaimed.AggregateID().String(),
	})
	if err != nil {
		return err
	}

	notification := account.NewNotification(reclaimed.NewOwnerID, "listing_reclaimed", string(payload))
	if err := h.notificationRepo.Create(ctx, notification); err != nil {
		return fmt.Errorf("create reclaim notification: %w", err)
	}

	h.logger.Debug("reclaim notification created",
		zap.String("profile_id", reclaimed.NewOwnerID.String()),
		zap.String("listing_id", reclaimed.AggregateID().String()))
	return nil
}

// Ensure ReclaimNotificationHandler implements Handler
var _ Handler = (*ReclaimNotificationHandler)(nil)
