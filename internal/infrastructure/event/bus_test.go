package event

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/localhub/backend/internal/domain/account"
	"github.com/localhub/backend/internal/domain/directory"
	"github.com/localhub/backend/internal/domain/shared"
)

type capturingHandler struct {
	types   []string
	handled []shared.DomainEvent
	err     error
}

func (h *capturingHandler) Handle(_ context.Context, event shared.DomainEvent) error {
	h.handled = append(h.handled, event)
	return h.err
}

func (h *capturingHandler) EventTypes() []string {
	return h.types
}

func newReclaimedEvent(t *testing.T, newOwnerID uuid.UUID) *directory.ListingReclaimedEvent {
	t.Helper()
	listing, err := directory.NewListing(uuid.New(), "owner@shop.example", "Corner Bakery", "food")
	require.NoError(t, err)
	listing.Unlink()
	require.NoError(t, listing.ClaimBy(newOwnerID))

	events := listing.GetDomainEvents()
	reclaimed, ok := events[len(events)-1].(*directory.ListingReclaimedEvent)
	require.True(t, ok)
	return reclaimed
}

func TestInMemoryEventBus(t *testing.T) {
	t.Run("dispatches to subscribed handlers only", func(t *testing.T) {
		bus := NewInMemoryEventBus(zap.NewNop())
		reclaims := &capturingHandler{types: []string{directory.EventTypeListingReclaimed}}
		deletions := &capturingHandler{types: []string{account.EventTypeAccountDeleted}}
		bus.Subscribe(reclaims)
		bus.Subscribe(deletions)

		event := newReclaimedEvent(t, uuid.New())
		require.NoError(t, bus.Publish(context.Background(), event))

		assert.Len(t, reclaims.handled, 1)
		assert.Empty(t, deletions.handled)
	})

	t.Run("handler error does not fail publish", func(t *testing.T) {
		bus := NewInMemoryEventBus(zap.NewNop())
		failing := &capturingHandler{
			types: []string{directory.EventTypeListingReclaimed},
			err:   errors.New("boom"),
		}
		bus.Subscribe(failing)

		err := bus.Publish(context.Background(), newReclaimedEvent(t, uuid.New()))

		assert.NoError(t, err)
		assert.Len(t, failing.handled, 1)
	})

	t.Run("event with no handlers is dropped silently", func(t *testing.T) {
		bus := NewInMemoryEventBus(zap.NewNop())
		assert.NoError(t, bus.Publish(context.Background(), newReclaimedEvent(t, uuid.New())))
	})
}

type capturingNotificationRepo struct {
	created []*account.Notification
}

func (r *capturingNotificationRepo) Create(_ context.Context, n *account.Notification) error {
	r.created = append(r.created, n)
	return nil
}

func (r *capturingNotificationRepo) FindByProfileID(context.Context, uuid.UUID) ([]*account.Notification, error) {
	return nil, nil
}

func (r *capturingNotificationRepo) DeleteByProfileID(context.Context, uuid.UUID) (int64, error) {
	return 0, nil
}

func TestReclaimNotificationHandler(t *testing.T) {
	repo := &capturingNotificationRepo{}
	handler := NewReclaimNotificationHandler(repo, zap.NewNop())

	newOwnerID := uuid.New()
	err := handler.Handle(context.Background(), newReclaimedEvent(t, newOwnerID))

	require.NoError(t, err)
	require.Len(t, repo.created, 1)
	assert.Equal(t, newOwnerID, repo.created[0].ProfileID)
	assert.Equal(t, "listing_reclaimed", repo.created[0].Kind)
	assert.Contains(t, repo.created[0].Payload, "listing_id")
}
