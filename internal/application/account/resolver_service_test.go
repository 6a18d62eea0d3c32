package account

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/localhub/backend/internal/domain/account"
	"github.com/localhub/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type resolverMocks struct {
	profiles    *MockProfileRepository
	credentials *MockCredentialRepository
	listings    *MockListingRepository
	bookings    *MockBookingRepository
	inquiries   *MockInquiryRepository
}

func newResolver(t *testing.T) (*ResolverService, *resolverMocks) {
	t.Helper()
	m := &resolverMocks{
		profiles:    new(MockProfileRepository),
		credentials: new(MockCredentialRepository),
		listings:    new(MockListingRepository),
		bookings:    new(MockBookingRepository),
		inquiries:   new(MockInquiryRepository),
	}
	svc := NewResolverService(m.profiles, m.credentials, m.listings, m.bookings, m.inquiries, zap.NewNop())
	return svc, m
}

func TestResolverService_Resolve(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects empty identity", func(t *testing.T) {
		svc, _ := newResolver(t)
		_, err := svc.Resolve(ctx, "")
		require.Error(t, err)
	})

	t.Run("profile id resolves to full", func(t *testing.T) {
		svc, m := newResolver(t)
		profile, err := account.NewProfile("jane@example.com")
		require.NoError(t, err)
		m.profiles.On("FindByID", ctx, profile.ID).Return(profile, nil)

		resolution, err := svc.Resolve(ctx, profile.ID.String())
		require.NoError(t, err)
		assert.Equal(t, ResolutionFull, resolution.Kind)
		assert.Equal(t, "jane@example.com", resolution.Email)
		require.NotNil(t, resolution.ProfileID)
		assert.Equal(t, profile.ID, *resolution.ProfileID)
	})

	t.Run("unknown id resolves to none", func(t *testing.T) {
		svc, m := newResolver(t)
		id := uuid.New()
		m.profiles.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)

		resolution, err := svc.Resolve(ctx, id.String())
		require.NoError(t, err)
		assert.Equal(t, ResolutionNone, resolution.Kind)
	})

	t.Run("email with profile resolves to full before email-keyed checks", func(t *testing.T) {
		svc, m := newResolver(t)
		profile, err := account.NewProfile("jane@example.com")
		require.NoError(t, err)
		m.profiles.On("FindByEmail", ctx, "jane@example.com").Return(profile, nil)

		resolution, err := svc.Resolve(ctx, "Jane@Example.com")
		require.NoError(t, err)
		assert.Equal(t, ResolutionFull, resolution.Kind)
		// No email-keyed lookups happen for a full identity
		m.bookings.AssertNotCalled(t, "ExistsByEmail", ctx, "jane@example.com")
		m.listings.AssertNotCalled(t, "ExistsByContactEmail", ctx, "jane@example.com")
	})

	t.Run("orphan auth record still resolves to full", func(t *testing.T) {
		svc, m := newResolver(t)
		profileID := uuid.New()
		credential := &account.Credential{ProfileID: profileID, Email: "jane@example.com"}
		m.profiles.On("FindByEmail", ctx, "jane@example.com").Return(nil, shared.ErrNotFound)
		m.credentials.On("FindByEmail", ctx, "jane@example.com").Return(credential, nil)

		resolution, err := svc.Resolve(ctx, "jane@example.com")
		require.NoError(t, err)
		assert.Equal(t, ResolutionFull, resolution.Kind)
		require.NotNil(t, resolution.ProfileID)
		assert.Equal(t, profileID, *resolution.ProfileID)
	})

	t.Run("email-keyed rows without profile resolve to partial", func(t *testing.T) {
		svc, m := newResolver(t)
		m.profiles.On("FindByEmail", ctx, "guest@example.com").Return(nil, shared.ErrNotFound)
		m.credentials.On("FindByEmail", ctx, "guest@example.com").Return(nil, shared.ErrNotFound)
		m.bookings.On("ExistsByEmail", ctx, "guest@example.com").Return(true, nil)

		resolution, err := svc.Resolve(ctx, "guest@example.com")
		require.NoError(t, err)
		assert.Equal(t, ResolutionPartial, resolution.Kind)
		assert.Nil(t, resolution.ProfileID)
	})

	t.Run("unlinked listing alone makes a partial identity", func(t *testing.T) {
		svc, m := newResolver(t)
		m.profiles.On("FindByEmail", ctx, "owner@example.com").Return(nil, shared.ErrNotFound)
		m.credentials.On("FindByEmail", ctx, "owner@example.com").Return(nil, shared.ErrNotFound)
		m.bookings.On("ExistsByEmail", ctx, "owner@example.com").Return(false, nil)
		m.inquiries.On("ExistsByEmail", ctx, "owner@example.com").Return(false, nil)
		m.listings.On("ExistsByContactEmail", ctx, "owner@example.com").Return(true, nil)

		resolution, err := svc.Resolve(ctx, "owner@example.com")
		require.NoError(t, err)
		assert.Equal(t, ResolutionPartial, resolution.Kind)
	})

	t.Run("nothing anywhere resolves to none", func(t *testing.T) {
		svc, m := newResolver(t)
		m.profiles.On("FindByEmail", ctx, "nobody@example.com").Return(nil, shared.ErrNotFound)
		m.credentials.On("FindByEmail", ctx, "nobody@example.com").Return(nil, shared.ErrNotFound)
		m.bookings.On("ExistsByEmail", ctx, "nobody@example.com").Return(false, nil)
		m.inquiries.On("ExistsByEmail", ctx, "nobody@example.com").Return(false, nil)
		m.listings.On("ExistsByContactEmail", ctx, "nobody@example.com").Return(false, nil)

		resolution, err := svc.Resolve(ctx, "nobody@example.com")
		require.NoError(t, err)
		assert.Equal(t, ResolutionNone, resolution.Kind)
	})
}
