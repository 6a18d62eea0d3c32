package account

import (
	"context"
	"errors"
	"time"

	"github.com/localhub/backend/internal/domain/account"
	"github.com/localhub/backend/internal/domain/shared"
	"github.com/localhub/backend/internal/infrastructure/auth"
	"go.uber.org/zap"
)

// AuthService handles signup, login, and logout. Reconciliation of
// unlinked listings runs synchronously inside Login, after the password
// check and before the response is built.
type AuthService struct {
	profileRepo    account.ProfileRepository
	credentialRepo account.CredentialRepository
	reconciler     *ReconciliationService
	jwtService     *auth.JWTService
	blacklist      auth.TokenBlacklist
	eventPublisher shared.EventPublisher
	logger         *zap.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(
	profileRepo account.ProfileRepository,
	credentialRepo account.CredentialRepository,
	reconciler *ReconciliationService,
	jwtService *auth.JWTService,
	blacklist auth.TokenBlacklist,
	eventPublisher shared.EventPublisher,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		profileRepo:    profileRepo,
		credentialRepo: credentialRepo,
		reconciler:     reconciler,
		jwtService:     jwtService,
		blacklist:      blacklist,
		eventPublisher: eventPublisher,
		logger:         logger,
	}
}

// Signup creates a profile and its backing auth record
func (s *AuthService) Signup(ctx context.Context, input SignupInput) (*SignupResult, error) {
	email, err := account.NormalizeEmail(input.Email)
	if err != nil {
		return nil, err
	}

	role := input.Role
	if role == "" {
		role = account.RoleCommunity
	}
	if !role.IsValid() {
		return nil, shared.NewDomainError("INVALID_ROLE", "Unknown account role: "+string(role))
	}

	exists, err := s.credentialRepo.FindByEmail(ctx, email)
	if err == nil && exists != nil {
		return nil, shared.NewDomainError("EMAIL_TAKEN", "An account already exists for this email")
	}
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		s.logger.Error("Failed to check existing credential", zap.Error(err))
		return nil, shared.ErrPersistence
	}

	profile, err := account.NewProfile(email)
	if err != nil {
		return nil, err
	}
	profile.Name = input.Name
	profile.Role = role

	credential, err := account.NewCredential(profile.ID, email, input.Password)
	if err != nil {
		return nil, err
	}

	if err := s.profileRepo.Create(ctx, profile); err != nil {
		s.logger.Error("Failed to create profile during signup", zap.Error(err))
		return nil, shared.ErrPersistence
	}
	if err := s.credentialRepo.Create(ctx, credential); err != nil {
		// Leave the profile row in place: deletion is re-runnable and
		// cleanup can remove it, while retrying signup will not
		s.logger.Error("Failed to create auth record during signup",
			zap.String("profile_id", profile.ID.String()),
			zap.Error(err))
		return nil, shared.ErrPersistence
	}

	s.publishEvents(ctx, profile)

	s.logger.Info("Account created",
		zap.String("profile_id", profile.ID.String()),
		zap.String("email", email),
		zap.String("role", string(role)))

	return &SignupResult{Profile: newProfileInfo(profile)}, nil
}

// Login authenticates by email and password, reattaches any unlinked
// listings matching the email, and returns a token pair
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	email, err := account.NormalizeEmail(input.Email)
	if err != nil {
		return nil, err
	}

	credential, err := s.credentialRepo.FindByEmail(ctx, email)
	if err != nil {
		s.logger.Warn("Login attempt for unknown email", zap.String("email", email))
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid email or password")
	}

	if !credential.VerifyPassword(input.Password) {
		s.logger.Warn("Invalid password attempt",
			zap.String("email", email),
			zap.String("ip", input.IP))
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid email or password")
	}

	profile, err := s.profileRepo.FindByID(ctx, credential.ProfileID)
	if err != nil {
		s.logger.Error("Auth record has no profile row",
			zap.String("profile_id", credential.ProfileID.String()),
			zap.Error(err))
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid email or password")
	}

	if err := s.credentialRepo.RecordLogin(ctx, credential.ID); err != nil {
		// Don't fail the login over the timestamp
		s.logger.Warn("Failed to record login time", zap.Error(err))
	}

	// Reconciliation is part of the login flow: listings unlinked by a
	// prior account deletion are reattached before the response is built
	reclaimed, err := s.reconciler.Reconcile(ctx, ReconcileInput{
		ProfileID: profile.ID,
		Email:     email,
	})
	if err != nil {
		s.logger.Warn("Ownership reconciliation failed during login",
			zap.String("profile_id", profile.ID.String()),
			zap.Error(err))
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(auth.GenerateTokenInput{
		ProfileID: profile.ID,
		Email:     profile.Email,
		Role:      string(profile.Role),
	})
	if err != nil {
		s.logger.Error("Failed to generate token pair", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to generate authentication tokens")
	}

	s.logger.Info("Login succeeded",
		zap.String("profile_id", profile.ID.String()),
		zap.Int("reclaimed_listings", len(reclaimed)))

	return &LoginResult{
		AccessToken:           tokenPair.AccessToken,
		RefreshToken:          tokenPair.RefreshToken,
		AccessTokenExpiresAt:  tokenPair.AccessTokenExpiresAt,
		RefreshTokenExpiresAt: tokenPair.RefreshTokenExpiresAt,
		TokenType:             tokenPair.TokenType,
		Profile:               newProfileInfo(profile),
		Reclaimed:             reclaimed,
	}, nil
}

// Refresh rotates a token pair. The refresh token is re-validated and
// checked against profile-wide invalidation so tokens issued before an
// account deletion cannot mint new sessions.
func (s *AuthService) Refresh(ctx context.Context, input RefreshInput) (*RefreshResult, error) {
	claims, err := s.jwtService.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		return nil, refreshTokenError(err)
	}

	invalidated, err := s.blacklist.IsProfileTokenInvalidated(ctx, claims.ProfileID, claims.IssuedAt.Time)
	if err != nil {
		// Fail open: a blacklist outage should not end every session
		s.logger.Error("Profile invalidation check failed during refresh", zap.Error(err))
	} else if invalidated {
		return nil, shared.NewDomainError("TOKEN_REVOKED", "Session has been invalidated")
	}

	tokenPair, err := s.jwtService.RefreshTokenPair(input.RefreshToken)
	if err != nil {
		return nil, refreshTokenError(err)
	}

	s.logger.Debug("Token pair refreshed", zap.String("profile_id", claims.ProfileID.String()))

	return &RefreshResult{
		AccessToken:           tokenPair.AccessToken,
		RefreshToken:          tokenPair.RefreshToken,
		AccessTokenExpiresAt:  tokenPair.AccessTokenExpiresAt,
		RefreshTokenExpiresAt: tokenPair.RefreshTokenExpiresAt,
		TokenType:             tokenPair.TokenType,
	}, nil
}

func refreshTokenError(err error) error {
	switch {
	case errors.Is(err, auth.ErrTokenExpired):
		return shared.NewDomainError("TOKEN_EXPIRED", "Refresh token has expired")
	case errors.Is(err, auth.ErrMaxRefreshCount):
		return shared.NewDomainError("TOKEN_MAX_REFRESH", "Session has been active too long, log in again")
	default:
		return shared.NewDomainError("TOKEN_INVALID", "Invalid refresh token")
	}
}

// Logout blacklists the presented access token until it would have expired
func (s *AuthService) Logout(ctx context.Context, input LogoutInput) error {
	if input.TokenJTI == "" {
		return nil
	}

	ttl := time.Until(input.ExpiresAt)
	if ttl <= 0 {
		return nil
	}

	if err := s.blacklist.AddToBlacklist(ctx, input.TokenJTI, ttl); err != nil {
		s.logger.Error("Failed to blacklist token on logout",
			zap.String("profile_id", input.ProfileID.String()),
			zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to revoke session")
	}

	s.logger.Info("Logout", zap.String("profile_id", input.ProfileID.String()))
	return nil
}

func (s *AuthService) publishEvents(ctx context.Context, profile *account.Profile) {
	events := profile.GetDomainEvents()
	if len(events) == 0 {
		return
	}
	if err := s.eventPublisher.Publish(ctx, events...); err != nil {
		s.logger.Warn("Failed to publish account events", zap.Error(err))
	}
	profile.ClearDomainEvents()
}
