package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/localhub/backend/internal/infrastructure/auth"
	"github.com/localhub/backend/internal/infrastructure/logger"
	"github.com/localhub/backend/internal/interfaces/http/dto"
)

// JWT context keys
const (
	JWTClaimsKey    = "jwt_claims"
	JWTProfileIDKey = "jwt_profile_id"
	JWTEmailKey     = "jwt_email"
	JWTRoleKey      = "jwt_role"

	authHeaderKey = "Authorization"
	bearerPrefix  = "Bearer "
)

// RequireAuth validates the bearer token and stores its claims in the
// context. The blacklist is consulted for both the individual token jti
// (logout) and a profile-wide invalidation (account deletion). Blacklist
// lookup failures fail open so a Redis outage does not lock everyone out.
func RequireAuth(jwtService *auth.JWTService, blacklist auth.TokenBlacklist, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(authHeaderKey)
		if header == "" || !strings.HasPrefix(header, bearerPrefix) {
			abortUnauthorized(c, "TOKEN_INVALID", "Authentication required")
			return
		}

		tokenString := strings.TrimPrefix(header, bearerPrefix)
		claims, err := jwtService.ValidateAccessToken(tokenString)
		if err != nil {
			log.Debug("Token validation failed",
				zap.String("path", c.Request.URL.Path),
				zap.Error(err))
			abortUnauthorized(c, tokenErrorCode(err), "Invalid or expired token")
			return
		}

		ctx := c.Request.Context()

		if blacklist != nil {
			if claims.ID != "" {
				blacklisted, err := blacklist.IsBlacklisted(ctx, claims.ID)
				if err != nil {
					log.Error("Token blacklist check failed", zap.Error(err))
				} else if blacklisted {
					abortUnauthorized(c, "TOKEN_REVOKED", "Token has been revoked")
					return
				}
			}

			issuedAt := claims.IssuedAt.Time
			invalidated, err := blacklist.IsProfileTokenInvalidated(ctx, claims.ProfileID, issuedAt)
			if err != nil {
				log.Error("Profile invalidation check failed", zap.Error(err))
			} else if invalidated {
				abortUnauthorized(c, "TOKEN_REVOKED", "Session has been invalidated")
				return
			}
		}

		c.Set(JWTClaimsKey, claims)
		c.Set(JWTProfileIDKey, claims.ProfileID.String())
		c.Set(JWTEmailKey, claims.Email)
		c.Set(JWTRoleKey, claims.Role)

		ctx, _ = logger.WithProfileID(ctx, logger.FromContext(ctx), claims.ProfileID.String())
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireRole aborts with 403 unless the authenticated profile has the
// given role. Must run after RequireAuth.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(JWTRoleKey) != role {
			c.AbortWithStatusJSON(http.StatusForbidden,
				dto.NewErrorResponse(dto.ErrCodeForbidden, "Insufficient permissions"))
			return
		}
		c.Next()
	}
}

// GetClaims retrieves validated JWT claims from the gin context
func GetClaims(c *gin.Context) *auth.Claims {
	if value, exists := c.Get(JWTClaimsKey); exists {
		if claims, ok := value.(*auth.Claims); ok {
			return claims
		}
	}
	return nil
}

func abortUnauthorized(c *gin.Context, code, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(code, message))
}

func tokenErrorCode(err error) string {
	switch {
	case errors.Is(err, auth.ErrTokenExpired):
		return "TOKEN_EXPIRED"
	case errors.Is(err, auth.ErrInvalidTokenType):
		return "TOKEN_INVALID"
	default:
		return "TOKEN_INVALID"
	}
}
