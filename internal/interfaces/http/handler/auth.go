package handler

import (
	"github.com/gin-gonic/gin"

	appaccount "github.com/localhub/backend/internal/application/account"
	"github.com/localhub/backend/internal/domain/account"
	"github.com/localhub/backend/internal/interfaces/http/middleware"
)

// AuthHandler handles signup, login, refresh, and logout
type AuthHandler struct {
	BaseHandler
	authService *appaccount.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *appaccount.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRoutes registers the public auth routes on the given group and
// the authenticated ones on the protected group
func (h *AuthHandler) RegisterRoutes(public, protected *gin.RouterGroup) {
	public.POST("/auth/signup", h.Signup)
	public.POST("/auth/login", h.Login)
	public.POST("/auth/refresh", h.Refresh)
	protected.POST("/auth/logout", h.Logout)
	protected.GET("/auth/me", h.Me)
}

// Signup creates a new account with a profile and login credentials
func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	result, err := h.authService.Signup(c.Request.Context(), appaccount.SignupInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Role:     account.AccountRole(req.Role),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, SignupResponse{Profile: newProfileResponse(result.Profile)})
}

// Login authenticates by email and password. Unlinked listings matching
// the email are reattached before the response is built, and the reply
// lists what was reclaimed.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	result, err := h.authService.Login(c.Request.Context(), appaccount.LoginInput{
		Email:    req.Email,
		Password: req.Password,
		IP:       c.ClientIP(),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	response := LoginResponse{
		Token: TokenResponse{
			AccessToken:           result.AccessToken,
			RefreshToken:          result.RefreshToken,
			AccessTokenExpiresAt:  result.AccessTokenExpiresAt,
			RefreshTokenExpiresAt: result.RefreshTokenExpiresAt,
			TokenType:             result.TokenType,
		},
		Profile: newProfileResponse(result.Profile),
	}
	for _, reclaimed := range result.Reclaimed {
		response.ReclaimedListings = append(response.ReclaimedListings, ReclaimedListingResponse{
			ID:           reclaimed.ID,
			Name:         reclaimed.Name,
			ContactEmail: reclaimed.ContactEmail,
		})
	}

	h.Success(c, response)
}

// Refresh rotates a token pair
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	result, err := h.authService.Refresh(c.Request.Context(), appaccount.RefreshInput{
		RefreshToken: req.RefreshToken,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, RefreshResponse{
		Token: TokenResponse{
			AccessToken:           result.AccessToken,
			RefreshToken:          result.RefreshToken,
			AccessTokenExpiresAt:  result.AccessTokenExpiresAt,
			RefreshTokenExpiresAt: result.RefreshTokenExpiresAt,
			TokenType:             result.TokenType,
		},
	})
}

// Logout revokes the presented access token
func (h *AuthHandler) Logout(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	err := h.authService.Logout(c.Request.Context(), appaccount.LogoutInput{
		ProfileID: claims.ProfileID,
		TokenJTI:  claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, LogoutResponse{Message: "Logged out successfully"})
}

// Me returns the profile of the authenticated account
func (h *AuthHandler) Me(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	h.Success(c, gin.H{
		"profile_id": claims.ProfileID,
		"email":      claims.Email,
		"role":       claims.Role,
	})
}

func newProfileResponse(info appaccount.ProfileInfo) ProfileResponse {
	return ProfileResponse{
		ID:          info.ID,
		Email:       info.Email,
		Name:        info.Name,
		Role:        string(info.Role),
		Phone:       info.Phone,
		Avatar:      info.Avatar,
		Bio:         info.Bio,
		NotifyOptIn: info.NotifyOptIn,
		CreatedAt:   info.CreatedAt,
		UpdatedAt:   info.UpdatedAt,
	}
}
