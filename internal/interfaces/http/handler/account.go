package handler

import (
	"github.com/gin-gonic/gin"

	appaccount "github.com/localhub/backend/internal/application/account"
	"github.com/localhub/backend/internal/domain/account"
	"github.com/localhub/backend/internal/interfaces/http/middleware"
)

// AccountHandler handles profile reads and updates, self-service account
// deletion, and the admin identity endpoints
type AccountHandler struct {
	BaseHandler
	profileService  *appaccount.ProfileService
	deletionService *appaccount.DeletionService
	resolverService *appaccount.ResolverService
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(
	profileService *appaccount.ProfileService,
	deletionService *appaccount.DeletionService,
	resolverService *appaccount.ResolverService,
) *AccountHandler {
	return &AccountHandler{
		profileService:  profileService,
		deletionService: deletionService,
		resolverService: resolverService,
	}
}

// RegisterRoutes registers account routes on the protected group and the
// identity administration routes on the admin group
func (h *AccountHandler) RegisterRoutes(protected, admin *gin.RouterGroup) {
	protected.GET("/account/profile", h.GetProfile)
	protected.PATCH("/account/profile", h.UpdateProfile)
	protected.DELETE("/account", h.DeleteOwnAccount)

	admin.GET("/accounts/:identity", h.ResolveIdentity)
	admin.DELETE("/accounts/:identity", h.DeleteAccount)
}

// GetProfile returns the authenticated account's profile
func (h *AccountHandler) GetProfile(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	info, err := h.profileService.GetProfile(c.Request.Context(), claims.ProfileID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, newProfileResponse(*info))
}

// UpdateProfile merges a partial update into the authenticated profile.
// Fields absent from the body keep their stored values; immutable fields
// already set are silently skipped and reported in skipped_fields.
func (h *AccountHandler) UpdateProfile(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	patch := account.ProfilePatch{
		Name:        req.Name,
		Phone:       req.Phone,
		Avatar:      req.Avatar,
		Bio:         req.Bio,
		NotifyOptIn: req.NotifyOptIn,
	}
	if req.Role != nil {
		role := account.AccountRole(*req.Role)
		patch.Role = &role
	}

	result, err := h.profileService.Upsert(c.Request.Context(), appaccount.UpsertProfileInput{
		ProfileID: claims.ProfileID,
		Email:     claims.Email,
		Fields:    patch,
		Source:    "self",
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, UpdateProfileResponse{
		Profile:       newProfileResponse(result.Profile),
		Created:       result.Created,
		SkippedFields: result.SkippedFields,
	})
}

// DeleteOwnAccount removes the authenticated account and its data.
// Owned listings are unlinked rather than removed unless the caller asks
// for hard deletion with ?hard_delete_owned=true.
func (h *AccountHandler) DeleteOwnAccount(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	report, err := h.deletionService.DeleteAccount(c.Request.Context(), appaccount.DeleteAccountInput{
		Identity:        claims.ProfileID.String(),
		HardDeleteOwned: c.Query("hard_delete_owned") == "true",
		RequestedBy:     "self",
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, newDeleteAccountResponse(report))
}

// ResolveIdentity classifies an identity (profile id or email) as full,
// partial, or none without touching any data
func (h *AccountHandler) ResolveIdentity(c *gin.Context) {
	identity := c.Param("identity")

	resolution, err := h.resolverService.Resolve(c.Request.Context(), identity)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	response := ResolveIdentityResponse{
		Identity: identity,
		Kind:     string(resolution.Kind),
		Email:    resolution.Email,
	}
	if resolution.ProfileID != nil {
		response.ProfileID = resolution.ProfileID.String()
	}
	if resolution.Profile != nil {
		profile := newProfileResponse(profileInfoFromDomain(resolution.Profile))
		response.Profile = &profile
	}

	h.Success(c, response)
}

// DeleteAccount removes an account by identity on behalf of an admin.
// Works for partial identities too: email-keyed rows are removed even
// when no profile row exists.
func (h *AccountHandler) DeleteAccount(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	report, err := h.deletionService.DeleteAccount(c.Request.Context(), appaccount.DeleteAccountInput{
		Identity:        c.Param("identity"),
		HardDeleteOwned: c.Query("hard_delete_owned") == "true",
		RequestedBy:     claims.ProfileID.String(),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, newDeleteAccountResponse(report))
}

func newDeleteAccountResponse(report *appaccount.DeletionReport) DeleteAccountResponse {
	response := DeleteAccountResponse{
		Identity:      report.Identity,
		Kind:          string(report.Kind),
		RemovedCounts: report.RemovedCounts,
		Complete:      report.Completed(),
	}
	response.Listings.HardDeleted = report.Listings.HardDeleted
	response.Listings.SoftDeleted = report.Listings.SoftDeleted
	for _, failure := range report.Failures {
		response.Failures = append(response.Failures, DeletionFailure{
			Table:  failure.Table,
			Reason: failure.Reason,
		})
	}
	return response
}

func profileInfoFromDomain(profile *account.Profile) appaccount.ProfileInfo {
	return appaccount.ProfileInfo{
		ID:          profile.ID,
		Email:       profile.Email,
		Name:        profile.Name,
		Role:        profile.Role,
		Phone:       profile.Phone,
		Avatar:      profile.Avatar,
		Bio:         profile.Bio,
		NotifyOptIn: profile.NotifyOptIn,
		CreatedAt:   profile.CreatedAt,
		UpdatedAt:   profile.UpdatedAt,
	}
}
