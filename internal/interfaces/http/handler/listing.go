package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	appdirectory "github.com/localhub/backend/internal/application/directory"
	"github.com/localhub/backend/internal/domain/directory"
	"github.com/localhub/backend/internal/interfaces/http/middleware"
)

// ListingHandler handles listing submission, browsing, the engagement
// flows, and the admin approval workflow
type ListingHandler struct {
	BaseHandler
	listingService *appdirectory.ListingService
}

// NewListingHandler creates a new listing handler
func NewListingHandler(listingService *appdirectory.ListingService) *ListingHandler {
	return &ListingHandler{listingService: listingService}
}

// RegisterRoutes registers listing routes. Browsing, bookings, and
// inquiries are public; submission and engagement need authentication;
// the approval workflow is admin only.
func (h *ListingHandler) RegisterRoutes(public, protected, admin *gin.RouterGroup) {
	public.GET("/listings", h.ListApproved)
	public.GET("/listings/:id", h.GetListing)
	public.POST("/listings/:id/bookings", h.CreateBooking)
	public.POST("/inquiries", h.CreateInquiry)

	protected.POST("/listings", h.Submit)
	protected.POST("/listings/:id/save", h.SaveListing)
	protected.POST("/listings/:id/reviews", h.CreateReview)
	protected.POST("/listings/:id/flags", h.FlagListing)

	admin.GET("/listings", h.ListByStatus)
	admin.POST("/listings/:id/approve", h.Approve)
	admin.POST("/listings/:id/reject", h.Reject)
	admin.DELETE("/listings/:id", h.HardDelete)
}

// Submit creates a pending listing owned by the authenticated profile
func (h *ListingHandler) Submit(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req SubmitListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	info, err := h.listingService.Submit(c.Request.Context(), appdirectory.SubmitListingInput{
		OwnerID:      claims.ProfileID,
		ContactEmail: req.ContactEmail,
		Name:         req.Name,
		Category:     req.Category,
		Address:      req.Address,
		Phone:        req.Phone,
		Website:      req.Website,
		Description:  req.Description,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, newListingResponse(*info))
}

// GetListing returns a single listing by id
func (h *ListingHandler) GetListing(c *gin.Context) {
	listingID, ok := h.listingID(c)
	if !ok {
		return
	}

	info, err := h.listingService.GetListing(c.Request.Context(), listingID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, newListingResponse(*info))
}

// ListApproved returns the approved listings visible in the directory
func (h *ListingHandler) ListApproved(c *gin.Context) {
	h.listByStatus(c, directory.ListingStatusApproved)
}

// ListByStatus returns listings in the state given by ?status= (admin)
func (h *ListingHandler) ListByStatus(c *gin.Context) {
	status := directory.ListingStatus(c.DefaultQuery("status", string(directory.ListingStatusPending)))
	h.listByStatus(c, status)
}

func (h *ListingHandler) listByStatus(c *gin.Context, status directory.ListingStatus) {
	infos, err := h.listingService.ListByStatus(c.Request.Context(), status)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	responses := make([]ListingResponse, len(infos))
	for i, info := range infos {
		responses[i] = newListingResponse(info)
	}
	h.Success(c, responses)
}

// Approve marks a pending listing visible in the directory
func (h *ListingHandler) Approve(c *gin.Context) {
	h.transition(c, h.listingService.Approve)
}

// Reject declines a pending listing
func (h *ListingHandler) Reject(c *gin.Context) {
	h.transition(c, h.listingService.Reject)
}

func (h *ListingHandler) transition(c *gin.Context, apply func(ctx context.Context, id uuid.UUID) (*appdirectory.ListingInfo, error)) {
	listingID, ok := h.listingID(c)
	if !ok {
		return
	}

	info, err := apply(c.Request.Context(), listingID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, newListingResponse(*info))
}

// HardDelete permanently removes a listing (admin)
func (h *ListingHandler) HardDelete(c *gin.Context) {
	listingID, ok := h.listingID(c)
	if !ok {
		return
	}

	if err := h.listingService.HardDelete(c.Request.Context(), listingID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// CreateBooking records a booking request against an approved listing
func (h *ListingHandler) CreateBooking(c *gin.Context) {
	listingID, ok := h.listingID(c)
	if !ok {
		return
	}

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	info, err := h.listingService.CreateBooking(c.Request.Context(), appdirectory.CreateBookingInput{
		Email:     req.Email,
		ListingID: listingID,
		StartsAt:  req.StartsAt,
		EndsAt:    req.EndsAt,
		PartySize: req.PartySize,
		Amount:    req.Amount,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, BookingResponse{
		ID:        info.ID,
		Email:     info.Email,
		ListingID: info.ListingID,
		StartsAt:  info.StartsAt,
		EndsAt:    info.EndsAt,
		PartySize: info.PartySize,
		Amount:    info.Amount,
		Status:    string(info.Status),
	})
}

// CreateInquiry records a contact-form submission
func (h *ListingHandler) CreateInquiry(c *gin.Context) {
	var req CreateInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	err := h.listingService.CreateInquiry(c.Request.Context(), appdirectory.CreateInquiryInput{
		Email:     req.Email,
		ListingID: req.ListingID,
		Subject:   req.Subject,
		Message:   req.Message,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, gin.H{"message": "Inquiry received"})
}

// SaveListing bookmarks a listing for the authenticated profile
func (h *ListingHandler) SaveListing(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	listingID, ok := h.listingID(c)
	if !ok {
		return
	}

	if err := h.listingService.SaveListing(c.Request.Context(), claims.ProfileID, listingID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// CreateReview records a review on a listing
func (h *ListingHandler) CreateReview(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	listingID, ok := h.listingID(c)
	if !ok {
		return
	}

	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	err := h.listingService.CreateReview(c.Request.Context(), appdirectory.CreateReviewInput{
		ProfileID: claims.ProfileID,
		ListingID: listingID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, gin.H{"message": "Review recorded"})
}

// FlagListing reports a listing to the admins
func (h *ListingHandler) FlagListing(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	listingID, ok := h.listingID(c)
	if !ok {
		return
	}

	var req FlagListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	err := h.listingService.FlagListing(c.Request.Context(), appdirectory.FlagListingInput{
		ProfileID: claims.ProfileID,
		ListingID: listingID,
		Reason:    req.Reason,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, gin.H{"message": "Listing flagged"})
}

func (h *ListingHandler) listingID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, http.StatusBadRequest, "INVALID_LISTING_ID", "Listing id must be a UUID")
		return uuid.Nil, false
	}
	return id, true
}
