package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/roomies-app/roomies-api/internal/dto"
	apierrors "github.com/roomies-app/roomies-api/internal/errors"
	"github.com/roomies-app/roomies-api/internal/middleware"
	"github.com/roomies-app/roomies-api/internal/services"
)

// ListingHandler coordinates listing HTTP handlers.
type ListingHandler struct {
	listingService *services.ListingService
	aiService      *services.AIService
}

// NewListingHandler creates a new ListingHandler. aiService may be nil when
// no API key is configured.
func NewListingHandler(listingService *services.ListingService, aiService *services.AIService) *ListingHandler {
	return &ListingHandler{
		listingService: listingService,
		aiService:      aiService,
	}
}

// ListListings returns listings matching the optional city, property type,
// and price filters. Open to anonymous callers.
func (h *ListingHandler) ListListings(c *gin.Context) {
	listings, err := h.listingService.ListListings(services.ListListingsInput{
		City:         c.Query("city"),
		PropertyType: c.Query("property_type"),
		PriceMin:     c.Query("price_min"),
		PriceMax:     c.Query("price_max"),
		Sort:         c.Query("sort"),
	})
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch listings")
		return
	}

	c.JSON(http.StatusOK, dto.ToListingListResponse(listings))
}

// GetListing returns a specific listing by ID
func (h *ListingHandler) GetListing(c *gin.Context) {
	listing, err := h.listingService.GetListing(c.Param("id"))
	if err != nil {
		respondListingError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListingDTO(*listing))
}

// CreateListing publishes a listing owned by the caller.
func (h *ListingHandler) CreateListing(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	type CreateListingRequest struct {
		Title              string          `json:"title" binding:"required"`
		City               string          `json:"city" binding:"required"`
		Address            string          `json:"address" binding:"required"`
		Rent               int             `json:"rent" binding:"required"`
		Deposit            *int            `json:"deposit"`
		MoveInDate         string          `json:"move_in_date" binding:"required"`
		Amenities          json.RawMessage `json:"amenities"`
		PropertyType       string          `json:"property_type" binding:"required"`
		Image              string          `json:"image"`
		Description        string          `json:"description" binding:"required"`
		HouseRules         *string         `json:"house_rules"`
		ContactPreferences *string         `json:"contact_preferences"`
	}

	var req CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	listing, err := h.listingService.CreateListing(services.CreateListingInput{
		Title:              req.Title,
		City:               req.City,
		Address:            req.Address,
		Rent:               req.Rent,
		Deposit:            req.Deposit,
		MoveInDate:         req.MoveInDate,
		Amenities:          encodeStoredText(req.Amenities),
		PropertyType:       req.PropertyType,
		Image:              req.Image,
		Description:        req.Description,
		HouseRules:         req.HouseRules,
		ContactPreferences: req.ContactPreferences,
		OwnerID:            userID,
	})
	if err != nil {
		respondListingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToListingDTO(*listing))
}

// DeleteListing removes the caller's listing.
func (h *ListingHandler) DeleteListing(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	if err := h.listingService.DeleteListing(c.Param("id"), userID); err != nil {
		respondListingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// MyListings returns the caller's own listings.
func (h *ListingHandler) MyListings(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	listings, err := h.listingService.MyListings(userID)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch listings")
		return
	}

	c.JSON(http.StatusOK, dto.ToListingListResponse(listings))
}

// SuggestDescription drafts a listing description with the AI service.
func (h *ListingHandler) SuggestDescription(c *gin.Context) {
	if h.aiService == nil {
		apierrors.ServiceUnavailable(c, "Description suggestions are not configured")
		return
	}

	type SuggestRequest struct {
		Title        string   `json:"title" binding:"required"`
		City         string   `json:"city" binding:"required"`
		PropertyType string   `json:"property_type" binding:"required"`
		Amenities    []string `json:"amenities"`
	}

	var req SuggestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	description, err := h.aiService.SuggestListingDescription(c.Request.Context(), services.DescriptionInput{
		Title:        req.Title,
		City:         req.City,
		PropertyType: req.PropertyType,
		Amenities:    req.Amenities,
	})
	if err != nil {
		apierrors.ServiceUnavailable(c, "Failed to generate description")
		return
	}

	c.JSON(http.StatusOK, gin.H{"description": description})
}

func respondListingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrListingNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrNotListingOwner):
		apierrors.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrInvalidRent),
		errors.Is(err, services.ErrInvalidPropertyType):
		apierrors.BadRequest(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}

// encodeStoredText normalizes a client field that may be a JSON array/object
// or a pre-encoded string into the stored text form.
func encodeStoredText(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}
