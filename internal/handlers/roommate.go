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

// RoommateHandler coordinates roommate profile HTTP handlers.
type RoommateHandler struct {
	roommateService *services.RoommateService
}

// NewRoommateHandler creates a new RoommateHandler.
func NewRoommateHandler(roommateService *services.RoommateService) *RoommateHandler {
	return &RoommateHandler{
		roommateService: roommateService,
	}
}

// ListRoommates returns profiles matching the optional filters. Open to
// anonymous callers.
func (h *RoommateHandler) ListRoommates(c *gin.Context) {
	roommates, err := h.roommateService.ListRoommates(services.ListRoommatesInput{
		City:           c.Query("city"),
		AgeMin:         c.Query("age_min"),
		AgeMax:         c.Query("age_max"),
		FoodPreference: c.Query("food_preference"),
		Smoker:         c.Query("smoker"),
		Alcohol:        c.Query("alcohol"),
		Gender:         c.Query("gender"),
		BudgetMin:      c.Query("budget_min"),
		BudgetMax:      c.Query("budget_max"),
		Sort:           c.Query("sort"),
	})
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch roommates")
		return
	}

	c.JSON(http.StatusOK, dto.ToRoommateListResponse(roommates))
}

// GetRoommate returns a specific profile by ID
func (h *RoommateHandler) GetRoommate(c *gin.Context) {
	roommate, err := h.roommateService.GetRoommate(c.Param("id"))
	if err != nil {
		respondRoommateError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRoommateDTO(*roommate))
}

// CreateRoommate creates the caller's "Be a Roommater" profile.
func (h *RoommateHandler) CreateRoommate(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	type CreateRoommateRequest struct {
		// Age and budget_min skip the required binding: it treats an
		// explicit 0 as absent, and a $0 budget minimum is valid. The
		// service validates the numeric ranges.
		Name                 string          `json:"name" binding:"required"`
		Age                  int             `json:"age"`
		Occupation           string          `json:"occupation" binding:"required"`
		City                 string          `json:"city" binding:"required"`
		BudgetMin            int             `json:"budget_min"`
		BudgetMax            int             `json:"budget_max" binding:"required"`
		MoveInDate           string          `json:"move_in_date" binding:"required"`
		LifestylePreferences json.RawMessage `json:"lifestyle_preferences"`
		Bio                  string          `json:"bio" binding:"required"`
		ProfileImage         string          `json:"profile_image"`
	}

	var req CreateRoommateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	roommate, err := h.roommateService.CreateRoommate(services.CreateRoommateInput{
		UserID:               userID,
		Name:                 req.Name,
		Age:                  req.Age,
		Occupation:           req.Occupation,
		City:                 req.City,
		BudgetMin:            req.BudgetMin,
		BudgetMax:            req.BudgetMax,
		MoveInDate:           req.MoveInDate,
		LifestylePreferences: encodeStoredText(req.LifestylePreferences),
		Bio:                  req.Bio,
		ProfileImage:         req.ProfileImage,
	})
	if err != nil {
		respondRoommateError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToRoommateDTO(*roommate))
}

// DeleteRoommate removes the caller's profile.
func (h *RoommateHandler) DeleteRoommate(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	if err := h.roommateService.DeleteRoommate(c.Param("id"), userID); err != nil {
		respondRoommateError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// MyProfile returns the caller's profile, or null when none exists.
func (h *RoommateHandler) MyProfile(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	roommate, err := h.roommateService.MyProfile(userID)
	if err != nil {
		if errors.Is(err, services.ErrRoommateNotFound) {
			c.JSON(http.StatusOK, gin.H{"roommate": nil})
			return
		}
		apierrors.InternalError(c, "Failed to fetch roommate profile")
		return
	}

	c.JSON(http.StatusOK, gin.H{"roommate": dto.ToRoommateDTO(*roommate)})
}

func respondRoommateError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrRoommateNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrNotProfileOwner):
		apierrors.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrProfileExists):
		apierrors.Conflict(c, err.Error())
	case errors.Is(err, services.ErrInvalidAge),
		errors.Is(err, services.ErrInvalidBudget):
		apierrors.BadRequest(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
