package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/roomies-app/roomies-api/internal/dto"
	apierrors "github.com/roomies-app/roomies-api/internal/errors"
	"github.com/roomies-app/roomies-api/internal/middleware"
	"github.com/roomies-app/roomies-api/internal/services"
)

// FavouriteHandler coordinates the caller-scoped favourites endpoints. All
// of them sit behind RequireAuth; the session identity is the scope.
type FavouriteHandler struct {
	favouriteService *services.FavouriteService
}

// NewFavouriteHandler creates a new FavouriteHandler.
func NewFavouriteHandler(favouriteService *services.FavouriteService) *FavouriteHandler {
	return &FavouriteHandler{
		favouriteService: favouriteService,
	}
}

// AddListing saves a listing to the caller's favourites.
func (h *FavouriteHandler) AddListing(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	if err := h.favouriteService.AddListing(userID, c.Param("id")); err != nil {
		respondListingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// RemoveListing removes a listing from the caller's favourites. Removing a
// listing that was never saved still succeeds.
func (h *FavouriteHandler) RemoveListing(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	if err := h.favouriteService.RemoveListing(userID, c.Param("id")); err != nil {
		apierrors.InternalError(c, "Failed to remove favourite")
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// ListingIDs returns the ids of the caller's favourite listings.
func (h *FavouriteHandler) ListingIDs(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	ids, err := h.favouriteService.ListingIDs(userID)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch favourites")
		return
	}

	c.JSON(http.StatusOK, gin.H{"ids": ids})
}

// Listings returns the caller's favourite listings, resolved. Favourites of
// since-deleted listings are simply absent.
func (h *FavouriteHandler) Listings(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	listings, err := h.favouriteService.Listings(userID)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch favourites")
		return
	}

	c.JSON(http.StatusOK, dto.ToListingListResponse(listings))
}

// AddRoommate saves a roommate profile to the caller's favourites.
func (h *FavouriteHandler) AddRoommate(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	if err := h.favouriteService.AddRoommate(userID, c.Param("id")); err != nil {
		respondRoommateError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// RemoveRoommate removes a roommate profile from the caller's favourites.
func (h *FavouriteHandler) RemoveRoommate(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	if err := h.favouriteService.RemoveRoommate(userID, c.Param("id")); err != nil {
		apierrors.InternalError(c, "Failed to remove favourite")
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// RoommateIDs returns the ids of the caller's favourite roommate profiles.
func (h *FavouriteHandler) RoommateIDs(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	ids, err := h.favouriteService.RoommateIDs(userID)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch favourites")
		return
	}

	c.JSON(http.StatusOK, gin.H{"ids": ids})
}

// Roommates returns the caller's favourite roommate profiles, resolved.
func (h *FavouriteHandler) Roommates(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	roommates, err := h.favouriteService.Roommates(userID)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch favourites")
		return
	}

	c.JSON(http.StatusOK, dto.ToRoommateListResponse(roommates))
}
