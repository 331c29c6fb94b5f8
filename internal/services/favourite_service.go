package services

import (
	"errors"
	"fmt"

	"github.com/roomies-app/roomies-api/internal/models"
	"github.com/roomies-app/roomies-api/internal/repository"
)

// FavouriteService maintains each user's saved listings and roommate
// profiles. Adds verify the target exists; removes are blind and idempotent.
type FavouriteService struct {
	favouriteRepo repository.FavouriteRepository
	listingRepo   repository.ListingRepository
	roommateRepo  repository.RoommateRepository
}

// NewFavouriteService creates a new FavouriteService.
func NewFavouriteService(
	favouriteRepo repository.FavouriteRepository,
	listingRepo repository.ListingRepository,
	roommateRepo repository.RoommateRepository,
) *FavouriteService {
	return &FavouriteService{
		favouriteRepo: favouriteRepo,
		listingRepo:   listingRepo,
		roommateRepo:  roommateRepo,
	}
}

// AddListing saves a listing for the user. Saving an already-saved listing
// is a no-op.
func (s *FavouriteService) AddListing(userID, listingID string) error {
	if _, err := s.listingRepo.FindByID(listingID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrListingNotFound
		}
		return fmt.Errorf("failed to find listing: %w", err)
	}
	if err := s.favouriteRepo.AddListing(userID, listingID); err != nil {
		return fmt.Errorf("failed to add favourite listing: %w", err)
	}
	return nil
}

// RemoveListing unsaves a listing; removing one that was never saved is a
// no-op.
func (s *FavouriteService) RemoveListing(userID, listingID string) error {
	if err := s.favouriteRepo.RemoveListing(userID, listingID); err != nil {
		return fmt.Errorf("failed to remove favourite listing: %w", err)
	}
	return nil
}

// ListingIDs returns the ids of the user's saved listings.
func (s *FavouriteService) ListingIDs(userID string) ([]string, error) {
	ids, err := s.favouriteRepo.ListingIDs(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list favourite listing ids: %w", err)
	}
	return ids, nil
}

// Listings resolves the user's saved listings. Ids whose listing has since
// been deleted are dropped, never reported as an error.
func (s *FavouriteService) Listings(userID string) ([]models.Listing, error) {
	listings, err := s.favouriteRepo.Listings(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve favourite listings: %w", err)
	}
	return listings, nil
}

// AddRoommate saves a roommate profile for the user.
func (s *FavouriteService) AddRoommate(userID, roommateID string) error {
	if _, err := s.roommateRepo.FindByID(roommateID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrRoommateNotFound
		}
		return fmt.Errorf("failed to find roommate: %w", err)
	}
	if err := s.favouriteRepo.AddRoommate(userID, roommateID); err != nil {
		return fmt.Errorf("failed to add favourite roommate: %w", err)
	}
	return nil
}

// RemoveRoommate unsaves a roommate profile.
func (s *FavouriteService) RemoveRoommate(userID, roommateID string) error {
	if err := s.favouriteRepo.RemoveRoommate(userID, roommateID); err != nil {
		return fmt.Errorf("failed to remove favourite roommate: %w", err)
	}
	return nil
}

// RoommateIDs returns the ids of the user's saved roommate profiles.
func (s *FavouriteService) RoommateIDs(userID string) ([]string, error) {
	ids, err := s.favouriteRepo.RoommateIDs(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list favourite roommate ids: %w", err)
	}
	return ids, nil
}

// Roommates resolves the user's saved roommate profiles, dropping dangling
// ids.
func (s *FavouriteService) Roommates(userID string) ([]models.Roommate, error) {
	roommates, err := s.favouriteRepo.Roommates(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve favourite roommates: %w", err)
	}
	return roommates, nil
}
