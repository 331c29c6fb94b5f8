package repository

import (
	"github.com/roomies-app/roomies-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormFavouriteRepository is a GORM implementation of FavouriteRepository
type GormFavouriteRepository struct {
	db *gorm.DB
}

// NewFavouriteRepository creates a new FavouriteRepository
func NewFavouriteRepository(db *gorm.DB) FavouriteRepository {
	return &GormFavouriteRepository{db: db}
}

// AddListing records a favourite listing edge; duplicate adds are no-ops.
func (r *GormFavouriteRepository) AddListing(userID, listingID string) error {
	fav := models.FavouriteListing{UserID: userID, ListingID: listingID}
	return translate(r.db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "listing_id"}},
			DoNothing: true,
		}).
		Create(&fav).Error)
}

// RemoveListing removes a favourite listing edge; removing an absent edge is
// a no-op.
func (r *GormFavouriteRepository) RemoveListing(userID, listingID string) error {
	return translate(r.db.
		Where("user_id = ? AND listing_id = ?", userID, listingID).
		Delete(&models.FavouriteListing{}).Error)
}

// ListingIDs returns the ids of a user's favourite listings
func (r *GormFavouriteRepository) ListingIDs(userID string) ([]string, error) {
	var ids []string
	err := r.db.Model(&models.FavouriteListing{}).
		Where("user_id = ?", userID).
		Pluck("listing_id", &ids).Error
	if err != nil {
		return nil, translate(err)
	}
	return ids, nil
}

// Listings resolves a user's favourite listings. The join naturally drops
// edges whose listing no longer exists.
func (r *GormFavouriteRepository) Listings(userID string) ([]models.Listing, error) {
	var listings []models.Listing
	err := r.db.Model(&models.Listing{}).
		Joins("JOIN favourite_listings ON favourite_listings.listing_id = listings.id").
		Where("favourite_listings.user_id = ?", userID).
		Find(&listings).Error
	if err != nil {
		return nil, translate(err)
	}
	return listings, nil
}

// HasListing reports whether the edge exists
func (r *GormFavouriteRepository) HasListing(userID, listingID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.FavouriteListing{}).
		Where("user_id = ? AND listing_id = ?", userID, listingID).
		Count(&count).Error
	if err != nil {
		return false, translate(err)
	}
	return count > 0, nil
}

// AddRoommate records a favourite roommate edge; duplicate adds are no-ops.
func (r *GormFavouriteRepository) AddRoommate(userID, roommateID string) error {
	fav := models.FavouriteRoommate{UserID: userID, RoommateID: roommateID}
	return translate(r.db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "roommate_id"}},
			DoNothing: true,
		}).
		Create(&fav).Error)
}

// RemoveRoommate removes a favourite roommate edge; removing an absent edge
// is a no-op.
func (r *GormFavouriteRepository) RemoveRoommate(userID, roommateID string) error {
	return translate(r.db.
		Where("user_id = ? AND roommate_id = ?", userID, roommateID).
		Delete(&models.FavouriteRoommate{}).Error)
}

// RoommateIDs returns the ids of a user's favourite roommate profiles
func (r *GormFavouriteRepository) RoommateIDs(userID string) ([]string, error) {
	var ids []string
	err := r.db.Model(&models.FavouriteRoommate{}).
		Where("user_id = ?", userID).
		Pluck("roommate_id", &ids).Error
	if err != nil {
		return nil, translate(err)
	}
	return ids, nil
}

// Roommates resolves a user's favourite roommate profiles, dropping edges
// whose profile no longer exists.
func (r *GormFavouriteRepository) Roommates(userID string) ([]models.Roommate, error) {
	var roommates []models.Roommate
	err := r.db.Model(&models.Roommate{}).
		Joins("JOIN favourite_roommates ON favourite_roommates.roommate_id = roommates.id").
		Where("favourite_roommates.user_id = ?", userID).
		Find(&roommates).Error
	if err != nil {
		return nil, translate(err)
	}
	return roommates, nil
}

// HasRoommate reports whether the edge exists
func (r *GormFavouriteRepository) HasRoommate(userID, roommateID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.FavouriteRoommate{}).
		Where("user_id = ? AND roommate_id = ?", userID, roommateID).
		Count(&count).Error
	if err != nil {
		return false, translate(err)
	}
	return count > 0, nil
}
