package models

import "time"

// FavouriteListing is the join row between a user and a saved listing.
// Membership is the whole story: adding an existing pair is a no-op,
// removing an absent pair is a no-op.
type FavouriteListing struct {
	UserID    string    `gorm:"type:varchar(36);primarykey" json:"user_id"`
	ListingID string    `gorm:"type:varchar(36);primarykey" json:"listing_id"`
	CreatedAt time.Time `json:"created_at"`
}

// FavouriteRoommate is the join row between a user and a saved roommate
// profile.
type FavouriteRoommate struct {
	UserID     string    `gorm:"type:varchar(36);primarykey" json:"user_id"`
	RoommateID string    `gorm:"type:varchar(36);primarykey" json:"roommate_id"`
	CreatedAt  time.Time `json:"created_at"`
}
