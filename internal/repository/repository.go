package repository

import (
	"errors"

	"github.com/roomies-app/roomies-api/internal/models"
)

// Backend-neutral sentinels. Both the GORM and the in-memory implementations
// translate their storage errors into these so the services never see a
// driver error.
var (
	// ErrNotFound is returned when a looked-up record does not exist.
	ErrNotFound = errors.New("repository: record not found")
	// ErrDuplicate is returned when an insert violates a uniqueness
	// constraint (duplicate email, second roommate profile for a user).
	ErrDuplicate = errors.New("repository: duplicate record")
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id string) (*models.User, error)

	// FindByEmail finds a user by email, case-insensitively
	FindByEmail(email string) (*models.User, error)

	// FindByVerificationToken finds a user by their pending verification token
	FindByVerificationToken(token string) (*models.User, error)

	// MarkEmailVerified flips the verified flag and clears the token
	MarkEmailVerified(id string) error
}

// ListingFilter holds the optional listing query predicates. All provided
// predicates must hold (conjunction).
type ListingFilter struct {
	City         string // case-insensitive substring
	PropertyType string // case-insensitive exact
	OwnerID      string // exact, used for "my listings"
}

// ListingRepository defines the interface for listing data access
type ListingRepository interface {
	// Create creates a new listing
	Create(listing *models.Listing) error

	// FindByID finds a listing by ID
	FindByID(id string) (*models.Listing, error)

	// List retrieves listings matching the filter, newest first
	List(filter ListingFilter) ([]models.Listing, error)

	// Delete removes a listing and its favourite edges
	Delete(id string) error
}

// RoommateFilter holds the store-level roommate query predicates. Lifestyle
// attribute filters operate on the decoded payload and live in the service.
type RoommateFilter struct {
	City   string // case-insensitive substring
	AgeMin *int   // inclusive
	AgeMax *int   // inclusive
}

// RoommateRepository defines the interface for roommate profile data access
type RoommateRepository interface {
	// Create creates a new roommate profile
	Create(roommate *models.Roommate) error

	// FindByID finds a roommate profile by ID
	FindByID(id string) (*models.Roommate, error)

	// FindByUserID finds the profile owned by a user, if any
	FindByUserID(userID string) (*models.Roommate, error)

	// List retrieves roommate profiles matching the filter
	List(filter RoommateFilter) ([]models.Roommate, error)

	// Delete removes a roommate profile and its favourite edges
	Delete(id string) error
}

// FavouriteRepository maintains the user↔listing and user↔roommate
// favourite relations. Add and Remove are idempotent: adding an existing
// pair and removing an absent one are no-ops, never errors.
type FavouriteRepository interface {
	// AddListing records a favourite listing edge
	AddListing(userID, listingID string) error

	// RemoveListing removes a favourite listing edge
	RemoveListing(userID, listingID string) error

	// ListingIDs returns the ids of a user's favourite listings
	ListingIDs(userID string) ([]string, error)

	// Listings resolves a user's favourite listings, dropping dangling ids
	Listings(userID string) ([]models.Listing, error)

	// HasListing reports whether the edge exists
	HasListing(userID, listingID string) (bool, error)

	// AddRoommate records a favourite roommate edge
	AddRoommate(userID, roommateID string) error

	// RemoveRoommate removes a favourite roommate edge
	RemoveRoommate(userID, roommateID string) error

	// RoommateIDs returns the ids of a user's favourite roommate profiles
	RoommateIDs(userID string) ([]string, error)

	// Roommates resolves a user's favourite roommate profiles, dropping
	// dangling ids
	Roommates(userID string) ([]models.Roommate, error)

	// HasRoommate reports whether the edge exists
	HasRoommate(userID, roommateID string) (bool, error)
}
