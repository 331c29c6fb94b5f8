package dto

import (
	"encoding/json"
	"time"

	"github.com/roomies-app/roomies-api/internal/models"
)

// ListingDTO represents a listing in API responses. Amenities is decoded
// from its stored text form; unreadable text decodes to an empty list.
type ListingDTO struct {
	ID                 string    `json:"id"`
	Title              string    `json:"title"`
	City               string    `json:"city"`
	Address            string    `json:"address"`
	Rent               int       `json:"rent"`
	Deposit            *int      `json:"deposit"`
	MoveInDate         string    `json:"move_in_date"`
	Amenities          []string  `json:"amenities"`
	PropertyType       string    `json:"property_type"`
	Image              string    `json:"image"`
	Description        string    `json:"description"`
	OwnerID            string    `json:"owner_id"`
	HouseRules         *string   `json:"house_rules,omitempty"`
	ContactPreferences *string   `json:"contact_preferences,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}

// ListingListResponse wraps a listing collection.
type ListingListResponse struct {
	Listings []ListingDTO `json:"listings"`
}

// ToListingDTO converts a Listing model to ListingDTO
func ToListingDTO(listing models.Listing) ListingDTO {
	return ListingDTO{
		ID:                 listing.ID,
		Title:              listing.Title,
		City:               listing.City,
		Address:            listing.Address,
		Rent:               listing.Rent,
		Deposit:            listing.Deposit,
		MoveInDate:         listing.MoveInDate,
		Amenities:          decodeStringList(listing.Amenities),
		PropertyType:       string(listing.PropertyType),
		Image:              listing.Image,
		Description:        listing.Description,
		OwnerID:            listing.OwnerID,
		HouseRules:         listing.HouseRules,
		ContactPreferences: listing.ContactPreferences,
		CreatedAt:          listing.CreatedAt,
	}
}

// ToListingListResponse converts a slice of listings to the list response
func ToListingListResponse(listings []models.Listing) ListingListResponse {
	items := make([]ListingDTO, len(listings))
	for i, listing := range listings {
		items[i] = ToListingDTO(listing)
	}
	return ListingListResponse{Listings: items}
}

// decodeStringList reads a JSON string array out of stored text; malformed
// text reads as empty rather than erroring.
func decodeStringList(text string) []string {
	var list []string
	if err := json.Unmarshal([]byte(text), &list); err != nil || list == nil {
		return []string{}
	}
	return list
}
