package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/roomies-app/roomies-api/internal/constants"
	"github.com/roomies-app/roomies-api/internal/models"
	"github.com/roomies-app/roomies-api/internal/repository"
)

var (
	ErrListingNotFound     = errors.New("listing not found")
	ErrNotListingOwner     = errors.New("only the listing owner can perform this action")
	ErrInvalidRent         = errors.New("rent must be a positive amount")
	ErrInvalidPropertyType = errors.New("property type must be Apartment, Townhome, or House")
)

// ListingService handles listing business logic.
type ListingService struct {
	listingRepo repository.ListingRepository
}

// NewListingService creates a new ListingService.
func NewListingService(listingRepo repository.ListingRepository) *ListingService {
	return &ListingService{
		listingRepo: listingRepo,
	}
}

// Sort orders for listings. Anything else keeps the store's newest-first
// order.
const (
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
)

// ListListingsInput carries the raw query filters. Price bounds are strings
// straight off the query; non-numeric values count as absent rather than
// being rejected.
type ListListingsInput struct {
	City         string
	PropertyType string
	PriceMin     string
	PriceMax     string
	Sort         string
}

// ListListings returns listings matching the optional filters. Absent
// filters pass everything; provided ones compose by conjunction. City and
// property type resolve at the store; the price bounds test rent inclusively.
func (s *ListingService) ListListings(input ListListingsInput) ([]models.Listing, error) {
	listings, err := s.listingRepo.List(repository.ListingFilter{
		City:         input.City,
		PropertyType: input.PropertyType,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list listings: %w", err)
	}

	priceLo := parseOptionalInt(input.PriceMin)
	priceHi := parseOptionalInt(input.PriceMax)
	if priceLo != nil || priceHi != nil {
		filtered := make([]models.Listing, 0, len(listings))
		for _, listing := range listings {
			if priceLo != nil && listing.Rent < *priceLo {
				continue
			}
			if priceHi != nil && listing.Rent > *priceHi {
				continue
			}
			filtered = append(filtered, listing)
		}
		listings = filtered
	}

	sortListings(listings, input.Sort)
	return listings, nil
}

// GetListing retrieves a single listing by id.
func (s *ListingService) GetListing(id string) (*models.Listing, error) {
	listing, err := s.listingRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, fmt.Errorf("failed to find listing: %w", err)
	}
	return listing, nil
}

// MyListings returns the listings owned by the caller.
func (s *ListingService) MyListings(userID string) ([]models.Listing, error) {
	listings, err := s.listingRepo.List(repository.ListingFilter{OwnerID: userID})
	if err != nil {
		return nil, fmt.Errorf("failed to list listings: %w", err)
	}
	return listings, nil
}

// CreateListingInput represents input for publishing a listing. Amenities
// arrives pre-encoded as the stored text form.
type CreateListingInput struct {
	Title              string
	City               string
	Address            string
	Rent               int
	Deposit            *int
	MoveInDate         string
	Amenities          string
	PropertyType       string
	Image              string
	Description        string
	HouseRules         *string
	ContactPreferences *string
	OwnerID            string
}

// CreateListing publishes a listing owned by the caller.
func (s *ListingService) CreateListing(input CreateListingInput) (*models.Listing, error) {
	if input.Rent <= 0 {
		return nil, ErrInvalidRent
	}
	if !models.ValidPropertyType(input.PropertyType) {
		return nil, ErrInvalidPropertyType
	}

	image := strings.TrimSpace(input.Image)
	if image == "" {
		image = constants.DefaultListingImage
	}
	amenities := input.Amenities
	if amenities == "" {
		amenities = "[]"
	}

	listing := &models.Listing{
		Title:              input.Title,
		City:               input.City,
		Address:            input.Address,
		Rent:               input.Rent,
		Deposit:            input.Deposit,
		MoveInDate:         input.MoveInDate,
		Amenities:          amenities,
		PropertyType:       canonicalPropertyType(input.PropertyType),
		Image:              image,
		Description:        input.Description,
		OwnerID:            input.OwnerID,
		HouseRules:         input.HouseRules,
		ContactPreferences: input.ContactPreferences,
	}

	if err := s.listingRepo.Create(listing); err != nil {
		return nil, fmt.Errorf("failed to create listing: %w", err)
	}
	return listing, nil
}

// DeleteListing removes a listing. Only the owner may delete; the favourite
// edges go with it.
func (s *ListingService) DeleteListing(id, callerID string) error {
	listing, err := s.listingRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrListingNotFound
		}
		return fmt.Errorf("failed to find listing: %w", err)
	}

	if listing.OwnerID != callerID {
		return ErrNotListingOwner
	}

	if err := s.listingRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete listing: %w", err)
	}
	return nil
}

func sortListings(listings []models.Listing, order string) {
	switch order {
	case SortPriceAsc:
		sort.SliceStable(listings, func(i, j int) bool {
			return listings[i].Rent < listings[j].Rent
		})
	case SortPriceDesc:
		sort.SliceStable(listings, func(i, j int) bool {
			return listings[i].Rent > listings[j].Rent
		})
	}
}

func canonicalPropertyType(t string) models.PropertyType {
	for _, pt := range []models.PropertyType{
		models.PropertyTypeApartment,
		models.PropertyTypeTownhome,
		models.PropertyTypeHouse,
	} {
		if strings.EqualFold(t, string(pt)) {
			return pt
		}
	}
	return models.PropertyType(t)
}
