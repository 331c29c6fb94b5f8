package repository

import (
	"strings"

	"github.com/roomies-app/roomies-api/internal/database"
	"github.com/roomies-app/roomies-api/internal/models"
	"gorm.io/gorm"
)

// GormListingRepository is a GORM implementation of ListingRepository
type GormListingRepository struct {
	db *gorm.DB
}

// NewListingRepository creates a new ListingRepository
func NewListingRepository(db *gorm.DB) ListingRepository {
	return &GormListingRepository{db: db}
}

// Create creates a new listing
func (r *GormListingRepository) Create(listing *models.Listing) error {
	return translate(r.db.Create(listing).Error)
}

// FindByID finds a listing by ID
func (r *GormListingRepository) FindByID(id string) (*models.Listing, error) {
	var listing models.Listing
	if err := r.db.First(&listing, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &listing, nil
}

// List retrieves listings matching the filter, newest first
func (r *GormListingRepository) List(filter ListingFilter) ([]models.Listing, error) {
	var listings []models.Listing

	query := r.db.Model(&models.Listing{}).
		Scopes(
			database.CityContains(filter.City),
			database.OwnedBy("owner_id", filter.OwnerID),
		)

	if filter.PropertyType != "" {
		query = query.Where("LOWER(property_type) = ?", strings.ToLower(filter.PropertyType))
	}

	if err := query.Order("created_at DESC").Find(&listings).Error; err != nil {
		return nil, translate(err)
	}
	return listings, nil
}

// Delete removes a listing and its favourite edges in one transaction.
func (r *GormListingRepository) Delete(id string) error {
	return translate(r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("listing_id = ?", id).Delete(&models.FavouriteListing{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Listing{}, "id = ?", id).Error
	}))
}
