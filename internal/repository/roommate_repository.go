package repository

import (
	"github.com/roomies-app/roomies-api/internal/database"
	"github.com/roomies-app/roomies-api/internal/models"
	"gorm.io/gorm"
)

// GormRoommateRepository is a GORM implementation of RoommateRepository
type GormRoommateRepository struct {
	db *gorm.DB
}

// NewRoommateRepository creates a new RoommateRepository
func NewRoommateRepository(db *gorm.DB) RoommateRepository {
	return &GormRoommateRepository{db: db}
}

// Create creates a new roommate profile. A second profile for the same user
// trips the unique index on user_id and surfaces as ErrDuplicate.
func (r *GormRoommateRepository) Create(roommate *models.Roommate) error {
	return translate(r.db.Create(roommate).Error)
}

// FindByID finds a roommate profile by ID
func (r *GormRoommateRepository) FindByID(id string) (*models.Roommate, error) {
	var roommate models.Roommate
	if err := r.db.First(&roommate, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &roommate, nil
}

// FindByUserID finds the profile owned by a user, if any
func (r *GormRoommateRepository) FindByUserID(userID string) (*models.Roommate, error) {
	var roommate models.Roommate
	if err := r.db.Where("user_id = ?", userID).First(&roommate).Error; err != nil {
		return nil, translate(err)
	}
	return &roommate, nil
}

// List retrieves roommate profiles matching the store-level filter
func (r *GormRoommateRepository) List(filter RoommateFilter) ([]models.Roommate, error) {
	var roommates []models.Roommate

	err := r.db.Model(&models.Roommate{}).
		Scopes(
			database.CityContains(filter.City),
			database.AgeBetween(filter.AgeMin, filter.AgeMax),
		).
		Find(&roommates).Error
	if err != nil {
		return nil, translate(err)
	}
	return roommates, nil
}

// Delete removes a roommate profile and its favourite edges in one transaction.
func (r *GormRoommateRepository) Delete(id string) error {
	return translate(r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("roommate_id = ?", id).Delete(&models.FavouriteRoommate{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Roommate{}, "id = ?", id).Error
	}))
}
