package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PropertyType string

const (
	PropertyTypeApartment PropertyType = "Apartment"
	PropertyTypeTownhome  PropertyType = "Townhome"
	PropertyTypeHouse     PropertyType = "House"
)

// ValidPropertyType reports whether t matches one of the known property
// types, ignoring case.
func ValidPropertyType(t string) bool {
	switch {
	case strings.EqualFold(t, string(PropertyTypeApartment)),
		strings.EqualFold(t, string(PropertyTypeTownhome)),
		strings.EqualFold(t, string(PropertyTypeHouse)):
		return true
	}
	return false
}

type Listing struct {
	ID                 string       `gorm:"type:varchar(36);primarykey" json:"id"`
	Title              string       `gorm:"not null" json:"title"`
	City               string       `gorm:"type:varchar(255);not null;index" json:"city"`
	Address            string       `gorm:"not null" json:"address"`
	Rent               int          `gorm:"not null" json:"rent"`
	Deposit            *int         `json:"deposit"`
	MoveInDate         string       `gorm:"type:varchar(32);not null" json:"move_in_date"`
	Amenities          string       `gorm:"type:text;not null" json:"amenities"` // JSON array as string
	PropertyType       PropertyType `gorm:"type:varchar(20);not null" json:"property_type"`
	Image              string       `gorm:"not null" json:"image"`
	Description        string       `gorm:"type:text;not null" json:"description"`
	OwnerID            string       `gorm:"type:varchar(36);not null;index" json:"owner_id"`
	HouseRules         *string      `gorm:"type:text" json:"house_rules"`
	ContactPreferences *string      `gorm:"type:text" json:"contact_preferences"`
	CreatedAt          time.Time    `json:"created_at"`

	// Relations
	Owner User `gorm:"foreignKey:OwnerID" json:"-"`
}

func (l *Listing) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}
