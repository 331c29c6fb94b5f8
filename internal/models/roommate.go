package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Roommate is a "Be a Roommater" profile. UserID is nil for seeded demo
// profiles that no account owns; when set it is unique, so an account holds
// at most one profile. The schema has no created-at column, so "newest"
// ordering for roommates is insertion order.
type Roommate struct {
	ID                   string  `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID               *string `gorm:"type:varchar(36);uniqueIndex" json:"user_id"`
	Name                 string  `gorm:"type:varchar(255);not null" json:"name"`
	Age                  int     `gorm:"not null" json:"age"`
	Occupation           string  `gorm:"type:varchar(255);not null" json:"occupation"`
	City                 string  `gorm:"type:varchar(255);not null;index" json:"city"`
	BudgetMin            int     `gorm:"not null" json:"budget_min"`
	BudgetMax            int     `gorm:"not null" json:"budget_max"`
	MoveInDate           string  `gorm:"type:varchar(32);not null" json:"move_in_date"`
	LifestylePreferences string  `gorm:"type:text;not null" json:"lifestyle_preferences"` // JSON as string, schema-on-read
	Bio                  string  `gorm:"type:text;not null" json:"bio"`
	ProfileImage         string  `gorm:"not null" json:"profile_image"`
}

func (r *Roommate) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
