package dto

import (
	"github.com/roomies-app/roomies-api/internal/lifestyle"
	"github.com/roomies-app/roomies-api/internal/models"
)

// LifestyleDTO is the decoded lifestyle payload in API responses: always a
// tag list, plus the structured attributes when the stored payload has them.
type LifestyleDTO struct {
	Tags            []string `json:"tags"`
	OvernightGuests string   `json:"overnight_guests,omitempty"`
	PartyHabits     string   `json:"party_habits,omitempty"`
	SleepSchedule   string   `json:"sleep_schedule,omitempty"`
	FoodPreference  string   `json:"food_preference,omitempty"`
	Smoker          string   `json:"smoker,omitempty"`
	WorkSchedule    string   `json:"work_schedule,omitempty"`
	Gender          string   `json:"gender,omitempty"`
	Alcohol         string   `json:"alcohol,omitempty"`
}

// RoommateDTO represents a roommate profile in API responses.
type RoommateDTO struct {
	ID           string       `json:"id"`
	UserID       *string      `json:"user_id"`
	Name         string       `json:"name"`
	Age          int          `json:"age"`
	Occupation   string       `json:"occupation"`
	City         string       `json:"city"`
	BudgetMin    int          `json:"budget_min"`
	BudgetMax    int          `json:"budget_max"`
	MoveInDate   string       `json:"move_in_date"`
	Lifestyle    LifestyleDTO `json:"lifestyle_preferences"`
	Bio          string       `json:"bio"`
	ProfileImage string       `json:"profile_image"`
}

// RoommateListResponse wraps a roommate collection.
type RoommateListResponse struct {
	Roommates []RoommateDTO `json:"roommates"`
}

// ToRoommateDTO converts a Roommate model to RoommateDTO, decoding the
// stored lifestyle text on the way out.
func ToRoommateDTO(roommate models.Roommate) RoommateDTO {
	prefs := lifestyle.Decode(roommate.LifestylePreferences)

	ls := LifestyleDTO{Tags: prefs.AllTags()}
	if prefs.IsStructured() {
		ls.OvernightGuests = prefs.Structured.OvernightGuests
		ls.PartyHabits = prefs.Structured.PartyHabits
		ls.SleepSchedule = prefs.Structured.SleepSchedule
		ls.FoodPreference = prefs.Structured.FoodPreference
		ls.Smoker = prefs.Structured.Smoker
		ls.WorkSchedule = prefs.Structured.WorkSchedule
		ls.Gender = prefs.Structured.Gender
		ls.Alcohol = prefs.Structured.Alcohol
	}

	return RoommateDTO{
		ID:           roommate.ID,
		UserID:       roommate.UserID,
		Name:         roommate.Name,
		Age:          roommate.Age,
		Occupation:   roommate.Occupation,
		City:         roommate.City,
		BudgetMin:    roommate.BudgetMin,
		BudgetMax:    roommate.BudgetMax,
		MoveInDate:   roommate.MoveInDate,
		Lifestyle:    ls,
		Bio:          roommate.Bio,
		ProfileImage: roommate.ProfileImage,
	}
}

// ToRoommateListResponse converts a slice of roommates to the list response
func ToRoommateListResponse(roommates []models.Roommate) RoommateListResponse {
	items := make([]RoommateDTO, len(roommates))
	for i, roommate := range roommates {
		items[i] = ToRoommateDTO(roommate)
	}
	return RoommateListResponse{Roommates: items}
}
