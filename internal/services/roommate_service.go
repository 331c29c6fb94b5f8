package services

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/roomies-app/roomies-api/internal/constants"
	"github.com/roomies-app/roomies-api/internal/lifestyle"
	"github.com/roomies-app/roomies-api/internal/models"
	"github.com/roomies-app/roomies-api/internal/repository"
)

var (
	ErrRoommateNotFound = errors.New("roommate profile not found")
	ErrNotProfileOwner  = errors.New("only the profile owner can perform this action")
	ErrProfileExists    = errors.New("you already have a roommate profile, only one per account")
	ErrInvalidAge       = errors.New("age must be between 18 and 99")
	ErrInvalidBudget    = errors.New("budget minimum cannot exceed budget maximum")
)

// Sort orders for roommate listings. Anything else keeps store order, which
// is insertion order (the roommates table carries no created-at column).
const (
	SortBudgetAsc  = "budget_asc"
	SortBudgetDesc = "budget_desc"
	SortAgeAsc     = "age_asc"
	SortAgeDesc    = "age_desc"
)

// RoommateService handles roommate profile business logic.
type RoommateService struct {
	roommateRepo repository.RoommateRepository
}

// NewRoommateService creates a new RoommateService.
func NewRoommateService(roommateRepo repository.RoommateRepository) *RoommateService {
	return &RoommateService{
		roommateRepo: roommateRepo,
	}
}

// ListRoommatesInput carries the raw query filters. Age and budget values
// are strings straight off the query; non-numeric values count as absent
// rather than being rejected.
type ListRoommatesInput struct {
	City           string
	AgeMin         string
	AgeMax         string
	FoodPreference string
	Smoker         string
	Alcohol        string
	Gender         string
	BudgetMin      string
	BudgetMax      string
	Sort           string
}

// ListRoommates returns the profiles satisfying every provided predicate.
// City and age bounds resolve at the store; the lifestyle attribute filters
// match against the decoded payload, so profiles whose stored payload is a
// bare tag list never match a non-empty attribute filter. The budget window
// is an interval-overlap test, not containment.
func (s *RoommateService) ListRoommates(input ListRoommatesInput) ([]models.Roommate, error) {
	filter := repository.RoommateFilter{
		City:   input.City,
		AgeMin: parseOptionalInt(input.AgeMin),
		AgeMax: parseOptionalInt(input.AgeMax),
	}

	roommates, err := s.roommateRepo.List(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list roommates: %w", err)
	}

	attrFilters := map[string]string{
		"foodPreference": strings.TrimSpace(input.FoodPreference),
		"smoker":         strings.TrimSpace(input.Smoker),
		"alcohol":        strings.TrimSpace(input.Alcohol),
		"gender":         strings.TrimSpace(input.Gender),
	}
	budgetLo := parseOptionalInt(input.BudgetMin)
	budgetHi := parseOptionalInt(input.BudgetMax)

	result := make([]models.Roommate, 0, len(roommates))
	for _, roommate := range roommates {
		prefs := lifestyle.Decode(roommate.LifestylePreferences)
		matched := true
		for field, want := range attrFilters {
			if !prefs.Matches(field, want) {
				matched = false
				break
			}
		}
		if !matched {
			continue
		}
		if budgetLo != nil && roommate.BudgetMax < *budgetLo {
			continue
		}
		if budgetHi != nil && roommate.BudgetMin > *budgetHi {
			continue
		}
		result = append(result, roommate)
	}

	sortRoommates(result, input.Sort)
	return result, nil
}

// GetRoommate retrieves a single profile by id.
func (s *RoommateService) GetRoommate(id string) (*models.Roommate, error) {
	roommate, err := s.roommateRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRoommateNotFound
		}
		return nil, fmt.Errorf("failed to find roommate: %w", err)
	}
	return roommate, nil
}

// MyProfile returns the caller's roommate profile.
func (s *RoommateService) MyProfile(userID string) (*models.Roommate, error) {
	roommate, err := s.roommateRepo.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRoommateNotFound
		}
		return nil, fmt.Errorf("failed to find roommate profile: %w", err)
	}
	return roommate, nil
}

// CreateRoommateInput represents input for creating a profile.
// LifestylePreferences arrives pre-encoded as the stored text form.
type CreateRoommateInput struct {
	UserID               string
	Name                 string
	Age                  int
	Occupation           string
	City                 string
	BudgetMin            int
	BudgetMax            int
	MoveInDate           string
	LifestylePreferences string
	Bio                  string
	ProfileImage         string
}

// CreateRoommate creates the caller's profile. At most one profile per
// account: the existence check gives the friendly conflict, and the unique
// index on user_id catches the concurrent duplicate the check can miss.
func (s *RoommateService) CreateRoommate(input CreateRoommateInput) (*models.Roommate, error) {
	if input.Age < constants.MinRoommateAge || input.Age > constants.MaxRoommateAge {
		return nil, ErrInvalidAge
	}
	if input.BudgetMin > input.BudgetMax {
		return nil, ErrInvalidBudget
	}

	if _, err := s.roommateRepo.FindByUserID(input.UserID); err == nil {
		return nil, ErrProfileExists
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing profile: %w", err)
	}

	image := strings.TrimSpace(input.ProfileImage)
	if image == "" {
		image = constants.DefaultProfileImage
	}
	prefs := input.LifestylePreferences
	if prefs == "" {
		prefs = "[]"
	}

	userID := input.UserID
	roommate := &models.Roommate{
		UserID:               &userID,
		Name:                 input.Name,
		Age:                  input.Age,
		Occupation:           input.Occupation,
		City:                 input.City,
		BudgetMin:            input.BudgetMin,
		BudgetMax:            input.BudgetMax,
		MoveInDate:           input.MoveInDate,
		LifestylePreferences: prefs,
		Bio:                  input.Bio,
		ProfileImage:         image,
	}

	if err := s.roommateRepo.Create(roommate); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrProfileExists
		}
		return nil, fmt.Errorf("failed to create roommate profile: %w", err)
	}
	return roommate, nil
}

// DeleteRoommate removes a profile. Only the owning account may delete;
// seeded profiles have no owner and cannot be deleted through the API.
func (s *RoommateService) DeleteRoommate(id, callerID string) error {
	roommate, err := s.roommateRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrRoommateNotFound
		}
		return fmt.Errorf("failed to find roommate: %w", err)
	}

	if roommate.UserID == nil || *roommate.UserID != callerID {
		return ErrNotProfileOwner
	}

	if err := s.roommateRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete roommate profile: %w", err)
	}
	return nil
}

func parseOptionalInt(raw string) *int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &n
}

func sortRoommates(roommates []models.Roommate, order string) {
	switch order {
	case SortBudgetAsc:
		sort.SliceStable(roommates, func(i, j int) bool {
			return roommates[i].BudgetMin < roommates[j].BudgetMin
		})
	case SortBudgetDesc:
		// budget_asc ranks by the low end, budget_desc by the high end.
		sort.SliceStable(roommates, func(i, j int) bool {
			return roommates[i].BudgetMax > roommates[j].BudgetMax
		})
	case SortAgeAsc:
		sort.SliceStable(roommates, func(i, j int) bool {
			return roommates[i].Age < roommates[j].Age
		})
	case SortAgeDesc:
		sort.SliceStable(roommates, func(i, j int) bool {
			return roommates[i].Age > roommates[j].Age
		})
	}
}
