package repository

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/roomies-app/roomies-api/internal/models"
)

// MemoryStore is the map-backed storage backend. It holds every entity kind
// behind a single mutex so cross-entity operations (delete with favourite
// cascade, profile-uniqueness check) are atomic. Selected with
// STORAGE_BACKEND=memory; also used by service tests.
//
// The four repository interfaces are exposed through thin adapters
// (NewMemoryUserRepository etc.) sharing one store.
type MemoryStore struct {
	mu sync.RWMutex

	users     map[string]models.User
	listings  map[string]models.Listing
	roommates map[string]models.Roommate

	// roommateOrder preserves insertion order; the roommates table has no
	// created-at column, so this is the only "newest" ordering there is.
	roommateOrder []string

	favListings  map[string]map[string]bool // userID -> set of listingIDs
	favRoommates map[string]map[string]bool // userID -> set of roommateIDs
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:        make(map[string]models.User),
		listings:     make(map[string]models.Listing),
		roommates:    make(map[string]models.Roommate),
		favListings:  make(map[string]map[string]bool),
		favRoommates: make(map[string]map[string]bool),
	}
}

// --- users ---

func (s *MemoryStore) CreateUser(user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if strings.EqualFold(existing.Email, user.Email) {
			return ErrDuplicate
		}
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	s.users[user.ID] = *user
	return nil
}

func (s *MemoryStore) FindUserByID(id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}

func (s *MemoryStore) FindUserByEmail(email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if strings.EqualFold(user.Email, email) {
			u := user
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) FindUserByVerificationToken(token string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.VerificationToken != nil && *user.VerificationToken == token {
			u := user
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) MarkUserEmailVerified(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return ErrNotFound
	}
	user.EmailVerified = true
	user.VerificationToken = nil
	user.UpdatedAt = time.Now()
	s.users[id] = user
	return nil
}

// --- listings ---

func (s *MemoryStore) CreateListing(listing *models.Listing) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if listing.ID == "" {
		listing.ID = uuid.NewString()
	}
	if listing.CreatedAt.IsZero() {
		listing.CreatedAt = time.Now()
	}
	s.listings[listing.ID] = *listing
	return nil
}

func (s *MemoryStore) FindListingByID(id string) (*models.Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	listing, ok := s.listings[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &listing, nil
}

func (s *MemoryStore) ListListings(filter ListingFilter) ([]models.Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	city := strings.ToLower(strings.TrimSpace(filter.City))
	result := make([]models.Listing, 0)
	for _, listing := range s.listings {
		if city != "" && !strings.Contains(strings.ToLower(listing.City), city) {
			continue
		}
		if filter.PropertyType != "" && !strings.EqualFold(string(listing.PropertyType), filter.PropertyType) {
			continue
		}
		if filter.OwnerID != "" && listing.OwnerID != filter.OwnerID {
			continue
		}
		result = append(result, listing)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (s *MemoryStore) DeleteListing(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.listings, id)
	for _, set := range s.favListings {
		delete(set, id)
	}
	return nil
}

// --- roommates ---

func (s *MemoryStore) CreateRoommate(roommate *models.Roommate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if roommate.UserID != nil {
		for _, existing := range s.roommates {
			if existing.UserID != nil && *existing.UserID == *roommate.UserID {
				return ErrDuplicate
			}
		}
	}
	if roommate.ID == "" {
		roommate.ID = uuid.NewString()
	}
	s.roommates[roommate.ID] = *roommate
	s.roommateOrder = append(s.roommateOrder, roommate.ID)
	return nil
}

func (s *MemoryStore) FindRoommateByID(id string) (*models.Roommate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	roommate, ok := s.roommates[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &roommate, nil
}

func (s *MemoryStore) FindRoommateByUserID(userID string) (*models.Roommate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, roommate := range s.roommates {
		if roommate.UserID != nil && *roommate.UserID == userID {
			r := roommate
			return &r, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) ListRoommates(filter RoommateFilter) ([]models.Roommate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	city := strings.ToLower(strings.TrimSpace(filter.City))
	result := make([]models.Roommate, 0)
	for _, id := range s.roommateOrder {
		roommate, ok := s.roommates[id]
		if !ok {
			continue
		}
		if city != "" && !strings.Contains(strings.ToLower(roommate.City), city) {
			continue
		}
		if filter.AgeMin != nil && roommate.Age < *filter.AgeMin {
			continue
		}
		if filter.AgeMax != nil && roommate.Age > *filter.AgeMax {
			continue
		}
		result = append(result, roommate)
	}
	return result, nil
}

func (s *MemoryStore) DeleteRoommate(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.roommates, id)
	for _, set := range s.favRoommates {
		delete(set, id)
	}
	for i, orderedID := range s.roommateOrder {
		if orderedID == id {
			s.roommateOrder = append(s.roommateOrder[:i], s.roommateOrder[i+1:]...)
			break
		}
	}
	return nil
}

// --- favourites ---

func (s *MemoryStore) AddFavouriteListing(userID, listingID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.favListingSet(userID)[listingID] = true
	return nil
}

func (s *MemoryStore) RemoveFavouriteListing(userID, listingID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.favListingSet(userID), listingID)
	return nil
}

func (s *MemoryStore) FavouriteListingIDs(userID string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.favListings[userID]))
	for id := range s.favListings[userID] {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

func (s *MemoryStore) FavouriteListings(userID string) ([]models.Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.Listing, 0)
	for id := range s.favListings[userID] {
		// Dangling edges are skipped, not reported.
		if listing, ok := s.listings[id]; ok {
			result = append(result, listing)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (s *MemoryStore) HasFavouriteListing(userID, listingID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.favListings[userID][listingID], nil
}

func (s *MemoryStore) AddFavouriteRoommate(userID, roommateID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.favRoommateSet(userID)[roommateID] = true
	return nil
}

func (s *MemoryStore) RemoveFavouriteRoommate(userID, roommateID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.favRoommateSet(userID), roommateID)
	return nil
}

func (s *MemoryStore) FavouriteRoommateIDs(userID string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.favRoommates[userID]))
	for id := range s.favRoommates[userID] {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

func (s *MemoryStore) FavouriteRoommates(userID string) ([]models.Roommate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.Roommate, 0)
	for _, id := range s.roommateOrder {
		if !s.favRoommates[userID][id] {
			continue
		}
		if roommate, ok := s.roommates[id]; ok {
			result = append(result, roommate)
		}
	}
	return result, nil
}

func (s *MemoryStore) HasFavouriteRoommate(userID, roommateID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.favRoommates[userID][roommateID], nil
}

func (s *MemoryStore) favListingSet(userID string) map[string]bool {
	if s.favListings[userID] == nil {
		s.favListings[userID] = make(map[string]bool)
	}
	return s.favListings[userID]
}

func (s *MemoryStore) favRoommateSet(userID string) map[string]bool {
	if s.favRoommates[userID] == nil {
		s.favRoommates[userID] = make(map[string]bool)
	}
	return s.favRoommates[userID]
}
