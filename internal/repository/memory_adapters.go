package repository

import "github.com/roomies-app/roomies-api/internal/models"

// Adapters binding one shared MemoryStore to the per-entity repository
// interfaces, mirroring how the GORM implementations share one *gorm.DB.

type memoryUserRepository struct{ store *MemoryStore }

// NewMemoryUserRepository creates a UserRepository over the store.
func NewMemoryUserRepository(store *MemoryStore) UserRepository {
	return &memoryUserRepository{store: store}
}

func (r *memoryUserRepository) Create(user *models.User) error { return r.store.CreateUser(user) }
func (r *memoryUserRepository) FindByID(id string) (*models.User, error) {
	return r.store.FindUserByID(id)
}
func (r *memoryUserRepository) FindByEmail(email string) (*models.User, error) {
	return r.store.FindUserByEmail(email)
}
func (r *memoryUserRepository) FindByVerificationToken(token string) (*models.User, error) {
	return r.store.FindUserByVerificationToken(token)
}
func (r *memoryUserRepository) MarkEmailVerified(id string) error {
	return r.store.MarkUserEmailVerified(id)
}

type memoryListingRepository struct{ store *MemoryStore }

// NewMemoryListingRepository creates a ListingRepository over the store.
func NewMemoryListingRepository(store *MemoryStore) ListingRepository {
	return &memoryListingRepository{store: store}
}

func (r *memoryListingRepository) Create(listing *models.Listing) error {
	return r.store.CreateListing(listing)
}
func (r *memoryListingRepository) FindByID(id string) (*models.Listing, error) {
	return r.store.FindListingByID(id)
}
func (r *memoryListingRepository) List(filter ListingFilter) ([]models.Listing, error) {
	return r.store.ListListings(filter)
}
func (r *memoryListingRepository) Delete(id string) error { return r.store.DeleteListing(id) }

type memoryRoommateRepository struct{ store *MemoryStore }

// NewMemoryRoommateRepository creates a RoommateRepository over the store.
func NewMemoryRoommateRepository(store *MemoryStore) RoommateRepository {
	return &memoryRoommateRepository{store: store}
}

func (r *memoryRoommateRepository) Create(roommate *models.Roommate) error {
	return r.store.CreateRoommate(roommate)
}
func (r *memoryRoommateRepository) FindByID(id string) (*models.Roommate, error) {
	return r.store.FindRoommateByID(id)
}
func (r *memoryRoommateRepository) FindByUserID(userID string) (*models.Roommate, error) {
	return r.store.FindRoommateByUserID(userID)
}
func (r *memoryRoommateRepository) List(filter RoommateFilter) ([]models.Roommate, error) {
	return r.store.ListRoommates(filter)
}
func (r *memoryRoommateRepository) Delete(id string) error { return r.store.DeleteRoommate(id) }

type memoryFavouriteRepository struct{ store *MemoryStore }

// NewMemoryFavouriteRepository creates a FavouriteRepository over the store.
func NewMemoryFavouriteRepository(store *MemoryStore) FavouriteRepository {
	return &memoryFavouriteRepository{store: store}
}

func (r *memoryFavouriteRepository) AddListing(userID, listingID string) error {
	return r.store.AddFavouriteListing(userID, listingID)
}
func (r *memoryFavouriteRepository) RemoveListing(userID, listingID string) error {
	return r.store.RemoveFavouriteListing(userID, listingID)
}
func (r *memoryFavouriteRepository) ListingIDs(userID string) ([]string, error) {
	return r.store.FavouriteListingIDs(userID)
}
func (r *memoryFavouriteRepository) Listings(userID string) ([]models.Listing, error) {
	return r.store.FavouriteListings(userID)
}
func (r *memoryFavouriteRepository) HasListing(userID, listingID string) (bool, error) {
	return r.store.HasFavouriteListing(userID, listingID)
}
func (r *memoryFavouriteRepository) AddRoommate(userID, roommateID string) error {
	return r.store.AddFavouriteRoommate(userID, roommateID)
}
func (r *memoryFavouriteRepository) RemoveRoommate(userID, roommateID string) error {
	return r.store.RemoveFavouriteRoommate(userID, roommateID)
}
func (r *memoryFavouriteRepository) RoommateIDs(userID string) ([]string, error) {
	return r.store.FavouriteRoommateIDs(userID)
}
func (r *memoryFavouriteRepository) Roommates(userID string) ([]models.Roommate, error) {
	return r.store.FavouriteRoommates(userID)
}
func (r *memoryFavouriteRepository) HasRoommate(userID, roommateID string) (bool, error) {
	return r.store.HasFavouriteRoommate(userID, roommateID)
}
