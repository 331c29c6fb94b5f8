package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/roomies-app/roomies-api/internal/constants"
	"github.com/roomies-app/roomies-api/internal/dto"
	"github.com/roomies-app/roomies-api/internal/models"
	"github.com/roomies-app/roomies-api/internal/repository"
	"github.com/roomies-app/roomies-api/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ListingHandlerTestSuite defines the test suite for ListingHandler
type ListingHandlerTestSuite struct {
	suite.Suite
	db      *gorm.DB
	handler *ListingHandler
}

// SetupTest runs before each test
func (suite *ListingHandlerTestSuite) SetupTest() {
	var err error

	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	suite.Require().NoError(err)

	err = suite.db.AutoMigrate(
		&models.User{},
		&models.Listing{},
		&models.Roommate{},
		&models.FavouriteListing{},
		&models.FavouriteRoommate{},
	)
	suite.Require().NoError(err)

	listingRepo := repository.NewListingRepository(suite.db)
	listingService := services.NewListingService(listingRepo)

	// No AI service in tests
	suite.handler = NewListingHandler(listingService, nil)

	gin.SetMode(gin.TestMode)
}

// TearDownTest runs after each test
func (suite *ListingHandlerTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

// Helper function to create test data
func (suite *ListingHandlerTestSuite) createTestUser(email string) *models.User {
	user := &models.User{
		Name:         "Test User",
		Email:        email,
		PasswordHash: "hashedpassword",
	}
	suite.db.Create(user)
	return user
}

func (suite *ListingHandlerTestSuite) createTestListing(city, propertyType, ownerID string) *models.Listing {
	listing := &models.Listing{
		Title:        "Room in " + city,
		City:         city,
		Address:      "1 Main St",
		Rent:         1200,
		MoveInDate:   "2026-10-01",
		Amenities:    `["WiFi"]`,
		PropertyType: models.PropertyType(propertyType),
		Image:        "https://example.com/room.jpg",
		Description:  "A room",
		OwnerID:      ownerID,
		CreatedAt:    time.Now(),
	}
	suite.db.Create(listing)
	return listing
}

// Helper function to create authenticated context
func (suite *ListingHandlerTestSuite) createAuthContext(method, url string, body []byte, userID string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, url, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, url, nil)
	}

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	if userID != "" {
		c.Set(constants.ContextKeyUserID, userID)
	}

	return c, w
}

// TestListListings_CityFilter tests the case-insensitive substring city filter
func (suite *ListingHandlerTestSuite) TestListListings_CityFilter() {
	owner := suite.createTestUser("owner@example.com")
	suite.createTestListing("New York, NY", "Apartment", owner.ID)
	suite.createTestListing("Chicago, IL", "House", owner.ID)

	c, w := suite.createAuthContext("GET", "/api/listings?city=new+york", nil, "")

	suite.handler.ListListings(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response dto.ListingListResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), response.Listings, 1)
	assert.Equal(suite.T(), "New York, NY", response.Listings[0].City)
	assert.Equal(suite.T(), []string{"WiFi"}, response.Listings[0].Amenities)
}

// TestListListings_NoMatch tests that a non-matching city filter returns an empty list
func (suite *ListingHandlerTestSuite) TestListListings_NoMatch() {
	owner := suite.createTestUser("owner@example.com")
	suite.createTestListing("New York, NY", "Apartment", owner.ID)

	c, w := suite.createAuthContext("GET", "/api/listings?city=boston", nil, "")

	suite.handler.ListListings(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response dto.ListingListResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), response.Listings)
}

// TestListListings_PropertyTypeFilter tests the case-insensitive exact property type filter
func (suite *ListingHandlerTestSuite) TestListListings_PropertyTypeFilter() {
	owner := suite.createTestUser("owner@example.com")
	suite.createTestListing("New York, NY", "Apartment", owner.ID)
	suite.createTestListing("New York, NY", "House", owner.ID)

	c, w := suite.createAuthContext("GET", "/api/listings?property_type=house", nil, "")

	suite.handler.ListListings(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response dto.ListingListResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), response.Listings, 1)
	assert.Equal(suite.T(), "House", response.Listings[0].PropertyType)
}

// TestListListings_PriceWindowAndSort tests the inclusive rent bounds and price sorts
func (suite *ListingHandlerTestSuite) TestListListings_PriceWindowAndSort() {
	owner := suite.createTestUser("owner@example.com")
	cheap := suite.createTestListing("New York, NY", "Apartment", owner.ID)
	suite.db.Model(cheap).Update("rent", 700)
	mid := suite.createTestListing("New York, NY", "Apartment", owner.ID)
	suite.db.Model(mid).Update("rent", 1500)
	steep := suite.createTestListing("New York, NY", "Apartment", owner.ID)
	suite.db.Model(steep).Update("rent", 2400)

	c, w := suite.createAuthContext("GET", "/api/listings?price_min=700&price_max=1500", nil, "")

	suite.handler.ListListings(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response dto.ListingListResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), response.Listings, 2)

	c, w = suite.createAuthContext("GET", "/api/listings?sort=price_desc", nil, "")

	suite.handler.ListListings(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	err = json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), response.Listings, 3)
	assert.Equal(suite.T(), 2400, response.Listings[0].Rent)
	assert.Equal(suite.T(), 700, response.Listings[2].Rent)
}

// TestGetListing_Success tests fetching a single listing
func (suite *ListingHandlerTestSuite) TestGetListing_Success() {
	owner := suite.createTestUser("owner@example.com")
	listing := suite.createTestListing("New York, NY", "Apartment", owner.ID)

	c, w := suite.createAuthContext("GET", "/api/listings/"+listing.ID, nil, "")
	c.Params = gin.Params{{Key: "id", Value: listing.ID}}

	suite.handler.GetListing(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response dto.ListingDTO
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), listing.ID, response.ID)
}

// TestGetListing_NotFound tests fetching a missing listing
func (suite *ListingHandlerTestSuite) TestGetListing_NotFound() {
	c, w := suite.createAuthContext("GET", "/api/listings/missing", nil, "")
	c.Params = gin.Params{{Key: "id", Value: "missing"}}

	suite.handler.GetListing(c)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

// TestCreateListing_Success tests successful listing creation
func (suite *ListingHandlerTestSuite) TestCreateListing_Success() {
	owner := suite.createTestUser("owner@example.com")

	requestBody := map[string]interface{}{
		"title":         "Sunny room",
		"city":          "New York, NY",
		"address":       "1 Main St",
		"rent":          1400,
		"move_in_date":  "2026-10-01",
		"amenities":     []string{"WiFi", "Laundry"},
		"property_type": "apartment",
		"description":   "Bright room near the park",
	}
	body, _ := json.Marshal(requestBody)

	c, w := suite.createAuthContext("POST", "/api/listings", body, owner.ID)

	suite.handler.CreateListing(c)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var response dto.ListingDTO
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Sunny room", response.Title)
	assert.Equal(suite.T(), owner.ID, response.OwnerID)
	assert.Equal(suite.T(), "Apartment", response.PropertyType)
	assert.Equal(suite.T(), []string{"WiFi", "Laundry"}, response.Amenities)
	assert.Equal(suite.T(), constants.DefaultListingImage, response.Image)
}

// TestCreateListing_Unauthorized tests creation without authentication
func (suite *ListingHandlerTestSuite) TestCreateListing_Unauthorized() {
	body, _ := json.Marshal(map[string]interface{}{"title": "x"})
	c, w := suite.createAuthContext("POST", "/api/listings", body, "")

	suite.handler.CreateListing(c)

	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
}

// TestCreateListing_InvalidPropertyType tests creation with an unknown property type
func (suite *ListingHandlerTestSuite) TestCreateListing_InvalidPropertyType() {
	owner := suite.createTestUser("owner@example.com")

	requestBody := map[string]interface{}{
		"title":         "Sunny room",
		"city":          "New York, NY",
		"address":       "1 Main St",
		"rent":          1400,
		"move_in_date":  "2026-10-01",
		"property_type": "Castle",
		"description":   "Bright room near the park",
	}
	body, _ := json.Marshal(requestBody)

	c, w := suite.createAuthContext("POST", "/api/listings", body, owner.ID)

	suite.handler.CreateListing(c)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestDeleteListing_Success tests the owner deleting their listing
func (suite *ListingHandlerTestSuite) TestDeleteListing_Success() {
	owner := suite.createTestUser("owner@example.com")
	listing := suite.createTestListing("New York, NY", "Apartment", owner.ID)

	c, w := suite.createAuthContext("DELETE", "/api/listings/"+listing.ID, nil, owner.ID)
	c.Params = gin.Params{{Key: "id", Value: listing.ID}}

	suite.handler.DeleteListing(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var count int64
	suite.db.Model(&models.Listing{}).Where("id = ?", listing.ID).Count(&count)
	assert.Equal(suite.T(), int64(0), count)
}

// TestDeleteListing_NotOwner tests a non-owner attempting the delete
func (suite *ListingHandlerTestSuite) TestDeleteListing_NotOwner() {
	owner := suite.createTestUser("owner@example.com")
	other := suite.createTestUser("other@example.com")
	listing := suite.createTestListing("New York, NY", "Apartment", owner.ID)

	c, w := suite.createAuthContext("DELETE", "/api/listings/"+listing.ID, nil, other.ID)
	c.Params = gin.Params{{Key: "id", Value: listing.ID}}

	suite.handler.DeleteListing(c)

	assert.Equal(suite.T(), http.StatusForbidden, w.Code)

	var count int64
	suite.db.Model(&models.Listing{}).Where("id = ?", listing.ID).Count(&count)
	assert.Equal(suite.T(), int64(1), count)
}

// TestDeleteListing_NotFound tests deleting a missing listing
func (suite *ListingHandlerTestSuite) TestDeleteListing_NotFound() {
	owner := suite.createTestUser("owner@example.com")

	c, w := suite.createAuthContext("DELETE", "/api/listings/missing", nil, owner.ID)
	c.Params = gin.Params{{Key: "id", Value: "missing"}}

	suite.handler.DeleteListing(c)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

// TestMyListings_Success tests the caller-scoped listing view
func (suite *ListingHandlerTestSuite) TestMyListings_Success() {
	owner := suite.createTestUser("owner@example.com")
	other := suite.createTestUser("other@example.com")
	suite.createTestListing("New York, NY", "Apartment", owner.ID)
	suite.createTestListing("Chicago, IL", "House", other.ID)

	c, w := suite.createAuthContext("GET", "/api/me/listings", nil, owner.ID)

	suite.handler.MyListings(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response dto.ListingListResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), response.Listings, 1)
	assert.Equal(suite.T(), owner.ID, response.Listings[0].OwnerID)
}

// TestSuggestDescription_Unconfigured tests the endpoint without an AI service
func (suite *ListingHandlerTestSuite) TestSuggestDescription_Unconfigured() {
	owner := suite.createTestUser("owner@example.com")

	body, _ := json.Marshal(map[string]interface{}{
		"title":         "Sunny room",
		"city":          "New York, NY",
		"property_type": "Apartment",
	})
	c, w := suite.createAuthContext("POST", "/api/listings/suggest-description", body, owner.ID)

	suite.handler.SuggestDescription(c)

	assert.Equal(suite.T(), http.StatusServiceUnavailable, w.Code)
}

// TestListingHandlerTestSuite runs the test suite
func TestListingHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ListingHandlerTestSuite))
}
