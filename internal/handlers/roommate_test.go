package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

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

// RoommateHandlerTestSuite defines the test suite for RoommateHandler
type RoommateHandlerTestSuite struct {
	suite.Suite
	db      *gorm.DB
	handler *RoommateHandler
}

// SetupTest runs before each test
func (suite *RoommateHandlerTestSuite) SetupTest() {
	var err error

	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	suite.Require().NoError(err)

	err = suite.db.AutoMigrate(
		&models.User{},
		&models.Roommate{},
		&models.FavouriteRoommate{},
	)
	suite.Require().NoError(err)

	roommateRepo := repository.NewRoommateRepository(suite.db)
	roommateService := services.NewRoommateService(roommateRepo)

	suite.handler = NewRoommateHandler(roommateService)

	gin.SetMode(gin.TestMode)
}

// TearDownTest runs after each test
func (suite *RoommateHandlerTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *RoommateHandlerTestSuite) createTestUser(email string) *models.User {
	user := &models.User{
		Name:         "Test User",
		Email:        email,
		PasswordHash: "hashedpassword",
	}
	suite.db.Create(user)
	return user
}

func (suite *RoommateHandlerTestSuite) createTestRoommate(name, city string, age int, userID *string, prefs string) *models.Roommate {
	if prefs == "" {
		prefs = "[]"
	}
	roommate := &models.Roommate{
		UserID:               userID,
		Name:                 name,
		Age:                  age,
		Occupation:           "Engineer",
		City:                 city,
		BudgetMin:            1000,
		BudgetMax:            1500,
		MoveInDate:           "2026-10-01",
		LifestylePreferences: prefs,
		Bio:                  "Hi",
		ProfileImage:         "https://example.com/me.jpg",
	}
	suite.db.Create(roommate)
	return roommate
}

func (suite *RoommateHandlerTestSuite) createAuthContext(method, url string, body []byte, userID string) (*gin.Context, *httptest.ResponseRecorder) {
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

// TestListRoommates_CityFilter tests the case-insensitive substring city filter
func (suite *RoommateHandlerTestSuite) TestListRoommates_CityFilter() {
	suite.createTestRoommate("A", "New York, NY", 25, nil, "")
	suite.createTestRoommate("B", "Chicago, IL", 30, nil, "")

	c, w := suite.createAuthContext("GET", "/api/roommates?city=new+york", nil, "")

	suite.handler.ListRoommates(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response dto.RoommateListResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), response.Roommates, 1)
	assert.Equal(suite.T(), "A", response.Roommates[0].Name)
}

// TestListRoommates_LifestyleFilter tests attribute filtering against the structured payload
func (suite *RoommateHandlerTestSuite) TestListRoommates_LifestyleFilter() {
	suite.createTestRoommate("Structured", "New York, NY", 25, nil,
		`{"tags":["Quiet"],"foodPreference":"Vegetarian","smoker":"No"}`)
	suite.createTestRoommate("Tagged", "New York, NY", 26, nil,
		`["Vegetarian","Non-smoker"]`)

	c, w := suite.createAuthContext("GET", "/api/roommates?food_preference=vegetarian", nil, "")

	suite.handler.ListRoommates(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response dto.RoommateListResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)

	// The tag-list profile carries no attributes, so it never matches.
	assert.Len(suite.T(), response.Roommates, 1)
	assert.Equal(suite.T(), "Structured", response.Roommates[0].Name)
	assert.Equal(suite.T(), "Vegetarian", response.Roommates[0].Lifestyle.FoodPreference)
}

// TestListRoommates_BudgetWindow tests the interval-overlap budget filter
func (suite *RoommateHandlerTestSuite) TestListRoommates_BudgetWindow() {
	low := suite.createTestRoommate("Low", "New York, NY", 25, nil, "")
	high := suite.createTestRoommate("High", "New York, NY", 26, nil, "")
	suite.db.Model(low).Updates(map[string]interface{}{"budget_min": 1000, "budget_max": 1400})
	suite.db.Model(high).Updates(map[string]interface{}{"budget_min": 1500, "budget_max": 2000})

	c, w := suite.createAuthContext("GET", "/api/roommates?budget_min=1200&budget_max=1450", nil, "")

	suite.handler.ListRoommates(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response dto.RoommateListResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), response.Roommates, 1)
	assert.Equal(suite.T(), "Low", response.Roommates[0].Name)
}

// TestListRoommates_SortBudgetAsc tests the budget_asc sort order
func (suite *RoommateHandlerTestSuite) TestListRoommates_SortBudgetAsc() {
	expensive := suite.createTestRoommate("Expensive", "New York, NY", 25, nil, "")
	cheap := suite.createTestRoommate("Cheap", "New York, NY", 26, nil, "")
	suite.db.Model(expensive).Update("budget_min", 2000)
	suite.db.Model(cheap).Update("budget_min", 500)

	c, w := suite.createAuthContext("GET", "/api/roommates?sort=budget_asc", nil, "")

	suite.handler.ListRoommates(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response dto.RoommateListResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), response.Roommates, 2)
	assert.Equal(suite.T(), "Cheap", response.Roommates[0].Name)
}

// TestGetRoommate_NotFound tests fetching a missing profile
func (suite *RoommateHandlerTestSuite) TestGetRoommate_NotFound() {
	c, w := suite.createAuthContext("GET", "/api/roommates/missing", nil, "")
	c.Params = gin.Params{{Key: "id", Value: "missing"}}

	suite.handler.GetRoommate(c)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

// TestCreateRoommate_Success tests successful profile creation
func (suite *RoommateHandlerTestSuite) TestCreateRoommate_Success() {
	user := suite.createTestUser("ann@example.com")

	requestBody := map[string]interface{}{
		"name":         "Ann",
		"age":          25,
		"occupation":   "Engineer",
		"city":         "New York, NY",
		"budget_min":   1000,
		"budget_max":   1400,
		"move_in_date": "2026-10-01",
		"bio":          "Hi there",
		"lifestyle_preferences": map[string]interface{}{
			"tags":   []string{"Quiet"},
			"smoker": "No",
		},
	}
	body, _ := json.Marshal(requestBody)

	c, w := suite.createAuthContext("POST", "/api/roommates", body, user.ID)

	suite.handler.CreateRoommate(c)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var response dto.RoommateDTO
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Ann", response.Name)
	assert.NotNil(suite.T(), response.UserID)
	assert.Equal(suite.T(), user.ID, *response.UserID)
	assert.Equal(suite.T(), []string{"Quiet"}, response.Lifestyle.Tags)
	assert.Equal(suite.T(), "No", response.Lifestyle.Smoker)
	assert.Equal(suite.T(), constants.DefaultProfileImage, response.ProfileImage)
}

// TestCreateRoommate_ZeroBudgetMin tests that an explicit $0 minimum is accepted
func (suite *RoommateHandlerTestSuite) TestCreateRoommate_ZeroBudgetMin() {
	user := suite.createTestUser("ann@example.com")

	requestBody := map[string]interface{}{
		"name":         "Ann",
		"age":          25,
		"occupation":   "Student",
		"city":         "New York, NY",
		"budget_min":   0,
		"budget_max":   500,
		"move_in_date": "2026-10-01",
		"bio":          "Anything works",
	}
	body, _ := json.Marshal(requestBody)

	c, w := suite.createAuthContext("POST", "/api/roommates", body, user.ID)

	suite.handler.CreateRoommate(c)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var response dto.RoommateDTO
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 0, response.BudgetMin)
	assert.Equal(suite.T(), 500, response.BudgetMax)
}

// TestCreateRoommate_Conflict tests the one-profile-per-account rule
func (suite *RoommateHandlerTestSuite) TestCreateRoommate_Conflict() {
	user := suite.createTestUser("ann@example.com")
	suite.createTestRoommate("Existing", "New York, NY", 25, &user.ID, "")

	requestBody := map[string]interface{}{
		"name":         "Another",
		"age":          30,
		"occupation":   "Designer",
		"city":         "Boston, MA",
		"budget_min":   800,
		"budget_max":   1200,
		"move_in_date": "2026-11-01",
		"bio":          "Hello",
	}
	body, _ := json.Marshal(requestBody)

	c, w := suite.createAuthContext("POST", "/api/roommates", body, user.ID)

	suite.handler.CreateRoommate(c)

	assert.Equal(suite.T(), http.StatusConflict, w.Code)

	// The existing profile survived the conflict.
	var count int64
	suite.db.Model(&models.Roommate{}).Where("user_id = ?", user.ID).Count(&count)
	assert.Equal(suite.T(), int64(1), count)
}

// TestCreateRoommate_InvalidAge tests the advisory age bounds
func (suite *RoommateHandlerTestSuite) TestCreateRoommate_InvalidAge() {
	user := suite.createTestUser("ann@example.com")

	requestBody := map[string]interface{}{
		"name":         "Ann",
		"age":          15,
		"occupation":   "Student",
		"city":         "New York, NY",
		"budget_min":   500,
		"budget_max":   800,
		"move_in_date": "2026-10-01",
		"bio":          "Hi",
	}
	body, _ := json.Marshal(requestBody)

	c, w := suite.createAuthContext("POST", "/api/roommates", body, user.ID)

	suite.handler.CreateRoommate(c)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestDeleteRoommate_NotOwner tests a non-owner attempting the delete
func (suite *RoommateHandlerTestSuite) TestDeleteRoommate_NotOwner() {
	owner := suite.createTestUser("owner@example.com")
	other := suite.createTestUser("other@example.com")
	roommate := suite.createTestRoommate("Ann", "New York, NY", 25, &owner.ID, "")

	c, w := suite.createAuthContext("DELETE", "/api/roommates/"+roommate.ID, nil, other.ID)
	c.Params = gin.Params{{Key: "id", Value: roommate.ID}}

	suite.handler.DeleteRoommate(c)

	assert.Equal(suite.T(), http.StatusForbidden, w.Code)
}

// TestDeleteRoommate_SeededProfile tests that ownerless seed profiles cannot be deleted
func (suite *RoommateHandlerTestSuite) TestDeleteRoommate_SeededProfile() {
	user := suite.createTestUser("ann@example.com")
	roommate := suite.createTestRoommate("Seeded", "New York, NY", 25, nil, "")

	c, w := suite.createAuthContext("DELETE", "/api/roommates/"+roommate.ID, nil, user.ID)
	c.Params = gin.Params{{Key: "id", Value: roommate.ID}}

	suite.handler.DeleteRoommate(c)

	assert.Equal(suite.T(), http.StatusForbidden, w.Code)
}

// TestDeleteRoommate_Success tests the owner deleting their profile
func (suite *RoommateHandlerTestSuite) TestDeleteRoommate_Success() {
	owner := suite.createTestUser("owner@example.com")
	roommate := suite.createTestRoommate("Ann", "New York, NY", 25, &owner.ID, "")

	c, w := suite.createAuthContext("DELETE", "/api/roommates/"+roommate.ID, nil, owner.ID)
	c.Params = gin.Params{{Key: "id", Value: roommate.ID}}

	suite.handler.DeleteRoommate(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var count int64
	suite.db.Model(&models.Roommate{}).Where("id = ?", roommate.ID).Count(&count)
	assert.Equal(suite.T(), int64(0), count)
}

// TestMyProfile_Null tests the null body for callers without a profile
func (suite *RoommateHandlerTestSuite) TestMyProfile_Null() {
	user := suite.createTestUser("ann@example.com")

	c, w := suite.createAuthContext("GET", "/api/me/roommate", nil, user.ID)

	suite.handler.MyProfile(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.JSONEq(suite.T(), `{"roommate": null}`, w.Body.String())
}

// TestMyProfile_Found tests the caller's profile lookup
func (suite *RoommateHandlerTestSuite) TestMyProfile_Found() {
	user := suite.createTestUser("ann@example.com")
	roommate := suite.createTestRoommate("Ann", "New York, NY", 25, &user.ID, "")

	c, w := suite.createAuthContext("GET", "/api/me/roommate", nil, user.ID)

	suite.handler.MyProfile(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response struct {
		Roommate *dto.RoommateDTO `json:"roommate"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response.Roommate)
	assert.Equal(suite.T(), roommate.ID, response.Roommate.ID)
}

// TestRoommateHandlerTestSuite runs the test suite
func TestRoommateHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(RoommateHandlerTestSuite))
}
