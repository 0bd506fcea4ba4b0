package controllers

import (
	"net/http"
	"testing"

	"github.com/bitebuddy/bitebuddy-api/initializers"
	"github.com/bitebuddy/bitebuddy-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProfileHidesSecrets(t *testing.T) {
	setupTestDB(t)
	router := newTestRouter()
	user := createTestUser(t, "9876543210", "asha@example.com", "user")

	recorder := performRequest(router, http.MethodGet, "/profile", tokenFor(t, user), nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	payload := decodeResponse(t, recorder)
	profile := payload["profile"].(map[string]any)
	assert.Equal(t, "asha@example.com", profile["email"])
	assert.NotContains(t, profile, "password")
}

func TestUpdateProfileRejectsTakenEmail(t *testing.T) {
	setupTestDB(t)
	router := newTestRouter()
	user := createTestUser(t, "9876543210", "asha@example.com", "user")
	createTestUser(t, "9123456780", "ravi@example.com", "user")

	recorder := performRequest(router, http.MethodPut, "/profile", tokenFor(t, user), map[string]string{
		"fullName": "Asha Verma",
		"email":    "ravi@example.com",
		"location": "Pune",
	})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "Email already registered to another account",
		decodeResponse(t, recorder)["message"])
}

func TestUpdateProfileChangesPassword(t *testing.T) {
	setupTestDB(t)
	router := newTestRouter()
	user := createTestUser(t, "9876543210", "asha@example.com", "user")
	token := tokenFor(t, user)

	recorder := performRequest(router, http.MethodPut, "/profile", token, map[string]string{
		"fullName":    "Asha Verma",
		"email":       "asha@example.com",
		"location":    "Mumbai",
		"newPassword": "brand-new-pass",
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	var updated models.User
	require.NoError(t, initializers.DB.First(&updated, user.ID).Error)
	assert.Equal(t, "Mumbai", updated.Location)
	assert.NoError(t, comparePasswords(updated.Password, "brand-new-pass"))
}

func TestDeleteAccountCascadesCartAndOrders(t *testing.T) {
	setupTestDB(t)
	router := newTestRouter()
	user := createTestUser(t, "9876543210", "asha@example.com", "user")
	service := createTestService(t, "Haircut", 200, 0, models.StatusActive)

	require.NoError(t, initializers.DB.Create(&models.CartItem{
		UserID:   user.ID,
		ItemType: models.ItemTypeService,
		ItemID:   service.ID,
		Quantity: 2,
	}).Error)

	order := models.Order{
		UserID:      user.ID,
		TotalAmount: 200,
		PaymentMode: "COD",
		Status:      models.OrderStatusPending,
		OrderItems: []models.OrderItem{{
			ItemType: models.ItemTypeService,
			ItemID:   service.ID,
			Name:     service.Name,
			Quantity: 1,
			Price:    200,
		}},
	}
	require.NoError(t, initializers.DB.Create(&order).Error)

	recorder := performRequest(router, http.MethodDelete, "/profile", tokenFor(t, user), nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var userCount, cartCount, orderCount, orderItemCount int64
	initializers.DB.Model(&models.User{}).Count(&userCount)
	initializers.DB.Model(&models.CartItem{}).Count(&cartCount)
	initializers.DB.Model(&models.Order{}).Count(&orderCount)
	initializers.DB.Model(&models.OrderItem{}).Count(&orderItemCount)

	assert.EqualValues(t, 0, userCount)
	assert.EqualValues(t, 0, cartCount)
	assert.EqualValues(t, 0, orderCount)
	assert.EqualValues(t, 0, orderItemCount)
}

func TestDashboardSummary(t *testing.T) {
	setupTestDB(t)
	router := newTestRouter()
	user := createTestUser(t, "9876543210", "asha@example.com", "user")
	service := createTestService(t, "Haircut", 200, 0, models.StatusActive)

	require.NoError(t, initializers.DB.Create(&models.CartItem{
		UserID:   user.ID,
		ItemType: models.ItemTypeService,
		ItemID:   service.ID,
		Quantity: 1,
	}).Error)
	require.NoError(t, initializers.DB.Create(&models.Order{
		UserID:      user.ID,
		TotalAmount: 200,
		PaymentMode: "COD",
		Status:      models.OrderStatusPending,
	}).Error)

	recorder := performRequest(router, http.MethodGet, "/dashboard", tokenFor(t, user), nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	payload := decodeResponse(t, recorder)
	assert.EqualValues(t, 1, payload["cartItemCount"])
	assert.EqualValues(t, 1, payload["orderCount"])
}
