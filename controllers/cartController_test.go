package controllers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/bitebuddy/bitebuddy-api/initializers"
	"github.com/bitebuddy/bitebuddy-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddToCartUpsertsQuantity(t *testing.T) {
	setupTestDB(t)
	router := newTestRouter()
	user := createTestUser(t, "9876543210", "asha@example.com", "user")
	service := createTestService(t, "Haircut", 200, 0, models.StatusActive)
	token := tokenFor(t, user)

	recorder := performRequest(router, http.MethodPost, "/cart", token, map[string]any{
		"itemType": models.ItemTypeService,
		"itemId":   service.ID,
		"quantity": 2,
	})
	require.Equal(t, http.StatusCreated, recorder.Code)

	recorder = performRequest(router, http.MethodPost, "/cart", token, map[string]any{
		"itemType": models.ItemTypeService,
		"itemId":   service.ID,
		"quantity": 1,
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	var cartItems []models.CartItem
	require.NoError(t, initializers.DB.Where("user_id = ?", user.ID).Find(&cartItems).Error)
	require.Len(t, cartItems, 1)
	assert.Equal(t, 3, cartItems[0].Quantity)
}

func TestAddToCartRejectsInactiveItem(t *testing.T) {
	setupTestDB(t)
	router := newTestRouter()
	user := createTestUser(t, "9876543210", "asha@example.com", "user")
	service := createTestService(t, "Haircut", 200, 0, models.StatusInactive)

	recorder := performRequest(router, http.MethodPost, "/cart", tokenFor(t, user), map[string]any{
		"itemType": models.ItemTypeService,
		"itemId":   service.ID,
	})
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestAddToCartRejectsUnknownItemType(t *testing.T) {
	setupTestDB(t)
	router := newTestRouter()
	user := createTestUser(t, "9876543210", "asha@example.com", "user")

	recorder := performRequest(router, http.MethodPost, "/cart", tokenFor(t, user), map[string]any{
		"itemType": "subscription",
		"itemId":   1,
	})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestGetCartComputesTotals(t *testing.T) {
	setupTestDB(t)
	router := newTestRouter()
	user := createTestUser(t, "9876543210", "asha@example.com", "user")
	service := createTestService(t, "Haircut", 200, 10, models.StatusActive) // final 180
	menuItem := createTestMenuItem(t, "Paneer Wrap", 120, 0, models.StatusActive)
	token := tokenFor(t, user)

	performRequest(router, http.MethodPost, "/cart", token, map[string]any{
		"itemType": models.ItemTypeService,
		"itemId":   service.ID,
		"quantity": 2,
	})
	performRequest(router, http.MethodPost, "/cart", token, map[string]any{
		"itemType": models.ItemTypeMenu,
		"itemId":   menuItem.ID,
		"quantity": 1,
	})

	recorder := performRequest(router, http.MethodGet, "/cart", token, nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	payload := decodeResponse(t, recorder)
	assert.InDelta(t, 180*2+120, payload["totalAmount"].(float64), 0.001)
	assert.Len(t, payload["cartItems"].([]any), 2)
}

func TestUpdateCartItemDecreaseToZeroRemovesRow(t *testing.T) {
	setupTestDB(t)
	router := newTestRouter()
	user := createTestUser(t, "9876543210", "asha@example.com", "user")
	service := createTestService(t, "Haircut", 200, 0, models.StatusActive)
	token := tokenFor(t, user)

	performRequest(router, http.MethodPost, "/cart", token, map[string]any{
		"itemType": models.ItemTypeService,
		"itemId":   service.ID,
		"quantity": 1,
	})

	var cartItem models.CartItem
	require.NoError(t, initializers.DB.Where("user_id = ?", user.ID).First(&cartItem).Error)

	recorder := performRequest(router, http.MethodPatch,
		fmt.Sprintf("/cart/%d", cartItem.ID), token, map[string]string{"action": "decrease"})
	require.Equal(t, http.StatusOK, recorder.Code)

	var count int64
	initializers.DB.Model(&models.CartItem{}).Where("user_id = ?", user.ID).Count(&count)
	assert.EqualValues(t, 0, count)

	// The unique index must allow re-adding the same item afterwards.
	recorder = performRequest(router, http.MethodPost, "/cart", token, map[string]any{
		"itemType": models.ItemTypeService,
		"itemId":   service.ID,
		"quantity": 1,
	})
	assert.Equal(t, http.StatusCreated, recorder.Code)
}

func TestRemoveCartItemScopedToOwner(t *testing.T) {
	setupTestDB(t)
	router := newTestRouter()
	owner := createTestUser(t, "9876543210", "asha@example.com", "user")
	other := createTestUser(t, "9123456780", "ravi@example.com", "user")
	service := createTestService(t, "Haircut", 200, 0, models.StatusActive)

	performRequest(router, http.MethodPost, "/cart", tokenFor(t, owner), map[string]any{
		"itemType": models.ItemTypeService,
		"itemId":   service.ID,
		"quantity": 1,
	})

	var cartItem models.CartItem
	require.NoError(t, initializers.DB.Where("user_id = ?", owner.ID).First(&cartItem).Error)

	recorder := performRequest(router, http.MethodDelete,
		fmt.Sprintf("/cart/%d", cartItem.ID), tokenFor(t, other), nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)

	var count int64
	initializers.DB.Model(&models.CartItem{}).Where("user_id = ?", owner.ID).Count(&count)
	assert.EqualValues(t, 1, count)
}
