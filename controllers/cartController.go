package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/bitebuddy/bitebuddy-api/initializers"
	"github.com/bitebuddy/bitebuddy-api/middlewares"
	"github.com/bitebuddy/bitebuddy-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type catalogItemDetails struct {
	Name        string  `json:"name"`
	Photo       string  `json:"photo"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}

// lookupActiveItem fetches the live catalog row behind a cart entry. Inactive
// items are treated as missing so they cannot be added or priced.
func lookupActiveItem(db *gorm.DB, itemType string, itemID uint) (catalogItemDetails, error) {
	switch itemType {
	case models.ItemTypeService:
		var service models.Service
		err := db.
			Where("status = ?", models.StatusActive).
			First(&service, itemID).Error
		if err != nil {
			return catalogItemDetails{}, err
		}
		return catalogItemDetails{
			Name:        service.Name,
			Photo:       service.Photo,
			Price:       service.FinalPrice,
			Description: service.Description,
		}, nil
	case models.ItemTypeMenu:
		var menuItem models.MenuItem
		err := db.
			Where("status = ?", models.StatusActive).
			First(&menuItem, itemID).Error
		if err != nil {
			return catalogItemDetails{}, err
		}
		return catalogItemDetails{
			Name:        menuItem.Name,
			Photo:       menuItem.Photo,
			Price:       menuItem.FinalPrice,
			Description: menuItem.Description,
		}, nil
	}
	return catalogItemDetails{}, gorm.ErrRecordNotFound
}

// AddToCart adds an item to the caller's cart. Adding an item that is already
// in the cart increments its quantity instead of creating another row.
func AddToCart(ctx *gin.Context) {
	userID, ok := middlewares.UserIDFromContext(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	var cartData struct {
		ItemType string `json:"itemType" binding:"required"`
		ItemID   uint   `json:"itemId" binding:"required"`
		Quantity int    `json:"quantity"`
	}
	if err := ctx.ShouldBindJSON(&cartData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid input")
		return
	}

	if !models.ValidItemType(cartData.ItemType) {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid item type")
		return
	}

	if cartData.Quantity <= 0 {
		cartData.Quantity = 1
	}

	item, err := lookupActiveItem(initializers.DB, cartData.ItemType, cartData.ItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Item not available")
		} else {
			log.Println("Database error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to fetch item")
		}
		return
	}

	var existingCartItem models.CartItem
	err = initializers.DB.
		Where("user_id = ? AND item_type = ? AND item_id = ?", userID, cartData.ItemType, cartData.ItemID).
		First(&existingCartItem).Error

	if err == nil {
		existingCartItem.Quantity += cartData.Quantity

		if err := initializers.DB.Save(&existingCartItem).Error; err != nil {
			log.Println("Update error:", err)
			sendErrorResponse(ctx, http.StatusBadRequest, "Unable to update cart item quantity.")
			return
		}

		sendJSONResponse(ctx, http.StatusOK, gin.H{
			"message":  "Cart item quantity updated",
			"id":       existingCartItem.ID,
			"quantity": existingCartItem.Quantity,
		})
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Println("Database error: ", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to fetch cart item")
		return
	}

	cartItem := models.CartItem{
		UserID:   userID,
		ItemType: cartData.ItemType,
		ItemID:   cartData.ItemID,
		Quantity: cartData.Quantity,
	}
	if err := initializers.DB.Create(&cartItem).Error; err != nil {
		log.Println("Create error:", err)
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to add item to cart")
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"message": item.Name + " added to cart",
		"id":      cartItem.ID,
	})
}

// GetCart returns the caller's cart entries with live catalog details, line
// totals and the grand total.
func GetCart(ctx *gin.Context) {
	userID, ok := middlewares.UserIDFromContext(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	var cartItems []models.CartItem
	result := initializers.DB.
		Where("user_id = ?", userID).
		Order("id DESC").
		Find(&cartItems)
	if result.Error != nil {
		log.Println("Database error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch cart")
		return
	}

	type cartEntry struct {
		ID        uint               `json:"id"`
		ItemType  string             `json:"itemType"`
		ItemID    uint               `json:"itemId"`
		Quantity  int                `json:"quantity"`
		Details   catalogItemDetails `json:"details"`
		ItemTotal float64            `json:"itemTotal"`
	}

	entries := make([]cartEntry, 0, len(cartItems))
	var totalAmount float64

	for _, cartItem := range cartItems {
		item, err := lookupActiveItem(initializers.DB, cartItem.ItemType, cartItem.ItemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// Item was deactivated after it was carted; skip it.
				continue
			}
			log.Println("Database error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch cart")
			return
		}

		itemTotal := item.Price * float64(cartItem.Quantity)
		totalAmount += itemTotal

		entries = append(entries, cartEntry{
			ID:        cartItem.ID,
			ItemType:  cartItem.ItemType,
			ItemID:    cartItem.ItemID,
			Quantity:  cartItem.Quantity,
			Details:   item,
			ItemTotal: itemTotal,
		})
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"cartItems":   entries,
		"totalAmount": totalAmount,
	})
}

// UpdateCartItem increases or decreases a cart entry's quantity. Decreasing
// to zero removes the entry.
func UpdateCartItem(ctx *gin.Context) {
	userID, ok := middlewares.UserIDFromContext(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	cartItemId, err := strconv.Atoi(ctx.Param("cartItemId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid cart item ID")
		return
	}

	var updateData struct {
		Action string `json:"action" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&updateData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid input")
		return
	}
	if updateData.Action != "increase" && updateData.Action != "decrease" {
		sendErrorResponse(ctx, http.StatusBadRequest, "Action must be increase or decrease")
		return
	}

	var cartItem models.CartItem
	result := initializers.DB.
		Where("id = ? AND user_id = ?", cartItemId, userID).
		First(&cartItem)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Cart item not found")
		} else {
			log.Println("Database error:", result.Error)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch cart item")
		}
		return
	}

	if updateData.Action == "increase" {
		cartItem.Quantity++
	} else {
		cartItem.Quantity--
	}

	if cartItem.Quantity <= 0 {
		// Hard delete so the unique (user, item type, item) index stays free
		// for re-adding the item later.
		if err := initializers.DB.Unscoped().Delete(&cartItem).Error; err != nil {
			log.Println("Delete error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to remove cart item")
			return
		}
		sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Item removed from cart"})
		return
	}

	if err := initializers.DB.Save(&cartItem).Error; err != nil {
		log.Println("Update error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to update cart item")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message":  "Cart item updated",
		"quantity": cartItem.Quantity,
	})
}

// RemoveCartItem deletes one entry from the caller's cart.
func RemoveCartItem(ctx *gin.Context) {
	userID, ok := middlewares.UserIDFromContext(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	cartItemId, err := strconv.Atoi(ctx.Param("cartItemId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid cart item ID")
		return
	}

	result := initializers.DB.Unscoped().
		Where("id = ? AND user_id = ?", cartItemId, userID).
		Delete(&models.CartItem{})
	if result.Error != nil {
		log.Println("Delete error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to remove cart item")
		return
	}
	if result.RowsAffected == 0 {
		sendErrorResponse(ctx, http.StatusNotFound, "Cart item not found")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Item removed from cart"})
}
