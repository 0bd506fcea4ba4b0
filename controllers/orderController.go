package controllers

import (
	"errors"
	"log"
	"math"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/bitebuddy/bitebuddy-api/initializers"
	"github.com/bitebuddy/bitebuddy-api/middlewares"
	"github.com/bitebuddy/bitebuddy-api/models"
	"github.com/bitebuddy/bitebuddy-api/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func sendOrderConfirmationEmail(user models.User, order models.Order) error {
	emailData := utils.EmailData{
		Name:        user.FullName,
		Message:     "Your order has been placed and is being processed.",
		OrderID:     order.ID,
		TotalAmount: order.TotalAmount,
	}

	templatePath := filepath.Join("templates", "order_confirmation.html")
	return utils.SendEmail(user.Email, "Order Confirmation", emailData, templatePath)
}

// Checkout converts the caller's cart into an order in a single transaction:
// price every line from the catalog's current final price, insert the order
// and its items, clear the cart, commit. Any failure rolls the whole thing
// back.
func Checkout(ctx *gin.Context) {
	userID, ok := middlewares.UserIDFromContext(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	var checkoutData struct {
		PaymentMode      string `json:"paymentMode" binding:"required"`
		DeliveryLocation string `json:"deliveryLocation" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&checkoutData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Payment mode and delivery location are required")
		return
	}

	if !models.ValidPaymentMode(checkoutData.PaymentMode) {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid payment mode")
		return
	}

	tx := initializers.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var cartItems []models.CartItem
	if err := tx.Where("user_id = ?", userID).Find(&cartItems).Error; err != nil {
		tx.Rollback()
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to load cart")
		return
	}

	if len(cartItems) == 0 {
		tx.Rollback()
		sendErrorResponse(ctx, http.StatusBadRequest, "Your cart is empty")
		return
	}

	var orderItems []models.OrderItem
	var totalAmount float64
	for _, cartItem := range cartItems {
		item, err := lookupActiveItem(tx, cartItem.ItemType, cartItem.ItemID)
		if err != nil {
			tx.Rollback()
			if errors.Is(err, gorm.ErrRecordNotFound) {
				sendErrorResponse(ctx, http.StatusBadRequest, "An item in your cart is no longer available")
			} else {
				log.Println("Database error:", err)
				sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to price cart")
			}
			return
		}

		totalAmount += item.Price * float64(cartItem.Quantity)
		orderItems = append(orderItems, models.OrderItem{
			ItemType: cartItem.ItemType,
			ItemID:   cartItem.ItemID,
			Name:     item.Name,
			Quantity: cartItem.Quantity,
			Price:    item.Price,
		})
	}
	totalAmount = math.Round(totalAmount*100) / 100

	order := models.Order{
		UserID:           userID,
		TotalAmount:      totalAmount,
		PaymentMode:      checkoutData.PaymentMode,
		DeliveryLocation: checkoutData.DeliveryLocation,
		Status:           models.OrderStatusPending,
	}
	if err := tx.Create(&order).Error; err != nil {
		tx.Rollback()
		log.Println("Order creation error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to create order")
		return
	}

	for i := range orderItems {
		orderItems[i].OrderID = order.ID
		if err := tx.Create(&orderItems[i]).Error; err != nil {
			tx.Rollback()
			log.Println("Order item creation error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to create order items")
			return
		}
	}

	if err := tx.Unscoped().Where("user_id = ?", userID).Delete(&models.CartItem{}).Error; err != nil {
		tx.Rollback()
		log.Println("Cart clear error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to clear cart")
		return
	}

	if err := tx.Commit().Error; err != nil {
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to save order")
		return
	}

	order.OrderItems = orderItems

	// Confirmation email is best effort; the order already committed.
	var user models.User
	if err := initializers.DB.First(&user, userID).Error; err == nil {
		if err := sendOrderConfirmationEmail(user, order); err != nil {
			log.Println("Error sending order confirmation email:", err)
		}
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"message": "Order placed successfully!",
		"order":   order,
	})
}

// GetOrderHistory returns the caller's orders, newest first.
func GetOrderHistory(ctx *gin.Context) {
	userID, ok := middlewares.UserIDFromContext(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	var orders []models.Order
	result := initializers.DB.
		Preload("OrderItems").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders)
	if result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch orders.")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"orders": orders})
}

// GetOrder returns one order; only the owner or an admin may read it.
func GetOrder(ctx *gin.Context) {
	userID, ok := middlewares.UserIDFromContext(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	orderId, err := strconv.Atoi(ctx.Param("orderId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse orderId")
		return
	}

	var order models.Order
	result := initializers.DB.Preload("OrderItems").First(&order, orderId)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Order not found")
		} else {
			log.Println(result.Error)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch order.")
		}
		return
	}

	if order.UserID != userID && !isAdmin(ctx) {
		sendErrorResponse(ctx, http.StatusForbidden, "You do not have access to this order")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"order": order})
}

func isAdmin(ctx *gin.Context) bool {
	role, ok := middlewares.RoleFromContext(ctx)
	return ok && role == "admin"
}

// GetOrders lists all orders with pagination and search, for admins.
func GetOrders(ctx *gin.Context) {
	var orders []models.Order

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "15"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 15
	}
	offset := (page - 1) * limit

	sortOrder := ctx.DefaultQuery("sort", "desc")
	if sortOrder != "asc" && sortOrder != "desc" {
		sortOrder = "desc"
	}

	query := initializers.DB.Preload("OrderItems")

	if search := ctx.Query("search"); search != "" {
		query = query.Where("delivery_location LIKE ?", "%"+search+"%")
	}

	query = query.Order("created_at " + sortOrder)

	result := query.Limit(limit).Offset(offset).Find(&orders)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch orders", result.Error)
		return
	}

	var count int64
	countQuery := initializers.DB.Model(&models.Order{})
	if search := ctx.Query("search"); search != "" {
		countQuery = countQuery.Where("delivery_location LIKE ?", "%"+search+"%")
	}
	countQuery.Count(&count)

	previousPage := page - 1
	nextPage := page + 1
	totalPages := math.Ceil(float64(count) / float64(limit))

	ctx.JSON(http.StatusOK, gin.H{
		"orders": orders,
		"metadata": gin.H{
			"total":        count,
			"currentPage":  page,
			"limit":        limit,
			"hasPrevPage":  previousPage > 0,
			"hasNextPage":  int(totalPages) > page,
			"previousPage": previousPage,
			"nextPage":     nextPage,
		},
	})
}

// UpdateOrderStatus moves an order to a new status. Only pending orders may
// transition, and only to fulfilled or cancelled.
func UpdateOrderStatus(ctx *gin.Context) {
	var orderStatusData struct {
		Status string `json:"status" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&orderStatusData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse request body")
		return
	}

	orderId, err := strconv.Atoi(ctx.Param("orderId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse orderId")
		return
	}

	var order models.Order
	if result := initializers.DB.First(&order, orderId); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Order not found")
		} else {
			log.Println(result.Error)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch order")
		}
		return
	}

	if !models.ValidOrderTransition(order.Status, orderStatusData.Status) {
		sendErrorResponse(ctx, http.StatusBadRequest,
			"Cannot change order status from "+order.Status+" to "+orderStatusData.Status)
		return
	}

	if result := initializers.DB.Model(&order).Update("status", orderStatusData.Status); result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to update order status")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Order status updated successfully.",
	})
}

// DeleteOrder removes an order and, through the cascade constraint, its items.
func DeleteOrder(ctx *gin.Context) {
	orderId, err := strconv.Atoi(ctx.Param("orderId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse order id.")
		return
	}

	result := initializers.DB.Unscoped().Delete(&models.Order{}, orderId)
	if result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to delete order.")
		return
	}
	if result.RowsAffected == 0 {
		sendErrorResponse(ctx, http.StatusNotFound, "Order not found")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Order deleted successfully."})
}

// GetPendingOrderCount reports how many orders still await fulfilment.
func GetPendingOrderCount(ctx *gin.Context) {
	var count int64

	result := initializers.DB.
		Model(&models.Order{}).
		Where("status = ?", models.OrderStatusPending).
		Count(&count)
	if result.Error != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to count pending orders"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"pendingOrderCount": count})
}
