package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to the BiteBuddy API ❤️. Enjoy seamless interaction with this API.

The following are the endpoints for this API:

AUTH
- POST "/auth/signup" - Create user account
- POST "/auth/login" - Access user account (phone or email + password)
- POST "/auth/logout" - Log out
- POST "/auth/verify-email/:activationToken" - Activate user account
- POST "/auth/forgot-password" - Request password reset
- POST "/auth/reset-password/:resetToken" - Reset user password

CATALOG
- GET "/services" - List active services
- GET "/services/:id" - Get service by ID
- GET "/menu" - List active menu items
- GET "/menu/:id" - Get menu item by ID

CART
- POST "/cart" - Add item to cart (increments quantity if already carted)
- GET "/cart" - View cart with totals
- PATCH "/cart/:cartItemId" - Increase or decrease quantity
- DELETE "/cart/:cartItemId" - Remove item from cart

ORDERS
- POST "/checkout" - Place an order from the cart
- GET "/orders" - Order history
- GET "/orders/:orderId" - Get order by ID

PROFILE
- GET "/dashboard" - Account summary
- GET "/profile" - View profile
- PUT "/profile" - Update profile
- POST "/profile/photo" - Upload profile picture
- DELETE "/profile" - Delete account

ADMIN
- POST "/admin/services" | PUT "/admin/services/:id" - Manage services
- POST "/admin/menu" | PUT "/admin/menu/:id" - Manage menu items
- POST "/admin/catalog-photos" - Upload catalog photo
- GET "/admin/orders" - List all orders
- PATCH "/admin/orders/:orderId" - Update order status
- DELETE "/admin/orders/:orderId" - Delete order
- GET "/admin/orders/pending-count" - Pending order count`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
