package controllers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/bitebuddy/bitebuddy-api/initializers"
	"github.com/bitebuddy/bitebuddy-api/middlewares"
	"github.com/bitebuddy/bitebuddy-api/models"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// setupTestDB points the package at a fresh in-memory sqlite database with
// foreign keys enforced, so cascade deletes behave like Postgres.
func setupTestDB(t *testing.T) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	os.Setenv("JWT_SECRET", "test-secret")

	db, err := gorm.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A single connection keeps every query on the same in-memory database.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Service{},
		&models.MenuItem{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	))

	initializers.DB = db
}

func newTestRouter() *gin.Engine {
	router := gin.New()

	auth := router.Group("/auth")
	auth.POST("/signup", Signup)
	auth.POST("/login", Login)
	auth.POST("/verify-email/:activationToken", ActivateAccount)

	authed := router.Group("/", middlewares.RequireAuth())
	authed.GET("/services", GetServices)
	authed.GET("/menu", GetMenu)
	authed.POST("/cart", AddToCart)
	authed.GET("/cart", GetCart)
	authed.PATCH("/cart/:cartItemId", UpdateCartItem)
	authed.DELETE("/cart/:cartItemId", RemoveCartItem)
	authed.POST("/checkout", Checkout)
	authed.GET("/orders", GetOrderHistory)
	authed.GET("/orders/:orderId", GetOrder)
	authed.GET("/profile", GetProfile)
	authed.PUT("/profile", UpdateProfile)
	authed.DELETE("/profile", DeleteAccount)
	authed.GET("/dashboard", GetDashboard)

	admin := router.Group("/admin", middlewares.RequireAuth(), middlewares.RequireAdmin())
	admin.POST("/services", CreateService)
	admin.POST("/menu", CreateMenuItem)
	admin.PATCH("/orders/:orderId", UpdateOrderStatus)
	admin.DELETE("/orders/:orderId", DeleteOrder)
	admin.GET("/orders/pending-count", GetPendingOrderCount)

	return router
}

func createTestUser(t *testing.T, phone, email, role string) models.User {
	t.Helper()

	hashed, err := hashPassword("secret123")
	require.NoError(t, err)

	user := models.User{
		FullName:         "Test User",
		Phone:            phone,
		Email:            email,
		Location:         "Springfield",
		Password:         hashed,
		Role:             role,
		AccountActivated: true,
	}
	require.NoError(t, initializers.DB.Create(&user).Error)
	return user
}

func tokenFor(t *testing.T, user models.User) string {
	t.Helper()
	token, err := generateJWT(user)
	require.NoError(t, err)
	return token
}

func createTestService(t *testing.T, name string, price, discount float64, status string) models.Service {
	t.Helper()
	service := models.Service{
		Name:        name,
		Price:       price,
		Discount:    discount,
		Description: "test service",
		Status:      status,
	}
	require.NoError(t, initializers.DB.Create(&service).Error)
	return service
}

func createTestMenuItem(t *testing.T, name string, price, discount float64, status string) models.MenuItem {
	t.Helper()
	menuItem := models.MenuItem{
		Name:        name,
		Price:       price,
		Discount:    discount,
		Description: "test menu item",
		Status:      status,
	}
	require.NoError(t, initializers.DB.Create(&menuItem).Error)
	return menuItem
}

func performRequest(router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		data, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(data)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func decodeResponse(t *testing.T, recorder *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var payload map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))
	return payload
}
