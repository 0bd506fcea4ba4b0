package controllers

import (
	"errors"
	"log"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/bitebuddy/bitebuddy-api/initializers"
	"github.com/bitebuddy/bitebuddy-api/middlewares"
	"github.com/bitebuddy/bitebuddy-api/models"
	"github.com/bitebuddy/bitebuddy-api/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var allowedImageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

func profileResponse(user models.User) gin.H {
	return gin.H{
		"id":            user.ID,
		"fullName":      user.FullName,
		"phone":         user.Phone,
		"email":         user.Email,
		"location":      user.Location,
		"profilePicUrl": user.ProfilePicURL,
		"createdAt":     user.CreatedAt,
	}
}

// GetProfile returns the authenticated user's profile.
func GetProfile(ctx *gin.Context) {
	userID, ok := middlewares.UserIDFromContext(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	var user models.User
	if err := initializers.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "User not found")
		} else {
			log.Println("Database error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		}
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"profile": profileResponse(user)})
}

// UpdateProfile edits full name, email and location, plus an optional
// password change. The email must not belong to another account.
func UpdateProfile(ctx *gin.Context) {
	userID, ok := middlewares.UserIDFromContext(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	var profileData struct {
		FullName    string `json:"fullName" binding:"required"`
		Email       string `json:"email" binding:"required,email"`
		Location    string `json:"location" binding:"required"`
		NewPassword string `json:"newPassword"`
	}
	if err := ctx.ShouldBindJSON(&profileData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	if profileData.NewPassword != "" && len(profileData.NewPassword) < 6 {
		sendErrorResponse(ctx, http.StatusBadRequest, "Password must be at least 6 characters")
		return
	}

	var user models.User
	if err := initializers.DB.First(&user, userID).Error; err != nil {
		sendErrorResponse(ctx, http.StatusNotFound, "User not found")
		return
	}

	// Check if email already exists (excluding current user)
	var emailOwner models.User
	result := initializers.DB.
		Where("email = ? AND id != ?", profileData.Email, userID).
		Find(&emailOwner)
	if result.Error != nil {
		log.Println("Database error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	if result.RowsAffected > 0 {
		sendErrorResponse(ctx, http.StatusBadRequest, "Email already registered to another account")
		return
	}

	user.FullName = profileData.FullName
	user.Email = profileData.Email
	user.Location = profileData.Location

	if profileData.NewPassword != "" {
		hashedPassword, err := hashPassword(profileData.NewPassword)
		if err != nil {
			log.Println("Password hashing error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToHashPassword)
			return
		}
		user.Password = hashedPassword
	}

	if err := initializers.DB.Save(&user).Error; err != nil {
		log.Println("Profile update error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to update profile")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message": "Profile updated successfully!",
		"profile": profileResponse(user),
	})
}

// UploadProfilePic stores a new profile picture on Cloudinary and saves the
// returned URL on the user.
func UploadProfilePic(ctx *gin.Context) {
	userID, ok := middlewares.UserIDFromContext(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	file, err := ctx.FormFile("profilePic")
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "No file uploaded")
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExtensions[ext] {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid file type. Allowed: png, jpg, jpeg, gif")
		return
	}

	f, err := file.Open()
	if err != nil {
		log.Println("Error opening uploaded file:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to read uploaded file")
		return
	}
	defer f.Close()

	publicID := "user_" + uuid.NewString()
	url, err := utils.UploadToCloudinary(f, file.Filename, "profile_pics", publicID)
	if err != nil {
		log.Println("Profile photo upload failed:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Profile photo upload failed")
		return
	}

	if err := initializers.DB.Model(&models.User{}).
		Where("id = ?", userID).
		Update("profile_pic_url", url).Error; err != nil {
		log.Println("Error saving profile picture URL:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to save profile picture")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message":       "Profile picture updated",
		"profilePicUrl": url,
	})
}

// DeleteAccount removes the user row; the cascade constraints clear the
// user's cart entries and orders with it.
func DeleteAccount(ctx *gin.Context) {
	userID, ok := middlewares.UserIDFromContext(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	result := initializers.DB.Unscoped().Delete(&models.User{}, userID)
	if result.Error != nil {
		log.Println("Account deletion error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to delete account")
		return
	}
	if result.RowsAffected == 0 {
		sendErrorResponse(ctx, http.StatusNotFound, "User not found")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Account deleted"})
}

// GetDashboard summarizes the caller's account: profile, cart size and
// recent orders.
func GetDashboard(ctx *gin.Context) {
	userID, ok := middlewares.UserIDFromContext(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	var user models.User
	if err := initializers.DB.First(&user, userID).Error; err != nil {
		sendErrorResponse(ctx, http.StatusNotFound, "User not found")
		return
	}

	var cartCount int64
	initializers.DB.Model(&models.CartItem{}).Where("user_id = ?", userID).Count(&cartCount)

	var orderCount int64
	initializers.DB.Model(&models.Order{}).Where("user_id = ?", userID).Count(&orderCount)

	var recentOrders []models.Order
	initializers.DB.
		Preload("OrderItems").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(5).
		Find(&recentOrders)

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"profile":       profileResponse(user),
		"cartItemCount": cartCount,
		"orderCount":    orderCount,
		"recentOrders":  recentOrders,
	})
}
