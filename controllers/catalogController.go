package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/bitebuddy/bitebuddy-api/initializers"
	"github.com/bitebuddy/bitebuddy-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Common error response helper
func respondWithError(ctx *gin.Context, statusCode int, message string, err error) {
	errMsg := ""
	if err != nil {
		errMsg = err.Error()
	}
	ctx.JSON(statusCode, gin.H{
		"message": message,
		"error":   errMsg,
	})
}

func listCatalog(ctx *gin.Context, dest any, model any, countDest *int64) error {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	offset := (page - 1) * limit

	query := initializers.DB.Model(model).Where("status = ?", models.StatusActive)
	countQuery := initializers.DB.Model(model).Where("status = ?", models.StatusActive)

	if search := ctx.Query("search"); search != "" {
		query = query.Where("name LIKE ?", "%"+search+"%")
		countQuery = countQuery.Where("name LIKE ?", "%"+search+"%")
	}

	if err := query.Order("name").Limit(limit).Offset(offset).Find(dest).Error; err != nil {
		return err
	}
	return countQuery.Count(countDest).Error
}

// GetServices lists active services ordered by name.
func GetServices(ctx *gin.Context) {
	var services []models.Service
	var count int64
	if err := listCatalog(ctx, &services, &models.Service{}, &count); err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch services", err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"services": services,
		"metadata": gin.H{"total": count},
	})
}

// GetMenu lists active menu items ordered by name.
func GetMenu(ctx *gin.Context) {
	var menuItems []models.MenuItem
	var count int64
	if err := listCatalog(ctx, &menuItems, &models.MenuItem{}, &count); err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch menu", err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"menu":     menuItems,
		"metadata": gin.H{"total": count},
	})
}

func GetService(ctx *gin.Context) {
	serviceId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid service ID", err)
		return
	}

	var service models.Service
	result := initializers.DB.Where("status = ?", models.StatusActive).First(&service, serviceId)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Service not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve service", result.Error)
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"service": service})
}

func GetMenuItem(ctx *gin.Context) {
	menuId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid menu item ID", err)
		return
	}

	var menuItem models.MenuItem
	result := initializers.DB.Where("status = ?", models.StatusActive).First(&menuItem, menuId)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Menu item not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve menu item", result.Error)
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"menuItem": menuItem})
}

// Admin catalog management

func CreateService(ctx *gin.Context) {
	var service models.Service
	if err := ctx.ShouldBindJSON(&service); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if service.Status != "" && !models.ValidStatus(service.Status) {
		respondWithError(ctx, http.StatusBadRequest, "Invalid status", nil)
		return
	}

	if err := initializers.DB.Create(&service).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to create service", err)
		return
	}

	ctx.JSON(http.StatusCreated, service)
}

func CreateMenuItem(ctx *gin.Context) {
	var menuItem models.MenuItem
	if err := ctx.ShouldBindJSON(&menuItem); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if menuItem.Status != "" && !models.ValidStatus(menuItem.Status) {
		respondWithError(ctx, http.StatusBadRequest, "Invalid status", nil)
		return
	}

	if err := initializers.DB.Create(&menuItem).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to create menu item", err)
		return
	}

	ctx.JSON(http.StatusCreated, menuItem)
}

func UpdateService(ctx *gin.Context) {
	serviceId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid service ID", err)
		return
	}

	var service models.Service
	if err := initializers.DB.First(&service, serviceId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Service not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to fetch service", err)
		}
		return
	}

	var updateData models.Service
	if err := ctx.ShouldBindJSON(&updateData); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if updateData.Status != "" && !models.ValidStatus(updateData.Status) {
		respondWithError(ctx, http.StatusBadRequest, "Invalid status", nil)
		return
	}

	service.Name = updateData.Name
	service.Photo = updateData.Photo
	service.Price = updateData.Price
	service.Discount = updateData.Discount
	service.Description = updateData.Description
	service.Tags = updateData.Tags
	if updateData.Status != "" {
		service.Status = updateData.Status
	}

	// Save runs the BeforeSave hook, which recomputes the final price.
	if err := initializers.DB.Save(&service).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to update service", err)
		return
	}

	ctx.JSON(http.StatusOK, service)
}

func UpdateMenuItem(ctx *gin.Context) {
	menuId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid menu item ID", err)
		return
	}

	var menuItem models.MenuItem
	if err := initializers.DB.First(&menuItem, menuId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Menu item not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to fetch menu item", err)
		}
		return
	}

	var updateData models.MenuItem
	if err := ctx.ShouldBindJSON(&updateData); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if updateData.Status != "" && !models.ValidStatus(updateData.Status) {
		respondWithError(ctx, http.StatusBadRequest, "Invalid status", nil)
		return
	}

	menuItem.Name = updateData.Name
	menuItem.Photo = updateData.Photo
	menuItem.Price = updateData.Price
	menuItem.Discount = updateData.Discount
	menuItem.Description = updateData.Description
	menuItem.Tags = updateData.Tags
	if updateData.Status != "" {
		menuItem.Status = updateData.Status
	}

	if err := initializers.DB.Save(&menuItem).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to update menu item", err)
		return
	}

	ctx.JSON(http.StatusOK, menuItem)
}
