package controllers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/bitebuddy/bitebuddy-api/initializers"
	"github.com/bitebuddy/bitebuddy-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// getAWSUploader returns a configured AWS S3 uploader
func getAWSUploader() (*manager.Uploader, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}

	client := s3.NewFromConfig(cfg)
	return manager.NewUploader(client), nil
}

// UploadCatalogPhoto uploads an image for a service or menu item to S3 and
// stores the resulting URL on the catalog row.
func UploadCatalogPhoto(ctx *gin.Context) {
	file, err := ctx.FormFile("photo")
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "No file uploaded", err)
		return
	}

	itemType := ctx.PostForm("itemType")
	if !models.ValidItemType(itemType) {
		respondWithError(ctx, http.StatusBadRequest, "Invalid item type", nil)
		return
	}

	itemIdStr := ctx.PostForm("itemId")
	if itemIdStr == "" {
		respondWithError(ctx, http.StatusBadRequest, "Missing itemId", nil)
		return
	}

	itemId, err := strconv.Atoi(itemIdStr)
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid itemId", err)
		return
	}

	// Validate the catalog row exists before uploading anything.
	var lookupErr error
	if itemType == models.ItemTypeService {
		lookupErr = initializers.DB.First(&models.Service{}, itemId).Error
	} else {
		lookupErr = initializers.DB.First(&models.MenuItem{}, itemId).Error
	}
	if lookupErr != nil {
		if errors.Is(lookupErr, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Item not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to validate item", lookupErr)
		}
		return
	}

	uploader, err := getAWSUploader()
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to configure AWS", err)
		return
	}

	f, err := file.Open()
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to read uploaded file", err)
		return
	}
	defer f.Close()

	bucket := os.Getenv("S3_BUCKET")
	if bucket == "" {
		bucket = "bitebuddy"
	}

	// Unique key to prevent overwrites
	key := fmt.Sprintf("%s-%d-%s-%s", itemType, itemId, time.Now().Format("20060102150405"), file.Filename)

	result, err := uploader.Upload(context.TODO(), &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        f,
		ACL:         "public-read",
		ContentType: aws.String(file.Header.Get("Content-Type")),
	})
	if err != nil {
		log.Printf("Error uploading file %s: %v", file.Filename, err)
		respondWithError(ctx, http.StatusInternalServerError, "Failed to upload photo", err)
		return
	}

	var updateErr error
	if itemType == models.ItemTypeService {
		updateErr = initializers.DB.Model(&models.Service{}).
			Where("id = ?", itemId).Update("photo", result.Location).Error
	} else {
		updateErr = initializers.DB.Model(&models.MenuItem{}).
			Where("id = ?", itemId).Update("photo", result.Location).Error
	}
	if updateErr != nil {
		log.Printf("Error saving photo URL to database: %v", updateErr)
		respondWithError(ctx, http.StatusInternalServerError, "Photo uploaded but not saved", updateErr)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Photo uploaded",
		"url":     result.Location,
	})
}
