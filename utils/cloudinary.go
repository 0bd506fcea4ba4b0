package utils

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// UploadToCloudinary uploads an image to the configured Cloudinary account
// and returns the secure URL of the stored asset.
func UploadToCloudinary(file io.Reader, filename, folder, publicID string) (string, error) {
	cloudName := os.Getenv("CLOUDINARY_CLOUD_NAME")
	apiKey := os.Getenv("CLOUDINARY_API_KEY")
	apiSecret := os.Getenv("CLOUDINARY_API_SECRET")

	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return "", fmt.Errorf("cloudinary credentials are not set")
	}

	timestamp := fmt.Sprintf("%d", time.Now().Unix())
	params := map[string]string{
		"folder":    folder,
		"public_id": publicID,
		"timestamp": timestamp,
	}

	client := resty.New().SetTimeout(30 * time.Second)
	resp, err := client.R().
		SetFileReader("file", filename, file).
		SetFormData(map[string]string{
			"api_key":   apiKey,
			"folder":    folder,
			"public_id": publicID,
			"timestamp": timestamp,
			"signature": signCloudinaryParams(params, apiSecret),
		}).
		Post(fmt.Sprintf("https://api.cloudinary.com/v1_1/%s/image/upload", cloudName))

	if err != nil {
		return "", err
	}

	if resp.StatusCode() != 200 {
		return "", fmt.Errorf("cloudinary upload failed with status %d: %s", resp.StatusCode(), string(resp.Body()))
	}

	var result struct {
		SecureURL string `json:"secure_url"`
	}
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return "", fmt.Errorf("failed to parse cloudinary response: %w", err)
	}

	if result.SecureURL == "" {
		return "", fmt.Errorf("secure_url missing from cloudinary response")
	}

	return result.SecureURL, nil
}

// signCloudinaryParams builds the SHA-1 request signature Cloudinary expects:
// the parameters sorted by key, joined as key=value pairs with '&', followed
// by the API secret.
func signCloudinaryParams(params map[string]string, apiSecret string) string {
	keys := make([]string, 0, len(params))
	for key := range params {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, key := range keys {
		pairs = append(pairs, key+"="+params[key])
	}

	sum := sha1.Sum([]byte(strings.Join(pairs, "&") + apiSecret))
	return hex.EncodeToString(sum[:])
}
