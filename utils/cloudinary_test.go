package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignCloudinaryParams(t *testing.T) {
	// Parameters must be sorted by key before signing.
	signature := signCloudinaryParams(map[string]string{
		"timestamp": "1700000000",
		"folder":    "profile_pics",
		"public_id": "user_abc",
	}, "secret")

	same := signCloudinaryParams(map[string]string{
		"public_id": "user_abc",
		"folder":    "profile_pics",
		"timestamp": "1700000000",
	}, "secret")

	assert.Equal(t, signature, same)
	assert.Len(t, signature, 40) // hex SHA-1

	different := signCloudinaryParams(map[string]string{
		"public_id": "user_abc",
		"folder":    "profile_pics",
		"timestamp": "1700000000",
	}, "other-secret")
	assert.NotEqual(t, signature, different)
}

func TestGenerateCode(t *testing.T) {
	code, err := GenerateCode(16)
	assert.NoError(t, err)
	assert.Len(t, code, 32)

	other, err := GenerateCode(16)
	assert.NoError(t, err)
	assert.NotEqual(t, code, other)
}
