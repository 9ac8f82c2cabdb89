package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowedImageType(t *testing.T) {
	assert.True(t, AllowedImageType("image/jpeg"))
	assert.True(t, AllowedImageType("image/png"))
	assert.True(t, AllowedImageType("image/webp"))
	assert.True(t, AllowedImageType("image/gif"))

	// media type parameters and casing are normalized away
	assert.True(t, AllowedImageType("image/jpeg; charset=utf-8"))
	assert.True(t, AllowedImageType("IMAGE/PNG"))

	assert.False(t, AllowedImageType("image/svg+xml"))
	assert.False(t, AllowedImageType("application/pdf"))
	assert.False(t, AllowedImageType("text/html"))
	assert.False(t, AllowedImageType(""))
}
