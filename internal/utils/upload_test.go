package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateImageName(t *testing.T) {
	for _, name := range []string{"photo.png", "photo.jpg", "photo.jpeg", "photo.gif", "PHOTO.JPG"} {
		assert.NoError(t, ValidateImageName(name), name)
	}

	for _, name := range []string{"script.exe", "photo.svg", "photo.pdf", "photo", "photo.png.sh"} {
		assert.ErrorIs(t, ValidateImageName(name), ErrUnsupportedImageType, name)
	}
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret")
	assert.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)

	assert.True(t, CheckPassword(hash, "s3cret"))
	assert.False(t, CheckPassword(hash, "wrong"))
}
