package utils

import (
	"errors"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ErrUnsupportedImageType rejects uploads outside the extension allow-list.
var ErrUnsupportedImageType = errors.New("unsupported image type")

var allowedImageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

// ValidateImageName checks the filename against the image extension allow-list.
func ValidateImageName(filename string) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedImageExtensions[ext] {
		return ErrUnsupportedImageType
	}
	return nil
}

// SaveProfileImage stores an uploaded image under dir with a unique name and
// returns the stable reference path to persist on the user record.
func SaveProfileImage(c *fiber.Ctx, file *multipart.FileHeader, dir string, userID uuid.UUID) (string, error) {
	if err := ValidateImageName(file.Filename); err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	name := fmt.Sprintf("%s_%d%s", userID, time.Now().Unix(), strings.ToLower(filepath.Ext(file.Filename)))
	if err := c.SaveFile(file, filepath.Join(dir, name)); err != nil {
		return "", err
	}

	return filepath.ToSlash(filepath.Join("images/profile", name)), nil
}
