package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/fashionstore/internal/config"
	"github.com/example/fashionstore/internal/middleware"
	"github.com/example/fashionstore/internal/models"
	"github.com/example/fashionstore/internal/utils"
)

// ProfileHandler manages user profile endpoints.
type ProfileHandler struct {
	db  *gorm.DB
	cfg *config.Config
}

// NewProfileHandler constructs ProfileHandler.
func NewProfileHandler(db *gorm.DB, cfg *config.Config) *ProfileHandler {
	return &ProfileHandler{db: db, cfg: cfg}
}

// GetProfile returns the authenticated user's profile.
func (h *ProfileHandler) GetProfile(c *fiber.Ctx) error {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var user models.User
	if err := h.db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "user not found")
		}
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"id":             user.ID,
			"username":       user.Username,
			"email":          user.Email,
			"first_name":     user.FirstName,
			"last_name":      user.LastName,
			"phone":          user.Phone,
			"profile_image":  user.ProfileImage,
			"street_address": user.StreetAddress,
			"city":           user.City,
			"state":          user.State,
			"postal_code":    user.PostalCode,
			"country":        user.Country,
			"full_address":   user.FullAddress(),
			"created_at":     user.CreatedAt,
		},
	})
}

type updateProfileRequest struct {
	FirstName     *string `json:"first_name" form:"first_name"`
	LastName      *string `json:"last_name" form:"last_name"`
	Phone         *string `json:"phone" form:"phone"`
	StreetAddress *string `json:"street_address" form:"street_address"`
	City          *string `json:"city" form:"city"`
	State         *string `json:"state" form:"state"`
	PostalCode    *string `json:"postal_code" form:"postal_code"`
	Country       *string `json:"country" form:"country"`
}

// UpdateProfile applies a partial profile update, optionally with a new
// profile image. The update is all-or-nothing: a rejected image leaves every
// field untouched.
func (h *ProfileHandler) UpdateProfile(c *fiber.Ctx) error {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var req updateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	updates := profileUpdates(req)

	// Validate and store the image before committing anything so a bad
	// upload cannot leave a half-applied update.
	if file, err := c.FormFile("profile_image"); err == nil && file != nil {
		path, err := utils.SaveProfileImage(c, file, h.cfg.UploadDir, userID)
		if err != nil {
			if errors.Is(err, utils.ErrUnsupportedImageType) {
				return fiber.NewError(fiber.StatusBadRequest, "invalid file type, only png, jpg, jpeg and gif images are allowed")
			}
			return err
		}
		updates["profile_image"] = path
	}

	if len(updates) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "no fields to update")
	}
	updates["updated_at"] = time.Now()

	if err := h.db.Model(&models.User{}).Where("id = ?", userID).Updates(updates).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fiber.NewError(fiber.StatusConflict, "phone already exists")
		}
		return err
	}

	return c.JSON(fiber.Map{"success": true, "message": "profile updated"})
}

// profileUpdates maps the set request fields to their database columns. An
// empty phone clears the column to NULL; the column carries a unique index,
// so storing "" for every cleared phone would collide on the second user.
func profileUpdates(req updateProfileRequest) map[string]interface{} {
	updates := map[string]interface{}{}
	if req.FirstName != nil {
		updates["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		updates["last_name"] = *req.LastName
	}
	if req.Phone != nil {
		if *req.Phone == "" {
			updates["phone"] = nil
		} else {
			updates["phone"] = *req.Phone
		}
	}
	if req.StreetAddress != nil {
		updates["street_address"] = *req.StreetAddress
	}
	if req.City != nil {
		updates["city"] = *req.City
	}
	if req.State != nil {
		updates["state"] = *req.State
	}
	if req.PostalCode != nil {
		updates["postal_code"] = *req.PostalCode
	}
	if req.Country != nil {
		updates["country"] = *req.Country
	}
	return updates
}
