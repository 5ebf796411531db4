package models

import (
	"strings"
	"time"
)

// User represents a registered customer.
type User struct {
	BaseModel
	Username     string  `gorm:"uniqueIndex;not null" json:"username"`
	Email        string  `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string  `gorm:"not null" json:"-"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	Phone        *string `gorm:"uniqueIndex" json:"phone"`
	ProfileImage string  `gorm:"default:images/profile/default-profile.jpg" json:"profile_image"`
	IsAdmin      bool    `gorm:"default:false" json:"is_admin"`

	StreetAddress string `json:"street_address"`
	City          string `json:"city"`
	State         string `json:"state"`
	PostalCode    string `json:"postal_code"`
	Country       string `gorm:"default:India" json:"country"`

	Orders []Order `json:"orders,omitempty"`
}

// FullAddress joins the non-empty address components into a single line.
func (u *User) FullAddress() string {
	parts := make([]string, 0, 5)
	for _, p := range []string{u.StreetAddress, u.City, u.State, u.PostalCode, u.Country} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return "No address provided"
	}
	return strings.Join(parts, ", ")
}

// OTP is a one-time passcode issued for phone-based login.
type OTP struct {
	BaseModel
	Phone     string    `gorm:"index;not null" json:"phone"`
	Code      string    `gorm:"not null" json:"code"`
	ExpiresAt time.Time `json:"expires_at"`
	Verified  bool      `gorm:"default:false" json:"verified"`
}
