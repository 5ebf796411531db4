package models

// Product is a catalog entry, read-only from the storefront's perspective.
type Product struct {
	BaseModel
	Name        string  `gorm:"not null" json:"name"`
	Price       float64 `gorm:"not null" json:"price"`
	Description string  `gorm:"type:text;not null" json:"description"`
	Category    string  `gorm:"index;not null" json:"category"`
	ImageURL    string  `gorm:"not null" json:"image_url"`
}
