package database

import (
	"errors"
	"log"

	"gorm.io/gorm"

	"github.com/example/fashionstore/internal/config"
	"github.com/example/fashionstore/internal/models"
	"github.com/example/fashionstore/internal/utils"
)

// Seed populates the catalog with the default product set if it is empty.
func Seed(conn *gorm.DB) error {
	var count int64
	if err := conn.Model(&models.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	products := []models.Product{
		{Name: "Men's Classic T-Shirt", Price: 29.99, Description: "Comfortable cotton t-shirt for everyday wear", Category: "men", ImageURL: "static/images/men/classic-tshirt.jpg"},
		{Name: "Men's Denim Jeans", Price: 79.99, Description: "Classic fit denim jeans", Category: "men", ImageURL: "static/images/men/denim-jeans.jpg"},
		{Name: "Men's Casual Outfit", Price: 89.99, Description: "Stylish casual outfit for any occasion", Category: "men", ImageURL: "static/images/men/casual-outfit.jpg"},
		{Name: "Men's Formal Shirt", Price: 69.99, Description: "Cotton formal shirt for business wear", Category: "men", ImageURL: "static/images/men/formal-shirt.jpg"},
		{Name: "Men's Street Style", Price: 129.99, Description: "Modern street style ensemble", Category: "men", ImageURL: "static/images/men/street-style.jpg"},
		{Name: "Women's Summer Dress", Price: 59.99, Description: "Elegant floral summer dress", Category: "women", ImageURL: "static/images/women/summer-dress.jpg"},
		{Name: "Women's Casual Outfit", Price: 89.99, Description: "Stylish casual ensemble", Category: "women", ImageURL: "static/images/women/casual-outfit.jpg"},
		{Name: "Women's Fashion Collection", Price: 149.99, Description: "Trendy fashion collection", Category: "women", ImageURL: "static/images/women/fashion-collection.jpg"},
		{Name: "Women's Elegant Dress", Price: 119.99, Description: "Elegant dress for special occasions", Category: "women", ImageURL: "static/images/women/elegant-dress.jpg"},
		{Name: "Women's Street Style", Price: 79.99, Description: "Modern street style outfit", Category: "women", ImageURL: "static/images/women/street-style.jpg"},
		{Name: "Kids' Casual T-Shirt", Price: 24.99, Description: "Comfortable cotton t-shirt for kids", Category: "kids", ImageURL: "static/images/kids/kids-tshirt.jpg"},
		{Name: "Kids' Denim Jeans", Price: 39.99, Description: "Durable denim jeans for active kids", Category: "kids", ImageURL: "static/images/kids/kids-jeans.jpg"},
		{Name: "Kids' Summer Outfit", Price: 49.99, Description: "Colorful summer outfit for children", Category: "kids", ImageURL: "static/images/kids/kids-summer.jpg"},
		{Name: "Kids' School Uniform", Price: 59.99, Description: "Smart and comfortable school uniform", Category: "kids", ImageURL: "static/images/kids/kids-uniform.jpg"},
		{Name: "Kids' Party Dress", Price: 44.99, Description: "Elegant party dress for special occasions", Category: "kids", ImageURL: "static/images/kids/kids-party.jpg"},
		{Name: "Kids' Winter Jacket", Price: 64.99, Description: "Warm and cozy winter jacket for cold days", Category: "kids", ImageURL: "static/images/kids/kids-winter.jpg"},
		{Name: "Kids' Sneakers", Price: 34.99, Description: "Comfortable and stylish sneakers for active kids", Category: "kids", ImageURL: "static/images/kids/kids-shoes.jpg"},
		{Name: "Kids' Backpack", Price: 29.99, Description: "Colorful backpack perfect for school or travel", Category: "kids", ImageURL: "static/images/kids/kids-backpack.jpg"},
		{Name: "Kids' Pajama Set", Price: 27.99, Description: "Soft and comfortable pajama set", Category: "kids", ImageURL: "static/images/kids/kids-pajama.jpg"},
		{Name: "Kids' Accessories Set", Price: 19.99, Description: "Cute hair accessories set", Category: "kids", ImageURL: "static/images/kids/kids-accessories.jpg"},
	}

	if err := conn.Create(&products).Error; err != nil {
		return err
	}

	log.Printf("seeded catalog with %d products", len(products))
	return nil
}

// EnsureAdmin creates the initial admin account from config if it does not
// exist. A missing ADMIN_PASSWORD skips the bootstrap entirely.
func EnsureAdmin(conn *gorm.DB, cfg *config.Config) error {
	if cfg.AdminPassword == "" {
		return nil
	}

	var existing models.User
	err := conn.Where("username = ?", cfg.AdminUsername).First(&existing).Error
	if err == nil {
		if existing.IsAdmin {
			return nil
		}
		return conn.Model(&existing).Update("is_admin", true).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := utils.HashPassword(cfg.AdminPassword)
	if err != nil {
		return err
	}

	admin := models.User{
		Username:     cfg.AdminUsername,
		Email:        cfg.AdminEmail,
		PasswordHash: hash,
		FirstName:    "Admin",
		LastName:     "User",
		IsAdmin:      true,
	}

	if err := conn.Create(&admin).Error; err != nil {
		return err
	}

	log.Printf("admin account %q created", cfg.AdminUsername)
	return nil
}
