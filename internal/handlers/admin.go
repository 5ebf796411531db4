package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/fashionstore/internal/catalog"
	"github.com/example/fashionstore/internal/currency"
	"github.com/example/fashionstore/internal/models"
	"github.com/example/fashionstore/internal/utils"
)

// AdminHandler manages admin-only endpoints.
type AdminHandler struct {
	db    *gorm.DB
	store *catalog.Store
	conv  currency.Converter
}

// NewAdminHandler constructs AdminHandler.
func NewAdminHandler(db *gorm.DB, store *catalog.Store, conv currency.Converter) *AdminHandler {
	return &AdminHandler{db: db, store: store, conv: conv}
}

// DashboardStats returns aggregate statistics for the admin dashboard.
func (h *AdminHandler) DashboardStats(c *fiber.Ctx) error {
	var totalUsers int64
	if err := h.db.Model(&models.User{}).Count(&totalUsers).Error; err != nil {
		return err
	}

	var totalOrders int64
	if err := h.db.Model(&models.Order{}).Count(&totalOrders).Error; err != nil {
		return err
	}

	var totalProducts int64
	if err := h.db.Model(&models.Product{}).Count(&totalProducts).Error; err != nil {
		return err
	}

	var totalRevenue float64
	if err := h.db.Model(&models.Order{}).
		Select("COALESCE(SUM(order_total), 0)").
		Scan(&totalRevenue).Error; err != nil {
		return err
	}

	type categoryCount struct {
		Category string `json:"category"`
		Count    int64  `json:"count"`
	}
	var categoryCounts []categoryCount
	if err := h.db.Model(&models.Product{}).
		Select("category, count(*) as count").
		Group("category").
		Scan(&categoryCounts).Error; err != nil {
		return err
	}

	productsByCategory := make(map[string]int64)
	for _, cc := range categoryCounts {
		productsByCategory[cc.Category] = cc.Count
	}

	var recentOrders []models.Order
	if err := h.db.Order("order_date desc").Limit(5).Find(&recentOrders).Error; err != nil {
		return err
	}

	var recentUsers []models.User
	if err := h.db.Select("id, username, email, first_name, last_name, created_at").
		Order("created_at desc").Limit(5).
		Find(&recentUsers).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"total_users":           totalUsers,
			"total_orders":          totalOrders,
			"total_products":        totalProducts,
			"total_revenue":         totalRevenue,
			"total_revenue_display": h.conv.Convert(totalRevenue),
			"products_by_category":  productsByCategory,
			"recent_orders":         recentOrders,
			"recent_users":          recentUsers,
		},
	})
}

// ListAllOrders returns all orders with pagination and search.
func (h *AdminHandler) ListAllOrders(c *fiber.Ctx) error {
	pg := utils.ParsePagination(c)
	query := h.db.Model(&models.Order{})

	if search := c.Query("search"); search != "" {
		query = query.Where(
			"customer_name ILIKE ? OR customer_email ILIKE ?",
			"%"+search+"%", "%"+search+"%",
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return err
	}

	var orders []models.Order
	if err := query.Preload("User").
		Order("order_date desc").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&orders).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    orders,
		"pagination": fiber.Map{
			"current_page":   pg.Page,
			"items_per_page": pg.Limit,
			"total_items":    total,
		},
	})
}

// GetOrderDetail returns any order with its decoded line items.
func (h *AdminHandler) GetOrderDetail(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var order models.Order
	if err := h.db.Preload("User").First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "order not found")
		}
		return err
	}

	items, err := order.Items()
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    order,
		"items":   items,
	})
}

// ListAllUsers returns all registered users with pagination and search.
func (h *AdminHandler) ListAllUsers(c *fiber.Ctx) error {
	pg := utils.ParsePagination(c)
	query := h.db.Model(&models.User{})

	if search := c.Query("search"); search != "" {
		query = query.Where(
			"username ILIKE ? OR email ILIKE ? OR first_name ILIKE ? OR last_name ILIKE ?",
			"%"+search+"%", "%"+search+"%", "%"+search+"%", "%"+search+"%",
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return err
	}

	// Select specific fields to avoid exposing password hashes.
	var users []models.User
	if err := query.Select("id, username, email, first_name, last_name, phone, is_admin, created_at, updated_at").
		Order("created_at desc").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&users).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    users,
		"pagination": fiber.Map{
			"current_page":   pg.Page,
			"items_per_page": pg.Limit,
			"total_items":    total,
		},
	})
}

// ListProducts returns catalog products with the admin filter and sort options.
func (h *AdminHandler) ListProducts(c *fiber.Ctx) error {
	products, err := h.store.List(c.UserContext(), catalog.Filter{
		Category: c.Query("category"),
		Sort:     c.Query("sort"),
	})
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": products})
}
