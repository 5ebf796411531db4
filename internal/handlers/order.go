package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/fashionstore/internal/checkout"
	"github.com/example/fashionstore/internal/middleware"
	"github.com/example/fashionstore/internal/models"
	"github.com/example/fashionstore/internal/utils"
)

// OrderHandler manages checkout and order history endpoints.
type OrderHandler struct {
	db       *gorm.DB
	pipeline *checkout.Pipeline
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(db *gorm.DB, pipeline *checkout.Pipeline) *OrderHandler {
	return &OrderHandler{db: db, pipeline: pipeline}
}

// Checkout snapshots the session cart into a persisted order. Guests are
// allowed; an authenticated user gets the order linked to their account.
func (h *OrderHandler) Checkout(c *fiber.Ctx) error {
	var contact checkout.ContactInfo
	if err := c.BodyParser(&contact); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if contact.Name == "" || contact.Email == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing contact details")
	}

	var userID *uuid.UUID
	if id, ok := middleware.GetCurrentUserID(c); ok {
		userID = &id
	}

	token := middleware.GetSessionToken(c)
	order, err := h.pipeline.Checkout(c.UserContext(), token, contact, userID)
	if err != nil {
		if errors.Is(err, checkout.ErrEmptyCart) {
			return fiber.NewError(fiber.StatusBadRequest, "cart is empty")
		}
		return err
	}

	items, err := order.Items()
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"id":               order.ID,
			"customer_name":    order.CustomerName,
			"customer_email":   order.CustomerEmail,
			"customer_phone":   order.CustomerPhone,
			"customer_address": order.CustomerAddress,
			"order_date":       order.OrderDate,
			"order_total":      order.OrderTotal,
			"items":            items,
		},
	})
}

// GetConfirmation returns a persisted order for the confirmation page.
// Guests have no account to authenticate with; the order UUID is the
// capability.
func (h *OrderHandler) GetConfirmation(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var order models.Order
	if err := h.db.First(&order, "id = ?", id).Error; err != nil {
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

// ListMyOrders returns the authenticated user's orders, most recent first.
func (h *OrderHandler) ListMyOrders(c *fiber.Ctx) error {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	pg := utils.ParsePagination(c)
	query := h.db.Model(&models.Order{}).Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return err
	}

	var orders []models.Order
	if err := query.Order("order_date desc").
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

// GetMyOrder returns one of the authenticated user's orders with its decoded
// line items.
func (h *OrderHandler) GetMyOrder(c *fiber.Ctx) error {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var order models.Order
	if err := h.db.First(&order, "id = ? AND user_id = ?", id, userID).Error; err != nil {
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
