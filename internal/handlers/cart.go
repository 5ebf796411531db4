package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/example/fashionstore/internal/cart"
	"github.com/example/fashionstore/internal/catalog"
	"github.com/example/fashionstore/internal/currency"
	"github.com/example/fashionstore/internal/middleware"
)

// CartHandler serves session cart endpoints.
type CartHandler struct {
	carts *cart.Service
	conv  currency.Converter
}

// NewCartHandler constructs CartHandler.
func NewCartHandler(carts *cart.Service, conv currency.Converter) *CartHandler {
	return &CartHandler{carts: carts, conv: conv}
}

// ViewCart returns the cart joined against the live catalog.
func (h *CartHandler) ViewCart(c *fiber.Ctx) error {
	token := middleware.GetSessionToken(c)

	view, err := h.carts.View(c.UserContext(), token)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"items":         view.Items,
			"total":         view.Total,
			"display_total": h.conv.Convert(view.Total),
			"cart_count":    view.Count,
		},
	})
}

type addToCartRequest struct {
	Quantity int `json:"quantity"`
}

// AddToCart accumulates quantity for a catalog product.
func (h *CartHandler) AddToCart(c *fiber.Ctx) error {
	productID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid product id")
	}

	req := addToCartRequest{Quantity: 1}
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
	}

	token := middleware.GetSessionToken(c)
	updated, err := h.carts.Add(c.UserContext(), token, productID, req.Quantity)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "product not found")
		}
		return err
	}

	return c.JSON(fiber.Map{"success": true, "cart_count": updated.Count()})
}

type updateCartRequest struct {
	Quantity int `json:"quantity"`
}

// UpdateCart sets the exact quantity for a product; zero or less removes it.
func (h *CartHandler) UpdateCart(c *fiber.Ctx) error {
	productID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid product id")
	}

	var req updateCartRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	token := middleware.GetSessionToken(c)
	updated, err := h.carts.SetQuantity(c.UserContext(), token, productID, req.Quantity)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "cart_count": updated.Count()})
}

// RemoveFromCart drops a product from the cart.
func (h *CartHandler) RemoveFromCart(c *fiber.Ctx) error {
	productID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid product id")
	}

	token := middleware.GetSessionToken(c)
	updated, err := h.carts.Remove(c.UserContext(), token, productID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "cart_count": updated.Count()})
}

// ClearCart empties the session's cart.
func (h *CartHandler) ClearCart(c *fiber.Ctx) error {
	token := middleware.GetSessionToken(c)
	if err := h.carts.Clear(c.UserContext(), token); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "cart_count": 0})
}
