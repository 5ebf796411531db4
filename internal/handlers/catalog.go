package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/example/fashionstore/internal/catalog"
	"github.com/example/fashionstore/internal/currency"
)

// CatalogHandler serves product browsing endpoints.
type CatalogHandler struct {
	store *catalog.Store
	conv  currency.Converter
}

// NewCatalogHandler constructs CatalogHandler.
func NewCatalogHandler(store *catalog.Store, conv currency.Converter) *CatalogHandler {
	return &CatalogHandler{store: store, conv: conv}
}

// ListProducts returns catalog products, optionally filtered and sorted.
func (h *CatalogHandler) ListProducts(c *fiber.Ctx) error {
	products, err := h.store.List(c.UserContext(), catalog.Filter{
		Category: c.Query("category"),
		Sort:     c.Query("sort"),
	})
	if err != nil {
		return err
	}

	data := make([]fiber.Map, len(products))
	for i, p := range products {
		data[i] = fiber.Map{
			"id":            p.ID,
			"name":          p.Name,
			"price":         p.Price,
			"display_price": h.conv.Convert(p.Price),
			"description":   p.Description,
			"category":      p.Category,
			"image_url":     p.ImageURL,
			"created_at":    p.CreatedAt,
		}
	}

	return c.JSON(fiber.Map{"success": true, "data": data})
}

// GetProduct returns a single product by ID.
func (h *CatalogHandler) GetProduct(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	product, err := h.store.Get(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "product not found")
		}
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"id":            product.ID,
			"name":          product.Name,
			"price":         product.Price,
			"display_price": h.conv.Convert(product.Price),
			"description":   product.Description,
			"category":      product.Category,
			"image_url":     product.ImageURL,
			"created_at":    product.CreatedAt,
		},
	})
}
