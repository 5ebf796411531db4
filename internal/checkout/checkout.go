// Package checkout converts a session cart into an immutable, priced,
// persisted order.
package checkout

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/fashionstore/internal/cart"
	"github.com/example/fashionstore/internal/models"
)

// ErrEmptyCart rejects checkout before any persistence happens.
var ErrEmptyCart = errors.New("checkout: cart is empty")

// ContactInfo is the customer contact snapshot captured on the order.
type ContactInfo struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	StreetAddress string `json:"street_address"`
	City          string `json:"city"`
	State         string `json:"state"`
	PostalCode    string `json:"postal_code"`
	Country       string `json:"country"`
}

// Address composes the snapshot address line stored on the order.
func (c ContactInfo) Address() string {
	return strings.Join([]string{c.StreetAddress, c.City, c.State, c.PostalCode, c.Country}, ", ")
}

// OrderStore persists completed orders. A failed create must leave no
// partial order behind.
type OrderStore interface {
	Create(ctx context.Context, order *models.Order) error
}

// GormOrderStore writes orders in a single database transaction.
type GormOrderStore struct {
	db *gorm.DB
}

// NewGormOrderStore constructs a GormOrderStore.
func NewGormOrderStore(db *gorm.DB) *GormOrderStore {
	return &GormOrderStore{db: db}
}

func (s *GormOrderStore) Create(ctx context.Context, order *models.Order) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(order).Error
	})
}

// Pipeline persists orders built from session carts.
type Pipeline struct {
	orders   OrderStore
	carts    *cart.Service
	products cart.ProductSource
}

// NewPipeline constructs a Pipeline.
func NewPipeline(orders OrderStore, carts *cart.Service, products cart.ProductSource) *Pipeline {
	return &Pipeline{orders: orders, carts: carts, products: products}
}

// BuildSnapshot prices a cart against a catalog snapshot and returns the
// immutable line items with their sum. Pricing always comes from the catalog,
// never from client input; products missing from the snapshot are dropped.
func BuildSnapshot(c cart.Cart, products map[string]models.Product) ([]models.LineItem, float64) {
	resolved, total := cart.Resolve(c, products)

	items := make([]models.LineItem, 0, len(resolved))
	for _, item := range resolved {
		id, _ := uuid.Parse(item.ID)
		items = append(items, models.LineItem{
			ID:        id,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
			ItemTotal: item.ItemTotal,
		})
	}
	return items, total
}

// Checkout snapshots the session's cart into a new order, persists it in one
// transaction, and clears the cart. The cart clear is best-effort: the order
// exists once the transaction commits, and a leftover cart only means the
// next view shows already-ordered items.
func (p *Pipeline) Checkout(ctx context.Context, token string, contact ContactInfo, userID *uuid.UUID) (*models.Order, error) {
	c, err := p.carts.Load(ctx, token)
	if err != nil {
		return nil, err
	}
	if len(c) == 0 {
		return nil, ErrEmptyCart
	}

	products, err := p.products.ByIDs(ctx, c.IDs())
	if err != nil {
		return nil, err
	}

	items, total := BuildSnapshot(c, products)

	order := models.Order{
		UserID:          userID,
		CustomerName:    contact.Name,
		CustomerEmail:   contact.Email,
		CustomerPhone:   contact.Phone,
		CustomerAddress: contact.Address(),
		OrderDate:       time.Now().UTC(),
		OrderTotal:      total,
	}
	if err := order.SetItems(items); err != nil {
		return nil, err
	}

	if err := p.orders.Create(ctx, &order); err != nil {
		return nil, err
	}

	if err := p.carts.Clear(ctx, token); err != nil {
		log.Printf("checkout: cart clear failed for session %s: %v", token, err)
	}

	return &order, nil
}
