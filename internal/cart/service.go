package cart

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/example/fashionstore/internal/catalog"
	"github.com/example/fashionstore/internal/models"
	"github.com/example/fashionstore/internal/session"
)

// ProductSource is the slice of the catalog the cart needs.
type ProductSource interface {
	Get(ctx context.Context, id uuid.UUID) (*models.Product, error)
	ByIDs(ctx context.Context, ids []string) (map[string]models.Product, error)
}

// View is a cart joined against the live catalog.
type View struct {
	Items []Item  `json:"items"`
	Total float64 `json:"total"`
	Count int     `json:"count"`
}

// Service mutates and reads session carts. All operations are scoped to one
// session token; concurrent requests on the same token are last-writer-wins.
type Service struct {
	store    session.Store
	products ProductSource
}

// NewService constructs a Service.
func NewService(store session.Store, products ProductSource) *Service {
	return &Service{store: store, products: products}
}

func cartKey(token string) string {
	return "cart:" + token
}

// Load returns the cart for a session, empty if none exists yet.
func (s *Service) Load(ctx context.Context, token string) (Cart, error) {
	c := Cart{}
	err := s.store.GetJSON(ctx, cartKey(token), &c)
	if err != nil && !errors.Is(err, session.ErrNotFound) {
		return nil, err
	}
	return c, nil
}

func (s *Service) save(ctx context.Context, token string, c Cart) error {
	return s.store.SetJSON(ctx, cartKey(token), c)
}

// Add accumulates quantity for a catalog product. Unknown products fail with
// catalog.ErrProductNotFound.
func (s *Service) Add(ctx context.Context, token string, productID uuid.UUID, quantity int) (Cart, error) {
	if _, err := s.products.Get(ctx, productID); err != nil {
		return nil, err
	}

	c, err := s.Load(ctx, token)
	if err != nil {
		return nil, err
	}

	c.Add(productID.String(), quantity)
	if err := s.save(ctx, token, c); err != nil {
		return nil, err
	}
	return c, nil
}

// SetQuantity sets the exact quantity for a product; zero or less removes it.
func (s *Service) SetQuantity(ctx context.Context, token string, productID uuid.UUID, quantity int) (Cart, error) {
	c, err := s.Load(ctx, token)
	if err != nil {
		return nil, err
	}

	c.SetQuantity(productID.String(), quantity)
	if err := s.save(ctx, token, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Remove drops a product from the cart.
func (s *Service) Remove(ctx context.Context, token string, productID uuid.UUID) (Cart, error) {
	c, err := s.Load(ctx, token)
	if err != nil {
		return nil, err
	}

	c.Remove(productID.String())
	if err := s.save(ctx, token, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Clear empties the session's cart.
func (s *Service) Clear(ctx context.Context, token string) error {
	return s.store.Delete(ctx, cartKey(token))
}

// View joins the cart against the live catalog and recomputes the total.
func (s *Service) View(ctx context.Context, token string) (*View, error) {
	c, err := s.Load(ctx, token)
	if err != nil {
		return nil, err
	}

	products, err := s.products.ByIDs(ctx, c.IDs())
	if err != nil {
		return nil, err
	}

	items, total := Resolve(c, products)
	return &View{Items: items, Total: total, Count: c.Count()}, nil
}

var _ ProductSource = (*catalog.Store)(nil)
