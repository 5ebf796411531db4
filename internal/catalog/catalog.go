// Package catalog provides read access to the product catalog.
package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/fashionstore/internal/models"
)

// ErrProductNotFound is returned when a product ID has no catalog entry.
var ErrProductNotFound = errors.New("catalog: product not found")

// Filter narrows and orders a product listing.
type Filter struct {
	Category string
	Sort     string // name | price_low | price_high | newest
}

// Store reads products from the database.
type Store struct {
	db *gorm.DB
}

// NewStore constructs a Store.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// List returns products matching the filter.
func (s *Store) List(ctx context.Context, f Filter) ([]models.Product, error) {
	query := s.db.WithContext(ctx).Model(&models.Product{})

	if f.Category != "" {
		query = query.Where("category = ?", f.Category)
	}

	switch f.Sort {
	case "price_low":
		query = query.Order("price asc")
	case "price_high":
		query = query.Order("price desc")
	case "newest":
		query = query.Order("created_at desc")
	default:
		query = query.Order("name asc")
	}

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// Get returns a single product by ID.
func (s *Store) Get(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := s.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

// ByIDs returns the products for the given string-encoded IDs, keyed by ID.
// Unparseable and unknown IDs are absent from the result, not errors.
func (s *Store) ByIDs(ctx context.Context, ids []string) (map[string]models.Product, error) {
	parsed := make([]uuid.UUID, 0, len(ids))
	for _, raw := range ids {
		if id, err := uuid.Parse(raw); err == nil {
			parsed = append(parsed, id)
		}
	}

	result := make(map[string]models.Product, len(parsed))
	if len(parsed) == 0 {
		return result, nil
	}

	var products []models.Product
	if err := s.db.WithContext(ctx).Where("id IN ?", parsed).Find(&products).Error; err != nil {
		return nil, err
	}

	for _, p := range products {
		result[p.ID.String()] = p
	}
	return result, nil
}
