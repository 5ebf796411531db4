// Package cart implements the session-scoped shopping cart: a mapping from
// string-encoded product IDs to quantities, held in the session store and
// joined against the live catalog on every read.
package cart

import (
	"github.com/example/fashionstore/internal/models"
)

// Cart maps product IDs to quantities. Zero-quantity entries never persist.
type Cart map[string]int

// Add accumulates quantity for a product. Quantities below one count as one.
func (c Cart) Add(productID string, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	c[productID] += quantity
}

// SetQuantity sets the exact quantity for a product; zero or less removes it.
func (c Cart) SetQuantity(productID string, quantity int) {
	if quantity <= 0 {
		delete(c, productID)
		return
	}
	c[productID] = quantity
}

// Remove drops a product from the cart. Removing an absent product is a no-op.
func (c Cart) Remove(productID string) {
	delete(c, productID)
}

// Count returns the total number of units in the cart.
func (c Cart) Count() int {
	count := 0
	for _, qty := range c {
		count += qty
	}
	return count
}

// IDs returns the product IDs present in the cart.
func (c Cart) IDs() []string {
	ids := make([]string, 0, len(c))
	for id := range c {
		ids = append(ids, id)
	}
	return ids
}

// Item is one cart entry priced against the live catalog.
type Item struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Category  string  `json:"category"`
	ImageURL  string  `json:"image_url"`
	ItemTotal float64 `json:"item_total"`
}

// Resolve joins cart entries against the given catalog snapshot. Entries
// whose product is missing from the snapshot are dropped silently; that is
// the documented policy for products deleted since being added, not an
// error. The total covers surviving items only.
func Resolve(c Cart, products map[string]models.Product) ([]Item, float64) {
	items := make([]Item, 0, len(c))
	total := 0.0

	for productID, quantity := range c {
		product, ok := products[productID]
		if !ok {
			continue
		}

		itemTotal := product.Price * float64(quantity)
		items = append(items, Item{
			ID:        productID,
			Name:      product.Name,
			Price:     product.Price,
			Quantity:  quantity,
			Category:  product.Category,
			ImageURL:  product.ImageURL,
			ItemTotal: itemTotal,
		})
		total += itemTotal
	}

	return items, total
}
