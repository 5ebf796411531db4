package checkout

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/fashionstore/internal/cart"
	"github.com/example/fashionstore/internal/catalog"
	"github.com/example/fashionstore/internal/models"
	"github.com/example/fashionstore/internal/session"
)

type fakeProducts struct {
	products map[string]models.Product
}

func (f *fakeProducts) Get(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	if p, ok := f.products[id.String()]; ok {
		return &p, nil
	}
	return nil, catalog.ErrProductNotFound
}

func (f *fakeProducts) ByIDs(ctx context.Context, ids []string) (map[string]models.Product, error) {
	result := make(map[string]models.Product)
	for _, id := range ids {
		if p, ok := f.products[id]; ok {
			result[id] = p
		}
	}
	return result, nil
}

type fakeOrderStore struct {
	orders []models.Order
	err    error
}

func (f *fakeOrderStore) Create(ctx context.Context, order *models.Order) error {
	if f.err != nil {
		return f.err
	}
	f.orders = append(f.orders, *order)
	return nil
}

func newTestPipeline(products ...models.Product) (*Pipeline, *cart.Service, *fakeOrderStore) {
	fp := &fakeProducts{products: make(map[string]models.Product)}
	for _, p := range products {
		fp.products[p.ID.String()] = p
	}
	carts := cart.NewService(session.NewMemoryStore(time.Hour), fp)
	orders := &fakeOrderStore{}
	return NewPipeline(orders, carts, fp), carts, orders
}

func testProduct(name string, price float64) models.Product {
	p := models.Product{Name: name, Price: price, Category: "men"}
	p.ID = uuid.New()
	return p
}

func TestCheckoutEmptyCart(t *testing.T) {
	pipeline, _, orders := newTestPipeline()

	_, err := pipeline.Checkout(context.Background(), "s1", ContactInfo{Name: "G"}, nil)

	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Empty(t, orders.orders, "empty cart must not produce an order")
}

func TestCheckoutPersistsOrderAndClearsCart(t *testing.T) {
	shirt := testProduct("Shirt", 10)
	jeans := testProduct("Jeans", 5)
	pipeline, carts, orders := newTestPipeline(shirt, jeans)
	ctx := context.Background()

	_, err := carts.Add(ctx, "s1", shirt.ID, 2)
	require.NoError(t, err)
	_, err = carts.Add(ctx, "s1", jeans.ID, 1)
	require.NoError(t, err)

	userID := uuid.New()
	contact := ContactInfo{
		Name:  "Asha",
		Email: "asha@example.com",
		Phone: "+911234567890",
		City:  "Bengaluru",
	}

	order, err := pipeline.Checkout(ctx, "s1", contact, &userID)
	require.NoError(t, err)

	require.Len(t, orders.orders, 1)
	assert.InDelta(t, 25, order.OrderTotal, 1e-9)
	assert.Equal(t, "Asha", order.CustomerName)
	assert.Equal(t, &userID, order.UserID)

	items, err := order.Items()
	require.NoError(t, err)
	assert.Len(t, items, 2)

	c, err := carts.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, c, "cart must be empty after a successful checkout")
}

func TestCheckoutGuestHasNoUserLink(t *testing.T) {
	shirt := testProduct("Shirt", 10)
	pipeline, carts, _ := newTestPipeline(shirt)
	ctx := context.Background()

	_, err := carts.Add(ctx, "s1", shirt.ID, 1)
	require.NoError(t, err)

	order, err := pipeline.Checkout(ctx, "s1", ContactInfo{Name: "Guest", Email: "g@example.com"}, nil)
	require.NoError(t, err)

	assert.Nil(t, order.UserID)
}

func TestCheckoutPersistFailureKeepsCart(t *testing.T) {
	shirt := testProduct("Shirt", 10)
	pipeline, carts, orders := newTestPipeline(shirt)
	ctx := context.Background()

	_, err := carts.Add(ctx, "s1", shirt.ID, 1)
	require.NoError(t, err)

	orders.err = errors.New("commit failed")

	_, err = pipeline.Checkout(ctx, "s1", ContactInfo{Name: "Asha", Email: "a@example.com"}, nil)
	require.Error(t, err)

	c, err := carts.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Len(t, c, 1, "cart must survive a failed persist")
}

func TestBuildSnapshotPricesFromCatalog(t *testing.T) {
	productA := uuid.New()
	productB := uuid.New()

	products := map[string]models.Product{
		productA.String(): {Name: "A", Price: 10},
		productB.String(): {Name: "B", Price: 5},
	}
	c := cart.Cart{productA.String(): 2, productB.String(): 1}

	items, total := BuildSnapshot(c, products)

	require.Len(t, items, 2)
	assert.InDelta(t, 25, total, 1e-9)

	byName := map[string]models.LineItem{}
	for _, item := range items {
		byName[item.Name] = item
	}
	assert.InDelta(t, 20, byName["A"].ItemTotal, 1e-9)
	assert.Equal(t, 2, byName["A"].Quantity)
	assert.Equal(t, productA, byName["A"].ID)
	assert.InDelta(t, 5, byName["B"].ItemTotal, 1e-9)
}

func TestBuildSnapshotDropsVanishedProducts(t *testing.T) {
	known := uuid.New()
	products := map[string]models.Product{
		known.String(): {Name: "Known", Price: 3},
	}
	c := cart.Cart{known.String(): 1, uuid.NewString(): 7}

	items, total := BuildSnapshot(c, products)

	require.Len(t, items, 1)
	assert.Equal(t, "Known", items[0].Name)
	assert.InDelta(t, 3, total, 1e-9)
}

func TestBuildSnapshotEmptyCart(t *testing.T) {
	items, total := BuildSnapshot(cart.Cart{}, nil)

	assert.Empty(t, items)
	assert.Zero(t, total)
}

func TestContactInfoAddress(t *testing.T) {
	contact := ContactInfo{
		StreetAddress: "12 MG Road",
		City:          "Bengaluru",
		State:         "Karnataka",
		PostalCode:    "560001",
		Country:       "India",
	}

	assert.Equal(t, "12 MG Road, Bengaluru, Karnataka, 560001, India", contact.Address())
}

func TestSnapshotRoundTripsThroughOrder(t *testing.T) {
	productA := uuid.New()
	products := map[string]models.Product{
		productA.String(): {Name: "A", Price: 10.50},
	}
	items, total := BuildSnapshot(cart.Cart{productA.String(): 2}, products)

	var order models.Order
	require.NoError(t, order.SetItems(items))
	order.OrderTotal = total

	decoded, err := order.Items()
	require.NoError(t, err)
	assert.Equal(t, items, decoded)
	assert.InDelta(t, 21, order.OrderTotal, 1e-9)
}
