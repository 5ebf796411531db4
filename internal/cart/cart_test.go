package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/example/fashionstore/internal/models"
)

func TestAddThenRemoveYieldsEmptyCart(t *testing.T) {
	c := Cart{}
	c.Add("p1", 2)
	c.Remove("p1")

	assert.Empty(t, c)
}

func TestAddAccumulates(t *testing.T) {
	c := Cart{}
	c.Add("p1", 1)
	c.Add("p1", 3)

	assert.Equal(t, 4, c["p1"])
}

func TestAddDefaultsToOne(t *testing.T) {
	c := Cart{}
	c.Add("p1", 0)
	c.Add("p2", -5)

	assert.Equal(t, 1, c["p1"])
	assert.Equal(t, 1, c["p2"])
}

func TestSetQuantityZeroEqualsRemove(t *testing.T) {
	viaSet := Cart{"p1": 3, "p2": 1}
	viaRemove := Cart{"p1": 3, "p2": 1}

	viaSet.SetQuantity("p1", 0)
	viaRemove.Remove("p1")

	assert.Equal(t, viaRemove, viaSet)
	_, present := viaSet["p1"]
	assert.False(t, present)
}

func TestSetQuantityIsExactNotAdditive(t *testing.T) {
	c := Cart{"p1": 5}
	c.SetQuantity("p1", 2)

	assert.Equal(t, 2, c["p1"])
}

func TestRemoveAbsentIsNoop(t *testing.T) {
	c := Cart{"p1": 1}
	c.Remove("p2")

	assert.Equal(t, Cart{"p1": 1}, c)
}

func TestCount(t *testing.T) {
	c := Cart{"p1": 2, "p2": 3}
	assert.Equal(t, 5, c.Count())
	assert.Equal(t, 0, Cart{}.Count())
}

func TestResolveTotalMatchesSurvivingItems(t *testing.T) {
	products := map[string]models.Product{
		"a": {Name: "A", Price: 10},
		"b": {Name: "B", Price: 5},
	}
	c := Cart{"a": 2, "b": 1, "gone": 4}

	items, total := Resolve(c, products)

	assert.Len(t, items, 2)
	assert.InDelta(t, 25, total, 1e-9)

	byID := map[string]Item{}
	for _, item := range items {
		byID[item.ID] = item
	}
	assert.InDelta(t, 20, byID["a"].ItemTotal, 1e-9)
	assert.InDelta(t, 5, byID["b"].ItemTotal, 1e-9)
}

func TestResolveEmptyCart(t *testing.T) {
	items, total := Resolve(Cart{}, map[string]models.Product{"a": {Price: 10}})

	assert.Empty(t, items)
	assert.Zero(t, total)
}
