package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderItemsRoundTrip(t *testing.T) {
	items := []LineItem{
		{ID: uuid.New(), Name: "Men's Classic T-Shirt", Price: 29.99, Quantity: 2, ItemTotal: 59.98},
		{ID: uuid.New(), Name: "Kids' Sneakers", Price: 34.99, Quantity: 1, ItemTotal: 34.99},
	}

	var order Order
	require.NoError(t, order.SetItems(items))

	decoded, err := order.Items()
	require.NoError(t, err)
	assert.Equal(t, items, decoded)
}

func TestOrderItemsInvalidJSON(t *testing.T) {
	order := Order{OrderItems: "not json"}

	_, err := order.Items()
	assert.Error(t, err)
}

func TestUserFullAddress(t *testing.T) {
	user := User{
		StreetAddress: "12 MG Road",
		City:          "Bengaluru",
		State:         "Karnataka",
		PostalCode:    "560001",
		Country:       "India",
	}
	assert.Equal(t, "12 MG Road, Bengaluru, Karnataka, 560001, India", user.FullAddress())

	partial := User{City: "Bengaluru", Country: "India"}
	assert.Equal(t, "Bengaluru, India", partial.FullAddress())

	assert.Equal(t, "No address provided", (&User{}).FullAddress())
}
