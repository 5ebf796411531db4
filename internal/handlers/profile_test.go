package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strptr(s string) *string { return &s }

func TestProfileUpdatesSkipsUnsetFields(t *testing.T) {
	updates := profileUpdates(updateProfileRequest{
		FirstName: strptr("Asha"),
		City:      strptr("Pune"),
	})

	assert.Equal(t, map[string]interface{}{
		"first_name": "Asha",
		"city":       "Pune",
	}, updates)
}

func TestProfileUpdatesEmptyPhoneClearsToNull(t *testing.T) {
	updates := profileUpdates(updateProfileRequest{Phone: strptr("")})

	val, ok := updates["phone"]
	assert.True(t, ok)
	assert.Nil(t, val)
}

func TestProfileUpdatesNonEmptyPhoneStoredAsString(t *testing.T) {
	updates := profileUpdates(updateProfileRequest{Phone: strptr("+919876543210")})

	assert.Equal(t, "+919876543210", updates["phone"])
}

func TestProfileUpdatesNilRequestIsEmpty(t *testing.T) {
	assert.Empty(t, profileUpdates(updateProfileRequest{}))
}
