package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvert(t *testing.T) {
	conv := New(83.12)

	assert.Equal(t, 83, conv.Convert(1.00))
	assert.Equal(t, 0, conv.Convert(0))
	assert.Equal(t, 2493, conv.Convert(29.99))
	assert.Equal(t, 6648, conv.Convert(79.98))
}

func TestConvertRoundsHalfAwayFromZero(t *testing.T) {
	conv := New(2)

	assert.Equal(t, 5, conv.Convert(2.25))
	assert.Equal(t, 4, conv.Convert(2.2))
}

func TestNewFallsBackToDefaultRate(t *testing.T) {
	assert.Equal(t, DefaultRate, New(0).Rate)
	assert.Equal(t, DefaultRate, New(-1).Rate)
	assert.Equal(t, 10.0, New(10).Rate)
}
