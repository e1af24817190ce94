package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func price(v float64) *float64 { return &v }

func TestDiscountPercent(t *testing.T) {
	book := Book{Price: 75, OriginalPrice: price(100)}
	assert.Equal(t, 25, book.DiscountPercent())
}

func TestDiscountPercentNoOriginalPrice(t *testing.T) {
	book := Book{Price: 75}
	assert.Zero(t, book.DiscountPercent())
}

func TestDiscountPercentOriginalBelowPrice(t *testing.T) {
	// originalPrice < price is not rejected by validation; the derived
	// discount clamps to zero instead of going negative.
	book := Book{Price: 100, OriginalPrice: price(75)}
	assert.Zero(t, book.DiscountPercent())
}

func TestDiscountPercentStaysBelowHundred(t *testing.T) {
	book := Book{Price: 0.01, OriginalPrice: price(1000)}

	got := book.DiscountPercent()
	assert.Greater(t, got, 0)
	assert.Less(t, got, 100)
}
