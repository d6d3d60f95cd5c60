package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsLowStock(t *testing.T) {
	cases := []struct {
		name     string
		quantity int
		minimum  int
		want     bool
	}{
		{"well above threshold", 57, 5, false},
		{"one above threshold", 6, 5, false},
		{"exactly at threshold", 5, 5, true},
		{"below threshold", 4, 5, true},
		{"zero stock zero minimum", 0, 0, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := Product{Quantity: tc.quantity, MinimumStock: tc.minimum}
			assert.Equal(t, tc.want, p.IsLowStock())
		})
	}
}

func TestCategoryIsValid(t *testing.T) {
	for _, c := range Categories {
		assert.True(t, c.IsValid(), string(c))
	}
	assert.False(t, Category("electronics").IsValid())
	assert.False(t, Category("").IsValid())
}

func TestSizeIsValid(t *testing.T) {
	for _, s := range Sizes {
		assert.True(t, s.IsValid(), string(s))
	}
	assert.False(t, Size("XXXL").IsValid())
	assert.False(t, Size("").IsValid())
}
