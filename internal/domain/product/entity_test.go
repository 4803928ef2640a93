//go:build unit

package product_test

import (
	"testing"

	"safestore/internal/domain/product"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValid() (*product.Product, error) {
	return product.NewProduct("Keyboard", "mechanical", decimal.NewFromFloat(49.90), 10, 1, 2)
}

func TestNewProduct(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		p, err := newValid()
		require.NoError(t, err)

		assert.Equal(t, "Keyboard", p.Name())
		assert.Equal(t, 10, p.Stock())
		assert.True(t, p.IsActive())
		assert.True(t, p.Sellable())
	})

	t.Run("validation", func(t *testing.T) {
		cases := []struct {
			name  string
			make  func() (*product.Product, error)
			errIs error
		}{
			{
				name:  "empty name",
				make:  func() (*product.Product, error) { return product.NewProduct("  ", "", decimal.NewFromInt(1), 1, 1, 1) },
				errIs: product.ErrEmptyName,
			},
			{
				name:  "negative price",
				make:  func() (*product.Product, error) { return product.NewProduct("x", "", decimal.NewFromInt(-1), 1, 1, 1) },
				errIs: product.ErrNegativePrice,
			},
			{
				name:  "negative stock",
				make:  func() (*product.Product, error) { return product.NewProduct("x", "", decimal.NewFromInt(1), -1, 1, 1) },
				errIs: product.ErrNegativeStock,
			},
			{
				name:  "missing brand",
				make:  func() (*product.Product, error) { return product.NewProduct("x", "", decimal.NewFromInt(1), 1, 0, 1) },
				errIs: product.ErrBrandRequired,
			},
			{
				name:  "missing line",
				make:  func() (*product.Product, error) { return product.NewProduct("x", "", decimal.NewFromInt(1), 1, 1, 0) },
				errIs: product.ErrLineRequired,
			},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := tc.make()
				assert.ErrorIs(t, err, tc.errIs)
			})
		}
	})

	t.Run("zero price is allowed", func(t *testing.T) {
		_, err := product.NewProduct("freebie", "", decimal.Zero, 1, 1, 1)
		assert.NoError(t, err)
	})
}

func TestProductSellable(t *testing.T) {
	t.Run("inactive product is not sellable", func(t *testing.T) {
		p, err := newValid()
		require.NoError(t, err)

		p.Deactivate()
		assert.False(t, p.Sellable())

		p.Activate()
		assert.True(t, p.Sellable())
	})

	t.Run("out of stock product is not sellable", func(t *testing.T) {
		p, err := product.NewProduct("Keyboard", "", decimal.NewFromInt(1), 0, 1, 1)
		require.NoError(t, err)
		assert.False(t, p.Sellable())
	})
}
