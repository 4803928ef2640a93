//go:build unit

package sale_test

import (
	"testing"

	"safestore/internal/domain/sale"
	"safestore/tests/common/builder"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogLookup(t *testing.T) {
	catalog := builder.NewCatalogBuilder().Build()

	item, ok := catalog.Lookup(2)
	require.True(t, ok)
	assert.Equal(t, "Mouse", item.Name)

	_, ok = catalog.Lookup(99)
	assert.False(t, ok)
}

func TestCatalogKeepsFirstDuplicate(t *testing.T) {
	catalog := sale.NewCatalog([]sale.CatalogItem{
		{ID: 1, Name: "first", Price: decimal.NewFromInt(10), Stock: 1, Active: true},
		{ID: 1, Name: "second", Price: decimal.NewFromInt(20), Stock: 9, Active: true},
	})

	item, ok := catalog.Lookup(1)
	require.True(t, ok)
	assert.Equal(t, "first", item.Name)
}

func TestCatalogSelectable(t *testing.T) {
	catalog := builder.NewCatalogBuilder().
		WithStock(2, 0).
		AsInactive(3).
		WithItem(sale.CatalogItem{ID: 4, Name: "Cable", Price: decimal.NewFromInt(5), Stock: 40, Active: true}).
		Build()

	selectable := catalog.Selectable()

	require.Len(t, selectable, 2)
	assert.Equal(t, int64(1), selectable[0].ID)
	assert.Equal(t, int64(4), selectable[1].ID)
}
