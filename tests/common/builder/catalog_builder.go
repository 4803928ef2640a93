//go:build unit

package builder

import (
	"safestore/internal/domain/sale"

	"github.com/shopspring/decimal"
)

// CatalogBuilder assembles catalog snapshots for draft tests. Defaults
// give three sellable items with distinct prices and stock.
type CatalogBuilder struct {
	items []sale.CatalogItem
}

func NewCatalogBuilder() *CatalogBuilder {
	return &CatalogBuilder{
		items: []sale.CatalogItem{
			{ID: 1, Name: "Keyboard", Price: decimal.NewFromFloat(49.90), Stock: 10, Active: true},
			{ID: 2, Name: "Mouse", Price: decimal.NewFromFloat(19.50), Stock: 5, Active: true},
			{ID: 3, Name: "Monitor", Price: decimal.NewFromInt(230), Stock: 2, Active: true},
		},
	}
}

func (b *CatalogBuilder) WithItem(item sale.CatalogItem) *CatalogBuilder {
	b.items = append(b.items, item)
	return b
}

func (b *CatalogBuilder) WithStock(productID int64, stock int) *CatalogBuilder {
	for i := range b.items {
		if b.items[i].ID == productID {
			b.items[i].Stock = stock
		}
	}
	return b
}

func (b *CatalogBuilder) AsInactive(productID int64) *CatalogBuilder {
	for i := range b.items {
		if b.items[i].ID == productID {
			b.items[i].Active = false
		}
	}
	return b
}

func (b *CatalogBuilder) Items() []sale.CatalogItem {
	out := make([]sale.CatalogItem, len(b.items))
	copy(out, b.items)
	return out
}

func (b *CatalogBuilder) Build() sale.Catalog {
	return sale.NewCatalog(b.Items())
}
