package sale

import "github.com/shopspring/decimal"

// CatalogItem is a purchasable product as known to the draft: the unit
// price and stock are snapshots taken when the catalog was loaded, not
// live values.
type CatalogItem struct {
	ID     int64
	Name   string
	Price  decimal.Decimal
	Stock  int
	Active bool
}

// Sellable reports whether the item may be offered for selection.
func (i CatalogItem) Sellable() bool {
	return i.Active && i.Stock > 0
}

// Catalog is a read-only index of catalog items by product ID.
type Catalog struct {
	items map[int64]CatalogItem
	order []int64
}

func NewCatalog(items []CatalogItem) Catalog {
	c := Catalog{items: make(map[int64]CatalogItem, len(items))}
	for _, it := range items {
		if _, dup := c.items[it.ID]; dup {
			continue
		}
		c.items[it.ID] = it
		c.order = append(c.order, it.ID)
	}
	return c
}

func (c Catalog) Lookup(productID int64) (CatalogItem, bool) {
	it, ok := c.items[productID]
	return it, ok
}

// Selectable returns the items offered for selection: active with stock
// remaining, in catalog order.
func (c Catalog) Selectable() []CatalogItem {
	var out []CatalogItem
	for _, id := range c.order {
		if it := c.items[id]; it.Sellable() {
			out = append(out, it)
		}
	}
	return out
}
