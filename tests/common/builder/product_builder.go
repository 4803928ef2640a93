//go:build unit

package builder

import (
	"time"

	"safestore/internal/usecase/readmodel"

	"github.com/shopspring/decimal"
)

type ProductBuilder struct {
	ID       int64
	Name     string
	Price    decimal.Decimal
	Stock    int
	IsActive bool
}

func NewProductBuilder() *ProductBuilder {
	return &ProductBuilder{
		ID:       1,
		Name:     "Keyboard",
		Price:    decimal.NewFromFloat(49.90),
		Stock:    10,
		IsActive: true,
	}
}

func (p *ProductBuilder) WithID(id int64) *ProductBuilder {
	p.ID = id
	return p
}

func (p *ProductBuilder) WithName(name string) *ProductBuilder {
	p.Name = name
	return p
}

func (p *ProductBuilder) WithPrice(price decimal.Decimal) *ProductBuilder {
	p.Price = price
	return p
}

func (p *ProductBuilder) WithStock(stock int) *ProductBuilder {
	p.Stock = stock
	return p
}

func (p *ProductBuilder) AsInactive() *ProductBuilder {
	p.IsActive = false
	return p
}

func (p *ProductBuilder) BuildReadModel() *readmodel.ProductRM {
	now := time.Now()
	return &readmodel.ProductRM{
		ID:          p.ID,
		Name:        p.Name,
		Description: "test product",
		Price:       p.Price,
		Stock:       p.Stock,
		IsActive:    p.IsActive,
		BrandID:     1,
		LineID:      1,
		BrandName:   "Test Brand",
		LineName:    "Test Line",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
