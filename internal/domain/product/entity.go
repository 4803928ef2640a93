package product

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyName     = errors.New("product name is required")
	ErrNegativePrice = errors.New("price cannot be negative")
	ErrNegativeStock = errors.New("stock cannot be negative")
	ErrBrandRequired = errors.New("brand is required")
	ErrLineRequired  = errors.New("line is required")
)

// Product is a catalog entry: the price and stock here are the source
// of the snapshots the sale draft validates against.
type Product struct {
	id          int64
	name        string
	description string
	price       decimal.Decimal
	stock       int
	isActive    bool
	brandID     int64
	lineID      int64
	createdAt   time.Time
	updatedAt   time.Time
}

func NewProduct(name, description string, price decimal.Decimal, stock int, brandID, lineID int64) (*Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if price.IsNegative() {
		return nil, ErrNegativePrice
	}
	if stock < 0 {
		return nil, ErrNegativeStock
	}
	if brandID == 0 {
		return nil, ErrBrandRequired
	}
	if lineID == 0 {
		return nil, ErrLineRequired
	}

	return &Product{
		name:        name,
		description: strings.TrimSpace(description),
		price:       price,
		stock:       stock,
		isActive:    true,
		brandID:     brandID,
		lineID:      lineID,
	}, nil
}

func ReconstructProduct(
	id int64,
	name, description string,
	price decimal.Decimal,
	stock int,
	isActive bool,
	brandID, lineID int64,
	createdAt, updatedAt time.Time,
) *Product {
	return &Product{
		id:          id,
		name:        name,
		description: description,
		price:       price,
		stock:       stock,
		isActive:    isActive,
		brandID:     brandID,
		lineID:      lineID,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (p *Product) Activate()   { p.isActive = true }
func (p *Product) Deactivate() { p.isActive = false }

// Sellable reports whether the product may appear in the sale form's
// catalog: active with stock remaining.
func (p *Product) Sellable() bool {
	return p.isActive && p.stock > 0
}

func (p *Product) ID() int64             { return p.id }
func (p *Product) Name() string          { return p.name }
func (p *Product) Description() string   { return p.description }
func (p *Product) Price() decimal.Decimal { return p.price }
func (p *Product) Stock() int            { return p.stock }
func (p *Product) IsActive() bool        { return p.isActive }
func (p *Product) BrandID() int64        { return p.brandID }
func (p *Product) LineID() int64         { return p.lineID }
func (p *Product) CreatedAt() time.Time  { return p.createdAt }
func (p *Product) UpdatedAt() time.Time  { return p.updatedAt }
