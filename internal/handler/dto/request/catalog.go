package request

import "github.com/shopspring/decimal"

type BrandRequest struct {
	Name        string `json:"name" binding:"required,max=120"`
	Description string `json:"description" binding:"max=500"`
	Logo        string `json:"logo" binding:"max=500"`
	IsActive    *bool  `json:"is_active"`
}

type LineRequest struct {
	Name        string `json:"name" binding:"required,max=120"`
	Description string `json:"description" binding:"max=500"`
	IsActive    *bool  `json:"is_active"`
}

type ProductRequest struct {
	Name        string          `json:"name" binding:"required,max=120"`
	Description string          `json:"description" binding:"max=500"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Stock       int             `json:"stock" binding:"min=0"`
	BrandID     int64           `json:"brand_id" binding:"required"`
	LineID      int64           `json:"line_id" binding:"required"`
	IsActive    *bool           `json:"is_active"`
}

type SupplierRequest struct {
	Name     string `json:"name" binding:"required,max=120"`
	Phone    string `json:"phone" binding:"max=30"`
	Email    string `json:"email" binding:"omitempty,email"`
	IsActive *bool  `json:"is_active"`
}

type CustomerRequest struct {
	Name     string `json:"name" binding:"required,max=120"`
	LastName string `json:"last_name" binding:"required,max=120"`
	Email    string `json:"email" binding:"omitempty,email"`
	Address  string `json:"address" binding:"max=255"`
	Phone    string `json:"phone" binding:"max=30"`
	Document int64  `json:"document" binding:"required,min=1"`
}
