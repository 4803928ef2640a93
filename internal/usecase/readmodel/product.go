package readmodel

import (
	"time"

	"github.com/shopspring/decimal"
)

type ProductRM struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	IsActive    bool            `json:"is_active"`
	BrandID     int64           `json:"brand_id"`
	LineID      int64           `json:"line_id"`
	BrandName   string          `json:"brand_name"`
	LineName    string          `json:"line_name"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
