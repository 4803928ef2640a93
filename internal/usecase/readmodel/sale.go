package readmodel

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SaleRM struct {
	ID        int64           `json:"id"`
	SellerID  uuid.UUID       `json:"seller_id"`
	BuyerID   *string         `json:"buyer_id,omitempty"`
	Total     decimal.Decimal `json:"total"`
	CreatedAt time.Time       `json:"created_at"`
	Lines     []SaleLineRM    `json:"lines"`
}

type SaleLineRM struct {
	ProductID   int64           `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

type SaleListRM struct {
	ID        int64           `json:"id"`
	SellerID  uuid.UUID       `json:"seller_id"`
	BuyerID   *string         `json:"buyer_id,omitempty"`
	Total     decimal.Decimal `json:"total"`
	LineCount int             `json:"line_count"`
	CreatedAt time.Time       `json:"created_at"`
}
