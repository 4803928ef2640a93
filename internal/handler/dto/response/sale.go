package response

import (
	"time"

	"safestore/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

// Sale payloads use the camelCase wire names the console's sale form
// sends, unlike the snake_case read models the other screens consume.
type SaleResponse struct {
	ID        int64              `json:"id"`
	SellerID  uuid.UUID          `json:"sellerId"`
	BuyerID   *string            `json:"buyerId,omitempty"`
	Total     decimal.Decimal    `json:"total"`
	CreatedAt time.Time          `json:"createdAt"`
	Lines     []SaleLineResponse `json:"lines"`
}

type SaleLineResponse struct {
	ProductID   int64           `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

type SaleListResponse struct {
	ID        int64           `json:"id"`
	SellerID  uuid.UUID       `json:"sellerId"`
	BuyerID   *string         `json:"buyerId,omitempty"`
	Total     decimal.Decimal `json:"total"`
	LineCount int             `json:"lineCount"`
	CreatedAt time.Time       `json:"createdAt"`
}

func NewSaleResponse(rm *readmodel.SaleRM) (*SaleResponse, error) {
	var resp SaleResponse
	if err := copier.Copy(&resp, rm); err != nil {
		return nil, err
	}
	return &resp, nil
}

func NewSaleListResponse(rms []*readmodel.SaleListRM) ([]SaleListResponse, error) {
	resp := make([]SaleListResponse, 0, len(rms))
	if err := copier.Copy(&resp, rms); err != nil {
		return nil, err
	}
	return resp, nil
}
