package request

import "safestore/internal/domain/sale"

type SaleLineRequest struct {
	ProductID int64 `json:"productId" binding:"required"`
	Quantity  int   `json:"quantity" binding:"required,min=1"`
}

type CreateSaleRequest struct {
	BuyerID *string           `json:"buyerId"`
	Lines   []SaleLineRequest `json:"lines" binding:"required,min=1,dive"`
}

func (r *CreateSaleRequest) ToRequestLines() []sale.RequestLine {
	lines := make([]sale.RequestLine, len(r.Lines))
	for i, ln := range r.Lines {
		lines[i] = sale.RequestLine{ProductID: ln.ProductID, Quantity: ln.Quantity}
	}
	return lines
}
