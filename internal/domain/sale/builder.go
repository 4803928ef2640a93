package sale

import (
	"context"
	"fmt"
	"strings"

	"safestore/internal/pkg/clock"

	"github.com/shopspring/decimal"
)

// Line is one product+quantity entry in a draft. TempID keys the row in
// the console table; it is never persisted.
type Line struct {
	TempID    string
	ProductID int64
	Quantity  int
}

// RequestLine is the wire-level (productId, quantity) pair of a
// finalized sale. It carries no price or stock data.
type RequestLine struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

// Request is the finalized payload handed to the submission sink.
type Request struct {
	BuyerID *string       `json:"buyerId,omitempty"`
	Lines   []RequestLine `json:"lines"`
}

// Sink accepts a finalized sale and persists it. Failures are surfaced
// verbatim; the draft is kept so the caller can resubmit.
type Sink interface {
	Submit(ctx context.Context, req Request) error
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(ctx context.Context, req Request) error

func (f SinkFunc) Submit(ctx context.Context, req Request) error {
	return f(ctx, req)
}

// Builder accumulates selected products and quantities into a draft
// sale. It enforces per-line stock constraints at mutation time (stock
// snapshots are not revalidated against concurrent external changes),
// keeps at most one line per product by merging duplicate selections,
// and assembles the final Request on submit.
//
// A Builder is not safe for concurrent use; each draft belongs to a
// single workflow.
type Builder struct {
	catalog  Catalog
	lines    []Line
	buyerRef string
	clock    clock.Clock
}

func NewBuilder(catalog Catalog, clk clock.Clock) *Builder {
	if clk == nil {
		clk = clock.NewRealClock()
	}
	return &Builder{catalog: catalog, clock: clk}
}

// SetBuyerRef records the optional buyer reference. Whitespace-only
// input counts as absent.
func (b *Builder) SetBuyerRef(ref string) {
	b.buyerRef = strings.TrimSpace(ref)
}

func (b *Builder) BuyerRef() string {
	return b.buyerRef
}

// AddLine adds quantity of the given product to the draft. A selection
// already in the draft merges into the existing line by summing
// quantities. Violating attempts leave the draft unchanged.
func (b *Builder) AddLine(productID int64, quantity int) error {
	if productID == 0 {
		return errProductRequired()
	}
	if quantity <= 0 {
		return errQuantityNotPositive()
	}

	item, ok := b.catalog.Lookup(productID)
	if !ok {
		// Unknown selection: nothing to add. The product-required check
		// above covers the normal flow.
		return nil
	}

	if idx := b.lineIndex(productID); idx >= 0 {
		merged := b.lines[idx].Quantity + quantity
		if merged > item.Stock {
			return errInsufficientStock(item.Stock)
		}
		b.lines[idx].Quantity = merged
		return nil
	}

	if quantity > item.Stock {
		return errInsufficientStock(item.Stock)
	}

	b.lines = append(b.lines, Line{
		TempID:    b.newTempID(productID),
		ProductID: productID,
		Quantity:  quantity,
	})
	return nil
}

// UpdateLineQuantity replaces the quantity of the line referencing the
// product. Non-positive quantities are ignored; the input's minimum is
// expected to prevent them.
func (b *Builder) UpdateLineQuantity(productID int64, newQuantity int) error {
	if newQuantity <= 0 {
		return nil
	}

	idx := b.lineIndex(productID)
	if idx < 0 {
		return nil
	}

	if item, ok := b.catalog.Lookup(productID); ok && newQuantity > item.Stock {
		return errInsufficientStock(item.Stock)
	}

	b.lines[idx].Quantity = newQuantity
	return nil
}

// RemoveLine drops the line referencing the product. Removing an absent
// line is a no-op.
func (b *Builder) RemoveLine(productID int64) {
	idx := b.lineIndex(productID)
	if idx < 0 {
		return
	}
	b.lines = append(b.lines[:idx], b.lines[idx+1:]...)
}

// Lines returns a copy of the current draft lines.
func (b *Builder) Lines() []Line {
	out := make([]Line, len(b.lines))
	copy(out, b.lines)
	return out
}

// Total is the running total over current lines using the unit prices
// snapshotted in the catalog. An empty draft totals zero.
func (b *Builder) Total() decimal.Decimal {
	total := decimal.Zero
	for _, ln := range b.lines {
		item, ok := b.catalog.Lookup(ln.ProductID)
		if !ok {
			continue
		}
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(ln.Quantity))))
	}
	return total
}

// Validate is the sole precondition for submission: the draft must hold
// at least one line.
func (b *Builder) Validate() error {
	if len(b.lines) == 0 {
		return errItemsRequired()
	}
	return nil
}

// BuildRequest validates the draft and assembles the wire payload.
func (b *Builder) BuildRequest() (Request, error) {
	if err := b.Validate(); err != nil {
		return Request{}, err
	}

	req := Request{Lines: make([]RequestLine, len(b.lines))}
	for i, ln := range b.lines {
		req.Lines[i] = RequestLine{ProductID: ln.ProductID, Quantity: ln.Quantity}
	}
	if b.buyerRef != "" {
		ref := b.buyerRef
		req.BuyerID = &ref
	}
	return req, nil
}

// Submit hands the finalized request to the sink. The sink is never
// called for a draft that fails Validate. On sink success the draft is
// discarded; on failure it is left intact for a retry by the caller.
func (b *Builder) Submit(ctx context.Context, sink Sink) error {
	req, err := b.BuildRequest()
	if err != nil {
		return err
	}

	if err := sink.Submit(ctx, req); err != nil {
		return err
	}

	b.Reset()
	return nil
}

// Reset discards the draft.
func (b *Builder) Reset() {
	b.lines = nil
	b.buyerRef = ""
}

func (b *Builder) lineIndex(productID int64) int {
	for i, ln := range b.lines {
		if ln.ProductID == productID {
			return i
		}
	}
	return -1
}

func (b *Builder) newTempID(productID int64) string {
	return fmt.Sprintf("%d-%d", productID, b.clock.Now().UnixMilli())
}
