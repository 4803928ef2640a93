//go:build unit

package sale_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"safestore/internal/domain/sale"
	"safestore/internal/pkg/clock"
	"safestore/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBuilder(t *testing.T) (*sale.Builder, *clock.MockClock) {
	t.Helper()
	clk := clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	return sale.NewBuilder(builder.NewCatalogBuilder().Build(), clk), clk
}

func requireValidation(t *testing.T, err error, field sale.Field, message string) *sale.ValidationError {
	t.Helper()
	require.Error(t, err)
	ve, ok := sale.AsValidation(err)
	require.True(t, ok, "expected a validation error, got %v", err)
	assert.Equal(t, field, ve.Field)
	assert.Equal(t, message, ve.Message)
	return ve
}

func TestBuilderAddLine(t *testing.T) {
	t.Run("adds a line for a known product", func(t *testing.T) {
		b, clk := newTestBuilder(t)

		require.NoError(t, b.AddLine(1, 2))

		lines := b.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, int64(1), lines[0].ProductID)
		assert.Equal(t, 2, lines[0].Quantity)
		assert.Equal(t, fmt.Sprintf("1-%d", clk.Now().UnixMilli()), lines[0].TempID)
	})

	t.Run("rejects missing product selection", func(t *testing.T) {
		b, _ := newTestBuilder(t)

		err := b.AddLine(0, 2)

		requireValidation(t, err, sale.FieldProduct, "product required")
		assert.Empty(t, b.Lines())
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		b, _ := newTestBuilder(t)

		for _, qty := range []int{0, -1} {
			err := b.AddLine(1, qty)
			requireValidation(t, err, sale.FieldQuantity, "quantity must be positive")
		}
		assert.Empty(t, b.Lines())
	})

	t.Run("checks the quantity check before the catalog lookup", func(t *testing.T) {
		b, _ := newTestBuilder(t)

		// Product 99 is unknown, but the quantity violation wins.
		err := b.AddLine(99, 0)

		requireValidation(t, err, sale.FieldQuantity, "quantity must be positive")
	})

	t.Run("ignores unknown products", func(t *testing.T) {
		b, _ := newTestBuilder(t)

		require.NoError(t, b.AddLine(99, 2))
		assert.Empty(t, b.Lines())
	})

	t.Run("merges a repeated selection into one line", func(t *testing.T) {
		b, _ := newTestBuilder(t)

		require.NoError(t, b.AddLine(1, 2))
		first := b.Lines()[0]

		require.NoError(t, b.AddLine(1, 3))

		lines := b.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, 5, lines[0].Quantity)
		assert.Equal(t, first.TempID, lines[0].TempID, "merging must keep the original line identity")
	})

	t.Run("rejects a new line exceeding stock", func(t *testing.T) {
		b, _ := newTestBuilder(t)

		// Product 2 has 5 in stock.
		err := b.AddLine(2, 6)

		ve := requireValidation(t, err, sale.FieldQuantity, "insufficient stock")
		require.NotNil(t, ve.Available)
		assert.Equal(t, 5, *ve.Available)
		assert.Empty(t, b.Lines())
	})

	t.Run("rejects a merge exceeding stock and keeps the draft", func(t *testing.T) {
		b, _ := newTestBuilder(t)

		require.NoError(t, b.AddLine(2, 4))
		before := b.Lines()

		err := b.AddLine(2, 2)

		ve := requireValidation(t, err, sale.FieldQuantity, "insufficient stock")
		require.NotNil(t, ve.Available)
		assert.Equal(t, 5, *ve.Available)

		if diff := cmp.Diff(before, b.Lines()); diff != "" {
			t.Errorf("draft changed after rejected merge (-before +after):\n%s", diff)
		}
	})

	t.Run("allows adding exactly the remaining stock", func(t *testing.T) {
		b, _ := newTestBuilder(t)

		require.NoError(t, b.AddLine(2, 3))
		require.NoError(t, b.AddLine(2, 2))

		lines := b.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, 5, lines[0].Quantity)
	})
}

func TestBuilderUpdateLineQuantity(t *testing.T) {
	t.Run("replaces the quantity", func(t *testing.T) {
		b, _ := newTestBuilder(t)
		require.NoError(t, b.AddLine(1, 2))

		require.NoError(t, b.UpdateLineQuantity(1, 7))

		assert.Equal(t, 7, b.Lines()[0].Quantity)
	})

	t.Run("ignores non-positive quantities", func(t *testing.T) {
		b, _ := newTestBuilder(t)
		require.NoError(t, b.AddLine(1, 2))
		before := b.Lines()

		require.NoError(t, b.UpdateLineQuantity(1, 0))
		require.NoError(t, b.UpdateLineQuantity(1, -3))

		if diff := cmp.Diff(before, b.Lines()); diff != "" {
			t.Errorf("draft changed (-before +after):\n%s", diff)
		}
	})

	t.Run("ignores absent lines", func(t *testing.T) {
		b, _ := newTestBuilder(t)
		require.NoError(t, b.AddLine(1, 2))
		before := b.Lines()

		require.NoError(t, b.UpdateLineQuantity(3, 2))

		if diff := cmp.Diff(before, b.Lines()); diff != "" {
			t.Errorf("draft changed (-before +after):\n%s", diff)
		}
	})

	t.Run("rejects quantities above stock", func(t *testing.T) {
		b, _ := newTestBuilder(t)
		require.NoError(t, b.AddLine(2, 2))

		err := b.UpdateLineQuantity(2, 6)

		ve := requireValidation(t, err, sale.FieldQuantity, "insufficient stock")
		require.NotNil(t, ve.Available)
		assert.Equal(t, 5, *ve.Available)
		assert.Equal(t, 2, b.Lines()[0].Quantity)
	})
}

func TestBuilderRemoveLine(t *testing.T) {
	b, _ := newTestBuilder(t)
	require.NoError(t, b.AddLine(1, 2))
	require.NoError(t, b.AddLine(2, 1))

	b.RemoveLine(1)
	require.Len(t, b.Lines(), 1)
	assert.Equal(t, int64(2), b.Lines()[0].ProductID)

	// Removing again is a no-op.
	b.RemoveLine(1)
	assert.Len(t, b.Lines(), 1)
}

func TestBuilderTotal(t *testing.T) {
	t.Run("empty draft totals zero", func(t *testing.T) {
		b, _ := newTestBuilder(t)
		assert.True(t, b.Total().IsZero())
	})

	t.Run("sums quantity times unit price", func(t *testing.T) {
		b, _ := newTestBuilder(t)
		require.NoError(t, b.AddLine(1, 2)) // 2 x 49.90
		require.NoError(t, b.AddLine(3, 1)) // 1 x 230

		expected := decimal.NewFromFloat(329.80)
		assert.True(t, expected.Equal(b.Total()), "expected %s, got %s", expected, b.Total())
	})

	t.Run("total follows quantity updates and removals", func(t *testing.T) {
		b, _ := newTestBuilder(t)
		require.NoError(t, b.AddLine(1, 2))
		require.NoError(t, b.AddLine(2, 1))

		require.NoError(t, b.UpdateLineQuantity(1, 1))
		b.RemoveLine(2)

		expected := decimal.NewFromFloat(49.90)
		assert.True(t, expected.Equal(b.Total()), "expected %s, got %s", expected, b.Total())
	})
}

func TestBuilderValidateAndBuildRequest(t *testing.T) {
	t.Run("empty draft fails validation", func(t *testing.T) {
		b, _ := newTestBuilder(t)

		requireValidation(t, b.Validate(), sale.FieldItems, "items required")

		_, err := b.BuildRequest()
		requireValidation(t, err, sale.FieldItems, "items required")
	})

	t.Run("assembles the wire payload", func(t *testing.T) {
		b, _ := newTestBuilder(t)
		require.NoError(t, b.AddLine(1, 2))
		require.NoError(t, b.AddLine(3, 1))
		b.SetBuyerRef("  customer-42  ")

		req, err := b.BuildRequest()
		require.NoError(t, err)

		require.NotNil(t, req.BuyerID)
		assert.Equal(t, "customer-42", *req.BuyerID)
		assert.Equal(t, []sale.RequestLine{
			{ProductID: 1, Quantity: 2},
			{ProductID: 3, Quantity: 1},
		}, req.Lines)
	})

	t.Run("whitespace-only buyer reference is absent", func(t *testing.T) {
		b, _ := newTestBuilder(t)
		require.NoError(t, b.AddLine(1, 1))
		b.SetBuyerRef("   ")

		req, err := b.BuildRequest()
		require.NoError(t, err)
		assert.Nil(t, req.BuyerID)
	})
}

func TestBuilderSubmit(t *testing.T) {
	t.Run("never calls the sink for an invalid draft", func(t *testing.T) {
		b, _ := newTestBuilder(t)

		called := false
		err := b.Submit(context.Background(), sale.SinkFunc(func(context.Context, sale.Request) error {
			called = true
			return nil
		}))

		requireValidation(t, err, sale.FieldItems, "items required")
		assert.False(t, called)
	})

	t.Run("keeps the draft when the sink fails", func(t *testing.T) {
		b, _ := newTestBuilder(t)
		require.NoError(t, b.AddLine(1, 2))
		b.SetBuyerRef("customer-42")
		before := b.Lines()

		sinkErr := errors.New("persistence unavailable")
		err := b.Submit(context.Background(), sale.SinkFunc(func(context.Context, sale.Request) error {
			return sinkErr
		}))

		require.ErrorIs(t, err, sinkErr)
		if diff := cmp.Diff(before, b.Lines()); diff != "" {
			t.Errorf("draft changed after failed submit (-before +after):\n%s", diff)
		}
		assert.Equal(t, "customer-42", b.BuyerRef())
	})

	t.Run("resets the draft after a successful submit", func(t *testing.T) {
		b, _ := newTestBuilder(t)
		require.NoError(t, b.AddLine(1, 2))
		b.SetBuyerRef("customer-42")

		var got sale.Request
		err := b.Submit(context.Background(), sale.SinkFunc(func(_ context.Context, req sale.Request) error {
			got = req
			return nil
		}))

		require.NoError(t, err)
		require.Len(t, got.Lines, 1)
		assert.Empty(t, b.Lines())
		assert.Empty(t, b.BuyerRef())
		assert.True(t, b.Total().IsZero())
	})
}

func TestBuilderTempID(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	b := sale.NewBuilder(builder.NewCatalogBuilder().Build(), clk)

	require.NoError(t, b.AddLine(1, 1))
	clk.Add(15 * time.Millisecond)
	require.NoError(t, b.AddLine(2, 1))

	lines := b.Lines()
	require.Len(t, lines, 2)
	assert.NotEqual(t, lines[0].TempID, lines[1].TempID)
	assert.Equal(t, fmt.Sprintf("2-%d", clk.Now().UnixMilli()), lines[1].TempID)
}
