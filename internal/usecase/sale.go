package usecase

import (
	"context"
	"errors"

	"safestore/internal/domain/sale"
	"safestore/internal/infra"
	"safestore/internal/infra/db"
	"safestore/internal/pkg/clock"
	"safestore/internal/pkg/errs"
	"safestore/internal/usecase/readmodel"
	"safestore/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

var (
	ErrSaleNotFound        = errors.New("sale not found")
	ErrProductNotAvailable = errors.New("product is not available for sale")
	ErrStockConflict       = errors.New("stock changed while the sale was being recorded")
)

type SaleRepository interface {
	Create(ctx context.Context, tx db.DBTX, sellerID uuid.UUID, buyerID *string, total decimal.Decimal) (int64, error)
	InsertLine(ctx context.Context, tx db.DBTX, saleID, productID int64, quantity int, unitPrice decimal.Decimal) error
	FindAll(ctx context.Context) ([]*readmodel.SaleListRM, error)
	FindByID(ctx context.Context, id int64) (*readmodel.SaleRM, error)
}

type CreateSaleParams struct {
	BuyerID *string
	Lines   []sale.RequestLine
}

type SaleUseCase interface {
	CreateSale(ctx context.Context, sellerID uuid.UUID, params CreateSaleParams) (*readmodel.SaleRM, error)
	ListSales(ctx context.Context) ([]*readmodel.SaleListRM, error)
	GetSale(ctx context.Context, id int64) (*readmodel.SaleRM, error)
}

type saleUseCaseImpl struct {
	pool        *pgxpool.Pool
	saleRepo    SaleRepository
	productRepo ProductRepository
	clock       clock.Clock
}

func NewSaleUseCase(pool *pgxpool.Pool, saleRepo SaleRepository, productRepo ProductRepository, clk clock.Clock) SaleUseCase {
	return &saleUseCaseImpl{
		pool:        pool,
		saleRepo:    saleRepo,
		productRepo: productRepo,
		clock:       clk,
	}
}

// CreateSale replays the requested lines through a draft built on a
// fresh catalog snapshot, so merge and stock rules hold regardless of
// what the caller sent, then persists the result. Stock is decremented
// with a guard inside the transaction; a concurrent sale that exhausted
// stock between the snapshot and the write surfaces as ErrStockConflict.
func (u *saleUseCaseImpl) CreateSale(ctx context.Context, sellerID uuid.UUID, params CreateSaleParams) (*readmodel.SaleRM, error) {
	ids := make([]int64, 0, len(params.Lines))
	seen := make(map[int64]struct{}, len(params.Lines))
	for _, ln := range params.Lines {
		if _, dup := seen[ln.ProductID]; dup {
			continue
		}
		seen[ln.ProductID] = struct{}{}
		ids = append(ids, ln.ProductID)
	}

	products, err := u.productRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load products for sale")
	}

	byID := make(map[int64]*readmodel.ProductRM, len(products))
	items := make([]sale.CatalogItem, 0, len(products))
	for _, p := range products {
		byID[p.ID] = p
		items = append(items, sale.CatalogItem{
			ID:     p.ID,
			Name:   p.Name,
			Price:  p.Price,
			Stock:  p.Stock,
			Active: p.IsActive,
		})
	}

	// The draft ignores unknown products, so unknown or inactive
	// references must be rejected here.
	for _, id := range ids {
		p, ok := byID[id]
		if !ok {
			return nil, ErrProductNotFound
		}
		if !p.IsActive {
			return nil, ErrProductNotAvailable
		}
	}

	builder := sale.NewBuilder(sale.NewCatalog(items), u.clock)
	if params.BuyerID != nil {
		builder.SetBuyerRef(*params.BuyerID)
	}
	for _, ln := range params.Lines {
		if err := builder.AddLine(ln.ProductID, ln.Quantity); err != nil {
			return nil, err
		}
	}

	total := builder.Total()

	var saleID int64
	sink := sale.SinkFunc(func(ctx context.Context, req sale.Request) error {
		id, txErr := shared.WithDefaultRetry(ctx, u.pool, func(tx db.DBTX) (int64, error) {
			newID, err := u.saleRepo.Create(ctx, tx, sellerID, req.BuyerID, total)
			if err != nil {
				return 0, errs.Wrap(err, "failed to insert sale")
			}

			for _, ln := range req.Lines {
				p := byID[ln.ProductID]
				if err := u.saleRepo.InsertLine(ctx, tx, newID, ln.ProductID, ln.Quantity, p.Price); err != nil {
					return 0, errs.Wrap(err, "failed to insert sale line")
				}

				affected, err := u.productRepo.DecrementStock(ctx, tx, ln.ProductID, ln.Quantity)
				if err != nil {
					return 0, errs.Wrap(err, "failed to decrement stock")
				}
				if affected == 0 {
					return 0, ErrStockConflict
				}
			}
			return newID, nil
		})
		if txErr != nil {
			return txErr
		}
		saleID = id
		return nil
	})

	if err := builder.Submit(ctx, sink); err != nil {
		return nil, err
	}

	rm, err := u.saleRepo.FindByID(ctx, saleID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load created sale")
	}
	return rm, nil
}

func (u *saleUseCaseImpl) ListSales(ctx context.Context) ([]*readmodel.SaleListRM, error) {
	sales, err := u.saleRepo.FindAll(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list sales")
	}
	return sales, nil
}

func (u *saleUseCaseImpl) GetSale(ctx context.Context, id int64) (*readmodel.SaleRM, error) {
	rm, err := u.saleRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSaleNotFound
		}
		return nil, errs.Wrap(err, "failed to find sale")
	}
	return rm, nil
}
