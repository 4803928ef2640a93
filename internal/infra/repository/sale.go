package repository

import (
	"context"

	"safestore/internal/infra"
	"safestore/internal/infra/db"
	"safestore/internal/usecase"
	"safestore/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type saleRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewSaleRepository(pool *pgxpool.Pool) usecase.SaleRepository {
	return &saleRepositoryImpl{pool: pool}
}

func (r *saleRepositoryImpl) Create(ctx context.Context, tx db.DBTX, sellerID uuid.UUID, buyerID *string, total decimal.Decimal) (int64, error) {
	query := `
		INSERT INTO sales (seller_id, buyer_id, total)
		VALUES ($1, $2, $3::numeric)
		RETURNING id`

	var id int64
	if err := tx.QueryRow(ctx, query, sellerID, buyerID, total.String()).Scan(&id); err != nil {
		return 0, infra.WrapRepoErr("failed to insert sale", err)
	}
	return id, nil
}

func (r *saleRepositoryImpl) InsertLine(ctx context.Context, tx db.DBTX, saleID, productID int64, quantity int, unitPrice decimal.Decimal) error {
	query := `
		INSERT INTO sale_details (sale_id, product_id, quantity, unit_price)
		VALUES ($1, $2, $3, $4::numeric)`

	if _, err := tx.Exec(ctx, query, saleID, productID, quantity, unitPrice.String()); err != nil {
		return infra.WrapRepoErr("failed to insert sale detail", err)
	}
	return nil
}

func (r *saleRepositoryImpl) FindAll(ctx context.Context) ([]*readmodel.SaleListRM, error) {
	query := `
		SELECT s.id, s.seller_id, s.buyer_id, s.total::text, COUNT(d.id), s.created_at
		FROM sales s
		LEFT JOIN sale_details d ON d.sale_id = s.id
		GROUP BY s.id
		ORDER BY s.created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list sales", err)
	}
	defer rows.Close()

	var sales []*readmodel.SaleListRM
	for rows.Next() {
		var (
			rm       readmodel.SaleListRM
			totalRaw string
		)
		if err := rows.Scan(&rm.ID, &rm.SellerID, &rm.BuyerID, &totalRaw, &rm.LineCount, &rm.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan sale row", err)
		}
		total, err := decimal.NewFromString(totalRaw)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to parse sale total", err)
		}
		rm.Total = total
		sales = append(sales, &rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate sale rows", err)
	}
	return sales, nil
}

func (r *saleRepositoryImpl) FindByID(ctx context.Context, id int64) (*readmodel.SaleRM, error) {
	headQuery := `
		SELECT id, seller_id, buyer_id, total::text, created_at
		FROM sales
		WHERE id = $1`

	var (
		rm       readmodel.SaleRM
		totalRaw string
	)
	if err := r.pool.QueryRow(ctx, headQuery, id).Scan(&rm.ID, &rm.SellerID, &rm.BuyerID, &totalRaw, &rm.CreatedAt); err != nil {
		return nil, infra.WrapRepoErr("failed to find sale by id", err)
	}
	total, err := decimal.NewFromString(totalRaw)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to parse sale total", err)
	}
	rm.Total = total

	linesQuery := `
		SELECT d.product_id, p.name, d.quantity, d.unit_price::text,
		       (d.unit_price * d.quantity)::text
		FROM sale_details d
		JOIN products p ON p.id = d.product_id
		WHERE d.sale_id = $1
		ORDER BY d.id`

	rows, err := r.pool.Query(ctx, linesQuery, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load sale details", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			line        readmodel.SaleLineRM
			priceRaw    string
			subtotalRaw string
		)
		if err := rows.Scan(&line.ProductID, &line.ProductName, &line.Quantity, &priceRaw, &subtotalRaw); err != nil {
			return nil, infra.WrapRepoErr("failed to scan sale detail row", err)
		}
		if line.UnitPrice, err = decimal.NewFromString(priceRaw); err != nil {
			return nil, infra.WrapRepoErr("failed to parse unit price", err)
		}
		if line.Subtotal, err = decimal.NewFromString(subtotalRaw); err != nil {
			return nil, infra.WrapRepoErr("failed to parse subtotal", err)
		}
		rm.Lines = append(rm.Lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate sale detail rows", err)
	}
	return &rm, nil
}
