package repository

import (
	"context"

	"safestore/internal/domain/product"
	"safestore/internal/infra"
	"safestore/internal/infra/db"
	"safestore/internal/usecase"
	"safestore/internal/usecase/readmodel"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// Prices travel as text between Postgres numeric and decimal.Decimal so
// no float conversion ever touches them.
const productSelect = `
	SELECT p.id, p.name, p.description, p.price::text, p.stock, p.is_active,
	       p.brand_id, p.line_id, b.name, l.name, p.created_at, p.updated_at
	FROM products p
	JOIN brands b ON b.id = p.brand_id
	JOIN lines l ON l.id = p.line_id`

type productRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewProductRepository(pool *pgxpool.Pool) usecase.ProductRepository {
	return &productRepositoryImpl{pool: pool}
}

func scanProductRM(row pgx.Row) (*readmodel.ProductRM, error) {
	var (
		rm       readmodel.ProductRM
		priceRaw string
	)
	err := row.Scan(
		&rm.ID,
		&rm.Name,
		&rm.Description,
		&priceRaw,
		&rm.Stock,
		&rm.IsActive,
		&rm.BrandID,
		&rm.LineID,
		&rm.BrandName,
		&rm.LineName,
		&rm.CreatedAt,
		&rm.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	price, err := decimal.NewFromString(priceRaw)
	if err != nil {
		return nil, err
	}
	rm.Price = price
	return &rm, nil
}

func collectProductRMs(rows pgx.Rows) ([]*readmodel.ProductRM, error) {
	defer rows.Close()

	var products []*readmodel.ProductRM
	for rows.Next() {
		rm, err := scanProductRM(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepositoryImpl) FindAll(ctx context.Context, sellableOnly bool) ([]*readmodel.ProductRM, error) {
	query := productSelect + `
	ORDER BY p.id`
	if sellableOnly {
		query = productSelect + `
	WHERE p.is_active AND p.stock > 0
	ORDER BY p.id`
	}

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list products", err)
	}

	products, err := collectProductRMs(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan product rows", err)
	}
	return products, nil
}

func (r *productRepositoryImpl) FindByID(ctx context.Context, id int64) (*readmodel.ProductRM, error) {
	query := productSelect + `
	WHERE p.id = $1`

	rm, err := scanProductRM(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find product by id", err)
	}
	return rm, nil
}

func (r *productRepositoryImpl) FindByIDs(ctx context.Context, ids []int64) ([]*readmodel.ProductRM, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := productSelect + `
	WHERE p.id = ANY($1)
	ORDER BY p.id`

	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find products by ids", err)
	}

	products, err := collectProductRMs(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan product rows", err)
	}
	return products, nil
}

func (r *productRepositoryImpl) Create(ctx context.Context, p *product.Product) (*readmodel.ProductRM, error) {
	query := `
		WITH inserted AS (
			INSERT INTO products (name, description, price, stock, is_active, brand_id, line_id)
			VALUES ($1, $2, $3::numeric, $4, $5, $6, $7)
			RETURNING *
		)
		SELECT p.id, p.name, p.description, p.price::text, p.stock, p.is_active,
		       p.brand_id, p.line_id, b.name, l.name, p.created_at, p.updated_at
		FROM inserted p
		JOIN brands b ON b.id = p.brand_id
		JOIN lines l ON l.id = p.line_id`

	rm, err := scanProductRM(r.pool.QueryRow(ctx, query,
		p.Name(),
		p.Description(),
		p.Price().String(),
		p.Stock(),
		p.IsActive(),
		p.BrandID(),
		p.LineID(),
	))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create product", err)
	}
	return rm, nil
}

func (r *productRepositoryImpl) Update(ctx context.Context, id int64, p *product.Product) (*readmodel.ProductRM, error) {
	query := `
		WITH updated AS (
			UPDATE products
			SET name = $2, description = $3, price = $4::numeric, stock = $5,
			    is_active = $6, brand_id = $7, line_id = $8, updated_at = now()
			WHERE id = $1
			RETURNING *
		)
		SELECT p.id, p.name, p.description, p.price::text, p.stock, p.is_active,
		       p.brand_id, p.line_id, b.name, l.name, p.created_at, p.updated_at
		FROM updated p
		JOIN brands b ON b.id = p.brand_id
		JOIN lines l ON l.id = p.line_id`

	rm, err := scanProductRM(r.pool.QueryRow(ctx, query,
		id,
		p.Name(),
		p.Description(),
		p.Price().String(),
		p.Stock(),
		p.IsActive(),
		p.BrandID(),
		p.LineID(),
	))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to update product", err)
	}
	return rm, nil
}

func (r *productRepositoryImpl) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete product", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("product not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

// DecrementStock is guarded so a concurrent sale can never drive stock
// negative; zero rows affected means the guard rejected the write.
func (r *productRepositoryImpl) DecrementStock(ctx context.Context, tx db.DBTX, productID int64, quantity int) (int64, error) {
	query := `
		UPDATE products
		SET stock = stock - $2, updated_at = now()
		WHERE id = $1 AND stock >= $2`

	tag, err := tx.Exec(ctx, query, productID, quantity)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to decrement stock", err)
	}
	return tag.RowsAffected(), nil
}
