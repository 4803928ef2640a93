package repository

import (
	"context"

	"safestore/internal/domain/supplier"
	"safestore/internal/infra"
	"safestore/internal/usecase"
	"safestore/internal/usecase/readmodel"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const supplierColumns = `id, name, phone, email, is_active, created_at, updated_at`

type supplierRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewSupplierRepository(pool *pgxpool.Pool) usecase.SupplierRepository {
	return &supplierRepositoryImpl{pool: pool}
}

func scanSupplierRM(row pgx.Row) (*readmodel.SupplierRM, error) {
	var rm readmodel.SupplierRM
	err := row.Scan(
		&rm.ID,
		&rm.Name,
		&rm.Phone,
		&rm.Email,
		&rm.IsActive,
		&rm.CreatedAt,
		&rm.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rm, nil
}

func (r *supplierRepositoryImpl) FindAll(ctx context.Context) ([]*readmodel.SupplierRM, error) {
	query := `
		SELECT ` + supplierColumns + `
		FROM suppliers
		ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list suppliers", err)
	}
	defer rows.Close()

	var suppliers []*readmodel.SupplierRM
	for rows.Next() {
		rm, err := scanSupplierRM(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan supplier row", err)
		}
		suppliers = append(suppliers, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate supplier rows", err)
	}
	return suppliers, nil
}

func (r *supplierRepositoryImpl) FindByID(ctx context.Context, id int64) (*readmodel.SupplierRM, error) {
	query := `
		SELECT ` + supplierColumns + `
		FROM suppliers
		WHERE id = $1`

	rm, err := scanSupplierRM(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find supplier by id", err)
	}
	return rm, nil
}

func (r *supplierRepositoryImpl) Create(ctx context.Context, s *supplier.Supplier) (*readmodel.SupplierRM, error) {
	query := `
		INSERT INTO suppliers (name, phone, email, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + supplierColumns

	rm, err := scanSupplierRM(r.pool.QueryRow(ctx, query, s.Name(), s.Phone(), s.Email(), s.IsActive()))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create supplier", err)
	}
	return rm, nil
}

func (r *supplierRepositoryImpl) Update(ctx context.Context, id int64, s *supplier.Supplier) (*readmodel.SupplierRM, error) {
	query := `
		UPDATE suppliers
		SET name = $2, phone = $3, email = $4, is_active = $5, updated_at = now()
		WHERE id = $1
		RETURNING ` + supplierColumns

	rm, err := scanSupplierRM(r.pool.QueryRow(ctx, query, id, s.Name(), s.Phone(), s.Email(), s.IsActive()))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to update supplier", err)
	}
	return rm, nil
}

func (r *supplierRepositoryImpl) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM suppliers WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete supplier", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("supplier not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}
