package repository

import (
	"context"

	"safestore/internal/domain/brand"
	"safestore/internal/infra"
	"safestore/internal/usecase"
	"safestore/internal/usecase/readmodel"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const brandColumns = `id, name, description, logo, is_active, created_at, updated_at`

type brandRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewBrandRepository(pool *pgxpool.Pool) usecase.BrandRepository {
	return &brandRepositoryImpl{pool: pool}
}

func scanBrandRM(row pgx.Row) (*readmodel.BrandRM, error) {
	var rm readmodel.BrandRM
	err := row.Scan(
		&rm.ID,
		&rm.Name,
		&rm.Description,
		&rm.Logo,
		&rm.IsActive,
		&rm.CreatedAt,
		&rm.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rm, nil
}

func (r *brandRepositoryImpl) FindAll(ctx context.Context) ([]*readmodel.BrandRM, error) {
	query := `
		SELECT ` + brandColumns + `
		FROM brands
		ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list brands", err)
	}
	defer rows.Close()

	var brands []*readmodel.BrandRM
	for rows.Next() {
		rm, err := scanBrandRM(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan brand row", err)
		}
		brands = append(brands, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate brand rows", err)
	}
	return brands, nil
}

func (r *brandRepositoryImpl) FindByID(ctx context.Context, id int64) (*readmodel.BrandRM, error) {
	query := `
		SELECT ` + brandColumns + `
		FROM brands
		WHERE id = $1`

	rm, err := scanBrandRM(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find brand by id", err)
	}
	return rm, nil
}

func (r *brandRepositoryImpl) Create(ctx context.Context, b *brand.Brand) (*readmodel.BrandRM, error) {
	query := `
		INSERT INTO brands (name, description, logo, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + brandColumns

	rm, err := scanBrandRM(r.pool.QueryRow(ctx, query, b.Name(), b.Description(), b.Logo(), b.IsActive()))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create brand", err)
	}
	return rm, nil
}

func (r *brandRepositoryImpl) Update(ctx context.Context, id int64, b *brand.Brand) (*readmodel.BrandRM, error) {
	query := `
		UPDATE brands
		SET name = $2, description = $3, logo = $4, is_active = $5, updated_at = now()
		WHERE id = $1
		RETURNING ` + brandColumns

	rm, err := scanBrandRM(r.pool.QueryRow(ctx, query, id, b.Name(), b.Description(), b.Logo(), b.IsActive()))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to update brand", err)
	}
	return rm, nil
}

func (r *brandRepositoryImpl) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM brands WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete brand", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("brand not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}
