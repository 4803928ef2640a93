package repository

import (
	"context"

	"safestore/internal/domain/line"
	"safestore/internal/infra"
	"safestore/internal/usecase"
	"safestore/internal/usecase/readmodel"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const lineColumns = `id, name, description, is_active, created_at, updated_at`

type lineRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewLineRepository(pool *pgxpool.Pool) usecase.LineRepository {
	return &lineRepositoryImpl{pool: pool}
}

func scanLineRM(row pgx.Row) (*readmodel.LineRM, error) {
	var rm readmodel.LineRM
	err := row.Scan(
		&rm.ID,
		&rm.Name,
		&rm.Description,
		&rm.IsActive,
		&rm.CreatedAt,
		&rm.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rm, nil
}

func (r *lineRepositoryImpl) FindAll(ctx context.Context) ([]*readmodel.LineRM, error) {
	query := `
		SELECT ` + lineColumns + `
		FROM lines
		ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list lines", err)
	}
	defer rows.Close()

	var lines []*readmodel.LineRM
	for rows.Next() {
		rm, err := scanLineRM(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan line row", err)
		}
		lines = append(lines, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate line rows", err)
	}
	return lines, nil
}

func (r *lineRepositoryImpl) FindByID(ctx context.Context, id int64) (*readmodel.LineRM, error) {
	query := `
		SELECT ` + lineColumns + `
		FROM lines
		WHERE id = $1`

	rm, err := scanLineRM(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find line by id", err)
	}
	return rm, nil
}

func (r *lineRepositoryImpl) Create(ctx context.Context, l *line.Line) (*readmodel.LineRM, error) {
	query := `
		INSERT INTO lines (name, description, is_active)
		VALUES ($1, $2, $3)
		RETURNING ` + lineColumns

	rm, err := scanLineRM(r.pool.QueryRow(ctx, query, l.Name(), l.Description(), l.IsActive()))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create line", err)
	}
	return rm, nil
}

func (r *lineRepositoryImpl) Update(ctx context.Context, id int64, l *line.Line) (*readmodel.LineRM, error) {
	query := `
		UPDATE lines
		SET name = $2, description = $3, is_active = $4, updated_at = now()
		WHERE id = $1
		RETURNING ` + lineColumns

	rm, err := scanLineRM(r.pool.QueryRow(ctx, query, id, l.Name(), l.Description(), l.IsActive()))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to update line", err)
	}
	return rm, nil
}

func (r *lineRepositoryImpl) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM lines WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete line", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("line not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}
