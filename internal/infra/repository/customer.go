package repository

import (
	"context"

	"safestore/internal/domain/customer"
	"safestore/internal/infra"
	"safestore/internal/usecase"
	"safestore/internal/usecase/readmodel"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const customerColumns = `id, name, last_name, email, address, phone, document, created_at, updated_at`

type customerRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewCustomerRepository(pool *pgxpool.Pool) usecase.CustomerRepository {
	return &customerRepositoryImpl{pool: pool}
}

func scanCustomerRM(row pgx.Row) (*readmodel.CustomerRM, error) {
	var rm readmodel.CustomerRM
	err := row.Scan(
		&rm.ID,
		&rm.Name,
		&rm.LastName,
		&rm.Email,
		&rm.Address,
		&rm.Phone,
		&rm.Document,
		&rm.CreatedAt,
		&rm.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rm, nil
}

func (r *customerRepositoryImpl) FindAll(ctx context.Context) ([]*readmodel.CustomerRM, error) {
	query := `
		SELECT ` + customerColumns + `
		FROM customers
		ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list customers", err)
	}
	defer rows.Close()

	var customers []*readmodel.CustomerRM
	for rows.Next() {
		rm, err := scanCustomerRM(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan customer row", err)
		}
		customers = append(customers, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate customer rows", err)
	}
	return customers, nil
}

func (r *customerRepositoryImpl) FindByID(ctx context.Context, id int64) (*readmodel.CustomerRM, error) {
	query := `
		SELECT ` + customerColumns + `
		FROM customers
		WHERE id = $1`

	rm, err := scanCustomerRM(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find customer by id", err)
	}
	return rm, nil
}

func (r *customerRepositoryImpl) Create(ctx context.Context, c *customer.Customer) (*readmodel.CustomerRM, error) {
	query := `
		INSERT INTO customers (name, last_name, email, address, phone, document)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + customerColumns

	rm, err := scanCustomerRM(r.pool.QueryRow(ctx, query,
		c.Name(), c.LastName(), c.Email(), c.Address(), c.Phone(), c.Document()))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create customer", err)
	}
	return rm, nil
}

func (r *customerRepositoryImpl) Update(ctx context.Context, id int64, c *customer.Customer) (*readmodel.CustomerRM, error) {
	query := `
		UPDATE customers
		SET name = $2, last_name = $3, email = $4, address = $5, phone = $6, document = $7, updated_at = now()
		WHERE id = $1
		RETURNING ` + customerColumns

	rm, err := scanCustomerRM(r.pool.QueryRow(ctx, query,
		id, c.Name(), c.LastName(), c.Email(), c.Address(), c.Phone(), c.Document()))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to update customer", err)
	}
	return rm, nil
}

func (r *customerRepositoryImpl) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete customer", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("customer not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}
