package repository

import (
	"context"
	"time"

	"safestore/internal/domain/user"
	"safestore/internal/infra"
	"safestore/internal/usecase"
	"safestore/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const userColumns = `id, email, role, full_name, phone, address, is_active, last_login, created_at`

type userRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) usecase.UserRepository {
	return &userRepositoryImpl{pool: pool}
}

func scanUserRM(row pgx.Row) (*readmodel.AuthorizedUserRM, error) {
	var rm readmodel.AuthorizedUserRM
	err := row.Scan(
		&rm.ID,
		&rm.Email,
		&rm.Role,
		&rm.FullName,
		&rm.Phone,
		&rm.Address,
		&rm.IsActive,
		&rm.LastLogin,
		&rm.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rm, nil
}

func (r *userRepositoryImpl) FindByEmail(ctx context.Context, email user.Email) (*readmodel.AuthorizedUserRM, string, error) {
	query := `
		SELECT ` + userColumns + `, password_hash
		FROM users
		WHERE email = $1`

	var (
		rm   readmodel.AuthorizedUserRM
		hash string
	)
	err := r.pool.QueryRow(ctx, query, email.Value()).Scan(
		&rm.ID,
		&rm.Email,
		&rm.Role,
		&rm.FullName,
		&rm.Phone,
		&rm.Address,
		&rm.IsActive,
		&rm.LastLogin,
		&rm.CreatedAt,
		&hash,
	)
	if err != nil {
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}
	return &rm, hash, nil
}

func (r *userRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.AuthorizedUserRM, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE id = $1`

	rm, err := scanUserRM(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user by id", err)
	}
	return rm, nil
}

func (r *userRepositoryImpl) FindAll(ctx context.Context) ([]*readmodel.AuthorizedUserRM, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list users", err)
	}
	defer rows.Close()

	var users []*readmodel.AuthorizedUserRM
	for rows.Next() {
		rm, err := scanUserRM(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan user row", err)
		}
		users = append(users, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate user rows", err)
	}
	return users, nil
}

func (r *userRepositoryImpl) Create(ctx context.Context, u *user.User) (*readmodel.AuthorizedUserRM, error) {
	query := `
		INSERT INTO users (id, email, password_hash, role, full_name, phone, address, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + userColumns

	rm, err := scanUserRM(r.pool.QueryRow(ctx, query,
		u.ID(),
		u.Email().Value(),
		u.PasswordHash(),
		u.Role().String(),
		u.FullName(),
		u.Phone(),
		u.Address(),
		u.IsActive(),
	))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create user", err)
	}
	return rm, nil
}

func (r *userRepositoryImpl) UpdateLastLogin(ctx context.Context, userID uuid.UUID) error {
	query := `
		UPDATE users
		SET last_login = $2, updated_at = $2
		WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, userID, time.Now().UTC())
	if err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *userRepositoryImpl) UpdateProfile(ctx context.Context, userID uuid.UUID, fullName, phone, address string) (*readmodel.AuthorizedUserRM, error) {
	query := `
		UPDATE users
		SET full_name = $2, phone = $3, address = $4, updated_at = now()
		WHERE id = $1
		RETURNING ` + userColumns

	rm, err := scanUserRM(r.pool.QueryRow(ctx, query, userID, fullName, phone, address))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to update profile", err)
	}
	return rm, nil
}

func (r *userRepositoryImpl) Delete(ctx context.Context, userID uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, userID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete user", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}
