package repository

import (
	"context"

	"storefront-api/internal/domain/user"
	"storefront-api/internal/usecase"
	"storefront-api/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	_ usecase.UserRepository = (*UserRepository)(nil)
	_ usecase.UserWriter     = (*UserRepository)(nil)
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

const userColumns = `id, username, email, password_hash, role, photo, created_at`

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.UserRM, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id)

	rm, err := scanUser(row)
	if err != nil {
		return nil, wrapPgErr("failed to find user by ID", err)
	}
	return rm, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*readmodel.UserRM, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`, email)

	rm, err := scanUser(row)
	if err != nil {
		return nil, wrapPgErr("failed to find user by email", err)
	}
	return rm, nil
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) (*readmodel.UserRM, error) {
	row := r.pool.QueryRow(ctx,
		`INSERT INTO users (id, username, email, password_hash, role, photo)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING `+userColumns,
		u.ID, u.Username, u.Email, u.PasswordHash, u.Role.String(), u.Photo,
	)

	rm, err := scanUser(row)
	if err != nil {
		return nil, wrapPgErr("failed to create user", err)
	}
	return rm, nil
}

func scanUser(row rowScanner) (*readmodel.UserRM, error) {
	var rm readmodel.UserRM
	err := row.Scan(
		&rm.ID, &rm.Username, &rm.Email, &rm.PasswordHash, &rm.Role, &rm.Photo, &rm.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rm, nil
}
