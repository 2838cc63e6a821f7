package repository

import (
	"context"

	"storefront-api/internal/usecase"
	"storefront-api/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var _ usecase.CategoryRepository = (*CategoryRepository)(nil)

type CategoryRepository struct {
	pool *pgxpool.Pool
}

func NewCategoryRepository(pool *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{pool: pool}
}

const categoryColumns = `id, merchant_id, merchant_code, name, description, image, created_at, updated_at`

func (r *CategoryRepository) Create(ctx context.Context, merchantID uuid.UUID, merchantCode string, params usecase.CreateCategoryParams) (*readmodel.CategoryRM, error) {
	row := r.pool.QueryRow(ctx,
		`INSERT INTO categories (merchant_id, merchant_code, name, description, image)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+categoryColumns,
		merchantID, merchantCode, params.Name, params.Description, params.Image,
	)

	rm, err := scanCategory(row)
	if err != nil {
		return nil, wrapPgErr("failed to create category", err)
	}
	return rm, nil
}

func (r *CategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.CategoryRM, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+categoryColumns+` FROM categories WHERE id = $1`, id)

	rm, err := scanCategory(row)
	if err != nil {
		return nil, wrapPgErr("failed to find category by ID", err)
	}
	return rm, nil
}

func (r *CategoryRepository) FindByMerchant(ctx context.Context, merchantCode string) ([]*readmodel.CategoryRM, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+categoryColumns+` FROM categories
		 WHERE merchant_code = $1
		 ORDER BY name`,
		merchantCode,
	)
	if err != nil {
		return nil, wrapPgErr("failed to list categories", err)
	}
	defer rows.Close()

	var result []*readmodel.CategoryRM
	for rows.Next() {
		rm, err := scanCategory(rows)
		if err != nil {
			return nil, wrapPgErr("failed to scan category row", err)
		}
		result = append(result, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapPgErr("failed to iterate category rows", err)
	}
	return result, nil
}

func (r *CategoryRepository) Update(ctx context.Context, id uuid.UUID, params usecase.UpdateCategoryParams) (*readmodel.CategoryRM, error) {
	row := r.pool.QueryRow(ctx,
		`UPDATE categories SET
			name        = COALESCE($2, name),
			description = COALESCE($3, description),
			image       = COALESCE($4, image),
			updated_at  = now()
		 WHERE id = $1
		 RETURNING `+categoryColumns,
		id, params.Name, params.Description, params.Image,
	)

	rm, err := scanCategory(row)
	if err != nil {
		return nil, wrapPgErr("failed to update category", err)
	}
	return rm, nil
}

func (r *CategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return wrapPgErr("failed to delete category", err)
	}
	if tag.RowsAffected() == 0 {
		return wrapPgErr("category not found", errNoRowsAffected)
	}
	return nil
}

func scanCategory(row rowScanner) (*readmodel.CategoryRM, error) {
	var rm readmodel.CategoryRM
	err := row.Scan(
		&rm.ID, &rm.MerchantID, &rm.MerchantCode, &rm.Name, &rm.Description, &rm.Image,
		&rm.CreatedAt, &rm.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rm, nil
}
