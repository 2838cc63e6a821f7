package repository

import (
	"context"
	"fmt"
	"strings"

	"storefront-api/internal/usecase"
	"storefront-api/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var _ usecase.ProductRepository = (*ProductRepository)(nil)

type ProductRepository struct {
	pool *pgxpool.Pool
}

func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

const productColumns = `id, merchant_id, merchant_code, name, slug, description, category,
	brand, price, images, condition, is_active, in_stock, created_at, updated_at`

func (r *ProductRepository) Create(ctx context.Context, merchantID uuid.UUID, merchantCode string, params usecase.CreateProductParams) (*readmodel.ProductRM, error) {
	images := params.Images
	if images == nil {
		images = []string{}
	}
	condition := params.Condition
	if condition == "" {
		condition = "new"
	}

	row := r.pool.QueryRow(ctx,
		`INSERT INTO products (merchant_id, merchant_code, name, slug, description, category,
			brand, price, images, condition, is_active, in_stock)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		 RETURNING `+productColumns,
		merchantID, merchantCode, params.Name, params.Slug, params.Description, params.Category,
		params.Brand, params.Price, images, condition, params.IsActive, params.InStock,
	)

	rm, err := scanProduct(row)
	if err != nil {
		return nil, wrapPgErr("failed to create product", err)
	}
	return rm, nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.ProductRM, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = $1`, id)

	rm, err := scanProduct(row)
	if err != nil {
		return nil, wrapPgErr("failed to find product by ID", err)
	}
	return rm, nil
}

func (r *ProductRepository) FindBySlug(ctx context.Context, merchantCode, slug string) (*readmodel.ProductRM, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE merchant_code = $1 AND slug = $2`,
		merchantCode, slug,
	)

	rm, err := scanProduct(row)
	if err != nil {
		return nil, wrapPgErr("failed to find product by slug", err)
	}
	return rm, nil
}

func (r *ProductRepository) FindByMerchant(ctx context.Context, merchantCode string, filter usecase.ProductFilter, page, limit int) ([]*readmodel.ProductRM, int64, error) {
	where, args := productConditions(merchantCode, filter)

	var count int64
	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM products WHERE `+where, args...,
	).Scan(&count); err != nil {
		return nil, 0, wrapPgErr("failed to count products", err)
	}

	size, offset := normalizePage(page, limit)
	args = append(args, size, offset)
	rows, err := r.pool.Query(ctx,
		fmt.Sprintf(`SELECT %s FROM products WHERE %s
			ORDER BY created_at DESC
			LIMIT $%d OFFSET $%d`, productColumns, where, len(args)-1, len(args)),
		args...,
	)
	if err != nil {
		return nil, 0, wrapPgErr("failed to list products", err)
	}
	defer rows.Close()

	var result []*readmodel.ProductRM
	for rows.Next() {
		rm, err := scanProduct(rows)
		if err != nil {
			return nil, 0, wrapPgErr("failed to scan product row", err)
		}
		result = append(result, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, wrapPgErr("failed to iterate product rows", err)
	}
	return result, count, nil
}

func (r *ProductRepository) Update(ctx context.Context, id uuid.UUID, params usecase.UpdateProductParams) (*readmodel.ProductRM, error) {
	row := r.pool.QueryRow(ctx,
		`UPDATE products SET
			name        = COALESCE($2, name),
			slug        = COALESCE($3, slug),
			description = COALESCE($4, description),
			category    = COALESCE($5, category),
			brand       = COALESCE($6, brand),
			price       = COALESCE($7, price),
			images      = COALESCE($8, images),
			condition   = COALESCE($9, condition),
			is_active   = COALESCE($10, is_active),
			in_stock    = COALESCE($11, in_stock),
			updated_at  = now()
		 WHERE id = $1
		 RETURNING `+productColumns,
		id, params.Name, params.Slug, params.Description, params.Category, params.Brand,
		params.Price, params.Images, params.Condition, params.IsActive, params.InStock,
	)

	rm, err := scanProduct(row)
	if err != nil {
		return nil, wrapPgErr("failed to update product", err)
	}
	return rm, nil
}

func (r *ProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return wrapPgErr("failed to delete product", err)
	}
	if tag.RowsAffected() == 0 {
		return wrapPgErr("product not found", errNoRowsAffected)
	}
	return nil
}

// productConditions builds the WHERE clause for a filtered catalog listing.
// ILIKE keeps category and search matching case-insensitive, the way buyers
// type them.
func productConditions(merchantCode string, filter usecase.ProductFilter) (string, []any) {
	conds := []string{"merchant_code = $1"}
	args := []any{merchantCode}

	if filter.Category != "" {
		args = append(args, filter.Category)
		conds = append(conds, fmt.Sprintf("category ILIKE $%d", len(args)))
	}
	if filter.Condition != "" {
		args = append(args, filter.Condition)
		conds = append(conds, fmt.Sprintf("condition = $%d", len(args)))
	}
	if filter.Query != "" {
		args = append(args, "%"+filter.Query+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf("(name ILIKE $%d OR description ILIKE $%d OR brand ILIKE $%d)", n, n, n))
	}
	if filter.ActiveOnly {
		conds = append(conds, "is_active")
	}

	return strings.Join(conds, " AND "), args
}

func scanProduct(row rowScanner) (*readmodel.ProductRM, error) {
	var rm readmodel.ProductRM
	err := row.Scan(
		&rm.ID, &rm.MerchantID, &rm.MerchantCode, &rm.Name, &rm.Slug, &rm.Description, &rm.Category,
		&rm.Brand, &rm.Price, &rm.Images, &rm.Condition, &rm.IsActive, &rm.InStock, &rm.CreatedAt, &rm.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rm, nil
}
