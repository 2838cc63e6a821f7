package repository

import (
	"context"

	"storefront-api/internal/usecase"
	"storefront-api/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var _ usecase.DiscountRepository = (*DiscountRepository)(nil)

type DiscountRepository struct {
	pool *pgxpool.Pool
}

func NewDiscountRepository(pool *pgxpool.Pool) *DiscountRepository {
	return &DiscountRepository{pool: pool}
}

const discountColumns = `id, merchant_id, merchant_code, code, percent_value, min_quantity,
	start_date, end_date, enabled, product_ids, created_at, updated_at`

func (r *DiscountRepository) FindEnabledByCode(ctx context.Context, merchantCode, code string) (*readmodel.DiscountRM, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+discountColumns+` FROM discounts
		 WHERE merchant_code = $1 AND code = $2 AND enabled`,
		merchantCode, code,
	)

	rm, err := scanDiscount(row)
	if err != nil {
		return nil, wrapPgErr("failed to find discount by code", err)
	}
	return rm, nil
}

func (r *DiscountRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.DiscountRM, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+discountColumns+` FROM discounts WHERE id = $1`, id)

	rm, err := scanDiscount(row)
	if err != nil {
		return nil, wrapPgErr("failed to find discount by ID", err)
	}
	return rm, nil
}

func (r *DiscountRepository) FindByMerchant(ctx context.Context, merchantCode string, page, limit int) ([]*readmodel.DiscountRM, int64, error) {
	var count int64
	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM discounts WHERE merchant_code = $1`, merchantCode,
	).Scan(&count); err != nil {
		return nil, 0, wrapPgErr("failed to count discounts", err)
	}

	size, offset := normalizePage(page, limit)
	rows, err := r.pool.Query(ctx,
		`SELECT `+discountColumns+` FROM discounts
		 WHERE merchant_code = $1
		 ORDER BY created_at DESC
		 LIMIT $2 OFFSET $3`,
		merchantCode, size, offset,
	)
	if err != nil {
		return nil, 0, wrapPgErr("failed to list discounts", err)
	}
	defer rows.Close()

	var result []*readmodel.DiscountRM
	for rows.Next() {
		rm, err := scanDiscount(rows)
		if err != nil {
			return nil, 0, wrapPgErr("failed to scan discount row", err)
		}
		result = append(result, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, wrapPgErr("failed to iterate discount rows", err)
	}
	return result, count, nil
}

func (r *DiscountRepository) Create(ctx context.Context, merchantID uuid.UUID, merchantCode string, params usecase.CreateDiscountParams) (*readmodel.DiscountRM, error) {
	productIDs := params.ProductIDs
	if productIDs == nil {
		productIDs = []uuid.UUID{}
	}

	row := r.pool.QueryRow(ctx,
		`INSERT INTO discounts (merchant_id, merchant_code, code, percent_value, min_quantity,
			start_date, end_date, enabled, product_ids)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING `+discountColumns,
		merchantID, merchantCode, params.Code, params.PercentValue, params.MinQuantity,
		params.StartDate, params.EndDate, params.Enabled, productIDs,
	)

	rm, err := scanDiscount(row)
	if err != nil {
		return nil, wrapPgErr("failed to create discount", err)
	}
	return rm, nil
}

func (r *DiscountRepository) Update(ctx context.Context, id uuid.UUID, params usecase.UpdateDiscountParams) (*readmodel.DiscountRM, error) {
	row := r.pool.QueryRow(ctx,
		`UPDATE discounts SET
			percent_value = COALESCE($2, percent_value),
			min_quantity  = COALESCE($3, min_quantity),
			start_date    = COALESCE($4, start_date),
			end_date      = COALESCE($5, end_date),
			enabled       = COALESCE($6, enabled),
			product_ids   = COALESCE($7, product_ids),
			updated_at    = now()
		 WHERE id = $1
		 RETURNING `+discountColumns,
		id, params.PercentValue, params.MinQuantity, params.StartDate, params.EndDate,
		params.Enabled, params.ProductIDs,
	)

	rm, err := scanDiscount(row)
	if err != nil {
		return nil, wrapPgErr("failed to update discount", err)
	}
	return rm, nil
}

func (r *DiscountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM discounts WHERE id = $1`, id)
	if err != nil {
		return wrapPgErr("failed to delete discount", err)
	}
	if tag.RowsAffected() == 0 {
		return wrapPgErr("discount not found", errNoRowsAffected)
	}
	return nil
}

func scanDiscount(row rowScanner) (*readmodel.DiscountRM, error) {
	var rm readmodel.DiscountRM
	err := row.Scan(
		&rm.ID, &rm.MerchantID, &rm.MerchantCode, &rm.Code, &rm.PercentValue, &rm.MinQuantity,
		&rm.StartDate, &rm.EndDate, &rm.Enabled, &rm.ProductIDs, &rm.CreatedAt, &rm.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rm, nil
}
