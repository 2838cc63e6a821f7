package repository

import (
	"context"

	"storefront-api/internal/usecase"
	"storefront-api/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var _ usecase.ShippingRepository = (*ShippingRepository)(nil)

type ShippingRepository struct {
	pool *pgxpool.Pool
}

func NewShippingRepository(pool *pgxpool.Pool) *ShippingRepository {
	return &ShippingRepository{pool: pool}
}

const shippingColumns = `id, merchant_id, merchant_code, state, country, amount, created_at, updated_at`

func (r *ShippingRepository) FindByState(ctx context.Context, merchantCode, state string) (*readmodel.ShippingRM, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+shippingColumns+` FROM shippings
		 WHERE merchant_code = $1 AND state = $2`,
		merchantCode, state,
	)

	rm, err := scanShipping(row)
	if err != nil {
		return nil, wrapPgErr("failed to find shipping by state", err)
	}
	return rm, nil
}

func (r *ShippingRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.ShippingRM, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+shippingColumns+` FROM shippings WHERE id = $1`, id)

	rm, err := scanShipping(row)
	if err != nil {
		return nil, wrapPgErr("failed to find shipping by ID", err)
	}
	return rm, nil
}

func (r *ShippingRepository) FindByMerchant(ctx context.Context, merchantCode string, page, limit int) ([]*readmodel.ShippingRM, int64, error) {
	var count int64
	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM shippings WHERE merchant_code = $1`, merchantCode,
	).Scan(&count); err != nil {
		return nil, 0, wrapPgErr("failed to count shippings", err)
	}

	size, offset := normalizePage(page, limit)
	rows, err := r.pool.Query(ctx,
		`SELECT `+shippingColumns+` FROM shippings
		 WHERE merchant_code = $1
		 ORDER BY created_at DESC
		 LIMIT $2 OFFSET $3`,
		merchantCode, size, offset,
	)
	if err != nil {
		return nil, 0, wrapPgErr("failed to list shippings", err)
	}
	defer rows.Close()

	var result []*readmodel.ShippingRM
	for rows.Next() {
		rm, err := scanShipping(rows)
		if err != nil {
			return nil, 0, wrapPgErr("failed to scan shipping row", err)
		}
		result = append(result, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, wrapPgErr("failed to iterate shipping rows", err)
	}
	return result, count, nil
}

func (r *ShippingRepository) Create(ctx context.Context, merchantID uuid.UUID, merchantCode string, params usecase.CreateShippingParams) (*readmodel.ShippingRM, error) {
	row := r.pool.QueryRow(ctx,
		`INSERT INTO shippings (merchant_id, merchant_code, state, country, amount)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+shippingColumns,
		merchantID, merchantCode, params.State, params.Country, params.Amount,
	)

	rm, err := scanShipping(row)
	if err != nil {
		return nil, wrapPgErr("failed to create shipping", err)
	}
	return rm, nil
}

func (r *ShippingRepository) Update(ctx context.Context, id uuid.UUID, params usecase.UpdateShippingParams) (*readmodel.ShippingRM, error) {
	row := r.pool.QueryRow(ctx,
		`UPDATE shippings SET
			state      = COALESCE($2, state),
			country    = COALESCE($3, country),
			amount     = COALESCE($4, amount),
			updated_at = now()
		 WHERE id = $1
		 RETURNING `+shippingColumns,
		id, params.State, params.Country, params.Amount,
	)

	rm, err := scanShipping(row)
	if err != nil {
		return nil, wrapPgErr("failed to update shipping", err)
	}
	return rm, nil
}

func (r *ShippingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM shippings WHERE id = $1`, id)
	if err != nil {
		return wrapPgErr("failed to delete shipping", err)
	}
	if tag.RowsAffected() == 0 {
		return wrapPgErr("shipping not found", errNoRowsAffected)
	}
	return nil
}

func scanShipping(row rowScanner) (*readmodel.ShippingRM, error) {
	var rm readmodel.ShippingRM
	err := row.Scan(
		&rm.ID, &rm.MerchantID, &rm.MerchantCode, &rm.State, &rm.Country, &rm.Amount,
		&rm.CreatedAt, &rm.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rm, nil
}
