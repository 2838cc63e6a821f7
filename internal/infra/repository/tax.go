package repository

import (
	"context"

	"storefront-api/internal/usecase"
	"storefront-api/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var _ usecase.TaxRepository = (*TaxRepository)(nil)

type TaxRepository struct {
	pool *pgxpool.Pool
}

func NewTaxRepository(pool *pgxpool.Pool) *TaxRepository {
	return &TaxRepository{pool: pool}
}

const taxColumns = `id, merchant_id, merchant_code, street, city, zip, state, country,
	standard_rate, enabled, created_at, updated_at`

func (r *TaxRepository) FindEnabledByState(ctx context.Context, merchantCode, state string) (*readmodel.TaxRM, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+taxColumns+` FROM taxes
		 WHERE merchant_code = $1 AND state = $2 AND enabled`,
		merchantCode, state,
	)

	rm, err := scanTax(row)
	if err != nil {
		return nil, wrapPgErr("failed to find tax by state", err)
	}
	return rm, nil
}

func (r *TaxRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.TaxRM, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+taxColumns+` FROM taxes WHERE id = $1`, id)

	rm, err := scanTax(row)
	if err != nil {
		return nil, wrapPgErr("failed to find tax by ID", err)
	}
	return rm, nil
}

func (r *TaxRepository) FindByMerchant(ctx context.Context, merchantCode string, page, limit int) ([]*readmodel.TaxRM, int64, error) {
	var count int64
	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM taxes WHERE merchant_code = $1`, merchantCode,
	).Scan(&count); err != nil {
		return nil, 0, wrapPgErr("failed to count taxes", err)
	}

	size, offset := normalizePage(page, limit)
	rows, err := r.pool.Query(ctx,
		`SELECT `+taxColumns+` FROM taxes
		 WHERE merchant_code = $1
		 ORDER BY created_at DESC
		 LIMIT $2 OFFSET $3`,
		merchantCode, size, offset,
	)
	if err != nil {
		return nil, 0, wrapPgErr("failed to list taxes", err)
	}
	defer rows.Close()

	var result []*readmodel.TaxRM
	for rows.Next() {
		rm, err := scanTax(rows)
		if err != nil {
			return nil, 0, wrapPgErr("failed to scan tax row", err)
		}
		result = append(result, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, wrapPgErr("failed to iterate tax rows", err)
	}
	return result, count, nil
}

func (r *TaxRepository) Create(ctx context.Context, merchantID uuid.UUID, merchantCode string, params usecase.CreateTaxParams) (*readmodel.TaxRM, error) {
	row := r.pool.QueryRow(ctx,
		`INSERT INTO taxes (merchant_id, merchant_code, street, city, zip, state, country, standard_rate, enabled)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING `+taxColumns,
		merchantID, merchantCode, params.Street, params.City, params.Zip,
		params.State, params.Country, params.StandardRate, params.Enabled,
	)

	rm, err := scanTax(row)
	if err != nil {
		return nil, wrapPgErr("failed to create tax", err)
	}
	return rm, nil
}

func (r *TaxRepository) Update(ctx context.Context, id uuid.UUID, params usecase.UpdateTaxParams) (*readmodel.TaxRM, error) {
	row := r.pool.QueryRow(ctx,
		`UPDATE taxes SET
			street        = COALESCE($2, street),
			city          = COALESCE($3, city),
			zip           = COALESCE($4, zip),
			state         = COALESCE($5, state),
			country       = COALESCE($6, country),
			standard_rate = COALESCE($7, standard_rate),
			enabled       = COALESCE($8, enabled),
			updated_at    = now()
		 WHERE id = $1
		 RETURNING `+taxColumns,
		id, params.Street, params.City, params.Zip, params.State, params.Country,
		params.StandardRate, params.Enabled,
	)

	rm, err := scanTax(row)
	if err != nil {
		return nil, wrapPgErr("failed to update tax", err)
	}
	return rm, nil
}

func (r *TaxRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM taxes WHERE id = $1`, id)
	if err != nil {
		return wrapPgErr("failed to delete tax", err)
	}
	if tag.RowsAffected() == 0 {
		return wrapPgErr("tax not found", errNoRowsAffected)
	}
	return nil
}

func scanTax(row rowScanner) (*readmodel.TaxRM, error) {
	var rm readmodel.TaxRM
	err := row.Scan(
		&rm.ID, &rm.MerchantID, &rm.MerchantCode, &rm.Street, &rm.City, &rm.Zip,
		&rm.State, &rm.Country, &rm.StandardRate, &rm.Enabled, &rm.CreatedAt, &rm.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rm, nil
}
