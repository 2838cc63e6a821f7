package repository

import (
	"context"

	"storefront-api/internal/usecase"
	"storefront-api/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	_ usecase.MerchantRepository = (*MerchantRepository)(nil)
	_ usecase.MerchantWriter     = (*MerchantRepository)(nil)
)

type MerchantRepository struct {
	pool *pgxpool.Pool
}

func NewMerchantRepository(pool *pgxpool.Pool) *MerchantRepository {
	return &MerchantRepository{pool: pool}
}

const merchantColumns = `id, owner_id, merchant_code, merchant_name, merchant_email, currency, logo, created_at, updated_at`

func (r *MerchantRepository) FindByCode(ctx context.Context, merchantCode string) (*readmodel.MerchantRM, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+merchantColumns+` FROM merchants WHERE merchant_code = $1`,
		merchantCode,
	)

	rm, err := scanMerchant(row)
	if err != nil {
		return nil, wrapPgErr("failed to find merchant by code", err)
	}
	return rm, nil
}

func (r *MerchantRepository) Create(ctx context.Context, ownerID uuid.UUID, params usecase.CreateMerchantParams) (*readmodel.MerchantRM, error) {
	row := r.pool.QueryRow(ctx,
		`INSERT INTO merchants (owner_id, merchant_code, merchant_name, merchant_email, currency, logo)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING `+merchantColumns,
		ownerID, params.MerchantCode, params.MerchantName, params.MerchantEmail, params.Currency, params.Logo,
	)

	rm, err := scanMerchant(row)
	if err != nil {
		return nil, wrapPgErr("failed to create merchant", err)
	}
	return rm, nil
}

func (r *MerchantRepository) Update(ctx context.Context, merchantCode string, params usecase.UpdateMerchantParams) (*readmodel.MerchantRM, error) {
	row := r.pool.QueryRow(ctx,
		`UPDATE merchants SET
			merchant_name  = COALESCE($2, merchant_name),
			merchant_email = COALESCE($3, merchant_email),
			currency       = COALESCE($4, currency),
			logo           = COALESCE($5, logo),
			updated_at     = now()
		 WHERE merchant_code = $1
		 RETURNING `+merchantColumns,
		merchantCode, params.MerchantName, params.MerchantEmail, params.Currency, params.Logo,
	)

	rm, err := scanMerchant(row)
	if err != nil {
		return nil, wrapPgErr("failed to update merchant", err)
	}
	return rm, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMerchant(row rowScanner) (*readmodel.MerchantRM, error) {
	var rm readmodel.MerchantRM
	err := row.Scan(
		&rm.ID, &rm.OwnerID, &rm.MerchantCode, &rm.MerchantName, &rm.MerchantEmail,
		&rm.Currency, &rm.Logo, &rm.CreatedAt, &rm.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rm, nil
}
