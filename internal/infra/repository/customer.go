package repository

import (
	"context"

	"storefront-api/internal/domain/customer"
	"storefront-api/internal/usecase"
	"storefront-api/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var _ usecase.CustomerRepository = (*CustomerRepository)(nil)

type CustomerRepository struct {
	pool *pgxpool.Pool
}

func NewCustomerRepository(pool *pgxpool.Pool) *CustomerRepository {
	return &CustomerRepository{pool: pool}
}

const customerColumns = `user_id, merchant_id, merchant_code, username, email, photo,
	total_orders, total_spent, created_at, updated_at`

// Upsert writes the recomputed aggregate. The whole row is replaced, so a
// replayed recompute lands on the same state.
func (r *CustomerRepository) Upsert(ctx context.Context, agg *customer.Aggregate) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO customers (user_id, merchant_id, merchant_code, username, email, photo, total_orders, total_spent)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 ON CONFLICT (merchant_code, user_id) DO UPDATE SET
			username     = EXCLUDED.username,
			email        = EXCLUDED.email,
			photo        = EXCLUDED.photo,
			total_orders = EXCLUDED.total_orders,
			total_spent  = EXCLUDED.total_spent,
			updated_at   = now()`,
		agg.UserID, agg.MerchantID, agg.MerchantCode, agg.Username, agg.Email, agg.Photo,
		agg.TotalOrders, agg.TotalSpent,
	)
	if err != nil {
		return wrapPgErr("failed to upsert customer", err)
	}
	return nil
}

func (r *CustomerRepository) FindByUsername(ctx context.Context, merchantCode, username string) (*readmodel.CustomerRM, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+customerColumns+` FROM customers
		 WHERE merchant_code = $1 AND username = $2`,
		merchantCode, username,
	)

	rm, err := scanCustomer(row)
	if err != nil {
		return nil, wrapPgErr("failed to find customer by username", err)
	}
	return rm, nil
}

func (r *CustomerRepository) FindByMerchant(ctx context.Context, merchantCode string, page, limit int) ([]*readmodel.CustomerRM, int64, error) {
	var count int64
	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM customers WHERE merchant_code = $1`, merchantCode,
	).Scan(&count); err != nil {
		return nil, 0, wrapPgErr("failed to count customers", err)
	}

	size, offset := normalizePage(page, limit)
	rows, err := r.pool.Query(ctx,
		`SELECT `+customerColumns+` FROM customers
		 WHERE merchant_code = $1
		 ORDER BY updated_at DESC
		 LIMIT $2 OFFSET $3`,
		merchantCode, size, offset,
	)
	if err != nil {
		return nil, 0, wrapPgErr("failed to list customers", err)
	}
	defer rows.Close()

	var result []*readmodel.CustomerRM
	for rows.Next() {
		rm, err := scanCustomer(rows)
		if err != nil {
			return nil, 0, wrapPgErr("failed to scan customer row", err)
		}
		result = append(result, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, wrapPgErr("failed to iterate customer rows", err)
	}
	return result, count, nil
}

func (r *CustomerRepository) Delete(ctx context.Context, merchantCode string, userID uuid.UUID) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM customers WHERE merchant_code = $1 AND user_id = $2`,
		merchantCode, userID,
	)
	if err != nil {
		return wrapPgErr("failed to delete customer", err)
	}
	if tag.RowsAffected() == 0 {
		return wrapPgErr("customer not found", errNoRowsAffected)
	}
	return nil
}

func scanCustomer(row rowScanner) (*readmodel.CustomerRM, error) {
	var rm readmodel.CustomerRM
	err := row.Scan(
		&rm.UserID, &rm.MerchantID, &rm.MerchantCode, &rm.Username, &rm.Email, &rm.Photo,
		&rm.TotalOrders, &rm.TotalSpent, &rm.CreatedAt, &rm.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rm, nil
}
