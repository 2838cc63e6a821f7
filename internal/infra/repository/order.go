package repository

import (
	"context"
	"encoding/json"

	"storefront-api/internal/domain/order"
	"storefront-api/internal/infra"
	"storefront-api/internal/usecase"
	"storefront-api/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

var _ usecase.OrderRepository = (*OrderRepository)(nil)

type OrderRepository struct {
	pool *pgxpool.Pool
}

func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

const orderColumns = `id, buyer_id, merchant_id, merchant_code, line_items, quantity,
	shipping_details, payment_method, sub_total, tax_amount, shipping_fee,
	discount_amount, discount_code, total, status, is_paid, paid_at,
	is_delivered, delivered_at, reference, created_at`

func (r *OrderRepository) Create(ctx context.Context, o *order.Order) (*readmodel.OrderRM, error) {
	itemsJSON, err := json.Marshal(o.LineItems)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to marshal line items", err)
	}
	shippingJSON, err := json.Marshal(o.ShippingDetails)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to marshal shipping details", err)
	}

	row := r.pool.QueryRow(ctx,
		`INSERT INTO orders (id, buyer_id, merchant_id, merchant_code, line_items, quantity,
			shipping_details, payment_method, sub_total, tax_amount, shipping_fee,
			discount_amount, discount_code, total, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		 RETURNING `+orderColumns,
		o.ID, o.BuyerID, o.MerchantID, o.MerchantCode, itemsJSON, o.Quantity,
		shippingJSON, o.PaymentMethod, o.SubTotal, o.TaxAmount, o.ShippingFee,
		o.DiscountAmount, o.DiscountCode, o.Total, string(o.Status),
	)

	rm, err := scanOrder(row)
	if err != nil {
		return nil, wrapPgErr("failed to create order", err)
	}
	return rm, nil
}

func (r *OrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.OrderRM, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id = $1`, id)

	rm, err := scanOrder(row)
	if err != nil {
		return nil, wrapPgErr("failed to find order by ID", err)
	}
	return rm, nil
}

func (r *OrderRepository) FindByMerchant(ctx context.Context, merchantCode string, page, limit int) ([]*readmodel.OrderRM, int64, error) {
	var count int64
	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM orders WHERE merchant_code = $1`, merchantCode,
	).Scan(&count); err != nil {
		return nil, 0, wrapPgErr("failed to count orders", err)
	}

	size, offset := normalizePage(page, limit)
	rows, err := r.pool.Query(ctx,
		`SELECT `+orderColumns+` FROM orders
		 WHERE merchant_code = $1
		 ORDER BY created_at DESC
		 LIMIT $2 OFFSET $3`,
		merchantCode, size, offset,
	)
	if err != nil {
		return nil, 0, wrapPgErr("failed to list merchant orders", err)
	}
	defer rows.Close()

	return collectOrders(rows, count)
}

func (r *OrderRepository) FindByBuyer(ctx context.Context, merchantCode string, buyerID uuid.UUID, page, limit int) ([]*readmodel.OrderRM, int64, error) {
	var count int64
	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM orders WHERE merchant_code = $1 AND buyer_id = $2`,
		merchantCode, buyerID,
	).Scan(&count); err != nil {
		return nil, 0, wrapPgErr("failed to count buyer orders", err)
	}

	size, offset := normalizePage(page, limit)
	rows, err := r.pool.Query(ctx,
		`SELECT `+orderColumns+` FROM orders
		 WHERE merchant_code = $1 AND buyer_id = $2
		 ORDER BY created_at DESC
		 LIMIT $3 OFFSET $4`,
		merchantCode, buyerID, size, offset,
	)
	if err != nil {
		return nil, 0, wrapPgErr("failed to list buyer orders", err)
	}
	defer rows.Close()

	return collectOrders(rows, count)
}

func (r *OrderRepository) FindAllByBuyer(ctx context.Context, merchantCode string, buyerID uuid.UUID) ([]*readmodel.OrderRM, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+orderColumns+` FROM orders
		 WHERE merchant_code = $1 AND buyer_id = $2
		 ORDER BY created_at DESC`,
		merchantCode, buyerID,
	)
	if err != nil {
		return nil, wrapPgErr("failed to list all buyer orders", err)
	}
	defer rows.Close()

	orders, _, err := collectOrders(rows, 0)
	return orders, err
}

// TotalsByBuyer returns every order total for the buyer under this merchant.
// The aggregate recompute reads this instead of incrementing counters.
func (r *OrderRepository) TotalsByBuyer(ctx context.Context, merchantCode string, buyerID uuid.UUID) ([]decimal.Decimal, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT total FROM orders WHERE merchant_code = $1 AND buyer_id = $2`,
		merchantCode, buyerID,
	)
	if err != nil {
		return nil, wrapPgErr("failed to load order totals", err)
	}
	defer rows.Close()

	var totals []decimal.Decimal
	for rows.Next() {
		var total decimal.Decimal
		if err := rows.Scan(&total); err != nil {
			return nil, wrapPgErr("failed to scan order total", err)
		}
		totals = append(totals, total)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapPgErr("failed to iterate order totals", err)
	}
	return totals, nil
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, update usecase.OrderStatusUpdate) (*readmodel.OrderRM, error) {
	row := r.pool.QueryRow(ctx,
		`UPDATE orders SET
			status       = COALESCE($2, status),
			is_paid      = COALESCE($3, is_paid),
			paid_at      = COALESCE($4, paid_at),
			is_delivered = COALESCE($5, is_delivered),
			delivered_at = COALESCE($6, delivered_at),
			reference    = COALESCE($7, reference)
		 WHERE id = $1
		 RETURNING `+orderColumns,
		id, update.Status, update.IsPaid, update.PaidAt, update.IsDelivered,
		update.DeliveredAt, update.Reference,
	)

	rm, err := scanOrder(row)
	if err != nil {
		return nil, wrapPgErr("failed to update order status", err)
	}
	return rm, nil
}

func (r *OrderRepository) DeleteByBuyer(ctx context.Context, merchantCode string, buyerID uuid.UUID) error {
	_, err := r.pool.Exec(ctx,
		`DELETE FROM orders WHERE merchant_code = $1 AND buyer_id = $2`,
		merchantCode, buyerID,
	)
	if err != nil {
		return wrapPgErr("failed to delete buyer orders", err)
	}
	return nil
}

func collectOrders(rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}, count int64) ([]*readmodel.OrderRM, int64, error) {
	var result []*readmodel.OrderRM
	for rows.Next() {
		rm, err := scanOrder(rows)
		if err != nil {
			return nil, 0, wrapPgErr("failed to scan order row", err)
		}
		result = append(result, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, wrapPgErr("failed to iterate order rows", err)
	}
	return result, count, nil
}

func scanOrder(row rowScanner) (*readmodel.OrderRM, error) {
	var rm readmodel.OrderRM
	err := row.Scan(
		&rm.ID, &rm.BuyerID, &rm.MerchantID, &rm.MerchantCode, &rm.LineItems, &rm.Quantity,
		&rm.ShippingDetails, &rm.PaymentMethod, &rm.SubTotal, &rm.TaxAmount, &rm.ShippingFee,
		&rm.DiscountAmount, &rm.DiscountCode, &rm.Total, &rm.Status, &rm.IsPaid, &rm.PaidAt,
		&rm.IsDelivered, &rm.DeliveredAt, &rm.Reference, &rm.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rm, nil
}
