package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"storefront-api/internal/domain/customer"
	"storefront-api/internal/domain/order"
	"storefront-api/internal/infra"
	"storefront-api/internal/pkg/clock"
	"storefront-api/internal/pkg/errs"
	"storefront-api/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrUserNotFound      = errors.New("user not found")
	ErrEmptyLineItems    = order.ErrEmptyLineItems
	ErrInvalidStatus     = order.ErrInvalidStatus
	ErrForbiddenMerchant = errors.New("order belongs to another merchant")
)

type OrderRepository interface {
	Create(ctx context.Context, o *order.Order) (*readmodel.OrderRM, error)
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.OrderRM, error)
	FindByMerchant(ctx context.Context, merchantCode string, page, limit int) ([]*readmodel.OrderRM, int64, error)
	FindByBuyer(ctx context.Context, merchantCode string, buyerID uuid.UUID, page, limit int) ([]*readmodel.OrderRM, int64, error)
	FindAllByBuyer(ctx context.Context, merchantCode string, buyerID uuid.UUID) ([]*readmodel.OrderRM, error)
	TotalsByBuyer(ctx context.Context, merchantCode string, buyerID uuid.UUID) ([]decimal.Decimal, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, update OrderStatusUpdate) (*readmodel.OrderRM, error)
	DeleteByBuyer(ctx context.Context, merchantCode string, buyerID uuid.UUID) error
}

type CustomerRepository interface {
	Upsert(ctx context.Context, agg *customer.Aggregate) error
	FindByUsername(ctx context.Context, merchantCode, username string) (*readmodel.CustomerRM, error)
	FindByMerchant(ctx context.Context, merchantCode string, page, limit int) ([]*readmodel.CustomerRM, int64, error)
	Delete(ctx context.Context, merchantCode string, userID uuid.UUID) error
}

type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.UserRM, error)
	FindByEmail(ctx context.Context, email string) (*readmodel.UserRM, error)
}

type CreateOrderParams struct {
	BuyerID         uuid.UUID
	LineItems       []order.LineItem
	Quantity        int
	ShippingDetails order.ShippingDetails
	PaymentMethod   string
	DiscountCode    string
	SubTotal        decimal.Decimal
}

// CreateOrderResult carries the persisted order plus non-fatal warnings from
// post-commit side effects (aggregate recompute, notifications).
type CreateOrderResult struct {
	Order    *readmodel.OrderRM
	Warnings []string
}

// OrderStatusUpdate is the merchant-side mutation. Nil fields are left
// untouched.
type OrderStatusUpdate struct {
	Status      *order.Status
	IsPaid      *bool
	IsDelivered *bool
	Reference   *string
	PaidAt      *time.Time
	DeliveredAt *time.Time
}

type OrderUseCase interface {
	CreateOrder(ctx context.Context, merchantCode string, params CreateOrderParams) (*CreateOrderResult, error)
	GetOrder(ctx context.Context, merchantCode string, orderID uuid.UUID) (*readmodel.OrderRM, error)
	ListMerchantOrders(ctx context.Context, merchantCode string, page, limit int) (*readmodel.Page[*readmodel.OrderRM], error)
	ListBuyerOrders(ctx context.Context, merchantCode string, buyerID uuid.UUID, page, limit int) (*readmodel.Page[*readmodel.OrderRM], error)
	UpdateOrderStatus(ctx context.Context, merchantCode string, orderID uuid.UUID, params UpdateOrderStatusParams) (*readmodel.OrderRM, []string, error)
}

type UpdateOrderStatusParams struct {
	Status      *order.Status
	IsPaid      *bool
	IsDelivered *bool
	Reference   *string
}

type orderUseCaseImpl struct {
	checkout     CheckoutUseCase
	merchantRepo MerchantRepository
	orderRepo    OrderRepository
	customerRepo CustomerRepository
	userRepo     UserRepository
	dispatcher   NotificationDispatcher
	hooks        []PostCommitHook
	clock        clock.Clock
}

func NewOrderUseCase(
	checkout CheckoutUseCase,
	merchantRepo MerchantRepository,
	orderRepo OrderRepository,
	customerRepo CustomerRepository,
	userRepo UserRepository,
	dispatcher NotificationDispatcher,
	hooks []PostCommitHook,
	clock clock.Clock,
) OrderUseCase {
	return &orderUseCaseImpl{
		checkout:     checkout,
		merchantRepo: merchantRepo,
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		userRepo:     userRepo,
		dispatcher:   dispatcher,
		hooks:        hooks,
		clock:        clock,
	}
}

// CreateOrder validates and prices the order before any write, persists it,
// then runs the post-commit side effects. Pricing failures abort the whole
// request; side-effect failures are collected as warnings because the order
// already exists.
func (u *orderUseCaseImpl) CreateOrder(ctx context.Context, merchantCode string, params CreateOrderParams) (*CreateOrderResult, error) {
	buyer, err := u.userRepo.FindByID(ctx, params.BuyerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	merchant, err := u.merchantRepo.FindByCode(ctx, merchantCode)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrMerchantNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	entity, err := order.NewOrder(
		buyer.ID,
		merchant.ID,
		merchant.MerchantCode,
		params.LineItems,
		params.Quantity,
		params.ShippingDetails,
		params.PaymentMethod,
	)
	if err != nil {
		return nil, err
	}

	quote, err := u.checkout.Quote(ctx, merchantCode, QuoteParams{
		SubTotal:        params.SubTotal,
		Quantity:        params.Quantity,
		ShippingDetails: params.ShippingDetails,
		DiscountCode:    params.DiscountCode,
	})
	if err != nil {
		return nil, err
	}

	// The caller may have gone away while rates were resolved; nothing has
	// been written yet, so stop before the insert rather than persist an
	// order nobody is waiting for.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entity.SubTotal = quote.SubTotal
	entity.TaxAmount = quote.TaxAmount
	entity.ShippingFee = quote.ShippingFeeAmount
	entity.DiscountAmount = quote.DiscountAmount
	entity.DiscountCode = quote.DiscountCode
	entity.Total = quote.Total

	rm, err := u.orderRepo.Create(ctx, entity)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	var warnings []string
	if err := u.recomputeCustomerAggregate(ctx, buyer, merchant); err != nil {
		// The order is committed; surface the inconsistency instead of
		// failing a creation that did succeed.
		slog.Error("order committed but customer aggregate update failed",
			"order_id", rm.ID, "buyer_id", buyer.ID, "merchant_code", merchantCode, "error", err.Error())
		warnings = append(warnings, "customer statistics update failed")
	}

	warnings = append(warnings, runPostCommitHooks(ctx, u.hooks, rm, buyer)...)

	return &CreateOrderResult{Order: rm, Warnings: warnings}, nil
}

// recomputeCustomerAggregate rebuilds the (buyer, merchant) statistics from
// the full order history. Recomputation rather than increment keeps retried
// commits from double-counting.
func (u *orderUseCaseImpl) recomputeCustomerAggregate(ctx context.Context, buyer *readmodel.UserRM, merchant *readmodel.MerchantRM) error {
	totals, err := u.orderRepo.TotalsByBuyer(ctx, merchant.MerchantCode, buyer.ID)
	if err != nil {
		return errs.Wrap(err, "failed to load order totals")
	}

	agg := &customer.Aggregate{
		UserID:       buyer.ID,
		MerchantID:   merchant.ID,
		MerchantCode: merchant.MerchantCode,
		Username:     buyer.Username,
		Email:        buyer.Email,
		Photo:        buyer.Photo,
	}
	agg.Recompute(totals)

	if err := u.customerRepo.Upsert(ctx, agg); err != nil {
		return errs.Wrap(err, "failed to upsert customer aggregate")
	}
	return nil
}

func (u *orderUseCaseImpl) GetOrder(ctx context.Context, merchantCode string, orderID uuid.UUID) (*readmodel.OrderRM, error) {
	if _, err := u.merchantRepo.FindByCode(ctx, merchantCode); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrMerchantNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	rm, err := u.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rm, nil
}

func (u *orderUseCaseImpl) ListMerchantOrders(ctx context.Context, merchantCode string, page, limit int) (*readmodel.Page[*readmodel.OrderRM], error) {
	if _, err := u.merchantRepo.FindByCode(ctx, merchantCode); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrMerchantNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	orders, count, err := u.orderRepo.FindByMerchant(ctx, merchantCode, page, limit)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return readmodel.NewPage(orders, page, limit, count), nil
}

func (u *orderUseCaseImpl) ListBuyerOrders(ctx context.Context, merchantCode string, buyerID uuid.UUID, page, limit int) (*readmodel.Page[*readmodel.OrderRM], error) {
	if _, err := u.merchantRepo.FindByCode(ctx, merchantCode); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrMerchantNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	orders, count, err := u.orderRepo.FindByBuyer(ctx, merchantCode, buyerID, page, limit)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return readmodel.NewPage(orders, page, limit, count), nil
}

// UpdateOrderStatus applies the merchant-side mutation and fires payment and
// delivery notifications when those flags flip. Notification failures are
// returned as warnings, never as errors.
func (u *orderUseCaseImpl) UpdateOrderStatus(ctx context.Context, merchantCode string, orderID uuid.UUID, params UpdateOrderStatusParams) (*readmodel.OrderRM, []string, error) {
	if _, err := u.merchantRepo.FindByCode(ctx, merchantCode); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil, ErrMerchantNotFound
		}
		return nil, nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	existing, err := u.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil, ErrOrderNotFound
		}
		return nil, nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if existing.MerchantCode != merchantCode {
		return nil, nil, ErrForbiddenMerchant
	}

	if params.Status != nil && !params.Status.IsValid() {
		return nil, nil, ErrInvalidStatus
	}

	update := OrderStatusUpdate{
		Status:      params.Status,
		IsPaid:      params.IsPaid,
		IsDelivered: params.IsDelivered,
		Reference:   params.Reference,
	}
	now := u.clock.Now()
	if params.IsPaid != nil && *params.IsPaid {
		update.PaidAt = &now
	}
	if params.IsDelivered != nil && *params.IsDelivered {
		update.DeliveredAt = &now
	}

	rm, err := u.orderRepo.UpdateStatus(ctx, orderID, update)
	if err != nil {
		return nil, nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	warnings := u.sendStatusNotifications(ctx, rm, params)
	return rm, warnings, nil
}

func (u *orderUseCaseImpl) sendStatusNotifications(ctx context.Context, rm *readmodel.OrderRM, params UpdateOrderStatusParams) []string {
	buyer, err := u.userRepo.FindByID(ctx, rm.BuyerID)
	if err != nil {
		slog.Warn("buyer lookup failed for status notification", "order_id", rm.ID, "error", err.Error())
		return []string{"status notification failed"}
	}

	reference := rm.Reference
	if reference == "" {
		reference = rm.ID.String()
	}

	var warnings []string
	if params.IsPaid != nil && *params.IsPaid {
		err := u.dispatcher.Send(ctx, Notification{
			To:       buyer.Email,
			Username: buyer.Username,
			Subject:  "Payment received",
			Body:     fmt.Sprintf("We received your payment with reference id: %s.", reference),
		})
		if err != nil {
			slog.Warn("payment notification failed", "order_id", rm.ID, "error", err.Error())
			warnings = append(warnings, "payment notification failed")
		}
	}
	if params.IsDelivered != nil && *params.IsDelivered {
		err := u.dispatcher.Send(ctx, Notification{
			To:       buyer.Email,
			Username: buyer.Username,
			Subject:  "Order fulfillment",
			Body:     fmt.Sprintf("We have successfully delivered your order with reference id: %s.", reference),
		})
		if err != nil {
			slog.Warn("delivery notification failed", "order_id", rm.ID, "error", err.Error())
			warnings = append(warnings, "delivery notification failed")
		}
	}
	return warnings
}
