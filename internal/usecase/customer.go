package usecase

import (
	"context"
	"errors"

	"storefront-api/internal/infra"
	"storefront-api/internal/pkg/errs"
	"storefront-api/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var ErrCustomerNotFound = errors.New("customer not found")

type CustomerUseCase interface {
	GetCustomer(ctx context.Context, merchantCode, username string) (*readmodel.CustomerRM, error)
	ListCustomers(ctx context.Context, merchantCode string, page, limit int) (*readmodel.Page[*readmodel.CustomerRM], error)
	DeleteCustomer(ctx context.Context, merchantCode string, userID uuid.UUID) error
}

type customerUseCaseImpl struct {
	merchantRepo MerchantRepository
	customerRepo CustomerRepository
	orderRepo    OrderRepository
}

func NewCustomerUseCase(merchantRepo MerchantRepository, customerRepo CustomerRepository, orderRepo OrderRepository) CustomerUseCase {
	return &customerUseCaseImpl{
		merchantRepo: merchantRepo,
		customerRepo: customerRepo,
		orderRepo:    orderRepo,
	}
}

func (u *customerUseCaseImpl) GetCustomer(ctx context.Context, merchantCode, username string) (*readmodel.CustomerRM, error) {
	if err := u.requireMerchant(ctx, merchantCode); err != nil {
		return nil, err
	}

	rm, err := u.customerRepo.FindByUsername(ctx, merchantCode, username)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rm, nil
}

func (u *customerUseCaseImpl) ListCustomers(ctx context.Context, merchantCode string, page, limit int) (*readmodel.Page[*readmodel.CustomerRM], error) {
	if err := u.requireMerchant(ctx, merchantCode); err != nil {
		return nil, err
	}

	customers, count, err := u.customerRepo.FindByMerchant(ctx, merchantCode, page, limit)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return readmodel.NewPage(customers, page, limit, count), nil
}

// DeleteCustomer removes the customer record together with the buyer's order
// history under this merchant, so a later order from the same buyer rebuilds
// the aggregate from scratch.
func (u *customerUseCaseImpl) DeleteCustomer(ctx context.Context, merchantCode string, userID uuid.UUID) error {
	if err := u.requireMerchant(ctx, merchantCode); err != nil {
		return err
	}

	if err := u.orderRepo.DeleteByBuyer(ctx, merchantCode, userID); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := u.customerRepo.Delete(ctx, merchantCode, userID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrCustomerNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (u *customerUseCaseImpl) requireMerchant(ctx context.Context, merchantCode string) error {
	if _, err := u.merchantRepo.FindByCode(ctx, merchantCode); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrMerchantNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
