package usecase

import (
	"context"
	"errors"

	"safestore/internal/domain/customer"
	"safestore/internal/infra"
	"safestore/internal/pkg/errs"
	"safestore/internal/usecase/readmodel"
)

var (
	ErrCustomerNotFound  = errors.New("customer not found")
	ErrDuplicateDocument = errors.New("document number already registered")
)

type CustomerRepository interface {
	FindAll(ctx context.Context) ([]*readmodel.CustomerRM, error)
	FindByID(ctx context.Context, id int64) (*readmodel.CustomerRM, error)
	Create(ctx context.Context, c *customer.Customer) (*readmodel.CustomerRM, error)
	Update(ctx context.Context, id int64, c *customer.Customer) (*readmodel.CustomerRM, error)
	Delete(ctx context.Context, id int64) error
}

type CustomerParams struct {
	Name     string
	LastName string
	Email    string
	Address  string
	Phone    string
	Document int64
}

type CustomerUseCase interface {
	ListCustomers(ctx context.Context) ([]*readmodel.CustomerRM, error)
	GetCustomer(ctx context.Context, id int64) (*readmodel.CustomerRM, error)
	CreateCustomer(ctx context.Context, params CustomerParams) (*readmodel.CustomerRM, error)
	UpdateCustomer(ctx context.Context, id int64, params CustomerParams) (*readmodel.CustomerRM, error)
	DeleteCustomer(ctx context.Context, id int64) error
}

type customerUseCaseImpl struct {
	customerRepo CustomerRepository
}

func NewCustomerUseCase(customerRepo CustomerRepository) CustomerUseCase {
	return &customerUseCaseImpl{customerRepo: customerRepo}
}

func (u *customerUseCaseImpl) ListCustomers(ctx context.Context) ([]*readmodel.CustomerRM, error) {
	customers, err := u.customerRepo.FindAll(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list customers")
	}
	return customers, nil
}

func (u *customerUseCaseImpl) GetCustomer(ctx context.Context, id int64) (*readmodel.CustomerRM, error) {
	rm, err := u.customerRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, errs.Wrap(err, "failed to find customer")
	}
	return rm, nil
}

func (u *customerUseCaseImpl) CreateCustomer(ctx context.Context, params CustomerParams) (*readmodel.CustomerRM, error) {
	entity, err := customer.NewCustomer(params.Name, params.LastName, params.Email, params.Address, params.Phone, params.Document)
	if err != nil {
		return nil, err
	}

	rm, err := u.customerRepo.Create(ctx, entity)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrDuplicateDocument
		}
		return nil, errs.Wrap(err, "failed to create customer")
	}
	return rm, nil
}

func (u *customerUseCaseImpl) UpdateCustomer(ctx context.Context, id int64, params CustomerParams) (*readmodel.CustomerRM, error) {
	entity, err := customer.NewCustomer(params.Name, params.LastName, params.Email, params.Address, params.Phone, params.Document)
	if err != nil {
		return nil, err
	}

	rm, err := u.customerRepo.Update(ctx, id, entity)
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return nil, ErrCustomerNotFound
		case infra.IsKind(err, infra.KindDuplicateKey):
			return nil, ErrDuplicateDocument
		default:
			return nil, errs.Wrap(err, "failed to update customer")
		}
	}
	return rm, nil
}

func (u *customerUseCaseImpl) DeleteCustomer(ctx context.Context, id int64) error {
	if err := u.customerRepo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrCustomerNotFound
		}
		return errs.Wrap(err, "failed to delete customer")
	}
	return nil
}
