package usecase

import (
	"context"
	"errors"

	"safestore/internal/domain/supplier"
	"safestore/internal/infra"
	"safestore/internal/pkg/errs"
	"safestore/internal/usecase/readmodel"
)

var ErrSupplierNotFound = errors.New("supplier not found")

type SupplierRepository interface {
	FindAll(ctx context.Context) ([]*readmodel.SupplierRM, error)
	FindByID(ctx context.Context, id int64) (*readmodel.SupplierRM, error)
	Create(ctx context.Context, s *supplier.Supplier) (*readmodel.SupplierRM, error)
	Update(ctx context.Context, id int64, s *supplier.Supplier) (*readmodel.SupplierRM, error)
	Delete(ctx context.Context, id int64) error
}

type SupplierParams struct {
	Name     string
	Phone    string
	Email    string
	IsActive bool
}

type SupplierUseCase interface {
	ListSuppliers(ctx context.Context) ([]*readmodel.SupplierRM, error)
	GetSupplier(ctx context.Context, id int64) (*readmodel.SupplierRM, error)
	CreateSupplier(ctx context.Context, params SupplierParams) (*readmodel.SupplierRM, error)
	UpdateSupplier(ctx context.Context, id int64, params SupplierParams) (*readmodel.SupplierRM, error)
	DeleteSupplier(ctx context.Context, id int64) error
}

type supplierUseCaseImpl struct {
	supplierRepo SupplierRepository
}

func NewSupplierUseCase(supplierRepo SupplierRepository) SupplierUseCase {
	return &supplierUseCaseImpl{supplierRepo: supplierRepo}
}

func (u *supplierUseCaseImpl) ListSuppliers(ctx context.Context) ([]*readmodel.SupplierRM, error) {
	suppliers, err := u.supplierRepo.FindAll(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list suppliers")
	}
	return suppliers, nil
}

func (u *supplierUseCaseImpl) GetSupplier(ctx context.Context, id int64) (*readmodel.SupplierRM, error) {
	rm, err := u.supplierRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSupplierNotFound
		}
		return nil, errs.Wrap(err, "failed to find supplier")
	}
	return rm, nil
}

func (u *supplierUseCaseImpl) CreateSupplier(ctx context.Context, params SupplierParams) (*readmodel.SupplierRM, error) {
	entity, err := supplier.NewSupplier(params.Name, params.Phone, params.Email, params.IsActive)
	if err != nil {
		return nil, err
	}

	rm, err := u.supplierRepo.Create(ctx, entity)
	if err != nil {
		return nil, errs.Wrap(err, "failed to create supplier")
	}
	return rm, nil
}

func (u *supplierUseCaseImpl) UpdateSupplier(ctx context.Context, id int64, params SupplierParams) (*readmodel.SupplierRM, error) {
	entity, err := supplier.NewSupplier(params.Name, params.Phone, params.Email, params.IsActive)
	if err != nil {
		return nil, err
	}

	rm, err := u.supplierRepo.Update(ctx, id, entity)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSupplierNotFound
		}
		return nil, errs.Wrap(err, "failed to update supplier")
	}
	return rm, nil
}

func (u *supplierUseCaseImpl) DeleteSupplier(ctx context.Context, id int64) error {
	if err := u.supplierRepo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrSupplierNotFound
		}
		return errs.Wrap(err, "failed to delete supplier")
	}
	return nil
}
