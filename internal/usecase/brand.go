package usecase

import (
	"context"
	"errors"

	"safestore/internal/domain/brand"
	"safestore/internal/infra"
	"safestore/internal/pkg/errs"
	"safestore/internal/usecase/readmodel"
)

var (
	ErrBrandNotFound = errors.New("brand not found")
	ErrBrandInUse    = errors.New("brand is referenced by existing products")
)

type BrandRepository interface {
	FindAll(ctx context.Context) ([]*readmodel.BrandRM, error)
	FindByID(ctx context.Context, id int64) (*readmodel.BrandRM, error)
	Create(ctx context.Context, b *brand.Brand) (*readmodel.BrandRM, error)
	Update(ctx context.Context, id int64, b *brand.Brand) (*readmodel.BrandRM, error)
	Delete(ctx context.Context, id int64) error
}

type BrandParams struct {
	Name        string
	Description string
	Logo        string
	IsActive    bool
}

type BrandUseCase interface {
	ListBrands(ctx context.Context) ([]*readmodel.BrandRM, error)
	GetBrand(ctx context.Context, id int64) (*readmodel.BrandRM, error)
	CreateBrand(ctx context.Context, params BrandParams) (*readmodel.BrandRM, error)
	UpdateBrand(ctx context.Context, id int64, params BrandParams) (*readmodel.BrandRM, error)
	DeleteBrand(ctx context.Context, id int64) error
}

type brandUseCaseImpl struct {
	brandRepo BrandRepository
}

func NewBrandUseCase(brandRepo BrandRepository) BrandUseCase {
	return &brandUseCaseImpl{brandRepo: brandRepo}
}

func (u *brandUseCaseImpl) ListBrands(ctx context.Context) ([]*readmodel.BrandRM, error) {
	brands, err := u.brandRepo.FindAll(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list brands")
	}
	return brands, nil
}

func (u *brandUseCaseImpl) GetBrand(ctx context.Context, id int64) (*readmodel.BrandRM, error) {
	rm, err := u.brandRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBrandNotFound
		}
		return nil, errs.Wrap(err, "failed to find brand")
	}
	return rm, nil
}

func (u *brandUseCaseImpl) CreateBrand(ctx context.Context, params BrandParams) (*readmodel.BrandRM, error) {
	entity, err := brand.NewBrand(params.Name, params.Description, params.Logo, params.IsActive)
	if err != nil {
		return nil, err
	}

	rm, err := u.brandRepo.Create(ctx, entity)
	if err != nil {
		return nil, errs.Wrap(err, "failed to create brand")
	}
	return rm, nil
}

func (u *brandUseCaseImpl) UpdateBrand(ctx context.Context, id int64, params BrandParams) (*readmodel.BrandRM, error) {
	entity, err := brand.NewBrand(params.Name, params.Description, params.Logo, params.IsActive)
	if err != nil {
		return nil, err
	}

	rm, err := u.brandRepo.Update(ctx, id, entity)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBrandNotFound
		}
		return nil, errs.Wrap(err, "failed to update brand")
	}
	return rm, nil
}

func (u *brandUseCaseImpl) DeleteBrand(ctx context.Context, id int64) error {
	if err := u.brandRepo.Delete(ctx, id); err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return ErrBrandNotFound
		case infra.IsKind(err, infra.KindForeignKeyViolated):
			return ErrBrandInUse
		default:
			return errs.Wrap(err, "failed to delete brand")
		}
	}
	return nil
}
