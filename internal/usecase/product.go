package usecase

import (
	"context"
	"errors"

	"safestore/internal/domain/product"
	"safestore/internal/infra"
	"safestore/internal/infra/db"
	"safestore/internal/pkg/errs"
	"safestore/internal/usecase/readmodel"

	"github.com/shopspring/decimal"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrProductInUse    = errors.New("product is referenced by existing sales")
)

type ProductRepository interface {
	FindAll(ctx context.Context, sellableOnly bool) ([]*readmodel.ProductRM, error)
	FindByID(ctx context.Context, id int64) (*readmodel.ProductRM, error)
	FindByIDs(ctx context.Context, ids []int64) ([]*readmodel.ProductRM, error)
	Create(ctx context.Context, p *product.Product) (*readmodel.ProductRM, error)
	Update(ctx context.Context, id int64, p *product.Product) (*readmodel.ProductRM, error)
	Delete(ctx context.Context, id int64) error
	// DecrementStock subtracts quantity inside tx, guarded so stock never
	// goes negative; returns the number of rows updated.
	DecrementStock(ctx context.Context, tx db.DBTX, productID int64, quantity int) (int64, error)
}

type ProductParams struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int
	BrandID     int64
	LineID      int64
	IsActive    *bool
}

type ProductUseCase interface {
	ListProducts(ctx context.Context, sellableOnly bool) ([]*readmodel.ProductRM, error)
	GetProduct(ctx context.Context, id int64) (*readmodel.ProductRM, error)
	CreateProduct(ctx context.Context, params ProductParams) (*readmodel.ProductRM, error)
	UpdateProduct(ctx context.Context, id int64, params ProductParams) (*readmodel.ProductRM, error)
	DeleteProduct(ctx context.Context, id int64) error
}

type productUseCaseImpl struct {
	productRepo ProductRepository
}

func NewProductUseCase(productRepo ProductRepository) ProductUseCase {
	return &productUseCaseImpl{productRepo: productRepo}
}

func (u *productUseCaseImpl) ListProducts(ctx context.Context, sellableOnly bool) ([]*readmodel.ProductRM, error) {
	products, err := u.productRepo.FindAll(ctx, sellableOnly)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list products")
	}
	return products, nil
}

func (u *productUseCaseImpl) GetProduct(ctx context.Context, id int64) (*readmodel.ProductRM, error) {
	rm, err := u.productRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, errs.Wrap(err, "failed to find product")
	}
	return rm, nil
}

func (u *productUseCaseImpl) CreateProduct(ctx context.Context, params ProductParams) (*readmodel.ProductRM, error) {
	entity, err := product.NewProduct(params.Name, params.Description, params.Price, params.Stock, params.BrandID, params.LineID)
	if err != nil {
		return nil, err
	}

	rm, err := u.productRepo.Create(ctx, entity)
	if err != nil {
		return nil, errs.Wrap(err, "failed to create product")
	}
	return rm, nil
}

func (u *productUseCaseImpl) UpdateProduct(ctx context.Context, id int64, params ProductParams) (*readmodel.ProductRM, error) {
	entity, err := product.NewProduct(params.Name, params.Description, params.Price, params.Stock, params.BrandID, params.LineID)
	if err != nil {
		return nil, err
	}
	if params.IsActive != nil && !*params.IsActive {
		entity.Deactivate()
	}

	rm, err := u.productRepo.Update(ctx, id, entity)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, errs.Wrap(err, "failed to update product")
	}
	return rm, nil
}

func (u *productUseCaseImpl) DeleteProduct(ctx context.Context, id int64) error {
	if err := u.productRepo.Delete(ctx, id); err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return ErrProductNotFound
		case infra.IsKind(err, infra.KindForeignKeyViolated):
			return ErrProductInUse
		default:
			return errs.Wrap(err, "failed to delete product")
		}
	}
	return nil
}
