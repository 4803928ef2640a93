package components

import (
	"safestore/internal/infra/repository"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		repository.NewUserRepository,
		repository.NewBrandRepository,
		repository.NewLineRepository,
		repository.NewProductRepository,
		repository.NewSupplierRepository,
		repository.NewCustomerRepository,
		repository.NewSaleRepository,
	),
)
