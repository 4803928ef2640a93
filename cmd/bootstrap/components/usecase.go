package components

import (
	"safestore/internal/pkg/clock"
	"safestore/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		usecase.NewTokenValidator,
		usecase.NewAuthUseCase,
		usecase.NewUserUseCase,
		usecase.NewBrandUseCase,
		usecase.NewLineUseCase,
		usecase.NewProductUseCase,
		usecase.NewSupplierUseCase,
		usecase.NewCustomerUseCase,
		usecase.NewSaleUseCase,
	),
)
