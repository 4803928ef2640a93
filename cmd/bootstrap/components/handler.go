package components

import (
	"safestore/internal/handler"
	"safestore/internal/handler/api"
	"safestore/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewUserHandler,
		api.NewBrandHandler,
		api.NewLineHandler,
		api.NewProductHandler,
		api.NewSupplierHandler,
		api.NewCustomerHandler,
		api.NewSaleHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func newHandlers(
	auth *api.AuthHandler,
	user *api.UserHandler,
	brand *api.BrandHandler,
	line *api.LineHandler,
	product *api.ProductHandler,
	supplier *api.SupplierHandler,
	customer *api.CustomerHandler,
	sale *api.SaleHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:     auth,
		User:     user,
		Brand:    brand,
		Line:     line,
		Product:  product,
		Supplier: supplier,
		Customer: customer,
		Sale:     sale,
	}
}
