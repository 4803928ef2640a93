package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"safestore/internal/domain/user"
	"safestore/internal/handler/api"
	"safestore/internal/handler/middleware"
	"safestore/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth     *api.AuthHandler
	User     *api.UserHandler
	Brand    *api.BrandHandler
	Line     *api.LineHandler
	Product  *api.ProductHandler
	Supplier *api.SupplierHandler
	Customer *api.CustomerHandler
	Sale     *api.SaleHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	operatorRequired := authMiddleware.RequireRoleAtLeast(user.RoleOperator)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		users := apiGroup.Group("/users")
		users.Use(authMiddleware.RequireAuth())
		{
			addRoutes(users, []route{
				{Method: http.MethodPatch, Path: "/me", Handler: h.User.UpdateProfile},
				{Method: http.MethodGet, Path: "", Handler: h.User.ListUsers, Mw: []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(user.RoleAdmin)}},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.User.DeleteUser, Mw: []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(user.RoleAdmin)}},
			})
		}

		authenticated := apiGroup.Group("")
		authenticated.Use(authMiddleware.RequireAuth())
		{
			addRoutes(authenticated, []route{
				{Method: http.MethodGet, Path: "/roles", Handler: h.User.ListRoles},
			})

			brands := authenticated.Group("/brands")
			addRoutes(brands, crudRoutes(
				h.Brand.ListBrands, h.Brand.GetBrand,
				h.Brand.CreateBrand, h.Brand.UpdateBrand, h.Brand.DeleteBrand,
				operatorRequired,
			))

			lines := authenticated.Group("/lines")
			addRoutes(lines, crudRoutes(
				h.Line.ListLines, h.Line.GetLine,
				h.Line.CreateLine, h.Line.UpdateLine, h.Line.DeleteLine,
				operatorRequired,
			))

			products := authenticated.Group("/products")
			addRoutes(products, crudRoutes(
				h.Product.ListProducts, h.Product.GetProduct,
				h.Product.CreateProduct, h.Product.UpdateProduct, h.Product.DeleteProduct,
				operatorRequired,
			))

			suppliers := authenticated.Group("/suppliers")
			addRoutes(suppliers, crudRoutes(
				h.Supplier.ListSuppliers, h.Supplier.GetSupplier,
				h.Supplier.CreateSupplier, h.Supplier.UpdateSupplier, h.Supplier.DeleteSupplier,
				operatorRequired,
			))

			customers := authenticated.Group("/customers")
			addRoutes(customers, crudRoutes(
				h.Customer.ListCustomers, h.Customer.GetCustomer,
				h.Customer.CreateCustomer, h.Customer.UpdateCustomer, h.Customer.DeleteCustomer,
				operatorRequired,
			))

			sales := authenticated.Group("/sales")
			addRoutes(sales, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Sale.CreateSale, Mw: []gin.HandlerFunc{operatorRequired}},
				{Method: http.MethodGet, Path: "", Handler: h.Sale.ListSales},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Sale.GetSale},
			})
		}
	}
}

// crudRoutes is the shared route shape of the catalog resources: reads
// for any authenticated user, writes for operators and above.
func crudRoutes(list, get, create, update, del gin.HandlerFunc, writeMw gin.HandlerFunc) []route {
	return []route{
		{Method: http.MethodGet, Path: "", Handler: list},
		{Method: http.MethodGet, Path: "/:id", Handler: get},
		{Method: http.MethodPost, Path: "", Handler: create, Mw: []gin.HandlerFunc{writeMw}},
		{Method: http.MethodPut, Path: "/:id", Handler: update, Mw: []gin.HandlerFunc{writeMw}},
		{Method: http.MethodDelete, Path: "/:id", Handler: del, Mw: []gin.HandlerFunc{writeMw}},
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
