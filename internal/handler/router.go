package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"storefront-api/internal/domain/user"
	"storefront-api/internal/handler/api"
	"storefront-api/internal/handler/middleware"
	"storefront-api/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth     *api.AuthHandler
	Merchant *api.MerchantHandler
	Checkout *api.CheckoutHandler
	Order    *api.OrderHandler
	Product  *api.ProductHandler
	Category *api.CategoryHandler
	Discount *api.DiscountHandler
	Tax      *api.TaxHandler
	Shipping *api.ShippingHandler
	Customer *api.CustomerHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		merchants := apiGroup.Group("/merchants")
		{
			addRoutes(merchants, []route{
				{Method: http.MethodGet, Path: "/:merchantCode", Handler: h.Merchant.Get},
			})

			merchantRequired := merchants.Group("")
			merchantRequired.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(user.RoleMerchant))
			addRoutes(merchantRequired, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Merchant.Create},
				{Method: http.MethodPut, Path: "/:merchantCode", Handler: h.Merchant.Update},
			})
		}

		store := apiGroup.Group("/stores/:merchantCode")
		{
			// Public storefront surface: catalog browsing, pricing preview
			// and rate inquiries.
			addRoutes(store, []route{
				{Method: http.MethodPost, Path: "/checkout/preview", Handler: h.Checkout.Preview},
				{Method: http.MethodPost, Path: "/discounts/validate", Handler: h.Checkout.ValidateDiscount},
				{Method: http.MethodGet, Path: "/rates/tax", Handler: h.Checkout.TaxRate},
				{Method: http.MethodGet, Path: "/rates/shipping", Handler: h.Checkout.ShippingFee},
				{Method: http.MethodGet, Path: "/products", Handler: h.Product.List},
				{Method: http.MethodGet, Path: "/products/:slug", Handler: h.Product.Get},
				{Method: http.MethodGet, Path: "/categories", Handler: h.Category.List},
				{Method: http.MethodGet, Path: "/categories/:id", Handler: h.Category.Get},
			})

			// Registered outside the orders group: gin cannot mix a static
			// segment with the :id wildcard under /orders.
			myOrders := store.Group("/my-orders")
			myOrders.Use(authMiddleware.RequireAuth())
			addRoutes(myOrders, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Order.ListMine},
			})

			orders := store.Group("/orders")
			orders.Use(authMiddleware.RequireAuth())
			{
				addRoutes(orders, []route{
					{Method: http.MethodPost, Path: "", Handler: h.Order.Create},
					{Method: http.MethodGet, Path: "/:id", Handler: h.Order.Get},
				})

				merchantOnly := orders.Group("")
				merchantOnly.Use(authMiddleware.RequireRole(user.RoleMerchant))
				addRoutes(merchantOnly, []route{
					{Method: http.MethodGet, Path: "", Handler: h.Order.List},
					{Method: http.MethodPatch, Path: "/:id/status", Handler: h.Order.UpdateStatus},
				})
			}

			merchantOnly := store.Group("")
			merchantOnly.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(user.RoleMerchant))
			{
				addRoutes(merchantOnly, []route{
					{Method: http.MethodPost, Path: "/products", Handler: h.Product.Create},
					{Method: http.MethodPatch, Path: "/products/:productId", Handler: h.Product.Update},
					{Method: http.MethodDelete, Path: "/products/:productId", Handler: h.Product.Delete},

					{Method: http.MethodPost, Path: "/categories", Handler: h.Category.Create},
					{Method: http.MethodPatch, Path: "/categories/:id", Handler: h.Category.Update},
					{Method: http.MethodDelete, Path: "/categories/:id", Handler: h.Category.Delete},

					{Method: http.MethodPost, Path: "/discounts", Handler: h.Discount.Create},
					{Method: http.MethodGet, Path: "/discounts", Handler: h.Discount.List},
					{Method: http.MethodGet, Path: "/discounts/:id", Handler: h.Discount.Get},
					{Method: http.MethodPatch, Path: "/discounts/:id", Handler: h.Discount.Update},
					{Method: http.MethodDelete, Path: "/discounts/:id", Handler: h.Discount.Delete},

					{Method: http.MethodPost, Path: "/taxes", Handler: h.Tax.Create},
					{Method: http.MethodGet, Path: "/taxes", Handler: h.Tax.List},
					{Method: http.MethodGet, Path: "/taxes/:id", Handler: h.Tax.Get},
					{Method: http.MethodPatch, Path: "/taxes/:id", Handler: h.Tax.Update},
					{Method: http.MethodDelete, Path: "/taxes/:id", Handler: h.Tax.Delete},

					{Method: http.MethodPost, Path: "/shippings", Handler: h.Shipping.Create},
					{Method: http.MethodGet, Path: "/shippings", Handler: h.Shipping.List},
					{Method: http.MethodGet, Path: "/shippings/:id", Handler: h.Shipping.Get},
					{Method: http.MethodPatch, Path: "/shippings/:id", Handler: h.Shipping.Update},
					{Method: http.MethodDelete, Path: "/shippings/:id", Handler: h.Shipping.Delete},

					{Method: http.MethodGet, Path: "/customers", Handler: h.Customer.List},
					{Method: http.MethodGet, Path: "/customers/:username", Handler: h.Customer.Get},
					{Method: http.MethodDelete, Path: "/customers/:userId", Handler: h.Customer.Delete},
				})
			}
		}
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
