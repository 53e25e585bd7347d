package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/storefront/ecommerce-api/internal/api/handler"
	"github.com/storefront/ecommerce-api/internal/api/middleware"
	"github.com/storefront/ecommerce-api/internal/api/validation"
	"github.com/storefront/ecommerce-api/internal/core/domain"
	"github.com/storefront/ecommerce-api/internal/core/ports"
)

// Access is the privilege a route demands from its caller.
type Access int

const (
	Public Access = iota
	Authenticated
	AdminOnly
)

func (a Access) String() string {
	switch a {
	case Public:
		return "public"
	case Authenticated:
		return "authenticated"
	case AdminOnly:
		return "admin"
	}
	return "unknown"
}

// Route is one entry of the access table.
type Route struct {
	Method  string
	Path    string
	Access  Access
	Handler echo.HandlerFunc
}

// Dependencies carries everything the HTTP layer needs from main.
type Dependencies struct {
	Logger   zerolog.Logger
	Verifier ports.TokenVerifier

	Auth     ports.AuthService
	Users    ports.UserService
	Products ports.ProductService
	Carts    ports.CartService
	Orders   ports.OrderService
	Checkout ports.CheckoutService

	// Readiness lists the dependencies pinged by /health/ready.
	Readiness map[string]handler.Pinger
	// Metrics exposes /metrics when true.
	Metrics bool
}

// Routes is the access table of the API. Ownership rules on top of the
// Authenticated level are enforced by the services.
func Routes(d Dependencies) []Route {
	auth := handler.NewAuthHandler(d.Auth)
	users := handler.NewUserHandler(d.Users)
	products := handler.NewProductHandler(d.Products)
	carts := handler.NewCartHandler(d.Carts)
	orders := handler.NewOrderHandler(d.Orders)
	checkout := handler.NewCheckoutHandler(d.Checkout)

	return []Route{
		{http.MethodPost, "/api/auth/register", Public, auth.Register},
		{http.MethodPost, "/api/auth/login", Public, auth.Login},

		{http.MethodGet, "/api/users", AdminOnly, users.List},
		{http.MethodGet, "/api/users/stats", AdminOnly, users.Stats},
		{http.MethodGet, "/api/users/:id", Authenticated, users.Get},
		{http.MethodPut, "/api/users/:id", Authenticated, users.Update},
		{http.MethodDelete, "/api/users/:id", Authenticated, users.Delete},

		{http.MethodPost, "/api/products", AdminOnly, products.Create},
		{http.MethodGet, "/api/products", Authenticated, products.List},
		{http.MethodGet, "/api/products/:id", Authenticated, products.Get},
		{http.MethodPut, "/api/products/:id", AdminOnly, products.Update},
		{http.MethodDelete, "/api/products/:id", AdminOnly, products.Delete},

		{http.MethodPost, "/api/carts", Authenticated, carts.Create},
		{http.MethodGet, "/api/carts", AdminOnly, carts.List},
		{http.MethodGet, "/api/carts/:userId", Authenticated, carts.GetByUser},
		{http.MethodPut, "/api/carts/:id", Authenticated, carts.Update},
		{http.MethodDelete, "/api/carts/:id", Authenticated, carts.Delete},

		{http.MethodPost, "/api/orders", Authenticated, orders.Create},
		{http.MethodGet, "/api/orders", AdminOnly, orders.List},
		{http.MethodGet, "/api/orders/income", AdminOnly, orders.Income},
		{http.MethodGet, "/api/orders/:userId", Authenticated, orders.ListByUser},
		{http.MethodPut, "/api/orders/:id", AdminOnly, orders.Update},
		{http.MethodDelete, "/api/orders/:id", AdminOnly, orders.Delete},

		{http.MethodPost, "/api/checkout/payment", Authenticated, checkout.Pay},
	}
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = validation.New()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(d.Logger))
	if d.Metrics {
		e.Use(echoprometheus.NewMiddleware("storefront"))
		e.GET("/metrics", echoprometheus.NewHandler())
	}

	authenticate := middleware.Authenticate(d.Verifier)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	for _, r := range Routes(d) {
		var mw []echo.MiddlewareFunc
		switch r.Access {
		case Authenticated:
			mw = append(mw, authenticate)
		case AdminOnly:
			mw = append(mw, authenticate, adminOnly)
		}
		e.Add(r.Method, r.Path, r.Handler, mw...)
	}

	// --- Health probes and docs (no auth required) ---
	e.GET("/health", handler.NewHealthHandler().Liveness)
	e.GET("/health/ready", handler.NewReadinessHandler(d.Readiness).Readiness)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
