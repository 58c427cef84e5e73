package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/addisavenue/storefront-backend/api/controllers"
	"github.com/addisavenue/storefront-backend/api/middleware"
	"github.com/addisavenue/storefront-backend/internal/cart"
	"github.com/addisavenue/storefront-backend/internal/catalog"
	"github.com/addisavenue/storefront-backend/internal/images"
	"github.com/addisavenue/storefront-backend/internal/orders"
	sessionsvc "github.com/addisavenue/storefront-backend/internal/session"
	"github.com/addisavenue/storefront-backend/internal/wishlist"
	"github.com/addisavenue/storefront-backend/pkg/auth/session"
	"github.com/addisavenue/storefront-backend/pkg/config"
	"github.com/addisavenue/storefront-backend/pkg/logger"
	"github.com/addisavenue/storefront-backend/pkg/redis"
)

// Deps carries everything the router wires into handlers. Redis-backed
// fields are nil when Redis is not configured; the affected routes
// degrade gracefully.
type Deps struct {
	Config  *config.Config
	Logger  *logger.Logger
	DB      controllers.Pinger
	Redis   *redis.Client
	Checker session.AccessSessionChecker

	Catalog  catalog.Service
	Cart     *cart.Store
	Wishlist *wishlist.Store
	Session  sessionsvc.Service
	Orders   orders.Service
	Images   *images.Store
}

func NewRouter(d Deps) http.Handler {
	cfg := d.Config
	logg := d.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)
	registerPolicy := middleware.NewAuthRateLimitPolicy(
		"register",
		cfg.AuthRateLimit.RegisterWindow,
		cfg.AuthRateLimit.RegisterIPLimit,
		cfg.AuthRateLimit.RegisterEmailLimit,
	)

	var limiter middleware.RateLimiterStore
	if d.Redis != nil {
		limiter = d.Redis
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, map[string]controllers.Pinger{
			"database": d.DB,
			"redis":    redisPinger(d.Redis),
		}))
	})

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/public", func(r chi.Router) {
		r.Get("/ping", controllers.PublicPing())
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/products", controllers.ListProducts(d.Catalog, cfg.Catalog, logg))
		r.Get("/products/{productId}", controllers.GetProduct(d.Catalog, logg))
		r.Get("/categories", controllers.ListCategories(d.Catalog, logg))

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.GetCart(d.Cart, logg))
			r.Delete("/", controllers.ClearCart(d.Cart, logg))
			r.Post("/items", controllers.AddCartItem(d.Cart, d.Catalog, logg))
			r.Patch("/items/{productId}", controllers.UpdateCartItem(d.Cart, logg))
			r.Delete("/items/{productId}", controllers.RemoveCartItem(d.Cart, logg))
		})

		r.Route("/wishlist", func(r chi.Router) {
			r.Get("/", controllers.GetWishlist(d.Wishlist, d.Catalog, logg))
			r.Delete("/", controllers.ClearWishlist(d.Wishlist, d.Catalog, logg))
			r.Post("/items", controllers.AddWishlistItem(d.Wishlist, d.Catalog, logg))
			r.Delete("/items/{productId}", controllers.RemoveWishlistItem(d.Wishlist, d.Catalog, logg))
		})

		r.Route("/auth", func(r chi.Router) {
			r.With(middleware.AuthRateLimit(loginPolicy, limiter, logg)).
				Post("/login", controllers.AuthLogin(d.Session, logg))
			r.With(middleware.AuthRateLimit(registerPolicy, limiter, logg)).
				Post("/register", controllers.AuthRegister(d.Session, logg))
			r.Post("/logout", controllers.AuthLogout(d.Session, cfg.JWT, logg))
		})

		r.Get("/images/{slot}", controllers.ResolveImage(d.Images, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWT, d.Checker, logg))

			r.Get("/ping", controllers.PrivatePing())

			r.Route("/account", func(r chi.Router) {
				r.Get("/me", controllers.AccountMe(d.Session, logg))
				r.Get("/orders", controllers.AccountOrders(d.Orders, logg))
				r.Get("/orders/{orderId}", controllers.AccountOrder(d.Orders, logg))
			})

			r.Route("/admin/images", func(r chi.Router) {
				r.Get("/", controllers.ListImageOverrides(d.Images, logg))
				r.Put("/{slot}", controllers.SetImage(d.Images, logg))
				r.Delete("/{slot}", controllers.RemoveImage(d.Images, logg))
			})
		})
	})

	return r
}

func redisPinger(client *redis.Client) controllers.Pinger {
	if client == nil {
		return nil
	}
	return client
}
