package app

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"

	"github.com/codemedavid/the-peptide-source-ph/internal/auth"
	"github.com/codemedavid/the-peptide-source-ph/internal/cart"
	"github.com/codemedavid/the-peptide-source-ph/internal/catalog/categories"
	"github.com/codemedavid/the-peptide-source-ph/internal/catalog/payments"
	"github.com/codemedavid/the-peptide-source-ph/internal/catalog/products"
	"github.com/codemedavid/the-peptide-source-ph/internal/checkout"
	"github.com/codemedavid/the-peptide-source-ph/internal/observability"
	"github.com/codemedavid/the-peptide-source-ph/internal/settings"
	"github.com/codemedavid/the-peptide-source-ph/internal/shared"
	"github.com/codemedavid/the-peptide-source-ph/jobs"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger         *slog.Logger
	Config         *Config
	SessionManager *shared.SessionManager

	AuthHandler       *auth.Handler
	ProductsHandler   *products.Handler
	CategoriesHandler *categories.Handler
	PaymentsHandler   *payments.Handler
	CartHandler       *cart.Handler
	CheckoutHandler   *checkout.Handler
	SettingsHandler   *settings.Handler
	JobHandler        *jobs.Handler
	Metrics           *observability.Metrics
}

// NewRouter constructs the chi.Router for the storefront API.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger:         params.Logger,
		Config:         params.Config,
		SessionManager: params.SessionManager,
		Metrics:        params.Metrics,
	}) {
		r.Use(mw)
	}

	r.Use(chimw.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	if params.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", params.Metrics.Handler())
	}

	// Storefront API. Reads are public; the cart and checkout ride the
	// buyer's session cookie.
	r.Route("/api", func(api chi.Router) {
		params.ProductsHandler.Routes(api)
		params.CategoriesHandler.Routes(api)
		params.PaymentsHandler.Routes(api)
		params.SettingsHandler.Routes(api)
		params.CartHandler.Routes(api)

		api.Group(func(g chi.Router) {
			checkoutRate := 10
			if params.Config != nil && params.Config.CheckoutRate > 0 {
				checkoutRate = params.Config.CheckoutRate
			}
			g.Use(httprate.Limit(checkoutRate, time.Minute, httprate.WithKeyFuncs(httprate.KeyByIP)))
			params.CheckoutHandler.Routes(g)
		})
	})

	// Admin panel API. Login is open, everything else requires a session
	// with an authenticated admin.
	r.Route("/admin", func(admin chi.Router) {
		params.AuthHandler.MountRoutes(admin)

		admin.Group(func(g chi.Router) {
			g.Use(auth.RequireAdmin)
			params.ProductsHandler.AdminRoutes(g)
			params.CategoriesHandler.AdminRoutes(g)
			params.PaymentsHandler.AdminRoutes(g)
			params.CheckoutHandler.AdminRoutes(g)
			params.SettingsHandler.AdminRoutes(g)
			if params.JobHandler != nil {
				g.Route("/jobs", params.JobHandler.MountRoutes)
			}
		})
	})

	return r
}
