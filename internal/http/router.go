package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/rogerio-castellano/product-manager/docs"
	"github.com/rogerio-castellano/product-manager/internal/http/handlers"
	rl "github.com/rogerio-castellano/product-manager/internal/http/rate_limiter"
)

// Options carries the optional pieces of the router. Zero values turn them off.
type Options struct {
	Limiter  *rl.Limiter
	Registry *prometheus.Registry
}

func NewRouter(s *handlers.Server, opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(Logging(s.Log))
	if opts.Registry != nil {
		r.Use(NewMetrics(opts.Registry).Middleware)
	}
	if opts.Limiter != nil {
		r.Use(opts.Limiter.Middleware)
	}

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	if opts.Registry != nil {
		r.Handle("/metrics", promhttp.HandlerFor(opts.Registry, promhttp.HandlerOpts{}))
	}
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.Post("/login", s.LoginHandler)
	r.Get("/metrics/dashboard", s.GetDashboardMetricsHandler)

	r.Route("/products", func(r chi.Router) {
		r.Get("/", s.GetProductsHandler)
		r.Get("/search", s.FilterProductsHandler)
		r.Get("/{id}", s.GetProductByIDHandler)

		r.Group(func(r chi.Router) {
			if s.Auth != nil {
				r.Use(AuthMiddleware(s.Auth))
			}
			r.Post("/", s.CreateProductHandler)
			r.Post("/import", s.ImportProductsHandler)
			r.Put("/{id}", s.UpdateProductHandler)
			r.Patch("/{id}", s.UpdateProductHandler)
			r.Delete("/{id}", s.DeleteProductHandler)
		})
	})

	return r
}
