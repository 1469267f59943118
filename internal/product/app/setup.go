// Package app contains the application setup for the product API.
package app

import (
	"log/slog"
	"net/http"

	"github.com/abgdnv/productapi/internal/config"
	"github.com/abgdnv/productapi/internal/product/handler"
	"github.com/abgdnv/productapi/internal/product/service"
	"github.com/abgdnv/productapi/internal/product/store"
	"github.com/abgdnv/productapi/internal/product/validation"
	"github.com/abgdnv/productapi/pkg/messaging"
	"github.com/abgdnv/productapi/pkg/metrics"
	"github.com/abgdnv/productapi/pkg/server"
	"github.com/abgdnv/productapi/pkg/web"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const ServiceName = "product"

type Dependencies struct {
	ProductService service.ProductService
	Validator      *validation.Validator
	Registry       *prometheus.Registry
	Logger         *slog.Logger
}

// SetupDependencies builds the service on top of store. Product events go to publisher.
func SetupDependencies(productStore store.ProductStore, publisher messaging.Publisher, logger *slog.Logger) *Dependencies {
	return &Dependencies{
		ProductService: service.NewService(productStore, publisher, logger),
		Validator:      validation.New(),
		Registry:       metrics.NewRegistry(),
		Logger:         logger,
	}
}

// SetupHttpHandler initializes the routes and middleware of the product API.
// Used by E2E tests to set up the HTTP server with the necessary routes and middleware.
func SetupHttpHandler(deps *Dependencies, cfg *config.Config) http.Handler {
	mux := server.NewChiRouter(deps.Logger)
	if cfg.Metrics.Enabled {
		m := metrics.NewMetrics(deps.Registry)
		mux.Use(m.Middleware(ServiceName, metrics.ChiRoutePatternOrPath))
		mux.Method(http.MethodGet, cfg.Metrics.Path, metrics.Handler(deps.Registry))
	}
	wireRoutes(mux, deps, cfg)

	if cfg.Telemetry.Enabled {
		return otelhttp.NewHandler(mux, ServiceName)
	}
	return mux
}

// wireRoutes sets up the HTTP routes for the product API.
func wireRoutes(mux *chi.Mux, deps *Dependencies, cfg *config.Config) {
	authGate := web.APIKeyAuth(cfg.Auth.Header, cfg.Auth.APIKey, deps.Logger)
	productHandler := handler.NewHandler(deps.ProductService, deps.Validator, authGate, deps.Logger)
	productHandler.RegisterRoutes(mux)
}

// SetupHttpServer creates and configures an HTTP server for the product API.
func SetupHttpServer(deps *Dependencies, cfg *config.Config) *http.Server {

	mux := SetupHttpHandler(deps, cfg)

	httpCfg := server.HTTPConfig{
		Port:           cfg.HTTPServer.Port,
		MaxHeaderBytes: cfg.HTTPServer.MaxHeaderBytes,
		ReadTimeout:    cfg.HTTPServer.Timeout.Read,
		WriteTimeout:   cfg.HTTPServer.Timeout.Write,
		IdleTimeout:    cfg.HTTPServer.Timeout.Idle,
		ReadHeader:     cfg.HTTPServer.Timeout.ReadHeader,
	}

	return server.NewHTTPServer(httpCfg, mux)
}
