// Package api exposes decoded firmware tables over a REST API.
package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ssargent/fwtab/pkg/firmware"
	"github.com/ssargent/fwtab/pkg/logging"
)

// NewRouter builds the chi router with all routes configured. Split from
// StartServer so tests can drive it with httptest.
func NewRouter(source firmware.TableSource, config ServerConfig, metrics *Metrics) http.Handler {
	server := NewServer(source, config, metrics)

	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(requestIDMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Prometheus metrics endpoint (unprotected for scraping)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		if config.APIKey != "" {
			r.Use(metrics.InstrumentAuthMiddleware(apiKeyMiddleware(config.APIKey)))
		}

		r.Get("/health", metrics.InstrumentHandler("GET", "/api/v1/health", server.handleHealth))

		r.Get("/acpi", metrics.InstrumentHandler("GET", "/api/v1/acpi", server.handleListACPI))
		r.Get("/acpi/{sig}", metrics.InstrumentHandler("GET", "/api/v1/acpi/{sig}", server.handleGetACPI))
		r.Get("/smbios", metrics.InstrumentHandler("GET", "/api/v1/smbios", server.handleSMBIOS))
	})

	return r
}

// StartServer starts the HTTP server and blocks until it exits.
func StartServer(source firmware.TableSource, config ServerConfig) error {
	metrics := NewMetrics(prometheus.DefaultRegisterer)
	router := NewRouter(source, config, metrics)

	addr := fmt.Sprintf("%s:%d", config.Bind, config.Port)
	logging.L().Info().Str("addr", addr).Msg("starting API server")
	return http.ListenAndServe(addr, router)
}
