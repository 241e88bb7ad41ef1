package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	healthapi "github.com/kagankarabayir/EV-Price-Estimator/api/health"
	valuationapi "github.com/kagankarabayir/EV-Price-Estimator/api/valuation"
	vehiclesapi "github.com/kagankarabayir/EV-Price-Estimator/api/vehicles"
	"github.com/kagankarabayir/EV-Price-Estimator/config"
	"github.com/kagankarabayir/EV-Price-Estimator/core/catalog"
	coremetrics "github.com/kagankarabayir/EV-Price-Estimator/core/metrics"
	"github.com/kagankarabayir/EV-Price-Estimator/core/valuation"
	"github.com/kagankarabayir/EV-Price-Estimator/infra/logger"
	"github.com/kagankarabayir/EV-Price-Estimator/infra/metrics"
)

// Service orchestrates the reference catalog, the valuation engine and the
// HTTP API around them.
type Service struct {
	Catalog *catalog.Catalog
	srv     *http.Server
	log     logger.Logger

	promEnabled     bool
	promPort        string
	shutdownTimeout time.Duration
}

// New creates a Service from the configuration. The catalog is fully built
// before the HTTP server is constructed, so no request can ever observe a
// partial catalog.
func New(cfg *config.Config) (*Service, error) {
	logg := logger.New("service")

	cat := catalog.Build(catalog.SourcePaths{
		XLSX:   cfg.Data.XLSXPath,
		CSV:    cfg.Data.CSVPath,
		Sample: cfg.Data.SamplePath,
	}, logger.New("catalog"))

	var sink coremetrics.Sink = coremetrics.NopSink{}
	if cfg.Metrics.PrometheusEnabled {
		s, err := metrics.NewPromSink(cfg.Metrics)
		if err != nil {
			return nil, fmt.Errorf("prom sink: %w", err)
		}
		sink = s
	}
	sink.RecordCatalog(cat.Source().String(), cat.Len())

	engine := valuation.New(cat, logger.New("valuation"))

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(time.Duration(cfg.Server.RequestTimeoutSeconds) * time.Second))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Server.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))

	router.Method(http.MethodGet, "/health", healthapi.NewHandler(cat))
	router.Method(http.MethodGet, "/makes", vehiclesapi.NewMakesHandler(cat))
	router.Method(http.MethodGet, "/models/{make}", vehiclesapi.NewModelsHandler(cat))
	router.Method(http.MethodPost, "/valuation", valuationapi.NewHandler(engine, sink, logger.New("api")))

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return &Service{
		Catalog:         cat,
		srv:             srv,
		log:             logg,
		promEnabled:     cfg.Metrics.PrometheusEnabled,
		promPort:        cfg.Metrics.PrometheusPort,
		shutdownTimeout: time.Duration(cfg.Server.ShutdownTimeoutSeconds) * time.Second,
	}, nil
}

// Handler exposes the API router, mainly for tests.
func (s *Service) Handler() http.Handler { return s.srv.Handler }

// Run starts the service and blocks until the context is cancelled.
func (s *Service) Run(ctx context.Context) error {
	if s.promEnabled {
		go func() {
			if err := metrics.StartPromServer(ctx, s.promPort); err != nil {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Infof("valuation API listening on %s", s.srv.Addr)
		if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	return s.srv.Shutdown(shutdownCtx)
}
