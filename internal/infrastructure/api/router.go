// Package api exposes the scan and blocking operations over a local HTTP API.
package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"

	"github.com/bnema/tinyguard/internal/application/usecase"
)

const maxBodyBytes = 64 << 10

// Deps holds the use cases served by the router. ReloadCatalog may be nil,
// in which case the reload route answers 503.
type Deps struct {
	Aggregator    *usecase.ScanAggregator
	ReportRequest *usecase.ReportRequestUseCase
	ScanData      *usecase.GetScanDataUseCase
	SetBlocking   *usecase.SetBlockingUseCase
	GetBlocking   *usecase.GetBlockingUseCase
	Diagnostics   *usecase.GetDiagnosticsUseCase
	ReloadCatalog *usecase.ReloadCatalogUseCase
}

type handlers struct {
	deps Deps
}

// NewRouter builds the HTTP handler. Every request carries a child of log
// in its context.
func NewRouter(log zerolog.Logger, deps Deps) http.Handler {
	h := &handlers{deps: deps}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(hlog.NewHandler(log.With().Str("component", "api").Logger()))
	r.Use(requestIDField)
	r.Use(hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
		hlog.FromRequest(r).Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", status).
			Int("size", size).
			Dur("duration", duration).
			Msg("request")
	}))
	r.Use(middleware.Recoverer)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, errNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, errMethodNotAllowed)
	})

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/v1", func(r chi.Router) {
		r.Route("/tabs", func(r chi.Router) {
			r.Get("/", h.listTabs)
			r.Route("/{tabID}", func(r chi.Router) {
				r.Use(tabIDParam)
				r.Delete("/", h.endSession)
				r.Post("/requests", h.reportRequest)
				r.Get("/scan", h.scanData)
				r.Get("/settled", h.settled)
			})
		})

		r.Get("/blocking", h.getBlocking)
		r.Put("/blocking", h.setBlocking)
		r.Get("/diagnostics", h.diagnostics)
		r.Post("/catalog/reload", h.reloadCatalog)
	})

	return r
}

// requestIDField adds chi's request id to the request logger.
func requestIDField(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id := middleware.GetReqID(r.Context()); id != "" {
			log := zerolog.Ctx(r.Context())
			log.UpdateContext(func(c zerolog.Context) zerolog.Context {
				return c.Str("request_id", id)
			})
		}
		next.ServeHTTP(w, r)
	})
}
