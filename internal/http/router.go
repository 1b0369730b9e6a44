// Package httpapi assembles the public router. Handlers register their own
// routes; this file only owns middleware order and operational endpoints.
package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	checklisthandler "codecheck/internal/checklist/handler"
	"codecheck/internal/floorarea"
	lawrefhandler "codecheck/internal/lawref/handler"
	"codecheck/pkg/platform/middleware/requestid"
	"codecheck/pkg/platform/middleware/requesttime"
)

// NewRouter wires all public endpoints.
func NewRouter(checklist *checklisthandler.Handler, laws *lawrefhandler.Handler, calc *floorarea.Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.Recoverer)
	r.Use(requestid.Middleware)
	r.Use(requesttime.Middleware)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	checklist.Register(r)
	laws.Register(r)
	calc.Register(r)

	return r
}
