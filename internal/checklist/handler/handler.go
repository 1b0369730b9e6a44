// Package handler wires the checklist endpoints to the checklist service.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"codecheck/internal/checklist"
	"codecheck/internal/checklist/service"
	dErrors "codecheck/pkg/domain-errors"
	"codecheck/pkg/platform/httputil"
	"codecheck/pkg/requestcontext"
)

//go:generate mockgen -source=handler.go -destination=mocks/checklist_mocks.go -package=mocks Service

// Service defines the checklist operations the handler delegates to.
type Service interface {
	Enrich(ctx context.Context, evalCtx checklist.Context) ([]service.EnrichedItem, error)
	Judge(ctx context.Context, evalCtx checklist.Context, values checklist.Values) (*service.JudgeOutput, error)
}

// Handler is the thin HTTP layer over the checklist service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a checklist handler.
func New(svc Service, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{service: svc, logger: logger}
}

// Register mounts the checklist endpoints.
func (h *Handler) Register(r chi.Router) {
	r.Get("/checklist/items", h.HandleItems)
	r.Post("/checklist/judge", h.HandleJudge)
}

// HandleItems handles GET /checklist/items: the enrichment query deriving
// applicable, pre-judged items for display.
func (h *Handler) HandleItems(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	evalCtx, err := contextFromQuery(r.URL.Query())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	items, err := h.service.Enrich(ctx, evalCtx)
	if err != nil {
		h.logger.ErrorContext(ctx, "enrichment query failed",
			"request_id", requestID,
			"zoning", evalCtx.Zoning,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, FromEnrichedItems(items))
}

// HandleJudge handles POST /checklist/judge: the explicit evaluation against
// user-entered values.
func (h *Handler) HandleJudge(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[JudgeRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	output, err := h.service.Judge(ctx, req.EvalContext(), req.Values)
	if err != nil {
		h.logger.ErrorContext(ctx, "judge command failed",
			"request_id", requestID,
			"zoning", req.Context.Zoning,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "checklist judged",
		"request_id", requestID,
		"zoning", req.Context.Zoning,
		"use", req.Context.Use,
		"status", output.Summary.Status,
		"total", output.Summary.Total,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	httputil.WriteJSON(w, http.StatusOK, FromJudgeOutput(output))
}

// contextFromQuery builds the evaluation context from query parameters.
// Unparseable numeric parameters are a client error, not an unknown metric.
func contextFromQuery(q map[string][]string) (checklist.Context, error) {
	get := func(key string) string {
		if vs := q[key]; len(vs) > 0 {
			return vs[0]
		}
		return ""
	}

	evalCtx := checklist.Context{
		Zoning:       get("zoning"),
		Use:          get("use"),
		Jurisdiction: get("jurisdiction"),
	}

	for _, numField := range []struct {
		key  string
		dest **float64
	}{
		{"floors", &evalCtx.Floors},
		{"height_m", &evalCtx.HeightM},
		{"gross_area_m2", &evalCtx.GrossAreaM2},
	} {
		raw := get(numField.key)
		if raw == "" {
			continue
		}
		f, err := parseFloat(raw)
		if err != nil {
			return checklist.Context{}, dErrors.New(dErrors.CodeValidation, numField.key+" must be a number")
		}
		*numField.dest = &f
	}
	return evalCtx, nil
}
