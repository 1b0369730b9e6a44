// Package handler exposes law reference lookup over HTTP.
package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"codecheck/internal/lawref"
	dErrors "codecheck/pkg/domain-errors"
	"codecheck/pkg/platform/httputil"
	pkgstrings "codecheck/pkg/platform/strings"
	"codecheck/pkg/requestcontext"
)

const maxCodes = 100

// Handler serves GET /laws.
type Handler struct {
	store  lawref.Store
	logger *slog.Logger
}

// New constructs a law reference handler.
func New(store lawref.Store, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{store: store, logger: logger}
}

// Register mounts the law reference endpoints.
func (h *Handler) Register(r chi.Router) {
	r.Get("/laws", h.HandleLookup)
}

// LookupResponse is the HTTP response for GET /laws.
type LookupResponse struct {
	Found   map[string]lawref.LawDoc `json:"found"`
	Missing []string                 `json:"missing"`
}

// HandleLookup resolves a comma-separated codes parameter against the store.
func (h *Handler) HandleLookup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	codes := pkgstrings.DedupeAndTrim(strings.Split(r.URL.Query().Get("codes"), ","))
	if len(codes) == 0 {
		httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, "codes parameter is required"))
		return
	}
	if len(codes) > maxCodes {
		httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, "too many codes requested"))
		return
	}

	found, missing, err := h.store.FindByCodes(ctx, codes)
	if err != nil {
		h.logger.ErrorContext(ctx, "law reference lookup failed",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeUnavailable, "law reference store unavailable"))
		return
	}
	if missing == nil {
		missing = []string{}
	}

	httputil.WriteJSON(w, http.StatusOK, &LookupResponse{Found: found, Missing: missing})
}
