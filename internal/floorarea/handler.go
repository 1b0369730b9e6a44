package floorarea

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	dErrors "codecheck/pkg/domain-errors"
	"codecheck/pkg/platform/httputil"
)

const maxFloors = 200

// Handler serves POST /calc/floor-area.
type Handler struct {
	logger *slog.Logger
}

// NewHandler constructs the floor-area handler.
func NewHandler(logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{logger: logger}
}

// Register mounts the calculation endpoint.
func (h *Handler) Register(r chi.Router) {
	r.Post("/calc/floor-area", h.HandleCompute)
}

// ComputeRequest is the HTTP request body for POST /calc/floor-area.
type ComputeRequest struct {
	Input
}

// Validate rejects negative areas and oversized floor lists.
func (r *ComputeRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	if len(r.Floors) == 0 {
		return dErrors.New(dErrors.CodeValidation, "floors must not be empty")
	}
	if len(r.Floors) > maxFloors {
		return dErrors.New(dErrors.CodeValidation, "floors must contain at most "+strconv.Itoa(maxFloors)+" entries")
	}
	if r.SiteAreaM2 < 0 || r.BuildingFootprintM2 < 0 {
		return dErrors.New(dErrors.CodeValidation, "areas must not be negative")
	}
	for i, f := range r.Floors {
		if f.AreaM2 < 0 {
			return dErrors.New(dErrors.CodeValidation, "floor "+strconv.Itoa(i)+" area must not be negative")
		}
	}
	return nil
}

// HandleCompute runs the arithmetic and returns the figures.
func (h *Handler) HandleCompute(w http.ResponseWriter, r *http.Request) {
	req, ok := httputil.DecodeAndPrepare[ComputeRequest](w, r, h.logger, r.Context(), "")
	if !ok {
		return
	}
	httputil.WriteJSON(w, http.StatusOK, Compute(req.Input))
}
