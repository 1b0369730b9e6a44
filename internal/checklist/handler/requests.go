package handler

import (
	"math"
	"strconv"
	"strings"

	"codecheck/internal/checklist"
	dErrors "codecheck/pkg/domain-errors"
)

// Request body limits. Generous for a checklist, tight enough to shed abuse.
const (
	maxValues      = 200
	maxKeyLength   = 100
	maxValueLength = 1000
)

// JudgeRequest is the HTTP request body for POST /checklist/judge.
type JudgeRequest struct {
	Context ContextPayload   `json:"context"`
	Values  checklist.Values `json:"values"`
}

// ContextPayload carries the project context of a judge command.
type ContextPayload struct {
	Zoning       string   `json:"zoning"`
	Use          string   `json:"use"`
	Jurisdiction string   `json:"jurisdiction"`
	Floors       *float64 `json:"floors,omitempty"`
	HeightM      *float64 `json:"height_m,omitempty"`
	GrossAreaM2  *float64 `json:"gross_area_m2,omitempty"`
}

// Validate checks size limits and trims the context strings. Implements the
// Validatable interface for httputil.DecodeAndPrepare.
func (r *JudgeRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}

	r.Context.Zoning = strings.TrimSpace(r.Context.Zoning)
	r.Context.Use = strings.TrimSpace(r.Context.Use)
	r.Context.Jurisdiction = strings.TrimSpace(r.Context.Jurisdiction)

	if len(r.Values) > maxValues {
		return dErrors.New(dErrors.CodeValidation, "values must contain at most "+strconv.Itoa(maxValues)+" entries")
	}
	for key, value := range r.Values {
		if len(key) > maxKeyLength {
			return dErrors.New(dErrors.CodeValidation, "value keys must be at most "+strconv.Itoa(maxKeyLength)+" characters")
		}
		if s, ok := value.(string); ok && len(s) > maxValueLength {
			return dErrors.New(dErrors.CodeValidation, "value "+key+" is too long")
		}
	}
	return nil
}

// EvalContext converts the payload to the engine's context type.
func (r *JudgeRequest) EvalContext() checklist.Context {
	return checklist.Context{
		Zoning:       r.Context.Zoning,
		Use:          r.Context.Use,
		Jurisdiction: r.Context.Jurisdiction,
		Floors:       r.Context.Floors,
		HeightM:      r.Context.HeightM,
		GrossAreaM2:  r.Context.GrossAreaM2,
	}
}

// parseFloat parses a finite float; NaN and infinities are rejected.
func parseFloat(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, strconv.ErrRange
	}
	return f, nil
}
