// Package httputil centralizes JSON request decoding and response writing so
// handlers stay thin and error envelopes stay consistent.
package httputil

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	dErrors "codecheck/pkg/domain-errors"
)

// Validatable is implemented by request structs that validate and parse
// themselves after decoding.
type Validatable interface {
	Validate() error
}

// WriteJSON writes a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// WriteError renders a coded error as the standard JSON envelope. Internal
// errors omit the description so infrastructure detail never reaches clients.
func WriteError(w http.ResponseWriter, err error) {
	code := dErrors.CodeInternal
	message := ""

	var domainErr *dErrors.Error
	if errors.As(err, &domainErr) {
		code = domainErr.Code
		message = domainErr.Message
	}

	body := map[string]string{"error": string(code)}
	if message != "" && code != dErrors.CodeInternal {
		body["error_description"] = message
	}
	WriteJSON(w, dErrors.ToHTTPStatus(code), body)
}

// DecodeAndPrepare decodes the request body into T and runs its validation.
// On failure it writes the error response and returns ok=false; handlers just
// return.
func DecodeAndPrepare[T any, PT interface {
	*T
	Validatable
}](w http.ResponseWriter, r *http.Request, logger *slog.Logger, ctx context.Context, requestID string) (PT, bool) {
	req := PT(new(T))
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		if logger != nil {
			logger.WarnContext(ctx, "request decode failed",
				"request_id", requestID,
				"error", err,
			)
		}
		WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid JSON body"))
		return nil, false
	}
	if err := req.Validate(); err != nil {
		WriteError(w, err)
		return nil, false
	}
	return req, true
}
