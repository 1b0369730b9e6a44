// Package lawref stores and looks up the law references checklist items cite.
// Lookup results only annotate responses (which refs are unregistered); they
// never influence judgment logic.
package lawref

import "context"

// LawDoc is one registered law reference.
type LawDoc struct {
	Code    string `json:"code"`
	Title   string `json:"title"`
	Article string `json:"article,omitempty"`
	Summary string `json:"summary,omitempty"`
	URL     string `json:"url,omitempty"`
}

// Store resolves law codes to registered documents. FindByCodes returns the
// documents it knows plus the codes it does not, so callers can surface
// missing_refs without treating them as failures.
type Store interface {
	FindByCodes(ctx context.Context, codes []string) (found map[string]LawDoc, missing []string, err error)
}
