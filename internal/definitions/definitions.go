// Package definitions loads and caches the two authored definition sources:
// checklist items and rule-engine definitions. Loading is the caller-side,
// cacheable side effect; the engine itself only ever sees already-parsed
// in-memory structures.
package definitions

import (
	"context"

	"codecheck/internal/checklist"
)

// Set is one immutable definition load: the checklist items plus the
// id-keyed rule index. Evaluations must never write into a shared Set.
type Set struct {
	Items []checklist.ItemDefinition
	Rules map[string]*checklist.RuleEngineDefinition
}

// Store hands out the current definition set. Implementations own caching
// and invalidation; the engine receives Sets as plain arguments.
type Store interface {
	Load(ctx context.Context) (*Set, error)
}

// StaticStore serves a fixed Set. Used by tests and one-shot CLI runs.
type StaticStore struct {
	Set *Set
}

func (s *StaticStore) Load(context.Context) (*Set, error) {
	return s.Set, nil
}

// NewSet builds a Set from parsed definitions, computing the rule index.
func NewSet(items []checklist.ItemDefinition, rules []checklist.RuleEngineDefinition) *Set {
	return &Set{
		Items: items,
		Rules: checklist.NewRuleIndex(rules),
	}
}
