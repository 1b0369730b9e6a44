package checklist

import "sort"

// RuleMatch carries the outcome of the winning auto rule.
type RuleMatch struct {
	Result   Status
	Message  string
	RuleID   string
	Priority float64
}

// RuleMatches reports whether an auto rule's condition holds for the value
// set. The first declared form wins: when, then when_all (AND over a
// non-empty list), then when_any (OR). A rule with no condition never
// matches; defaults live in the rule set, not in an unconditional rule.
func RuleMatches(rule AutoRule, values Values) bool {
	if rule.When != nil {
		return EvaluateCondition(*rule.When, values)
	}
	if len(rule.WhenAll) > 0 {
		all := true
		for _, c := range rule.WhenAll {
			if !EvaluateCondition(c, values) {
				all = false
			}
		}
		return all
	}
	if len(rule.WhenAny) > 0 {
		for _, c := range rule.WhenAny {
			if EvaluateCondition(c, values) {
				return true
			}
		}
		return false
	}
	return false
}

// SelectRule picks the winning auto rule: highest priority first, declaration
// order breaking ties (the sort must be stable for determinism), first match
// wins. Returns nil when nothing matches. This is the sole conflict-resolution
// mechanism between overlapping rules.
func SelectRule(rules []AutoRule, values Values) *RuleMatch {
	if len(rules) == 0 {
		return nil
	}

	ordered := make([]AutoRule, len(rules))
	copy(ordered, rules)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Priority > ordered[j].Priority
	})

	for _, rule := range ordered {
		if RuleMatches(rule, values) {
			return &RuleMatch{
				Result:   NormalizeStatus(rule.Result),
				Message:  rule.Message,
				RuleID:   rule.ID,
				Priority: rule.Priority,
			}
		}
	}
	return nil
}
