package checklist

// Supported condition operators.
const (
	OpMissing = "missing"
	OpPresent = "present"
	OpIn      = "in"
	OpNotIn   = "not_in"
	OpEq      = "eq"
	OpNeq     = "neq"
	OpLt      = "lt"
	OpLte     = "lte"
	OpGt      = "gt"
	OpGte     = "gte"
)

// EvaluateCondition evaluates one atomic predicate against the value set.
// Malformed conditions (no key, no op, unknown op, unparseable numeric
// comparison) evaluate to false rather than failing the whole checklist:
// rules are authored by non-engineers, and one bad rule must not take down
// every other item.
func EvaluateCondition(c Condition, values Values) bool {
	if c.Key == "" || c.Op == "" {
		return false
	}

	v, ok := values[c.Key]

	switch c.Op {
	case OpMissing:
		return isMissingValue(v, ok)
	case OpPresent:
		return !isMissingValue(v, ok)
	case OpIn, OpNotIn:
		members, valid := stringList(c.Value)
		if !valid {
			return false
		}
		actual := stringify(v)
		found := false
		for _, m := range members {
			if m == actual {
				found = true
				break
			}
		}
		if c.Op == OpIn {
			return found
		}
		return !found
	case OpEq, OpNeq:
		eq := looseEqual(v, c.Value)
		if c.Op == OpEq {
			return eq
		}
		return !eq
	case OpLt, OpLte, OpGt, OpGte:
		a, aok := numeric(v)
		b, bok := numeric(c.Value)
		if !aok || !bok {
			return false
		}
		switch c.Op {
		case OpLt:
			return a < b
		case OpLte:
			return a <= b
		case OpGt:
			return a > b
		default:
			return a >= b
		}
	default:
		return false
	}
}

// looseEqual compares numerically when both sides parse as finite numbers,
// otherwise as trimmed strings.
func looseEqual(a, b any) bool {
	an, aok := numeric(a)
	bn, bok := numeric(b)
	if aok && bok {
		return an == bn
	}
	return stringify(a) == stringify(b)
}
