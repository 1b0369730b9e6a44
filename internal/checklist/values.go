package checklist

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// MergeContext folds the context's fields into the value set under the
// well-known keys. Explicit value-set entries win over context-derived ones;
// the inputs are never mutated.
func MergeContext(values Values, ctx Context) Values {
	merged := make(Values, len(values)+6)

	if ctx.Zoning != "" {
		merged[KeyZoning] = ctx.Zoning
	}
	if ctx.Use != "" {
		merged[KeyUse] = ctx.Use
	}
	if ctx.Jurisdiction != "" {
		merged[KeyJurisdiction] = ctx.Jurisdiction
	}
	if ctx.Floors != nil {
		merged[KeyFloors] = *ctx.Floors
	}
	if ctx.HeightM != nil {
		merged[KeyHeightM] = *ctx.HeightM
	}
	if ctx.GrossAreaM2 != nil {
		merged[KeyGrossAreaM2] = *ctx.GrossAreaM2
	}

	for k, v := range values {
		merged[k] = v
	}
	return merged
}

// isMissingValue implements the shared "missing" semantics: absent, nil, a
// non-finite number, or a string that is empty after trimming.
func isMissingValue(v any, ok bool) bool {
	if !ok || v == nil {
		return true
	}
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t) == ""
	case float64:
		return math.IsNaN(t) || math.IsInf(t, 0)
	case float32:
		f := float64(t)
		return math.IsNaN(f) || math.IsInf(f, 0)
	default:
		return false
	}
}

// numeric coerces a value-set entry to a finite float64. Numeric strings
// parse; everything else reports false.
func numeric(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, !math.IsNaN(t) && !math.IsInf(t, 0)
	case float32:
		f := float64(t)
		return f, !math.IsNaN(f) && !math.IsInf(f, 0)
	case int:
		return float64(t), true
	case int32:
		return float64(t), true
	case int64:
		return float64(t), true
	case uint:
		return float64(t), true
	case uint64:
		return float64(t), true
	case json.Number:
		f, err := t.Float64()
		return f, err == nil && !math.IsNaN(f) && !math.IsInf(f, 0)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		return f, err == nil && !math.IsNaN(f) && !math.IsInf(f, 0)
	default:
		return 0, false
	}
}

// stringify renders a value for string comparison. Integral floats print
// without a decimal point so 5 and "5" compare equal.
func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case int:
		return strconv.Itoa(t)
	case int32:
		return strconv.FormatInt(int64(t), 10)
	case int64:
		return strconv.FormatInt(t, 10)
	case uint:
		return strconv.FormatUint(uint64(t), 10)
	case uint64:
		return strconv.FormatUint(t, 10)
	case bool:
		return strconv.FormatBool(t)
	case json.Number:
		return t.String()
	default:
		return ""
	}
}

// stringList coerces a condition's target value to a list of stringified
// members for in / not_in comparisons.
func stringList(v any) ([]string, bool) {
	switch t := v.(type) {
	case []string:
		out := make([]string, len(t))
		for i, s := range t {
			out[i] = strings.TrimSpace(s)
		}
		return out, true
	case []any:
		out := make([]string, len(t))
		for i, m := range t {
			out[i] = stringify(m)
		}
		return out, true
	default:
		return nil, false
	}
}
