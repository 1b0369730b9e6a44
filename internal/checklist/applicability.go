package checklist

// Applies decides whether a checklist item is relevant to the given context.
// Set-membership restrictions are strict: a present, non-empty zoning_in /
// use_in / jurisdiction_in excludes the item when the context value is absent
// or not a member. Numeric thresholds are deliberately lenient when the
// corresponding metric is unknown: the item stays visible so the user is
// prompted to supply the value. Do not "fix" that asymmetry to strict
// filtering; hiding the item would hide the question.
func Applies(item ItemDefinition, ctx Context) bool {
	ap := item.AppliesTo
	if ap == nil {
		return true
	}

	if !memberOf(ctx.Zoning, ap.ZoningIn) {
		return false
	}
	if !memberOf(ctx.Use, ap.UseIn) {
		return false
	}
	if !memberOf(ctx.Jurisdiction, ap.JurisdictionIn) {
		return false
	}

	if belowThreshold(ctx.Floors, ap.MinFloors) {
		return false
	}
	if belowThreshold(ctx.HeightM, ap.MinHeightM) {
		return false
	}
	if belowThreshold(ctx.GrossAreaM2, ap.MinGrossAreaM2) {
		return false
	}
	return true
}

// memberOf is true when no restriction is declared or the value is a member.
func memberOf(value string, allowed []string) bool {
	if len(allowed) == 0 {
		return true
	}
	if value == "" {
		return false
	}
	for _, a := range allowed {
		if a == value {
			return true
		}
	}
	return false
}

// belowThreshold is true only when both the bound and the metric are known
// and the metric falls short. An unknown metric never excludes.
func belowThreshold(value, min *float64) bool {
	if min == nil || value == nil {
		return false
	}
	return *value < *min
}
