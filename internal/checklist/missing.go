package checklist

// MissingInputs lists the item's required inputs absent from the value set,
// in declaration order. Bare-string (informational) inputs and inputs named
// in optional_inputs are skipped. Absence uses the same semantics as the
// "missing" operator, so the rule layer and the prompt layer never disagree
// about what counts as filled in.
func MissingInputs(item MergedItem, values Values) []MissingInput {
	optional := make(map[string]struct{}, len(item.OptionalInputs))
	for _, key := range item.OptionalInputs {
		optional[key] = struct{}{}
	}

	missing := []MissingInput{}
	for _, in := range item.Inputs {
		if in.Informational() {
			continue
		}
		if _, ok := optional[in.Key]; ok {
			continue
		}
		v, ok := values[in.Key]
		if isMissingValue(v, ok) {
			label := in.Label
			if label == "" {
				label = in.Key
			}
			missing = append(missing, MissingInput{Key: in.Key, Label: label})
		}
	}
	return missing
}
