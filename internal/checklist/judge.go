package checklist

// JudgeItem resolves one checklist item to its final status, message, and
// missing inputs. It always returns a fully formed JudgedItem; authoring
// problems degrade to conservative statuses instead of erroring.
func JudgeItem(item ItemDefinition, def *RuleEngineDefinition, values Values) JudgedItem {
	merged := Merge(item, def)
	missing := MissingInputs(merged, values)

	judged := JudgedItem{
		ID:            item.ID,
		MissingInputs: missing,
	}

	if match := SelectRule(merged.AutoRules, values); match != nil {
		judged.Status = match.Result
		judged.Message = match.Message
		judged.MatchedRuleID = match.RuleID
		judged.Priority = match.Priority
	} else {
		judged.Status = NormalizeStatus(merged.RuleSet.DefaultResult)
		judged.Message = merged.RuleSet.DefaultMessage
	}

	// A need_input verdict with nothing to ask for is an authoring
	// inconsistency; downgrade so the UI never points the user at an empty
	// list.
	if judged.Status == StatusNeedInput && len(missing) == 0 {
		judged.Status = StatusConditional
		judged.Message = merged.RuleSet.DefaultMessage
	}

	return judged
}

// Evaluate runs the whole pipeline over one definition set: applicability
// filter, per-item judgment, summary. Pure and mutation-free, so the same
// loaded definitions can serve concurrent evaluations.
func Evaluate(items []ItemDefinition, rules map[string]*RuleEngineDefinition, ctx Context, values Values) ([]JudgedItem, Summary) {
	merged := MergeContext(values, ctx)

	judged := []JudgedItem{}
	for _, item := range items {
		if !Applies(item, ctx) {
			continue
		}
		judged = append(judged, JudgeItem(item, rules[item.ID], merged))
	}
	return judged, Summarize(judged)
}
