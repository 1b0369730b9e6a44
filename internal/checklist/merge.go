package checklist

// DefaultFallbackMessage is attached when a checklist item has no rule-engine
// counterpart. Matches the tone of authored default messages.
const DefaultFallbackMessage = "개별 검토가 필요한 항목입니다. 관할 행정청에 확인하세요."

// NewRuleIndex builds the id-keyed join index over rule-engine definitions.
// It is computed once per definition-load cycle so per-item merges are a map
// lookup, not a scan of parallel arrays.
func NewRuleIndex(defs []RuleEngineDefinition) map[string]*RuleEngineDefinition {
	index := make(map[string]*RuleEngineDefinition, len(defs))
	for i := range defs {
		index[defs[i].ID] = &defs[i]
	}
	return index
}

// Merge joins a checklist item with its rule-engine definition. When the
// definition is absent the fallback keeps the item judgeable: default result
// conditional, no auto rules, no optional inputs. Incomplete authoring is the
// normal case for freshly added items, not an error.
func Merge(item ItemDefinition, def *RuleEngineDefinition) MergedItem {
	merged := MergedItem{ItemDefinition: item}
	if def == nil {
		merged.RuleSet = RuleSet{
			DefaultResult:  string(StatusConditional),
			DefaultMessage: DefaultFallbackMessage,
		}
		merged.AutoRules = []AutoRule{}
		merged.OptionalInputs = []string{}
		return merged
	}

	merged.RuleSet = def.RuleSet
	merged.AutoRules = def.AutoRules
	merged.OptionalInputs = def.OptionalInputs
	return merged
}
