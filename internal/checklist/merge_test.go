package checklist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerge_AttachesDefinition(t *testing.T) {
	item := ItemDefinition{ID: "parking"}
	def := &RuleEngineDefinition{
		ID:             "parking",
		RuleSet:        RuleSet{DefaultResult: "allow", DefaultMessage: "주차 기준을 충족합니다."},
		AutoRules:      []AutoRule{{ID: "r1", When: &Condition{Key: "floors", Op: OpGte, Value: 5}, Result: "deny"}},
		OptionalInputs: []string{"note"},
	}

	merged := Merge(item, def)

	assert.Equal(t, def.RuleSet, merged.RuleSet)
	assert.Equal(t, def.AutoRules, merged.AutoRules)
	assert.Equal(t, def.OptionalInputs, merged.OptionalInputs)
}

func TestMerge_FallbackWhenAbsent(t *testing.T) {
	merged := Merge(ItemDefinition{ID: "orphan"}, nil)

	assert.Equal(t, string(StatusConditional), merged.RuleSet.DefaultResult)
	assert.Equal(t, DefaultFallbackMessage, merged.RuleSet.DefaultMessage)
	assert.Empty(t, merged.AutoRules)
	assert.Empty(t, merged.OptionalInputs)

	// The fallback keeps the item judgeable.
	judged := JudgeItem(ItemDefinition{ID: "orphan"}, nil, Values{})
	assert.Equal(t, StatusConditional, judged.Status)
	assert.Equal(t, DefaultFallbackMessage, judged.Message)
}

func TestNewRuleIndex(t *testing.T) {
	defs := []RuleEngineDefinition{
		{ID: "a", RuleSet: RuleSet{DefaultResult: "allow"}},
		{ID: "b", RuleSet: RuleSet{DefaultResult: "deny"}},
	}

	index := NewRuleIndex(defs)

	require.Len(t, index, 2)
	assert.Equal(t, "allow", index["a"].RuleSet.DefaultResult)
	assert.Equal(t, "deny", index["b"].RuleSet.DefaultResult)
	assert.Nil(t, index["missing"])
}
