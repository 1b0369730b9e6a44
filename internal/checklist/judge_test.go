package checklist

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func denyAboveFiveFloors() (ItemDefinition, *RuleEngineDefinition) {
	item := ItemDefinition{ID: "height-limit", Title: "층수 제한"}
	def := &RuleEngineDefinition{
		ID:      "height-limit",
		RuleSet: RuleSet{DefaultResult: "allow", DefaultMessage: "층수 제한에 저촉되지 않습니다."},
		AutoRules: []AutoRule{{
			ID:       "over-five",
			When:     &Condition{Key: "floors", Op: OpGte, Value: 5},
			Result:   "deny",
			Message:  "5층 이상은 허용되지 않습니다.",
			Priority: 10,
		}},
	}
	return item, def
}

func TestJudgeItem_RuleMatch(t *testing.T) {
	item, def := denyAboveFiveFloors()

	judged := JudgeItem(item, def, Values{"floors": 6.0})

	assert.Equal(t, StatusDeny, judged.Status)
	assert.Equal(t, "5층 이상은 허용되지 않습니다.", judged.Message)
	assert.Equal(t, "over-five", judged.MatchedRuleID)
	assert.Equal(t, 10.0, judged.Priority)
}

func TestJudgeItem_DefaultWhenNoMatch(t *testing.T) {
	item, def := denyAboveFiveFloors()

	judged := JudgeItem(item, def, Values{"floors": 3.0})

	assert.Equal(t, StatusAllow, judged.Status)
	assert.Equal(t, "층수 제한에 저촉되지 않습니다.", judged.Message)
	assert.Empty(t, judged.MatchedRuleID)
}

func TestJudgeItem_MissingInputsReported(t *testing.T) {
	item := ItemDefinition{
		ID:     "road-width",
		Inputs: []InputField{{Key: "road_width_m", Label: "접도 폭(m)"}},
	}

	t.Run("conditional default keeps status, reports missing", func(t *testing.T) {
		def := &RuleEngineDefinition{
			ID:      "road-width",
			RuleSet: RuleSet{DefaultResult: "conditional", DefaultMessage: "접도 확인 필요"},
		}
		judged := JudgeItem(item, def, Values{})
		assert.Equal(t, StatusConditional, judged.Status)
		assert.Equal(t, []MissingInput{{Key: "road_width_m", Label: "접도 폭(m)"}}, judged.MissingInputs)
	})

	t.Run("need_input default with missing inputs stands", func(t *testing.T) {
		def := &RuleEngineDefinition{
			ID:      "road-width",
			RuleSet: RuleSet{DefaultResult: "need_input", DefaultMessage: "접도 폭을 입력하세요"},
		}
		judged := JudgeItem(item, def, Values{})
		assert.Equal(t, StatusNeedInput, judged.Status)
		require.Len(t, judged.MissingInputs, 1)
	})
}

func TestJudgeItem_NeedInputDowngrade(t *testing.T) {
	// Authoring inconsistency: need_input verdict with nothing missing.
	item := ItemDefinition{ID: "inconsistent"}
	def := &RuleEngineDefinition{
		ID:      "inconsistent",
		RuleSet: RuleSet{DefaultResult: "need_input", DefaultMessage: "확인 필요"},
	}

	judged := JudgeItem(item, def, Values{})

	assert.Equal(t, StatusConditional, judged.Status, "never surface need_input with an empty missing list")
	assert.Equal(t, "확인 필요", judged.Message)
	assert.Empty(t, judged.MissingInputs)
}

func TestJudgeItem_UnknownStatusNormalized(t *testing.T) {
	item := ItemDefinition{ID: "typo"}
	def := &RuleEngineDefinition{
		ID:      "typo",
		RuleSet: RuleSet{DefaultResult: "approvedd"},
	}

	judged := JudgeItem(item, def, Values{})
	assert.Equal(t, StatusUnknown, judged.Status)
}

func TestJudgeItem_Idempotent(t *testing.T) {
	item, def := denyAboveFiveFloors()
	item.Inputs = []InputField{{Key: "floors", Label: "층수"}}
	values := Values{"floors": 6.0}

	first := JudgeItem(item, def, values)
	second := JudgeItem(item, def, values)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("judge is not idempotent (-first +second):\n%s", diff)
	}
}

func TestNormalizeStatus(t *testing.T) {
	tests := []struct {
		in   string
		want Status
	}{
		{"allow", StatusAllow},
		{"ALLOW", StatusAllow},
		{" deny ", StatusDeny},
		{"conditional", StatusConditional},
		{"warn", StatusConditional},
		{"Warn", StatusConditional},
		{"need_input", StatusNeedInput},
		{"unknown", StatusUnknown},
		{"approvedd", StatusUnknown},
		{"", StatusUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := NormalizeStatus(tt.in)
			assert.Equal(t, tt.want, got)
			// Normalization is idempotent.
			assert.Equal(t, got, NormalizeStatus(string(got)))
		})
	}

	assert.Equal(t, NormalizeStatus("conditional"), NormalizeStatus("warn"))
}

func TestEvaluate_FilterJudgeSummarize(t *testing.T) {
	items := []ItemDefinition{
		{ID: "everywhere"},
		{
			ID:        "residential-only",
			AppliesTo: &Applicability{ZoningIn: []string{"제1종일반주거지역"}},
		},
	}
	rules := NewRuleIndex([]RuleEngineDefinition{
		{ID: "everywhere", RuleSet: RuleSet{DefaultResult: "allow"}},
	})

	t.Run("excluded item is absent entirely", func(t *testing.T) {
		results, summary := Evaluate(items, rules, Context{Zoning: "일반상업지역"}, Values{})
		require.Len(t, results, 1)
		assert.Equal(t, "everywhere", results[0].ID)
		assert.Equal(t, 1, summary.Total)
	})

	t.Run("context values visible to rules", func(t *testing.T) {
		withRule := NewRuleIndex([]RuleEngineDefinition{{
			ID:      "everywhere",
			RuleSet: RuleSet{DefaultResult: "allow"},
			AutoRules: []AutoRule{{
				When:   &Condition{Key: "zoning", Op: OpEq, Value: "일반상업지역"},
				Result: "conditional",
			}},
		}})
		results, _ := Evaluate(items, withRule, Context{Zoning: "일반상업지역"}, Values{})
		require.Len(t, results, 1)
		assert.Equal(t, StatusConditional, results[0].Status)
	})

	t.Run("inputs are not mutated", func(t *testing.T) {
		values := Values{"floors": 3.0}
		ctx := Context{Zoning: "제1종일반주거지역", Floors: floatPtr(3)}
		_, _ = Evaluate(items, rules, ctx, values)
		assert.Equal(t, Values{"floors": 3.0}, values)
		assert.Len(t, items[1].AppliesTo.ZoningIn, 1)
	})
}

func TestMergeContext_Precedence(t *testing.T) {
	ctx := Context{
		Zoning: "제1종일반주거지역",
		Floors: floatPtr(3),
	}

	t.Run("context fills well-known keys", func(t *testing.T) {
		merged := MergeContext(Values{}, ctx)
		assert.Equal(t, "제1종일반주거지역", merged[KeyZoning])
		assert.Equal(t, 3.0, merged[KeyFloors])
		_, ok := merged[KeyHeightM]
		assert.False(t, ok, "unknown metrics are not materialized")
	})

	t.Run("explicit values win", func(t *testing.T) {
		merged := MergeContext(Values{"floors": 7.0}, ctx)
		assert.Equal(t, 7.0, merged[KeyFloors])
	})

	t.Run("original map untouched", func(t *testing.T) {
		values := Values{"road_width_m": 4.0}
		_ = MergeContext(values, ctx)
		assert.Equal(t, Values{"road_width_m": 4.0}, values)
	})
}
