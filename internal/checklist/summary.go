package checklist

import pkgstrings "codecheck/pkg/platform/strings"

// Summarize folds judged items into the aggregate the UI headlines. Overall
// status priority is deny > need_input > conditional > allow: one blocking or
// ambiguous item dominates an otherwise-passing checklist. When none of those
// buckets is positive the overall status is unknown.
func Summarize(items []JudgedItem) Summary {
	summary := Summary{Total: len(items)}

	keys := make([]string, 0, len(items))
	for _, item := range items {
		switch item.Status {
		case StatusAllow:
			summary.Counts.Allow++
		case StatusConditional:
			summary.Counts.Conditional++
		case StatusDeny:
			summary.Counts.Deny++
		case StatusNeedInput:
			summary.Counts.NeedInput++
		default:
			summary.Counts.Unknown++
		}
		for _, mi := range item.MissingInputs {
			keys = append(keys, mi.Key)
		}
	}
	summary.MissingInputs = pkgstrings.DedupeAndTrim(keys)
	if summary.MissingInputs == nil {
		summary.MissingInputs = []string{}
	}

	switch {
	case summary.Counts.Deny > 0:
		summary.Status = StatusDeny
	case summary.Counts.NeedInput > 0:
		summary.Status = StatusNeedInput
	case summary.Counts.Conditional > 0:
		summary.Status = StatusConditional
	case summary.Counts.Allow > 0:
		summary.Status = StatusAllow
	default:
		summary.Status = StatusUnknown
	}
	return summary
}
