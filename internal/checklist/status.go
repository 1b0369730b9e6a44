package checklist

import "strings"

// Status is the canonical judgment vocabulary. Every status-producing boundary
// goes through NormalizeStatus, so an unrecognized authored string can never
// leak into results.
type Status string

const (
	StatusAllow       Status = "allow"
	StatusConditional Status = "conditional"
	StatusDeny        Status = "deny"
	StatusNeedInput   Status = "need_input"
	StatusUnknown     Status = "unknown"
)

// NormalizeStatus maps an authored status string onto the canonical set.
// Matching is case-insensitive. The legacy value "warn" migrated to
// "conditional"; future aliases belong here and nowhere else.
func NormalizeStatus(s string) Status {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "allow":
		return StatusAllow
	case "conditional", "warn":
		return StatusConditional
	case "deny":
		return StatusDeny
	case "need_input":
		return StatusNeedInput
	case "unknown":
		return StatusUnknown
	default:
		return StatusUnknown
	}
}
