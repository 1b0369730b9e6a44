// Package checklist implements the building-code self-check engine: it merges
// authored checklist definitions with their rule-engine counterparts, filters
// items by applicability, evaluates prioritized auto rules against a value set,
// and aggregates per-item judgments into an overall summary.
//
// Everything in this package is pure domain logic - no I/O, no side effects.
// Evaluations never mutate the definitions they are handed, so a single loaded
// definition set is safe to share across concurrent requests.
package checklist

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ItemDefinition is the authored content for one checklist row. It is loaded
// from a static source and must stay immutable during evaluation.
type ItemDefinition struct {
	ID         string         `json:"id" yaml:"id"`
	Title      string         `json:"title" yaml:"title"`
	Why        string         `json:"why,omitempty" yaml:"why,omitempty"`
	Inputs     []InputField   `json:"inputs,omitempty" yaml:"inputs,omitempty"`
	Refs       []string       `json:"refs,omitempty" yaml:"refs,omitempty"`
	AppliesTo  *Applicability `json:"applies_to,omitempty" yaml:"applies_to,omitempty"`
	Category   string         `json:"category,omitempty" yaml:"category,omitempty"`
	LogicLevel string         `json:"logic_level,omitempty" yaml:"logic_level,omitempty"`
}

// InputField describes one user-entered input of a checklist item. Authors may
// also declare a bare string instead of a full descriptor; those are
// informational notes, carried through for display but never treated as a
// required field.
type InputField struct {
	Key         string `json:"key,omitempty" yaml:"key,omitempty"`
	Label       string `json:"label,omitempty" yaml:"label,omitempty"`
	Type        string `json:"type,omitempty" yaml:"type,omitempty"`
	Placeholder string `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`

	// Note holds the text of a bare-string declaration.
	Note string `json:"-" yaml:"-"`
}

// Informational reports whether the input was authored as a bare string (or
// without a key) and therefore never participates in missing-input checks.
func (f InputField) Informational() bool {
	return f.Key == ""
}

// UnmarshalJSON accepts either a structured descriptor or a bare string.
func (f *InputField) UnmarshalJSON(data []byte) error {
	var note string
	if err := json.Unmarshal(data, &note); err == nil {
		*f = InputField{Note: note}
		return nil
	}

	type alias InputField
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*f = InputField(a)
	return nil
}

// UnmarshalYAML mirrors UnmarshalJSON for YAML-authored definitions.
func (f *InputField) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		var note string
		if err := node.Decode(&note); err != nil {
			return err
		}
		*f = InputField{Note: note}
		return nil
	}

	type alias InputField
	var a alias
	if err := node.Decode(&a); err != nil {
		return err
	}
	*f = InputField(a)
	return nil
}

// Applicability restricts a checklist item to specific zonings, uses,
// jurisdictions, or minimum project metrics. A nil predicate means the item
// always applies.
type Applicability struct {
	ZoningIn       []string `json:"zoning_in,omitempty" yaml:"zoning_in,omitempty"`
	UseIn          []string `json:"use_in,omitempty" yaml:"use_in,omitempty"`
	JurisdictionIn []string `json:"jurisdiction_in,omitempty" yaml:"jurisdiction_in,omitempty"`

	MinFloors      *float64 `json:"min_floors,omitempty" yaml:"min_floors,omitempty"`
	MinHeightM     *float64 `json:"min_height_m,omitempty" yaml:"min_height_m,omitempty"`
	MinGrossAreaM2 *float64 `json:"min_gross_area_m2,omitempty" yaml:"min_gross_area_m2,omitempty"`
}

// RuleEngineDefinition is the authored judgment logic for a checklist item,
// joined to its ItemDefinition by ID.
type RuleEngineDefinition struct {
	ID             string     `json:"id" yaml:"id"`
	RuleSet        RuleSet    `json:"rule_set" yaml:"rule_set"`
	AutoRules      []AutoRule `json:"auto_rules,omitempty" yaml:"auto_rules,omitempty"`
	OptionalInputs []string   `json:"optional_inputs,omitempty" yaml:"optional_inputs,omitempty"`
}

// RuleSet holds the fallback judgment used when no auto rule matches.
type RuleSet struct {
	DefaultResult  string `json:"default_result" yaml:"default_result"`
	DefaultMessage string `json:"default_message,omitempty" yaml:"default_message,omitempty"`
}

// AutoRule is one prioritized conditional rule. Exactly one of When, WhenAll,
// or WhenAny is expected; a rule with no condition never matches.
type AutoRule struct {
	ID       string      `json:"id,omitempty" yaml:"id,omitempty"`
	When     *Condition  `json:"when,omitempty" yaml:"when,omitempty"`
	WhenAll  []Condition `json:"when_all,omitempty" yaml:"when_all,omitempty"`
	WhenAny  []Condition `json:"when_any,omitempty" yaml:"when_any,omitempty"`
	Result   string      `json:"result" yaml:"result"`
	Message  string      `json:"message,omitempty" yaml:"message,omitempty"`
	Priority float64     `json:"priority,omitempty" yaml:"priority,omitempty"`
}

// Condition is one atomic predicate over the value set.
type Condition struct {
	Key   string `json:"key" yaml:"key"`
	Op    string `json:"op" yaml:"op"`
	Value any    `json:"value,omitempty" yaml:"value,omitempty"`
}

// Context describes the project under review. It is read-only input to one
// evaluation pass. Nil metric pointers mean the value is unknown.
type Context struct {
	Zoning       string   `json:"zoning" yaml:"zoning"`
	Use          string   `json:"use" yaml:"use"`
	Jurisdiction string   `json:"jurisdiction" yaml:"jurisdiction"`
	Floors       *float64 `json:"floors,omitempty" yaml:"floors,omitempty"`
	HeightM      *float64 `json:"height_m,omitempty" yaml:"height_m,omitempty"`
	GrossAreaM2  *float64 `json:"gross_area_m2,omitempty" yaml:"gross_area_m2,omitempty"`
}

// Values is the value set rules are evaluated against: user-entered and
// calc-derived inputs keyed by input key. Entries are strings or numbers.
type Values map[string]any

// Well-known value-set keys the context is merged under.
const (
	KeyZoning       = "zoning"
	KeyUse          = "use"
	KeyJurisdiction = "jurisdiction"
	KeyFloors       = "floors"
	KeyHeightM      = "height_m"
	KeyGrossAreaM2  = "gross_area_m2"
)

// MergedItem is an ItemDefinition joined with its rule-engine definition (or
// the synthesized fallback when none exists).
type MergedItem struct {
	ItemDefinition

	RuleSet        RuleSet
	AutoRules      []AutoRule
	OptionalInputs []string
}

// MissingInput identifies one required input absent from the value set.
type MissingInput struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// JudgedItem is the engine's verdict for one checklist item.
type JudgedItem struct {
	ID            string         `json:"id"`
	Status        Status         `json:"status"`
	Message       string         `json:"message"`
	MissingInputs []MissingInput `json:"missing_inputs"`
	MatchedRuleID string         `json:"matched_rule_id,omitempty"`
	Priority      float64        `json:"priority,omitempty"`
}

// Counts buckets judged items by status.
type Counts struct {
	Allow       int `json:"allow"`
	Conditional int `json:"conditional"`
	Deny        int `json:"deny"`
	NeedInput   int `json:"need_input"`
	Unknown     int `json:"unknown"`
}

// Summary is the aggregate over all judged items. MissingInputs carries raw
// input keys for programmatic consumption.
type Summary struct {
	Status        Status   `json:"status"`
	Total         int      `json:"total"`
	Counts        Counts   `json:"counts"`
	MissingInputs []string `json:"missing_inputs"`
}

// Validate reports authoring errors in a condition. It is called once at
// definition-load time; evaluation itself stays exception-free and simply
// treats malformed conditions as non-matching.
func (c Condition) Validate() error {
	if c.Key == "" {
		return fmt.Errorf("condition is missing key")
	}
	switch c.Op {
	case OpMissing, OpPresent, OpEq, OpNeq, OpLt, OpLte, OpGt, OpGte:
		return nil
	case OpIn, OpNotIn:
		if _, ok := stringList(c.Value); !ok {
			return fmt.Errorf("condition %q: op %q requires a list value", c.Key, c.Op)
		}
		return nil
	case "":
		return fmt.Errorf("condition %q is missing op", c.Key)
	default:
		return fmt.Errorf("condition %q: unsupported op %q", c.Key, c.Op)
	}
}

// Validate reports authoring errors in a rule-engine definition. Issues are
// meant to be logged by the loader, not to reject the whole definition set.
func (d RuleEngineDefinition) Validate() []error {
	var errs []error
	if d.ID == "" {
		errs = append(errs, fmt.Errorf("rule-engine definition is missing id"))
	}
	for i, rule := range d.AutoRules {
		if rule.When == nil && len(rule.WhenAll) == 0 && len(rule.WhenAny) == 0 {
			errs = append(errs, fmt.Errorf("%s: auto rule %d has no condition and will never match", d.ID, i))
		}
		if rule.When != nil {
			if err := rule.When.Validate(); err != nil {
				errs = append(errs, fmt.Errorf("%s: auto rule %d: %w", d.ID, i, err))
			}
		}
		for _, c := range rule.WhenAll {
			if err := c.Validate(); err != nil {
				errs = append(errs, fmt.Errorf("%s: auto rule %d: %w", d.ID, i, err))
			}
		}
		for _, c := range rule.WhenAny {
			if err := c.Validate(); err != nil {
				errs = append(errs, fmt.Errorf("%s: auto rule %d: %w", d.ID, i, err))
			}
		}
	}
	return errs
}
