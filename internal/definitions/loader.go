package definitions

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"codecheck/internal/checklist"
)

// Definition file base names looked up inside the definitions directory.
const (
	checklistBase = "checklist"
	rulesBase     = "rules"
)

var extensions = []string{".json", ".yaml", ".yml"}

// ParseChecklist decodes checklist item definitions from JSON or YAML.
func ParseChecklist(data []byte, path string) ([]checklist.ItemDefinition, error) {
	var items []checklist.ItemDefinition
	if err := decode(data, path, &items); err != nil {
		return nil, fmt.Errorf("parse checklist definitions %s: %w", path, err)
	}
	return items, nil
}

// ParseRules decodes rule-engine definitions from JSON or YAML. Authoring
// issues found by validation are returned alongside the definitions; callers
// log them, they never reject the set. A single bad rule authored by a
// non-engineer must not take down the checklist for every other item.
func ParseRules(data []byte, path string) ([]checklist.RuleEngineDefinition, []error, error) {
	var defs []checklist.RuleEngineDefinition
	if err := decode(data, path, &defs); err != nil {
		return nil, nil, fmt.Errorf("parse rule definitions %s: %w", path, err)
	}

	var issues []error
	for _, def := range defs {
		issues = append(issues, def.Validate()...)
	}
	return defs, issues, nil
}

func decode(data []byte, path string, out any) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, out)
	default:
		return json.Unmarshal(data, out)
	}
}

// findSource locates base.(json|yaml|yml) inside dir, preferring JSON.
func findSource(dir, base string) (string, error) {
	for _, ext := range extensions {
		path := filepath.Join(dir, base+ext)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("no %s definition file in %s", base, dir)
}

// loadDir reads and parses both sources from a definitions directory.
func loadDir(dir string) (*Set, []error, error) {
	checklistPath, err := findSource(dir, checklistBase)
	if err != nil {
		return nil, nil, err
	}
	checklistData, err := os.ReadFile(checklistPath)
	if err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", checklistPath, err)
	}
	items, err := ParseChecklist(checklistData, checklistPath)
	if err != nil {
		return nil, nil, err
	}

	// The rules source is optional as a whole: the merger's fallback keeps
	// every item judgeable without it.
	var (
		rules  []checklist.RuleEngineDefinition
		issues []error
	)
	if rulesPath, err := findSource(dir, rulesBase); err == nil {
		rulesData, err := os.ReadFile(rulesPath)
		if err != nil {
			return nil, nil, fmt.Errorf("read %s: %w", rulesPath, err)
		}
		rules, issues, err = ParseRules(rulesData, rulesPath)
		if err != nil {
			return nil, nil, err
		}
	}

	return NewSet(items, rules), issues, nil
}
