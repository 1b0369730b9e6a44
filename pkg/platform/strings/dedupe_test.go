package strings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDedupeAndTrim(t *testing.T) {
	tests := []struct {
		name   string
		input  []string
		expect []string
	}{
		{"removes duplicates", []string{"a", "b", "a"}, []string{"a", "b"}},
		{"trims whitespace", []string{" a ", "b\t"}, []string{"a", "b"}},
		{"trimmed values dedupe", []string{"a", " a "}, []string{"a"}},
		{"drops empties", []string{"", "  ", "a"}, []string{"a"}},
		{"keeps first-seen order", []string{"c", "a", "b", "a"}, []string{"c", "a", "b"}},
		{"nil input", nil, nil},
		{"empty input", []string{}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, DedupeAndTrim(tt.input))
		})
	}
}
