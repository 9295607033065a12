package boolean

import (
	"strings"
	"testing"
)

func TestExplain(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		results []string
		want    []string
	}{
		{
			name:    "and",
			query:   "dog AND cat",
			results: []string{"d3"},
			want:    []string{`ALL terms: "dog", "cat"`, "every listed term", "1 document(s)", "d3"},
		},
		{
			name:    "or",
			query:   "dog OR cat",
			results: []string{"d1", "d2", "d3"},
			want:    []string{`ANY of the terms: "dog", "cat"`, "at least one", "3 document(s)", "d1, d2, d3"},
		},
		{
			name:    "and not",
			query:   "dog AND NOT cat",
			results: []string{"d1"},
			want:    []string{`"dog" but NOT "cat"`, "1 document(s)"},
		},
		{
			name:    "bare not",
			query:   "dog NOT cat",
			results: nil,
			want:    []string{`"dog" but NOT "cat"`, "No documents match"},
		},
		{
			name:    "single term",
			query:   "dog",
			results: []string{"d1", "d3"},
			want:    []string{`the term "dog"`, "2 document(s)"},
		},
		{
			name:    "malformed",
			query:   "a NOT b NOT c",
			results: nil,
			want:    []string{"malformed", "No documents match"},
		},
		{
			name:    "empty",
			query:   "   ",
			results: nil,
			want:    []string{"empty and matches nothing"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Explain(tt.query, tt.results)
			for _, fragment := range tt.want {
				if !strings.Contains(got, fragment) {
					t.Errorf("Explain(%q) missing %q:\n%s", tt.query, fragment, got)
				}
			}
		})
	}
}
