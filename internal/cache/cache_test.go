package cache

import "testing"

func TestCanonicalKeyCommutativeOperators(t *testing.T) {
	tests := []struct {
		name string
		a, b string
	}{
		{"and operands", "dog AND cat", "cat AND dog"},
		{"or operands", "dog OR cat OR bird", "bird OR dog OR cat"},
		{"case and whitespace", "Dog   AND   Cat", "cat and dog"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if ka, kb := CanonicalKey(tt.a), CanonicalKey(tt.b); ka != kb {
				t.Errorf("CanonicalKey(%q) = %q, CanonicalKey(%q) = %q; want equal",
					tt.a, ka, tt.b, kb)
			}
		})
	}
}

func TestCanonicalKeyPreservesSubtractionOrder(t *testing.T) {
	if CanonicalKey("dog AND NOT cat") == CanonicalKey("cat AND NOT dog") {
		t.Error("AND NOT operand order must be significant")
	}
	if CanonicalKey("dog NOT cat") == CanonicalKey("cat NOT dog") {
		t.Error("NOT operand order must be significant")
	}
}

func TestCanonicalKeyDistinguishesOperators(t *testing.T) {
	keys := map[string]string{
		"and":     CanonicalKey("dog AND cat"),
		"or":      CanonicalKey("dog OR cat"),
		"and not": CanonicalKey("dog AND NOT cat"),
		"not":     CanonicalKey("dog NOT cat"),
		"single":  CanonicalKey("dog cat"),
	}
	seen := make(map[string]string)
	for name, key := range keys {
		if prev, dup := seen[key]; dup {
			t.Errorf("operators %s and %s collide on key %q", prev, name, key)
		}
		seen[key] = name
	}
}
