// Package boolean implements the Boolean query core: a restricted query
// classifier, a set-algebra evaluator over the inverted index, a per-result
// logic verifier, and a human-readable explainer.
package boolean

import "strings"

// Kind identifies which single operator family a query uses. Exactly one
// family is recognized per query, chosen by substring priority:
// " and not " before " and " before " or " before " not ".
type Kind int

const (
	// KindSingle is a query with no recognized operator; the whole query
	// is one term group.
	KindSingle Kind = iota
	// KindAndNot is "left AND NOT right", split once on the first
	// occurrence. The left side may itself be an N-ary AND.
	KindAndNot
	// KindAnd is an N-ary AND over every " and "-separated part.
	KindAnd
	// KindOr is an N-ary OR over every " or "-separated part.
	KindOr
	// KindNot is the binary "t1 NOT t2" form.
	KindNot
	// KindMalformed marks a query that matched an operator family but
	// not its expected shape (more than one " not " separator). Such
	// queries evaluate to an empty result without error.
	KindMalformed
)

// String returns the operator name for logging and explanations.
func (k Kind) String() string {
	switch k {
	case KindAndNot:
		return "AND_NOT"
	case KindAnd:
		return "AND"
	case KindOr:
		return "OR"
	case KindNot:
		return "NOT"
	case KindMalformed:
		return "MALFORMED"
	default:
		return "SINGLE"
	}
}

// Query is the classified form of a raw query string. Parts holds the raw
// term groups on either side of the operator, trimmed but not yet
// normalized.
type Query struct {
	Kind  Kind
	Parts []string
	Raw   string
}

// Classify lowercases the query and assigns it to exactly one operator
// family. Both the evaluator and the verifier parse through this single
// function, so the two can never disagree on query structure.
func Classify(raw string) Query {
	query := strings.ToLower(strings.TrimSpace(raw))

	switch {
	case query == "":
		return Query{Kind: KindSingle, Parts: []string{}, Raw: raw}

	case strings.Contains(query, " and not "):
		left, right, _ := strings.Cut(query, " and not ")
		return Query{
			Kind:  KindAndNot,
			Parts: []string{strings.TrimSpace(left), strings.TrimSpace(right)},
			Raw:   raw,
		}

	case strings.Contains(query, " and "):
		return Query{
			Kind:  KindAnd,
			Parts: splitTrim(query, " and "),
			Raw:   raw,
		}

	case strings.Contains(query, " or "):
		return Query{
			Kind:  KindOr,
			Parts: splitTrim(query, " or "),
			Raw:   raw,
		}

	case strings.Contains(query, " not "):
		parts := splitTrim(query, " not ")
		if len(parts) != 2 {
			// "a not b not c" has no defined meaning; it yields an
			// empty result rather than an error.
			return Query{Kind: KindMalformed, Parts: parts, Raw: raw}
		}
		return Query{Kind: KindNot, Parts: parts, Raw: raw}

	default:
		return Query{Kind: KindSingle, Parts: []string{query}, Raw: raw}
	}
}

// AndParts splits the left side of an AND_NOT query into its conjunctive
// term groups. A left side without " and " is a single group.
func AndParts(left string) []string {
	if strings.Contains(left, " and ") {
		return splitTrim(left, " and ")
	}
	return []string{strings.TrimSpace(left)}
}

func splitTrim(s, sep string) []string {
	raw := strings.Split(s, sep)
	parts := make([]string, 0, len(raw))
	for _, p := range raw {
		parts = append(parts, strings.TrimSpace(p))
	}
	return parts
}
