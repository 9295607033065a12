package boolean

import (
	"fmt"
	"strings"
)

// Explain renders a human-readable description of which operator the query
// uses and what condition the returned documents satisfy.
func Explain(query string, results []string) string {
	var lines []string

	q := Classify(query)
	switch q.Kind {
	case KindAndNot:
		lines = append(lines, fmt.Sprintf(
			"Query requires documents with %q but NOT %q.", q.Parts[0], q.Parts[1]))
	case KindAnd:
		lines = append(lines, fmt.Sprintf(
			"Query requires ALL terms: %s.", strings.Join(quoteAll(q.Parts), ", ")))
		lines = append(lines, "Documents must contain every listed term.")
	case KindOr:
		lines = append(lines, fmt.Sprintf(
			"Query requires ANY of the terms: %s.", strings.Join(quoteAll(q.Parts), ", ")))
		lines = append(lines, "Documents must contain at least one listed term.")
	case KindNot:
		lines = append(lines, fmt.Sprintf(
			"Query requires documents with %q but NOT %q.", q.Parts[0], q.Parts[1]))
	case KindMalformed:
		lines = append(lines, "Query is malformed (more than one NOT separator) and matches nothing.")
	default:
		if len(q.Parts) == 0 {
			lines = append(lines, "Query is empty and matches nothing.")
		} else {
			lines = append(lines, fmt.Sprintf(
				"Query matches documents containing the term %q.", q.Parts[0]))
		}
	}

	if len(results) == 0 {
		lines = append(lines, "No documents match the query.")
	} else {
		lines = append(lines, fmt.Sprintf("%d document(s) satisfy this condition: %s.",
			len(results), strings.Join(results, ", ")))
	}
	return strings.Join(lines, "\n")
}

func quoteAll(parts []string) []string {
	quoted := make([]string, len(parts))
	for i, p := range parts {
		quoted[i] = fmt.Sprintf("%q", p)
	}
	return quoted
}
