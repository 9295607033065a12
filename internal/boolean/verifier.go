package boolean

import "fmt"

// Report is the diagnostic produced by Verify for one query and its result
// list.
type Report struct {
	Query            string        `json:"query"`
	TotalResults     int           `json:"total_results"`
	LogicCorrect     bool          `json:"logic_correct"`
	Issues           []string      `json:"issues"`
	DocumentAnalysis []DocAnalysis `json:"document_analysis"`
}

// DocAnalysis records, for a single returned document, which term groups
// the query requires, which of them matched, and which exclusions were
// violated.
type DocAnalysis struct {
	DocID         string   `json:"doc_id"`
	RequiredTerms []string `json:"required_terms,omitempty"`
	AnyOfTerms    []string `json:"any_of_terms,omitempty"`
	FoundTerms    []string `json:"found_terms"`
	MissingTerms  []string `json:"missing_terms,omitempty"`
	ExcludedTerms []string `json:"excluded_terms,omitempty"`
	ViolatedTerms []string `json:"violated_terms,omitempty"`
}

// Verifier cross-checks evaluator output by re-deriving, per returned
// document, whether it satisfies the query. It shares the classifier and
// term-group resolution with the evaluator, so structure disagreements are
// impossible; what it catches is membership divergence.
type Verifier struct {
	eval *Evaluator
}

// NewVerifier creates a Verifier backed by the same index and analyzer as
// the given Evaluator.
func NewVerifier(eval *Evaluator) *Verifier {
	return &Verifier{eval: eval}
}

// Verify re-checks every document in results against the classified query
// and reports any document that does not satisfy the reconstructed logic.
func (v *Verifier) Verify(query string, results []string) *Report {
	report := &Report{
		Query:            query,
		TotalResults:     len(results),
		LogicCorrect:     true,
		Issues:           []string{},
		DocumentAnalysis: []DocAnalysis{},
	}

	q := Classify(query)
	for _, docID := range results {
		switch q.Kind {
		case KindAnd:
			v.checkRequired(report, docID, q.Parts, nil)
		case KindOr:
			v.checkAnyOf(report, docID, q.Parts)
		case KindNot:
			v.checkRequired(report, docID, q.Parts[:1], q.Parts[1:])
		case KindAndNot:
			v.checkRequired(report, docID, AndParts(q.Parts[0]), q.Parts[1:])
		case KindSingle:
			if len(q.Parts) > 0 {
				v.checkRequired(report, docID, q.Parts, nil)
			}
		case KindMalformed:
			report.LogicCorrect = false
			report.Issues = append(report.Issues,
				fmt.Sprintf("document %s returned for malformed query %q", docID, query))
		}
	}
	return report
}

// checkRequired verifies that docID matches every required term group and
// none of the excluded ones.
func (v *Verifier) checkRequired(report *Report, docID string, required, excluded []string) {
	analysis := DocAnalysis{
		DocID:         docID,
		RequiredTerms: required,
		ExcludedTerms: excluded,
		FoundTerms:    []string{},
	}

	for _, group := range required {
		if v.eval.termsFor(group).Contains(docID) {
			analysis.FoundTerms = append(analysis.FoundTerms, group)
		} else {
			analysis.MissingTerms = append(analysis.MissingTerms, group)
			report.LogicCorrect = false
			report.Issues = append(report.Issues,
				fmt.Sprintf("document %s missing required term: %s", docID, group))
		}
	}
	for _, group := range excluded {
		if v.eval.termsFor(group).Contains(docID) {
			analysis.ViolatedTerms = append(analysis.ViolatedTerms, group)
			report.LogicCorrect = false
			report.Issues = append(report.Issues,
				fmt.Sprintf("document %s contains excluded term: %s", docID, group))
		}
	}
	report.DocumentAnalysis = append(report.DocumentAnalysis, analysis)
}

// checkAnyOf verifies that docID matches at least one of the OR'd groups.
func (v *Verifier) checkAnyOf(report *Report, docID string, groups []string) {
	analysis := DocAnalysis{
		DocID:      docID,
		AnyOfTerms: groups,
		FoundTerms: []string{},
	}

	for _, group := range groups {
		if v.eval.termsFor(group).Contains(docID) {
			analysis.FoundTerms = append(analysis.FoundTerms, group)
		}
	}
	if len(analysis.FoundTerms) == 0 {
		report.LogicCorrect = false
		report.Issues = append(report.Issues,
			fmt.Sprintf("document %s does not contain any of the terms: %v", docID, groups))
	}
	report.DocumentAnalysis = append(report.DocumentAnalysis, analysis)
}
