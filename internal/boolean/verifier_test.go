package boolean

import (
	"strings"
	"testing"
)

func TestVerifyConfirmsEvaluatorOutput(t *testing.T) {
	eval := scenarioEvaluator(t)
	verifier := NewVerifier(eval)

	queries := []string{
		"dog AND cat",
		"dog OR cat",
		"dog AND NOT cat",
		"cat NOT dog",
		"dog",
		"dog AND cat AND NOT bird",
	}
	for _, query := range queries {
		t.Run(query, func(t *testing.T) {
			results := eval.Evaluate(query, 0)
			report := verifier.Verify(query, results)

			if !report.LogicCorrect {
				t.Errorf("verifier rejected evaluator output: %v", report.Issues)
			}
			if report.TotalResults != len(results) {
				t.Errorf("TotalResults = %d, want %d", report.TotalResults, len(results))
			}
			if len(report.DocumentAnalysis) != len(results) {
				t.Errorf("DocumentAnalysis has %d entries, want %d",
					len(report.DocumentAnalysis), len(results))
			}
		})
	}
}

func TestVerifyFlagsMissingRequiredTerm(t *testing.T) {
	eval := scenarioEvaluator(t)
	verifier := NewVerifier(eval)

	// d2 has no "dog", so it cannot satisfy the conjunction.
	report := verifier.Verify("dog AND cat", []string{"d2", "d3"})
	if report.LogicCorrect {
		t.Fatal("expected doctored result list to fail verification")
	}
	if len(report.Issues) != 1 {
		t.Fatalf("Issues = %v, want exactly one", report.Issues)
	}
	if !strings.Contains(report.Issues[0], "d2") || !strings.Contains(report.Issues[0], "missing required term") {
		t.Errorf("unexpected issue text: %s", report.Issues[0])
	}

	var d2 *DocAnalysis
	for i := range report.DocumentAnalysis {
		if report.DocumentAnalysis[i].DocID == "d2" {
			d2 = &report.DocumentAnalysis[i]
		}
	}
	if d2 == nil {
		t.Fatal("no analysis entry for d2")
	}
	if len(d2.MissingTerms) != 1 || d2.MissingTerms[0] != "dog" {
		t.Errorf("MissingTerms = %v, want [dog]", d2.MissingTerms)
	}
	if len(d2.FoundTerms) != 1 || d2.FoundTerms[0] != "cat" {
		t.Errorf("FoundTerms = %v, want [cat]", d2.FoundTerms)
	}
}

func TestVerifyFlagsViolatedExclusion(t *testing.T) {
	eval := scenarioEvaluator(t)
	verifier := NewVerifier(eval)

	// d3 contains "cat", which the query excludes.
	report := verifier.Verify("dog AND NOT cat", []string{"d1", "d3"})
	if report.LogicCorrect {
		t.Fatal("expected violated exclusion to fail verification")
	}
	found := false
	for _, issue := range report.Issues {
		if strings.Contains(issue, "d3") && strings.Contains(issue, "excluded term") {
			found = true
		}
	}
	if !found {
		t.Errorf("no excluded-term issue for d3 in %v", report.Issues)
	}
}

func TestVerifyFlagsOrMiss(t *testing.T) {
	eval := scenarioEvaluator(t)
	verifier := NewVerifier(eval)

	// d1 contains neither "cat" nor "lazy" tokens... it has "quick", so use
	// groups it truly lacks.
	report := verifier.Verify("cat OR lazy", []string{"d1", "d2"})
	if report.LogicCorrect {
		t.Fatal("expected OR miss to fail verification")
	}
	found := false
	for _, issue := range report.Issues {
		if strings.Contains(issue, "d1") && strings.Contains(issue, "does not contain any") {
			found = true
		}
	}
	if !found {
		t.Errorf("no any-of issue for d1 in %v", report.Issues)
	}
}

func TestVerifyMalformedQueryWithResults(t *testing.T) {
	eval := scenarioEvaluator(t)
	verifier := NewVerifier(eval)

	report := verifier.Verify("dog NOT cat NOT bird", []string{"d1"})
	if report.LogicCorrect {
		t.Fatal("malformed query should never legitimately return documents")
	}
}

func TestVerifyEmptyResultsAlwaysCorrect(t *testing.T) {
	eval := scenarioEvaluator(t)
	verifier := NewVerifier(eval)

	for _, query := range []string{"dog AND cat", "bird", "dog NOT cat NOT bird", ""} {
		report := verifier.Verify(query, nil)
		if !report.LogicCorrect {
			t.Errorf("Verify(%q, nil) flagged issues: %v", query, report.Issues)
		}
		if report.TotalResults != 0 {
			t.Errorf("TotalResults = %d, want 0", report.TotalResults)
		}
	}
}

func TestVerifyConjunctiveLeftOfAndNot(t *testing.T) {
	eval := newTestEvaluator(t, map[string]string{
		"d1": "dog cat bird",
		"d2": "dog cat",
	})
	verifier := NewVerifier(eval)

	report := verifier.Verify("dog AND cat AND NOT bird", []string{"d2"})
	if !report.LogicCorrect {
		t.Fatalf("expected d2 to verify: %v", report.Issues)
	}
	analysis := report.DocumentAnalysis[0]
	if len(analysis.RequiredTerms) != 2 {
		t.Errorf("RequiredTerms = %v, want both conjuncts", analysis.RequiredTerms)
	}
	if len(analysis.ExcludedTerms) != 1 || analysis.ExcludedTerms[0] != "bird" {
		t.Errorf("ExcludedTerms = %v, want [bird]", analysis.ExcludedTerms)
	}
}
