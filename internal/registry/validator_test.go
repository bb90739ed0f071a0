package registry

import (
	"testing"
)

func TestValidate_Default(t *testing.T) {
	result, err := Validate([]byte(DefaultDocument))
	if err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	if !result.Valid {
		t.Errorf("expected valid, got %d issues: %s", len(result.Issues), result.Summary())
	}
}

func TestValidate_IssueFields(t *testing.T) {
	result, err := Validate([]byte(`{"applications": [{"name": "n", "config": 7, "syntax": "(a) (b)"}]}`))
	if err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	if result.Valid {
		t.Fatal("expected invalid result")
	}
	if len(result.Issues) == 0 {
		t.Fatal("expected at least one issue")
	}

	found := false
	for _, issue := range result.Issues {
		if issue.Path == "/applications/0/config" && issue.Keyword == "type" {
			found = true
		}
		if issue.Message == "" {
			t.Errorf("issue at %s has empty message", issue.Path)
		}
	}
	if !found {
		t.Errorf("expected a type issue at /applications/0/config, got %+v", result.Issues)
	}
}

func TestValidate_MalformedJSON(t *testing.T) {
	_, err := Validate([]byte(`{"applications": `))
	if err == nil {
		t.Fatal("expected error for malformed JSON, got nil")
	}
}

func TestValidationResult_Summary(t *testing.T) {
	r := &ValidationResult{Issues: []ValidationIssue{
		{Path: "/applications/0", Message: "missing property 'name'"},
		{Message: "bad"},
	}}
	want := "/applications/0: missing property 'name'; bad"
	if got := r.Summary(); got != want {
		t.Errorf("Summary() = %q, want %q", got, want)
	}
}
