package shared

import "testing"

func TestValidatorCollectsAndSortsIssues(t *testing.T) {
	v := NewValidator()
	v.Required("name", "", "name is required")
	v.Positive("baseSalary", -100, "base salary must be positive")
	v.Enum("status", "archived", []string{"active", "inactive"}, "unknown status")

	if !v.HasIssues() {
		t.Fatal("expected issues")
	}
	issues := v.Issues()
	if len(issues) != 3 {
		t.Fatalf("expected 3 issues, got %d", len(issues))
	}
	if issues[0].Field != "baseSalary" {
		t.Fatalf("expected issues sorted by field, got %+v", issues)
	}
}

func TestValidatorAcceptsValidInput(t *testing.T) {
	v := NewValidator()
	v.Required("name", "Ravi", "name is required")
	v.Positive("baseSalary", 85000, "base salary must be positive")
	v.NonNegative("discount", 0, "discount cannot be negative")
	if _, ok := v.Date("dueDate", "2026-09-30"); !ok {
		t.Fatal("expected valid date")
	}
	if _, ok := v.Month("month", "2026-08"); !ok {
		t.Fatal("expected valid month")
	}
	if v.HasIssues() {
		t.Fatalf("unexpected issues: %+v", v.Issues())
	}
}

func TestValidatorRejectsMalformedDates(t *testing.T) {
	v := NewValidator()
	if _, ok := v.Date("dueDate", "30/09/2026"); ok {
		t.Fatal("expected invalid date")
	}
	if _, ok := v.Month("month", "Aug 2026"); ok {
		t.Fatal("expected invalid month")
	}
	if len(v.Issues()) != 2 {
		t.Fatalf("expected 2 issues, got %+v", v.Issues())
	}
}
