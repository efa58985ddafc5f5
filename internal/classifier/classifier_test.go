package classifier

import (
	"testing"

	"github.com/civiclens/report-service/internal/domain"
)

func TestClassifyKnownIssues(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name        string
		description string
		issueType   string
		department  string
		urgency     domain.Urgency
	}{
		{"pothole", "Large pothole on 5th and Main", "Pothole", "Municipal Roads", domain.UrgencyHigh},
		{"garbage", "Garbage piling up near the market", "Garbage Accumulation", "Sanitation Department", domain.UrgencyMedium},
		{"street light", "The street light outside my house is dead", "Street Light Not Working", "Municipal Lighting", domain.UrgencyMedium},
		{"sewage", "Sewage leak flowing onto the road", "Sewage Overflow", "Sewage & Drainage", domain.UrgencyHigh},
		{"stray dog", "Aggressive stray dog pack near the school gate", "Stray Animal Issue", "Animal Welfare", domain.UrgencyMedium},
		{"uppercase", "POTHOLE NEAR THE BUS DEPOT", "Pothole", "Municipal Roads", domain.UrgencyHigh},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := Classify(tc.description)
			if got.IssueType != tc.issueType {
				t.Errorf("issue type: got %q, want %q", got.IssueType, tc.issueType)
			}
			if got.Department != tc.department {
				t.Errorf("department: got %q, want %q", got.Department, tc.department)
			}
			if got.Urgency != tc.urgency {
				t.Errorf("urgency: got %q, want %q", got.Urgency, tc.urgency)
			}
			if got.Reason == "" {
				t.Error("reason must not be empty")
			}
		})
	}
}

func TestClassifyFirstMatchWins(t *testing.T) {
	t.Parallel()

	// "pothole" (roads section) appears after "garbage" in the text, but the
	// catalog is scanned in rule order, not text order, so roads win.
	got := Classify("garbage dumped inside a huge pothole")
	if got.IssueType != "Pothole" {
		t.Errorf("got %q, want Pothole (roads outrank sanitation)", got.IssueType)
	}

	// "drainage" outranks "waterlogging" because its rule is listed earlier.
	got = Classify("waterlogging caused by blocked drainage")
	if got.IssueType != "Drainage Blockage" {
		t.Errorf("got %q, want Drainage Blockage", got.IssueType)
	}
}

func TestClassifyFallback(t *testing.T) {
	t.Parallel()

	for _, desc := range []string{"", "xyz-unmatched-text", "the weather is nice"} {
		got := Classify(desc)
		if got.IssueType != "General Civic Issue" {
			t.Errorf("Classify(%q): got %q, want General Civic Issue", desc, got.IssueType)
		}
		if got.Department != "Municipal Corporation" {
			t.Errorf("Classify(%q): department %q", desc, got.Department)
		}
		if got.Urgency != domain.UrgencyLow {
			t.Errorf("Classify(%q): urgency %q, want Low", desc, got.Urgency)
		}
	}
}

func TestCatalogShape(t *testing.T) {
	t.Parallel()

	rules := Catalog()
	if len(rules) == 0 {
		t.Fatal("catalog is empty")
	}
	if rules[0].Result.IssueType != "Pothole" {
		t.Errorf("first rule: got %q, want Pothole (roads lead the catalog)", rules[0].Result.IssueType)
	}
	for i, rule := range rules {
		if len(rule.Keywords) == 0 {
			t.Errorf("rule %d has no keywords", i)
		}
		if rule.Result.IssueType == "" || rule.Result.Department == "" || rule.Result.Reason == "" {
			t.Errorf("rule %d has incomplete result", i)
		}
		switch rule.Result.Urgency {
		case domain.UrgencyHigh, domain.UrgencyMedium, domain.UrgencyLow:
		default:
			t.Errorf("rule %d has unexpected urgency %q", i, rule.Result.Urgency)
		}
	}
}
