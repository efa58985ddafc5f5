package classifier

import (
	"strings"

	"github.com/civiclens/report-service/internal/domain"
)

// Rule pairs a keyword set with the classification it yields. Rules are
// evaluated in catalog order and the first match wins; there is no ranking
// by number of matched keywords.
type Rule struct {
	Keywords []string
	Result   domain.ClassificationResult
}

// Matches reports whether the lower-cased description contains any of the
// rule's keywords.
func (r Rule) Matches(desc string) bool {
	for _, kw := range r.Keywords {
		if strings.Contains(desc, kw) {
			return true
		}
	}
	return false
}

var fallback = domain.ClassificationResult{
	IssueType:  "General Civic Issue",
	Department: "Municipal Corporation",
	Urgency:    domain.UrgencyLow,
	Reason:     "Issue categorized as general civic concern requiring review.",
}

// Classify maps a free-text complaint description to an issue type,
// responsible department and urgency. It is deterministic and total: any
// input, including the empty string, yields a result.
func Classify(description string) domain.ClassificationResult {
	desc := strings.ToLower(description)
	for _, rule := range catalog {
		if rule.Matches(desc) {
			return rule.Result
		}
	}
	return fallback
}

// Catalog exposes the ordered rule table for inspection and tests.
func Catalog() []Rule {
	return catalog
}
