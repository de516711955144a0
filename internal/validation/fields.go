// Package validation provides field-scoped checks for user-entered contact
// fields. Violations are advisory: they flag a field without ever blocking a
// document mutation.
package validation

import (
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Violation flags a single malformed field.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidEmail reports whether the address is well-formed.
func ValidEmail(email string) bool {
	return validate.Var(email, "required,email") == nil
}

// ValidURL reports whether raw parses as an absolute URL. When domain is
// non-empty the hostname must also contain it, e.g. "linkedin.com".
func ValidURL(raw, domain string) bool {
	if validate.Var(raw, "required,url") != nil {
		return false
	}
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Host == "" {
		return false
	}
	if domain == "" {
		return true
	}
	return strings.Contains(parsed.Hostname(), domain)
}

// Details describes the subset of personal details that carry format rules.
type Details struct {
	Email    string
	Website  string
	LinkedIn string
	GitHub   string
}

// CheckDetails returns a violation per malformed field. Empty fields are
// skipped; only email is flagged when absent elsewhere in the completion flow,
// not here.
func CheckDetails(d Details) []Violation {
	var violations []Violation
	if d.Email != "" && !ValidEmail(d.Email) {
		violations = append(violations, Violation{Field: "email", Message: "invalid email address"})
	}
	if d.Website != "" && !ValidURL(d.Website, "") {
		violations = append(violations, Violation{Field: "website", Message: "invalid URL"})
	}
	if d.LinkedIn != "" && !ValidURL(d.LinkedIn, "linkedin.com") {
		violations = append(violations, Violation{Field: "linkedin", Message: "must be a linkedin.com URL"})
	}
	if d.GitHub != "" && !ValidURL(d.GitHub, "github.com") {
		violations = append(violations, Violation{Field: "github", Message: "must be a github.com URL"})
	}
	return violations
}
