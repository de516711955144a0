// Package rendering projects a resume document onto one of three HTML layout
// strategies.
package rendering

import "fmt"

// TemplateError represents an error parsing or executing a layout template.
type TemplateError struct {
	Message string
	Cause   error
}

func (e *TemplateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("template error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("template error: %s", e.Message)
}

func (e *TemplateError) Unwrap() error {
	return e.Cause
}

// UnknownLayoutError is returned when a template name does not match any
// registered layout strategy.
type UnknownLayoutError struct {
	Name string
}

func (e *UnknownLayoutError) Error() string {
	return fmt.Sprintf("unknown layout: %q", e.Name)
}
