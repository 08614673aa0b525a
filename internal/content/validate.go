package content

import (
	"fmt"
)

// FeatureCount is the number of "Why Choose" cards the page tracks.
const FeatureCount = 3

// FieldError describes a single invalid field in the seed content.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError collects every problem found in a catalog.
type ValidationError struct {
	Errors []error
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return "invalid content: " + e.Errors[0].Error()
	}
	return fmt.Sprintf("invalid content: %d errors (first: %v)", len(e.Errors), e.Errors[0])
}

// Add records a field error.
func (e *ValidationError) Add(field, format string, args ...any) {
	e.Errors = append(e.Errors, &FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
}

// HasErrors returns true if any field failed validation.
func (e *ValidationError) HasErrors() bool {
	return len(e.Errors) > 0
}

// Unwrap exposes the individual field errors to errors.As.
func (e *ValidationError) Unwrap() []error {
	return e.Errors
}

// Validate checks the invariants the page relies on: a fixed number of
// feature cards, unique non-empty path titles and known levels.
func Validate(c *Catalog) error {
	verr := &ValidationError{}

	if c.Brand == "" {
		verr.Add("brand", "required")
	}
	if len(c.Features) != FeatureCount {
		verr.Add("features", "want %d cards, got %d", FeatureCount, len(c.Features))
	}
	for i, f := range c.Features {
		if f.Title == "" {
			verr.Add(fmt.Sprintf("features[%d].title", i), "required")
		}
	}

	if len(c.Paths) == 0 {
		verr.Add("paths", "at least one learning path is required")
	}
	seen := make(map[string]bool, len(c.Paths))
	for i, p := range c.Paths {
		field := fmt.Sprintf("paths[%d]", i)
		if p.Title == "" {
			verr.Add(field+".title", "required")
		} else if seen[p.Title] {
			verr.Add(field+".title", "duplicate title %q", p.Title)
		}
		seen[p.Title] = true
		if !p.Level.IsValid() {
			verr.Add(field+".level", "unknown level %q", p.Level)
		}
	}

	if verr.HasErrors() {
		return verr
	}
	return nil
}
