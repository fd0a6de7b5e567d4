package model

import (
	"fmt"
	"strings"
)

// Violation is one failed validation rule, addressed by dotted field path.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError lists every violated field of an input profile, not just
// the first one found.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	if len(e.Violations) == 0 {
		return "profile validation failed"
	}
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, fmt.Sprintf("%s: %s", v.Field, v.Message))
	}
	return "profile validation failed: " + strings.Join(parts, "; ")
}
