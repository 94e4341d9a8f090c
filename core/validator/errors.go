package validator

import "strings"

// ValidationError describes a single failed rule on a single field.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidationErrors aggregates every failed rule found in one pass, so a
// form can surface all problems at once instead of one per submit.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

// IsEmpty reports whether any validation error was recorded.
func (e ValidationErrors) IsEmpty() bool {
	return len(e) == 0
}

// Add appends a validation error.
func (e *ValidationErrors) Add(err ValidationError) {
	*e = append(*e, err)
}

// Rule pairs a check with the error reported when the check fails.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// pass is the no-op rule used for misconfigured or inapplicable tags.
func pass() Rule {
	return Rule{Check: func() bool { return true }}
}
