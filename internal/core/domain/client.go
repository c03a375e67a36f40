package domain

import (
	"sort"
	"strings"
)

// ClientInfo is the customer contact snapshot attached to a quote session.
// Validity is derived, never stored: the validator recomputes it from the
// current field values on every evaluation.
type ClientInfo struct {
	Name       string
	Phone      string
	Email      string
	NationalID string
}

// ValidationError carries the per-field error map produced by the client
// validator. Fields maps a field name (name, phone, email, ci) to a
// human-readable message in the site's language.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "invalid client data"
	}
	fields := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return "invalid client data: " + strings.Join(fields, ", ")
}
