package security

import (
	"encoding/json"
	"fmt"
)

// UpdateValidator guards partial updates against a fixed allow-list of
// field names. Any payload key outside the list rejects the whole update.
type UpdateValidator struct {
	allowed map[string]struct{}
}

// NewUpdateValidator creates a validator for the given updatable fields
func NewUpdateValidator(fields ...string) *UpdateValidator {
	allowed := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		allowed[f] = struct{}{}
	}
	return &UpdateValidator{allowed: allowed}
}

// UpdateError reports the first field that is not updatable
type UpdateError struct {
	Field string
}

func (e *UpdateError) Error() string {
	return fmt.Sprintf("field %q is not updatable", e.Field)
}

// Validate checks every key of the payload against the allow-list.
// An empty payload is a valid (no-op) update.
func (v *UpdateValidator) Validate(payload map[string]json.RawMessage) error {
	for key := range payload {
		if _, ok := v.allowed[key]; !ok {
			return &UpdateError{Field: key}
		}
	}
	return nil
}
