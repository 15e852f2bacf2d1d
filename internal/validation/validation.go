// Package validation evaluates declarative request-body schemas.
//
// A Schema is an ordered list of fields, each with an ordered list of
// constraints. Evaluation accumulates every failing constraint into one
// ordered error list: field order follows schema declaration, constraint
// order follows constraint declaration. A missing or non-string field yields
// exactly one invalid_type error and skips that field's constraints, so an
// absent value never cascades into nonsense format errors.
package validation

import (
	"strings"
)

// Error is a single failed constraint.
// Path identifies the field; the remaining fields depend on Code.
type Error struct {
	Code       string   `json:"code"`
	Message    string   `json:"message"`
	Path       []string `json:"path"`
	Expected   string   `json:"expected,omitempty"`
	Received   string   `json:"received,omitempty"`
	Validation string   `json:"validation,omitempty"`
	Minimum    int      `json:"minimum,omitempty"`
	Type       string   `json:"type,omitempty"`
}

// Errors is the ordered list of failures from one schema evaluation.
// It implements error so an entire failed validation travels as a unit.
type Errors []Error

func (e Errors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(e))
	for _, err := range e {
		parts = append(parts, strings.Join(err.Path, ".")+": "+err.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Constraint checks a string value that is already known to be present.
type Constraint struct {
	Check func(value string) bool
	Err   Error // template; Path is filled in during evaluation
}

// Field is a named, ordered list of constraints.
type Field struct {
	Name        string
	Constraints []Constraint
}

// Schema is an ordered list of fields to evaluate against a request body.
type Schema struct {
	Fields []Field
}

// Validate evaluates the schema against a decoded JSON body.
// Returns nil on success or the accumulated Errors. The body is never
// mutated or normalized.
func (s Schema) Validate(body map[string]any) error {
	var errs Errors

	for _, f := range s.Fields {
		path := []string{"body", f.Name}

		raw, present := body[f.Name]
		if !present {
			errs = append(errs, Error{
				Code:     "invalid_type",
				Expected: "string",
				Received: "undefined",
				Path:     path,
				Message:  "Required",
			})
			continue
		}

		value, isString := raw.(string)
		if !isString {
			received := jsonTypeName(raw)
			errs = append(errs, Error{
				Code:     "invalid_type",
				Expected: "string",
				Received: received,
				Path:     path,
				Message:  "Expected string, received " + received,
			})
			continue
		}

		for _, c := range f.Constraints {
			if !c.Check(value) {
				e := c.Err
				e.Path = path
				errs = append(errs, e)
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// NonObjectBody reports a request body whose top-level JSON value is not an
// object. received is the decoder's name for the value's type.
func NonObjectBody(received string) Errors {
	if received == "bool" {
		received = "boolean"
	}
	return Errors{{
		Code:     "invalid_type",
		Expected: "object",
		Received: received,
		Path:     []string{"body"},
		Message:  "Expected object, received " + received,
	}}
}

// jsonTypeName names a decoded JSON value the way clients see it.
func jsonTypeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case float64:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return "unknown"
	}
}
