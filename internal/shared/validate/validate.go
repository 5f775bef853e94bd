package validate

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// In builds a membership rule from a string enum. ozzo wants the
// allowed values as interface{}, which every domain would otherwise
// repeat.
func In(allowed []string) validation.InRule {
	values := make([]interface{}, len(allowed))
	for i, v := range allowed {
		values[i] = v
	}
	return validation.In(values...)
}

// Details flattens an ozzo validation error into the per-field map
// carried in the error body. Every violated field is reported, not
// just the first.
func Details(err error) map[string]string {
	errs, ok := err.(validation.Errors)
	if !ok || len(errs) == 0 {
		return nil
	}

	details := make(map[string]string, len(errs))
	for field, fieldErr := range errs {
		details[field] = fieldErr.Error()
	}
	return details
}
