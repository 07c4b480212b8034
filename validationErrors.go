package fieldvalidation

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ValidationErrors is a map of field names to their first failure.
// It is an alias for [validation.Errors] from ozzo-validation.
type ValidationErrors = validation.Errors

// Messages flattens err into field name → message. A ValidationErrors map
// yields one entry per field (nested maps use dotted keys); any other error is
// reported under the empty key. A nil error yields nil.
func Messages(err error) map[string]string {
	if err == nil {
		return nil
	}
	out := map[string]string{}
	var errs validation.Errors
	if !errors.As(err, &errs) {
		out[""] = err.Error()
		return out
	}
	flatten("", errs, out)
	return out
}

func flatten(prefix string, errs validation.Errors, out map[string]string) {
	for k, err := range errs {
		if err == nil {
			continue
		}
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		var nested validation.Errors
		if errors.As(err, &nested) {
			flatten(key, nested, out)
			continue
		}
		out[key] = err.Error()
	}
}

// ErrorCode returns the code of a rule failure, or "" when err is not one.
func ErrorCode(err error) string {
	var ve validation.Error
	if errors.As(err, &ve) {
		return ve.Code()
	}
	return ""
}
