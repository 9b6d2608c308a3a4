package validator

import (
	"errors"
	"strings"

	"hotel/shared/failure"

	val "github.com/go-playground/validator/v10"
)

var (
	messages = map[string]string{
		"required": "{field} is required",
		"gt":       "{field} must be greater than {param}",
		"gte":      "{field} must be greater than or equal to {param}",
		"lte":      "{field} must be less than or equal to {param}",
		"max":      "{field} must be less than or equal to {param}",
		"min":      "{field} must be greater than or equal to {param}",
	}

	types = map[string]string{
		"required": failure.TypeMissing,
		"gt":       failure.TypeGreaterThan,
		"gte":      failure.TypeGreaterThanEqual,
		"lte":      failure.TypeLessThanEqual,
	}
)

func fieldErrors(err error, location string) []failure.FieldError {
	var valErrors val.ValidationErrors

	if !errors.As(err, &valErrors) {
		return []failure.FieldError{{Loc: []string{location}, Msg: err.Error(), Type: failure.TypeInvalid}}
	}

	details := make([]failure.FieldError, 0, len(valErrors))

	for _, valErr := range valErrors {
		field := valErr.Field()

		msg := messages[valErr.Tag()]
		if msg == "" {
			msg = valErr.Error()
		} else {
			msg = strings.ReplaceAll(msg, "{field}", field)
			msg = strings.ReplaceAll(msg, "{param}", valErr.Param())
		}

		typ := types[valErr.Tag()]
		if typ == "" {
			typ = failure.TypeInvalid
		}

		details = append(details, failure.FieldError{
			Loc:  []string{location, field},
			Msg:  msg,
			Type: typ,
		})
	}

	return details
}
