package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"reflect"
	"sort"
	"strings"

	"hotel/shared/failure"

	val "github.com/go-playground/validator/v10"
	"github.com/gorilla/schema"
)

var (
	validate *val.Validate
	decoder  *schema.Decoder
)

func init() {
	validate = val.New(val.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(fieldName)

	decoder = schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)
}

// fieldName reports fields by their wire name so errors match what the client sent.
func fieldName(field reflect.StructField) string {
	for _, tag := range []string{"json", "schema", "yaml"} {
		name, _, _ := strings.Cut(field.Tag.Get(tag), ",")
		if name == "-" {
			return ""
		}

		if name != "" {
			return name
		}
	}

	return field.Name
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. If the body cannot be decoded or the struct is
// invalid according to the validation rules, a 422 failure with field details is returned.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	dec := json.NewDecoder(r)

	if err := dec.Decode(data); err != nil {
		return failure.UnprocessableEntity(decodeError(err)) //nolint:wrapcheck
	}

	var trailing json.RawMessage
	if err := dec.Decode(&trailing); !errors.Is(err, io.EOF) {
		return failure.UnprocessableEntity(failure.FieldError{ //nolint:wrapcheck
			Loc:  []string{failure.LocationBody},
			Msg:  "request body must contain a single JSON value",
			Type: failure.TypeParsing,
		})
	}

	return validateStruct(data, failure.LocationBody)
}

// ValidateQuery decodes URL query values into the given struct and validates it.
// Keys sent without a value count as missing.
func ValidateQuery[T any](values url.Values, data *T) error {
	if err := decoder.Decode(data, nonEmpty(values)); err != nil {
		return failure.UnprocessableEntity(queryDecodeErrors(err)...) //nolint:wrapcheck
	}

	return validateStruct(data, failure.LocationQuery)
}

// ValidateQueryStruct validates an already decoded query struct.
func ValidateQueryStruct[T any](data *T) error {
	return validateStruct(data, failure.LocationQuery)
}

func ValidateStruct[T any](data *T) error {
	return validateStruct(data, failure.LocationBody)
}

func nonEmpty(values url.Values) url.Values {
	filtered := make(url.Values, len(values))

	for key, vals := range values {
		for _, val := range vals {
			if val != "" {
				filtered[key] = append(filtered[key], val)
			}
		}
	}

	return filtered
}

func validateStruct[T any](data *T, location string) error {
	if err := validate.Struct(data); err != nil {
		return failure.UnprocessableEntity(fieldErrors(err, location)...) //nolint:wrapcheck
	}

	return nil
}

func decodeError(err error) failure.FieldError {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return failure.FieldError{
			Loc:  []string{failure.LocationBody, typeErr.Field},
			Msg:  fmt.Sprintf("%s must be a valid %s", typeErr.Field, typeErr.Type),
			Type: failure.TypeParsing,
		}
	}

	return failure.FieldError{
		Loc:  []string{failure.LocationBody},
		Msg:  fmt.Sprintf("failed to decode request body: %v", err),
		Type: failure.TypeParsing,
	}
}

func queryDecodeErrors(err error) []failure.FieldError {
	var multi schema.MultiError
	if !errors.As(err, &multi) {
		return []failure.FieldError{{Loc: []string{failure.LocationQuery}, Msg: err.Error(), Type: failure.TypeParsing}}
	}

	keys := make([]string, 0, len(multi))
	for key := range multi {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	details := make([]failure.FieldError, 0, len(keys))

	for _, key := range keys {
		msg := multi[key].Error()

		var convErr schema.ConversionError
		if errors.As(multi[key], &convErr) && convErr.Type != nil {
			msg = fmt.Sprintf("%s must be a valid %s", key, strings.TrimPrefix(convErr.Type.String(), "*"))
		}

		details = append(details, failure.FieldError{
			Loc:  []string{failure.LocationQuery, key},
			Msg:  msg,
			Type: failure.TypeParsing,
		})
	}

	return details
}
