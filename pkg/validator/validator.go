// Package validator decodes and validates JSON request bodies with
// go-playground/validator. Field errors are keyed by the JSON field name so the
// dashboard can attach them to its form inputs.
package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"github.com/ghuser/thoron/pkg/httpx"
)

// ValidationErrorResponse is the 422 body written by ValidateRequest.
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

var instance = sync.OnceValue(func() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(fmt.Sprintf("register notblank: %v", err))
	}
	return v
})

func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		return fld.Name
	}
	return name
}

// Validate runs struct-level validation using go-playground/validator tags.
// Besides the built-in tags, "notblank" rejects whitespace-only strings.
func Validate(s any) error {
	return instance().Struct(s)
}

// FormatValidationErrors converts validator.ValidationErrors into a map of
// field name to human-readable message. Elements checked with "dive" are keyed
// by their indexed name, e.g. "orderIds[1]". Other errors yield an empty map.
func FormatValidationErrors(err error) map[string]string {
	fields := make(map[string]string)
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return fields
	}
	for _, e := range ve {
		fields[e.Field()] = message(e)
	}
	return fields
}

var messages = map[string]string{
	"required": "This field is required",
	"notblank": "Must not be blank",
	"email":    "Must be a valid email address",
	"gt":       "Must be greater than %s",
	"gte":      "Must be greater than or equal to %s",
	"lte":      "Must be less than or equal to %s",
	"datetime": "Must be a date formatted as %s",
}

func message(e validator.FieldError) string {
	collection := isCollection(e.Kind())
	switch tag := e.Tag(); {
	case tag == "min" && collection:
		return fmt.Sprintf("Must contain at least %s item(s)", e.Param())
	case tag == "max" && collection:
		return fmt.Sprintf("Must contain at most %s item(s)", e.Param())
	case tag == "min":
		return fmt.Sprintf("Minimum length is %s", e.Param())
	case tag == "max":
		return fmt.Sprintf("Maximum length is %s", e.Param())
	case tag == "oneof":
		return "Must be one of: " + strings.Join(oneofValues(e.Param()), ", ")
	default:
		if m, ok := messages[tag]; ok {
			if strings.Contains(m, "%s") {
				return fmt.Sprintf(m, e.Param())
			}
			return m
		}
		return fmt.Sprintf("Validation failed on '%s'", tag)
	}
}

// oneofValues splits a oneof parameter, honouring single-quoted values such
// as 'In Transit'.
func oneofValues(param string) []string {
	var (
		out    []string
		quoted bool
		cur    strings.Builder
	)
	flush := func() {
		if cur.Len() > 0 {
			out = append(out, cur.String())
			cur.Reset()
		}
	}
	for _, r := range param {
		switch {
		case r == '\'':
			quoted = !quoted
			if !quoted {
				flush()
			}
		case r == ' ' && !quoted:
			flush()
		default:
			cur.WriteRune(r)
		}
	}
	flush()
	return out
}

func isCollection(k reflect.Kind) bool {
	return k == reflect.Slice || k == reflect.Array || k == reflect.Map
}

// ValidateRequest decodes the JSON request body into T and validates it.
// Malformed JSON is a 400, an oversized body a 413 and a rule violation a 422
// carrying ValidationErrorResponse. An empty body decodes to the zero T and is
// validated as such. On failure the response is already written and ok is false.
func ValidateRequest[T any](w http.ResponseWriter, r *http.Request) (req *T, ok bool) {
	var v T
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(&v); err != nil && !errors.Is(err, io.EOF) {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			httpx.JSONError(w, http.StatusRequestEntityTooLarge, "Request body too large")
			return nil, false
		}
		httpx.JSONError(w, http.StatusBadRequest, "Invalid JSON")
		return nil, false
	}
	if dec.More() {
		httpx.JSONError(w, http.StatusBadRequest, "Invalid JSON")
		return nil, false
	}

	if err := Validate(&v); err != nil {
		httpx.JSON(w, http.StatusUnprocessableEntity, ValidationErrorResponse{
			Error:  "Validation failed",
			Fields: FormatValidationErrors(err),
		})
		return nil, false
	}
	return &v, true
}
