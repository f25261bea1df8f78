package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

const maxBodyBytes = 1 << 20

var validate = validator.New()

var validationMessages = map[string]string{
	"required": "The field '%s' is required.",
	"max":      "The field '%s' must be no longer than %s characters.",
}

// ValidationErrorResponse is returned with a 400 when a request body fails validation.
type ValidationErrorResponse struct {
	Errors map[string]string `json:"errors"`
}

// decodeBody decodes a JSON request body into dst and validates its struct tags.
// Field errors, if any, are returned keyed by JSON field name.
func decodeBody(r *http.Request, dst any) (map[string]string, error) {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		return nil, fmt.Errorf("decoding request body: %w", err)
	}

	err := validate.Struct(dst)
	if err == nil {
		return nil, nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return nil, fmt.Errorf("validating request body: %w", err)
	}

	structType := reflect.TypeOf(dst).Elem()
	fieldErrors := make(map[string]string, len(validationErrs))
	for _, e := range validationErrs {
		name := e.StructField()
		if field, ok := structType.FieldByName(e.StructField()); ok {
			if tag := field.Tag.Get("json"); tag != "" {
				name = strings.Split(tag, ",")[0]
			}
		}

		msg, ok := validationMessages[e.Tag()]
		switch {
		case !ok:
			fieldErrors[name] = fmt.Sprintf("Field '%s' is invalid: %s", name, e.Tag())
		case strings.Count(msg, "%s") == 2:
			fieldErrors[name] = fmt.Sprintf(msg, name, e.Param())
		default:
			fieldErrors[name] = fmt.Sprintf(msg, name)
		}
	}
	return fieldErrors, nil
}
