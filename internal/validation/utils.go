// Package validation binds request data and turns validation failures into
// 400 responses with per-field errors.
//
// Required fields are declared with go-playground/validator struct tags.
// Fields decoded into optional.Value carry no tags; their rules are checked
// by hand and reported as CustomValidationErrors.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/deppfellow/devmatch/internal/errs"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// DateLayout is the wire format of DATE columns.
const DateLayout = time.DateOnly

var validate = validator.New(validator.WithRequiredStructEnabled())

func init() {
	// report fields by their JSON name
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		for _, tag := range []string{"json", "param"} {
			name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return field.Name
	})
}

// Validatable is implemented by request payloads.
type Validatable interface {
	Validate() error
}

// CustomValidationError is a failure that struct tags cannot express.
type CustomValidationError struct {
	Field   string
	Message string
}

// CustomValidationErrors satisfies error.
type CustomValidationErrors []CustomValidationError

func (c CustomValidationErrors) Error() string {
	return "Validation failed"
}

// Add records a failure for field.
func (c *CustomValidationErrors) Add(field, message string) {
	*c = append(*c, CustomValidationError{Field: field, Message: message})
}

// Err returns c as an error, or nil when nothing was recorded.
func (c CustomValidationErrors) Err() error {
	if len(c) == 0 {
		return nil
	}
	return c
}

// Struct runs the tag-based rules on v.
func Struct(v any) error {
	return validate.Struct(v)
}

// BindAndValidate binds path parameters, query parameters and the JSON body
// into payload and validates it. payload must be a pointer.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := c.Bind(payload); err != nil {
		return bindError(err)
	}

	if err := payload.Validate(); err != nil {
		msg, fieldErrors := extractValidationError(err)
		return errs.NewBadRequestError(msg, true, nil, fieldErrors)
	}

	return nil
}

// bindError turns echo's binding failures into a readable 400.
func bindError(err error) *errs.HTTPError {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		var fieldErrors []errs.FieldError
		if typeErr.Field != "" {
			fieldErrors = append(fieldErrors, errs.FieldError{
				Field: typeErr.Field,
				Error: fmt.Sprintf("must be of type %s", typeErr.Type),
			})
		}
		message := fmt.Sprintf("Invalid request body: expected %s, got %s", typeErr.Type, typeErr.Value)
		return errs.NewBadRequestError(message, true, nil, fieldErrors)
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) || errors.Is(err, io.ErrUnexpectedEOF) {
		return errs.NewBadRequestError("Malformed JSON request body", true, nil, nil)
	}

	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		return errs.NewBadRequestError(
			fmt.Sprintf("Invalid parameter %q: must be a positive integer", numErr.Num), true, nil, nil)
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return errs.NewBadRequestError(fmt.Sprint(httpErr.Message), false, nil, nil)
	}

	return errs.NewBadRequestError("Invalid request", false, nil, nil)
}

func extractValidationError(err error) (string, []errs.FieldError) {
	var fieldErrors []errs.FieldError

	var custom CustomValidationErrors
	if errors.As(err, &custom) {
		for _, e := range custom {
			fieldErrors = append(fieldErrors, errs.FieldError{
				Field: e.Field,
				Error: e.Message,
			})
		}
		return "Validation failed", fieldErrors
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err.Error(), nil
	}

	for _, e := range validationErrors {
		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: e.Field(),
			Error: tagMessage(e),
		})
	}

	return "Validation failed", fieldErrors
}

func tagMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"

	case "min":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", e.Param())
		}
		return fmt.Sprintf("must be at least %s", e.Param())

	case "max":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("must not exceed %s characters", e.Param())
		}
		return fmt.Sprintf("must not exceed %s", e.Param())

	case "gte":
		return fmt.Sprintf("must be at least %s", e.Param())

	case "lte":
		return fmt.Sprintf("must not exceed %s", e.Param())

	case "oneof":
		return fmt.Sprintf("must be one of: %s", e.Param())

	case "email":
		return "must be a valid email address"

	case "url":
		return "must be a valid URL"

	case "datetime":
		return fmt.Sprintf("must be a date in the format %s", e.Param())

	default:
		if e.Param() != "" {
			return fmt.Sprintf("%s: %s:%s", e.Field(), e.Tag(), e.Param())
		}
		return fmt.Sprintf("%s: %s", e.Field(), e.Tag())
	}
}

