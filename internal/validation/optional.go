package validation

import (
	"errors"

	"github.com/deppfellow/devmatch/internal/lib/optional"
	"github.com/go-playground/validator/v10"
)

// Nullability of an optional field.
const (
	Nullable    = true
	NotNullable = false
)

// CheckOptional validates a provided, non-null optional value against a
// validator tag such as "min=1,max=5". Absent values are skipped. Explicit
// nulls are accepted only when nullable is true.
func CheckOptional[T any](c *CustomValidationErrors, field string, v optional.Value[T], tag string, nullable bool) {
	if !v.IsSet() {
		return
	}

	val, ok := v.Get()
	if !ok {
		if !nullable {
			c.Add(field, "must not be null")
		}
		return
	}

	if tag == "" {
		return
	}

	err := validate.Var(val, tag)
	if err == nil {
		return
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		c.Add(field, tagMessage(validationErrors[0]))
		return
	}
	c.Add(field, "is invalid")
}

