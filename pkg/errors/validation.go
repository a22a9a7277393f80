package errors

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError describes one invalid request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationFields flattens binding errors into per-field messages.
// ok is false when err is not a validation error.
func ValidationFields(err error) (fields []FieldError, ok bool) {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return nil, false
	}
	for _, fe := range ve {
		fields = append(fields, FieldError{
			Field:   toSnake(fe.Field()),
			Message: fmt.Sprintf("failed on '%s' rule", fe.Tag()),
		})
	}
	return fields, true
}

func toSnake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}
