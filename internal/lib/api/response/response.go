// Package response formats the plain-text bodies returned for client errors.
package response

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError flattens validator violations into a single plain message,
// e.g. "field Title is required".
func ValidationError(errs validator.ValidationErrors) string {
	var msgs []string

	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("field %s is required", err.Field()))
		default:
			msgs = append(msgs, fmt.Sprintf("field %s is not valid", err.Field()))
		}
	}

	return strings.Join(msgs, ", ")
}
