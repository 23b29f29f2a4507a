package util

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationErrorToMessage converts a validator.ValidationErrors to a string
func ValidationErrorToMessage(err error) string {
	verr, ok := err.(validator.ValidationErrors)
	if !ok {
		return "invalid request"
	}
	fields := []string{}
	for _, e := range verr {
		fields = append(fields, e.Field())
	}
	return fmt.Sprintf("missing or invalid fields: %s", strings.Join(fields, ", "))
}
