package common

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func init() {
	// Report fields by their JSON name ("contactEmail") rather than the Go field name.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(jsonTagName)
	}
}

func jsonTagName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}

// NewValidationAPIError builds the 400 returned for a request body that fails validation.
func NewValidationAPIError(message string) *APIError {
	return &APIError{
		StatusCode: http.StatusBadRequest,
		Code:       "VALIDATION_ERROR",
		Message:    message,
	}
}

// ValidationErrorFrom converts a bind/validate error into a 400. Only the first
// failing field is reported, in struct declaration order.
func ValidationErrorFrom(err error) *APIError {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 {
		return NewValidationAPIError(FormatFieldError(ve[0]))
	}
	return ErrBadRequest.WithMessage("Invalid request body").WithDetails(err.Error())
}

// FormatFieldError renders one validator failure as a client message.
func FormatFieldError(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("Missing required field: %s", field)
	case "email":
		return fmt.Sprintf("Invalid email address in field: %s", field)
	case "oneof":
		return fmt.Sprintf("Invalid value for field %s: must be one of %s", field, fe.Param())
	case "gt":
		return fmt.Sprintf("Invalid value for field %s: must be greater than %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("Field %s exceeds the maximum of %s", field, fe.Param())
	case "url":
		return fmt.Sprintf("Invalid URL in field: %s", field)
	default:
		return fmt.Sprintf("Field validation for '%s' failed on the '%s' tag", field, fe.Tag())
	}
}
