package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/wayfarerhq/accounts/internal/accounts/domain"

	"github.com/go-playground/validator/v10"
)

// validate is the shared validator instance. Field names in violation
// paths come from the json tags so they match what the client sent.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// decodeAndValidate decodes the JSON body into dst and runs struct
// validation. A nil result means the payload is valid.
func decodeAndValidate(r *http.Request, dst any) []domain.FieldViolation {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return []domain.FieldViolation{{Path: "body", Message: "invalid JSON body"}}
	}
	return validateStruct(dst)
}

// validateStruct collects every violation rather than stopping at the
// first.
func validateStruct(dst any) []domain.FieldViolation {
	err := validate.Struct(dst)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []domain.FieldViolation{{Path: "body", Message: "could not be validated"}}
	}

	violations := make([]domain.FieldViolation, 0, len(verrs))
	for _, fe := range verrs {
		violations = append(violations, domain.FieldViolation{
			Path:    fe.Field(),
			Message: violationMessage(fe),
		})
	}
	return violations
}

func violationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "eqfield":
		return fmt.Sprintf("must match %s", jsonFieldName(fe.Param()))
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}

// jsonFieldName lowercases the first rune of a struct field name so cross
// field messages name the json field the client sent.
func jsonFieldName(field string) string {
	if field == "" {
		return field
	}
	return strings.ToLower(field[:1]) + field[1:]
}
