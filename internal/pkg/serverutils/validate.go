package serverutils

import (
	"reflect"
	"strings"

	"babybook-be/internal/apperror"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// ValidateRequest checks a bound request body against its validate tags.
// Failures come back as a ValidationFailed error the error middleware
// turns into a 422 with field violations.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperror.Validation([]apperror.FieldViolation{{
			Field: "body", Rule: "struct", Message: err.Error(),
		}})
	}

	violations := make([]apperror.FieldViolation, 0, len(verrs))
	for _, fe := range verrs {
		violations = append(violations, apperror.FieldViolation{
			Field:   fe.Field(),
			Rule:    fe.Tag(),
			Message: "failed " + fe.Tag() + " validation",
		})
	}
	return apperror.Validation(violations)
}
