package services

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/japanesestudent/courseview/internal/models"
)

// ErrInvalidPageRequest is returned for sort or page values the backend can not serve
var ErrInvalidPageRequest = errors.New("invalid page request")

var validate = newValidator()

// newValidator reports fields by their JSON names
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func validatePageRequest(req models.PageRequest) error {
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidPageRequest, describeValidation(err))
	}
	return nil
}

// fieldErrors converts validator failures into response field errors
func fieldErrors(err error) []models.FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []models.FieldError{{Field: "", Rule: err.Error()}}
	}
	out := make([]models.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, models.FieldError{
			Field: fe.Field(),
			Rule:  fe.Tag(),
			Param: fe.Param(),
		})
	}
	return out
}

func describeValidation(err error) string {
	parts := make([]string, 0)
	for _, fe := range fieldErrors(err) {
		if fe.Param != "" {
			parts = append(parts, fmt.Sprintf("%s must satisfy %s=%s", fe.Field, fe.Rule, fe.Param))
		} else {
			parts = append(parts, fmt.Sprintf("%s must satisfy %s", fe.Field, fe.Rule))
		}
	}
	return strings.Join(parts, ", ")
}
