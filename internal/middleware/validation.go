package middleware

import (
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/osunpoly/polyreg/internal/app/models/dto"
)

// validate reuses gin's tag name so DTOs carry a single set of rules
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	return v
}

// ValidateStruct runs the binding rules on an already-decoded value.
// Payloads arriving inside an envelope bypass gin's bind step, so the
// dispatching handler calls this after json.Unmarshal.
func ValidateStruct(obj interface{}) *dto.ErrorDetail {
	value := reflect.ValueOf(obj)
	if value.Kind() == reflect.Ptr {
		value = value.Elem()
	}

	if err := validate.Struct(value.Interface()); err != nil {
		return dto.HandleValidationError(err)
	}
	return nil
}
