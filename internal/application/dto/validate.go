package dto

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate instancia compartida; reporta los campos por su nombre JSON.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" || tag == "-" {
			return f.Name
		}
		return tag
	})
	return v
}

// Validate corre las reglas `validate` declaradas en el request.
func Validate(in any) error {
	return validate.Struct(in)
}
