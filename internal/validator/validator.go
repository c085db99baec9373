package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// New creates a new validator instance. Validation errors produced by the
// instance name fields by their JSON name rather than their Go name.
func New() *validator.Validate {
	valid := validator.New()
	valid.RegisterTagNameFunc(jsonName)
	return valid
}

// jsonName retrieves the name of the field as it is known by clients. Fields
// tagged with `json:"-"` are reported with an empty name.
func jsonName(field reflect.StructField) string {
	tag, ok := field.Tag.Lookup("json")
	if !ok {
		return field.Name
	}
	name := strings.SplitN(tag, ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}
	return name
}
