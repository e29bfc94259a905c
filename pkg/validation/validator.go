package validation

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Init configures the global validator used by Gin's binding.
// - Uses JSON tag names in errors.
// - Registers alias tags for the portal's field policies.
func Init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		// Aliases for common semantics
		v.RegisterAlias("pwd", "min=6")      // password minimum length
		v.RegisterAlias("fullname", "min=3") // display name minimum length
	}
}

// ToDetails converts validation/binding errors into a map[field]message
// suitable for API error details.
func ToDetails(err error) map[string]string {
	if err == nil {
		return nil
	}

	// Invalid JSON payloads
	var se *json.SyntaxError
	var ute *json.UnmarshalTypeError
	if errors.As(err, &se) || errors.As(err, &ute) {
		return map[string]string{"payload": "invalid json"}
	}

	// Validation errors from validator.v10
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			out[fe.Field()] = formatFieldError(fe)
		}
		return out
	}

	// Fallback
	return map[string]string{"payload": "invalid payload"}
}

func formatFieldError(fe validator.FieldError) string {
	tag := fe.Tag()
	param := fe.Param()

	switch tag {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min", "pwd", "fullname":
		if fe.Kind() == reflect.String {
			return "must be at least " + minParam(tag, param) + " characters"
		}
		return "must be at least " + minParam(tag, param)
	case "max":
		if fe.Kind() == reflect.String {
			return "must be at most " + param + " characters"
		}
		return "must be at most " + param
	case "eqfield":
		return "must match " + jsonName(param)
	default:
		return "is invalid"
	}
}

// minParam resolves the effective minimum for aliased tags, where the
// validator reports the alias name but not its expansion parameter.
func minParam(tag, param string) string {
	switch tag {
	case "pwd":
		return "6"
	case "fullname":
		return "3"
	}
	return param
}

// jsonName lowercases a struct field reference like "Password" so messages
// speak in payload terms.
func jsonName(field string) string {
	return strings.ToLower(field)
}
