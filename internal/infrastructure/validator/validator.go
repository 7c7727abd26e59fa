package validator

import (
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
)

// AppValidator validates configuration structs.
type AppValidator struct {
	validate *validator.Validate
}

// NewValidator creates a validator with the custom tags registered.
func NewValidator() *AppValidator {
	v := validator.New()
	_ = v.RegisterValidation("corsorigins", corsOriginsFL)
	return &AppValidator{validate: v}
}

// ValidateStruct runs the struct's validate tags.
func (av *AppValidator) ValidateStruct(s interface{}) error {
	return av.validate.Struct(s)
}

// ValidCORSOrigins reports whether a comma-separated origin list holds only
// "*" or absolute http(s) origins without a path.
func ValidCORSOrigins(list string) bool {
	for _, o := range strings.Split(list, ",") {
		o = strings.TrimSpace(o)
		if o == "" || o == "*" {
			continue
		}
		u, err := url.Parse(o)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return false
		}
		if u.Path != "" && u.Path != "/" {
			return false
		}
	}
	return true
}

func corsOriginsFL(fl validator.FieldLevel) bool {
	return ValidCORSOrigins(fl.Field().String())
}
