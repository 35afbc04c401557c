// file: internals/helpers/validator.go
package helper

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Pola nama group: dua huruf besar, strip, dua digit. Contoh: AB-22.
var groupNameRe = regexp.MustCompile(`^[A-Z]{2}-[0-9]{2}$`)

// NewValidator membuat instance validator.v10 + rule kustom domain.
// Controller share satu instance ini (thread-safe).
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	_ = v.RegisterValidation("group_name", func(fl validator.FieldLevel) bool {
		return groupNameRe.MatchString(fl.Field().String())
	})

	return v
}

// IsValidGroupName dipakai repository group sebelum auto-create dari lesson.
func IsValidGroupName(name string) bool {
	return groupNameRe.MatchString(name)
}

// ValidationFields meratakan validator.ValidationErrors → map field→tag.
func ValidationFields(err error) map[string]string {
	out := make(map[string]string)
	if ve, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range ve {
			out[fe.Field()] = fe.Tag()
		}
	}
	return out
}
