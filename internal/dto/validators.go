package dto

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var loginPattern = regexp.MustCompile(`^[a-zA-Z_]+$`)

// alpha_underscore restricts logins to letters and underscores.
func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("alpha_underscore", func(fl validator.FieldLevel) bool {
			return loginPattern.MatchString(fl.Field().String())
		})
	}
}
