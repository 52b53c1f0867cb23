package http

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/okozlova/bookshelf/internal/entities"
)

// registerValidations wires the tag-vocabulary rule into gin's binding
// engine. Safe to call more than once.
func registerValidations() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("shelftag", func(fl validator.FieldLevel) bool {
		return entities.IsKnownTag(fl.Field().String())
	})
}
