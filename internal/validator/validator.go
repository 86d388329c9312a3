// Package validator registers custom validation functions with Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"perawise/internal/catalog"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("question_id", validateQuestionID)
		_ = v.RegisterValidation("content_category", validateContentCategory)
	}
}

func validateQuestionID(fl validator.FieldLevel) bool {
	_, ok := catalog.QuestionByID(fl.Field().String())
	return ok
}

func validateContentCategory(fl validator.FieldLevel) bool {
	return catalog.ValidContentCategory(fl.Field().String())
}
