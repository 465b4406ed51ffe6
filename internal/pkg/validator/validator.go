package validator

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("even", isEven)
}

// isEven - тег `even` для целых чисел
func isEven(fl validator.FieldLevel) bool {
	switch v := fl.Field().Interface().(type) {
	case int:
		return v%2 == 0
	case int64:
		return v%2 == 0
	case int32:
		return v%2 == 0
	default:
		return false
	}
}

// Validate - валидация структуры
func Validate(s interface{}) error {
	return validate.Struct(s)
}

// Describe returns a field -> failed tag map for validation errors.
func Describe(err error) map[string]interface{} {
	details := make(map[string]interface{})
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		details["error"] = err.Error()
		return details
	}
	for _, fe := range verrs {
		tag := fe.Tag()
		if fe.Param() != "" {
			tag = fmt.Sprintf("%s=%s", tag, fe.Param())
		}
		details[strings.ToLower(fe.Field())] = tag
	}
	return details
}

// GetValidator - получить валидатор для кастомной конфигурации
func GetValidator() *validator.Validate {
	return validate
}
