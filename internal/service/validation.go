package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Freeeeeet/docspot/internal/model"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// validateStruct проверяет DTO по тегам validate и приводит ошибку к model.ErrValidation
func validateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			return fmt.Errorf("%w: %s is required", model.ErrValidation, field)
		case "oneof":
			return fmt.Errorf("%w: %s must be one of [%s]", model.ErrValidation, field, fe.Param())
		default:
			return fmt.Errorf("%w: %s failed %s check", model.ErrValidation, field, fe.Tag())
		}
	}

	return fmt.Errorf("%w: %v", model.ErrValidation, err)
}
