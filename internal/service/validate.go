package service

import (
	"fmt"

	"github.com/Peytose/mixer-app-sub003/internal/domain"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

func validateInput(v any) error {
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrValidation, err.Error())
	}
	return nil
}
