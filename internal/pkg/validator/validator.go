package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"dispatch/internal/entities"

	"github.com/go-playground/validator/v10"
)

var ErrValidation = errors.New("validation failed")

const (
	tagVehicleType = "vehicle_type"
	tagRadiusKm    = "radius_km"
)

// Validator проверяет DTO запросов по тегам validate. Имена полей в ошибках
// берутся из json-тегов.
type Validator struct {
	validate *validator.Validate
}

func New() (*Validator, error) {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation(tagVehicleType, isVehicleType); err != nil {
		return nil, fmt.Errorf("register %s: %w", tagVehicleType, err)
	}
	if err := v.RegisterValidation(tagRadiusKm, isRadiusKm); err != nil {
		return nil, fmt.Errorf("register %s: %w", tagRadiusKm, err)
	}

	return &Validator{validate: v}, nil
}

// Struct возвращает ErrValidation с перечнем полей, не прошедших проверку.
func (v *Validator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, describe(fe))
	}
	return fmt.Errorf("%w: %s", ErrValidation, strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), rootName(fe))
	if field == "" {
		field = fe.Field()
	}

	if fe.Param() != "" {
		return fmt.Sprintf("%s: %s=%s", field, fe.Tag(), fe.Param())
	}
	return fmt.Sprintf("%s: %s", field, fe.Tag())
}

// rootName "DriverCreate." в начале namespace пользователю не нужен.
func rootName(fe validator.FieldError) string {
	root, _, found := strings.Cut(fe.Namespace(), ".")
	if !found {
		return ""
	}
	return root + "."
}

func isVehicleType(fl validator.FieldLevel) bool {
	return entities.VehicleType(fl.Field().String()).IsValid()
}

func isRadiusKm(fl validator.FieldLevel) bool {
	km := fl.Field().Float()
	return km >= entities.MinRadiusKm && km <= entities.MaxRadiusKm
}
