package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/tuyulonline77-star/anlocid/internal/core/domain"
	"github.com/tuyulonline77-star/anlocid/internal/pkg/slug"
)

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req).
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator ready to be assigned to
// echo.Echo.Validator. Enum-valued fields validate against the domain
// value sets rather than lists repeated in struct tags.
func NewValidator() *echoValidator {
	v := validator.New()

	mustRegister(v, "article_category", func(fl validator.FieldLevel) bool {
		return domain.IsValidCategory(fl.Field().String())
	})
	mustRegister(v, "shirt_size", func(fl validator.FieldLevel) bool {
		for _, size := range domain.ShirtSizes {
			if fl.Field().String() == size {
				return true
			}
		}
		return false
	})
	mustRegister(v, "member_status", func(fl validator.FieldLevel) bool {
		return domain.MemberStatus(fl.Field().String()).IsValid()
	})
	mustRegister(v, "slug", func(fl validator.FieldLevel) bool {
		return slug.IsValid(fl.Field().String())
	})

	return &echoValidator{v: v}
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("validator: register %s: %v", tag, err))
	}
}

// Validate satisfies the echo.Validator interface.
func (ev *echoValidator) Validate(i any) error {
	if err := ev.v.Struct(i); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			msgs := make([]string, 0, len(ve))
			for _, fe := range ve {
				msgs = append(msgs, fieldError(fe))
			}
			return fmt.Errorf("%s", strings.Join(msgs, "; "))
		}
		return err
	}
	return nil
}

// fieldError converts a single ValidationError into a human-readable message.
func fieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "article_category":
		return fmt.Sprintf("%s must be one of: %s", field, strings.Join(domain.Categories, " "))
	case "shirt_size":
		return fmt.Sprintf("%s must be one of: %s", field, strings.Join(domain.ShirtSizes, " "))
	case "member_status":
		return field + " must be one of: pending approved rejected"
	case "slug":
		return field + " must contain only lowercase letters, digits, and hyphens"
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
