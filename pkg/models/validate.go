package models

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidConfig indicates a ThemeConfig failed structural validation.
var ErrInvalidConfig = errors.New("invalid theme configuration")

// Characters that cannot appear in values embedded without quoting.
const (
	bareLiteralUnsafe = "\"'`\\;{}<>\r\n"
	cssValueUnsafe    = ";{}\r\n"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures and returns the shared validator used for ThemeConfig.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("language", func(fl validator.FieldLevel) bool {
			return Language(fl.Field().String()).IsValid()
		})
		_ = v.RegisterValidation("framework", func(fl validator.FieldLevel) bool {
			return Framework(fl.Field().String()).IsValid()
		})
		_ = v.RegisterValidation("bare_literal", func(fl validator.FieldLevel) bool {
			return IsBareLiteral(fl.Field().String())
		})
		_ = v.RegisterValidation("css_value", func(fl validator.FieldLevel) bool {
			return IsCSSValue(fl.Field().String())
		})

		validateInst = v
	})
	return validateInst
}

// IsBareLiteral reports whether s can be embedded unquoted in JS, SCSS and
// CSS output without changing the surrounding syntax.
func IsBareLiteral(s string) bool {
	return !strings.ContainsAny(s, bareLiteralUnsafe)
}

// IsCSSValue reports whether s can be used as the right-hand side of a
// single CSS or SCSS declaration.
func IsCSSValue(s string) bool {
	return !strings.ContainsAny(s, cssValueUnsafe)
}

// Validate checks enum membership and rejects values that would corrupt
// generated files. The returned error wraps ErrInvalidConfig.
func (c ThemeConfig) Validate() error {
	err := validatorInstance().Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, describeFieldError(fe))
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "language":
		return fmt.Sprintf("%s %q must be one of: TypeScript, JavaScript", fe.Field(), fe.Value())
	case "framework":
		return fmt.Sprintf("%s %q must be one of: React + Vite, Next.js, None", fe.Field(), fe.Value())
	case "bare_literal":
		return fmt.Sprintf("%s %q contains quotes, braces, semicolons or line breaks", fe.Field(), fe.Value())
	case "css_value":
		return fmt.Sprintf("%s %q contains braces, semicolons or line breaks", fe.Field(), fe.Value())
	}
	return fmt.Sprintf("%s failed %q", fe.Field(), fe.Tag())
}
