package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/norrisa/dataman/internal/problem"
)

func newValidator() (*validator.Validate, ut.Translator, error) {
	validate := validator.New()

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, nil, fmt.Errorf("failed to register default translations: %w", err)
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := validate.RegisterValidation("operator", isSupportedOperator); err != nil {
		return nil, nil, fmt.Errorf("failed to register operator validation: %w", err)
	}
	if err := validate.RegisterTranslation("operator", trans, func(ut ut.Translator) error {
		return ut.Add("operator", "{0} must only contain the operators +, -, * and /", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T("operator", strings.TrimPrefix(fe.Namespace(), "Config."))
		return t
	}); err != nil {
		return nil, nil, fmt.Errorf("failed to register operator translation: %w", err)
	}

	return validate, trans, nil
}

func isSupportedOperator(fl validator.FieldLevel) bool {
	return problem.Operator(fl.Field().String()).Supported()
}

// Validate checks the configuration values against their constraints.
func (c *Config) Validate() error {
	validate, trans, err := newValidator()
	if err != nil {
		return err
	}

	if err := validate.Struct(c); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			messages := make([]string, 0, len(validationErrors))
			for _, fieldError := range validationErrors {
				messages = append(messages, fieldError.Translate(trans))
			}
			return fmt.Errorf("invalid configuration: %s", strings.Join(messages, "; "))
		}
		return fmt.Errorf("failed to validate configuration: %w", err)
	}
	return nil
}
