package config

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
)

// Validator wraps a validator instance with English error translations.
type Validator struct {
	validate *validator.Validate
	trans    ut.Translator
}

// newValidator creates a validator with the default translations and the custom rules registered.
func newValidator() (*Validator, error) {
	english := en.New()

	trans, _ := ut.New(english, english).GetTranslator("en")

	validate := validator.New(validator.WithRequiredStructEnabled())

	if err := entranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, fmt.Errorf("registering translations: %w", err)
	}

	v := &Validator{validate: validate, trans: trans}

	if err := registerExclusive(v); err != nil {
		return nil, err
	}

	return v, nil
}

// Struct validates s and returns the translated errors joined in a stable order.
func (v *Validator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return fmt.Errorf("validating configuration: %w", err)
	}

	root := reflect.TypeOf(s)

	messages := make([]string, 0, len(errs))

	for _, fe := range errs {
		if fe.Tag() != "exclusive" {
			messages = append(messages, fe.Translate(v.trans))

			continue
		}

		msg, err := v.trans.T("exclusive", fe.Field(), labelOf(root, fe.StructNamespace(), fe.Param()))
		if err != nil {
			msg = fe.Error()
		}

		messages = append(messages, msg)
	}

	sort.Strings(messages)

	return fmt.Errorf("validating configuration: %s", strings.Join(messages, "; "))
}

// registerExclusive adds a custom validator ensuring two fields are mutually exclusive.
// It registers both the validation logic and a human-readable error message.
func registerExclusive(v *Validator) error {
	if err := v.validate.RegisterValidation("exclusive", validateExclusive); err != nil {
		return fmt.Errorf("registering exclusive validation: %w", err)
	}

	err := v.validate.RegisterTranslation(
		"exclusive",
		v.trans,
		func(trans ut.Translator) error {
			return trans.Add("exclusive", "{0} is mutually exclusive with {1}", true)
		},
		func(trans ut.Translator, fe validator.FieldError) string {
			msg, err := trans.T("exclusive", fe.Field(), fe.Param())
			if err != nil {
				return fe.Error()
			}

			return msg
		},
	)
	if err != nil {
		return fmt.Errorf("registering exclusive translation: %w", err)
	}

	v.validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		const splitSize = 2

		name := strings.SplitN(fld.Tag.Get("label"), ",", splitSize)[0]
		if name == "-" || name == "" {
			return fld.Name
		}

		return name
	})

	return nil
}

// labelOf returns the label tag of the sibling field param of the field at namespace,
// falling back to its Go name. namespace is the Go field path, e.g. "Config.Key.String".
func labelOf(root reflect.Type, namespace, param string) string {
	typ := deref(root)

	parts := strings.Split(namespace, ".")
	if len(parts) < 2 { //nolint:mnd // root type name and field name
		return param
	}

	for _, name := range parts[1 : len(parts)-1] {
		if typ.Kind() != reflect.Struct {
			return param
		}

		field, ok := typ.FieldByName(name)
		if !ok {
			return param
		}

		typ = deref(field.Type)
	}

	if typ.Kind() != reflect.Struct {
		return param
	}

	field, ok := typ.FieldByName(param)
	if !ok {
		return param
	}

	const splitSize = 2

	if label := strings.SplitN(field.Tag.Get("label"), ",", splitSize)[0]; label != "" && label != "-" {
		return label
	}

	return param
}

func deref(typ reflect.Type) reflect.Type {
	for typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}

	return typ
}

// validateExclusive checks if two fields are mutually exclusive.
// Returns false if both fields hold non-zero values.
func validateExclusive(fl validator.FieldLevel) bool {
	field := fl.Field()
	otherField := fl.Parent().FieldByName(fl.Param())

	if !field.IsValid() || !otherField.IsValid() {
		return true
	}

	return field.IsZero() || otherField.IsZero()
}
