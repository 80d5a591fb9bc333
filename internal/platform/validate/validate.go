// Package validate owns the process-wide validator and its english messages
package validate

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// Svc pairs the validator with its translator
type Svc struct {
	Validator  *validator.Validate
	Translator ut.Translator
}

var (
	once sync.Once
	svc  *Svc
)

// Get returns the singleton, building it on first use
// field names in messages come from the form tag, then json, then the Go name
func Get() *Svc {
	once.Do(func() {
		enLoc := en.New()
		trans, _ := ut.New(enLoc, enLoc).GetTranslator("en")

		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(tagName)
		_ = en_translations.RegisterDefaultTranslations(v, trans)
		registerRequired(v, trans)

		svc = &Svc{Validator: v, Translator: trans}
	})
	return svc
}

func tagName(fld reflect.StructField) string {
	for _, key := range []string{"form", "json"} {
		tag, _, _ := strings.Cut(fld.Tag.Get(key), ",")
		if tag != "" && tag != "-" {
			return tag
		}
	}
	return fld.Name
}

// Var checks one value against tag, e.g. Var(s, "required,email")
func Var(value any, tag string) error {
	return Get().Validator.Var(value, tag)
}

// Struct runs the validate tags of s
func Struct(s any) error {
	return Get().Validator.Struct(s)
}

// FieldAndMessage returns the first failing field and its english message
// errors that are not validation failures pass through with no field
func FieldAndMessage(err error) (field, message string) {
	if err == nil {
		return "", ""
	}
	var inv *validator.InvalidValidationError
	if errors.As(err, &inv) {
		return "", inv.Error()
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return verrs[0].Field(), verrs[0].Translate(Get().Translator)
	}
	return "", err.Error()
}

func registerRequired(v *validator.Validate, trans ut.Translator) {
	_ = v.RegisterTranslation("required", trans,
		func(ut ut.Translator) error {
			return ut.Add("required", "{0} is missing", true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			msg, _ := ut.T("required", fe.Field())
			return msg
		},
	)
}
