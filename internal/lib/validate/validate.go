// Package validate checks request payloads and reports every violated rule
// as a field error with a Brazilian Portuguese message.
package validate

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"churchEvents/internal/lib/api/response"
	"churchEvents/internal/models"

	"github.com/go-playground/locales/pt_BR"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	ptTranslations "github.com/go-playground/validator/v10/translations/pt_BR"
)

var (
	phonePattern = regexp.MustCompile(`^\(\d{2}\) 9?\d{4}-\d{4}$`)
	slugPattern  = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
	keyPattern   = regexp.MustCompile(`^[a-z0-9]+(?:[._-][a-z0-9]+)*$`)
)

type customRule struct {
	tag     string
	fn      validator.Func
	message string
}

var customRules = []customRule{
	{
		tag:     "phone_br",
		fn:      func(fl validator.FieldLevel) bool { return phonePattern.MatchString(fl.Field().String()) },
		message: "{0} deve estar no formato (DD) DDDD-DDDD ou (DD) 9DDDD-DDDD",
	},
	{
		tag:     "slug",
		fn:      func(fl validator.FieldLevel) bool { return slugPattern.MatchString(fl.Field().String()) },
		message: "{0} deve conter apenas letras minúsculas, números e hífens",
	},
	{
		tag:     "config_key",
		fn:      func(fl validator.FieldLevel) bool { return keyPattern.MatchString(fl.Field().String()) },
		message: "{0} deve conter letras minúsculas, números e separadores . _ -",
	},
	{
		tag:     "reg_status",
		fn:      func(fl validator.FieldLevel) bool { return models.Status(fl.Field().String()).Valid() },
		message: "{0} deve ser PENDING, CONFIRMED, CANCELLED ou WAITLIST",
	},
	{
		tag:     "event_category",
		fn:      func(fl validator.FieldLevel) bool { return models.Category(fl.Field().String()).Valid() },
		message: "{0} deve ser uma categoria de evento válida",
	},
	{
		tag:     "config_type",
		fn:      func(fl validator.FieldLevel) bool { return models.ConfigType(fl.Field().String()).Valid() },
		message: "{0} deve ser TEXT, NUMBER, BOOLEAN, JSON, COLOR, IMAGE ou URL",
	},
}

// Validator is safe for concurrent use; it caches struct metadata.
type Validator struct {
	v     *validator.Validate
	trans ut.Translator
}

var defaultValidator = MustNew()

func New() (*Validator, error) {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	locale := pt_BR.New()
	uni := ut.New(locale, locale)
	trans, _ := uni.GetTranslator(locale.Locale())

	if err := ptTranslations.RegisterDefaultTranslations(v, trans); err != nil {
		return nil, err
	}

	for _, rule := range customRules {
		rule := rule
		if err := v.RegisterValidation(rule.tag, rule.fn); err != nil {
			return nil, err
		}
		err := v.RegisterTranslation(rule.tag, trans,
			func(ut ut.Translator) error {
				return ut.Add(rule.tag, rule.message, true)
			},
			func(ut ut.Translator, fe validator.FieldError) string {
				msg, _ := ut.T(rule.tag, fe.Field())
				return msg
			},
		)
		if err != nil {
			return nil, err
		}
	}

	return &Validator{v: v, trans: trans}, nil
}

func MustNew() *Validator {
	v, err := New()
	if err != nil {
		panic("validate: " + err.Error())
	}
	return v
}

// Struct validates s and returns one FieldError per violated rule, or nil.
func (v *Validator) Struct(s any) []response.FieldError {
	return v.fields(v.v.Struct(s))
}

// Var validates a single value, reporting violations under field. The value
// is wrapped in a one-field struct named by a json tag so the translated
// message carries the field name wherever its template places it.
func (v *Validator) Var(field string, value any, tag string) []response.FieldError {
	typ := reflect.TypeOf(value)
	if typ == nil {
		typ = anyType
	}

	wrapper := reflect.New(reflect.StructOf([]reflect.StructField{{
		Name: "Value",
		Type: typ,
		Tag:  reflect.StructTag(`json:"` + field + `" validate:"` + tag + `"`),
	}}))
	if value != nil {
		wrapper.Elem().Field(0).Set(reflect.ValueOf(value))
	}

	return v.fields(v.v.Struct(wrapper.Interface()))
}

var anyType = reflect.TypeOf((*any)(nil)).Elem()

func (v *Validator) fields(err error) []response.FieldError {
	if err == nil {
		return nil
	}

	var validateErrs validator.ValidationErrors
	if !errors.As(err, &validateErrs) {
		return []response.FieldError{{Field: "request", Rule: "invalid", Message: "requisição inválida"}}
	}

	fields := make([]response.FieldError, 0, len(validateErrs))
	for _, fe := range validateErrs {
		fields = append(fields, response.FieldError{
			Field:   fe.Field(),
			Rule:    fe.Tag(),
			Message: fe.Translate(v.trans),
		})
	}

	return fields
}

func Struct(s any) []response.FieldError {
	return defaultValidator.Struct(s)
}

func Var(field string, value any, tag string) []response.FieldError {
	return defaultValidator.Var(field, value, tag)
}

// Error carries the field errors of a rejected submission.
type Error struct {
	Fields []response.FieldError
}

func (e *Error) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Field+": "+f.Rule)
	}
	return "validation failed: " + strings.Join(msgs, ", ")
}

// AsError wraps fields into an *Error, or returns nil when there are none.
func AsError(fields []response.FieldError) error {
	if len(fields) == 0 {
		return nil
	}
	return &Error{Fields: fields}
}
