// Package validation wires go-playground/validator with Dutch and English messages and the
// cross-field rules of the activity, signup list and signup field forms.
package validation

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/nl"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	nl_translations "github.com/go-playground/validator/v10/translations/nl"

	"github.com/gewis/gewisweb-api/internal/application/dto"
	"github.com/gewis/gewisweb-api/internal/domain/i18n"
)

// custom validation tags
const (
	tagLanguageSet       = "languageset"
	tagBeginBeforeEnd    = "beginbeforeend"
	tagDeadlineBeforeEnd = "deadlinebeforeend"
	tagOpenBeforeClose   = "openbeforeclose"
	tagStartBeforeExpiry = "startbeforeexpiry"
	tagTypeFields        = "typefields"
	tagMinMax            = "minmax"
	tagOptionParity      = "optionparity"
)

// message texts per tag: {nl, en}
var texts = map[string][2]string{
	"required":           {"{0} is een verplicht veld", "{0} is a required field"},
	"required_without":   {"{0} is verplicht als {1} leeg is", "{0} is required when {1} is empty"},
	"datetime":           {"{0} is geen geldige datum (verwacht {1})", "{0} is not a valid date (expected {1})"},
	tagLanguageSet:       {"Vul de Nederlandse of de Engelse gegevens van de activiteit in", "Fill in the Dutch or the English details of the activity"},
	tagBeginBeforeEnd:    {"De activiteit moet eindigen nadat hij begint", "The activity must end after it begins"},
	tagDeadlineBeforeEnd: {"De inschrijfdeadline moet voor het einde van de activiteit liggen", "The subscription deadline must be before the end of the activity"},
	tagOpenBeforeClose:   {"De inschrijflijst moet openen voordat hij sluit", "The sign-up list must open before it closes"},
	tagTypeFields:        {"Verplichte velden voor dit type zijn leeg", "Required fields for this type are empty"},
	tagMinMax:            {"De maximumwaarde mag niet kleiner zijn dan de minimumwaarde", "The maximum value must not be smaller than the minimum value"},
	tagStartBeforeExpiry: {"Een pakket moet beginnen voordat het verloopt", "A package must start before it expires"},
	tagOptionParity:      {"Het aantal Engelse opties moet gelijk zijn aan het aantal Nederlandse opties", "The number of English options must equal the number of Dutch options"},
}

// Validator validates request DTOs and renders field errors in the request locale.
type Validator struct {
	validate    *validator.Validate
	translators map[i18n.Locale]ut.Translator
}

// New builds the validator with json field names, nl/en translations and the cross-field rules.
func New() *Validator {
	validate := validator.New()

	// Use JSON tag names for errors instead of Go struct names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_en := en.New()
	uni := ut.New(_en, _en, nl.New())
	enT, _ := uni.GetTranslator("en")
	nlT, _ := uni.GetTranslator("nl")
	_ = en_translations.RegisterDefaultTranslations(validate, enT)
	_ = nl_translations.RegisterDefaultTranslations(validate, nlT)

	v := &Validator{
		validate:    validate,
		translators: map[i18n.Locale]ut.Translator{i18n.Dutch: nlT, i18n.English: enT},
	}
	for tag, t := range texts {
		registerTranslation(validate, nlT, tag, t[0])
		registerTranslation(validate, enT, tag, t[1])
	}
	registerSignupTexts(nlT, enT)

	validate.RegisterStructValidation(activityStructLevel, dto.CreateActivityRequest{})
	validate.RegisterStructValidation(signupListStructLevel, dto.SignupListRequest{})
	validate.RegisterStructValidation(signupFieldStructLevel, dto.SignupFieldRequest{})
	validate.RegisterStructValidation(packageStructLevel, dto.CreatePackageRequest{})
	return v
}

// registerTranslation overrides (or adds) the message for tag.
func registerTranslation(validate *validator.Validate, trans ut.Translator, tag, text string) {
	_ = validate.RegisterTranslation(
		tag, trans,
		func(t ut.Translator) error { return t.Add(tag, text, true) },
		func(t ut.Translator, fe validator.FieldError) string {
			s, _ := t.T(tag, fe.Field(), fe.Param())
			return s
		},
	)
}

// Struct validates s and returns Errors with messages in l, or nil.
func (v *Validator) Struct(s any, l i18n.Locale) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	trans := v.translator(l)
	out := Errors{}
	for _, fe := range fieldErrs {
		out.Add(fieldPath(fe.Namespace()), fe.Translate(trans))
	}
	return out
}

func (v *Validator) translator(l i18n.Locale) ut.Translator {
	if t, ok := v.translators[l]; ok {
		return t
	}
	return v.translators[i18n.English]
}

// fieldPath drops the top-level struct name from a namespace.
func fieldPath(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

// ParseDateTime parses a form date in loc. ok is false for malformed input.
func ParseDateTime(s string, loc *time.Location) (t time.Time, ok bool) {
	if loc == nil {
		loc = time.UTC
	}
	t, err := time.ParseInLocation(dto.DateTimeLayout, strings.TrimSpace(s), loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
