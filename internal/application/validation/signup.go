package validation

import (
	"strconv"
	"strings"
	"unicode/utf8"

	ut "github.com/go-playground/universal-translator"

	"github.com/gewis/gewisweb-api/internal/domain/entity"
	"github.com/gewis/gewisweb-api/internal/domain/i18n"
)

// MaxTextValue bounds the answer to a text field.
const MaxTextValue = 255

const (
	keyValueRequired = "signup_value_required"
	keyValueTooLong  = "signup_value_too_long"
	keyValueNumber   = "signup_value_number"
	keyValueOption   = "signup_value_option"
)

var signupTexts = map[string][2]string{
	keyValueRequired: {"{0} is een verplicht veld", "{0} is a required field"},
	keyValueTooLong:  {"{0} mag maximaal {1} tekens bevatten", "{0} must be at most {1} characters long"},
	keyValueNumber:   {"{0} moet een geheel getal van {1} tot en met {2} zijn", "{0} must be a whole number from {1} up to and including {2}"},
	keyValueOption:   {"{0} moet een van de aangeboden opties zijn", "{0} must be one of the offered options"},
}

func registerSignupTexts(nlT, enT ut.Translator) {
	for key, t := range signupTexts {
		_ = nlT.Add(key, t[0], true)
		_ = enT.Add(key, t[1], true)
	}
}

// SignupValues checks the answers submitted for list (field ID -> raw value) and converts them
// to field values in field order. Every field must be answered. Errors are keyed "values.<fieldID>".
func (v *Validator) SignupValues(list *entity.SignupList, values map[string]string, l i18n.Locale) ([]entity.SignupFieldValue, error) {
	trans := v.translator(l)
	errs := Errors{}
	out := make([]entity.SignupFieldValue, 0, len(list.Fields))
	for _, f := range list.Fields {
		key := "values." + f.ID
		label := f.Name.String(l)
		raw := strings.TrimSpace(values[f.ID])
		if raw == "" {
			errs.Add(key, tr(trans, keyValueRequired, label))
			continue
		}
		fv := entity.SignupFieldValue{FieldID: f.ID}
		switch f.Type {
		case entity.FieldText:
			if utf8.RuneCountInString(raw) > MaxTextValue {
				errs.Add(key, tr(trans, keyValueTooLong, label, strconv.Itoa(MaxTextValue)))
				continue
			}
			fv.Value = &raw
		case entity.FieldYesNo:
			if raw != "0" && raw != "1" {
				errs.Add(key, tr(trans, keyValueOption, label))
				continue
			}
			fv.Value = &raw
		case entity.FieldNumber:
			n, err := strconv.Atoi(raw)
			if err != nil || !withinBounds(n, f.MinimumValue, f.MaximumValue) {
				errs.Add(key, tr(trans, keyValueNumber, label, bound(f.MinimumValue), bound(f.MaximumValue)))
				continue
			}
			s := strconv.Itoa(n)
			fv.Value = &s
		case entity.FieldChoice:
			if f.Option(raw) == nil {
				errs.Add(key, tr(trans, keyValueOption, label))
				continue
			}
			fv.OptionID = &raw
		default:
			errs.Add(key, tr(trans, keyValueOption, label))
			continue
		}
		out = append(out, fv)
	}
	if err := errs.OrNil(); err != nil {
		return nil, err
	}
	return out, nil
}

func withinBounds(n int, lo, hi *int) bool {
	if lo != nil && n < *lo {
		return false
	}
	if hi != nil && n > *hi {
		return false
	}
	return true
}

func bound(b *int) string {
	if b == nil {
		return "-"
	}
	return strconv.Itoa(*b)
}

func tr(trans ut.Translator, key string, params ...string) string {
	s, err := trans.T(key, params...)
	if err != nil {
		return key
	}
	return s
}
