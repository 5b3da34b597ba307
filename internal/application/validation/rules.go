package validation

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/gewis/gewisweb-api/internal/application/dto"
	"github.com/gewis/gewisweb-api/internal/domain/entity"
)

// activityStructLevel: at least one complete language set, begin before end, deadline not after end.
// The open date of nested signup lists is not compared with the activity begin time.
func activityStructLevel(sl validator.StructLevel) {
	a := sl.Current().Interface().(dto.CreateActivityRequest)

	nlComplete := languageSetComplete(a.Name, a.Location, a.Costs, a.CostsUnknown)
	enComplete := languageSetComplete(a.NameEn, a.LocationEn, a.CostsEn, a.CostsUnknown)
	if !nlComplete && !enComplete {
		sl.ReportError(a.Name, "name", "Name", tagLanguageSet, "")
	}
	if !nlComplete && languageSetStarted(a.Name, a.Location, a.Costs, a.Description) {
		reportMissing(sl, a.Name, a.Location, a.Costs, a.CostsUnknown, "")
	}
	if !enComplete && languageSetStarted(a.NameEn, a.LocationEn, a.CostsEn, a.DescriptionEn) {
		reportMissing(sl, a.NameEn, a.LocationEn, a.CostsEn, a.CostsUnknown, "En")
	}

	begin, okBegin := ParseDateTime(a.BeginTime, nil)
	end, okEnd := ParseDateTime(a.EndTime, nil)
	if okBegin && okEnd && !begin.Before(end) {
		sl.ReportError(a.EndTime, "endTime", "EndTime", tagBeginBeforeEnd, "")
	}
	if a.SubscriptionDeadline != "" && okEnd {
		if deadline, ok := ParseDateTime(a.SubscriptionDeadline, nil); ok && deadline.After(end) {
			sl.ReportError(a.SubscriptionDeadline, "subscriptionDeadline", "SubscriptionDeadline", tagDeadlineBeforeEnd, "")
		}
	}
}

func languageSetComplete(name, location, costs string, costsUnknown bool) bool {
	return name != "" && location != "" && (costsUnknown || costs != "")
}

func languageSetStarted(fields ...string) bool {
	for _, f := range fields {
		if f != "" {
			return true
		}
	}
	return false
}

func reportMissing(sl validator.StructLevel, name, location, costs string, costsUnknown bool, suffix string) {
	if name == "" {
		sl.ReportError(name, "name"+suffix, "Name"+suffix, "required", "")
	}
	if location == "" {
		sl.ReportError(location, "location"+suffix, "Location"+suffix, "required", "")
	}
	if !costsUnknown && costs == "" {
		sl.ReportError(costs, "costs"+suffix, "Costs"+suffix, "required", "")
	}
}

// signupListStructLevel: openDate strictly before closeDate. Malformed dates are invalid, never a panic.
func signupListStructLevel(sl validator.StructLevel) {
	l := sl.Current().Interface().(dto.SignupListRequest)
	open, okOpen := ParseDateTime(l.OpenDate, nil)
	closeAt, okClose := ParseDateTime(l.CloseDate, nil)
	if !okOpen || !okClose {
		// the datetime tag already reports the malformed side
		if l.OpenDate != "" && l.CloseDate != "" {
			sl.ReportError(l.CloseDate, "closeDate", "CloseDate", tagOpenBeforeClose, "")
		}
		return
	}
	if !open.Before(closeAt) {
		sl.ReportError(l.CloseDate, "closeDate", "CloseDate", tagOpenBeforeClose, "")
	}
}

// signupFieldStructLevel: Number needs both bounds (min <= max), Choice needs options with
// equal NL/EN counts when both are given.
func signupFieldStructLevel(sl validator.StructLevel) {
	f := sl.Current().Interface().(dto.SignupFieldRequest)
	switch entity.FieldType(f.Type) {
	case entity.FieldNumber:
		if f.MinimumValue == nil {
			sl.ReportError(f.MinimumValue, "minimumValue", "MinimumValue", tagTypeFields, "")
		}
		if f.MaximumValue == nil {
			sl.ReportError(f.MaximumValue, "maximumValue", "MaximumValue", tagTypeFields, "")
		}
		if f.MinimumValue != nil && f.MaximumValue != nil && *f.MaximumValue < *f.MinimumValue {
			sl.ReportError(f.MaximumValue, "maximumValue", "MaximumValue", tagMinMax, "")
		}
	case entity.FieldChoice:
		nlOpts := SplitOptions(f.Options)
		enOpts := SplitOptions(f.OptionsEn)
		if len(nlOpts) == 0 && len(enOpts) == 0 {
			sl.ReportError(f.Options, "options", "Options", tagTypeFields, "")
			return
		}
		if f.Name != "" && f.NameEn != "" && len(nlOpts) > 0 && len(enOpts) > 0 && len(nlOpts) != len(enOpts) {
			sl.ReportError(f.OptionsEn, "optionsEn", "OptionsEn", tagOptionParity, "")
		}
	}
}

// packageStructLevel: starts before expires.
func packageStructLevel(sl validator.StructLevel) {
	p := sl.Current().Interface().(dto.CreatePackageRequest)
	starts, okStarts := ParseDateTime(p.Starts, nil)
	expires, okExpires := ParseDateTime(p.Expires, nil)
	if okStarts && okExpires && !starts.Before(expires) {
		sl.ReportError(p.Expires, "expires", "Expires", tagStartBeforeExpiry, "")
	}
}

// SplitOptions splits a comma separated option string, trimming blanks and dropping empty entries.
func SplitOptions(s string) []string {
	var out []string
	for _, o := range strings.Split(s, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
