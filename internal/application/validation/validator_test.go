package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gewis/gewisweb-api/internal/application/dto"
	"github.com/gewis/gewisweb-api/internal/domain"
	"github.com/gewis/gewisweb-api/internal/domain/i18n"
)

func intPtr(v int) *int { return &v }

func validActivity() dto.CreateActivityRequest {
	return dto.CreateActivityRequest{
		Name:      "Borrel",
		Location:  "Bar",
		Costs:     "0",
		BeginTime: "2024-01-01 20:00",
		EndTime:   "2024-01-01 23:00",
	}
}

func validationErrors(t *testing.T, err error) Errors {
	t.Helper()
	require.Error(t, err)
	var errs Errors
	require.True(t, errors.As(err, &errs), "expected validation.Errors, got %T", err)
	return errs
}

func TestActivity_DutchOnlyIsValid(t *testing.T) {
	v := New()
	assert.NoError(t, v.Struct(validActivity(), i18n.English))
}

func TestActivity_EnglishOnlyIsValid(t *testing.T) {
	v := New()
	a := dto.CreateActivityRequest{
		NameEn:       "Drinks",
		LocationEn:   "Bar",
		CostsUnknown: true,
		BeginTime:    "2024-01-01 20:00",
		EndTime:      "2024-01-01 23:00",
	}
	assert.NoError(t, v.Struct(a, i18n.English))
}

func TestActivity_NoLanguageSet(t *testing.T) {
	v := New()
	a := validActivity()
	a.Name, a.Location, a.Costs = "", "", ""
	errs := validationErrors(t, v.Struct(a, i18n.English))
	assert.Contains(t, errs["name"], "Fill in the Dutch or the English details of the activity")
	assert.True(t, errors.Is(errs, domain.ErrInvalidInput))
}

func TestActivity_PartialEnglishSetReportsMissingFields(t *testing.T) {
	v := New()
	a := validActivity()
	a.NameEn = "Drinks"
	errs := validationErrors(t, v.Struct(a, i18n.English))
	assert.True(t, errs.Has("locationEn"))
	assert.True(t, errs.Has("costsEn"))
	assert.False(t, errs.Has("name"))
}

func TestActivity_EndBeforeBegin(t *testing.T) {
	v := New()
	a := validActivity()
	a.EndTime = "2024-01-01 19:00"
	errs := validationErrors(t, v.Struct(a, i18n.English))
	assert.Equal(t, []string{"The activity must end after it begins"}, errs["endTime"])
}

func TestActivity_DeadlineAfterEnd(t *testing.T) {
	v := New()
	a := validActivity()
	a.SubscriptionDeadline = "2024-01-02 10:00"
	errs := validationErrors(t, v.Struct(a, i18n.Dutch))
	assert.Equal(t, []string{"De inschrijfdeadline moet voor het einde van de activiteit liggen"}, errs["subscriptionDeadline"])
}

func TestActivity_MalformedBeginTimeIsAFieldError(t *testing.T) {
	v := New()
	a := validActivity()
	a.BeginTime = "tomorrow"
	errs := validationErrors(t, v.Struct(a, i18n.English))
	assert.True(t, errs.Has("beginTime"))
}

func TestSignupList_OpenMustBeBeforeClose(t *testing.T) {
	v := New()
	cases := []struct {
		name      string
		open      string
		closeDate string
		wantErr   bool
	}{
		{"open before close", "2024-01-01 10:00", "2024-01-01 12:00", false},
		{"open equals close", "2024-01-01 10:00", "2024-01-01 10:00", true},
		{"open after close", "2024-01-02 10:00", "2024-01-01 10:00", true},
		{"malformed close", "2024-01-01 10:00", "31-12-2024", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := validActivity()
			a.SignupLists = []dto.SignupListRequest{{Name: "Lijst", OpenDate: tc.open, CloseDate: tc.closeDate}}
			err := v.Struct(a, i18n.English)
			if !tc.wantErr {
				assert.NoError(t, err)
				return
			}
			errs := validationErrors(t, err)
			assert.Contains(t, errs["signupLists[0].closeDate"], "The sign-up list must open before it closes")
		})
	}
}

func TestSignupList_OpenDateIsNotComparedWithActivityBegin(t *testing.T) {
	v := New()
	a := validActivity()
	// list opens after the activity has already begun; accepted
	a.SignupLists = []dto.SignupListRequest{{Name: "Lijst", OpenDate: "2024-01-01 21:00", CloseDate: "2024-01-01 22:00"}}
	assert.NoError(t, v.Struct(a, i18n.English))
}

func TestSignupField_NumberNeedsBothBounds(t *testing.T) {
	v := New()
	a := validActivity()
	a.SignupLists = []dto.SignupListRequest{{
		Name: "Lijst", OpenDate: "2024-01-01 10:00", CloseDate: "2024-01-01 12:00",
		Fields: []dto.SignupFieldRequest{{Name: "Aantal", Type: 2, MinimumValue: intPtr(1)}},
	}}
	errs := validationErrors(t, v.Struct(a, i18n.English))
	assert.Equal(t, []string{"Required fields for this type are empty"}, errs["signupLists[0].fields[0].maximumValue"])

	a.SignupLists[0].Fields[0].MaximumValue = intPtr(5)
	assert.NoError(t, v.Struct(a, i18n.English))
}

func TestSignupField_MaximumBelowMinimum(t *testing.T) {
	v := New()
	a := validActivity()
	a.SignupLists = []dto.SignupListRequest{{
		Name: "Lijst", OpenDate: "2024-01-01 10:00", CloseDate: "2024-01-01 12:00",
		Fields: []dto.SignupFieldRequest{{Name: "Aantal", Type: 2, MinimumValue: intPtr(5), MaximumValue: intPtr(1)}},
	}}
	errs := validationErrors(t, v.Struct(a, i18n.English))
	assert.True(t, errs.Has("signupLists[0].fields[0].maximumValue"))
}

func TestSignupField_ChoiceOptionParity(t *testing.T) {
	v := New()
	a := validActivity()
	a.SignupLists = []dto.SignupListRequest{{
		Name: "Lijst", OpenDate: "2024-01-01 10:00", CloseDate: "2024-01-01 12:00",
		Fields: []dto.SignupFieldRequest{{Name: "A", NameEn: "A-en", Type: 3, Options: "1,2,3", OptionsEn: "1,2"}},
	}}
	errs := validationErrors(t, v.Struct(a, i18n.English))
	assert.Equal(t, []string{"The number of English options must equal the number of Dutch options"}, errs["signupLists[0].fields[0].optionsEn"])

	a.SignupLists[0].Fields[0].OptionsEn = "1,2,3"
	assert.NoError(t, v.Struct(a, i18n.English))
}

func TestSignupField_ChoiceWithoutOptions(t *testing.T) {
	v := New()
	a := validActivity()
	a.SignupLists = []dto.SignupListRequest{{
		Name: "Lijst", OpenDate: "2024-01-01 10:00", CloseDate: "2024-01-01 12:00",
		Fields: []dto.SignupFieldRequest{{Name: "Keuze", Type: 3, Options: " , "}},
	}}
	errs := validationErrors(t, v.Struct(a, i18n.Dutch))
	assert.Equal(t, []string{"Verplichte velden voor dit type zijn leeg"}, errs["signupLists[0].fields[0].options"])
}

func TestExternalSignup(t *testing.T) {
	v := New()
	ok := dto.ExternalSignupRequest{FullName: "Jan Jansen", Email: "jan@example.com"}
	assert.NoError(t, v.Struct(ok, i18n.English))

	bad := dto.ExternalSignupRequest{FullName: "", Email: "not-an-email"}
	errs := validationErrors(t, v.Struct(bad, i18n.English))
	assert.True(t, errs.Has("fullName"))
	assert.True(t, errs.Has("email"))
}

func TestPackage_StartsBeforeExpires(t *testing.T) {
	v := New()
	p := dto.CreatePackageRequest{Kind: "banner", Starts: "2024-02-01 00:00", Expires: "2024-01-01 00:00"}
	errs := validationErrors(t, v.Struct(p, i18n.English))
	assert.Equal(t, []string{"A package must start before it expires"}, errs["expires"])
}

func TestSplitOptions(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, SplitOptions(" a, b,,c ,"))
	assert.Nil(t, SplitOptions(""))
}

func TestErrors_Error(t *testing.T) {
	errs := Errors{}
	errs.Add("b", "two")
	errs.Add("a", "one")
	errs.Add("a", "uno")
	assert.Equal(t, "a: one, uno; b: two", errs.Error())
	assert.Nil(t, Errors{}.OrNil())
}
