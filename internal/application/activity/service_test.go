package activity

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gewis/gewisweb-api/internal/application/dto"
	"github.com/gewis/gewisweb-api/internal/application/validation"
	"github.com/gewis/gewisweb-api/internal/domain"
	"github.com/gewis/gewisweb-api/internal/domain/acl"
	"github.com/gewis/gewisweb-api/internal/domain/entity"
	"github.com/gewis/gewisweb-api/internal/domain/i18n"
	"github.com/gewis/gewisweb-api/internal/domain/period"
)

func borrel() dto.CreateActivityRequest {
	return dto.CreateActivityRequest{
		Name:      "Borrel",
		BeginTime: "2024-01-01 20:00",
		EndTime:   "2024-01-01 23:00",
		Location:  "Bar",
		Costs:     "0",
	}
}

// seedOpenActivity stores an approved activity with one list open at now.
func seedOpenActivity(t *testing.T, f *fixture, onlyGEWIS bool) (*entity.Activity, *entity.SignupList) {
	t.Helper()
	list := &entity.SignupList{
		ID:                      "list-1",
		ActivityID:              "act-1",
		Name:                    i18n.FromStrings("Inschrijving", "Registration"),
		OpenDate:                now.Add(-time.Hour),
		CloseDate:               now.Add(time.Hour),
		OnlyGEWIS:               onlyGEWIS,
		DisplaySubscribedNumber: true,
		Fields: []*entity.SignupField{
			{ID: "f-veg", SignupListID: "list-1", Name: i18n.FromStrings("Vega", "Vegetarian"), Type: entity.FieldYesNo},
		},
	}
	a := &entity.Activity{
		ID:          "act-1",
		Name:        i18n.FromStrings("Borrel", "Drinks"),
		Location:    i18n.FromStrings("Bar", ""),
		BeginTime:   now.Add(2 * time.Hour),
		EndTime:     now.Add(5 * time.Hour),
		CanSignUp:   true,
		OnlyGEWIS:   true,
		Status:      entity.StatusApproved,
		CreatorID:   creator.MemberID,
		SignupLists: []*entity.SignupList{list},
	}
	require.NoError(t, f.activities.Create(context.Background(), a))
	return a, list
}

func TestCreate_DutchOnlyActivity(t *testing.T) {
	f := newFixture()
	a, err := f.svc.Create(context.Background(), creator, borrel(), i18n.English)
	require.NoError(t, err)

	assert.Equal(t, entity.StatusToApprove, a.Status)
	assert.Equal(t, creator.MemberID, a.CreatorID)
	assert.True(t, a.OnlyGEWIS)
	name, err := a.Name.Exact(i18n.Dutch)
	require.NoError(t, err)
	require.NotNil(t, name)
	assert.Equal(t, "Borrel", *name)
	nameEn, err := a.Name.Exact(i18n.English)
	require.NoError(t, err)
	assert.Nil(t, nameEn)
	assert.Equal(t, time.Date(2024, 1, 1, 20, 0, 0, 0, time.UTC), a.BeginTime)

	stored, err := f.activities.GetByID(context.Background(), a.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, []string{a.ID}, f.notifier.created)
}

func TestCreate_NotAllowedForPlainMember(t *testing.T) {
	f := newFixture()
	_, err := f.svc.Create(context.Background(), member, borrel(), i18n.English)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotAllowed))
	assert.Equal(t, "You are not allowed to create an activity", err.Error())

	_, err = f.svc.Create(context.Background(), member, borrel(), i18n.Dutch)
	assert.Equal(t, "Je mag geen activiteiten aanmaken", err.Error())
}

func TestCreate_ValidationErrorsAreReturnedAsData(t *testing.T) {
	f := newFixture()
	in := borrel()
	in.Name = ""
	in.Location = ""
	_, err := f.svc.Create(context.Background(), creator, in, i18n.English)
	var errs validation.Errors
	require.True(t, errors.As(err, &errs))
	assert.True(t, errs.Has("name"))
	assert.Empty(t, f.notifier.created)
}

func TestCreate_NotificationFailureDoesNotFailCreate(t *testing.T) {
	f := newFixture()
	f.notifier.err = errors.New("smtp down")
	_, err := f.svc.Create(context.Background(), creator, borrel(), i18n.English)
	assert.NoError(t, err)
}

func TestCreate_ListsFieldsAndOptions(t *testing.T) {
	f := newFixture()
	in := borrel()
	in.CanSignUp = true
	in.SignupLists = []dto.SignupListRequest{{
		Name:      "Inschrijving",
		OpenDate:  "2023-12-20 10:00",
		CloseDate: "2023-12-31 10:00",
		Fields: []dto.SignupFieldRequest{
			{Name: "Maat", NameEn: "Size", Type: 3, Options: "S, M,L", OptionsEn: "small,medium,large"},
			{Name: "Aantal", Type: 2, MinimumValue: intPtr(1), MaximumValue: intPtr(4)},
		},
	}}
	a, err := f.svc.Create(context.Background(), creator, in, i18n.English)
	require.NoError(t, err)
	require.Len(t, a.SignupLists, 1)
	fields := a.SignupLists[0].Fields
	require.Len(t, fields, 2)
	require.Len(t, fields[0].Options, 3)
	assert.Equal(t, "M", fields[0].Options[1].Value.String(i18n.Dutch))
	assert.Equal(t, "medium", fields[0].Options[1].Value.String(i18n.English))
	assert.Equal(t, 4, *fields[1].MaximumValue)
	assert.Empty(t, fields[1].Options)
}

func TestLifecycle_ApproveResetDisapprove(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	a, err := f.svc.Create(ctx, creator, borrel(), i18n.English)
	require.NoError(t, err)

	approved, err := f.svc.Approve(ctx, admin, a.ID, i18n.English)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusApproved, approved.Status)
	require.NotNil(t, approved.ApproverID)
	assert.Equal(t, admin.MemberID, *approved.ApproverID)

	_, err = f.svc.Disapprove(ctx, admin, a.ID, i18n.English)
	assert.True(t, errors.Is(err, domain.ErrInvalidTransition))

	reset, err := f.svc.Reset(ctx, admin, a.ID, i18n.English)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusToApprove, reset.Status)
	assert.Nil(t, reset.ApproverID)

	disapproved, err := f.svc.Disapprove(ctx, admin, a.ID, i18n.English)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusDisapproved, disapproved.Status)
}

func TestLifecycle_RequiresPermission(t *testing.T) {
	f := newFixture()
	a, err := f.svc.Create(context.Background(), creator, borrel(), i18n.English)
	require.NoError(t, err)
	_, err = f.svc.Approve(context.Background(), creator, a.ID, i18n.English)
	assert.True(t, errors.Is(err, domain.ErrNotAllowed))
	_, err = f.svc.Approve(context.Background(), admin, "missing", i18n.English)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestGet_VisibilityByStatus(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	a, err := f.svc.Create(ctx, creator, borrel(), i18n.English)
	require.NoError(t, err)

	_, err = f.svc.Get(ctx, acl.Guest, a.ID, i18n.English)
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	tr, err := f.svc.Get(ctx, creator, a.ID, i18n.English)
	require.NoError(t, err)
	// English requested, only Dutch present: the whole projection falls back to Dutch
	assert.Equal(t, i18n.Dutch, tr.Locale)
	assert.Equal(t, "Borrel", tr.Name)

	_, err = f.svc.Approve(ctx, admin, a.ID, i18n.English)
	require.NoError(t, err)
	_, err = f.svc.Get(ctx, acl.Guest, a.ID, i18n.English)
	assert.NoError(t, err)
}

func TestListByStatus(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	_, err := f.svc.Create(ctx, creator, borrel(), i18n.English)
	require.NoError(t, err)

	list, err := f.svc.ListByStatus(ctx, admin, entity.StatusToApprove, i18n.English)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = f.svc.ListByStatus(ctx, member, entity.StatusToApprove, i18n.English)
	assert.True(t, errors.Is(err, domain.ErrNotAllowed))
}

func TestUpcomingAndArchive(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	seedOpenActivity(t, f, true)

	up, err := f.svc.Upcoming(ctx, acl.Guest, i18n.English)
	require.NoError(t, err)
	require.Len(t, up, 1)
	assert.Equal(t, "Drinks", up[0].Name)

	year := f.svc.CurrentAssociationYear()
	assert.Equal(t, period.AssociationYear(2023), year)
	archived, err := f.svc.Archive(ctx, acl.Guest, year, i18n.Dutch)
	require.NoError(t, err)
	require.Len(t, archived, 1)
	assert.Equal(t, "Borrel", archived[0].Name)

	archived, err = f.svc.Archive(ctx, acl.Guest, 2022, i18n.Dutch)
	require.NoError(t, err)
	assert.Empty(t, archived)
}

func TestSignUp_GuestIsInvalid(t *testing.T) {
	f := newFixture()
	seedOpenActivity(t, f, true)
	_, err := f.svc.SignUp(context.Background(), acl.Guest, "act-1", "list-1", map[string]string{"f-veg": "1"}, i18n.English)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestSignUp_TwiceIsAlreadySignedUp(t *testing.T) {
	f := newFixture()
	seedOpenActivity(t, f, true)
	ctx := context.Background()
	values := map[string]string{"f-veg": "1"}

	_, err := f.svc.SignUp(ctx, member, "act-1", "list-1", values, i18n.English)
	require.NoError(t, err)
	_, err = f.svc.SignUp(ctx, member, "act-1", "list-1", values, i18n.English)
	assert.ErrorIs(t, err, domain.ErrAlreadySignedUp)
}

func TestSignUp_ConcurrentAttemptsPersistOneRow(t *testing.T) {
	f := newFixture()
	seedOpenActivity(t, f, true)
	ctx := context.Background()

	const attempts = 8
	var wg sync.WaitGroup
	errs := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.svc.SignUp(ctx, member, "act-1", "list-1", map[string]string{"f-veg": "0"}, i18n.English)
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, domain.ErrAlreadySignedUp)
	}
	assert.Equal(t, 1, succeeded)
	n, err := f.signups.CountByList(ctx, "list-1")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestSignUp_ClosedList(t *testing.T) {
	f := newFixture()
	_, list := seedOpenActivity(t, f, true)
	list.CloseDate = now
	_, err := f.svc.SignUp(context.Background(), member, "act-1", "list-1", map[string]string{"f-veg": "1"}, i18n.English)
	assert.ErrorIs(t, err, domain.ErrSignupClosed)
}

func TestSignUp_InvalidValues(t *testing.T) {
	f := newFixture()
	seedOpenActivity(t, f, true)
	_, err := f.svc.SignUp(context.Background(), member, "act-1", "list-1", map[string]string{"f-veg": "maybe"}, i18n.English)
	var errs validation.Errors
	require.True(t, errors.As(err, &errs))
	assert.True(t, errs.Has("values.f-veg"))
}

func TestSignOff_IsIdempotent(t *testing.T) {
	f := newFixture()
	seedOpenActivity(t, f, true)
	ctx := context.Background()
	_, err := f.svc.SignUp(ctx, member, "act-1", "list-1", map[string]string{"f-veg": "1"}, i18n.English)
	require.NoError(t, err)

	require.NoError(t, f.svc.SignOff(ctx, member, "act-1", "list-1", i18n.English))
	n, _ := f.signups.CountByList(ctx, "list-1")
	assert.Equal(t, 0, n)

	require.NoError(t, f.svc.SignOff(ctx, member, "act-1", "list-1", i18n.English))
	n, _ = f.signups.CountByList(ctx, "list-1")
	assert.Equal(t, 0, n)
}

func TestExternalSignUp(t *testing.T) {
	f := newFixture()
	seedOpenActivity(t, f, false)
	ctx := context.Background()
	in := dto.ExternalSignupRequest{
		FullName: "Eva Extern",
		Email:    "eva@example.com",
		Values:   map[string]string{"f-veg": "0"},
	}

	_, err := f.svc.ExternalSignUp(ctx, acl.Guest, "act-1", "list-1", in, i18n.English)
	assert.ErrorIs(t, err, domain.ErrCaptchaFailed)

	c, err := f.svc.IssueCaptcha(ctx)
	require.NoError(t, err)
	in.CaptchaID, in.CaptchaAnswer = c.ID, "7"
	su, err := f.svc.ExternalSignUp(ctx, acl.Guest, "act-1", "list-1", in, i18n.English)
	require.NoError(t, err)
	assert.Equal(t, entity.SignupExternal, su.Kind)
	assert.Nil(t, su.MemberID)

	// the challenge is single use
	_, err = f.svc.ExternalSignUp(ctx, acl.Guest, "act-1", "list-1", in, i18n.English)
	assert.ErrorIs(t, err, domain.ErrCaptchaFailed)

	// members skip the CAPTCHA
	in.CaptchaID, in.CaptchaAnswer = "", ""
	_, err = f.svc.ExternalSignUp(ctx, member, "act-1", "list-1", in, i18n.English)
	assert.NoError(t, err)
}

func TestExternalSignUp_OnlyGEWISList(t *testing.T) {
	f := newFixture()
	seedOpenActivity(t, f, true)
	in := dto.ExternalSignupRequest{FullName: "Eva", Email: "eva@example.com", Values: map[string]string{"f-veg": "0"}}
	_, err := f.svc.ExternalSignUp(context.Background(), member, "act-1", "list-1", in, i18n.English)
	assert.True(t, errors.Is(err, domain.ErrNotAllowed))
}

func TestListSignups(t *testing.T) {
	f := newFixture()
	seedOpenActivity(t, f, true)
	ctx := context.Background()
	_, err := f.svc.SignUp(ctx, member, "act-1", "list-1", map[string]string{"f-veg": "1"}, i18n.English)
	require.NoError(t, err)

	full, err := f.svc.ListSignups(ctx, creator, "act-1", "list-1", i18n.English)
	require.NoError(t, err)
	require.Len(t, full.Signups, 1)
	assert.Equal(t, "Mila van Member", full.Signups[0].FullName)
	assert.Equal(t, "Yes", full.Signups[0].Values["f-veg"])

	countOnly, err := f.svc.ListSignups(ctx, acl.Guest, "act-1", "list-1", i18n.English)
	require.NoError(t, err)
	assert.Empty(t, countOnly.Signups)
	require.NotNil(t, countOnly.Count)
	assert.Equal(t, 1, *countOnly.Count)
}

func TestSignupForm(t *testing.T) {
	f := newFixture()
	seedOpenActivity(t, f, false)
	form, err := f.svc.SignupForm(context.Background(), acl.Guest, "act-1", "list-1", true, i18n.Dutch)
	require.NoError(t, err)
	assert.Equal(t, "Inschrijving", form.Name)
	require.Len(t, form.Elements, 3)
	assert.Equal(t, "fullName", form.Elements[0].Name)
	veg := form.Elements[2]
	assert.Equal(t, "radio", veg.Type)
	assert.Equal(t, "Vega", veg.Label)
	assert.Equal(t, []dto.FormOption{{Value: "1", Label: "Ja"}, {Value: "0", Label: "Nee"}}, veg.Options)
}

func TestExport(t *testing.T) {
	f := newFixture()
	seedOpenActivity(t, f, true)
	ctx := context.Background()
	_, err := f.svc.SignUp(ctx, member, "act-1", "list-1", map[string]string{"f-veg": "0"}, i18n.English)
	require.NoError(t, err)

	_, err = f.svc.Export(ctx, member, "act-1", "list-1", i18n.English)
	assert.True(t, errors.Is(err, domain.ErrNotAllowed))

	out, err := f.svc.Export(ctx, admin, "act-1", "list-1", i18n.English)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF"), out)
	assert.Equal(t, []string{"Name", "Vegetarian"}, f.exporter.sheet.Columns)
	assert.Equal(t, [][]string{{"Mila van Member", "No"}}, f.exporter.sheet.Rows)
}

func TestFeed(t *testing.T) {
	f := newFixture()
	seedOpenActivity(t, f, true)
	out, err := f.svc.Feed(context.Background(), acl.Guest, "https://gewis.nl/", i18n.English)
	require.NoError(t, err)
	assert.Equal(t, "<feed/>", string(out))
	require.Len(t, f.feed.feed.Entries, 1)
	assert.Equal(t, "https://gewis.nl/activity/view/act-1", f.feed.feed.Entries[0].Link)
	assert.Equal(t, "GEWIS activities", f.feed.feed.Title)
}

func TestToResponse_KeepsBothLanguages(t *testing.T) {
	f := newFixture()
	a, _ := seedOpenActivity(t, f, true)
	r := ToResponse(a)
	require.NotNil(t, r.Name)
	require.NotNil(t, r.NameEn)
	assert.Equal(t, "Borrel", *r.Name)
	assert.Equal(t, "Drinks", *r.NameEn)
	assert.Nil(t, r.LocationEn)
	assert.Equal(t, "approved", r.Status)
}

func TestToSignupResponse(t *testing.T) {
	yes, opt := "1", "opt-1"
	lidnr := 9000
	r := ToSignupResponse(&entity.Signup{
		ID:       "s1",
		Kind:     entity.SignupUser,
		MemberID: &lidnr,
		Values: []entity.SignupFieldValue{
			{FieldID: "f1", Value: &yes},
			{FieldID: "f2", OptionID: &opt},
			{FieldID: "f3"},
		},
	})
	assert.Equal(t, "user", r.Kind)
	assert.Equal(t, map[string]string{"f1": "1", "f2": "opt-1"}, r.Values)
	require.NotNil(t, r.LidNr)
	assert.Equal(t, 9000, *r.LidNr)
}
