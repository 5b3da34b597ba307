package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gewis/gewisweb-api/internal/application/activity"
	"github.com/gewis/gewisweb-api/internal/application/auth"
	"github.com/gewis/gewisweb-api/internal/application/company"
	"github.com/gewis/gewisweb-api/internal/application/dto"
	"github.com/gewis/gewisweb-api/internal/application/organ"
	"github.com/gewis/gewisweb-api/internal/application/validation"
	"github.com/gewis/gewisweb-api/internal/domain/entity"
	"github.com/gewis/gewisweb-api/internal/domain/i18n"
	apphttp "github.com/gewis/gewisweb-api/internal/interfaces/http"
)

var testNow = time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)

type fakeActivities struct {
	mu       sync.Mutex
	byID     map[string]*entity.Activity
	upcoming int
}

func (f *fakeActivities) Create(_ context.Context, a *entity.Activity) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.byID[a.ID] = a
	return nil
}

func (f *fakeActivities) GetByID(_ context.Context, id string) (*entity.Activity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.byID[id], nil
}

func (f *fakeActivities) UpdateStatus(context.Context, *entity.Activity) error { return nil }

func (f *fakeActivities) ListByStatus(_ context.Context, s entity.ActivityStatus) ([]*entity.Activity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Activity
	for _, a := range f.byID {
		if a.Status == s {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeActivities) ListUpcoming(ctx context.Context, now time.Time) ([]*entity.Activity, error) {
	f.mu.Lock()
	f.upcoming++
	f.mu.Unlock()
	list, _ := f.ListByStatus(ctx, entity.StatusApproved)
	var out []*entity.Activity
	for _, a := range list {
		if a.EndTime.After(now) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeActivities) ListApprovedBetween(context.Context, time.Time, time.Time) ([]*entity.Activity, error) {
	return nil, nil
}

type noDecisions struct{}

func (noDecisions) ListSubDecisions(context.Context) ([]entity.SubDecision, error) { return nil, nil }

type noMembers struct{}

func (noMembers) GetByLidNr(context.Context, int) (*entity.Member, error)    { return nil, nil }
func (noMembers) GetByEmail(context.Context, string) (*entity.Member, error) { return nil, nil }
func (noMembers) UpdatePassword(context.Context, int, string) error          { return nil }
func (noMembers) GetByLidNrs(context.Context, []int) (map[int]*entity.Member, error) {
	return map[int]*entity.Member{}, nil
}

func newTestRouter(t *testing.T) (*fiber.App, *fakeActivities) {
	t.Helper()
	acts := &fakeActivities{byID: map[string]*entity.Activity{
		"act-1": {
			ID:        "act-1",
			Name:      i18n.FromStrings("Borrel", "Drinks"),
			Location:  i18n.FromStrings("Zaal", ""),
			BeginTime: testNow.Add(24 * time.Hour),
			EndTime:   testNow.Add(28 * time.Hour),
			Status:    entity.StatusApproved,
			CreatorID: 8000,
		},
		"act-2": {
			ID:        "act-2",
			Name:      i18n.FromStrings("Geheim", ""),
			BeginTime: testNow.Add(48 * time.Hour),
			EndTime:   testNow.Add(50 * time.Hour),
			Status:    entity.StatusToApprove,
			CreatorID: 8000,
		},
	}}
	log := zerolog.Nop()
	v := validation.New()
	now := func() time.Time { return testNow }

	activities := activity.NewService(activity.Deps{
		Activities: acts,
		Members:    noMembers{},
		Validator:  v,
		Logger:     log,
		Now:        now,
	})
	companies := company.NewService(nil, nil, nil, nil, v, time.UTC, log, now)
	organs := organ.NewService(noDecisions{}, noMembers{}, now)
	authUC := auth.NewAuthUseCase(noMembers{}, auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: 60, Issuer: testIssuer})

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		Activities:    apphttp.NewActivityHandler(activities, "https://gewis.nl", log),
		Signups:       apphttp.NewSignupHandler(activities, log),
		Kiosk:         apphttp.NewKioskHandler(activities, time.Minute, log),
		Companies:     apphttp.NewCompanyHandler(companies, log),
		Organs:        apphttp.NewOrganHandler(organs, log),
		Auth:          apphttp.NewAuthHandler(authUC, v, log),
		JWTSecret:     testJWTSecret,
		DefaultLocale: i18n.Dutch,
	})
	return app, acts
}

func call(t *testing.T, app *fiber.App, method, target, auth string, body string) *http.Response {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestRouter_GetTranslatedActivity(t *testing.T) {
	app, _ := newTestRouter(t)

	resp := call(t, app, http.MethodGet, "/api/activities/act-1?lang=en", "", "")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.ActivityTranslationResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Drinks", body.Name)
}

func TestRouter_UnapprovedIsHiddenFromGuests(t *testing.T) {
	app, _ := newTestRouter(t)

	resp := call(t, app, http.MethodGet, "/api/activities/act-2", "", "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRouter_StatusListNotAllowed(t *testing.T) {
	app, _ := newTestRouter(t)

	resp := call(t, app, http.MethodGet, "/api/activities/unapproved", tokenFor(t, 9000, "user"), "")
	defer resp.Body.Close()
	require.Equal(t, http.StatusForbidden, resp.StatusCode)

	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "NOT_ALLOWED", body.Code)
	assert.Equal(t, "Je mag niet goedgekeurde activiteiten niet bekijken", body.Message)
}

func TestRouter_StatusListForAdmin(t *testing.T) {
	app, _ := newTestRouter(t)

	resp := call(t, app, http.MethodGet, "/api/activities/unapproved", tokenFor(t, 1, "admin"), "")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.ListResponse[dto.ActivityResponse]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, 1, body.Total)
	assert.Equal(t, "act-2", body.Items[0].ID)
}

func TestRouter_KioskListIsCached(t *testing.T) {
	app, acts := newTestRouter(t)

	first := call(t, app, http.MethodGet, "/api/activity_api/list", "", "")
	first.Body.Close()
	second := call(t, app, http.MethodGet, "/api/activity_api/list", "", "")
	defer second.Body.Close()

	assert.Equal(t, "MISS", first.Header.Get("X-Cache"))
	assert.Equal(t, "HIT", second.Header.Get("X-Cache"))
	assert.Equal(t, 1, acts.upcoming)

	var items []dto.ActivityResponse
	require.NoError(t, json.NewDecoder(second.Body).Decode(&items))
	require.Len(t, items, 1)
	require.NotNil(t, items[0].NameEn)
	assert.Equal(t, "Drinks", *items[0].NameEn)
}

func TestRouter_SignupRequiresMember(t *testing.T) {
	app, _ := newTestRouter(t)

	resp := call(t, app, http.MethodPost, "/api/activities/act-1/lists/l1/signup?lang=en", "", "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "You need to be logged in to sign up", body.Message)
}

func TestRouter_LoginValidation(t *testing.T) {
	app, _ := newTestRouter(t)

	resp := call(t, app, http.MethodPost, "/api/auth/login", "", `{"email":"not-an-email"}`)
	defer resp.Body.Close()
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var body dto.ValidationErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Contains(t, body.Fields, "email")
	assert.Contains(t, body.Fields, "password")
}

func TestRouter_LoginUnknownMember(t *testing.T) {
	app, _ := newTestRouter(t)

	resp := call(t, app, http.MethodPost, "/api/auth/login?lang=en", "", `{"email":"a@gewis.nl","password":"secret"}`)
	defer resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Invalid email address or password", body.Message)
}

func TestRouter_UnknownOrgan(t *testing.T) {
	app, _ := newTestRouter(t)

	resp := call(t, app, http.MethodGet, "/api/organs/NOPE", "", "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
