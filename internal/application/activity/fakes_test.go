package activity

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/gewis/gewisweb-api/internal/application/ports"
	"github.com/gewis/gewisweb-api/internal/domain"
	"github.com/gewis/gewisweb-api/internal/domain/acl"
	"github.com/gewis/gewisweb-api/internal/domain/entity"
	"github.com/gewis/gewisweb-api/internal/domain/repository"
)

type fakeActivities struct {
	mu   sync.Mutex
	byID map[string]*entity.Activity
}

func newFakeActivities() *fakeActivities {
	return &fakeActivities{byID: map[string]*entity.Activity{}}
}

func (f *fakeActivities) Create(_ context.Context, a *entity.Activity) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byID[a.ID]; ok {
		return domain.ErrDuplicate
	}
	f.byID[a.ID] = a
	return nil
}

func (f *fakeActivities) GetByID(_ context.Context, id string) (*entity.Activity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	c := *a
	return &c, nil
}

func (f *fakeActivities) UpdateStatus(_ context.Context, a *entity.Activity) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.byID[a.ID]
	if !ok {
		return domain.ErrNotFound
	}
	stored.Status = a.Status
	stored.ApproverID = a.ApproverID
	stored.UpdatedAt = a.UpdatedAt
	return nil
}

func (f *fakeActivities) ListByStatus(_ context.Context, status entity.ActivityStatus) ([]*entity.Activity, error) {
	return f.filter(func(a *entity.Activity) bool { return a.Status == status }), nil
}

func (f *fakeActivities) ListUpcoming(_ context.Context, now time.Time) ([]*entity.Activity, error) {
	return f.filter(func(a *entity.Activity) bool {
		return a.Status == entity.StatusApproved && a.EndTime.After(now)
	}), nil
}

func (f *fakeActivities) ListApprovedBetween(_ context.Context, from, to time.Time) ([]*entity.Activity, error) {
	return f.filter(func(a *entity.Activity) bool {
		return a.Status == entity.StatusApproved && !a.BeginTime.Before(from) && a.BeginTime.Before(to)
	}), nil
}

func (f *fakeActivities) filter(keep func(a *entity.Activity) bool) []*entity.Activity {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Activity
	for _, a := range f.byID {
		if keep(a) {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].BeginTime.Before(out[j].BeginTime) })
	return out
}

// fakeSignups enforces the (list, member) uniqueness the schema enforces.
type fakeSignups struct {
	mu      sync.Mutex
	signups []*entity.Signup
}

func (f *fakeSignups) Create(_ context.Context, s *entity.Signup) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if s.MemberID != nil {
		for _, e := range f.signups {
			if e.SignupListID == s.SignupListID && e.MemberID != nil && *e.MemberID == *s.MemberID {
				return domain.ErrDuplicate
			}
		}
	}
	f.signups = append(f.signups, s)
	return nil
}

func (f *fakeSignups) FindByMember(_ context.Context, listID string, memberID int) (*entity.Signup, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, e := range f.signups {
		if e.SignupListID == listID && e.MemberID != nil && *e.MemberID == memberID {
			return e, nil
		}
	}
	return nil, nil
}

func (f *fakeSignups) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, e := range f.signups {
		if e.ID == id {
			f.signups = append(f.signups[:i], f.signups[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeSignups) ListByList(_ context.Context, listID string) ([]*entity.Signup, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Signup
	for _, e := range f.signups {
		if e.SignupListID == listID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeSignups) CountByList(ctx context.Context, listID string) (int, error) {
	list, _ := f.ListByList(ctx, listID)
	return len(list), nil
}

type fakeMembers struct {
	byID map[int]*entity.Member
}

func (f *fakeMembers) GetByLidNr(_ context.Context, lidnr int) (*entity.Member, error) {
	return f.byID[lidnr], nil
}

func (f *fakeMembers) GetByEmail(_ context.Context, email string) (*entity.Member, error) {
	for _, m := range f.byID {
		if m.Email == email {
			return m, nil
		}
	}
	return nil, nil
}

func (f *fakeMembers) GetByLidNrs(_ context.Context, lidnrs []int) (map[int]*entity.Member, error) {
	out := map[int]*entity.Member{}
	for _, id := range lidnrs {
		if m, ok := f.byID[id]; ok {
			out[id] = m
		}
	}
	return out, nil
}

func (f *fakeMembers) UpdatePassword(_ context.Context, lidnr int, hash string) error {
	if m, ok := f.byID[lidnr]; ok {
		m.PasswordHash = hash
	}
	return nil
}

type fakeTx struct {
	activities repository.ActivityRepository
	signups    repository.SignupRepository
}

func (t fakeTx) RunActivity(_ context.Context, fn func(repository.ActivityRepository, repository.SignupRepository) error) error {
	return fn(t.activities, t.signups)
}

type fakeNotifier struct {
	mu      sync.Mutex
	created []string
	err     error
}

func (n *fakeNotifier) ActivityCreated(_ context.Context, a *entity.Activity, _ *entity.Member) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.created = append(n.created, a.ID)
	return n.err
}

type fakeCaptcha struct {
	answers map[string]string
}

func (c *fakeCaptcha) Issue(context.Context) (*ports.Challenge, error) {
	c.answers["c1"] = "7"
	return &ports.Challenge{ID: "c1", Question: "3 + 4"}, nil
}

func (c *fakeCaptcha) Verify(_ context.Context, id, answer string) (bool, error) {
	want, ok := c.answers[id]
	delete(c.answers, id)
	return ok && want == answer, nil
}

type fakeExporter struct {
	sheet ports.SignupSheet
}

func (e *fakeExporter) Export(_ context.Context, sheet ports.SignupSheet) ([]byte, error) {
	e.sheet = sheet
	return []byte("%PDF"), nil
}

type fakeFeed struct {
	feed ports.Feed
}

func (r *fakeFeed) Render(f ports.Feed) ([]byte, error) {
	r.feed = f
	return []byte("<feed/>"), nil
}

var (
	now     = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	creator = acl.Principal{MemberID: 8000, Role: acl.RoleActiveMember}
	admin   = acl.Principal{MemberID: 1, Role: acl.RoleAdmin}
	member  = acl.Principal{MemberID: 9000, Role: acl.RoleUser}
)

type fixture struct {
	svc        *Service
	activities *fakeActivities
	signups    *fakeSignups
	notifier   *fakeNotifier
	captcha    *fakeCaptcha
	exporter   *fakeExporter
	feed       *fakeFeed
}

func newFixture() *fixture {
	f := &fixture{
		activities: newFakeActivities(),
		signups:    &fakeSignups{},
		notifier:   &fakeNotifier{},
		captcha:    &fakeCaptcha{answers: map[string]string{}},
		exporter:   &fakeExporter{},
		feed:       &fakeFeed{},
	}
	members := &fakeMembers{byID: map[int]*entity.Member{
		8000: {LidNr: 8000, FirstName: "Cora", LastName: "Creator", Role: acl.RoleActiveMember},
		9000: {LidNr: 9000, FirstName: "Mila", MiddleName: "van", LastName: "Member", Role: acl.RoleUser},
	}}
	f.svc = NewService(Deps{
		Activities: f.activities,
		Signups:    f.signups,
		Members:    members,
		Tx:         fakeTx{activities: f.activities, signups: f.signups},
		Notifier:   f.notifier,
		Captcha:    f.captcha,
		Exporter:   f.exporter,
		Feed:       f.feed,
		Location:   time.UTC,
		Logger:     zerolog.Nop(),
		Now:        func() time.Time { return now },
	})
	return f
}
