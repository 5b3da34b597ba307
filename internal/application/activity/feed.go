package activity

import (
	"context"
	"errors"
	"strings"

	"github.com/gewis/gewisweb-api/internal/application/ports"
	"github.com/gewis/gewisweb-api/internal/domain/acl"
	"github.com/gewis/gewisweb-api/internal/domain/i18n"
)

var errNoFeedRenderer = errors.New("activity feed renderer not configured")

var feedTitles = map[i18n.Locale]string{
	i18n.Dutch:   "GEWIS activiteiten",
	i18n.English: "GEWIS activities",
}

// Feed renders the upcoming approved activities in l. baseURL is the public site root.
func (s *Service) Feed(ctx context.Context, p acl.Principal, baseURL string, l i18n.Locale) ([]byte, error) {
	if s.feed == nil {
		return nil, errNoFeedRenderer
	}
	list, err := s.Upcoming(ctx, p, l)
	if err != nil {
		return nil, err
	}
	base := strings.TrimRight(baseURL, "/")
	f := ports.Feed{
		ID:      base + "/activity",
		Title:   feedTitles[l],
		Link:    base + "/activity",
		Locale:  l,
		Updated: s.now(),
	}
	for _, t := range list {
		f.Entries = append(f.Entries, ports.FeedEntry{
			ID:        "urn:uuid:" + t.ID,
			Title:     t.Name,
			Summary:   t.Description,
			Link:      base + "/activity/view/" + t.ID,
			Location:  t.Location,
			BeginTime: t.BeginTime,
			EndTime:   t.EndTime,
			Updated:   t.BeginTime,
		})
	}
	return s.feed.Render(f)
}
