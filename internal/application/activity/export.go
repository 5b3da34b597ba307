package activity

import (
	"context"
	"errors"

	"github.com/gewis/gewisweb-api/internal/application/ports"
	"github.com/gewis/gewisweb-api/internal/domain/acl"
	"github.com/gewis/gewisweb-api/internal/domain/i18n"
)

var errNoExporter = errors.New("signup exporter not configured")

var nameColumn = map[i18n.Locale]string{
	i18n.Dutch:   "Naam",
	i18n.English: "Name",
}

// Export renders the participants of a list with their answers.
func (s *Service) Export(ctx context.Context, p acl.Principal, activityID, listID string, l i18n.Locale) ([]byte, error) {
	if err := s.require(p, l, acl.ResourceActivity, acl.ActionExport, i18n.MsgNotAllowedExport); err != nil {
		return nil, err
	}
	if s.exporter == nil {
		return nil, errNoExporter
	}
	a, list, err := s.loadList(ctx, activityID, listID)
	if err != nil {
		return nil, err
	}
	signups, names, err := s.participants(ctx, list.ID)
	if err != nil {
		return nil, err
	}

	sheet := ports.SignupSheet{
		Locale:       l,
		ActivityName: a.Name.String(l),
		ListName:     list.Name.String(l),
		Location:     a.Location.String(l),
		BeginTime:    a.BeginTime.In(s.loc),
		EndTime:      a.EndTime.In(s.loc),
		Columns:      []string{nameColumn[l]},
		GeneratedAt:  s.now().In(s.loc),
	}
	for _, f := range list.Fields {
		sheet.Columns = append(sheet.Columns, f.Name.String(l))
	}
	for _, su := range signups {
		row := []string{memberName(su, names)}
		answers := valuesByField(su.Values)
		for _, f := range list.Fields {
			v, ok := answers[f.ID]
			if !ok {
				row = append(row, "")
				continue
			}
			row = append(row, displayValue(f, v, l))
		}
		sheet.Rows = append(sheet.Rows, row)
	}
	s.log.Info().Str("activity_id", a.ID).Str("list_id", list.ID).Int("rows", len(sheet.Rows)).Msg("signup list exported")
	return s.exporter.Export(ctx, sheet)
}
