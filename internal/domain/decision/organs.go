// Package decision derives state from the append-only decision ledger.
package decision

import (
	"sort"
	"time"

	"github.com/gewis/gewisweb-api/internal/domain/entity"
)

// ReconstructOrgans replays the sub-decisions in date order and returns every organ ever founded,
// sorted by abbreviation. Sub-decisions that reference unknown foundations or installations are
// ignored.
func ReconstructOrgans(subs []entity.SubDecision) []*entity.Organ {
	ordered := make([]entity.SubDecision, len(subs))
	copy(ordered, subs)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Date.Before(ordered[j].Date)
	})

	organs := map[entity.SubDecisionRef]*entity.Organ{}
	type installation struct {
		organ *entity.Organ
		index int
	}
	installs := map[entity.SubDecisionRef]installation{}

	for _, s := range ordered {
		switch s.Kind {
		case entity.SubFoundation:
			organs[s.Ref()] = &entity.Organ{
				Abbr:           s.Abbr,
				Name:           s.OrganName,
				Type:           s.OrganType,
				Foundation:     s.Ref(),
				FoundationDate: s.Date,
			}
		case entity.SubAbrogation:
			if s.FoundationRef == nil {
				continue
			}
			if o, ok := organs[*s.FoundationRef]; ok && o.AbrogationDate == nil {
				d := s.Date
				o.AbrogationDate = &d
			}
		case entity.SubInstallation:
			if s.FoundationRef == nil || s.MemberID == nil {
				continue
			}
			o, ok := organs[*s.FoundationRef]
			if !ok {
				continue
			}
			o.Members = append(o.Members, entity.OrganMember{
				MemberID:    *s.MemberID,
				Function:    s.Function,
				InstallDate: s.Date,
			})
			installs[s.Ref()] = installation{organ: o, index: len(o.Members) - 1}
		case entity.SubDischarge, entity.SubRelease:
			if s.InstallationRef == nil {
				continue
			}
			in, ok := installs[*s.InstallationRef]
			if !ok {
				continue
			}
			m := &in.organ.Members[in.index]
			if m.DischargeDate == nil {
				d := s.Date
				m.DischargeDate = &d
			}
		}
	}

	out := make([]*entity.Organ, 0, len(organs))
	for _, o := range organs {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Abbr == out[j].Abbr {
			return out[i].FoundationDate.Before(out[j].FoundationDate)
		}
		return out[i].Abbr < out[j].Abbr
	})
	return out
}

// ActiveOrgans filters organs existing at now.
func ActiveOrgans(organs []*entity.Organ, now time.Time) []*entity.Organ {
	var out []*entity.Organ
	for _, o := range organs {
		if o.IsActive(now) {
			out = append(out, o)
		}
	}
	return out
}

// CurrentMembers returns the installations of o still running at now.
func CurrentMembers(o *entity.Organ, now time.Time) []entity.OrganMember {
	var out []entity.OrganMember
	for _, m := range o.Members {
		if m.IsCurrent(now) {
			out = append(out, m)
		}
	}
	return out
}
