// Package organ lists the organs of the association as recorded in the decision ledger.
package organ

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gewis/gewisweb-api/internal/application/dto"
	"github.com/gewis/gewisweb-api/internal/domain"
	"github.com/gewis/gewisweb-api/internal/domain/decision"
	"github.com/gewis/gewisweb-api/internal/domain/entity"
	"github.com/gewis/gewisweb-api/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// Service reconstructs organs from sub-decisions on every call; the ledger is small and append-only.
type Service struct {
	decisions repository.DecisionRepository
	members   repository.MemberRepository
	now       func() time.Time
}

// NewService builds the service. A nil clock uses time.Now.
func NewService(decisions repository.DecisionRepository, members repository.MemberRepository, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{decisions: decisions, members: members, now: now}
}

// ListActive returns the organs existing now, by abbreviation.
func (s *Service) ListActive(ctx context.Context) ([]dto.OrganResponse, error) {
	organs, err := s.reconstruct(ctx)
	if err != nil {
		return nil, err
	}
	active := decision.ActiveOrgans(organs, s.now())
	out := make([]dto.OrganResponse, 0, len(active))
	for _, o := range active {
		out = append(out, toOrganResponse(o))
	}
	return out, nil
}

// Get returns an organ (also abrogated ones) with its current members.
func (s *Service) Get(ctx context.Context, abbr string) (*dto.OrganResponse, error) {
	organs, err := s.reconstruct(ctx)
	if err != nil {
		return nil, err
	}
	for _, o := range organs {
		if !strings.EqualFold(o.Abbr, abbr) {
			continue
		}
		current := decision.CurrentMembers(o, s.now())
		names, err := s.memberNames(ctx, current)
		if err != nil {
			return nil, err
		}
		r := toOrganResponse(o)
		for _, m := range current {
			r.Members = append(r.Members, dto.OrganMemberResponse{LidNr: m.MemberID, FullName: names[m.MemberID], Function: m.Function})
		}
		return &r, nil
	}
	return nil, fmt.Errorf("organ %s: %w", abbr, domain.ErrNotFound)
}

func (s *Service) reconstruct(ctx context.Context) ([]*entity.Organ, error) {
	subs, err := s.decisions.ListSubDecisions(ctx)
	if err != nil {
		return nil, err
	}
	return decision.ReconstructOrgans(subs), nil
}

func (s *Service) memberNames(ctx context.Context, current []entity.OrganMember) (map[int]string, error) {
	names := map[int]string{}
	if len(current) == 0 || s.members == nil {
		return names, nil
	}
	ids := make([]int, 0, len(current))
	for _, m := range current {
		ids = append(ids, m.MemberID)
	}
	members, err := s.members.GetByLidNrs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for id, m := range members {
		names[id] = m.FullName()
	}
	return names, nil
}

func toOrganResponse(o *entity.Organ) dto.OrganResponse {
	r := dto.OrganResponse{
		Abbr:           o.Abbr,
		Name:           o.Name,
		Type:           o.Type,
		FoundationDate: o.FoundationDate.Format(dateLayout),
	}
	if o.AbrogationDate != nil {
		d := o.AbrogationDate.Format(dateLayout)
		r.AbrogationDate = &d
	}
	return r
}
