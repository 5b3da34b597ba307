package postgres

import (
	"context"
	"fmt"

	"github.com/gewis/gewisweb-api/internal/domain/entity"
	"github.com/gewis/gewisweb-api/internal/domain/repository"
)

var _ repository.DecisionRepository = (*DecisionRepo)(nil)

// DecisionRepo reads the sub-decision ledger. Rows are never updated.
type DecisionRepo struct {
	q Querier
}

func NewDecisionRepository(q Querier) *DecisionRepo {
	return &DecisionRepo{q: q}
}

// ListSubDecisions returns the ledger in chronological order.
func (r *DecisionRepo) ListSubDecisions(ctx context.Context) ([]entity.SubDecision, error) {
	rows, err := r.q.Query(ctx, `
		SELECT meeting_type, meeting_number, decision_point, decision_number, number, kind, date, content,
			abbr, organ_name, organ_type,
			ref_meeting_type, ref_meeting_number, ref_decision_point, ref_decision_number, ref_number,
			member_id, function
		FROM sub_decisions
		ORDER BY date, meeting_type, meeting_number, decision_point, decision_number, number`)
	if err != nil {
		return nil, fmt.Errorf("list sub decisions: %w", err)
	}
	defer rows.Close()

	var list []entity.SubDecision
	for rows.Next() {
		var (
			s                            entity.SubDecision
			meetingType, kind            string
			refType                      *string
			refMeeting, refPoint, refDec *int
			refNumber                    *int
		)
		if err := rows.Scan(&meetingType, &s.MeetingNumber, &s.DecisionPoint, &s.DecisionNumber, &s.Number,
			&kind, &s.Date, &s.Content, &s.Abbr, &s.OrganName, &s.OrganType,
			&refType, &refMeeting, &refPoint, &refDec, &refNumber,
			&s.MemberID, &s.Function); err != nil {
			return nil, fmt.Errorf("scan sub decision: %w", err)
		}
		s.MeetingType = entity.MeetingType(meetingType)
		s.Kind = entity.SubDecisionKind(kind)
		if refType != nil && refMeeting != nil && refPoint != nil && refDec != nil && refNumber != nil {
			ref := &entity.SubDecisionRef{
				MeetingType:    entity.MeetingType(*refType),
				MeetingNumber:  *refMeeting,
				DecisionPoint:  *refPoint,
				DecisionNumber: *refDec,
				Number:         *refNumber,
			}
			// Discharges and releases point at an installation, the other kinds at a foundation.
			switch s.Kind {
			case entity.SubDischarge, entity.SubRelease:
				s.InstallationRef = ref
			default:
				s.FoundationRef = ref
			}
		}
		list = append(list, s)
	}
	return list, rows.Err()
}
