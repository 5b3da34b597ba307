package decision_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gewis/gewisweb-api/internal/domain/decision"
	"github.com/gewis/gewisweb-api/internal/domain/entity"
)

func day(d int) time.Time { return time.Date(2020, 1, d, 0, 0, 0, 0, time.UTC) }

func ref(meeting, point, number, sub int) entity.SubDecisionRef {
	return entity.SubDecisionRef{MeetingType: entity.MeetingBV, MeetingNumber: meeting, DecisionPoint: point, DecisionNumber: number, Number: sub}
}

func sub(r entity.SubDecisionRef, kind entity.SubDecisionKind, date time.Time) entity.SubDecision {
	return entity.SubDecision{
		MeetingType: r.MeetingType, MeetingNumber: r.MeetingNumber,
		DecisionPoint: r.DecisionPoint, DecisionNumber: r.DecisionNumber, Number: r.Number,
		Kind: kind, Date: date,
	}
}

func TestReconstructOrgans(t *testing.T) {
	foundAC := sub(ref(1, 1, 1, 1), entity.SubFoundation, day(1))
	foundAC.Abbr, foundAC.OrganName, foundAC.OrganType = "ACDC", "Activiteiten Committee", "committee"

	foundOld := sub(ref(1, 1, 2, 1), entity.SubFoundation, day(1))
	foundOld.Abbr, foundOld.OrganName = "OLD", "Opgeheven"

	lid := 8000
	install := sub(ref(2, 1, 1, 1), entity.SubInstallation, day(5))
	fr := foundAC.Ref()
	install.FoundationRef, install.MemberID, install.Function = &fr, &lid, "Voorzitter"

	lid2 := 8001
	install2 := sub(ref(2, 1, 1, 2), entity.SubInstallation, day(5))
	install2.FoundationRef, install2.MemberID, install2.Function = &fr, &lid2, "Lid"

	ir := install2.Ref()
	discharge := sub(ref(3, 1, 1, 1), entity.SubDischarge, day(10))
	discharge.InstallationRef = &ir

	oldRef := foundOld.Ref()
	abrogation := sub(ref(3, 1, 2, 1), entity.SubAbrogation, day(10))
	abrogation.FoundationRef = &oldRef

	unknown := entity.SubDecisionRef{MeetingNumber: 99}
	dangling := sub(ref(4, 1, 1, 1), entity.SubAbrogation, day(11))
	dangling.FoundationRef = &unknown

	// deliberately out of date order
	organs := decision.ReconstructOrgans([]entity.SubDecision{discharge, abrogation, install, install2, foundAC, foundOld, dangling})
	require.Len(t, organs, 2)
	assert.Equal(t, "ACDC", organs[0].Abbr)
	assert.Equal(t, "OLD", organs[1].Abbr)

	active := decision.ActiveOrgans(organs, day(12))
	require.Len(t, active, 1)
	assert.Equal(t, "ACDC", active[0].Abbr)

	assert.Len(t, decision.ActiveOrgans(organs, day(2)), 2)

	members := decision.CurrentMembers(active[0], day(12))
	require.Len(t, members, 1)
	assert.Equal(t, 8000, members[0].MemberID)
	assert.Equal(t, "Voorzitter", members[0].Function)
	assert.Len(t, decision.CurrentMembers(active[0], day(6)), 2)
}
