package entity

import "time"

// MeetingType of a governance meeting.
type MeetingType string

const (
	MeetingBV   MeetingType = "BV"   // bestuursvergadering
	MeetingAV   MeetingType = "AV"   // algemene ledenvergadering
	MeetingVV   MeetingType = "VV"   // voorzittersvergadering
	MeetingVirt MeetingType = "Virt" // virtual meeting
)

// Meeting is one held meeting; decisions are numbered within it.
type Meeting struct {
	Type   MeetingType
	Number int
	Date   time.Time
}

// Decision is a numbered decision taken at a meeting, split into sub-decisions.
type Decision struct {
	MeetingType   MeetingType
	MeetingNumber int
	Point         int
	Number        int
	Content       string
	SubDecisions  []SubDecision
}

// SubDecisionKind discriminates the typed parts of a decision.
type SubDecisionKind string

const (
	SubFoundation   SubDecisionKind = "foundation"
	SubAbrogation   SubDecisionKind = "abrogation"
	SubInstallation SubDecisionKind = "installation"
	SubDischarge    SubDecisionKind = "discharge"
	SubRelease      SubDecisionKind = "release"
	SubBudget       SubDecisionKind = "budget"
	SubReckoning    SubDecisionKind = "reckoning"
	SubOther        SubDecisionKind = "other"
)

// SubDecision is one typed, append-only ledger entry.
// Foundation: Abbr, OrganName, OrganType. Abrogation: FoundationRef.
// Installation: FoundationRef, MemberID, Function. Discharge/Release: InstallationRef.
type SubDecision struct {
	MeetingType     MeetingType
	MeetingNumber   int
	DecisionPoint   int
	DecisionNumber  int
	Number          int
	Kind            SubDecisionKind
	Date            time.Time
	Content         string
	Abbr            string
	OrganName       string
	OrganType       string
	FoundationRef   *SubDecisionRef
	InstallationRef *SubDecisionRef
	MemberID        *int
	Function        string
}

// Ref returns the reference identifying s.
func (s SubDecision) Ref() SubDecisionRef {
	return SubDecisionRef{
		MeetingType:    s.MeetingType,
		MeetingNumber:  s.MeetingNumber,
		DecisionPoint:  s.DecisionPoint,
		DecisionNumber: s.DecisionNumber,
		Number:         s.Number,
	}
}

// SubDecisionRef is the composite key of a sub-decision.
type SubDecisionRef struct {
	MeetingType    MeetingType
	MeetingNumber  int
	DecisionPoint  int
	DecisionNumber int
	Number         int
}

// Organ is a committee, fraternity or other sub-unit, reconstructed from the ledger.
type Organ struct {
	Abbr           string
	Name           string
	Type           string
	Foundation     SubDecisionRef
	FoundationDate time.Time
	AbrogationDate *time.Time
	Members        []OrganMember
}

// IsActive reports whether the organ exists at now.
func (o *Organ) IsActive(now time.Time) bool {
	return !now.Before(o.FoundationDate) && (o.AbrogationDate == nil || now.Before(*o.AbrogationDate))
}

// OrganMember is an installation of a member in an organ.
type OrganMember struct {
	MemberID      int
	Function      string
	InstallDate   time.Time
	DischargeDate *time.Time
}

// IsCurrent reports whether the installation is still running at now.
func (m OrganMember) IsCurrent(now time.Time) bool {
	return m.DischargeDate == nil || now.Before(*m.DischargeDate)
}
