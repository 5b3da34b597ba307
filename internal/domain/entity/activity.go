package entity

import (
	"fmt"
	"time"

	"github.com/gewis/gewisweb-api/internal/domain"
	"github.com/gewis/gewisweb-api/internal/domain/i18n"
	"github.com/gewis/gewisweb-api/internal/domain/period"
)

// ActivityStatus values (must match the CHECK on activities.status).
type ActivityStatus int

const (
	StatusToApprove   ActivityStatus = 1
	StatusApproved    ActivityStatus = 2
	StatusDisapproved ActivityStatus = 3
)

func (s ActivityStatus) String() string {
	switch s {
	case StatusToApprove:
		return "to_approve"
	case StatusApproved:
		return "approved"
	case StatusDisapproved:
		return "disapproved"
	}
	return fmt.Sprintf("status(%d)", int(s))
}

// activityTransitions: key is the current status, value the reachable ones.
// APPROVED and DISAPPROVED only go back through a reset.
var activityTransitions = map[ActivityStatus][]ActivityStatus{
	StatusToApprove:   {StatusApproved, StatusDisapproved},
	StatusApproved:    {StatusToApprove},
	StatusDisapproved: {StatusToApprove},
}

// CanTransition reports whether from -> to is a legal status change.
func CanTransition(from, to ActivityStatus) bool {
	for _, s := range activityTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Activity is an event organised by (a sub-unit of) the association.
type Activity struct {
	ID                   string
	Name                 i18n.Text
	Location             i18n.Text
	Costs                i18n.Text
	Description          i18n.Text
	BeginTime            time.Time
	EndTime              time.Time
	SubscriptionDeadline *time.Time
	CanSignUp            bool
	OnlyGEWIS            bool
	Status               ActivityStatus
	CreatorID            int
	ApproverID           *int
	OrganID              *string
	SignupLists          []*SignupList
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// Window returns the [BeginTime, EndTime) interval of the activity.
func (a *Activity) Window() period.Window {
	return period.New(a.BeginTime, a.EndTime)
}

// Approve moves the activity to APPROVED and records the approver.
func (a *Activity) Approve(approverID int, now time.Time) error {
	if err := a.transition(StatusApproved, now); err != nil {
		return err
	}
	a.ApproverID = &approverID
	return nil
}

// Disapprove moves the activity to DISAPPROVED and records the approver.
func (a *Activity) Disapprove(approverID int, now time.Time) error {
	if err := a.transition(StatusDisapproved, now); err != nil {
		return err
	}
	a.ApproverID = &approverID
	return nil
}

// Reset moves an approved or disapproved activity back to TO_APPROVE.
func (a *Activity) Reset(now time.Time) error {
	if err := a.transition(StatusToApprove, now); err != nil {
		return err
	}
	a.ApproverID = nil
	return nil
}

func (a *Activity) transition(to ActivityStatus, now time.Time) error {
	if !CanTransition(a.Status, to) {
		return fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, a.Status, to)
	}
	a.Status = to
	a.UpdatedAt = now
	return nil
}

// SignupList returns the list with id, or nil.
func (a *Activity) SignupList(id string) *SignupList {
	for _, l := range a.SignupLists {
		if l.ID == id {
			return l
		}
	}
	return nil
}
