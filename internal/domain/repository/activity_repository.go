package repository

import (
	"context"
	"time"

	"github.com/gewis/gewisweb-api/internal/domain/entity"
)

// ActivityRepository is the persistence port for the activity aggregate (activity, signup lists,
// fields, options). Getters return (nil, nil) when nothing matches.
type ActivityRepository interface {
	// Create persists the activity with all its lists, fields and options.
	Create(ctx context.Context, activity *entity.Activity) error
	GetByID(ctx context.Context, id string) (*entity.Activity, error)
	// UpdateStatus persists Status, ApproverID and UpdatedAt.
	UpdateStatus(ctx context.Context, activity *entity.Activity) error
	ListByStatus(ctx context.Context, status entity.ActivityStatus) ([]*entity.Activity, error)
	// ListUpcoming returns approved activities that have not ended at now, by begin time.
	ListUpcoming(ctx context.Context, now time.Time) ([]*entity.Activity, error)
	// ListApprovedBetween returns approved activities beginning in [from, to).
	ListApprovedBetween(ctx context.Context, from, to time.Time) ([]*entity.Activity, error)
}
