package repository

import (
	"context"

	"github.com/gewis/gewisweb-api/internal/domain/entity"
)

// SignupRepository is the persistence port for signups.
// Create returns domain.ErrDuplicate when the member already has a signup on the list.
type SignupRepository interface {
	Create(ctx context.Context, signup *entity.Signup) error
	FindByMember(ctx context.Context, listID string, memberID int) (*entity.Signup, error)
	Delete(ctx context.Context, id string) error
	// ListByList returns signups in first-come-first-served order.
	ListByList(ctx context.Context, listID string) ([]*entity.Signup, error)
	CountByList(ctx context.Context, listID string) (int, error)
}
