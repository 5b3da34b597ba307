package repository

import (
	"context"

	"github.com/gewis/gewisweb-api/internal/domain/entity"
)

// MemberRepository is the persistence port for members.
type MemberRepository interface {
	GetByLidNr(ctx context.Context, lidnr int) (*entity.Member, error)
	GetByEmail(ctx context.Context, email string) (*entity.Member, error)
	// GetByLidNrs returns the members found, keyed by lidnr.
	GetByLidNrs(ctx context.Context, lidnrs []int) (map[int]*entity.Member, error)
	UpdatePassword(ctx context.Context, lidnr int, hash string) error
}
