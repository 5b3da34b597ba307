package repository

import (
	"context"

	"github.com/gewis/gewisweb-api/internal/domain/entity"
)

// DecisionRepository reads the append-only decision ledger.
type DecisionRepository interface {
	ListSubDecisions(ctx context.Context) ([]entity.SubDecision, error)
}
