package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/gewis/gewisweb-api/internal/domain"
	"github.com/gewis/gewisweb-api/internal/domain/acl"
	"github.com/gewis/gewisweb-api/internal/domain/entity"
	"github.com/gewis/gewisweb-api/internal/domain/repository"
)

var _ repository.MemberRepository = (*MemberRepo)(nil)

// MemberRepo reads members and maintains their password hash.
type MemberRepo struct {
	q Querier
}

// NewMemberRepository builds the member persistence adapter.
func NewMemberRepository(q Querier) *MemberRepo {
	return &MemberRepo{q: q}
}

const memberColumns = `lidnr, email, password_hash, initials, first_name, middle_name, last_name, role,
	expiration, created_at, updated_at`

func (r *MemberRepo) GetByLidNr(ctx context.Context, lidnr int) (*entity.Member, error) {
	m, err := scanMember(r.q.QueryRow(ctx, `SELECT `+memberColumns+` FROM members WHERE lidnr = $1`, lidnr))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get member: %w", err)
	}
	return m, nil
}

// GetByEmail matches case-insensitively.
func (r *MemberRepo) GetByEmail(ctx context.Context, email string) (*entity.Member, error) {
	m, err := scanMember(r.q.QueryRow(ctx, `SELECT `+memberColumns+` FROM members WHERE lower(email) = lower($1)`, email))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get member by email: %w", err)
	}
	return m, nil
}

func (r *MemberRepo) GetByLidNrs(ctx context.Context, lidnrs []int) (map[int]*entity.Member, error) {
	out := make(map[int]*entity.Member, len(lidnrs))
	if len(lidnrs) == 0 {
		return out, nil
	}
	rows, err := r.q.Query(ctx, `SELECT `+memberColumns+` FROM members WHERE lidnr = ANY($1)`, lidnrs)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("scan member: %w", err)
		}
		out[m.LidNr] = m
	}
	return out, rows.Err()
}

func (r *MemberRepo) UpdatePassword(ctx context.Context, lidnr int, hash string) error {
	cmd, err := r.q.Exec(ctx, `UPDATE members SET password_hash = $2, updated_at = now() WHERE lidnr = $1`, lidnr, hash)
	if err != nil {
		return fmt.Errorf("update member password: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrMemberNotFound
	}
	return nil
}

func scanMember(row pgx.Row) (*entity.Member, error) {
	var m entity.Member
	var role string
	if err := row.Scan(&m.LidNr, &m.Email, &m.PasswordHash, &m.Initials, &m.FirstName, &m.MiddleName,
		&m.LastName, &role, &m.Expiration, &m.CreatedAt, &m.UpdatedAt); err != nil {
		return nil, err
	}
	m.Role = acl.Role(role)
	return &m, nil
}
