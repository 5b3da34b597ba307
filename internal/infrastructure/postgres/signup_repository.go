package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/gewis/gewisweb-api/internal/domain"
	"github.com/gewis/gewisweb-api/internal/domain/entity"
	"github.com/gewis/gewisweb-api/internal/domain/repository"
)

var _ repository.SignupRepository = (*SignupRepo)(nil)

// SignupRepo stores signups and their field values.
type SignupRepo struct {
	q Querier
}

func NewSignupRepository(q Querier) *SignupRepo {
	return &SignupRepo{q: q}
}

// Create inserts the signup and its values. A second signup of the same member on the
// same list hits signups_list_member_key and yields domain.ErrDuplicate.
func (r *SignupRepo) Create(ctx context.Context, s *entity.Signup) error {
	return inTx(ctx, r.q, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO signups (id, signup_list_id, kind, member_id, full_name, email, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			s.ID, s.SignupListID, string(s.Kind), s.MemberID, s.FullName, s.Email, s.CreatedAt,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return domain.ErrDuplicate
			}
			return fmt.Errorf("insert signup: %w", err)
		}
		for _, v := range s.Values {
			_, err := tx.Exec(ctx, `
				INSERT INTO signup_field_values (signup_id, signup_field_id, value, option_id)
				VALUES ($1, $2, $3, $4)`,
				s.ID, v.FieldID, v.Value, v.OptionID,
			)
			if err != nil {
				return fmt.Errorf("insert signup value: %w", err)
			}
		}
		return nil
	})
}

// FindByMember returns (nil, nil) when the member has no signup on the list.
func (r *SignupRepo) FindByMember(ctx context.Context, listID string, memberID int) (*entity.Signup, error) {
	var s entity.Signup
	var kind string
	err := r.q.QueryRow(ctx, `
		SELECT id, signup_list_id, kind, member_id, full_name, email, created_at
		FROM signups WHERE signup_list_id = $1 AND member_id = $2`, listID, memberID,
	).Scan(&s.ID, &s.SignupListID, &kind, &s.MemberID, &s.FullName, &s.Email, &s.CreatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("find signup: %w", err)
	}
	s.Kind = entity.SignupKind(kind)
	if err := r.loadValues(ctx, []*entity.Signup{&s}); err != nil {
		return nil, err
	}
	return &s, nil
}

// Delete removes the signup; its values cascade.
func (r *SignupRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM signups WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete signup: %w", err)
	}
	return nil
}

func (r *SignupRepo) ListByList(ctx context.Context, listID string) ([]*entity.Signup, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, signup_list_id, kind, member_id, full_name, email, created_at
		FROM signups WHERE signup_list_id = $1
		ORDER BY created_at, id`, listID)
	if err != nil {
		return nil, fmt.Errorf("list signups: %w", err)
	}
	defer rows.Close()

	var list []*entity.Signup
	for rows.Next() {
		var s entity.Signup
		var kind string
		if err := rows.Scan(&s.ID, &s.SignupListID, &kind, &s.MemberID, &s.FullName, &s.Email, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan signup: %w", err)
		}
		s.Kind = entity.SignupKind(kind)
		list = append(list, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	rows.Close()
	if err := r.loadValues(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *SignupRepo) CountByList(ctx context.Context, listID string) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM signups WHERE signup_list_id = $1`, listID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count signups: %w", err)
	}
	return n, nil
}

func (r *SignupRepo) loadValues(ctx context.Context, signups []*entity.Signup) error {
	if len(signups) == 0 {
		return nil
	}
	byID := make(map[string]*entity.Signup, len(signups))
	ids := make([]string, 0, len(signups))
	for _, s := range signups {
		byID[s.ID] = s
		ids = append(ids, s.ID)
	}
	rows, err := r.q.Query(ctx, `
		SELECT v.signup_id, v.signup_field_id, v.value, v.option_id
		FROM signup_field_values v
		JOIN signup_fields f ON f.id = v.signup_field_id
		WHERE v.signup_id = ANY($1)
		ORDER BY f.position`, ids)
	if err != nil {
		return fmt.Errorf("list signup values: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var signupID string
		var v entity.SignupFieldValue
		if err := rows.Scan(&signupID, &v.FieldID, &v.Value, &v.OptionID); err != nil {
			return fmt.Errorf("scan signup value: %w", err)
		}
		byID[signupID].Values = append(byID[signupID].Values, v)
	}
	return rows.Err()
}
