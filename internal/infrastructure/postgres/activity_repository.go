package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/gewis/gewisweb-api/internal/domain/entity"
	"github.com/gewis/gewisweb-api/internal/domain/i18n"
	"github.com/gewis/gewisweb-api/internal/domain/repository"
)

var _ repository.ActivityRepository = (*ActivityRepo)(nil)

// ActivityRepo stores activities with their signup lists, fields and options.
type ActivityRepo struct {
	q Querier
}

// NewActivityRepository builds the repository on a pool or a transaction.
func NewActivityRepository(q Querier) *ActivityRepo {
	return &ActivityRepo{q: q}
}

const activityColumns = `
	id, name, name_en, location, location_en, costs, costs_en, description, description_en,
	begin_time, end_time, subscription_deadline, can_sign_up, only_gewis, status,
	creator_id, approver_id, organ_abbr, created_at, updated_at`

// Create inserts the whole aggregate in one transaction.
func (r *ActivityRepo) Create(ctx context.Context, a *entity.Activity) error {
	return inTx(ctx, r.q, func(tx pgx.Tx) error {
		query := `
			INSERT INTO activities (` + activityColumns + `)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`
		_, err := tx.Exec(ctx, query,
			a.ID, a.Name.NL(), a.Name.EN(), a.Location.NL(), a.Location.EN(),
			a.Costs.NL(), a.Costs.EN(), a.Description.NL(), a.Description.EN(),
			a.BeginTime, a.EndTime, a.SubscriptionDeadline, a.CanSignUp, a.OnlyGEWIS, int(a.Status),
			a.CreatorID, a.ApproverID, nullableString(a.OrganID), a.CreatedAt, a.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert activity: %w", err)
		}
		for i, l := range a.SignupLists {
			if err := insertSignupList(ctx, tx, i, l); err != nil {
				return err
			}
		}
		return nil
	})
}

func insertSignupList(ctx context.Context, tx pgx.Tx, pos int, l *entity.SignupList) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO signup_lists (id, activity_id, position, name, name_en, open_date, close_date,
			only_gewis, display_subscribed_number)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		l.ID, l.ActivityID, pos, l.Name.NL(), l.Name.EN(), l.OpenDate, l.CloseDate,
		l.OnlyGEWIS, l.DisplaySubscribedNumber,
	)
	if err != nil {
		return fmt.Errorf("insert signup list: %w", err)
	}
	for _, f := range l.Fields {
		_, err := tx.Exec(ctx, `
			INSERT INTO signup_fields (id, signup_list_id, position, name, name_en, type, minimum_value, maximum_value)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			f.ID, f.SignupListID, f.Position, f.Name.NL(), f.Name.EN(), int(f.Type), f.MinimumValue, f.MaximumValue,
		)
		if err != nil {
			return fmt.Errorf("insert signup field: %w", err)
		}
		for _, o := range f.Options {
			_, err := tx.Exec(ctx, `
				INSERT INTO signup_options (id, signup_field_id, position, value, value_en)
				VALUES ($1, $2, $3, $4, $5)`,
				o.ID, o.FieldID, o.Position, o.Value.NL(), o.Value.EN(),
			)
			if err != nil {
				return fmt.Errorf("insert signup option: %w", err)
			}
		}
	}
	return nil
}

// GetByID loads the activity and its lists. Returns (nil, nil) when it does not exist.
func (r *ActivityRepo) GetByID(ctx context.Context, id string) (*entity.Activity, error) {
	row := r.q.QueryRow(ctx, `SELECT `+activityColumns+` FROM activities WHERE id = $1`, id)
	a, err := scanActivity(row)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get activity: %w", err)
	}
	if err := r.loadLists(ctx, []*entity.Activity{a}); err != nil {
		return nil, err
	}
	return a, nil
}

// UpdateStatus persists a status change.
func (r *ActivityRepo) UpdateStatus(ctx context.Context, a *entity.Activity) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE activities SET status = $2, approver_id = $3, updated_at = $4 WHERE id = $1`,
		a.ID, int(a.Status), a.ApproverID, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update activity status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("update activity status: activity %s not found", a.ID)
	}
	return nil
}

// ListByStatus returns the activities with status, most recent begin first.
func (r *ActivityRepo) ListByStatus(ctx context.Context, status entity.ActivityStatus) ([]*entity.Activity, error) {
	return r.list(ctx, `SELECT `+activityColumns+` FROM activities WHERE status = $1 ORDER BY begin_time DESC`, int(status))
}

func (r *ActivityRepo) ListUpcoming(ctx context.Context, now time.Time) ([]*entity.Activity, error) {
	return r.list(ctx, `
		SELECT `+activityColumns+` FROM activities
		WHERE status = $1 AND end_time > $2
		ORDER BY begin_time`, int(entity.StatusApproved), now)
}

func (r *ActivityRepo) ListApprovedBetween(ctx context.Context, from, to time.Time) ([]*entity.Activity, error) {
	return r.list(ctx, `
		SELECT `+activityColumns+` FROM activities
		WHERE status = $1 AND begin_time >= $2 AND begin_time < $3
		ORDER BY begin_time`, int(entity.StatusApproved), from, to)
}

func (r *ActivityRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Activity, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	defer rows.Close()

	var list []*entity.Activity
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		list = append(list, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := r.loadLists(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

func scanActivity(row pgx.Row) (*entity.Activity, error) {
	var (
		a                              entity.Activity
		name, nameEn, loc, locEn       *string
		costs, costsEn, descr, descrEn *string
		status                         int
	)
	err := row.Scan(
		&a.ID, &name, &nameEn, &loc, &locEn, &costs, &costsEn, &descr, &descrEn,
		&a.BeginTime, &a.EndTime, &a.SubscriptionDeadline, &a.CanSignUp, &a.OnlyGEWIS, &status,
		&a.CreatorID, &a.ApproverID, &a.OrganID, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	a.Name = i18n.NewText(name, nameEn)
	a.Location = i18n.NewText(loc, locEn)
	a.Costs = i18n.NewText(costs, costsEn)
	a.Description = i18n.NewText(descr, descrEn)
	a.Status = entity.ActivityStatus(status)
	return &a, nil
}

// loadLists attaches signup lists, fields and options to the activities with three queries.
func (r *ActivityRepo) loadLists(ctx context.Context, activities []*entity.Activity) error {
	if len(activities) == 0 {
		return nil
	}
	byID := make(map[string]*entity.Activity, len(activities))
	ids := make([]string, 0, len(activities))
	for _, a := range activities {
		byID[a.ID] = a
		ids = append(ids, a.ID)
	}

	rows, err := r.q.Query(ctx, `
		SELECT id, activity_id, name, name_en, open_date, close_date, only_gewis, display_subscribed_number
		FROM signup_lists WHERE activity_id = ANY($1) ORDER BY position`, ids)
	if err != nil {
		return fmt.Errorf("list signup lists: %w", err)
	}
	lists := map[string]*entity.SignupList{}
	var listIDs []string
	for rows.Next() {
		var (
			l            entity.SignupList
			name, nameEn *string
		)
		if err := rows.Scan(&l.ID, &l.ActivityID, &name, &nameEn, &l.OpenDate, &l.CloseDate,
			&l.OnlyGEWIS, &l.DisplaySubscribedNumber); err != nil {
			rows.Close()
			return fmt.Errorf("scan signup list: %w", err)
		}
		l.Name = i18n.NewText(name, nameEn)
		lists[l.ID] = &l
		listIDs = append(listIDs, l.ID)
		byID[l.ActivityID].SignupLists = append(byID[l.ActivityID].SignupLists, &l)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}
	if len(listIDs) == 0 {
		return nil
	}

	rows, err = r.q.Query(ctx, `
		SELECT id, signup_list_id, position, name, name_en, type, minimum_value, maximum_value
		FROM signup_fields WHERE signup_list_id = ANY($1) ORDER BY position`, listIDs)
	if err != nil {
		return fmt.Errorf("list signup fields: %w", err)
	}
	fields := map[string]*entity.SignupField{}
	var fieldIDs []string
	for rows.Next() {
		var (
			f            entity.SignupField
			name, nameEn *string
			typ          int
		)
		if err := rows.Scan(&f.ID, &f.SignupListID, &f.Position, &name, &nameEn, &typ,
			&f.MinimumValue, &f.MaximumValue); err != nil {
			rows.Close()
			return fmt.Errorf("scan signup field: %w", err)
		}
		f.Name = i18n.NewText(name, nameEn)
		f.Type = entity.FieldType(typ)
		fields[f.ID] = &f
		fieldIDs = append(fieldIDs, f.ID)
		lists[f.SignupListID].Fields = append(lists[f.SignupListID].Fields, &f)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}
	if len(fieldIDs) == 0 {
		return nil
	}

	rows, err = r.q.Query(ctx, `
		SELECT id, signup_field_id, position, value, value_en
		FROM signup_options WHERE signup_field_id = ANY($1) ORDER BY position`, fieldIDs)
	if err != nil {
		return fmt.Errorf("list signup options: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			o            entity.SignupOption
			value, valEn *string
		)
		if err := rows.Scan(&o.ID, &o.FieldID, &o.Position, &value, &valEn); err != nil {
			return fmt.Errorf("scan signup option: %w", err)
		}
		o.Value = i18n.NewText(value, valEn)
		fields[o.FieldID].Options = append(fields[o.FieldID].Options, &o)
	}
	return rows.Err()
}
