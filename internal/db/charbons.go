package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/plsapi/backend/internal/model"
)

const charbonSelect = `
	SELECT c.id, c.title, c.description, c.datetime, c.course_id, co.type,
	       c.replay_link, c.duration,
	       COALESCE(array_agg(h.actionneur_id ORDER BY h.actionneur_id)
	                FILTER (WHERE h.actionneur_id IS NOT NULL), '{}')
	FROM charbon c
	JOIN course co ON co.id = c.course_id
	LEFT JOIN charbon_host h ON h.charbon_id = c.id`

var charbonOrder = map[model.CharbonSort]string{
	model.CharbonSortDateAsc:      "c.datetime ASC",
	model.CharbonSortDateDesc:     "c.datetime DESC",
	model.CharbonSortDurationAsc:  "c.duration ASC",
	model.CharbonSortDurationDesc: "c.duration DESC",
}

// buildCharbonListQuery renders the list query for f. Unknown sorts fall
// back to date_desc.
func buildCharbonListQuery(f model.CharbonFilter) (string, []any) {
	var (
		where []string
		args  []any
	)
	add := func(cond string, arg any) {
		args = append(args, arg)
		where = append(where, fmt.Sprintf(cond, len(args)))
	}

	if f.CourseType != "" {
		add("co.type = $%d", string(f.CourseType))
	}
	if f.CourseID != "" {
		add("c.course_id = $%d", f.CourseID)
	}
	if f.MinDate != nil {
		add("c.datetime >= $%d", *f.MinDate)
	}
	if f.MaxDate != nil {
		add("c.datetime <= $%d", *f.MaxDate)
	}

	order, ok := charbonOrder[f.Sort]
	if !ok {
		order = charbonOrder[model.CharbonSortDateDesc]
	}

	var b strings.Builder
	b.WriteString(charbonSelect)
	if len(where) > 0 {
		b.WriteString("\n\tWHERE ")
		b.WriteString(strings.Join(where, " AND "))
	}
	b.WriteString("\n\tGROUP BY c.id, co.type")
	b.WriteString("\n\tORDER BY " + order + ", c.id")
	args = append(args, f.Limit, f.Offset)
	fmt.Fprintf(&b, "\n\tLIMIT $%d OFFSET $%d", len(args)-1, len(args))

	return b.String(), args
}

func (db *Postgres) ListCharbons(ctx context.Context, f model.CharbonFilter) ([]model.Charbon, error) {
	query, args := buildCharbonListQuery(f)

	rows, err := db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []model.Charbon
	for rows.Next() {
		c, err := scanCharbon(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *c)
	}
	return list, rows.Err()
}

func (db *Postgres) GetCharbon(ctx context.Context, id int64) (*model.Charbon, error) {
	query := charbonSelect + `
	WHERE c.id = $1
	GROUP BY c.id, co.type`

	return scanCharbon(db.Pool.QueryRow(ctx, query, id))
}

// CreateCharbon inserts the charbon and its hosts in one transaction.
func (db *Postgres) CreateCharbon(ctx context.Context, w model.CharbonWrite) (int64, error) {
	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	var id int64
	err = tx.QueryRow(ctx, `
		INSERT INTO charbon (title, description, datetime, course_id, replay_link, duration)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, w.Title, w.Description, w.Datetime, w.CourseID, w.ReplayLink, w.Duration).Scan(&id)
	if err != nil {
		return 0, err
	}

	if err := replaceHosts(ctx, tx, id, w.Hosts); err != nil {
		return 0, err
	}

	return id, tx.Commit(ctx)
}

// UpdateCharbon overwrites the row and replaces its host set.
func (db *Postgres) UpdateCharbon(ctx context.Context, id int64, w model.CharbonWrite) error {
	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	tag, err := tx.Exec(ctx, `
		UPDATE charbon
		SET title = $1, description = $2, datetime = $3, course_id = $4,
		    replay_link = $5, duration = $6
		WHERE id = $7
	`, w.Title, w.Description, w.Datetime, w.CourseID, w.ReplayLink, w.Duration, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	if err := replaceHosts(ctx, tx, id, w.Hosts); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (db *Postgres) DeleteCharbon(ctx context.Context, id int64) error {
	tag, err := db.Pool.Exec(ctx, `DELETE FROM charbon WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func replaceHosts(ctx context.Context, tx pgx.Tx, charbonID int64, hosts []model.Snowflake) error {
	if _, err := tx.Exec(ctx, `DELETE FROM charbon_host WHERE charbon_id = $1`, charbonID); err != nil {
		return err
	}
	if len(hosts) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(hosts))
	for _, h := range hosts {
		ids = append(ids, int64(h))
	}
	_, err := tx.Exec(ctx, `
		INSERT INTO charbon_host (charbon_id, actionneur_id)
		SELECT $1, unnest($2::bigint[])
		ON CONFLICT DO NOTHING
	`, charbonID, ids)
	return err
}

func scanCharbon(row pgx.Row) (*model.Charbon, error) {
	var (
		c          model.Charbon
		courseType string
		hosts      []int64
	)
	err := row.Scan(
		&c.ID,
		&c.Title,
		&c.Description,
		&c.Datetime,
		&c.CourseID,
		&courseType,
		&c.ReplayLink,
		&c.Duration,
		&hosts,
	)
	if err != nil {
		return nil, err
	}

	c.CourseType = model.CourseType(courseType)
	c.Hosts = make([]model.Snowflake, 0, len(hosts))
	for _, h := range hosts {
		c.Hosts = append(c.Hosts, model.Snowflake(h))
	}
	return &c, nil
}
