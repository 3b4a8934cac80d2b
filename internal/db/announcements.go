package db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/plsapi/backend/internal/model"
)

var announcementOrder = map[model.AnnouncementSort]string{
	model.AnnouncementSortDateAsc:  "datetime ASC",
	model.AnnouncementSortDateDesc: "datetime DESC",
	model.AnnouncementSortNameAsc:  "title ASC",
	model.AnnouncementSortNameDesc: "title DESC",
}

func announcementOrderBy(sort model.AnnouncementSort) string {
	if order, ok := announcementOrder[sort]; ok {
		return order
	}
	return announcementOrder[model.AnnouncementSortDateDesc]
}

func (db *Postgres) ListAnnouncements(ctx context.Context, f model.AnnouncementFilter) ([]model.Announcement, error) {
	query := `
		SELECT id, title, content, datetime
		FROM announcement
		ORDER BY ` + announcementOrderBy(f.Sort) + `, id
		LIMIT $1 OFFSET $2`

	rows, err := db.Pool.Query(ctx, query, f.Limit, f.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []model.Announcement
	for rows.Next() {
		a, err := scanAnnouncement(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *a)
	}
	return list, rows.Err()
}

func (db *Postgres) GetAnnouncement(ctx context.Context, id int64) (*model.Announcement, error) {
	query := `
		SELECT id, title, content, datetime
		FROM announcement
		WHERE id = $1
	`
	return scanAnnouncement(db.Pool.QueryRow(ctx, query, id))
}

func (db *Postgres) CreateAnnouncement(ctx context.Context, a model.Announcement) (*model.Announcement, error) {
	query := `
		INSERT INTO announcement (title, content, datetime)
		VALUES ($1, $2, $3)
		RETURNING id, title, content, datetime
	`
	return scanAnnouncement(db.Pool.QueryRow(ctx, query, a.Title, a.Content, a.Datetime))
}

func (db *Postgres) UpdateAnnouncement(ctx context.Context, id int64, a model.Announcement) (*model.Announcement, error) {
	query := `
		UPDATE announcement
		SET title = $1, content = $2, datetime = $3
		WHERE id = $4
		RETURNING id, title, content, datetime
	`
	return scanAnnouncement(db.Pool.QueryRow(ctx, query, a.Title, a.Content, a.Datetime, id))
}

func (db *Postgres) DeleteAnnouncement(ctx context.Context, id int64) error {
	tag, err := db.Pool.Exec(ctx, `DELETE FROM announcement WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func scanAnnouncement(row pgx.Row) (*model.Announcement, error) {
	var a model.Announcement
	if err := row.Scan(&a.ID, &a.Title, &a.Content, &a.Datetime); err != nil {
		return nil, err
	}
	return &a, nil
}
