package db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/plsapi/backend/internal/model"
)

func (db *Postgres) GetActionneur(ctx context.Context, id model.Snowflake) (*model.Actionneur, error) {
	query := `
		SELECT id, username, is_admin
		FROM actionneur
		WHERE id = $1
	`
	return scanActionneur(db.Pool.QueryRow(ctx, query, int64(id)))
}

func (db *Postgres) ListActionneurs(ctx context.Context) ([]model.Actionneur, error) {
	rows, err := db.Pool.Query(ctx, `SELECT id, username, is_admin FROM actionneur ORDER BY username, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []model.Actionneur
	for rows.Next() {
		a, err := scanActionneur(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *a)
	}
	return list, rows.Err()
}

func (db *Postgres) CreateActionneur(ctx context.Context, a model.Actionneur) (*model.Actionneur, error) {
	query := `
		INSERT INTO actionneur (id, username, is_admin)
		VALUES ($1, $2, $3)
		RETURNING id, username, is_admin
	`
	return scanActionneur(db.Pool.QueryRow(ctx, query, int64(a.ID), a.Username, a.IsAdmin))
}

// DeleteActionneur also drops the actionneur's host rows through ON DELETE CASCADE.
func (db *Postgres) DeleteActionneur(ctx context.Context, id model.Snowflake) error {
	tag, err := db.Pool.Exec(ctx, `DELETE FROM actionneur WHERE id = $1`, int64(id))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func scanActionneur(row pgx.Row) (*model.Actionneur, error) {
	var (
		a  model.Actionneur
		id int64
	)
	if err := row.Scan(&id, &a.Username, &a.IsAdmin); err != nil {
		return nil, err
	}
	a.ID = model.Snowflake(id)
	return &a, nil
}
