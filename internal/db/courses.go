package db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/plsapi/backend/internal/model"
)

func (db *Postgres) ListCourses(ctx context.Context) ([]model.Course, error) {
	rows, err := db.Pool.Query(ctx, `SELECT id, type FROM course ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []model.Course
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *c)
	}
	return list, rows.Err()
}

func (db *Postgres) GetCourse(ctx context.Context, id string) (*model.Course, error) {
	return scanCourse(db.Pool.QueryRow(ctx, `SELECT id, type FROM course WHERE id = $1`, id))
}

func (db *Postgres) CreateCourse(ctx context.Context, c model.Course) (*model.Course, error) {
	query := `
		INSERT INTO course (id, type)
		VALUES ($1, $2)
		RETURNING id, type
	`
	return scanCourse(db.Pool.QueryRow(ctx, query, c.ID, string(c.Type)))
}

// UpdateCourse may change the primary key; dependants follow via ON UPDATE CASCADE.
func (db *Postgres) UpdateCourse(ctx context.Context, id string, c model.Course) (*model.Course, error) {
	query := `
		UPDATE course
		SET id = $1, type = $2
		WHERE id = $3
		RETURNING id, type
	`
	return scanCourse(db.Pool.QueryRow(ctx, query, c.ID, string(c.Type), id))
}

func scanCourse(row pgx.Row) (*model.Course, error) {
	var (
		c          model.Course
		courseType string
	)
	if err := row.Scan(&c.ID, &courseType); err != nil {
		return nil, err
	}
	c.Type = model.CourseType(courseType)
	return &c, nil
}
