package db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/plsapi/backend/internal/model"
)

// ============================================================================
// exercise_topic
// ============================================================================

const exerciseTopicSelect = `
	SELECT t.id, t.topic, t.course_id, co.type
	FROM exercise_topic t
	JOIN course co ON co.id = t.course_id`

func (db *Postgres) ListExerciseTopics(ctx context.Context) ([]model.ExerciseTopic, error) {
	rows, err := db.Pool.Query(ctx, exerciseTopicSelect+` ORDER BY t.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []model.ExerciseTopic
	for rows.Next() {
		t, err := scanExerciseTopic(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *t)
	}
	return list, rows.Err()
}

func (db *Postgres) GetExerciseTopic(ctx context.Context, id int64) (*model.ExerciseTopic, error) {
	return scanExerciseTopic(db.Pool.QueryRow(ctx, exerciseTopicSelect+` WHERE t.id = $1`, id))
}

func (db *Postgres) CreateExerciseTopic(ctx context.Context, t model.ExerciseTopic) (int64, error) {
	var id int64
	err := db.Pool.QueryRow(ctx, `
		INSERT INTO exercise_topic (topic, course_id)
		VALUES ($1, $2)
		RETURNING id
	`, t.Topic, t.CourseID).Scan(&id)
	return id, err
}

func (db *Postgres) UpdateExerciseTopic(ctx context.Context, id int64, t model.ExerciseTopic) error {
	tag, err := db.Pool.Exec(ctx, `
		UPDATE exercise_topic
		SET topic = $1, course_id = $2
		WHERE id = $3
	`, t.Topic, t.CourseID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// DeleteExerciseTopic also removes the topic's exercises through ON DELETE
// CASCADE and returns the content paths of the removed exercises.
func (db *Postgres) DeleteExerciseTopic(ctx context.Context, id int64) ([]string, error) {
	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	rows, err := tx.Query(ctx, `SELECT content_path FROM exercise WHERE topic_id = $1 FOR UPDATE`, id)
	if err != nil {
		return nil, err
	}
	paths, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, err
	}

	tag, err := tx.Exec(ctx, `DELETE FROM exercise_topic WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, pgx.ErrNoRows
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return paths, nil
}

func scanExerciseTopic(row pgx.Row) (*model.ExerciseTopic, error) {
	var (
		t          model.ExerciseTopic
		courseType string
	)
	if err := row.Scan(&t.ID, &t.Topic, &t.CourseID, &courseType); err != nil {
		return nil, err
	}
	t.CourseType = model.CourseType(courseType)
	return &t, nil
}

// ============================================================================
// exercise
// ============================================================================

const exerciseColumns = `id, title, difficulty, is_corrected, source, topic_id, copyright, content_path`

func (db *Postgres) ListExercises(ctx context.Context) ([]model.Exercise, error) {
	rows, err := db.Pool.Query(ctx, `SELECT `+exerciseColumns+` FROM exercise ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []model.Exercise
	for rows.Next() {
		e, err := scanExercise(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *e)
	}
	return list, rows.Err()
}

func (db *Postgres) GetExercise(ctx context.Context, id int64) (*model.Exercise, error) {
	return scanExercise(db.Pool.QueryRow(ctx, `SELECT `+exerciseColumns+` FROM exercise WHERE id = $1`, id))
}

// CreateExercise inserts e and runs persist inside the same transaction.
// Nothing is committed when persist fails.
func (db *Postgres) CreateExercise(ctx context.Context, e model.Exercise, persist func() error) (*model.Exercise, error) {
	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	created, err := scanExercise(tx.QueryRow(ctx, `
		INSERT INTO exercise (title, difficulty, is_corrected, source, topic_id, copyright, content_path)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+exerciseColumns,
		e.Title, e.Difficulty, e.IsCorrected, e.Source, e.TopicID, e.Copyright, e.ContentPath,
	))
	if err != nil {
		return nil, err
	}

	if err := persist(); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return created, nil
}

func (db *Postgres) DeleteExercise(ctx context.Context, id int64) (*model.Exercise, error) {
	return scanExercise(db.Pool.QueryRow(ctx, `DELETE FROM exercise WHERE id = $1 RETURNING `+exerciseColumns, id))
}

func scanExercise(row pgx.Row) (*model.Exercise, error) {
	var e model.Exercise
	err := row.Scan(
		&e.ID,
		&e.Title,
		&e.Difficulty,
		&e.IsCorrected,
		&e.Source,
		&e.TopicID,
		&e.Copyright,
		&e.ContentPath,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}
