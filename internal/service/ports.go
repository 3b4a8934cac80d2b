package service

import (
	"context"

	"github.com/plsapi/backend/internal/model"
)

// Repository ports implemented by *db.Postgres. Not-found is reported as
// pgx.ErrNoRows, constraint failures as *pgconn.PgError.

type ActionneurRepository interface {
	GetActionneur(ctx context.Context, id model.Snowflake) (*model.Actionneur, error)
	ListActionneurs(ctx context.Context) ([]model.Actionneur, error)
	CreateActionneur(ctx context.Context, a model.Actionneur) (*model.Actionneur, error)
	DeleteActionneur(ctx context.Context, id model.Snowflake) error
}

type CharbonRepository interface {
	ListCharbons(ctx context.Context, filter model.CharbonFilter) ([]model.Charbon, error)
	GetCharbon(ctx context.Context, id int64) (*model.Charbon, error)
	CreateCharbon(ctx context.Context, w model.CharbonWrite) (int64, error)
	UpdateCharbon(ctx context.Context, id int64, w model.CharbonWrite) error
	DeleteCharbon(ctx context.Context, id int64) error
}

type CourseRepository interface {
	ListCourses(ctx context.Context) ([]model.Course, error)
	GetCourse(ctx context.Context, id string) (*model.Course, error)
	CreateCourse(ctx context.Context, c model.Course) (*model.Course, error)
	UpdateCourse(ctx context.Context, id string, c model.Course) (*model.Course, error)
}

type AnnouncementRepository interface {
	ListAnnouncements(ctx context.Context, filter model.AnnouncementFilter) ([]model.Announcement, error)
	GetAnnouncement(ctx context.Context, id int64) (*model.Announcement, error)
	CreateAnnouncement(ctx context.Context, a model.Announcement) (*model.Announcement, error)
	UpdateAnnouncement(ctx context.Context, id int64, a model.Announcement) (*model.Announcement, error)
	DeleteAnnouncement(ctx context.Context, id int64) error
}

type ExerciseTopicRepository interface {
	ListExerciseTopics(ctx context.Context) ([]model.ExerciseTopic, error)
	GetExerciseTopic(ctx context.Context, id int64) (*model.ExerciseTopic, error)
	CreateExerciseTopic(ctx context.Context, t model.ExerciseTopic) (int64, error)
	UpdateExerciseTopic(ctx context.Context, id int64, t model.ExerciseTopic) error
	// DeleteExerciseTopic returns the content paths of the cascaded exercises.
	DeleteExerciseTopic(ctx context.Context, id int64) ([]string, error)
}

type ExerciseRepository interface {
	ListExercises(ctx context.Context) ([]model.Exercise, error)
	GetExercise(ctx context.Context, id int64) (*model.Exercise, error)
	// CreateExercise inserts e and calls persist before committing. The row
	// is rolled back when persist fails.
	CreateExercise(ctx context.Context, e model.Exercise, persist func() error) (*model.Exercise, error)
	// DeleteExercise returns the removed row so its content can be dropped.
	DeleteExercise(ctx context.Context, id int64) (*model.Exercise, error)
}

// ContentStore holds exercise contents.
type ContentStore interface {
	Put(key string, data []byte) error
	Get(key string) ([]byte, error)
	Delete(key string) error
}
