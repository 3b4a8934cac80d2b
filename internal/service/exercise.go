package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/plsapi/backend/internal/model"
	"github.com/plsapi/backend/internal/storage"
)

// ============================================================================
// Exercise topics
// ============================================================================

type ExerciseTopicService struct {
	repo   ExerciseTopicRepository
	store  ContentStore
	logger *slog.Logger
}

func NewExerciseTopicService(repo ExerciseTopicRepository, store ContentStore, logger *slog.Logger) *ExerciseTopicService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExerciseTopicService{repo: repo, store: store, logger: logger}
}

func (s *ExerciseTopicService) List(ctx context.Context) ([]model.ExerciseTopicView, error) {
	topics, err := s.repo.ListExerciseTopics(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]model.ExerciseTopicView, 0, len(topics))
	for _, t := range topics {
		views = append(views, model.NewExerciseTopicView(t))
	}
	return views, nil
}

func (s *ExerciseTopicService) Get(ctx context.Context, id int64) (*model.ExerciseTopicView, error) {
	t, err := s.repo.GetExerciseTopic(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "exercise topic")
	}
	view := model.NewExerciseTopicView(*t)
	return &view, nil
}

func (s *ExerciseTopicService) Create(ctx context.Context, req model.ExerciseTopicRequest) (*model.ExerciseTopicView, error) {
	id, err := s.repo.CreateExerciseTopic(ctx, model.ExerciseTopic{
		Topic:    strings.TrimSpace(req.Topic),
		CourseID: req.CourseID,
	})
	if err != nil {
		return nil, mapRepoError(err, "exercise topic")
	}
	return s.Get(ctx, id)
}

func (s *ExerciseTopicService) Update(ctx context.Context, id int64, req model.ExerciseTopicRequest) (*model.ExerciseTopicView, error) {
	err := s.repo.UpdateExerciseTopic(ctx, id, model.ExerciseTopic{
		Topic:    strings.TrimSpace(req.Topic),
		CourseID: req.CourseID,
	})
	if err != nil {
		return nil, mapRepoError(err, "exercise topic")
	}
	return s.Get(ctx, id)
}

// Delete removes the topic along with the content files of its exercises.
func (s *ExerciseTopicService) Delete(ctx context.Context, id int64) error {
	paths, err := s.repo.DeleteExerciseTopic(ctx, id)
	if err != nil {
		return mapRepoError(err, "exercise topic")
	}
	for _, p := range paths {
		if err := s.store.Delete(p); err != nil {
			s.logger.Warn("failed to delete exercise content", "topic_id", id, "path", p, "error", err)
		}
	}
	return nil
}

// ============================================================================
// Exercises
// ============================================================================

const exerciseNamespace = "exercises"

type ExerciseService struct {
	repo   ExerciseRepository
	store  ContentStore
	logger *slog.Logger
}

func NewExerciseService(repo ExerciseRepository, store ContentStore, logger *slog.Logger) *ExerciseService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExerciseService{repo: repo, store: store, logger: logger}
}

// List never includes contents.
func (s *ExerciseService) List(ctx context.Context) ([]model.ExerciseView, error) {
	exercises, err := s.repo.ListExercises(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]model.ExerciseView, 0, len(exercises))
	for _, e := range exercises {
		views = append(views, model.NewExerciseView(e, nil))
	}
	return views, nil
}

// Get returns the exercise with its decoded content. A missing content
// file yields a null content.
func (s *ExerciseService) Get(ctx context.Context, id int64) (*model.ExerciseView, error) {
	e, err := s.repo.GetExercise(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "exercise")
	}

	var content *string
	data, err := s.store.Get(e.ContentPath)
	switch {
	case err == nil:
		text := string(data)
		content = &text
	case errors.Is(err, storage.ErrNotFound):
		s.logger.Warn("exercise content missing", "exercise_id", e.ID, "path", e.ContentPath)
	default:
		return nil, err
	}

	view := model.NewExerciseView(*e, content)
	return &view, nil
}

// Create decodes the base64 content and stores it next to the row. A
// failed file write rolls the row back.
func (s *ExerciseService) Create(ctx context.Context, req model.ExerciseRequest) (*model.ExerciseView, error) {
	data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(req.Content))
	if err != nil {
		return nil, fmt.Errorf("%w: content is not valid base64", ErrValidation)
	}

	key := storage.NewKey(exerciseNamespace)
	created, err := s.repo.CreateExercise(ctx, model.Exercise{
		Title:       req.Title,
		Difficulty:  req.Difficulty,
		IsCorrected: req.IsCorrected,
		Source:      req.Source,
		TopicID:     req.TopicID,
		Copyright:   req.Copyright,
		ContentPath: key,
	}, func() error {
		return s.store.Put(key, data)
	})
	if err != nil {
		// The file may already be written when the commit fails.
		if delErr := s.store.Delete(key); delErr != nil {
			s.logger.Warn("failed to delete orphaned exercise content", "path", key, "error", delErr)
		}
		return nil, mapRepoError(err, "exercise")
	}

	text := string(data)
	view := model.NewExerciseView(*created, &text)
	return &view, nil
}

func (s *ExerciseService) Delete(ctx context.Context, id int64) error {
	e, err := s.repo.DeleteExercise(ctx, id)
	if err != nil {
		return mapRepoError(err, "exercise")
	}
	if err := s.store.Delete(e.ContentPath); err != nil {
		s.logger.Warn("failed to delete exercise content", "exercise_id", e.ID, "error", err)
	}
	return nil
}
