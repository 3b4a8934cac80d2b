package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/plsapi/backend/internal/model"
)

type CourseService struct {
	repo CourseRepository
}

func NewCourseService(repo CourseRepository) *CourseService {
	return &CourseService{repo: repo}
}

func (s *CourseService) List(ctx context.Context) ([]model.Course, error) {
	courses, err := s.repo.ListCourses(ctx)
	if err != nil {
		return nil, err
	}
	if courses == nil {
		courses = []model.Course{}
	}
	return courses, nil
}

func (s *CourseService) Get(ctx context.Context, id string) (*model.Course, error) {
	c, err := s.repo.GetCourse(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "course")
	}
	return c, nil
}

func (s *CourseService) Create(ctx context.Context, req model.CourseRequest) (*model.Course, error) {
	c, err := courseFromRequest(req)
	if err != nil {
		return nil, err
	}
	created, err := s.repo.CreateCourse(ctx, c)
	if err != nil {
		return nil, mapRepoError(err, "course")
	}
	return created, nil
}

// Update may rename the course; referencing rows follow through ON UPDATE CASCADE.
func (s *CourseService) Update(ctx context.Context, id string, req model.CourseRequest) (*model.Course, error) {
	c, err := courseFromRequest(req)
	if err != nil {
		return nil, err
	}
	updated, err := s.repo.UpdateCourse(ctx, id, c)
	if err != nil {
		return nil, mapRepoError(err, "course")
	}
	return updated, nil
}

func courseFromRequest(req model.CourseRequest) (model.Course, error) {
	id := strings.TrimSpace(req.ID)
	if id == "" {
		return model.Course{}, fmt.Errorf("%w: course id is empty", ErrValidation)
	}
	if !req.Type.Valid() {
		return model.Course{}, fmt.Errorf("%w: unknown course type %q", ErrValidation, req.Type)
	}
	return model.Course{ID: id, Type: req.Type}, nil
}
