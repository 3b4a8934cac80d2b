package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/plsapi/backend/internal/model"
)

type AnnouncementService struct {
	repo    AnnouncementRepository
	content *bluemonday.Policy
	title   *bluemonday.Policy
}

func NewAnnouncementService(repo AnnouncementRepository) *AnnouncementService {
	return &AnnouncementService{
		repo:    repo,
		content: bluemonday.UGCPolicy(),
		title:   bluemonday.StrictPolicy(),
	}
}

func (s *AnnouncementService) List(ctx context.Context, filter model.AnnouncementFilter) ([]model.Announcement, error) {
	filter.Limit, filter.Offset = ClampPage(filter.Limit, filter.Offset)

	switch filter.Sort {
	case "":
		filter.Sort = model.AnnouncementSortDateDesc
	case model.AnnouncementSortDateAsc, model.AnnouncementSortDateDesc,
		model.AnnouncementSortNameAsc, model.AnnouncementSortNameDesc:
	default:
		return nil, fmt.Errorf("%w: unknown sort %q", ErrValidation, filter.Sort)
	}

	items, err := s.repo.ListAnnouncements(ctx, filter)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []model.Announcement{}
	}
	return items, nil
}

func (s *AnnouncementService) Get(ctx context.Context, id int64) (*model.Announcement, error) {
	a, err := s.repo.GetAnnouncement(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "announcement")
	}
	return a, nil
}

func (s *AnnouncementService) Create(ctx context.Context, req model.AnnouncementRequest) (*model.Announcement, error) {
	a, err := s.sanitize(req)
	if err != nil {
		return nil, err
	}
	created, err := s.repo.CreateAnnouncement(ctx, a)
	if err != nil {
		return nil, mapRepoError(err, "announcement")
	}
	return created, nil
}

func (s *AnnouncementService) Update(ctx context.Context, id int64, req model.AnnouncementRequest) (*model.Announcement, error) {
	a, err := s.sanitize(req)
	if err != nil {
		return nil, err
	}
	updated, err := s.repo.UpdateAnnouncement(ctx, id, a)
	if err != nil {
		return nil, mapRepoError(err, "announcement")
	}
	return updated, nil
}

func (s *AnnouncementService) Delete(ctx context.Context, id int64) error {
	return mapRepoError(s.repo.DeleteAnnouncement(ctx, id), "announcement")
}

func (s *AnnouncementService) sanitize(req model.AnnouncementRequest) (model.Announcement, error) {
	title := strings.TrimSpace(s.title.Sanitize(req.Title))
	content := strings.TrimSpace(s.content.Sanitize(req.Content))
	if title == "" || content == "" {
		return model.Announcement{}, fmt.Errorf("%w: title and content must not be empty", ErrValidation)
	}
	return model.Announcement{
		Title:    title,
		Content:  content,
		Datetime: req.Datetime,
	}, nil
}
