package service

import (
	"context"
	"fmt"

	"github.com/plsapi/backend/internal/model"
)

type CharbonService struct {
	repo      CharbonRepository
	durations *DurationResolver
}

func NewCharbonService(repo CharbonRepository, durations *DurationResolver) *CharbonService {
	return &CharbonService{repo: repo, durations: durations}
}

func (s *CharbonService) List(ctx context.Context, filter model.CharbonFilter) ([]model.CharbonView, error) {
	filter.Limit, filter.Offset = ClampPage(filter.Limit, filter.Offset)

	switch filter.Sort {
	case "":
		filter.Sort = model.CharbonSortDateDesc
	case model.CharbonSortDateAsc, model.CharbonSortDateDesc,
		model.CharbonSortDurationAsc, model.CharbonSortDurationDesc:
	default:
		return nil, fmt.Errorf("%w: unknown sort %q", ErrValidation, filter.Sort)
	}
	if filter.CourseType != "" && !filter.CourseType.Valid() {
		return nil, fmt.Errorf("%w: unknown course_type %q", ErrValidation, filter.CourseType)
	}

	charbons, err := s.repo.ListCharbons(ctx, filter)
	if err != nil {
		return nil, err
	}

	views := make([]model.CharbonView, 0, len(charbons))
	for _, c := range charbons {
		views = append(views, model.NewCharbonView(c))
	}
	return views, nil
}

func (s *CharbonService) Get(ctx context.Context, id int64) (*model.CharbonView, error) {
	c, err := s.repo.GetCharbon(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "charbon")
	}
	view := model.NewCharbonView(*c)
	return &view, nil
}

// Create stores a new charbon. The duration is always derived from the
// replay link.
func (s *CharbonService) Create(ctx context.Context, req model.CharbonRequest) (*model.CharbonView, error) {
	w, err := s.prepare(ctx, req)
	if err != nil {
		return nil, err
	}

	id, err := s.repo.CreateCharbon(ctx, w)
	if err != nil {
		return nil, mapRepoError(err, "charbon")
	}
	return s.Get(ctx, id)
}

// Update replaces every field of the charbon, host set included.
func (s *CharbonService) Update(ctx context.Context, id int64, req model.CharbonRequest) (*model.CharbonView, error) {
	if _, err := s.repo.GetCharbon(ctx, id); err != nil {
		return nil, mapRepoError(err, "charbon")
	}

	w, err := s.prepare(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdateCharbon(ctx, id, w); err != nil {
		return nil, mapRepoError(err, "charbon")
	}
	return s.Get(ctx, id)
}

func (s *CharbonService) Delete(ctx context.Context, id int64) error {
	return mapRepoError(s.repo.DeleteCharbon(ctx, id), "charbon")
}

func (s *CharbonService) prepare(ctx context.Context, req model.CharbonRequest) (model.CharbonWrite, error) {
	duration, err := s.durations.Resolve(ctx, req.ReplayLink)
	if err != nil {
		return model.CharbonWrite{}, err
	}

	replayLink := req.ReplayLink
	if duration == nil {
		replayLink = nil
	}

	return model.CharbonWrite{
		Title:       req.Title,
		Description: req.Description,
		Datetime:    req.Datetime,
		CourseID:    req.CourseID,
		ReplayLink:  replayLink,
		Duration:    duration,
		Hosts:       uniqueHosts(req.Actionneurs),
	}, nil
}

func uniqueHosts(ids []model.Snowflake) []model.Snowflake {
	seen := make(map[model.Snowflake]struct{}, len(ids))
	out := make([]model.Snowflake, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
