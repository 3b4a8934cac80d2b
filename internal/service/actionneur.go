package service

import (
	"context"
	"strings"

	"github.com/plsapi/backend/internal/model"
)

type ActionneurService struct {
	repo ActionneurRepository
}

func NewActionneurService(repo ActionneurRepository) *ActionneurService {
	return &ActionneurService{repo: repo}
}

func (s *ActionneurService) List(ctx context.Context) ([]model.Actionneur, error) {
	items, err := s.repo.ListActionneurs(ctx)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []model.Actionneur{}
	}
	return items, nil
}

func (s *ActionneurService) Create(ctx context.Context, req model.CreateActionneurRequest) (*model.Actionneur, error) {
	a, err := s.repo.CreateActionneur(ctx, model.Actionneur{
		ID:       req.ID,
		Username: strings.TrimSpace(req.Username),
		IsAdmin:  req.IsAdmin,
	})
	if err != nil {
		return nil, mapRepoError(err, "actionneur")
	}
	return a, nil
}

func (s *ActionneurService) Delete(ctx context.Context, id model.Snowflake) error {
	return mapRepoError(s.repo.DeleteActionneur(ctx, id), "actionneur")
}
