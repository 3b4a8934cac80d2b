package service

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/plsapi/backend/internal/mocks"
	"github.com/plsapi/backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestCharbonService(t *testing.T) (*CharbonService, *mocks.MockCharbonRepository) {
	svc, repo, _ := newTestCharbonServiceWithLookup(t)
	return svc, repo
}

func newTestCharbonServiceWithLookup(t *testing.T) (*CharbonService, *mocks.MockCharbonRepository, *fakeVideoLookup) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockCharbonRepository(ctrl)
	lookup := &fakeVideoLookup{durations: map[string]time.Duration{"abc": 90 * time.Second}}
	return NewCharbonService(repo, NewDurationResolver(lookup, 8, time.Hour, nil, nil)), repo, lookup
}

func TestClampPage(t *testing.T) {
	tests := []struct {
		limit, offset         int
		wantLimit, wantOffset int
	}{
		{0, 0, 10, 0},
		{-3, -1, 1, 0},
		{1, 5, 1, 5},
		{100, 0, 100, 0},
		{500, 20, 100, 20},
	}
	for _, tt := range tests {
		limit, offset := ClampPage(tt.limit, tt.offset)
		assert.Equal(t, tt.wantLimit, limit)
		assert.Equal(t, tt.wantOffset, offset)
	}
}

func TestCharbonListNormalizesFilter(t *testing.T) {
	svc, repo := newTestCharbonService(t)

	repo.EXPECT().ListCharbons(gomock.Any(), model.CharbonFilter{
		Limit: 100,
		Sort:  model.CharbonSortDateDesc,
	}).Return([]model.Charbon{{ID: 1, Title: "Analyse"}}, nil)

	views, err := svc.List(context.Background(), model.CharbonFilter{Limit: 1000, Offset: -4})
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, []model.Snowflake{}, views[0].Actionneurs)

	_, err = svc.List(context.Background(), model.CharbonFilter{Sort: "random"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.List(context.Background(), model.CharbonFilter{CourseType: "bio"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCharbonCreateDerivesDuration(t *testing.T) {
	svc, repo := newTestCharbonService(t)
	link := "https://youtu.be/abc"
	ninety := 90

	repo.EXPECT().CreateCharbon(gomock.Any(), model.CharbonWrite{
		Title:      "Thermo",
		Datetime:   1700000000,
		CourseID:   "MT1",
		ReplayLink: &link,
		Duration:   &ninety,
		Hosts:      []model.Snowflake{7, 8},
	}).Return(int64(12), nil)
	repo.EXPECT().GetCharbon(gomock.Any(), int64(12)).Return(&model.Charbon{
		ID: 12, Title: "Thermo", Duration: &ninety, Hosts: []model.Snowflake{7, 8},
	}, nil)

	view, err := svc.Create(context.Background(), model.CharbonRequest{
		Title:       "Thermo",
		Datetime:    1700000000,
		CourseID:    "MT1",
		ReplayLink:  &link,
		Actionneurs: []model.Snowflake{7, 8, 7},
	})
	require.NoError(t, err)
	assert.Equal(t, 90, *view.Duration)
}

func TestCharbonCreateRejectsBadLinks(t *testing.T) {
	svc, _ := newTestCharbonService(t)

	notYouTube := "https://vimeo.com/1"
	_, err := svc.Create(context.Background(), model.CharbonRequest{Title: "x", CourseID: "M1", ReplayLink: &notYouTube})
	assert.ErrorIs(t, err, ErrValidation)

	unknown := "https://youtu.be/missing"
	_, err = svc.Create(context.Background(), model.CharbonRequest{Title: "x", CourseID: "M1", ReplayLink: &unknown})
	assert.ErrorIs(t, err, ErrUpstreamLookup)
}

func TestCharbonUpdateClearsDuration(t *testing.T) {
	svc, repo := newTestCharbonService(t)
	empty := ""

	repo.EXPECT().UpdateCharbon(gomock.Any(), int64(3), model.CharbonWrite{
		Title:    "Elec",
		CourseID: "EL1",
		Hosts:    []model.Snowflake{},
	}).Return(nil)
	repo.EXPECT().GetCharbon(gomock.Any(), int64(3)).Return(&model.Charbon{ID: 3, Title: "Elec"}, nil).Times(2)

	view, err := svc.Update(context.Background(), 3, model.CharbonRequest{Title: "Elec", CourseID: "EL1", ReplayLink: &empty})
	require.NoError(t, err)
	assert.Nil(t, view.Duration)
}

func TestCharbonNotFound(t *testing.T) {
	svc, repo := newTestCharbonService(t)

	repo.EXPECT().GetCharbon(gomock.Any(), int64(404)).Return(nil, pgx.ErrNoRows)
	_, err := svc.Get(context.Background(), 404)
	assert.ErrorIs(t, err, ErrNotFound)

	repo.EXPECT().DeleteCharbon(gomock.Any(), int64(404)).Return(pgx.ErrNoRows)
	assert.ErrorIs(t, svc.Delete(context.Background(), 404), ErrNotFound)
}

func TestCharbonUpdateMissingSkipsLookup(t *testing.T) {
	svc, repo, lookup := newTestCharbonServiceWithLookup(t)
	link := "https://youtu.be/abc"

	repo.EXPECT().GetCharbon(gomock.Any(), int64(404)).Return(nil, pgx.ErrNoRows)

	_, err := svc.Update(context.Background(), 404, model.CharbonRequest{Title: "x", CourseID: "M1", ReplayLink: &link})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 0, lookup.calls)
}
