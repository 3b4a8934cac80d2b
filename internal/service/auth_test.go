package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/plsapi/backend/internal/config"
	"github.com/plsapi/backend/internal/mocks"
	"github.com/plsapi/backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeDiscord struct {
	mu       sync.Mutex
	calls    []string
	user     *model.DiscordUser
	guilds   []model.DiscordGuild
	failStep string
}

func (f *fakeDiscord) record(step string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, step)
	if f.failStep == step {
		return errors.New(step + " failed")
	}
	return nil
}

func (f *fakeDiscord) Exchange(_ context.Context, code, _ string) (string, error) {
	if err := f.record("exchange"); err != nil {
		return "", err
	}
	return "access-" + code, nil
}

func (f *fakeDiscord) CurrentUser(context.Context, string) (*model.DiscordUser, error) {
	if err := f.record("profile"); err != nil {
		return nil, err
	}
	return f.user, nil
}

func (f *fakeDiscord) CurrentUserGuilds(context.Context, string) ([]model.DiscordGuild, error) {
	if err := f.record("guilds"); err != nil {
		return nil, err
	}
	return f.guilds, nil
}

func (f *fakeDiscord) Revoke(ctx context.Context, _ string) error {
	if _, ok := ctx.Deadline(); !ok {
		return errors.New("revoke without deadline")
	}
	return f.record("revoke")
}

func (f *fakeDiscord) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func guilds(ids ...string) []model.DiscordGuild {
	out := make([]model.DiscordGuild, 0, len(ids))
	for _, id := range ids {
		out = append(out, model.DiscordGuild{ID: id})
	}
	return out
}

func testConfig() config.Config {
	return config.Config{
		Auth:    config.AuthConfig{TokenTTL: time.Hour},
		Discord: config.DiscordConfig{GuildID: "2", RevokeTimeout: time.Second},
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestAuthService(t *testing.T, discord DiscordProvider, repo ActionneurRepository) *AuthService {
	t.Helper()
	svc, err := NewAuthService(discord, newTestCodec(t), repo, testConfig(), discardLogger(), nil)
	require.NoError(t, err)
	return svc
}

func TestLoginMember(t *testing.T) {
	discord := &fakeDiscord{
		user:   &model.DiscordUser{ID: "42", GlobalName: "Nelly"},
		guilds: guilds("1", "2", "3"),
	}
	svc := newTestAuthService(t, discord, nil)
	fixed := time.Now().Truncate(time.Second)
	svc.now = func() time.Time { return fixed }

	resp, err := svc.Login(context.Background(), "code", "https://pls.example.org/callback")
	require.NoError(t, err)
	svc.Wait()

	assert.Equal(t, fixed.Add(time.Hour).Unix(), resp.Expiry)
	assert.Equal(t, []string{"exchange", "profile", "guilds", "revoke"}, discord.Calls())

	subject, err := newTestCodec(t).Verify(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "42", subject)
}

func TestLoginNotMember(t *testing.T) {
	discord := &fakeDiscord{
		user:   &model.DiscordUser{ID: "42"},
		guilds: guilds("1", "3"),
	}
	svc := newTestAuthService(t, discord, nil)

	_, err := svc.Login(context.Background(), "code", "https://pls.example.org/callback")
	svc.Wait()

	assert.ErrorIs(t, err, ErrNotMember)
	assert.Equal(t, []string{"exchange", "profile", "guilds", "revoke"}, discord.Calls())
}

func TestLoginUpstreamFailures(t *testing.T) {
	tests := []struct {
		failStep string
		want     []string
	}{
		{failStep: "exchange", want: []string{"exchange"}},
		{failStep: "profile", want: []string{"exchange", "profile", "revoke"}},
		{failStep: "guilds", want: []string{"exchange", "profile", "guilds", "revoke"}},
	}

	for _, tt := range tests {
		t.Run(tt.failStep, func(t *testing.T) {
			discord := &fakeDiscord{
				user:     &model.DiscordUser{ID: "42"},
				guilds:   guilds("2"),
				failStep: tt.failStep,
			}
			svc := newTestAuthService(t, discord, nil)

			_, err := svc.Login(context.Background(), "code", "https://pls.example.org/callback")
			svc.Wait()

			assert.ErrorIs(t, err, ErrUpstreamAuth)
			assert.Equal(t, tt.want, discord.Calls())
		})
	}
}

func TestLoginRevokeFailureIsSwallowed(t *testing.T) {
	discord := &fakeDiscord{
		user:     &model.DiscordUser{ID: "42"},
		guilds:   guilds("2"),
		failStep: "revoke",
	}
	svc := newTestAuthService(t, discord, nil)

	resp, err := svc.Login(context.Background(), "code", "https://pls.example.org/callback")
	svc.Wait()

	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
}

func TestLoginRevokeOutlivesRequestContext(t *testing.T) {
	discord := &fakeDiscord{
		user:   &model.DiscordUser{ID: "42"},
		guilds: guilds("2"),
	}
	svc := newTestAuthService(t, discord, nil)

	ctx, cancel := context.WithCancel(context.Background())
	_, err := svc.Login(ctx, "code", "https://pls.example.org/callback")
	cancel()
	svc.Wait()

	require.NoError(t, err)
	assert.Contains(t, discord.Calls(), "revoke")
}

func TestNewAuthServiceMisconfigured(t *testing.T) {
	cfg := testConfig()
	cfg.Discord.GuildID = ""
	_, err := NewAuthService(&fakeDiscord{}, newTestCodec(t), nil, cfg, nil, nil)
	assert.ErrorIs(t, err, ErrMisconfigured)
}

func TestMe(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockActionneurRepository(ctrl)
	svc := newTestAuthService(t, &fakeDiscord{}, repo)
	ctx := context.Background()

	repo.EXPECT().GetActionneur(gomock.Any(), model.Snowflake(7)).
		Return(&model.Actionneur{ID: 7, Username: "alice", IsAdmin: true}, nil)
	me, err := svc.Me(ctx, "7")
	require.NoError(t, err)
	require.NotNil(t, me.Username)
	assert.Equal(t, "alice", *me.Username)
	assert.True(t, me.IsActionneur)
	assert.True(t, me.IsAdmin)

	repo.EXPECT().GetActionneur(gomock.Any(), model.Snowflake(8)).Return(nil, pgx.ErrNoRows)
	me, err = svc.Me(ctx, "8")
	require.NoError(t, err)
	assert.Equal(t, &model.MeResponse{ID: "8"}, me)

	me, err = svc.Me(ctx, "not-a-snowflake")
	require.NoError(t, err)
	assert.False(t, me.IsActionneur)
}

func TestEnsureAdmin(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockActionneurRepository(ctrl)
	svc := newTestAuthService(t, &fakeDiscord{}, repo)
	ctx := context.Background()

	require.NoError(t, svc.EnsureAdmin(ctx, "", ""))

	repo.EXPECT().GetActionneur(gomock.Any(), model.Snowflake(99)).Return(nil, pgx.ErrNoRows)
	repo.EXPECT().CreateActionneur(gomock.Any(), model.Actionneur{ID: 99, Username: "root", IsAdmin: true}).
		Return(&model.Actionneur{ID: 99, Username: "root", IsAdmin: true}, nil)
	require.NoError(t, svc.EnsureAdmin(ctx, "99", "root"))

	repo.EXPECT().GetActionneur(gomock.Any(), model.Snowflake(99)).
		Return(&model.Actionneur{ID: 99, Username: "root", IsAdmin: true}, nil)
	require.NoError(t, svc.EnsureAdmin(ctx, "99", "root"))

	assert.ErrorIs(t, svc.EnsureAdmin(ctx, "abc", "root"), ErrMisconfigured)
	assert.ErrorIs(t, svc.EnsureAdmin(ctx, "99", ""), ErrMisconfigured)
}
