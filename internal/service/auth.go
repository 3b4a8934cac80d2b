package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/plsapi/backend/internal/config"
	"github.com/plsapi/backend/internal/db"
	"github.com/plsapi/backend/internal/metrics"
	"github.com/plsapi/backend/internal/model"
)

// DiscordProvider is the identity provider side of the login flow.
type DiscordProvider interface {
	Exchange(ctx context.Context, code, redirectURI string) (string, error)
	CurrentUser(ctx context.Context, accessToken string) (*model.DiscordUser, error)
	CurrentUserGuilds(ctx context.Context, accessToken string) ([]model.DiscordGuild, error)
	Revoke(ctx context.Context, accessToken string) error
}

type AuthService struct {
	discord       DiscordProvider
	codec         *TokenCodec
	actionneurs   ActionneurRepository
	guildID       string
	tokenTTL      time.Duration
	revokeTimeout time.Duration
	logger        *slog.Logger
	metrics       *metrics.Collector
	now           func() time.Time

	revokes sync.WaitGroup
}

func NewAuthService(
	discord DiscordProvider,
	codec *TokenCodec,
	actionneurs ActionneurRepository,
	cfg config.Config,
	logger *slog.Logger,
	m *metrics.Collector,
) (*AuthService, error) {
	if strings.TrimSpace(cfg.Discord.GuildID) == "" {
		return nil, fmt.Errorf("%w: DISCORD_GUILD_ID is required", ErrMisconfigured)
	}
	if cfg.Auth.TokenTTL <= 0 {
		return nil, fmt.Errorf("%w: TOKEN_TTL must be positive", ErrMisconfigured)
	}
	if logger == nil {
		logger = slog.Default()
	}
	revokeTimeout := cfg.Discord.RevokeTimeout
	if revokeTimeout <= 0 {
		revokeTimeout = 5 * time.Second
	}

	return &AuthService{
		discord:       discord,
		codec:         codec,
		actionneurs:   actionneurs,
		guildID:       cfg.Discord.GuildID,
		tokenTTL:      cfg.Auth.TokenTTL,
		revokeTimeout: revokeTimeout,
		logger:        logger,
		metrics:       m,
		now:           time.Now,
	}, nil
}

// Login exchanges a Discord authorization code for a bearer token. The
// caller gets a token only when the account belongs to the configured
// guild. The provider token is revoked once the profile reads are done,
// whichever way the flow ends.
func (s *AuthService) Login(ctx context.Context, code, redirectURI string) (*model.TokenResponse, error) {
	accessToken, err := s.discord.Exchange(ctx, code, redirectURI)
	s.metrics.RecordUpstream("discord", "exchange", err)
	if err != nil {
		s.metrics.RecordLogin("upstream_error")
		return nil, fmt.Errorf("%w: %v", ErrUpstreamAuth, err)
	}
	defer s.revokeAsync(ctx, accessToken)

	user, err := s.discord.CurrentUser(ctx, accessToken)
	s.metrics.RecordUpstream("discord", "profile", err)
	if err != nil {
		s.metrics.RecordLogin("upstream_error")
		return nil, fmt.Errorf("%w: %v", ErrUpstreamAuth, err)
	}

	guilds, err := s.discord.CurrentUserGuilds(ctx, accessToken)
	s.metrics.RecordUpstream("discord", "guilds", err)
	if err != nil {
		s.metrics.RecordLogin("upstream_error")
		return nil, fmt.Errorf("%w: %v", ErrUpstreamAuth, err)
	}

	if !containsGuild(guilds, s.guildID) {
		s.metrics.RecordLogin("not_member")
		s.logger.Info("login rejected: not a guild member", "user_id", user.ID)
		return nil, ErrNotMember
	}

	expiresAt := s.now().Add(s.tokenTTL)
	token, err := s.codec.Issue(user.ID, expiresAt)
	if err != nil {
		s.metrics.RecordLogin("error")
		return nil, err
	}

	s.metrics.RecordLogin("success")
	s.logger.Info("login succeeded", "user_id", user.ID, "name", user.DisplayName())
	return &model.TokenResponse{
		Token:  token,
		Expiry: expiresAt.Unix(),
	}, nil
}

// Wait blocks until every pending revoke has finished.
func (s *AuthService) Wait() {
	s.revokes.Wait()
}

func (s *AuthService) revokeAsync(ctx context.Context, accessToken string) {
	s.revokes.Add(1)
	go func() {
		defer s.revokes.Done()

		revokeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.revokeTimeout)
		defer cancel()

		err := s.discord.Revoke(revokeCtx, accessToken)
		s.metrics.RecordUpstream("discord", "revoke", err)
		if err != nil {
			s.logger.Warn("failed to revoke discord token", "error", err)
		}
	}()
}

func containsGuild(guilds []model.DiscordGuild, id string) bool {
	for _, g := range guilds {
		if g.ID == id {
			return true
		}
	}
	return false
}

// Me describes the bearer of subject. Callers without an actionneur record
// are reported as plain users.
func (s *AuthService) Me(ctx context.Context, subject string) (*model.MeResponse, error) {
	me := &model.MeResponse{ID: subject}

	id, err := model.ParseSnowflake(subject)
	if err != nil {
		return me, nil
	}

	a, err := s.actionneurs.GetActionneur(ctx, id)
	if err != nil {
		if db.IsNoRows(err) {
			return me, nil
		}
		return nil, err
	}

	me.Username = &a.Username
	me.IsActionneur = true
	me.IsAdmin = a.IsAdmin
	return me, nil
}

// EnsureAdmin provisions the bootstrap admin when it does not exist yet.
// An empty id disables bootstrapping.
func (s *AuthService) EnsureAdmin(ctx context.Context, id, username string) error {
	if strings.TrimSpace(id) == "" {
		return nil
	}
	if strings.TrimSpace(username) == "" {
		return fmt.Errorf("%w: BOOTSTRAP_ADMIN_USERNAME is required", ErrMisconfigured)
	}

	adminID, err := model.ParseSnowflake(strings.TrimSpace(id))
	if err != nil {
		return fmt.Errorf("%w: BOOTSTRAP_ADMIN_ID: %v", ErrMisconfigured, err)
	}

	_, err = s.actionneurs.GetActionneur(ctx, adminID)
	if err == nil {
		return nil
	}
	if !db.IsNoRows(err) {
		return err
	}

	_, err = s.actionneurs.CreateActionneur(ctx, model.Actionneur{
		ID:       adminID,
		Username: strings.TrimSpace(username),
		IsAdmin:  true,
	})
	if err != nil {
		return mapRepoError(err, "actionneur")
	}
	s.logger.Info("bootstrap admin created", "id", adminID.String())
	return nil
}
