// Discord OAuth2 / REST API 클라이언트
//
// 환경변수:
//   - DISCORD_CLIENT_ID, DISCORD_CLIENT_SECRET: confidential client credentials
//   - DISCORD_API_URL: API base (default: https://discord.com/api/v10)
//   - DISCORD_TIMEOUT: per-call timeout

package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/plsapi/backend/internal/config"
	"github.com/plsapi/backend/internal/model"
	"golang.org/x/oauth2"
)

const maxDiscordBody = 1 << 20

type DiscordClient struct {
	oauth      *oauth2.Config
	apiURL     string
	httpClient *http.Client
}

func NewDiscordClient(cfg config.DiscordConfig) *DiscordClient {
	apiURL := strings.TrimSuffix(cfg.APIURL, "/")
	if apiURL == "" {
		apiURL = "https://discord.com/api/v10"
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &DiscordClient{
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Scopes:       []string{"identify", "guilds"},
			Endpoint: oauth2.Endpoint{
				AuthURL:   "https://discord.com/oauth2/authorize",
				TokenURL:  apiURL + "/oauth2/token",
				AuthStyle: oauth2.AuthStyleInHeader,
			},
		},
		apiURL:     apiURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Exchange trades a one-time authorization code for a provider access token.
func (c *DiscordClient) Exchange(ctx context.Context, code, redirectURI string) (string, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
	token, err := c.oauth.Exchange(ctx, code, oauth2.SetAuthURLParam("redirect_uri", redirectURI))
	if err != nil {
		return "", fmt.Errorf("discord token exchange: %w", err)
	}
	if token.AccessToken == "" {
		return "", fmt.Errorf("discord token exchange: empty access token")
	}
	return token.AccessToken, nil
}

// CurrentUser fetches GET /users/@me.
func (c *DiscordClient) CurrentUser(ctx context.Context, accessToken string) (*model.DiscordUser, error) {
	var user model.DiscordUser
	if err := c.getJSON(ctx, "/users/@me", accessToken, &user); err != nil {
		return nil, err
	}
	if user.ID == "" {
		return nil, fmt.Errorf("discord /users/@me: empty id")
	}
	return &user, nil
}

// CurrentUserGuilds fetches GET /users/@me/guilds.
func (c *DiscordClient) CurrentUserGuilds(ctx context.Context, accessToken string) ([]model.DiscordGuild, error) {
	var guilds []model.DiscordGuild
	if err := c.getJSON(ctx, "/users/@me/guilds", accessToken, &guilds); err != nil {
		return nil, err
	}
	return guilds, nil
}

// Revoke invalidates the access token on the provider side.
func (c *DiscordClient) Revoke(ctx context.Context, accessToken string) error {
	form := url.Values{
		"token":           {accessToken},
		"token_type_hint": {"access_token"},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL+"/oauth2/token/revoke", strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to create revoke request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(url.QueryEscape(c.oauth.ClientID), url.QueryEscape(c.oauth.ClientSecret))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("discord revoke: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxDiscordBody))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("discord revoke returned status: %d", resp.StatusCode)
	}
	return nil
}

func (c *DiscordClient) getJSON(ctx context.Context, path, accessToken string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	(&oauth2.Token{AccessToken: accessToken, TokenType: "Bearer"}).SetAuthHeader(req)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("discord %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxDiscordBody))
	if err != nil {
		return fmt.Errorf("failed to read discord response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("discord %s returned status: %d", path, resp.StatusCode)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse discord %s response: %w", path, err)
	}
	return nil
}
