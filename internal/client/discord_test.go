package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/plsapi/backend/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

type fakeDiscord struct {
	t          *testing.T
	tokenCalls int
	revoked    []string
	tokenFail  bool
}

func (f *fakeDiscord) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/oauth2/token", func(w http.ResponseWriter, r *http.Request) {
		f.tokenCalls++
		id, secret, ok := r.BasicAuth()
		assert.True(f.t, ok)
		assert.Equal(f.t, "client-id", id)
		assert.Equal(f.t, "client-secret", secret)
		assert.NoError(f.t, r.ParseForm())
		assert.Equal(f.t, "authorization_code", r.PostForm.Get("grant_type"))
		assert.Equal(f.t, "the-code", r.PostForm.Get("code"))
		assert.Equal(f.t, "https://pls.example.org/callback", r.PostForm.Get("redirect_uri"))

		if f.tokenFail {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"invalid_grant"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token": "access-123",
			"token_type":   "Bearer",
			"expires_in":   604800,
		})
	})
	mux.HandleFunc("/users/@me", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(f.t, "Bearer access-123", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"80351110224678912","username":"nelly","global_name":"Nelly"}`))
	})
	mux.HandleFunc("/users/@me/guilds", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(f.t, "Bearer access-123", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"1","name":"one"},{"id":"2","name":"two"}]`))
	})
	mux.HandleFunc("/oauth2/token/revoke", func(w http.ResponseWriter, r *http.Request) {
		_, _, ok := r.BasicAuth()
		assert.True(f.t, ok)
		assert.NoError(f.t, r.ParseForm())
		assert.Equal(f.t, "access_token", r.PostForm.Get("token_type_hint"))
		f.revoked = append(f.revoked, r.PostForm.Get("token"))
		w.WriteHeader(http.StatusOK)
	})
	return mux
}

func newTestDiscordClient(t *testing.T, fake *fakeDiscord) *DiscordClient {
	t.Helper()
	srv := httptest.NewServer(fake.handler())
	t.Cleanup(srv.Close)
	return NewDiscordClient(config.DiscordConfig{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		APIURL:       srv.URL + "/",
		Timeout:      2 * time.Second,
	})
}

func TestDiscordClientFlow(t *testing.T) {
	fake := &fakeDiscord{t: t}
	c := newTestDiscordClient(t, fake)
	ctx := context.Background()

	token, err := c.Exchange(ctx, "the-code", "https://pls.example.org/callback")
	require.NoError(t, err)
	assert.Equal(t, "access-123", token)
	assert.Equal(t, 1, fake.tokenCalls)

	user, err := c.CurrentUser(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "80351110224678912", user.ID)
	assert.Equal(t, "Nelly", user.DisplayName())

	guilds, err := c.CurrentUserGuilds(ctx, token)
	require.NoError(t, err)
	require.Len(t, guilds, 2)
	assert.Equal(t, "2", guilds[1].ID)

	require.NoError(t, c.Revoke(ctx, token))
	assert.Equal(t, []string{"access-123"}, fake.revoked)
}

func TestDiscordClientExchangeRejected(t *testing.T) {
	fake := &fakeDiscord{t: t, tokenFail: true}
	c := newTestDiscordClient(t, fake)

	_, err := c.Exchange(context.Background(), "the-code", "https://pls.example.org/callback")
	require.Error(t, err)

	var retrieveErr *oauth2.RetrieveError
	assert.True(t, errors.As(err, &retrieveErr))
}

func TestDiscordClientNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewDiscordClient(config.DiscordConfig{APIURL: srv.URL, Timeout: time.Second})

	_, err := c.CurrentUser(context.Background(), "expired")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")

	err = c.Revoke(context.Background(), "expired")
	require.Error(t, err)
}
