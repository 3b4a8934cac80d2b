package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/plsapi/backend/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseISODuration(t *testing.T) {
	tests := []struct {
		input string
		want  time.Duration
	}{
		{input: "PT1H2M3S", want: time.Hour + 2*time.Minute + 3*time.Second},
		{input: "PT45S", want: 45 * time.Second},
		{input: "PT10M", want: 10 * time.Minute},
		{input: "P1DT1S", want: 24*time.Hour + time.Second},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseISODuration(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseISODuration("1h2m")
	assert.Error(t, err)
}

func TestYouTubeVideoDuration(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/videos", r.URL.Path)
		assert.Equal(t, "contentDetails", r.URL.Query().Get("part"))
		assert.Equal(t, "yt-key", r.URL.Query().Get("key"))

		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("id") != "abc123" {
			_, _ = w.Write([]byte(`{"items":[]}`))
			return
		}
		_, _ = w.Write([]byte(`{"items":[{"id":"abc123","contentDetails":{"duration":"PT1H2M3S"}}]}`))
	}))
	defer srv.Close()

	c := NewYouTubeClient(config.YouTubeConfig{APIKey: "yt-key", APIURL: srv.URL, Timeout: time.Second})

	d, err := c.VideoDuration(context.Background(), "abc123")
	require.NoError(t, err)
	assert.Equal(t, 3723, int(d.Seconds()))

	_, err = c.VideoDuration(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrVideoNotFound)
}

func TestYouTubeVideoDurationUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewYouTubeClient(config.YouTubeConfig{APIKey: "bad", APIURL: srv.URL, Timeout: time.Second})

	_, err := c.VideoDuration(context.Background(), "abc123")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}
