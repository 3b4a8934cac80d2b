package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVideoLookup struct {
	durations map[string]time.Duration
	calls     int
}

func (f *fakeVideoLookup) VideoDuration(_ context.Context, id string) (time.Duration, error) {
	f.calls++
	d, ok := f.durations[id]
	if !ok {
		return 0, errors.New("video not found")
	}
	return d, nil
}

func TestExtractVideoID(t *testing.T) {
	tests := []struct {
		link string
		want string
		ok   bool
	}{
		{link: "https://youtu.be/X", want: "X", ok: true},
		{link: "https://youtu.be/dQw4w9WgXcQ", want: "dQw4w9WgXcQ", ok: true},
		{link: "https://www.youtube.com/watch?v=Y", want: "Y", ok: true},
		{link: "https://youtube.com/watch?v=Y&t=42", want: "Y", ok: true},
		{link: "https://www.youtube.com/embed/Z", want: "Z", ok: true},
		{link: "https://youtube.com/v/W/extra", want: "W", ok: true},
		{link: "https://example.com/watch?v=Y", ok: false},
		{link: "https://www.youtube.com/watch", ok: false},
		{link: "https://www.youtube.com/channel/abc", ok: false},
		{link: "https://youtu.be/", ok: false},
		{link: "not a url", ok: false},
		{link: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.link, func(t *testing.T) {
			got, ok := ExtractVideoID(tt.link)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDurationResolverResolve(t *testing.T) {
	lookup := &fakeVideoLookup{durations: map[string]time.Duration{
		"abc": time.Hour + 2*time.Minute + 3*time.Second,
	}}
	r := NewDurationResolver(lookup, 16, time.Hour, nil, nil)
	ctx := context.Background()

	got, err := r.Resolve(ctx, nil)
	require.NoError(t, err)
	assert.Nil(t, got)

	blank := "  "
	got, err = r.Resolve(ctx, &blank)
	require.NoError(t, err)
	assert.Nil(t, got)

	link := "https://youtu.be/abc"
	got, err = r.Resolve(ctx, &link)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 3723, *got)

	_, err = r.Resolve(ctx, &link)
	require.NoError(t, err)
	assert.Equal(t, 1, lookup.calls, "second resolve must hit the cache")

	other := "https://example.com/video"
	_, err = r.Resolve(ctx, &other)
	assert.ErrorIs(t, err, ErrValidation)

	missing := "https://www.youtube.com/watch?v=missing"
	_, err = r.Resolve(ctx, &missing)
	assert.ErrorIs(t, err, ErrUpstreamLookup)
}
