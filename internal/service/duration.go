package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/plsapi/backend/internal/metrics"
)

// VideoLookup resolves a video id to its duration.
type VideoLookup interface {
	VideoDuration(ctx context.Context, videoID string) (time.Duration, error)
}

// ExtractVideoID returns the video id of a YouTube link. ok is false for
// any other host or shape.
func ExtractVideoID(link string) (string, bool) {
	u, err := url.Parse(strings.TrimSpace(link))
	if err != nil {
		return "", false
	}

	var id string
	switch u.Host {
	case "youtu.be":
		id = strings.TrimPrefix(u.Path, "/")
	case "www.youtube.com", "youtube.com":
		switch {
		case u.Path == "/watch":
			id = u.Query().Get("v")
		case strings.HasPrefix(u.Path, "/embed/"):
			id = pathSegment(u.Path, 2)
		case strings.HasPrefix(u.Path, "/v/"):
			id = pathSegment(u.Path, 2)
		}
	}

	if id == "" {
		return "", false
	}
	return id, true
}

func pathSegment(p string, i int) string {
	parts := strings.Split(p, "/")
	if len(parts) <= i {
		return ""
	}
	return parts[i]
}

// DurationResolver computes the duration field of a charbon from its
// replay link. Lookups are cached per video id.
type DurationResolver struct {
	lookup  VideoLookup
	cache   *expirable.LRU[string, int]
	metrics *metrics.Collector
	logger  *slog.Logger
}

func NewDurationResolver(lookup VideoLookup, size int, ttl time.Duration, m *metrics.Collector, logger *slog.Logger) *DurationResolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &DurationResolver{
		lookup:  lookup,
		cache:   expirable.NewLRU[string, int](size, nil, ttl),
		metrics: m,
		logger:  logger,
	}
}

// Lookup returns the duration of a video in whole seconds.
func (r *DurationResolver) Lookup(ctx context.Context, videoID string) (int, error) {
	if seconds, ok := r.cache.Get(videoID); ok {
		r.metrics.RecordCache(true)
		return seconds, nil
	}
	r.metrics.RecordCache(false)

	d, err := r.lookup.VideoDuration(ctx, videoID)
	r.metrics.RecordUpstream("youtube", "videos", err)
	if err != nil {
		r.logger.Warn("video duration lookup failed", "video_id", videoID, "error", err)
		return 0, fmt.Errorf("%w: %v", ErrUpstreamLookup, err)
	}

	seconds := int(d / time.Second)
	r.cache.Add(videoID, seconds)
	return seconds, nil
}

// Resolve maps a replay link to a duration. An absent or blank link clears
// the duration.
func (r *DurationResolver) Resolve(ctx context.Context, link *string) (*int, error) {
	if link == nil || strings.TrimSpace(*link) == "" {
		return nil, nil
	}

	id, ok := ExtractVideoID(*link)
	if !ok {
		return nil, fmt.Errorf("%w: replay_link is not a YouTube video link", ErrValidation)
	}

	seconds, err := r.Lookup(ctx, id)
	if err != nil {
		return nil, err
	}
	return &seconds, nil
}
