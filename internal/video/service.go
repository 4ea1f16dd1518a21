package video

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/saulo-duarte/professor/internal/config"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

var ErrMissingAPIKey = errors.New("youtube api key is not configured")

type Finder interface {
	// FindVideo returns the id of the best match, or "" when nothing matched.
	FindVideo(ctx context.Context, query string) (string, error)
}

type youtubeFinder struct {
	srv *youtube.Service
}

func NewYouTubeFinder(ctx context.Context, apiKey string, opts ...option.ClientOption) (Finder, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	opts = append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)
	srv, err := youtube.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube service client: %w", err)
	}
	return &youtubeFinder{srv: srv}, nil
}

func (f *youtubeFinder) FindVideo(ctx context.Context, query string) (string, error) {
	log := config.WithContext(ctx)

	resp, err := f.srv.Search.List([]string{"snippet"}).
		Q(query).
		Type("video").
		MaxResults(1).
		Context(ctx).
		Do()
	if err != nil {
		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) && apiErr.Code == http.StatusForbidden {
			log.Warnf("YouTube quota or key rejected for query %q", query)
		}
		return "", fmt.Errorf("youtube search: %w", err)
	}

	for _, item := range resp.Items {
		if item.Id != nil && item.Id.VideoId != "" {
			return item.Id.VideoId, nil
		}
	}

	log.Debugf("No YouTube video found for query %q", query)
	return "", nil
}
