package video_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/saulo-duarte/professor/internal/video"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
)

func newFinder(t *testing.T, handler http.HandlerFunc) video.Finder {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	finder, err := video.NewYouTubeFinder(context.Background(), "test-key", option.WithEndpoint(srv.URL+"/"))
	require.NoError(t, err)
	return finder
}

func TestNewYouTubeFinder_MissingKey(t *testing.T) {
	_, err := video.NewYouTubeFinder(context.Background(), "")
	assert.ErrorIs(t, err, video.ErrMissingAPIKey)
}

func TestFindVideo(t *testing.T) {
	t.Run("FirstResult", func(t *testing.T) {
		var gotQuery, gotType, gotKey string
		finder := newFinder(t, func(w http.ResponseWriter, r *http.Request) {
			assert.True(t, strings.HasSuffix(r.URL.Path, "/search"), r.URL.Path)
			gotQuery = r.URL.Query().Get("q")
			gotType = r.URL.Query().Get("type")
			gotKey = r.URL.Query().Get("key")
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"items":[{"id":{"kind":"youtube#video","videoId":"abc123"}}]}`))
		})

		id, err := finder.FindVideo(context.Background(), "photosynthesis educational")
		require.NoError(t, err)
		assert.Equal(t, "abc123", id)
		assert.Equal(t, "photosynthesis educational", gotQuery)
		assert.Equal(t, "video", gotType)
		assert.Equal(t, "test-key", gotKey)
	})

	t.Run("NoItems", func(t *testing.T) {
		finder := newFinder(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"items":[]}`))
		})

		id, err := finder.FindVideo(context.Background(), "nothing")
		require.NoError(t, err)
		assert.Empty(t, id)
	})

	t.Run("APIError", func(t *testing.T) {
		finder := newFinder(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte(`{"error":{"code":403,"message":"quotaExceeded"}}`))
		})

		_, err := finder.FindVideo(context.Background(), "anything")
		assert.Error(t, err)
	})
}
