package backend_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/saulo-duarte/professor/internal/backend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsk(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		var gotBody map[string]interface{}
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/ask", r.URL.Path)
			assert.NotEmpty(t, r.Header.Get("X-Request-Id"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"answer":{"definition":"d","key_notes":["a","b"],"application":"x"},"video_id":"abc123"}`))
		}))
		defer srv.Close()

		resp, err := backend.NewClient(srv.URL).Ask(context.Background(), "photosynthesis")
		require.NoError(t, err)

		assert.Equal(t, map[string]interface{}{"question": "photosynthesis"}, gotBody)
		assert.Equal(t, "d", resp.Answer.Definition)
		assert.Equal(t, []string{"a", "b"}, resp.Answer.KeyNotes)
		require.NotNil(t, resp.VideoID)
		assert.Equal(t, "abc123", *resp.VideoID)
	})

	t.Run("NullVideoAndMissingNotes", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"answer":{"definition":"d","application":"x"},"video_id":null}`))
		}))
		defer srv.Close()

		resp, err := backend.NewClient(srv.URL).Ask(context.Background(), "q")
		require.NoError(t, err)
		assert.Nil(t, resp.VideoID)
		assert.NotNil(t, resp.Answer.KeyNotes)
		assert.Empty(t, resp.Answer.KeyNotes)
	})

	t.Run("Non2xx", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"detail":"boom"}`, http.StatusInternalServerError)
		}))
		defer srv.Close()

		_, err := backend.NewClient(srv.URL).Ask(context.Background(), "q")
		assert.ErrorIs(t, err, backend.ErrProfessorOffline)
	})

	t.Run("EmptyBody", func(t *testing.T) {
		for name, handler := range map[string]http.HandlerFunc{
			"NoContent": func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNoContent)
			},
			"NullJSON": func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte("null"))
			},
		} {
			t.Run(name, func(t *testing.T) {
				srv := httptest.NewServer(handler)
				defer srv.Close()

				resp, err := backend.NewClient(srv.URL).Ask(context.Background(), "q")
				assert.Nil(t, resp)
				assert.ErrorIs(t, err, backend.ErrProfessorOffline)
			})
		}
	})

	t.Run("NetworkFailure", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		url := srv.URL
		srv.Close()

		_, err := backend.NewClient(url).Ask(context.Background(), "q")
		assert.ErrorIs(t, err, backend.ErrProfessorOffline)
	})
}
