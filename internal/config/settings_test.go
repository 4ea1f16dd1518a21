package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/saulo-duarte/professor/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestLoad(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		chdirTemp(t)
		t.Setenv("GOOGLE_API_KEY", "")
		t.Setenv("GEMINI_API_KEY", "")

		s, err := config.Load()
		require.NoError(t, err)

		assert.Equal(t, 8000, s.Port)
		assert.Equal(t, "http://localhost:8000", s.BackendURL)
		assert.Equal(t, "gemini-flash-latest", s.ExplainModel)
		assert.Equal(t, "gemini-2.0-flash-exp", s.LectureModel)
		assert.Equal(t, []string{"http://localhost:5173", "http://127.0.0.1:5173"}, s.AllowedOrigins)
		assert.Empty(t, s.GeminiKey())
	})

	t.Run("GoogleKeyWins", func(t *testing.T) {
		chdirTemp(t)
		t.Setenv("GOOGLE_API_KEY", "google")
		t.Setenv("GEMINI_API_KEY", "gemini")

		s, err := config.Load()
		require.NoError(t, err)
		assert.Equal(t, "google", s.GeminiKey())
	})

	t.Run("DotEnvLocal", func(t *testing.T) {
		dir := chdirTemp(t)
		t.Setenv("YOUTUBE_API_KEY", "")
		os.Unsetenv("YOUTUBE_API_KEY")
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".env.local"), []byte("YOUTUBE_API_KEY=from-file\n"), 0o644))

		s, err := config.Load()
		require.NoError(t, err)
		assert.Equal(t, "from-file", s.YouTubeAPIKey)
		os.Unsetenv("YOUTUBE_API_KEY")
	})
}
