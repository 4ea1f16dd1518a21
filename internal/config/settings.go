package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Settings struct {
	Env       string `env:"APP_ENV" env-default:"local"`
	LogLevel  string `env:"LOG_LEVEL" env-default:"info"`
	LogFormat string `env:"LOG_FORMAT" env-default:"text"`

	Port    int `env:"PORT" env-default:"8000"`
	WebPort int `env:"WEB_PORT" env-default:"5173"`

	GoogleAPIKey  string `env:"GOOGLE_API_KEY"`
	GeminiAPIKey  string `env:"GEMINI_API_KEY"`
	YouTubeAPIKey string `env:"YOUTUBE_API_KEY"`

	ExplainModel string `env:"GEMINI_MODEL" env-default:"gemini-flash-latest"`
	LectureModel string `env:"LECTURE_MODEL" env-default:"gemini-2.0-flash-exp"`

	BackendURL     string   `env:"PROFESSOR_BACKEND_URL" env-default:"http://localhost:8000"`
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" env-separator:"," env-default:"http://localhost:5173,http://127.0.0.1:5173"`
}

// GeminiKey prefers GOOGLE_API_KEY over GEMINI_API_KEY.
func (s Settings) GeminiKey() string {
	if s.GoogleAPIKey != "" {
		return s.GoogleAPIKey
	}
	return s.GeminiAPIKey
}

// Load reads .env.local and .env when present, then the process environment.
// Variables already set in the environment are never overridden by the files.
func Load() (*Settings, error) {
	for _, file := range []string{".env.local", ".env"} {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", file, err)
		}
	}

	var s Settings
	if err := cleanenv.ReadEnv(&s); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}
	return &s, nil
}
