package lecture

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"iter"
	"strings"

	"github.com/saulo-duarte/professor/internal/config"
	"github.com/saulo-duarte/professor/internal/gemini"
	"google.golang.org/genai"
)

var (
	ErrMissingAPIKey    = errors.New("Department Funding Missing: API Key is not configured.")
	ErrOnSabbatical     = errors.New("The Professor is currently on sabbatical (Connection Failed). Please try again later.")
	ErrEmptyTopic       = errors.New("topic must not be empty")
	ErrMalformedLecture = errors.New("lecture is not valid JSON")
)

// ContentStreamer is the subset of *genai.Models used by Faculty.
type ContentStreamer interface {
	GenerateContentStream(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) iter.Seq2[*genai.GenerateContentResponse, error]
}

type Faculty struct {
	models ContentStreamer
	model  string
}

// NewFaculty never fails on a missing key: it logs and returns a Faculty whose
// Prepare calls fail immediately with ErrMissingAPIKey.
func NewFaculty(ctx context.Context, apiKey, model string) (*Faculty, error) {
	client, err := gemini.NewClient(ctx, apiKey)
	if errors.Is(err, gemini.ErrMissingAPIKey) {
		config.WithContext(ctx).Error("CRITICAL: Gemini API key is missing. The Professor cannot lecture without a contract.")
		return &Faculty{model: model}, nil
	}
	if err != nil {
		return nil, err
	}
	return NewFacultyWithModels(client.Models, model), nil
}

func NewFacultyWithModels(models ContentStreamer, model string) *Faculty {
	return &Faculty{models: models, model: model}
}

// Prepare starts a streaming lecture for topic. Generation failures are logged
// and surface in the stream as ErrOnSabbatical.
func (f *Faculty) Prepare(ctx context.Context, topic string) (Stream, error) {
	if f.models == nil {
		return nil, ErrMissingAPIKey
	}
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, ErrEmptyTopic
	}

	log := config.WithContext(ctx).WithField("topic", topic)
	upstream := f.models.GenerateContentStream(ctx, f.model, genai.Text(topic), &genai.GenerateContentConfig{
		SystemInstruction: gemini.SystemInstruction(academicGuidelines),
		ResponseMIMEType:  "application/json",
	})

	return func(yield func(string, error) bool) {
		for resp, err := range upstream {
			if err != nil {
				log.WithError(err).Error("Lecture preparation failed")
				yield("", ErrOnSabbatical)
				return
			}
			text := resp.Text()
			if text == "" {
				continue
			}
			if !yield(text, nil) {
				return
			}
		}
	}, nil
}

// Accumulate drains the stream and parses the concatenated text once.
func Accumulate(ctx context.Context, stream Stream) (*Material, error) {
	var sb strings.Builder
	for chunk, err := range stream {
		if err != nil {
			return nil, err
		}
		sb.WriteString(chunk)
	}

	raw := sb.String()
	var m Material
	if err := json.Unmarshal([]byte(gemini.CleanOutput(raw)), &m); err != nil {
		config.WithContext(ctx).WithError(err).Errorf("[LECTURE] accumulated text is not JSON:\n%s", raw)
		return nil, fmt.Errorf("%w: %v", ErrMalformedLecture, err)
	}
	return &m, nil
}
