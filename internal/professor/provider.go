package professor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/saulo-duarte/professor/internal/config"
	"github.com/saulo-duarte/professor/internal/gemini"
	"google.golang.org/genai"
)

var (
	ErrMissingAPIKey = gemini.ErrMissingAPIKey
	ErrGeneration    = errors.New("gemini generation failed")
	ErrInvalidOutput = errors.New("gemini returned invalid JSON")
)

// ContentGenerator is the subset of *genai.Models used by the provider.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

type Provider interface {
	Explain(ctx context.Context, question string) (*ProfessorContent, error)
}

type geminiProvider struct {
	models ContentGenerator
	model  string
}

func NewGeminiProvider(ctx context.Context, apiKey, model string) (Provider, error) {
	client, err := gemini.NewClient(ctx, apiKey)
	if err != nil {
		return nil, err
	}
	return NewProvider(client.Models, model), nil
}

func NewProvider(models ContentGenerator, model string) Provider {
	return &geminiProvider{models: models, model: model}
}

type explanation struct {
	Definition  *string  `json:"definition"`
	KeyNotes    []string `json:"key_notes"`
	Application *string  `json:"application"`
}

func (p *geminiProvider) Explain(ctx context.Context, question string) (*ProfessorContent, error) {
	log := config.WithContext(ctx)

	result, err := p.models.GenerateContent(
		ctx,
		p.model,
		genai.Text(BuildExplainPrompt(question)),
		&genai.GenerateContentConfig{ResponseMIMEType: "application/json"},
	)
	if err != nil {
		log.WithError(err).Error("Gemini generation error")
		return nil, fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	raw := result.Text()
	log.Debugf("[PROFESSOR] raw Gemini response:\n%s", raw)

	var parsed explanation
	if err := json.Unmarshal([]byte(gemini.CleanOutput(raw)), &parsed); err != nil {
		log.WithError(err).Errorf("[PROFESSOR] failed to decode Gemini JSON:\n%s", raw)
		return nil, fmt.Errorf("%w: %v", ErrInvalidOutput, err)
	}

	content := &ProfessorContent{
		Definition:  fallbackDefinition,
		KeyNotes:    parsed.KeyNotes,
		Application: fallbackApplication,
	}
	if parsed.Definition != nil {
		content.Definition = *parsed.Definition
	}
	if parsed.Application != nil {
		content.Application = *parsed.Application
	}
	if content.KeyNotes == nil {
		content.KeyNotes = []string{}
	}
	return content, nil
}
