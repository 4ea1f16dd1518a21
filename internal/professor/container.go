package professor

import (
	"context"

	"github.com/saulo-duarte/professor/internal/config"
	"github.com/saulo-duarte/professor/internal/video"
)

type ProfessorContainer struct {
	Handler *Handler
	Service Service
}

func NewProfessorContainer(ctx context.Context, settings *config.Settings) *ProfessorContainer {
	log := config.WithContext(ctx)

	provider, err := NewGeminiProvider(ctx, settings.GeminiKey(), settings.ExplainModel)
	if err != nil {
		log.WithError(err).Error("CRITICAL: Gemini provider unavailable, /ask will answer 503")
		provider = nil
	}

	var finder video.Finder
	if settings.YouTubeAPIKey != "" {
		finder, err = video.NewYouTubeFinder(ctx, settings.YouTubeAPIKey)
		if err != nil {
			log.WithError(err).Warn("YouTube search disabled")
			finder = nil
		}
	}

	log.WithField("gemini", provider != nil).WithField("youtube", finder != nil).Info("Professor backend configured")

	service := NewService(provider, finder)
	return &ProfessorContainer{
		Handler: NewHandler(service),
		Service: service,
	}
}
