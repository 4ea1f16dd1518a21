package professor

import (
	"context"
	"errors"
	"strings"

	"github.com/saulo-duarte/professor/internal/config"
	"github.com/saulo-duarte/professor/internal/video"
	"golang.org/x/sync/errgroup"
)

var (
	ErrServiceUnavailable = errors.New("AI Service unavailable (API Key missing).")
	ErrEmptyQuestion      = errors.New("question must not be empty")
)

type Service interface {
	Ask(ctx context.Context, question string) (*LectureResponse, error)
}

type service struct {
	provider Provider
	videos   video.Finder
}

// NewService accepts a nil provider (no Gemini key) and a nil finder (no YouTube key).
func NewService(provider Provider, videos video.Finder) Service {
	return &service{provider: provider, videos: videos}
}

func (s *service) Ask(ctx context.Context, question string) (*LectureResponse, error) {
	log := config.WithContext(ctx)

	question = strings.TrimSpace(question)
	if question == "" {
		return nil, ErrEmptyQuestion
	}
	if s.provider == nil {
		log.Warn("Rejecting question: Gemini API key missing")
		return nil, ErrServiceUnavailable
	}

	var (
		content *ProfessorContent
		videoID *string
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		c, err := s.provider.Explain(gctx, question)
		if err != nil {
			return err
		}
		content = c
		return nil
	})

	if s.videos != nil {
		g.Go(func() error {
			id, err := s.videos.FindVideo(gctx, BuildVideoQuery(question))
			if err != nil {
				log.WithError(err).Warn("YouTube search failed, answering without video")
				return nil
			}
			if id != "" {
				videoID = &id
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.WithField("has_video", videoID != nil).Infof("Answered question with %d key notes", len(content.KeyNotes))
	return &LectureResponse{Answer: *content, VideoID: videoID}, nil
}
