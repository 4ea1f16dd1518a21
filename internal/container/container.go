package container

import (
	"context"

	"github.com/go-chi/chi/v5"

	"github.com/saulo-duarte/professor/internal/config"
	"github.com/saulo-duarte/professor/internal/lecture"
	"github.com/saulo-duarte/professor/internal/professor"
	"github.com/saulo-duarte/professor/internal/router"
	"github.com/saulo-duarte/professor/internal/web"
)

// Container builds the backend API. Every client is created here and
// injected, nothing is held in package-level variables.
type Container struct {
	Settings           *config.Settings
	ProfessorContainer *professor.ProfessorContainer
	Router             *chi.Mux
}

func New(ctx context.Context, settings *config.Settings) *Container {
	professorContainer := professor.NewProfessorContainer(ctx, settings)

	return &Container{
		Settings:           settings,
		ProfessorContainer: professorContainer,
		Router: router.New(router.RouterConfig{
			ProfessorHandler: professorContainer.Handler,
			AllowedOrigins:   settings.AllowedOrigins,
		}),
	}
}

func NewWeb(settings *config.Settings) (*web.WebContainer, error) {
	return web.NewWebContainer(settings)
}

func NewFaculty(ctx context.Context, settings *config.Settings) (*lecture.Faculty, error) {
	return lecture.NewFaculty(ctx, settings.GeminiKey(), settings.LectureModel)
}
