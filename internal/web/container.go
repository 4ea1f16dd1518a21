package web

import (
	"github.com/saulo-duarte/professor/internal/backend"
	"github.com/saulo-duarte/professor/internal/config"
	"github.com/saulo-duarte/professor/internal/shell"
)

type WebContainer struct {
	Shell   *shell.Shell
	Handler *Handler
}

func NewWebContainer(settings *config.Settings) (*WebContainer, error) {
	renderer, err := NewRenderer()
	if err != nil {
		return nil, err
	}

	sh := shell.New(backend.NewClient(settings.BackendURL))
	return &WebContainer{
		Shell:   sh,
		Handler: NewHandler(sh, renderer),
	}, nil
}
