package web

import (
	"context"
	"net/http"

	"github.com/saulo-duarte/professor/internal/config"
	"github.com/saulo-duarte/professor/internal/shell"
)

type Handler struct {
	shell    *shell.Shell
	renderer *Renderer
}

func NewHandler(sh *shell.Shell, renderer *Renderer) *Handler {
	return &Handler{shell: sh, renderer: renderer}
}

func (h *Handler) Page(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.renderer.Render(w, NewView(h.shell.State())); err != nil {
		log.WithError(err).Error("Failed to render page")
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

func (h *Handler) Question(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	if err := r.ParseForm(); err != nil {
		log.WithError(err).Warn("Invalid question form")
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	input := shell.NewInput()
	input.SetValue(r.PostFormValue("question"))
	input.SetDisabled(h.shell.State().Loading())

	if text, ok := input.Submit(); ok {
		// The request outlives this handler; keep the request id for logging only.
		h.shell.Start(context.WithoutCancel(r.Context()), text)
	} else {
		log.Debug("Ignoring empty or concurrent question submit")
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) State(w http.ResponseWriter, r *http.Request) {
	config.JSON(w, http.StatusOK, h.shell.State())
}
