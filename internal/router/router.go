package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/saulo-duarte/professor/internal/config"
	_ "github.com/saulo-duarte/professor/internal/docs"
	"github.com/saulo-duarte/professor/internal/middlewares"
	"github.com/saulo-duarte/professor/internal/professor"
)

type RouterConfig struct {
	ProfessorHandler *professor.Handler
	AllowedOrigins   []string
}

func New(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.Cors(cfg.AllowedOrigins))

	r.Get("/swagger/*", httpSwagger.WrapHandler)
	r.Get("/healthz", Healthz)

	r.Mount("/ask", professor.Routes(cfg.ProfessorHandler))
	return r
}

// Healthz godoc
// @Summary  Liveness probe
// @Tags     health
// @Produce  json
// @Success  200
// @Router   /healthz [get]
func Healthz(w http.ResponseWriter, r *http.Request) {
	config.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
