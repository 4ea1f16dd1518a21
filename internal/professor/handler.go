package professor

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/saulo-duarte/professor/internal/config"
)

type Handler struct {
	service  Service
	validate *validator.Validate
}

func NewHandler(s Service) *Handler {
	return &Handler{
		service:  s,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Ask godoc
// @Summary      Ask the professor
// @Description  Explains a topic and looks up an educational video for it.
// @Tags         professor
// @Accept       json
// @Produce      json
// @Param        request body StudentQuestion true "Question"
// @Success      200 {object} LectureResponse
// @Failure      400 {object} config.ErrorResponse
// @Failure      500 {object} config.ErrorResponse
// @Failure      503 {object} config.ErrorResponse
// @Router       /ask [post]
func (h *Handler) Ask(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req StudentQuestion
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Warn("Invalid request body for /ask")
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	req.Question = strings.TrimSpace(req.Question)
	if err := h.validate.Struct(req); err != nil {
		config.Error(w, http.StatusBadRequest, "question must not be empty")
		return
	}

	resp, err := h.service.Ask(r.Context(), req.Question)
	switch {
	case err == nil:
		config.JSON(w, http.StatusOK, resp)
	case errors.Is(err, ErrEmptyQuestion):
		config.Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrServiceUnavailable):
		config.Error(w, http.StatusServiceUnavailable, err.Error())
	case errors.Is(err, ErrGeneration):
		log.WithError(err).Error("Failed to generate lecture")
		config.Error(w, http.StatusServiceUnavailable, "AI Service Error: "+err.Error())
	default:
		log.WithError(err).Error("Server error while answering question")
		config.Error(w, http.StatusInternalServerError, err.Error())
	}
}
