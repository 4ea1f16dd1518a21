package backend

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/saulo-duarte/professor/internal/config"
	"github.com/saulo-duarte/professor/internal/professor"
)

var ErrProfessorOffline = errors.New("professor backend unavailable")

type Client struct {
	http *resty.Client
}

func NewClient(baseURL string) *Client {
	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetHeader("Content-Type", "application/json")
	client.SetHeader("Accept", "application/json")

	return &Client{http: client}
}

// Ask posts the question to /ask. Every failure wraps ErrProfessorOffline.
func (c *Client) Ask(ctx context.Context, question string) (*professor.LectureResponse, error) {
	requestID := uuid.NewString()
	log := config.WithContext(ctx).WithField("backend_request_id", requestID)

	var result *professor.LectureResponse
	res, err := c.http.R().
		SetContext(ctx).
		SetHeader("X-Request-Id", requestID).
		SetBody(professor.StudentQuestion{Question: question}).
		SetResult(&result).
		ForceContentType("application/json").
		Post("/ask")
	if err != nil {
		log.WithError(err).Error("Professor backend call failed")
		return nil, fmt.Errorf("%w: %w", ErrProfessorOffline, err)
	}
	if res.IsError() {
		log.WithField("status", res.StatusCode()).Errorf("Professor backend answered %s: %s", res.Status(), res.String())
		return nil, fmt.Errorf("%w: status %d", ErrProfessorOffline, res.StatusCode())
	}
	if res.StatusCode() == http.StatusNoContent || result == nil {
		log.WithField("status", res.StatusCode()).Error("Professor backend answered without a body")
		return nil, fmt.Errorf("%w: empty response", ErrProfessorOffline)
	}
	if result.Answer.KeyNotes == nil {
		result.Answer.KeyNotes = []string{}
	}

	return result, nil
}
