package gemini_test

import (
	"context"
	"testing"

	"github.com/saulo-duarte/professor/internal/gemini"
	"github.com/stretchr/testify/assert"
)

func TestCleanOutput(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: `{"a":1}`, want: `{"a":1}`},
		{name: "json fence", in: "```json\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "upper fence", in: "```JSON {\"a\":1} ```", want: `{"a":1}`},
		{name: "bare fence", in: "  ```\n{}\n```  ", want: `{}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, gemini.CleanOutput(tt.in))
		})
	}
}

func TestNewClient_MissingKey(t *testing.T) {
	_, err := gemini.NewClient(context.Background(), "")
	assert.ErrorIs(t, err, gemini.ErrMissingAPIKey)
}
