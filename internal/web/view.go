package web

import (
	"net/url"

	"github.com/saulo-duarte/professor/internal/shell"
)

const (
	pageTitle    = "AI Professor"
	embedBaseURL = "https://www.youtube.com/embed/"
)

type View struct {
	Title         string
	Question      string
	Loading       bool
	InputDisabled bool
	Error         string
	Answer        *AnswerView

	// Refresh makes the browser poll while a request is in flight.
	Refresh bool
}

type AnswerView struct {
	Definition  string
	KeyNotes    []string
	Application string
	VideoURL    string
}

type BubbleView struct {
	Text  string
	Error string
}

func (v View) Bubble() BubbleView {
	return BubbleView{Error: v.Error}
}

// NewView maps a shell state onto what the page shows. The answer is only
// rendered in the success phase.
func NewView(st shell.State) View {
	v := View{
		Title:         pageTitle,
		Question:      st.Question,
		Loading:       st.Loading(),
		InputDisabled: st.Loading(),
	}

	switch st.Phase {
	case shell.PhaseLoading:
		v.Refresh = true
	case shell.PhaseError:
		v.Error = st.Message
	case shell.PhaseSuccess:
		if st.Answer != nil {
			a := st.Answer.Answer
			v.Answer = &AnswerView{
				Definition:  a.Definition,
				KeyNotes:    a.KeyNotes,
				Application: a.Application,
			}
			if st.Answer.VideoID != nil && *st.Answer.VideoID != "" {
				v.Answer.VideoURL = EmbedURL(*st.Answer.VideoID)
			}
		}
	}
	return v
}

func EmbedURL(videoID string) string {
	return embedBaseURL + url.PathEscape(videoID)
}
