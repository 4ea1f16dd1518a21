package shell

import "github.com/saulo-duarte/professor/internal/professor"

// OfflineMessage is the only error text users ever see from the shell.
const OfflineMessage = "The Professor is currently offline. Please check back later."

type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseSuccess
	PhaseError
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseSuccess:
		return "success"
	case PhaseError:
		return "error"
	default:
		return "unknown"
	}
}

// State is an immutable snapshot. Answer is set only in PhaseSuccess and
// Message only in PhaseError.
type State struct {
	Phase    Phase                      `json:"phase"`
	Question string                     `json:"question,omitempty"`
	Answer   *professor.LectureResponse `json:"answer,omitempty"`
	Message  string                     `json:"message,omitempty"`
	Token    uint64                     `json:"token"`
}

func (s State) Loading() bool {
	return s.Phase == PhaseLoading
}

func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}
