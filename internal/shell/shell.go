package shell

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/saulo-duarte/professor/internal/config"
	"github.com/saulo-duarte/professor/internal/professor"
	"github.com/sirupsen/logrus"
)

type Asker interface {
	Ask(ctx context.Context, question string) (*professor.LectureResponse, error)
}

// Listener receives state snapshots. It must not call Submit or Reset synchronously.
type Listener func(State)

// Shell owns the request lifecycle. Only the most recent submission may
// change the state: older submissions are cancelled and their results dropped.
type Shell struct {
	asker Asker

	mu        sync.Mutex
	state     State
	token     uint64
	cancel    context.CancelFunc
	listeners map[int]Listener
	nextID    int

	publishMu sync.Mutex
	published uint64
}

func New(asker Asker) *Shell {
	return &Shell{
		asker:     asker,
		listeners: make(map[int]Listener),
	}
}

func (s *Shell) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registers fn and returns a function removing it.
func (s *Shell) Subscribe(fn Listener) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

// Submit asks the backend and blocks until the answer arrives. Whitespace-only
// text issues no request. The returned bool reports whether this submission's
// outcome became the current state; the State is the current state either way.
func (s *Shell) Submit(ctx context.Context, text string) (State, bool) {
	sub, ok := s.begin(ctx, text)
	if !ok {
		return s.State(), false
	}
	return s.finish(sub)
}

// Start is the asynchronous form of Submit. The shell is already loading when
// Start returns; the channel receives the current state once the request resolves.
func (s *Shell) Start(ctx context.Context, text string) (<-chan State, bool) {
	sub, ok := s.begin(ctx, text)
	if !ok {
		return nil, false
	}

	done := make(chan State, 1)
	go func() {
		st, _ := s.finish(sub)
		done <- st
	}()
	return done, true
}

type submission struct {
	ctx      context.Context
	cancel   context.CancelFunc
	token    uint64
	question string
	log      *logrus.Entry
}

func (s *Shell) begin(ctx context.Context, text string) (submission, bool) {
	question := strings.TrimSpace(text)
	if question == "" {
		return submission{}, false
	}

	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.token++
	token := s.token
	reqCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.state = State{Phase: PhaseLoading, Question: question, Token: token}
	loading := s.state
	s.mu.Unlock()

	s.publish(loading)

	log := config.WithContext(ctx).WithFields(logrus.Fields{
		"submission":    token,
		"submission_id": uuid.NewString(),
	})
	log.Infof("Asking the professor about %q", question)

	return submission{ctx: reqCtx, cancel: cancel, token: token, question: question, log: log}, true
}

func (s *Shell) finish(sub submission) (State, bool) {
	defer sub.cancel()

	resp, err := s.asker.Ask(sub.ctx, sub.question)

	s.mu.Lock()
	if sub.token != s.token {
		current := s.state
		s.mu.Unlock()
		sub.log.Debug("Dropping result of superseded submission")
		return current, false
	}
	s.cancel = nil
	if err != nil {
		sub.log.WithError(err).Error("Professor request failed")
		s.state = State{Phase: PhaseError, Question: sub.question, Message: OfflineMessage, Token: sub.token}
	} else {
		s.state = State{Phase: PhaseSuccess, Question: sub.question, Answer: resp, Token: sub.token}
	}
	final := s.state
	s.mu.Unlock()

	s.publish(final)
	return final, true
}

// Reset abandons any in-flight submission and returns to idle.
func (s *Shell) Reset() {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.token++
	s.state = State{Phase: PhaseIdle, Token: s.token}
	idle := s.state
	s.mu.Unlock()

	s.publish(idle)
}

// publish delivers st unless a newer submission was already published.
func (s *Shell) publish(st State) {
	s.publishMu.Lock()
	defer s.publishMu.Unlock()

	if st.Token < s.published {
		return
	}
	s.published = st.Token

	s.mu.Lock()
	listeners := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.mu.Unlock()

	for _, l := range listeners {
		l(st)
	}
}
