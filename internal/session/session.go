// Package session holds the editor state behind the window: the current
// draft, the last suggestion, and the single idle -> requesting -> idle
// transition triggered by the submit button.
package session

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"cowriter/processing/inference"

	"github.com/google/uuid"
)

const (
	StatusReady      = "Ready"
	StatusProcessing = "Processing..."
	StatusFailed     = "Error processing text"

	TitleWarning = "Warning"
	TitleError   = "Error"

	MsgEmptyInput = "Please enter some text first!"
)

// Rewriter turns a draft into a suggestion.
type Rewriter interface {
	Rewrite(ctx context.Context, draft string) (string, error)
}

// View is what the session needs from the window.
type View interface {
	SetStatus(text string)
	SetSuggestion(text string)
	ShowWarning(title, message string)
	ShowCritical(title, message string)
}

type State int

const (
	Idle State = iota
	Requesting
)

func (s State) String() string {
	switch s {
	case Requesting:
		return "requesting"
	default:
		return "idle"
	}
}

type Session struct {
	mu sync.RWMutex

	rewriter Rewriter
	view     View

	draft      string
	suggestion string
	state      State
}

func New(r Rewriter, v View) *Session {
	return &Session{rewriter: r, view: v}
}

func (s *Session) Draft() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.draft
}

func (s *Session) Suggestion() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.suggestion
}

func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *Session) setState(st State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = st
}

// Submit runs one request for draft and blocks until it finishes. The
// suggestion is only replaced on success.
func (s *Session) Submit(ctx context.Context, draft string) {
	s.mu.Lock()
	s.draft = draft
	s.mu.Unlock()

	if strings.TrimSpace(draft) == "" {
		s.view.ShowWarning(TitleWarning, MsgEmptyInput)
		return
	}

	id := uuid.NewString()

	s.setState(Requesting)
	defer s.setState(Idle)

	s.view.SetStatus(StatusProcessing)

	log.Printf("[%s] rewrite requested (%d bytes)", id, len(draft))
	out, err := s.rewriter.Rewrite(ctx, draft)
	if err != nil {
		s.fail(id, err)
		return
	}
	log.Printf("[%s] rewrite done (%d bytes)", id, len(out))

	s.mu.Lock()
	s.suggestion = out
	s.mu.Unlock()

	s.view.SetSuggestion(out)
	s.view.SetStatus(StatusReady)
}

func (s *Session) fail(id string, err error) {
	var statusErr *inference.StatusError

	switch {
	case errors.As(err, &statusErr):
		log.Printf("[%s] rewrite failed: status %d", id, statusErr.Code)
		s.view.SetStatus(fmt.Sprintf("Error: API returned status %d", statusErr.Code))
		s.view.ShowCritical(TitleError, fmt.Sprintf("API error: %d", statusErr.Code))

	default:
		log.Printf("[%s] rewrite failed: %v", id, err)
		s.view.SetStatus(StatusFailed)
		s.view.ShowCritical(TitleError, fmt.Sprintf("Failed to process text: %v", err))
	}
}
