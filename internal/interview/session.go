package interview

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	"intervu/internal/transcribe"
)

// Transcriber converts raw answer audio into text for voice-mode sessions.
// format is the upload's file extension (e.g. ".webm").
type Transcriber interface {
	Transcribe(ctx context.Context, audioBytes []byte, format string) (*transcribe.Outcome, error)
}

// Rejection is a refusal to run a command: the command was understood but
// not applied, and the session state is unchanged. Conflict distinguishes
// a phase mismatch from bad user input.
type Rejection struct {
	Reason   string
	Conflict bool
}

func (r *Rejection) Error() string {
	return r.Reason
}

func rejectf(format string, args ...interface{}) error {
	return &Rejection{Reason: fmt.Sprintf(format, args...)}
}

func conflictf(phase Phase, command string) error {
	return &Rejection{
		Reason:   fmt.Sprintf("%s is not valid in the %s phase", command, phase),
		Conflict: true,
	}
}

// VoiceResult is what AudioReady hands back: the (possibly unchanged)
// state, the transcript when recognition succeeded, and the retry signal
// when it did not.
type VoiceResult struct {
	State        State
	Transcript   string
	Unrecognized bool
}

// Session is the interview state machine. Each command runs to completion
// under the session lock before the next is accepted; collaborator calls
// are made at most once per command with no automatic retry.
type Session struct {
	mu          sync.Mutex
	state       State
	generator   Generator
	evaluator   Evaluator
	transcriber Transcriber
}

// New creates a session in the setup phase. transcriber may be nil when no
// speech backend is configured; voice commands then fail cleanly.
func New(generator Generator, evaluator Evaluator, transcriber Transcriber) *Session {
	return &Session{
		state:       NewState(),
		generator:   generator,
		evaluator:   evaluator,
		transcriber: transcriber,
	}
}

// State returns a copy of the current session state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

// Start moves the session from setup to asking. The question generator
// never fails the transition: collaborator trouble degrades to the
// fallback question list.
func (s *Session) Start(ctx context.Context, candidate Candidate) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Phase != PhaseSetup {
		return State{}, conflictf(s.state.Phase, "start")
	}

	candidate.Name = strings.TrimSpace(candidate.Name)
	if candidate.Name == "" {
		return State{}, rejectf("name is required")
	}
	if !candidate.Role.Valid() {
		return State{}, rejectf("invalid role: %q", candidate.Role)
	}
	if !candidate.Field.Valid() {
		return State{}, rejectf("invalid field: %q", candidate.Field)
	}
	if !candidate.Difficulty.Valid() {
		return State{}, rejectf("invalid difficulty: %q", candidate.Difficulty)
	}
	if !candidate.Mode.Valid() {
		return State{}, rejectf("invalid response mode: %q", candidate.Mode)
	}

	questions := s.generator.Generate(ctx, candidate.Role, candidate.Difficulty)

	s.state.Candidate = candidate
	s.state.Questions = questions
	s.state.CurrentIndex = 0
	s.state.PendingFeedback = ""
	s.state.Phase = PhaseAsking

	log.Printf("[Session] Started: candidate=%s, role=%s, difficulty=%s, mode=%s, questions=%d",
		candidate.Name, candidate.Role, candidate.Difficulty, candidate.Mode, len(questions))

	return s.state.clone(), nil
}

// SubmitAnswer evaluates a typed (or already transcribed) answer and moves
// the session into the reviewing phase. Evaluator trouble is terminal for
// the turn: the error text lands in PendingFeedback and is not retried.
func (s *Session) SubmitAnswer(ctx context.Context, rawAnswer string) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.submitAnswerLocked(ctx, rawAnswer)
}

func (s *Session) submitAnswerLocked(ctx context.Context, rawAnswer string) (State, error) {
	if s.state.Phase != PhaseAsking {
		return State{}, conflictf(s.state.Phase, "submitAnswer")
	}

	answer := strings.TrimSpace(rawAnswer)
	if answer == "" {
		return State{}, rejectf("answer cannot be empty")
	}

	question, ok := s.state.CurrentQuestion()
	if !ok {
		// Unreachable while the phase invariant holds.
		return State{}, fmt.Errorf("no current question at index %d", s.state.CurrentIndex)
	}

	s.state.PendingFeedback = s.evaluator.Evaluate(ctx, question.Text, answer)
	s.state.Phase = PhaseReviewing

	log.Printf("[Session] Answer submitted for question %d/%d (%d chars)",
		s.state.CurrentIndex+1, len(s.state.Questions), len(answer))

	return s.state.clone(), nil
}

// AudioReady handles a finished voice recording: transcribe, then submit
// the transcript as the answer. Unrecognized audio leaves the session in
// the asking phase with a retry signal; it is not an error and does not
// count against any limit.
func (s *Session) AudioReady(ctx context.Context, audioBytes []byte, format string) (*VoiceResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Phase != PhaseAsking {
		return nil, conflictf(s.state.Phase, "audioReady")
	}
	if s.state.Candidate.Mode != ModeVoice {
		return nil, rejectf("session is not in voice mode")
	}
	if s.transcriber == nil {
		return nil, fmt.Errorf("speech recognition is not configured")
	}

	outcome, err := s.transcriber.Transcribe(ctx, audioBytes, format)
	if err != nil {
		return nil, fmt.Errorf("transcription failed: %w", err)
	}

	if outcome.Unrecognized {
		log.Printf("[Session] Audio not understood, staying in asking phase")
		return &VoiceResult{State: s.state.clone(), Unrecognized: true}, nil
	}

	state, err := s.submitAnswerLocked(ctx, outcome.Text)
	if err != nil {
		return nil, err
	}

	return &VoiceResult{State: state, Transcript: outcome.Text}, nil
}

// Advance clears the pending feedback and moves to the next question, or
// to done after the last one.
func (s *Session) Advance() (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Phase != PhaseReviewing {
		return State{}, conflictf(s.state.Phase, "advance")
	}

	s.state.PendingFeedback = ""
	s.state.CurrentIndex++
	if s.state.CurrentIndex == len(s.state.Questions) {
		s.state.Phase = PhaseDone
		log.Printf("[Session] Interview complete for %s", s.state.Candidate.Name)
	} else {
		s.state.Phase = PhaseAsking
	}

	return s.state.clone(), nil
}

// Reset discards all session data and returns to the pristine setup state.
// Valid from any phase.
func (s *Session) Reset() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = NewState()
	log.Printf("[Session] Reset to setup phase")
	return s.state.clone()
}
