package interview

import (
	"context"
	"fmt"
	"log"
	"strings"

	"intervu/internal/ai"
)

// Evaluator produces feedback text for a question/answer pair.
type Evaluator interface {
	Evaluate(ctx context.Context, question, answer string) string
}

// FeedbackEvaluator asks the completion collaborator for structured
// Markdown feedback. Failures come back as a formatted error string so the
// caller can render them like any other feedback.
type FeedbackEvaluator struct {
	completer ai.Completer
}

// NewFeedbackEvaluator creates an evaluator. completer may be nil
// (degraded mode).
func NewFeedbackEvaluator(completer ai.Completer) *FeedbackEvaluator {
	return &FeedbackEvaluator{completer: completer}
}

// Evaluate returns feedback for the given answer. The result is always
// renderable text; it is never an error value.
func (e *FeedbackEvaluator) Evaluate(ctx context.Context, question, answer string) string {
	if e.completer == nil {
		log.Printf("[Evaluator] No completion collaborator configured")
		return "Error getting feedback: evaluation is unavailable (no API key configured)"
	}

	prompt := ai.BuildFeedbackPrompt(question, answer)

	feedback, err := e.completer.Complete(ctx, prompt)
	if err != nil {
		log.Printf("[Evaluator] Completion failed: %v", err)
		return fmt.Sprintf("Error getting feedback: %v", err)
	}

	feedback = strings.TrimSpace(feedback)
	if feedback == "" {
		return "Error getting feedback: empty response from model"
	}

	log.Printf("[Evaluator] Feedback generated: question=%d chars, answer=%d chars, feedback=%d chars",
		len(question), len(answer), len(feedback))
	return feedback
}
