package interview

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/samber/lo"

	"intervu/internal/ai"
)

// DefaultQuestionCount is how many questions a session asks for.
const DefaultQuestionCount = 4

// fallbackQuestionText is served when the completion collaborator is
// unavailable or returns something unusable. The session must always be
// able to start.
const fallbackQuestionText = "Tell me about yourself."

// Generator produces the ordered question list for a session.
type Generator interface {
	Generate(ctx context.Context, role Role, difficulty Difficulty) []Question
}

// QuestionGenerator generates questions through a text-completion
// collaborator. It fails closed: every failure path yields the one-element
// fallback list instead of an error.
type QuestionGenerator struct {
	completer ai.Completer
	count     int
}

// NewQuestionGenerator creates a generator. completer may be nil, in which
// case every call returns the fallback list (degraded mode).
func NewQuestionGenerator(completer ai.Completer, count int) *QuestionGenerator {
	if count < 1 {
		count = DefaultQuestionCount
	}
	return &QuestionGenerator{completer: completer, count: count}
}

// Generate returns a non-empty ordered question list for the given role and
// difficulty.
func (g *QuestionGenerator) Generate(ctx context.Context, role Role, difficulty Difficulty) []Question {
	if g.completer == nil {
		log.Printf("[Generator] No completion collaborator configured, using fallback question")
		return fallbackQuestions()
	}

	prompt := ai.BuildQuestionPrompt(role.Display(), difficulty.Display(), g.count)

	raw, err := g.completer.Complete(ctx, prompt)
	if err != nil {
		log.Printf("[Generator] Completion failed: %v, using fallback question", err)
		return fallbackQuestions()
	}

	var questions []Question
	if err := json.Unmarshal([]byte(ai.ExtractJSON(raw)), &questions); err != nil {
		log.Printf("[Generator] Failed to parse question list: %v, response preview: %s",
			err, ai.Truncate(raw, 200))
		return fallbackQuestions()
	}

	questions = lo.Filter(questions, func(q Question, _ int) bool {
		return strings.TrimSpace(q.Text) != ""
	})
	if len(questions) == 0 {
		log.Printf("[Generator] Parsed question list is empty, using fallback question")
		return fallbackQuestions()
	}

	for i := range questions {
		questions[i].Text = strings.TrimSpace(questions[i].Text)
		if questions[i].ID == "" {
			questions[i].ID = fmt.Sprintf("q%d", i+1)
		}
	}

	log.Printf("[Generator] Generated %d questions for role=%s, difficulty=%s",
		len(questions), role, difficulty)
	return questions
}

func fallbackQuestions() []Question {
	return []Question{{ID: "q1", Text: fallbackQuestionText}}
}
