package interview_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"intervu/internal/interview"
)

type stubCompleter struct {
	response   string
	err        error
	lastPrompt string
}

func (c *stubCompleter) Complete(_ context.Context, prompt string) (string, error) {
	c.lastPrompt = prompt
	return c.response, c.err
}

var fallbackList = []interview.Question{{ID: "q1", Text: "Tell me about yourself."}}

func TestGenerateParsesQuestionList(t *testing.T) {
	completer := &stubCompleter{response: `[
		{"id": "q1", "text": "What is a goroutine?"},
		{"id": "q2", "text": "Explain interfaces."},
		{"id": "q3", "text": "How does garbage collection work?"},
		{"id": "q4", "text": "Describe a project you are proud of."}
	]`}
	gen := interview.NewQuestionGenerator(completer, 4)

	questions := gen.Generate(context.Background(), interview.RoleSoftwareEngineer, interview.DifficultyBeginner)

	require.Len(t, questions, 4)
	assert.Equal(t, "q1", questions[0].ID)
	assert.Equal(t, "What is a goroutine?", questions[0].Text)
	assert.Contains(t, completer.lastPrompt, "Software Engineer")
	assert.Contains(t, completer.lastPrompt, "Beginner")
	assert.Contains(t, completer.lastPrompt, "4")
}

func TestGenerateStripsMarkdownFences(t *testing.T) {
	completer := &stubCompleter{response: "```json\n[{\"id\": \"q1\", \"text\": \"Why this role?\"}]\n```"}
	gen := interview.NewQuestionGenerator(completer, 4)

	questions := gen.Generate(context.Background(), interview.RoleDataAnalyst, interview.DifficultyAdvanced)

	require.Len(t, questions, 1)
	assert.Equal(t, "Why this role?", questions[0].Text)
}

func TestGenerateFillsMissingIDsAndFiltersBlanks(t *testing.T) {
	completer := &stubCompleter{response: `[
		{"text": "  First question?  "},
		{"id": "weird", "text": "   "},
		{"text": "Second question?"}
	]`}
	gen := interview.NewQuestionGenerator(completer, 4)

	questions := gen.Generate(context.Background(), interview.RoleProductManager, interview.DifficultyIntermediate)

	require.Len(t, questions, 2)
	assert.Equal(t, "q1", questions[0].ID)
	assert.Equal(t, "First question?", questions[0].Text)
	assert.Equal(t, "q2", questions[1].ID)
}

func TestGenerateFallsBack(t *testing.T) {
	tests := []struct {
		name      string
		completer *stubCompleter
	}{
		{"completion error", &stubCompleter{err: errors.New("rate limited")}},
		{"unparsable output", &stubCompleter{response: "Here are some great questions for you!"}},
		{"empty array", &stubCompleter{response: "[]"}},
		{"only blank entries", &stubCompleter{response: `[{"id": "q1", "text": "  "}]`}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			gen := interview.NewQuestionGenerator(test.completer, 4)

			questions := gen.Generate(context.Background(), interview.RoleSoftwareEngineer, interview.DifficultyBeginner)

			assert.Equal(t, fallbackList, questions)
		})
	}
}

func TestGenerateWithoutCompleterFallsBack(t *testing.T) {
	gen := interview.NewQuestionGenerator(nil, 4)

	questions := gen.Generate(context.Background(), interview.RoleSoftwareEngineer, interview.DifficultyBeginner)

	assert.Equal(t, fallbackList, questions)
}
