package ai

import "fmt"

// BuildQuestionPrompt builds the prompt that asks the model for a JSON
// array of interview questions.
func BuildQuestionPrompt(role, difficulty string, count int) string {
	return fmt.Sprintf(`Generate %d professional interview questions for a candidate applying for a '%s' role at '%s' difficulty.
Return the output as a JSON array of objects with 'id' and 'text' fields.
Return ONLY the JSON array, no surrounding text.`, count, role, difficulty)
}

// BuildFeedbackPrompt builds the interview-coach prompt for a single
// question/answer pair. The response is rendered to the candidate as
// Markdown.
func BuildFeedbackPrompt(question, answer string) string {
	return fmt.Sprintf(`You are an expert interview coach.
**Question:** "%s"
**Candidate Answer:** "%s"

Provide feedback in Markdown with these sections:
1. **Clarity & Confidence**
2. **Content Quality**
3. **Improvement Tips**
4. **Exemplar Answer** (the answer you would want from the candidate)`, question, answer)
}
