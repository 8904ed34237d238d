package prompt

import "fmt"

// QuizOptionCount is how many answer options every generated question
// must offer.
const QuizOptionCount = 4

// Quiz renders the quiz-generation instruction. The request that
// carries it must also declare the structured-output contract.
func Quiz(topic, grade string, questionCount int) string {
	return fmt.Sprintf(
		"Create a %d-question multiple choice quiz about %q for %s students. Each question must have exactly %d options, and correctAnswer must be an exact string match of one of them.",
		questionCount, topic, grade, QuizOptionCount,
	)
}
