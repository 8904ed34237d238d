package prompt

import (
	"fmt"
	"strings"
)

// Homework renders the text-based grading instruction.
func Homework(assignment, studentWork string) string {
	var b strings.Builder
	b.WriteString("You are a helpful teacher's assistant.\n\n")
	fmt.Fprintf(&b, "Assignment/Question:\n%s\n\n", assignment)
	fmt.Fprintf(&b, "Student Submission:\n%s\n\n", studentWork)
	b.WriteString("Please grade this submission. Provide:\n")
	b.WriteString("1. A brief summary of the work.\n")
	b.WriteString("2. Strengths.\n")
	b.WriteString("3. Areas for improvement.\n")
	b.WriteString("4. An estimated grade (A-F) or score (0-100) based on quality.\n\n")
	b.WriteString("Keep the tone encouraging but constructive. Format with Markdown.\n")
	return b.String()
}

// AnswerSheet renders the image-based grading instruction. The text is
// the final part of the payload, after the answer key (when present)
// and the submission image.
func AnswerSheet(assignmentContext string, hasKey bool) string {
	var b strings.Builder
	b.WriteString("You are an expert teacher's assistant helping to grade a student's physical answer sheet.\n\n")
	fmt.Fprintf(&b, "Assignment Context / Notes:\n%s\n\n", assignmentContext)
	if hasKey {
		b.WriteString("The first attached document is the Answer Key; the attached image that follows is the Student Submission.\n\n")
	} else {
		b.WriteString("The attached image is the Student Submission.\n\n")
	}
	b.WriteString("Instructions:\n")
	b.WriteString("1. If an 'Answer Key' document is provided, use it as the ground truth.\n")
	b.WriteString("2. Transcribe the handwritten text found in the 'Student Submission' image to verify legibility (briefly).\n")
	b.WriteString("3. Evaluate the student's answers against the Answer Key (if provided) or general knowledge (if not).\n")
	b.WriteString("4. Check for spelling, grammar, and key concepts.\n")
	b.WriteString("5. Assign a grade (e.g., A-F or 0-100).\n")
	b.WriteString("6. Provide constructive feedback.\n\n")
	b.WriteString("Output in clean Markdown.\n")
	return b.String()
}
