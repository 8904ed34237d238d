// Package prompt renders the instruction text for every generation
// task. Rendering is pure string formatting over already-validated
// inputs and never fails; every configuration value appears verbatim
// in the output.
package prompt

import (
	"fmt"
	"strconv"
	"strings"
)

// LessonPlanConfig is the teacher's input for a lesson plan.
type LessonPlanConfig struct {
	Topic      string
	GradeLevel string
	Subject    string
	Duration   string
	Focus      string
}

// LessonPlanSystemInstruction primes the model for lesson planning.
const LessonPlanSystemInstruction = "You are an expert educational consultant and curriculum developer specializing in creating engaging, standards-aligned lesson plans."

const defaultLessonMinutes = 60

// LessonSegments splits the lesson duration into the four timed
// segments: warm-up 15%, main instruction 40%, guided practice 25%,
// assessment 20%, each floored to whole minutes. The percentages do
// not sum to 100 and no normalization is applied; the remainder is
// left to the teacher's discretion.
func LessonSegments(duration string) (warmUp, instruction, practice, assessment int) {
	total := leadingInt(duration, defaultLessonMinutes)
	return total * 15 / 100, total * 40 / 100, total * 25 / 100, total * 20 / 100
}

// leadingInt parses the digit prefix of s ("45 minutes" -> 45) and
// falls back when there is none.
func leadingInt(s string, fallback int) int {
	s = strings.TrimSpace(s)
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 {
		return fallback
	}
	n, err := strconv.Atoi(s[:i])
	if err != nil {
		return fallback
	}
	return n
}

// LessonPlan renders the lesson-plan instruction text. The six
// sections are named in a fixed order.
func LessonPlan(cfg LessonPlanConfig) string {
	warmUp, instruction, practice, assessment := LessonSegments(cfg.Duration)

	var b strings.Builder
	fmt.Fprintf(&b, "Create a comprehensive lesson plan for a %s %s class.\n", cfg.GradeLevel, cfg.Subject)
	fmt.Fprintf(&b, "Topic: %s\n", cfg.Topic)
	fmt.Fprintf(&b, "Duration: %s\n", cfg.Duration)
	fmt.Fprintf(&b, "Focus Area: %s\n", cfg.Focus)
	b.WriteString("\nStructure the lesson plan with the following sections using Markdown:\n")
	b.WriteString("1. Lesson Objectives\n")
	b.WriteString("2. Materials Needed\n")
	fmt.Fprintf(&b, "3. Warm-up Activity (%d min)\n", warmUp)
	fmt.Fprintf(&b, "4. Main Instruction (%d min)\n", instruction)
	fmt.Fprintf(&b, "5. Guided Practice (%d min)\n", practice)
	fmt.Fprintf(&b, "6. Assessment/Wrap-up (%d min)\n", assessment)
	b.WriteString("\nMake it engaging, practical, and clear.\n")
	return b.String()
}
