package prompt

import (
	"strings"
	"testing"
)

func TestHomework_EnumeratesEvaluationSteps(t *testing.T) {
	out := Homework("Explain gravity", "Gravity pulls things down.")
	for _, want := range []string{
		"Explain gravity",
		"Gravity pulls things down.",
		"summary of the work",
		"Strengths",
		"Areas for improvement",
		"estimated grade (A-F) or score (0-100)",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("homework prompt missing %q:\n%s", want, out)
		}
	}
}

func TestAnswerSheet_StepsAndKeyMention(t *testing.T) {
	out := AnswerSheet("Chapter 3 quiz", true)
	for _, want := range []string{
		"Chapter 3 quiz",
		"use it as the ground truth",
		"Transcribe the handwritten text",
		"Evaluate the student's answers",
		"Assign a grade",
		"constructive feedback",
		"Answer Key",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("answer sheet prompt missing %q:\n%s", want, out)
		}
	}

	noKey := AnswerSheet("Chapter 3 quiz", false)
	if strings.Contains(noKey, "first attached document") {
		t.Fatalf("prompt without key should not describe an answer key attachment:\n%s", noKey)
	}
}

func TestPlagiarismScan_RequestsRiskClassification(t *testing.T) {
	out := PlagiarismScan("some essay text")
	for _, want := range []string{"some essay text", "Low, Medium, High", "Search the internet", "summarize"} {
		if !strings.Contains(out, want) {
			t.Fatalf("plagiarism prompt missing %q:\n%s", want, out)
		}
	}
}

func TestCompareSubmissions_RequestsScoreAndVerdict(t *testing.T) {
	out := CompareSubmissions("essay one", "essay two")
	for _, want := range []string{
		"essay one",
		"essay two",
		"Similarity Score\" (0-100%)",
		"independent work, collaboration, or direct copying",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("comparison prompt missing %q:\n%s", want, out)
		}
	}
}

func TestQuiz_NamesCounts(t *testing.T) {
	out := Quiz("The Water Cycle", "5th grade", 8)
	for _, want := range []string{"8-question", "The Water Cycle", "5th grade", "exactly 4 options"} {
		if !strings.Contains(out, want) {
			t.Fatalf("quiz prompt missing %q:\n%s", want, out)
		}
	}
}
