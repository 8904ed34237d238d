package prompt

import (
	"strings"
	"testing"
)

func TestLessonSegments_FlooredSplits(t *testing.T) {
	warmUp, instruction, practice, assessment := LessonSegments("45")
	if warmUp != 6 || instruction != 18 || practice != 11 || assessment != 9 {
		t.Fatalf("segments for 45 = %d/%d/%d/%d, want 6/18/11/9", warmUp, instruction, practice, assessment)
	}
}

func TestLessonSegments_LeadingIntegerParse(t *testing.T) {
	warmUp, _, _, _ := LessonSegments("90 minutes")
	if warmUp != 13 {
		t.Fatalf("warm-up for \"90 minutes\" = %d, want 13", warmUp)
	}
}

func TestLessonSegments_DefaultDuration(t *testing.T) {
	for _, duration := range []string{"", "about an hour", "  "} {
		warmUp, instruction, practice, assessment := LessonSegments(duration)
		if warmUp != 9 || instruction != 24 || practice != 15 || assessment != 12 {
			t.Fatalf("segments for %q = %d/%d/%d/%d, want the 60-minute default split", duration, warmUp, instruction, practice, assessment)
		}
	}
}

func TestLessonPlan_ContainsConfigVerbatim(t *testing.T) {
	cfg := LessonPlanConfig{
		Topic:      "Photosynthesis",
		GradeLevel: "7th grade",
		Subject:    "Biology",
		Duration:   "45",
		Focus:      "group work",
	}
	out := LessonPlan(cfg)
	for _, want := range []string{cfg.Topic, cfg.GradeLevel, cfg.Subject, cfg.Duration, cfg.Focus} {
		if !strings.Contains(out, want) {
			t.Fatalf("prompt missing config value %q:\n%s", want, out)
		}
	}
}

func TestLessonPlan_SectionsInFixedOrder(t *testing.T) {
	out := LessonPlan(LessonPlanConfig{Duration: "45"})
	sections := []string{
		"1. Lesson Objectives",
		"2. Materials Needed",
		"3. Warm-up Activity (6 min)",
		"4. Main Instruction (18 min)",
		"5. Guided Practice (11 min)",
		"6. Assessment/Wrap-up (9 min)",
	}
	last := -1
	for _, sec := range sections {
		i := strings.Index(out, sec)
		if i < 0 {
			t.Fatalf("prompt missing section %q:\n%s", sec, out)
		}
		if i <= last {
			t.Fatalf("section %q out of order", sec)
		}
		last = i
	}
}

func TestLessonPlan_Deterministic(t *testing.T) {
	cfg := LessonPlanConfig{Topic: "Fractions", GradeLevel: "4th", Subject: "Math", Duration: "30", Focus: "practice"}
	if LessonPlan(cfg) != LessonPlan(cfg) {
		t.Fatal("lesson plan prompt is not deterministic")
	}
}
