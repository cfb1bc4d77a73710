package weakness

import (
	"testing"

	"github.com/abhisek/prepcoach/internal/progress"
)

func statsWith(attempts, correct int, avgTime float64) *progress.TypeStats {
	ts := progress.NewTypeStats()
	ts.TotalAttempts = attempts
	ts.CorrectAttempts = correct
	ts.AverageTimeSeconds = avgTime
	return ts
}

func TestAnalyze_WeakTopicByAccuracy(t *testing.T) {
	p := progress.NewProfile("u1")
	p.Topics["physics"] = map[string]*progress.TypeStats{
		"optics": statsWith(5, 1, 60), // accuracy 0.2
	}

	areas := Analyze(p)
	if len(areas.Topics) != 1 || areas.Topics[0] != "physics:optics" {
		t.Errorf("Topics = %v, want [physics:optics]", areas.Topics)
	}
}

func TestAnalyze_BelowMinimumSampleNotWeak(t *testing.T) {
	p := progress.NewProfile("u1")
	p.Topics["physics"] = map[string]*progress.TypeStats{
		"optics": statsWith(4, 0, 400), // 0% accuracy and slow, but only 4 attempts
	}

	areas := Analyze(p)
	if len(areas.Topics) != 0 {
		t.Errorf("Topics = %v, want none below 5 attempts", areas.Topics)
	}
}

func TestAnalyze_WeakTopicByTime(t *testing.T) {
	p := progress.NewProfile("u1")
	p.Topics["mathematics"] = map[string]*progress.TypeStats{
		"calculus": statsWith(6, 6, 301), // perfect accuracy, too slow
	}

	areas := Analyze(p)
	if len(areas.Topics) != 1 {
		t.Errorf("Topics = %v, want weak by time", areas.Topics)
	}
}

func TestAnalyze_ThresholdBoundaries(t *testing.T) {
	p := progress.NewProfile("u1")
	p.Topics["chemistry"] = map[string]*progress.TypeStats{
		// Exactly 0.6 accuracy and exactly 300s: neither rule fires.
		"bonding": statsWith(5, 3, 300),
	}

	areas := Analyze(p)
	if len(areas.Topics) != 0 {
		t.Errorf("Topics = %v, boundary values should not be weak", areas.Topics)
	}
}

func TestAnalyze_WeakQuestionType(t *testing.T) {
	p := progress.NewProfile("u1")
	p.QuestionTypes[progress.TypeNumerical] = statsWith(8, 3, 120) // 0.375

	areas := Analyze(p)
	if len(areas.QuestionTypes) != 1 || areas.QuestionTypes[0] != progress.TypeNumerical {
		t.Errorf("QuestionTypes = %v, want [numerical]", areas.QuestionTypes)
	}
}

func TestAnalyze_WeakConceptLowerBar(t *testing.T) {
	p := progress.NewProfile("u1")
	p.Concepts["integration by parts"] = &progress.ConceptRecord{TotalAttempts: 3, CorrectAttempts: 1} // 0.33 < 0.4
	p.Concepts["chain rule"] = &progress.ConceptRecord{TotalAttempts: 3, CorrectAttempts: 2}           // 0.67
	p.Concepts["limits"] = &progress.ConceptRecord{TotalAttempts: 2, CorrectAttempts: 0}               // below sample bar

	areas := Analyze(p)
	if len(areas.Concepts) != 1 || areas.Concepts[0] != "integration by parts" {
		t.Errorf("Concepts = %v, want [integration by parts]", areas.Concepts)
	}
}

func TestNeedsReinforcement(t *testing.T) {
	p := progress.NewProfile("u1")
	p.Topics["physics"] = map[string]*progress.TypeStats{
		"optics":     statsWith(5, 1, 60), // 0.2 < 0.4
		"mechanics":  statsWith(5, 3, 60), // 0.6
		"waves":      statsWith(4, 0, 60), // too few attempts
	}

	if !NeedsReinforcement(p, "physics", "optics") {
		t.Error("optics should need reinforcement")
	}
	if NeedsReinforcement(p, "physics", "mechanics") {
		t.Error("mechanics should not need reinforcement")
	}
	if NeedsReinforcement(p, "physics", "waves") {
		t.Error("waves lacks sample size")
	}
	if NeedsReinforcement(p, "biology", "cells") {
		t.Error("unknown subject should not need reinforcement")
	}
}
