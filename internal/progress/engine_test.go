package progress

import (
	"testing"
	"time"
)

func TestAdvance_CountersAndStreaks(t *testing.T) {
	tp := NewTopicProgress()

	Advance(tp, true, 20)
	Advance(tp, true, 40)
	if tp.TotalAttempts != 2 || tp.CorrectAttempts != 2 {
		t.Fatalf("counters = %d/%d, want 2/2", tp.CorrectAttempts, tp.TotalAttempts)
	}
	if tp.ConsecutiveCorrect != 2 || tp.ConsecutiveIncorrect != 0 {
		t.Errorf("streaks = %d/%d, want 2/0", tp.ConsecutiveCorrect, tp.ConsecutiveIncorrect)
	}

	Advance(tp, false, 60)
	if tp.ConsecutiveCorrect != 0 || tp.ConsecutiveIncorrect != 1 {
		t.Errorf("streaks after miss = %d/%d, want 0/1", tp.ConsecutiveCorrect, tp.ConsecutiveIncorrect)
	}
}

func TestAdvance_IncrementalMeanTime(t *testing.T) {
	tp := NewTopicProgress()
	Advance(tp, true, 10)
	Advance(tp, true, 20)
	Advance(tp, false, 30)
	if tp.AverageTimeSeconds != 20 {
		t.Errorf("AverageTimeSeconds = %f, want 20", tp.AverageTimeSeconds)
	}
}

func TestAdvance_WindowsBounded(t *testing.T) {
	tp := NewTopicProgress()
	for i := 0; i < 8; i++ {
		Advance(tp, true, float64(i))
	}
	if len(tp.RecentTimes) != WindowSize {
		t.Fatalf("RecentTimes length = %d, want %d", len(tp.RecentTimes), WindowSize)
	}
	// Oldest samples evicted: window holds times 3..7.
	if tp.RecentTimes[0] != 3 || tp.RecentTimes[WindowSize-1] != 7 {
		t.Errorf("RecentTimes = %v, want [3 4 5 6 7]", tp.RecentTimes)
	}
	if len(tp.RecentAccuracy) != WindowSize {
		t.Errorf("RecentAccuracy length = %d, want %d", len(tp.RecentAccuracy), WindowSize)
	}
}

func TestAdvance_LevelUpAfterTenCorrect(t *testing.T) {
	tp := NewTopicProgress()
	for i := 0; i < 10; i++ {
		Advance(tp, true, 30)
	}
	// At attempt 10: accuracy 1.0, streak 10, attempts 10 -> exactly one level up.
	if tp.MasteryLevel != 1 {
		t.Errorf("MasteryLevel = %d, want 1", tp.MasteryLevel)
	}
}

func TestAdvance_NoLevelUpBelowMinAttempts(t *testing.T) {
	tp := NewTopicProgress()
	for i := 0; i < 9; i++ {
		Advance(tp, true, 30)
	}
	if tp.MasteryLevel != 0 {
		t.Errorf("MasteryLevel = %d, want 0 before 10 attempts", tp.MasteryLevel)
	}
}

func TestAdvance_LevelDownAfterThreeIncorrect(t *testing.T) {
	tp := NewTopicProgress()
	tp.MasteryLevel = 2
	// 1 correct then 3 incorrect: accuracy 0.25 < 0.6, streak 3.
	Advance(tp, true, 30)
	Advance(tp, false, 30)
	Advance(tp, false, 30)
	if tp.MasteryLevel != 2 {
		t.Fatalf("MasteryLevel = %d before streak reached, want 2", tp.MasteryLevel)
	}
	Advance(tp, false, 30)
	if tp.MasteryLevel != 1 {
		t.Errorf("MasteryLevel = %d, want 1 after level-down", tp.MasteryLevel)
	}
}

func TestAdvance_LevelFlooredAtZero(t *testing.T) {
	tp := NewTopicProgress()
	for i := 0; i < 6; i++ {
		Advance(tp, false, 30)
	}
	if tp.MasteryLevel != 0 {
		t.Errorf("MasteryLevel = %d, want floor at 0", tp.MasteryLevel)
	}
}

func TestAdvance_LevelCappedAtFour(t *testing.T) {
	tp := NewTopicProgress()
	tp.MasteryLevel = MaxMasteryLevel
	for i := 0; i < 20; i++ {
		Advance(tp, true, 30)
	}
	if tp.MasteryLevel != MaxMasteryLevel {
		t.Errorf("MasteryLevel = %d, want cap at %d", tp.MasteryLevel, MaxMasteryLevel)
	}
}

func TestAdvance_LevelAlwaysInRange(t *testing.T) {
	// Property check over a mixed synthetic sequence.
	tp := NewTopicProgress()
	pattern := []bool{true, true, false, true, false, false, true, false}
	for i := 0; i < 200; i++ {
		Advance(tp, pattern[i%len(pattern)], float64(10+i%50))
		if tp.MasteryLevel < MinMasteryLevel || tp.MasteryLevel > MaxMasteryLevel {
			t.Fatalf("MasteryLevel = %d out of range at attempt %d", tp.MasteryLevel, i+1)
		}
		if tp.CorrectAttempts > tp.TotalAttempts {
			t.Fatalf("correct %d > total %d", tp.CorrectAttempts, tp.TotalAttempts)
		}
		if tp.ConsecutiveCorrect != 0 && tp.ConsecutiveIncorrect != 0 {
			t.Fatal("both streaks non-zero")
		}
	}
}

func TestRecordPerformance_TypeTopicConcepts(t *testing.T) {
	p := NewProfile("u1")
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	p.RecordPerformance("physics", "kinematics", TypeMCQ, true, 45, []string{"velocity", "acceleration"}, now)
	p.RecordPerformance("physics", "kinematics", TypeMCQ, false, 90, []string{"velocity"}, now)

	ts := p.QuestionTypes[TypeMCQ]
	if ts.TotalAttempts != 2 || ts.CorrectAttempts != 1 {
		t.Errorf("mcq stats = %d/%d, want 1/2", ts.CorrectAttempts, ts.TotalAttempts)
	}
	if ts.AverageTimeSeconds != 67.5 {
		t.Errorf("mcq average time = %f, want 67.5", ts.AverageTimeSeconds)
	}

	topic := p.Topics["physics"]["kinematics"]
	if topic == nil || topic.TotalAttempts != 2 {
		t.Fatalf("topic mirror missing or wrong: %+v", topic)
	}

	v := p.Concepts["velocity"]
	if v.TotalAttempts != 2 || v.CorrectAttempts != 1 {
		t.Errorf("velocity concept = %d/%d, want 1/2", v.CorrectAttempts, v.TotalAttempts)
	}
	if v.LastReviewedAt == nil || !v.LastReviewedAt.Equal(now) {
		t.Errorf("velocity LastReviewedAt = %v, want %v", v.LastReviewedAt, now)
	}
	if p.Concepts["acceleration"].TotalAttempts != 1 {
		t.Error("acceleration concept not recorded")
	}

	if p.TotalAttempted != 2 || p.TotalCorrect != 1 {
		t.Errorf("profile totals = %d/%d, want 1/2", p.TotalCorrect, p.TotalAttempted)
	}
}

func TestProfileRoundTripKeepsMaps(t *testing.T) {
	p := NewProfile("u1")
	if p.QuestionTypes[TypeMCQ] == nil || p.QuestionTypes[TypeNumerical] == nil {
		t.Fatal("question-type records not seeded")
	}
	tp := p.Topic("mathematics", "algebra")
	if tp == nil || tp.TotalAttempts != 0 {
		t.Fatal("topic record not created empty")
	}
	if p.Topic("mathematics", "algebra") != tp {
		t.Error("second lookup created a new record")
	}
}
