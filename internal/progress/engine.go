package progress

import "time"

// Mastery transition thresholds. A topic levels up after a sustained run of
// correct answers at high accuracy, and levels down after a short run of
// incorrect answers at low accuracy. Up and down are mutually exclusive per
// attempt; up is checked first.
const (
	LevelUpAccuracy    = 0.8
	LevelUpStreak      = 5
	LevelUpMinAttempts = 10
	LevelDownAccuracy  = 0.6
	LevelDownStreak    = 3
)

// Advance applies one answered question to a topic's mastery record:
// counters, streaks, running mean time, recent-history windows, and the
// mastery level transition.
func Advance(tp *TopicProgress, correct bool, timeTakenSeconds float64) {
	tp.TotalAttempts++
	if correct {
		tp.CorrectAttempts++
		tp.ConsecutiveCorrect++
		tp.ConsecutiveIncorrect = 0
	} else {
		tp.ConsecutiveIncorrect++
		tp.ConsecutiveCorrect = 0
	}

	n := float64(tp.TotalAttempts)
	tp.AverageTimeSeconds = (tp.AverageTimeSeconds*(n-1) + timeTakenSeconds) / n

	tp.RecentTimes = pushWindow(tp.RecentTimes, timeTakenSeconds)
	tp.RecentAccuracy = pushWindow(tp.RecentAccuracy, tp.Accuracy())

	advanceLevel(tp)
}

// advanceLevel applies the level transition rules to an already-updated record.
func advanceLevel(tp *TopicProgress) {
	if tp.TotalAttempts == 0 {
		return
	}
	acc := tp.Accuracy()

	if tp.MasteryLevel < MaxMasteryLevel &&
		acc >= LevelUpAccuracy &&
		tp.ConsecutiveCorrect >= LevelUpStreak &&
		tp.TotalAttempts >= LevelUpMinAttempts {
		tp.MasteryLevel++
		return
	}

	if acc < LevelDownAccuracy && tp.ConsecutiveIncorrect >= LevelDownStreak {
		if tp.MasteryLevel > MinMasteryLevel {
			tp.MasteryLevel--
		}
	}
}

// RecordPerformance updates the performance profile after an answered
// question: the question-type record, the topic mirror, each tested concept,
// and the profile-wide counters. The mastery record is updated separately
// via Advance.
func (p *Profile) RecordPerformance(subject, topic, questionType string, correct bool, timeTakenSeconds float64, concepts []string, now time.Time) {
	p.EnsureMaps()

	if ts, ok := p.QuestionTypes[questionType]; ok {
		recordTypeStats(ts, correct, timeTakenSeconds)
	}

	recordTypeStats(p.TopicStats(subject, topic), correct, timeTakenSeconds)

	for _, concept := range concepts {
		cr := p.Concepts[concept]
		if cr == nil {
			cr = &ConceptRecord{}
			p.Concepts[concept] = cr
		}
		cr.TotalAttempts++
		if correct {
			cr.CorrectAttempts++
		}
		reviewed := now
		cr.LastReviewedAt = &reviewed
	}

	p.TotalAttempted++
	if correct {
		p.TotalCorrect++
	}
}

func recordTypeStats(ts *TypeStats, correct bool, timeTakenSeconds float64) {
	ts.TotalAttempts++
	if correct {
		ts.CorrectAttempts++
	}
	ts.RecentTimes = pushWindow(ts.RecentTimes, timeTakenSeconds)
	ts.AverageTimeSeconds = windowMean(ts.RecentTimes)
	ts.RecentAccuracy = pushWindow(ts.RecentAccuracy, ts.Accuracy())
}
