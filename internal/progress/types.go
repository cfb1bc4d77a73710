package progress

import "time"

// WindowSize bounds the recent-history windows kept per record.
const WindowSize = 5

// Mastery level bounds. Level 0 is "not started", level 4 is "master".
const (
	MinMasteryLevel = 0
	MaxMasteryLevel = 4
)

// Question type keys used in the performance profile.
const (
	TypeMCQ       = "mcq"
	TypeNumerical = "numerical"
)

// TopicProgress tracks a user's mastery of a single topic within a subject.
// Created on the first attempt; mutated only through Advance; never deleted.
type TopicProgress struct {
	MasteryLevel         int        `json:"mastery_level"`
	LastReviewAt         *time.Time `json:"last_review,omitempty"`
	NextReviewAt         *time.Time `json:"next_review,omitempty"`
	TotalAttempts        int        `json:"total_attempts"`
	CorrectAttempts      int        `json:"correct_attempts"`
	ConsecutiveCorrect   int        `json:"consecutive_correct"`
	ConsecutiveIncorrect int        `json:"consecutive_incorrect"`
	AverageTimeSeconds   float64    `json:"average_time"`
	RecentTimes          []float64  `json:"last_5_times"`
	RecentAccuracy       []float64  `json:"last_5_accuracy"`
}

// NewTopicProgress returns a zeroed record: counters at zero, empty windows.
func NewTopicProgress() *TopicProgress {
	return &TopicProgress{
		RecentTimes:    []float64{},
		RecentAccuracy: []float64{},
	}
}

// Accuracy returns correct/total, or 0 before any attempt.
func (tp *TopicProgress) Accuracy() float64 {
	if tp.TotalAttempts == 0 {
		return 0
	}
	return float64(tp.CorrectAttempts) / float64(tp.TotalAttempts)
}

// TypeStats aggregates performance for one question type or one topic in the
// performance profile. AverageTimeSeconds is the mean over the recent window.
type TypeStats struct {
	TotalAttempts      int       `json:"total_attempts"`
	CorrectAttempts    int       `json:"correct_attempts"`
	AverageTimeSeconds float64   `json:"average_time"`
	RecentTimes        []float64 `json:"last_5_times"`
	RecentAccuracy     []float64 `json:"last_5_accuracy"`
}

// NewTypeStats returns a zeroed stats record with empty windows.
func NewTypeStats() *TypeStats {
	return &TypeStats{
		RecentTimes:    []float64{},
		RecentAccuracy: []float64{},
	}
}

// Accuracy returns correct/total, or 0 before any attempt.
func (ts *TypeStats) Accuracy() float64 {
	if ts.TotalAttempts == 0 {
		return 0
	}
	return float64(ts.CorrectAttempts) / float64(ts.TotalAttempts)
}

// ConceptRecord tracks attempts against a single named concept.
type ConceptRecord struct {
	TotalAttempts   int        `json:"total_attempts"`
	CorrectAttempts int        `json:"correct_attempts"`
	LastReviewedAt  *time.Time `json:"last_review,omitempty"`
}

// Accuracy returns correct/total, or 0 before any attempt.
func (cr *ConceptRecord) Accuracy() float64 {
	if cr.TotalAttempts == 0 {
		return 0
	}
	return float64(cr.CorrectAttempts) / float64(cr.TotalAttempts)
}

// Profile is the complete per-user progress document: topic mastery records
// plus the performance profile (question types, topic mirror, concepts).
type Profile struct {
	UserID string `json:"user_id"`

	// Subjects maps subject -> topic -> mastery record.
	Subjects map[string]map[string]*TopicProgress `json:"subjects"`

	// QuestionTypes maps "mcq"/"numerical" -> aggregate stats.
	QuestionTypes map[string]*TypeStats `json:"question_types"`

	// Topics mirrors TopicProgress-style counters for weak-area analysis,
	// keyed subject -> topic.
	Topics map[string]map[string]*TypeStats `json:"topics"`

	// Concepts maps concept name -> attempt record.
	Concepts map[string]*ConceptRecord `json:"concepts"`

	TotalAttempted int `json:"total_questions_attempted"`
	TotalCorrect   int `json:"total_correct_answers"`
}

// NewProfile returns an empty profile with all maps initialized and the two
// question-type records seeded.
func NewProfile(userID string) *Profile {
	p := &Profile{UserID: userID}
	p.EnsureMaps()
	return p
}

// EnsureMaps initializes any nil maps and seeds the question-type records.
// Safe to call on profiles decoded from storage.
func (p *Profile) EnsureMaps() {
	if p.Subjects == nil {
		p.Subjects = make(map[string]map[string]*TopicProgress)
	}
	if p.QuestionTypes == nil {
		p.QuestionTypes = make(map[string]*TypeStats)
	}
	for _, qt := range []string{TypeMCQ, TypeNumerical} {
		if p.QuestionTypes[qt] == nil {
			p.QuestionTypes[qt] = NewTypeStats()
		}
	}
	if p.Topics == nil {
		p.Topics = make(map[string]map[string]*TypeStats)
	}
	if p.Concepts == nil {
		p.Concepts = make(map[string]*ConceptRecord)
	}
}

// Topic returns the mastery record for subject/topic, creating it on first use.
func (p *Profile) Topic(subject, topic string) *TopicProgress {
	if p.Subjects[subject] == nil {
		p.Subjects[subject] = make(map[string]*TopicProgress)
	}
	tp, ok := p.Subjects[subject][topic]
	if !ok {
		tp = NewTopicProgress()
		p.Subjects[subject][topic] = tp
	}
	return tp
}

// TopicStats returns the performance-mirror record for subject/topic,
// creating it on first use.
func (p *Profile) TopicStats(subject, topic string) *TypeStats {
	if p.Topics[subject] == nil {
		p.Topics[subject] = make(map[string]*TypeStats)
	}
	ts, ok := p.Topics[subject][topic]
	if !ok {
		ts = NewTypeStats()
		p.Topics[subject][topic] = ts
	}
	return ts
}

// pushWindow appends v, evicting the oldest value once the window is full.
func pushWindow(w []float64, v float64) []float64 {
	w = append(w, v)
	if len(w) > WindowSize {
		w = w[len(w)-WindowSize:]
	}
	return w
}

// windowMean returns the mean of the window, or 0 when empty.
func windowMean(w []float64) float64 {
	if len(w) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range w {
		sum += v
	}
	return sum / float64(len(w))
}
