package weakness

import (
	"fmt"
	"sort"

	"github.com/abhisek/prepcoach/internal/progress"
)

// Threshold constants for weakness detection. General weakness uses accuracy
// below 0.6 or average time above 5 minutes over at least 5 attempts;
// concept-level reinforcement triggers earlier, at accuracy below 0.4 over
// at least 3 attempts.
const (
	AccuracyThreshold      = 0.6
	TimeThresholdSeconds   = 300.0
	ReinforcementThreshold = 0.4

	MinAttempts        = 5
	MinConceptAttempts = 3
)

// Areas holds the result of a weak-area analysis. Topics are qualified as
// "subject:topic"; question types are "mcq"/"numerical".
type Areas struct {
	Topics        []string
	QuestionTypes []string
	Concepts      []string
}

// Analyze derives a user's weak topics, question types, and concepts from
// the performance profile. Results are sorted for deterministic output.
func Analyze(p *progress.Profile) Areas {
	var areas Areas

	for qt, ts := range p.QuestionTypes {
		if isWeak(ts) {
			areas.QuestionTypes = append(areas.QuestionTypes, qt)
		}
	}

	for subject, topics := range p.Topics {
		for topic, ts := range topics {
			if isWeak(ts) {
				areas.Topics = append(areas.Topics, fmt.Sprintf("%s:%s", subject, topic))
			}
		}
	}

	for concept, cr := range p.Concepts {
		if cr.TotalAttempts >= MinConceptAttempts && cr.Accuracy() < ReinforcementThreshold {
			areas.Concepts = append(areas.Concepts, concept)
		}
	}

	sort.Strings(areas.Topics)
	sort.Strings(areas.QuestionTypes)
	sort.Strings(areas.Concepts)
	return areas
}

// isWeak applies the general weakness rule: enough samples, and either
// low accuracy or slow answers.
func isWeak(ts *progress.TypeStats) bool {
	if ts.TotalAttempts < MinAttempts {
		return false
	}
	return ts.Accuracy() < AccuracyThreshold || ts.AverageTimeSeconds > TimeThresholdSeconds
}

// NeedsReinforcement reports whether a topic's accuracy is low enough that
// grounding text should include a concept review before the question.
func NeedsReinforcement(p *progress.Profile, subject, topic string) bool {
	topics, ok := p.Topics[subject]
	if !ok {
		return false
	}
	ts, ok := topics[topic]
	if !ok || ts.TotalAttempts < MinAttempts {
		return false
	}
	return ts.Accuracy() < ReinforcementThreshold
}
