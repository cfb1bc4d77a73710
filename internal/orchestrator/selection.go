package orchestrator

import (
	"math/rand/v2"
	"strings"

	"github.com/abhisek/prepcoach/internal/progress"
	"github.com/abhisek/prepcoach/internal/questiongen"
	"github.com/abhisek/prepcoach/internal/weakness"
)

// pickTopic chooses a subject/topic coordinate for one question. Weak
// topics win the draw with probability WeakTopicBias; otherwise the
// choice is a weighted-random draw from the syllabus. pinSubject, when
// set, restricts the draw to that subject; pinTopic pins the full
// coordinate.
func (o *Orchestrator) pickTopic(rng *rand.Rand, areas weakness.Areas, pinSubject, pinTopic string) (string, string) {
	if pinSubject != "" && pinTopic != "" {
		return pinSubject, pinTopic
	}

	weak := filterWeakTopics(areas.Topics, pinSubject)
	if len(weak) > 0 && rng.Float64() < o.config.WeakTopicBias {
		pick := weak[rng.IntN(len(weak))]
		subject, topic, _ := strings.Cut(pick, ":")
		return subject, topic
	}

	return o.weightedDraw(rng, pinSubject)
}

// filterWeakTopics keeps "subject:topic" entries matching the subject
// restriction, or all entries when unrestricted.
func filterWeakTopics(topics []string, pinSubject string) []string {
	if pinSubject == "" {
		return topics
	}
	var out []string
	for _, t := range topics {
		if strings.HasPrefix(t, pinSubject+":") {
			out = append(out, t)
		}
	}
	return out
}

// weightedDraw selects a (subject, topic) pair from the syllabus in
// proportion to topic weight.
func (o *Orchestrator) weightedDraw(rng *rand.Rand, pinSubject string) (string, string) {
	type pair struct {
		subject string
		tw      TopicWeight
	}

	var pairs []pair
	var total float64
	for subject, topics := range o.config.Syllabus {
		if pinSubject != "" && subject != pinSubject {
			continue
		}
		for _, tw := range topics {
			pairs = append(pairs, pair{subject, tw})
			total += tw.Weight
		}
	}
	if len(pairs) == 0 || total <= 0 {
		return pinSubject, "general review"
	}

	r := rng.Float64() * total
	for _, p := range pairs {
		r -= p.tw.Weight
		if r < 0 {
			return p.subject, p.tw.Topic
		}
	}
	last := pairs[len(pairs)-1]
	return last.subject, last.tw.Topic
}

// pickType prefers a weak question type when one exists, else follows the
// configured mcq/numerical split.
func (o *Orchestrator) pickType(rng *rand.Rand, areas weakness.Areas) questiongen.QuestionType {
	if len(areas.QuestionTypes) > 0 {
		return questiongen.QuestionType(areas.QuestionTypes[rng.IntN(len(areas.QuestionTypes))])
	}
	if rng.Float64() < o.config.MCQProbability {
		return questiongen.TypeMCQ
	}
	return questiongen.TypeNumerical
}

// difficultyFor maps a topic's mastery level to a difficulty band.
func difficultyFor(p *progress.Profile, subject, topic string) questiongen.Difficulty {
	level := 0
	if topics, ok := p.Subjects[subject]; ok {
		if tp, ok := topics[topic]; ok {
			level = tp.MasteryLevel
		}
	}
	switch {
	case level <= 1:
		return questiongen.DifficultyEasy
	case level <= 2:
		return questiongen.DifficultyMedium
	default:
		return questiongen.DifficultyHard
	}
}
