package orchestrator

import (
	"math/rand/v2"
	"testing"

	"github.com/abhisek/prepcoach/internal/progress"
	"github.com/abhisek/prepcoach/internal/questiongen"
	"github.com/abhisek/prepcoach/internal/weakness"
)

func TestWeightedDraw_RespectsSubjectPin(t *testing.T) {
	o := New(Deps{Rand: rand.New(rand.NewPCG(11, 0))}, DefaultConfig())

	for i := 0; i < 50; i++ {
		subject, topic := o.weightedDraw(o.rng, "chemistry")
		if subject != "chemistry" {
			t.Fatalf("draw %d: expected chemistry, got %s/%s", i, subject, topic)
		}
		if topic == "" {
			t.Fatalf("draw %d: empty topic", i)
		}
	}
}

func TestWeightedDraw_EmptySyllabus(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Syllabus = nil
	o := New(Deps{Rand: rand.New(rand.NewPCG(11, 0))}, cfg)

	subject, topic := o.weightedDraw(o.rng, "physics")
	if subject != "physics" || topic != "general review" {
		t.Errorf("expected general review fallback, got %s/%s", subject, topic)
	}
}

func TestPickTopic_WeakBiasZeroIgnoresWeakSet(t *testing.T) {
	cfg := DefaultConfig()
	cfg.WeakTopicBias = 0.0
	o := New(Deps{Rand: rand.New(rand.NewPCG(11, 0))}, cfg)

	areas := weakness.Areas{Topics: []string{"physics:mechanics"}}
	sawOther := false
	for i := 0; i < 50; i++ {
		subject, topic := o.pickTopic(o.rng, areas, "", "")
		if subject != "physics" || topic != "mechanics" {
			sawOther = true
		}
	}
	if !sawOther {
		t.Error("bias 0 should sometimes draw outside the weak set")
	}
}

func TestPickType_PrefersWeakType(t *testing.T) {
	o := New(Deps{Rand: rand.New(rand.NewPCG(11, 0))}, DefaultConfig())

	areas := weakness.Areas{QuestionTypes: []string{"numerical"}}
	for i := 0; i < 20; i++ {
		if got := o.pickType(o.rng, areas); got != questiongen.TypeNumerical {
			t.Fatalf("expected weak type numerical, got %s", got)
		}
	}
}

func TestDifficultyFor(t *testing.T) {
	p := progress.NewProfile("u1")
	p.Topic("physics", "optics").MasteryLevel = 2
	p.Topic("physics", "mechanics").MasteryLevel = 4

	tests := []struct {
		topic string
		want  questiongen.Difficulty
	}{
		{"unseen", questiongen.DifficultyEasy},
		{"optics", questiongen.DifficultyMedium},
		{"mechanics", questiongen.DifficultyHard},
	}
	for _, tt := range tests {
		if got := difficultyFor(p, "physics", tt.topic); got != tt.want {
			t.Errorf("difficultyFor(%s) = %s, want %s", tt.topic, got, tt.want)
		}
	}
}
