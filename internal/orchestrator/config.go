package orchestrator

// TopicWeight pairs a syllabus topic with its selection weight.
type TopicWeight struct {
	Topic  string
	Weight float64
}

// Config controls batch personalization policy. The bias and split values
// are heuristics; they are exposed here rather than hardcoded so callers
// can tune them.
type Config struct {
	// WeakTopicBias is the probability of drawing from the weak-topic set
	// when it is non-empty, instead of the full syllabus distribution.
	WeakTopicBias float64

	// MCQProbability is the chance of an mcq question when no question
	// type is weak.
	MCQProbability float64

	// Workers bounds concurrent generative calls per batch. Sized
	// independently of batch size; excess requests queue.
	Workers int

	// Syllabus is the weighted topic distribution per subject, used when
	// no weak topic wins the draw.
	Syllabus map[string][]TopicWeight
}

// DefaultConfig returns the standard personalization policy.
func DefaultConfig() Config {
	return Config{
		WeakTopicBias:  0.7,
		MCQProbability: 0.8,
		Workers:        4,
		Syllabus:       DefaultSyllabus(),
	}
}

// DefaultSyllabus is the built-in JEE topic distribution. Weights skew
// toward high-yield topics.
func DefaultSyllabus() map[string][]TopicWeight {
	return map[string][]TopicWeight{
		"mathematics": {
			{Topic: "calculus", Weight: 3},
			{Topic: "algebra", Weight: 3},
			{Topic: "coordinate geometry", Weight: 2},
			{Topic: "trigonometry", Weight: 2},
			{Topic: "vectors", Weight: 1},
			{Topic: "probability", Weight: 1},
		},
		"physics": {
			{Topic: "mechanics", Weight: 3},
			{Topic: "electromagnetism", Weight: 3},
			{Topic: "thermodynamics", Weight: 2},
			{Topic: "optics", Weight: 2},
			{Topic: "modern physics", Weight: 1},
		},
		"chemistry": {
			{Topic: "physical chemistry", Weight: 3},
			{Topic: "organic chemistry", Weight: 3},
			{Topic: "inorganic chemistry", Weight: 2},
		},
	}
}
