package questiongen

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"What Is  2+2?", "what is 2+2?"},
		{"what is 2+2?", "what is 2+2?"},
		{"  leading\tand\ntrailing  ", "leading and trailing"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCache_KnownMatchesIgnoringCaseAndWhitespace(t *testing.T) {
	c := NewCache()
	c.LoadKnown([]string{Normalize("What Is  2+2?")})

	if !c.IsKnown("what is 2+2?") {
		t.Error("expected case/whitespace-insensitive match")
	}
	if c.IsKnown("what is 3+3?") {
		t.Error("unexpected match for different question")
	}
}

func TestCache_GetReturnsFreshCopy(t *testing.T) {
	c := NewCache()
	q := &GeneratedQuestion{
		ID:         "orig",
		Subject:    "physics",
		Topic:      "kinematics",
		Difficulty: DifficultyEasy,
		Options:    []string{"50 m", "25 m", "15 m", "2 m"},
	}
	c.Put(q)

	got := c.Get("physics", "kinematics", DifficultyEasy)
	if got == nil {
		t.Fatal("expected cache hit")
	}
	if got.ID == q.ID {
		t.Error("expected a fresh ID on cache hit")
	}
	got.Options[0] = "mutated"
	if q.Options[0] != "50 m" {
		t.Error("cache copy shares option backing array")
	}
}

func TestCache_GetMiss(t *testing.T) {
	c := NewCache()
	if got := c.Get("physics", "kinematics", DifficultyHard); got != nil {
		t.Errorf("expected miss, got %+v", got)
	}
}
