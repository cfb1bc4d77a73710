package spacedrep

import (
	"testing"
	"time"

	"github.com/abhisek/prepcoach/internal/progress"
)

func TestIntervalDays_Table(t *testing.T) {
	cases := []struct {
		level int
		days  int
	}{
		{0, 1},
		{1, 3},
		{2, 7},
		{3, 14},
		{4, 30},
		{5, 30},  // off-table: default
		{-1, 30}, // off-table: default
	}
	for _, c := range cases {
		if got := IntervalDays(c.level); got != c.days {
			t.Errorf("IntervalDays(%d) = %d, want %d", c.level, got, c.days)
		}
	}
}

func TestSchedule_Level2SevenDays(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	tp := progress.NewTopicProgress()
	tp.MasteryLevel = 2

	Schedule(tp, now)

	if tp.LastReviewAt == nil || !tp.LastReviewAt.Equal(now) {
		t.Fatalf("LastReviewAt = %v, want %v", tp.LastReviewAt, now)
	}
	want := now.AddDate(0, 0, 7)
	if tp.NextReviewAt == nil || !tp.NextReviewAt.Equal(want) {
		t.Errorf("NextReviewAt = %v, want %v", tp.NextReviewAt, want)
	}
}

func TestIsDue(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	tp := progress.NewTopicProgress()
	if IsDue(tp, now) {
		t.Error("unscheduled topic should not be due")
	}

	at := now
	tp.NextReviewAt = &at
	if !IsDue(tp, now) {
		t.Error("topic should be due at its review time")
	}

	future := now.Add(time.Hour)
	tp.NextReviewAt = &future
	if IsDue(tp, now) {
		t.Error("topic should not be due before its review time")
	}
}

func TestDueTopics_SortedMostOverdueFirst(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	p := progress.NewProfile("u1")

	set := func(subject, topic string, next time.Time) {
		tp := p.Topic(subject, topic)
		tp.NextReviewAt = &next
	}
	set("physics", "optics", now.AddDate(0, 0, -3))
	set("mathematics", "algebra", now.AddDate(0, 0, -1))
	set("chemistry", "bonding", now.AddDate(0, 0, 2)) // not due

	due := DueTopics(p, now)
	if len(due) != 2 {
		t.Fatalf("got %d due topics, want 2", len(due))
	}
	if due[0].Topic != "optics" || due[1].Topic != "algebra" {
		t.Errorf("order = [%s %s], want [optics algebra]", due[0].Topic, due[1].Topic)
	}
}
