package spacedrep

import (
	"sort"
	"time"

	"github.com/abhisek/prepcoach/internal/progress"
)

// Schedule stamps a topic record with its next review date based on the
// current mastery level. Called after every answered question.
func Schedule(tp *progress.TopicProgress, now time.Time) {
	last := now
	next := now.AddDate(0, 0, IntervalDays(tp.MasteryLevel))
	tp.LastReviewAt = &last
	tp.NextReviewAt = &next
}

// IsDue returns true if the topic has a review date at or before now.
// Topics that were never scheduled are not due.
func IsDue(tp *progress.TopicProgress, now time.Time) bool {
	return tp.NextReviewAt != nil && !now.Before(*tp.NextReviewAt)
}

// DueTopic identifies one topic due for review.
type DueTopic struct {
	Subject string
	Topic   string
	Overdue time.Duration
}

// DueTopics scans a profile and returns all topics due for review,
// most overdue first. Ties break on subject then topic for stable output.
func DueTopics(p *progress.Profile, now time.Time) []DueTopic {
	var due []DueTopic
	for subject, topics := range p.Subjects {
		for topic, tp := range topics {
			if IsDue(tp, now) {
				due = append(due, DueTopic{
					Subject: subject,
					Topic:   topic,
					Overdue: now.Sub(*tp.NextReviewAt),
				})
			}
		}
	}

	sort.Slice(due, func(i, j int) bool {
		if due[i].Overdue != due[j].Overdue {
			return due[i].Overdue > due[j].Overdue
		}
		if due[i].Subject != due[j].Subject {
			return due[i].Subject < due[j].Subject
		}
		return due[i].Topic < due[j].Topic
	})

	return due
}
