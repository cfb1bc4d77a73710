package spacedrep

// ReviewIntervals defines the expanding review schedule in days, keyed by
// masteryLevel + 1. A topic just raised to level 1 comes back after 3 days,
// a mastered topic (level 4) after a month.
var ReviewIntervals = map[int]int{
	1: 1,
	2: 3,
	3: 7,
	4: 14,
	5: 30,
}

// DefaultIntervalDays is used for levels outside the table.
const DefaultIntervalDays = 30

// IntervalDays returns the review interval for a mastery level.
func IntervalDays(masteryLevel int) int {
	if d, ok := ReviewIntervals[masteryLevel+1]; ok {
		return d
	}
	return DefaultIntervalDays
}
