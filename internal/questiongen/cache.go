package questiongen

import (
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Normalize canonicalizes question text for duplicate detection:
// lowercase with whitespace runs collapsed to single spaces.
func Normalize(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}

// CacheKey identifies one generation coordinate.
func CacheKey(subject, topic string, difficulty Difficulty) string {
	return fmt.Sprintf("%s::%s::%s", subject, topic, difficulty)
}

// Cache holds the shared read-mostly state used across concurrent
// synthesis tasks: the normalized known-question dedup set and the
// per-coordinate generation cache. Entries are never evicted; the key
// space is bounded by subject x topic x difficulty.
type Cache struct {
	mu        sync.RWMutex
	known     map[string]struct{}
	generated map[string]*GeneratedQuestion
}

// NewCache creates an empty Cache.
func NewCache() *Cache {
	return &Cache{
		known:     make(map[string]struct{}),
		generated: make(map[string]*GeneratedQuestion),
	}
}

// LoadKnown seeds the dedup set with already-normalized question texts.
func (c *Cache) LoadKnown(normalized []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, n := range normalized {
		if n != "" {
			c.known[n] = struct{}{}
		}
	}
}

// IsKnown reports whether the question text matches a known question
// after normalization.
func (c *Cache) IsKnown(text string) bool {
	n := Normalize(text)
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.known[n]
	return ok
}

// AddKnown records a question text in the dedup set.
func (c *Cache) AddKnown(text string) {
	n := Normalize(text)
	if n == "" {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.known[n] = struct{}{}
}

// Get returns a cached generation for the coordinate, as a fresh copy
// with its own ID, or nil when the coordinate has not been generated.
func (c *Cache) Get(subject, topic string, difficulty Difficulty) *GeneratedQuestion {
	key := CacheKey(subject, topic, difficulty)
	c.mu.RLock()
	q, ok := c.generated[key]
	c.mu.RUnlock()
	if !ok {
		return nil
	}

	cp := *q
	cp.ID = uuid.NewString()
	cp.Options = append([]string(nil), q.Options...)
	cp.Concepts = append([]string(nil), q.Concepts...)
	return &cp
}

// Put stores a successful generation for the coordinate. Last write wins
// on races; entries are idempotent.
func (c *Cache) Put(q *GeneratedQuestion) {
	key := CacheKey(q.Subject, q.Topic, q.Difficulty)
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generated[key] = q
}
