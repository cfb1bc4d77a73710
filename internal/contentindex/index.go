package contentindex

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/abhisek/prepcoach/internal/store"
)

// ErrIndexNotReady is returned by Search before an index has been built
// or loaded for the requested subject.
var ErrIndexNotReady = errors.New("content index not ready")

// Result is one search hit. Distance is squared Euclidean distance
// between the query and chunk embeddings; lower means more similar.
type Result struct {
	Chunk    Chunk
	Distance float64
}

// Index provides similarity search over reference-material chunks.
// Building is a one-time batch operation per subject and must not run
// concurrently with Search; searches are safe to run concurrently with
// each other.
type Index struct {
	embedder Embedder

	mu       sync.RWMutex
	subjects map[string][]Chunk
}

// New creates an empty index using the given embedder.
func New(embedder Embedder) *Index {
	return &Index{
		embedder: embedder,
		subjects: make(map[string][]Chunk),
	}
}

// Build chunks the raw content, embeds every chunk, and installs the
// result as the corpus for the subject, replacing any previous corpus.
func (ix *Index) Build(ctx context.Context, subject, content string) (int, error) {
	texts := SplitChunks(content)
	if len(texts) == 0 {
		return 0, fmt.Errorf("no content chunks for subject %q", subject)
	}

	vectors, err := ix.embedder.Embed(ctx, texts)
	if err != nil {
		return 0, fmt.Errorf("embed %d chunks for %q: %w", len(texts), subject, err)
	}

	chunks := make([]Chunk, len(texts))
	for i, t := range texts {
		chunks[i] = Chunk{Subject: subject, Text: t, Embedding: vectors[i]}
	}

	ix.mu.Lock()
	ix.subjects[subject] = chunks
	ix.mu.Unlock()
	return len(chunks), nil
}

// Search embeds the query and returns the k nearest chunks for the subject,
// closest first. Returns ErrIndexNotReady if the subject has no corpus.
func (ix *Index) Search(ctx context.Context, subject, query string, k int) ([]Result, error) {
	ix.mu.RLock()
	chunks := ix.subjects[subject]
	ix.mu.RUnlock()
	if len(chunks) == 0 {
		return nil, fmt.Errorf("subject %q: %w", subject, ErrIndexNotReady)
	}

	vectors, err := ix.embedder.Embed(ctx, []string{query})
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}
	q := vectors[0]

	results := make([]Result, 0, len(chunks))
	for _, c := range chunks {
		results = append(results, Result{Chunk: c, Distance: l2Distance(q, c.Embedding)})
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].Distance < results[j].Distance
	})

	if k > 0 && len(results) > k {
		results = results[:k]
	}
	return results, nil
}

// Ready reports whether a corpus has been built or loaded for the subject.
func (ix *Index) Ready(subject string) bool {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return len(ix.subjects[subject]) > 0
}

// Save persists the subject's corpus through the chunk repo.
func (ix *Index) Save(ctx context.Context, repo store.ChunkRepo, subject string) error {
	ix.mu.RLock()
	chunks := ix.subjects[subject]
	ix.mu.RUnlock()
	if len(chunks) == 0 {
		return fmt.Errorf("subject %q: %w", subject, ErrIndexNotReady)
	}

	data := make([]store.ChunkData, len(chunks))
	for i, c := range chunks {
		data[i] = store.ChunkData{Position: i, Text: c.Text, Embedding: c.Embedding}
	}
	return repo.ReplaceSubject(ctx, subject, data)
}

// Load restores a subject's corpus from the chunk repo. Loading an absent
// subject leaves the index not ready for it, without error.
func (ix *Index) Load(ctx context.Context, repo store.ChunkRepo, subject string) error {
	data, err := repo.BySubject(ctx, subject)
	if err != nil {
		return err
	}
	if len(data) == 0 {
		return nil
	}

	chunks := make([]Chunk, len(data))
	for i, d := range data {
		chunks[i] = Chunk{Subject: subject, Text: d.Text, Embedding: d.Embedding}
	}

	ix.mu.Lock()
	ix.subjects[subject] = chunks
	ix.mu.Unlock()
	return nil
}

// l2Distance returns the squared Euclidean distance between two vectors.
// Mismatched dimensions compare only the shared prefix; the index never
// mixes dimensions in practice since one embedder builds all vectors.
func l2Distance(a, b []float32) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var sum float64
	for i := 0; i < n; i++ {
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}
	return sum
}
