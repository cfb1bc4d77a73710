package contentindex

import (
	"context"
	"errors"
	"strings"
)

// DefaultTopK is how many chunks are retrieved per grounding query.
const DefaultTopK = 3

// Provider supplies grounding text for question synthesis. An empty string
// with a nil error means no content is available, which is a normal outcome,
// not a failure.
type Provider interface {
	GroundingText(ctx context.Context, subject, topic string) (string, error)
}

// IndexProvider retrieves grounding text by similarity search over the
// content index.
type IndexProvider struct {
	index *Index
	topK  int
}

// NewProvider creates a Provider over the given index. topK <= 0 selects
// DefaultTopK.
func NewProvider(index *Index) *IndexProvider {
	return &IndexProvider{index: index, topK: DefaultTopK}
}

func (p *IndexProvider) GroundingText(ctx context.Context, subject, topic string) (string, error) {
	if !p.index.Ready(subject) {
		return "", nil
	}

	results, err := p.index.Search(ctx, subject, subject+" "+topic, p.topK)
	if err != nil {
		// A vanished corpus is absence, not an error.
		if errors.Is(err, ErrIndexNotReady) {
			return "", nil
		}
		return "", err
	}

	texts := make([]string, len(results))
	for i, r := range results {
		texts[i] = r.Chunk.Text
	}
	return strings.Join(texts, "\n\n"), nil
}
