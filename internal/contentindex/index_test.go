package contentindex

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// fakeEmbedder maps each text to a fixed 2-d vector so distances are
// predictable without a live embeddings API.
type fakeEmbedder struct {
	vectors map[string][]float32
}

func (f *fakeEmbedder) Embed(_ context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i, t := range texts {
		v, ok := f.vectors[t]
		if !ok {
			v = []float32{0, 0}
		}
		out[i] = v
	}
	return out, nil
}

func TestSplitChunks(t *testing.T) {
	content := "## Optics\nLight bends.\n\n\n\nSnell's law applies.\n\n   \n\nLenses focus light."
	chunks := SplitChunks(content)
	if len(chunks) != 3 {
		t.Fatalf("got %d chunks, want 3: %q", len(chunks), chunks)
	}
	if !strings.HasPrefix(chunks[0], "## Optics") {
		t.Errorf("first chunk = %q", chunks[0])
	}
}

func TestSearch_BeforeBuildFails(t *testing.T) {
	ix := New(&fakeEmbedder{})
	_, err := ix.Search(context.Background(), "physics", "optics", 3)
	if !errors.Is(err, ErrIndexNotReady) {
		t.Fatalf("err = %v, want ErrIndexNotReady", err)
	}
}

func TestBuildAndSearch_NearestFirst(t *testing.T) {
	emb := &fakeEmbedder{vectors: map[string][]float32{
		"chunk about optics":     {1, 0},
		"chunk about mechanics":  {0, 1},
		"chunk about waves":      {0.5, 0.5},
		"physics optics":         {0.9, 0.1},
	}}
	ix := New(emb)

	content := "chunk about optics\n\nchunk about mechanics\n\nchunk about waves"
	n, err := ix.Build(context.Background(), "physics", content)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if n != 3 {
		t.Fatalf("built %d chunks, want 3", n)
	}

	results, err := ix.Search(context.Background(), "physics", "physics optics", 2)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if results[0].Chunk.Text != "chunk about optics" {
		t.Errorf("nearest = %q, want optics chunk", results[0].Chunk.Text)
	}
	if results[0].Distance > results[1].Distance {
		t.Error("results not ordered by ascending distance")
	}
}

func TestBuild_EmptyContentFails(t *testing.T) {
	ix := New(&fakeEmbedder{})
	if _, err := ix.Build(context.Background(), "physics", "  \n\n "); err == nil {
		t.Fatal("expected error for empty content")
	}
}

func TestProvider_AbsentSubjectIsNotAnError(t *testing.T) {
	ix := New(&fakeEmbedder{})
	p := NewProvider(ix)
	text, err := p.GroundingText(context.Background(), "chemistry", "bonding")
	if err != nil {
		t.Fatalf("err = %v, want nil", err)
	}
	if text != "" {
		t.Errorf("text = %q, want empty", text)
	}
}

func TestProvider_JoinsTopChunks(t *testing.T) {
	emb := &fakeEmbedder{vectors: map[string][]float32{
		"alpha": {1, 0},
		"beta":  {0, 1},
	}}
	ix := New(emb)
	if _, err := ix.Build(context.Background(), "physics", "alpha\n\nbeta"); err != nil {
		t.Fatalf("Build: %v", err)
	}

	p := NewProvider(ix)
	text, err := p.GroundingText(context.Background(), "physics", "optics")
	if err != nil {
		t.Fatalf("GroundingText: %v", err)
	}
	if !strings.Contains(text, "alpha") || !strings.Contains(text, "beta") {
		t.Errorf("text = %q, want both chunks", text)
	}
}
