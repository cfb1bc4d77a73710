package app

import (
	"context"
	"fmt"
	"os"

	"github.com/abhisek/prepcoach/internal/contentindex"
	"github.com/abhisek/prepcoach/internal/llm"
	"github.com/abhisek/prepcoach/internal/orchestrator"
	"github.com/abhisek/prepcoach/internal/questiongen"
	"github.com/abhisek/prepcoach/internal/store"
)

// Options configures application assembly.
type Options struct {
	// DBPath is the SQLite database path.
	DBPath string

	// RequireLLM makes a missing provider configuration a hard error.
	// When false, a missing provider degrades to fallback questions.
	RequireLLM bool
}

// App wires the store, LLM provider, content index, synthesizer, and
// orchestrator into one assembly shared by the CLI commands.
type App struct {
	Store        *store.Store
	Provider     llm.Provider
	Index        *contentindex.Index
	Cache        *questiongen.Cache
	Synth        *questiongen.Synthesizer
	Orchestrator *orchestrator.Orchestrator
}

// New opens the store and builds the full service graph. The persisted
// chunk corpus for every syllabus subject is loaded into the index, and
// the dedup set is seeded from the known-question corpus.
func New(ctx context.Context, opts Options) (*App, error) {
	st, err := store.Open(opts.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	provider, err := llm.NewProviderFromEnv(ctx, st.Events())
	if err != nil {
		if opts.RequireLLM {
			st.Close()
			return nil, fmt.Errorf("LLM provider not configured: %w", err)
		}
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Question generation will serve fallback questions.")
		provider = llm.NewMockProvider()
	}

	index := contentindex.New(newEmbedder(ctx))

	cfg := orchestrator.DefaultConfig()
	for subject := range cfg.Syllabus {
		if err := index.Load(ctx, st.Chunks(), subject); err != nil {
			st.Close()
			return nil, fmt.Errorf("load content index for %s: %w", subject, err)
		}
	}

	cache := questiongen.NewCache()
	normalized, err := st.KnownQuestions().AllNormalized(ctx)
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("load known questions: %w", err)
	}
	cache.LoadKnown(normalized)

	synth := questiongen.New(provider, cache, questiongen.DefaultConfig())

	orch := orchestrator.New(orchestrator.Deps{
		Profiles:  st.Profiles(),
		Events:    st.Events(),
		Known:     st.KnownQuestions(),
		Grounding: contentindex.NewProvider(index),
		Synth:     synth,
	}, cfg)

	return &App{
		Store:        st,
		Provider:     provider,
		Index:        index,
		Cache:        cache,
		Synth:        synth,
		Orchestrator: orch,
	}, nil
}

// Close releases the underlying store.
func (a *App) Close() error {
	return a.Store.Close()
}

// newEmbedder builds the Gemini embedder when a key is available, else a
// nil-safe stub. Without an embedder the index cannot answer queries and
// grounding resolves to absent content.
func newEmbedder(ctx context.Context) contentindex.Embedder {
	key := os.Getenv("PREPCOACH_GEMINI_API_KEY")
	if key == "" {
		key = os.Getenv("GEMINI_API_KEY")
	}
	if key == "" {
		return unavailableEmbedder{}
	}
	e, err := contentindex.NewGeminiEmbedder(ctx, key, "")
	if err != nil {
		fmt.Fprintln(os.Stderr, "warning: embeddings unavailable:", err)
		return unavailableEmbedder{}
	}
	return e
}

type unavailableEmbedder struct{}

func (unavailableEmbedder) Embed(context.Context, []string) ([][]float32, error) {
	return nil, fmt.Errorf("no embedding provider configured: set PREPCOACH_GEMINI_API_KEY")
}
