// Package pipeline runs the concept graph stages end to end: discover
// documents, tokenize, select a vocabulary, accumulate co-occurrence,
// build and lay out the graph, and write the artifacts.
package pipeline

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/itsmostafa/conceptgraph/internal/config"
	"github.com/itsmostafa/conceptgraph/internal/corpus"
	"github.com/itsmostafa/conceptgraph/internal/graph"
	"github.com/itsmostafa/conceptgraph/internal/layout"
	"github.com/itsmostafa/conceptgraph/internal/render"
	"github.com/itsmostafa/conceptgraph/internal/tokenize"
)

// Config holds everything one run needs.
type Config struct {
	// Params are the validated generation parameters
	Params config.Params

	// Logger receives diagnostics (defaults to a discard logger)
	Logger *slog.Logger

	// Output receives the styled header/summary and Wrote lines
	// (defaults to stdout)
	Output io.Writer

	// Quiet suppresses the header and summary; Wrote lines still print
	Quiet bool
}

// Result summarizes a completed run.
type Result struct {
	RunID     string
	Documents int
	Terms     int
	Nodes     int
	Edges     int
	Duration  time.Duration
	Artifacts []string
}

// Run executes the pipeline once. The stages are strictly sequential and
// each fully consumes its input before the next begins. Unreadable
// documents degrade to empty text; a failed output-directory creation or
// artifact write is fatal.
func Run(cfg Config) (Result, error) {
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}

	start := time.Now()
	runID := uuid.NewString()[:8]
	log := cfg.Logger.With("run", runID)

	if err := cfg.Params.Validate(); err != nil {
		return Result{}, err
	}

	stop := tokenize.DefaultStopwords()
	if cfg.Params.Stopwords != "" {
		var err error
		if stop, err = tokenize.LoadStopwords(cfg.Params.Stopwords); err != nil {
			return Result{}, err
		}
	}

	if !cfg.Quiet {
		FormatHeader(cfg.Output, cfg.Params, runID)
	}

	// The output directory is created up front so a bad destination
	// fails before any corpus work happens.
	if err := os.MkdirAll(cfg.Params.OutDir, 0755); err != nil {
		return Result{}, fmt.Errorf("creating output directory %s: %w", cfg.Params.OutDir, err)
	}

	docs := corpus.Collect(cfg.Params.Root, log)
	log.Debug("corpus collected", "documents", len(docs))

	docTerms := make([][]string, len(docs))
	for i, doc := range docs {
		docTerms[i] = tokenize.Terms(doc.Text, stop)
	}

	freq := graph.TermFrequencies(docTerms)
	vocab := graph.SelectVocabulary(freq, cfg.Params.MaxNodes)
	log.Debug("vocabulary selected", "distinct", len(freq), "kept", len(vocab.Terms))

	acc := graph.NewAccumulator(len(vocab.Terms), cfg.Params.Window)
	for _, terms := range docTerms {
		acc.AddDocument(vocab, terms)
	}

	g := graph.Build(vocab, acc, cfg.Params.MinWeight, cfg.Params.MaxEdges())

	layout.Apply(&g, layout.Params{
		Width:      cfg.Params.Width,
		Height:     cfg.Params.Height,
		Seed:       cfg.Params.Seed,
		Iterations: cfg.Params.Iterations,
		Cooling:    cfg.Params.Cooling,
		MinTemp:    cfg.Params.MinTemp,
	})

	res := Result{
		RunID:     runID,
		Documents: len(docs),
		Terms:     len(freq),
		Nodes:     len(g.Nodes),
		Edges:     len(g.Edges),
	}

	renderers := []render.Renderer{
		render.SVGRenderer{Width: cfg.Params.Width, Height: cfg.Params.Height},
		render.JSONRenderer{},
	}
	for _, r := range renderers {
		data, err := r.Render(g)
		if err != nil {
			return Result{}, err
		}
		path := filepath.Join(cfg.Params.OutDir, r.Filename())
		if err := os.WriteFile(path, data, 0644); err != nil {
			return Result{}, fmt.Errorf("writing %s: %w", path, err)
		}
		fmt.Fprintf(cfg.Output, "Wrote %s\n", path)
		res.Artifacts = append(res.Artifacts, path)
	}

	res.Duration = time.Since(start)
	if !cfg.Quiet {
		FormatSummary(cfg.Output, res)
	}

	return res, nil
}
