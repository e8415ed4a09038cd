package cmd

import (
	"github.com/itsmostafa/conceptgraph/internal/config"
	"github.com/itsmostafa/conceptgraph/internal/logging"
	"github.com/itsmostafa/conceptgraph/internal/pipeline"
	"github.com/spf13/cobra"
)

// graphOptions holds the flag values shared by generate and watch.
type graphOptions struct {
	root       string
	out        string
	configFile string
	stopwords  string
	maxNodes   int
	window     int
	seed       uint64
	iterations int
	verbose    bool
	quiet      bool
	logJSON    bool
}

func (o *graphOptions) bind(cmd *cobra.Command) {
	def := config.Default()
	f := cmd.Flags()
	f.StringVar(&o.root, "root", def.Root, "Corpus root directory walked for markdown files")
	f.StringVar(&o.out, "out", def.OutDir, "Output directory for graph.json and graph.svg")
	f.StringVar(&o.configFile, "config", "", "YAML parameter file (flags override it)")
	f.StringVar(&o.stopwords, "stopwords", "", "Stopword file, one word per line (replaces the built-in list)")
	f.IntVar(&o.maxNodes, "max-nodes", def.MaxNodes, "Vocabulary size: most frequent terms kept")
	f.IntVar(&o.window, "window", def.Window, "Co-occurrence window over the term stream")
	f.Uint64Var(&o.seed, "seed", def.Seed, "Layout random seed")
	f.IntVar(&o.iterations, "iterations", def.Iterations, "Layout iteration cap")
	f.BoolVarP(&o.verbose, "verbose", "v", false, "Enable debug logging")
	f.BoolVarP(&o.quiet, "quiet", "q", false, "Suppress the header and summary")
	f.BoolVar(&o.logJSON, "log-json", false, "Emit log records as JSON")
}

// params layers the resolved configuration: defaults, then the config
// file if given, then any flag the user set explicitly.
func (o *graphOptions) params(cmd *cobra.Command) (config.Params, error) {
	p := config.Default()
	if o.configFile != "" {
		var err error
		if p, err = config.Load(o.configFile); err != nil {
			return p, err
		}
	}

	f := cmd.Flags()
	if f.Changed("root") {
		p.Root = o.root
	}
	if f.Changed("out") {
		p.OutDir = o.out
	}
	if f.Changed("stopwords") {
		p.Stopwords = o.stopwords
	}
	if f.Changed("max-nodes") {
		p.MaxNodes = o.maxNodes
	}
	if f.Changed("window") {
		p.Window = o.window
	}
	if f.Changed("seed") {
		p.Seed = o.seed
	}
	if f.Changed("iterations") {
		p.Iterations = o.iterations
	}
	return p, nil
}

func (o *graphOptions) pipelineConfig(cmd *cobra.Command) (pipeline.Config, error) {
	p, err := o.params(cmd)
	if err != nil {
		return pipeline.Config{}, err
	}
	return pipeline.Config{
		Params: p,
		Logger: logging.New(logging.Config{Verbose: o.verbose, JSON: o.logJSON}),
		Output: cmd.OutOrStdout(),
		Quiet:  o.quiet,
	}, nil
}
