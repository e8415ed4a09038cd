// Package config holds the tunable parameters for concept graph generation.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Params controls every stage of the pipeline. The zero value is not
// usable; start from Default and override.
type Params struct {
	// Root is the corpus directory walked for markdown files
	Root string `yaml:"root" validate:"required"`

	// OutDir receives the graph.json and graph.svg artifacts
	OutDir string `yaml:"out" validate:"required"`

	// Stopwords optionally points at a word-per-line file replacing the
	// built-in stopword list
	Stopwords string `yaml:"stopwords"`

	// Width and Height are the layout canvas dimensions
	Width  float64 `yaml:"width" validate:"gt=0"`
	Height float64 `yaml:"height" validate:"gt=0"`

	// MaxNodes is the vocabulary size (most frequent terms kept)
	MaxNodes int `yaml:"max_nodes" validate:"gte=1"`

	// Window is the co-occurrence window over the term stream
	Window int `yaml:"window" validate:"gte=2"`

	// MinWeight is the smallest co-occurrence count kept as an edge
	MinWeight int `yaml:"min_weight" validate:"gte=1"`

	// EdgeFactor caps edges at MaxNodes * EdgeFactor
	EdgeFactor int `yaml:"edge_factor" validate:"gte=1"`

	// Seed feeds the layout's random generator
	Seed uint64 `yaml:"seed"`

	// Iterations bounds the force simulation
	Iterations int `yaml:"iterations" validate:"gte=1"`

	// Cooling is the per-iteration temperature decay
	Cooling float64 `yaml:"cooling" validate:"gt=0,lt=1"`

	// MinTemp stops the simulation early once the temperature falls below it
	MinTemp float64 `yaml:"min_temp" validate:"gte=0"`
}

// Default returns the standard parameters.
func Default() Params {
	return Params{
		Root:       "content/blog",
		OutDir:     "static/graph",
		Width:      1200,
		Height:     800,
		MaxNodes:   30,
		Window:     12,
		MinWeight:  2,
		EdgeFactor: 6,
		Seed:       37,
		Iterations: 400,
		Cooling:    0.96,
		MinTemp:    0.5,
	}
}

// Load reads a YAML parameter file over the defaults. Fields absent from
// the file keep their default values.
func Load(path string) (Params, error) {
	p := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return p, nil
}

// Validate checks the parameters before a run.
func (p Params) Validate() error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("invalid parameters: %w", err)
	}
	return nil
}

// MaxEdges returns the edge cap derived from the vocabulary size.
func (p Params) MaxEdges() int {
	return p.MaxNodes * p.EdgeFactor
}
