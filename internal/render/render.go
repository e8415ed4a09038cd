// Package render serializes a laid-out graph into its output artifacts.
package render

import (
	"github.com/itsmostafa/conceptgraph/internal/graph"
)

// Renderer produces one artifact from a graph.
type Renderer interface {
	// Filename is the artifact's name under the output directory
	Filename() string
	// Render returns the complete artifact bytes
	Render(g graph.Graph) ([]byte, error)
}
