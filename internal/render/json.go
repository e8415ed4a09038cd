package render

import (
	"encoding/json"
	"fmt"

	"github.com/itsmostafa/conceptgraph/internal/graph"
)

// JSONRenderer writes the graph as pretty-printed JSON: a nodes array
// (id, label, count, x, y) followed by an edges array (source, target,
// weight). Empty sets serialize as [], never null.
type JSONRenderer struct{}

func (JSONRenderer) Filename() string {
	return "graph.json"
}

func (JSONRenderer) Render(g graph.Graph) ([]byte, error) {
	data, err := json.MarshalIndent(g, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding graph: %w", err)
	}
	return data, nil
}
