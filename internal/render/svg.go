package render

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/itsmostafa/conceptgraph/internal/graph"
)

// xmlEscaper covers the three characters reserved in element content.
// Labels never appear inside attribute values, so quotes stay literal.
var xmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// SVGRenderer draws the graph on a fixed canvas: edges as lines weighted
// by co-occurrence strength, then nodes as circles sized by frequency,
// each followed by its label so text sits above the lines.
type SVGRenderer struct {
	Width  float64
	Height float64
}

func (SVGRenderer) Filename() string {
	return "graph.svg"
}

func (r SVGRenderer) Render(g graph.Graph) ([]byte, error) {
	w := strconv.FormatFloat(r.Width, 'f', -1, 64)
	h := strconv.FormatFloat(r.Height, 'f', -1, 64)

	var b strings.Builder
	fmt.Fprintf(&b, `<svg viewBox="0 0 %s %s" xmlns="http://www.w3.org/2000/svg" width="%s" height="%s">
<style>
text { font: 12px system-ui, sans-serif; fill: #222; }
.line { stroke: #999; stroke-opacity: .6; }
.node { fill: #3b82f6; }
</style>
<rect x="0" y="0" width="%s" height="%s" fill="white" />
`, w, h, w, h, w, h)

	for _, e := range g.Edges {
		src, dst := g.Nodes[e.Source], g.Nodes[e.Target]
		sw := math.Min(math.Max(1+math.Log(float64(e.Weight)), 1.0), 6.0)
		fmt.Fprintf(&b, `<line class="line" x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke-width="%.2f" />`,
			src.X, src.Y, dst.X, dst.Y, sw)
	}

	for _, n := range g.Nodes {
		radius := 4 + math.Max(math.Log2(float64(n.Count)), 0)
		fmt.Fprintf(&b, `<circle class="node" cx="%.1f" cy="%.1f" r="%.1f"/>`, n.X, n.Y, radius)
		fmt.Fprintf(&b, `<text x="%.1f" y="%.1f" dx="6" dy="4">%s</text>`, n.X, n.Y, xmlEscaper.Replace(n.Label))
	}

	b.WriteString("</svg>")

	return []byte(b.String()), nil
}
