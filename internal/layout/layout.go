// Package layout positions graph nodes with a Fruchterman-Reingold force
// simulation. Runs are deterministic: the same graph and parameters always
// produce the same positions.
package layout

import (
	"math"
	"math/rand/v2"

	"github.com/itsmostafa/conceptgraph/internal/graph"
)

// Params control the simulation.
type Params struct {
	Width      float64
	Height     float64
	Seed       uint64
	Iterations int
	Cooling    float64
	MinTemp    float64
}

// minDist clamps pair distances and displacement lengths away from zero.
const minDist = 0.01

// Apply positions g's nodes in place. Nodes start at seeded uniform random
// positions; each iteration applies pairwise repulsion k²/d and per-edge
// attraction of the same magnitude, limits each node's move per axis to
// the current temperature, and clamps positions to the canvas. The
// temperature decays by Cooling per iteration and the simulation stops
// once it falls below MinTemp.
func Apply(g *graph.Graph, p Params) {
	n := len(g.Nodes)
	if n == 0 {
		return
	}

	rng := rand.New(rand.NewPCG(p.Seed, p.Seed))
	for i := range g.Nodes {
		g.Nodes[i].X = rng.Float64() * p.Width
		g.Nodes[i].Y = rng.Float64() * p.Height
	}

	k := math.Max(math.Sqrt(p.Width*p.Height/float64(n)), 1.0)
	t := math.Min(p.Width, p.Height) / 10

	dispX := make([]float64, n)
	dispY := make([]float64, n)

	for range p.Iterations {
		for i := range n {
			dispX[i], dispY[i] = 0, 0
		}

		// repulsion between every pair
		for i := range n {
			for j := i + 1; j < n; j++ {
				dx := g.Nodes[i].X - g.Nodes[j].X
				dy := g.Nodes[i].Y - g.Nodes[j].Y
				dist := math.Max(math.Sqrt(dx*dx+dy*dy), minDist)
				force := k * k / dist
				fx := dx / dist * force
				fy := dy / dist * force
				dispX[i] += fx
				dispY[i] += fy
				dispX[j] -= fx
				dispY[j] -= fy
			}
		}

		// attraction along edges, same k²/d magnitude
		for _, e := range g.Edges {
			dx := g.Nodes[e.Source].X - g.Nodes[e.Target].X
			dy := g.Nodes[e.Source].Y - g.Nodes[e.Target].Y
			dist := math.Max(math.Sqrt(dx*dx+dy*dy), minDist)
			force := k * k / dist
			fx := dx / dist * force
			fy := dy / dist * force
			dispX[e.Source] -= fx
			dispY[e.Source] -= fy
			dispX[e.Target] += fx
			dispY[e.Target] += fy
		}

		// limit displacement per axis by temperature, sign preserved
		for i := range n {
			dx, dy := dispX[i], dispY[i]
			length := math.Max(math.Sqrt(dx*dx+dy*dy), minDist)
			x := g.Nodes[i].X + dx/length*math.Min(math.Abs(dx), t)
			y := g.Nodes[i].Y + dy/length*math.Min(math.Abs(dy), t)
			g.Nodes[i].X = math.Min(math.Max(x, 0), p.Width)
			g.Nodes[i].Y = math.Min(math.Max(y, 0), p.Height)
		}

		t *= p.Cooling
		if t < p.MinTemp {
			break
		}
	}
}
