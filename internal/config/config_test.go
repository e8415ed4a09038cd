package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	p := Default()

	if p.Root != "content/blog" {
		t.Errorf("Root = %q, want content/blog", p.Root)
	}
	if p.OutDir != "static/graph" {
		t.Errorf("OutDir = %q, want static/graph", p.OutDir)
	}
	if p.MaxNodes != 30 || p.Window != 12 {
		t.Errorf("MaxNodes/Window = %d/%d, want 30/12", p.MaxNodes, p.Window)
	}
	if p.Width != 1200 || p.Height != 800 {
		t.Errorf("canvas = %gx%g, want 1200x800", p.Width, p.Height)
	}
	if p.Seed != 37 {
		t.Errorf("Seed = %d, want 37", p.Seed)
	}
	if err := p.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
	if p.MaxEdges() != 180 {
		t.Errorf("MaxEdges() = %d, want 180", p.MaxEdges())
	}
}

func TestLoad(t *testing.T) {
	t.Run("overrides only listed fields", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "graph.yaml")
		content := "root: notes\nmax_nodes: 50\nseed: 7\n"
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}

		p, err := Load(path)
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if p.Root != "notes" {
			t.Errorf("Root = %q, want notes", p.Root)
		}
		if p.MaxNodes != 50 {
			t.Errorf("MaxNodes = %d, want 50", p.MaxNodes)
		}
		if p.Seed != 7 {
			t.Errorf("Seed = %d, want 7", p.Seed)
		}
		// untouched fields keep defaults
		if p.Window != 12 {
			t.Errorf("Window = %d, want default 12", p.Window)
		}
		if p.OutDir != "static/graph" {
			t.Errorf("OutDir = %q, want default static/graph", p.OutDir)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
			t.Error("expected error for missing file")
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		if err := os.WriteFile(path, []byte("root: [unclosed"), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); err == nil {
			t.Error("expected error for malformed yaml")
		}
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Params)
	}{
		{"empty root", func(p *Params) { p.Root = "" }},
		{"empty outdir", func(p *Params) { p.OutDir = "" }},
		{"zero width", func(p *Params) { p.Width = 0 }},
		{"negative height", func(p *Params) { p.Height = -10 }},
		{"zero max nodes", func(p *Params) { p.MaxNodes = 0 }},
		{"window too small", func(p *Params) { p.Window = 1 }},
		{"zero min weight", func(p *Params) { p.MinWeight = 0 }},
		{"cooling at one", func(p *Params) { p.Cooling = 1 }},
		{"cooling at zero", func(p *Params) { p.Cooling = 0 }},
		{"zero iterations", func(p *Params) { p.Iterations = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Default()
			tt.mutate(&p)
			if err := p.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
