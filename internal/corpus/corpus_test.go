package corpus

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestCollect(t *testing.T) {
	t.Run("finds markdown recursively in lexical order", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, "a.md"), "Alpha post")
		writeFile(t, filepath.Join(root, "notes.txt"), "not markdown")
		writeFile(t, filepath.Join(root, "sub", "b.md"), "Beta post")
		writeFile(t, filepath.Join(root, "sub", "deeper", "c.md"), "Gamma post")

		docs := Collect(root, discard())

		if len(docs) != 3 {
			t.Fatalf("len(docs) = %d, want 3", len(docs))
		}
		wantPaths := []string{
			filepath.Join(root, "a.md"),
			filepath.Join(root, "sub", "b.md"),
			filepath.Join(root, "sub", "deeper", "c.md"),
		}
		for i, want := range wantPaths {
			if docs[i].Path != want {
				t.Errorf("docs[%d].Path = %q, want %q", i, docs[i].Path, want)
			}
		}
		if docs[0].Text != "Alpha post" {
			t.Errorf("docs[0].Text = %q, want Alpha post", docs[0].Text)
		}
	})

	t.Run("extracts text through the markdown stripper", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, "post.md"),
			"+++\ntitle = \"T\"\n+++\n# Heading\n\nBody [link](http://x) end\n")

		docs := Collect(root, discard())

		if len(docs) != 1 {
			t.Fatalf("len(docs) = %d, want 1", len(docs))
		}
		want := "Heading Body link end"
		if docs[0].Text != want {
			t.Errorf("Text = %q, want %q", docs[0].Text, want)
		}
	})

	t.Run("missing root yields empty corpus", func(t *testing.T) {
		docs := Collect(filepath.Join(t.TempDir(), "nope"), discard())
		if len(docs) != 0 {
			t.Errorf("len(docs) = %d, want 0", len(docs))
		}
	})

	t.Run("empty root yields empty corpus", func(t *testing.T) {
		docs := Collect(t.TempDir(), discard())
		if len(docs) != 0 {
			t.Errorf("len(docs) = %d, want 0", len(docs))
		}
	})

	t.Run("uppercase extension skipped", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, "POST.MD"), "shouting")

		docs := Collect(root, discard())
		if len(docs) != 0 {
			t.Errorf("len(docs) = %d, want 0", len(docs))
		}
	})
}
