// Package corpus discovers markdown documents under a root directory and
// extracts their plain text.
package corpus

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

// Document is one markdown file reduced to plain text. Text is empty when
// the file could not be read.
type Document struct {
	Path string
	Text string
}

// Collect walks root for .md files in lexical order and extracts each
// one's text. Unreadable files degrade to empty text and a missing or
// unwalkable root yields an empty corpus; neither aborts the run.
func Collect(root string, log *slog.Logger) []Document {
	var docs []Document

	// The callback swallows every error, so the walk itself cannot fail.
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			log.Warn("skipping unwalkable path", "path", path, "error", err)
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() || filepath.Ext(path) != ".md" {
			return nil
		}

		raw, err := os.ReadFile(path)
		if err != nil {
			log.Warn("treating unreadable document as empty", "path", path, "error", err)
			docs = append(docs, Document{Path: path})
			return nil
		}

		docs = append(docs, Document{Path: path, Text: ExtractText(string(raw))})
		return nil
	})

	return docs
}
