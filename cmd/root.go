package cmd

import (
	"fmt"
	"os"

	"github.com/itsmostafa/conceptgraph/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "conceptgraph",
	Short: "Generate a concept graph from a markdown corpus",
	Long: `conceptgraph extracts the most frequent terms and term pairs from a
directory of markdown documents, builds a weighted co-occurrence graph,
lays it out with a force-directed simulation, and writes the result as
graph.json and graph.svg.`,
}

func init() {
	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(fmt.Sprintf("conceptgraph %s\n", version.String()))
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
