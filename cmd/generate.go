package cmd

import (
	"github.com/itsmostafa/conceptgraph/internal/pipeline"
	"github.com/spf13/cobra"
)

var generateOpts graphOptions

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Build the concept graph once",
	Long:  `Scan the corpus, build and lay out the concept graph, and write graph.json and graph.svg to the output directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := generateOpts.pipelineConfig(cmd)
		if err != nil {
			return err
		}
		_, err = pipeline.Run(cfg)
		return err
	},
}

func init() {
	generateOpts.bind(generateCmd)
	rootCmd.AddCommand(generateCmd)
}
