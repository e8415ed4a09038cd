package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/itsmostafa/conceptgraph/internal/pipeline"
	"github.com/spf13/cobra"
)

var watchOpts graphOptions

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Rebuild the concept graph on corpus changes",
	Long: `Build the concept graph, then watch the corpus root for markdown
changes and rebuild on each change until interrupted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := watchOpts.pipelineConfig(cmd)
		if err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return pipeline.Watch(ctx, cfg)
	},
}

func init() {
	watchOpts.bind(watchCmd)
	rootCmd.AddCommand(watchCmd)
}
