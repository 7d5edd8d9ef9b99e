package cmd

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:          "swatch",
	Short:        "Stopwatch for the command line",
	Long:         `swatch times command executions with the stopwatch library, accumulating elapsed time across runs.`,
	SilenceUsage: true,
}

// Execute runs the root command tree.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initLog)
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func initLog() {
	log.SetOutput(rootCmd.ErrOrStderr())
	if verbose {
		log.SetLevel(log.DebugLevel)
	}
}
