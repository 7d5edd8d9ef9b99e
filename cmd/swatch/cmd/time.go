package cmd

import (
	"os"
	"os/exec"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tickwork/stopwatch"
	"github.com/tickwork/stopwatch/instants"
)

var runs int

var timeCmd = &cobra.Command{
	Use:   "time [flags] -- command [args...]",
	Short: "Time the execution of a command",
	Long:  `Run a command one or more times, measure each run with a monotonic stopwatch and print the per-run, total and mean elapsed times.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTime,
}

func init() {
	rootCmd.AddCommand(timeCmd)
	timeCmd.Flags().IntVar(&runs, "runs", 1, "number of times to run the command")
}

type runResult struct {
	elapsed time.Duration
	status  string
}

func runTime(cmd *cobra.Command, args []string) error {
	if runs < 1 {
		runs = 1
	}

	// the total stopwatch accumulates across runs, excluding the time
	// spent between them
	total := stopwatch.New[instants.Mono]()
	results := make([]runResult, 0, runs)

	for i := 0; i < runs; i++ {
		log.Debugf("run %d: %v", i+1, args)

		c := exec.Command(args[0], args[1:]...)
		c.Stdin = os.Stdin
		c.Stdout = cmd.OutOrStdout()
		c.Stderr = cmd.ErrOrStderr()

		lap := stopwatch.NewStarted[instants.Mono]()
		err := c.Run()
		lap.Stop()

		status := "ok"
		if err != nil {
			status = err.Error()
			log.WithError(err).Warnf("run %d failed", i+1)
		}

		total = total.SaturatingAdd(lap.Elapsed())
		results = append(results, runResult{elapsed: lap.Elapsed(), status: status})
	}

	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.Header("Run", "Status", "Elapsed")
	for i, r := range results {
		table.Append([]string{strconv.Itoa(i + 1), r.status, r.elapsed.String()})
	}
	table.Append([]string{"total", "", total.Elapsed().String()})
	table.Append([]string{"mean", "", (total.Elapsed() / time.Duration(runs)).String()})
	table.Render()

	return nil
}
