package run

import (
	"fmt"
	"github.com/ValentinKolb/dBench/bench/runner"
	"github.com/ValentinKolb/dBench/bench/suite"
	"github.com/ValentinKolb/dBench/cmd/util"
	"github.com/lni/dragonboat/v4/logger"
	"github.com/spf13/cobra"
	"os"
	"os/signal"
	"syscall"
)

var Logger = logger.GetLogger("cli")

var (
	// RunCmd runs the benchmark suites
	RunCmd = &cobra.Command{
		Use:   "run",
		Short: "Run the benchmark suites",
		Long: `Run the benchmark suites. Every case runs a number of warmup iterations followed by the measured iterations.
The configuration can be set via command line flags or environment variables (DBENCH_<flag>, e.g. DBENCH_ITERATIONS=20)`,
		PreRunE: bindFlags,
		RunE:    runBenchmarks,
	}
)

func init() {
	util.SetupRunFlags(RunCmd)
}

func runBenchmarks(cmd *cobra.Command, _ []string) error {
	config := util.GetRunConfig()

	r, err := runner.NewRunner(config, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Serialization micro-benchmarks")
	fmt.Fprintln(cmd.OutOrStdout(), config.String())

	// set up all suites first, this fails fast if two implementations disagree
	cases, err := suite.Load(config.Suites, config.ArraySize)
	if err != nil {
		return err
	}
	Logger.Infof("running %d cases", len(cases))

	// stop after the current iteration on interrupt
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runErr := r.Run(ctx, cases)
	if runErr != nil {
		Logger.Errorf("run aborted: %v", runErr)
	}

	// export whatever was measured, also after an abort
	if config.CSVPath != "" {
		if err := r.WriteCSV(config.CSVPath); err != nil {
			return fmt.Errorf("failed to export results to CSV: %v", err)
		}
		Logger.Infof("results written to %s", config.CSVPath)
	}
	if config.MetricsPath != "" {
		if err := r.WritePrometheus(config.MetricsPath); err != nil {
			return fmt.Errorf("failed to export metrics: %v", err)
		}
		Logger.Infof("metrics written to %s", config.MetricsPath)
	}

	return runErr
}

// bindFlags binds the command flags to viper
func bindFlags(cmd *cobra.Command, _ []string) error {
	return util.BindCommandFlags(cmd)
}
