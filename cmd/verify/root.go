package verify

import (
	"encoding/hex"
	"fmt"
	"github.com/ValentinKolb/dBench/bench/verify"
	"github.com/ValentinKolb/dBench/cmd/util"
	"github.com/spf13/cobra"
	"os"
	"os/signal"
	"runtime"
	"syscall"
)

// maxReported is the number of mismatches printed in detail
const maxReported = 5

var (
	// VerifyCmd checks the equivalence of the compared implementations
	VerifyCmd = &cobra.Command{
		Use:     "verify",
		Short:   "Check that the compared implementations produce identical bytes",
		PreRunE: bindFlags,
		RunE:    runVerify,
	}
)

func init() {
	key := "workers"
	VerifyCmd.Flags().Int(key, runtime.NumCPU(), util.WrapString("Number of goroutines checking samples"))

	key = "samples"
	VerifyCmd.Flags().Int(key, 10000, util.WrapString("Number of random int32 arrays to check"))

	key = "max-length"
	VerifyCmd.Flags().Int(key, 256, util.WrapString("Maximum length of a random array"))

	key = "seed"
	VerifyCmd.Flags().Int64(key, 1, util.WrapString("Seed for the random arrays, the same seed always checks the same arrays"))
}

func runVerify(cmd *cobra.Command, _ []string) error {
	config := util.GetVerifyConfig()
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, config.String())

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	report, err := verify.Run(ctx, config)
	if err != nil {
		return err
	}

	for i, m := range report.Mismatches {
		if i == maxReported {
			fmt.Fprintf(out, "... and %d more\n", len(report.Mismatches)-maxReported)
			break
		}
		fmt.Fprintf(out, "sample %d: %s\n  input: %v\n  want:  %s\n  got:   %s\n",
			m.Sample, m.Reason, m.Input, hex.EncodeToString(m.Want), hex.EncodeToString(m.Got))
	}

	if err := report.Err(); err != nil {
		return err
	}
	fmt.Fprintf(out, "OK: %d samples, all encodings identical\n", report.Samples)
	return nil
}

// bindFlags binds the command flags to viper
func bindFlags(cmd *cobra.Command, _ []string) error {
	return util.BindCommandFlags(cmd)
}
