package cmd

import (
	"fmt"
	"github.com/ValentinKolb/dBench/bench/common"
	"github.com/ValentinKolb/dBench/cmd/encode"
	"github.com/ValentinKolb/dBench/cmd/run"
	"github.com/ValentinKolb/dBench/cmd/util"
	"github.com/ValentinKolb/dBench/cmd/verify"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"os"
)

const (
	Version = "1.0.0"
)

var (

	// RootCmd represents the base command when called without any subcommands
	RootCmd = &cobra.Command{
		Use:   "dbench",
		Short: "serialization micro-benchmarks",
		Long: fmt.Sprintf(`dBench (v%s)

Micro-benchmarks comparing naive element-by-element serialization with
bulk-copy serialization of int32 arrays, and reflection-driven with
reflection-free protobuf messages.`, Version),
		SilenceUsage:      true,
		PersistentPreRunE: setupLogging,
	}
	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of dBench",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("dBench v%s\n", Version)
		},
	}
)

func init() {
	// initialize viper
	cobra.OnInitialize(util.InitConfig)

	// Add Commands
	RootCmd.AddCommand(run.RunCmd)
	RootCmd.AddCommand(verify.VerifyCmd)
	RootCmd.AddCommand(encode.EncodeCmd)
	RootCmd.AddCommand(versionCmd)

	// Add Flags
	key := "log-level"
	RootCmd.PersistentFlags().String(key, common.DefaultLogLevel, util.WrapString("LogLevel is the level at which logs will be output (debug, info, warn, error)"))
}

// setupLogging installs the logger with the configured level before any command runs
func setupLogging(cmd *cobra.Command, _ []string) error {
	if err := viper.BindPFlags(cmd.Root().PersistentFlags()); err != nil {
		return err
	}
	return common.InitLoggers(viper.GetString("log-level"))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
