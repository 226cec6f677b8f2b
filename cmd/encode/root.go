package encode

import (
	"encoding/hex"
	"fmt"
	"github.com/ValentinKolb/dBench/cmd/util"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"strconv"
)

var (
	// EncodeCmd prints the encoding of the int32 values given as arguments
	EncodeCmd = &cobra.Command{
		Use:     "encode [values...]",
		Short:   "Print the big-endian encoding of int32 values",
		Example: "dbench encode --encoder fast -- 1 -1 2147483647",
		PreRunE: bindFlags,
		RunE:    runEncode,
	}
)

func init() {
	key := "encoder"
	EncodeCmd.Flags().String(key, "fast", util.WrapString("encoder to use (naive, fast)"))
}

func runEncode(cmd *cobra.Command, args []string) error {
	enc, err := util.GetEncoder(viper.GetString("encoder"))
	if err != nil {
		return err
	}

	values := make([]int32, len(args))
	for i, arg := range args {
		v, err := strconv.ParseInt(arg, 0, 32)
		if err != nil {
			return fmt.Errorf("invalid int32 value %q: %v", arg, err)
		}
		values[i] = int32(v)
	}

	data := enc.Encode(values)
	fmt.Fprintf(cmd.OutOrStdout(), "%d bytes\n%s", len(data), hex.Dump(data))
	return nil
}

// bindFlags binds the command flags to viper
func bindFlags(cmd *cobra.Command, _ []string) error {
	return util.BindCommandFlags(cmd)
}
