package encode

import (
	"bytes"
	"github.com/spf13/viper"
	"strings"
	"testing"
)

func TestEncodeCommand(t *testing.T) {
	for _, name := range []string{"naive", "fast"} {
		t.Run(name, func(t *testing.T) {
			viper.Reset()
			t.Cleanup(viper.Reset)

			var out bytes.Buffer
			EncodeCmd.SetOut(&out)
			EncodeCmd.SetArgs([]string{"--encoder", name, "--", "1", "-1", "0x7fffffff"})

			if err := EncodeCmd.Execute(); err != nil {
				t.Fatalf("encode failed: %v", err)
			}

			printed := out.String()
			if !strings.HasPrefix(printed, "12 bytes\n") {
				t.Errorf("Expected the byte count first, got:\n%s", printed)
			}
			if !strings.Contains(printed, "00 00 00 01 ff ff ff ff  7f ff ff ff") {
				t.Errorf("Unexpected hex dump:\n%s", printed)
			}
		})
	}
}

func TestEncodeCommandInvalidValue(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	EncodeCmd.SetOut(&bytes.Buffer{})
	EncodeCmd.SetErr(&bytes.Buffer{})
	EncodeCmd.SetArgs([]string{"--encoder", "fast", "4294967296"})

	if err := EncodeCmd.Execute(); err == nil {
		t.Errorf("Expected an error for a value outside the int32 range")
	}
}
