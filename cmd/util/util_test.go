package util

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"strings"
	"testing"
	"time"
)

func TestWrapString(t *testing.T) {
	text := strings.Repeat("word ", 30)
	for _, line := range strings.Split(WrapString(text), "\n") {
		if len(line) > Wrap {
			t.Errorf("Line longer than %d characters: %q", Wrap, line)
		}
	}

	if got := WrapString("  short   text "); got != "short text" {
		t.Errorf("Expected whitespace to collapse, got %q", got)
	}
}

func TestGetEncoder(t *testing.T) {
	for _, name := range []string{"naive", "fast"} {
		if _, err := GetEncoder(name); err != nil {
			t.Errorf("GetEncoder(%q) failed: %v", name, err)
		}
	}
	if _, err := GetEncoder("unsafe"); err == nil {
		t.Errorf("Expected error for unknown encoder")
	}
}

func TestGetRunConfig(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	cmd := &cobra.Command{Use: "test"}
	SetupRunFlags(cmd)
	if err := cmd.Flags().Parse([]string{"--suites", "proto, array", "--warmup", "2", "--bench-time", "250ms"}); err != nil {
		t.Fatalf("Failed to parse flags: %v", err)
	}
	if err := BindCommandFlags(cmd); err != nil {
		t.Fatalf("Failed to bind flags: %v", err)
	}
	viper.Set("log-level", "info")

	conf := GetRunConfig()
	if len(conf.Suites) != 2 || conf.Suites[0] != "proto" || conf.Suites[1] != "array" {
		t.Errorf("Unexpected suites: %v", conf.Suites)
	}
	if conf.WarmupIterations != 2 {
		t.Errorf("Expected 2 warmup iterations, got %d", conf.WarmupIterations)
	}
	if conf.MeasurementIterations != 10 {
		t.Errorf("Expected default of 10 iterations, got %d", conf.MeasurementIterations)
	}
	if conf.BenchTime != 250*time.Millisecond {
		t.Errorf("Expected 250ms bench time, got %s", conf.BenchTime)
	}
	if err := conf.Validate(); err != nil {
		t.Errorf("Config from default flags invalid: %v", err)
	}
}
