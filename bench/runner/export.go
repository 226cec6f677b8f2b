package runner

import (
	"encoding/csv"
	"fmt"
	vmetrics "github.com/VictoriaMetrics/metrics"
	"io"
	"os"
	"strconv"
)

// WriteCSV writes all results to a CSV file
func (r *Runner) WriteCSV(csvPath string) error {
	file, err := os.Create(csvPath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %v", err)
	}
	defer file.Close()

	if err := r.writeCSV(file); err != nil {
		return err
	}
	return file.Close()
}

// writeCSV writes the header and one row per result to w
func (r *Runner) writeCSV(w io.Writer) error {
	writer := csv.NewWriter(w)

	// Write header
	header := []string{
		"Suite", "Case", "Iterations", "Ops",
		"NsPerOpMean", "NsPerOpStdDev", "NsPerOpMin", "NsPerOpMax", "NsPerOpP50", "NsPerOpP99",
		"OpsPerSec", "AllocsPerOp", "BytesPerOp", "MBPerSec",
		"WarmupIterations", "BenchTime",
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %v", err)
	}

	formatFloat := func(v float64) string {
		return strconv.FormatFloat(v, 'f', 3, 64)
	}

	// Write results
	for _, result := range r.Results() {
		row := []string{
			result.Suite,
			result.Name,
			strconv.Itoa(result.Iterations),
			strconv.Itoa(result.Ops),
			formatFloat(result.NsPerOp.Mean),
			formatFloat(result.NsPerOp.StdDeviation),
			formatFloat(result.NsPerOp.Min),
			formatFloat(result.NsPerOp.Max),
			formatFloat(result.NsPerOp.P50),
			formatFloat(result.NsPerOp.P99),
			formatFloat(result.OpsPerSec()),
			strconv.FormatInt(result.AllocsPerOp, 10),
			strconv.FormatInt(result.BytesPerOp, 10),
			formatFloat(result.MBPerSec),
			strconv.Itoa(r.config.WarmupIterations),
			r.config.BenchTime.String(),
		}

		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write row for case %s: %v", result.ID(), err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// WritePrometheus writes all results in the Prometheus text format to a file
func (r *Runner) WritePrometheus(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create metrics file: %v", err)
	}
	defer file.Close()

	r.writePrometheus(file)
	return file.Close()
}

// writePrometheus registers one gauge per result value in a fresh metric set
// and writes the set to w
func (r *Runner) writePrometheus(w io.Writer) {
	set := vmetrics.NewSet()

	for _, result := range r.Results() {
		labels := fmt.Sprintf(`{suite=%q,case=%q}`, result.Suite, result.Name)
		values := map[string]float64{
			"dbench_ns_per_op":        result.NsPerOp.Mean,
			"dbench_ns_per_op_stddev": result.NsPerOp.StdDeviation,
			"dbench_ns_per_op_p99":    result.NsPerOp.P99,
			"dbench_ops_per_second":   result.OpsPerSec(),
			"dbench_allocs_per_op":    float64(result.AllocsPerOp),
			"dbench_bytes_per_op":     float64(result.BytesPerOp),
			"dbench_mb_per_second":    result.MBPerSec,
		}

		for name, value := range values {
			v := value
			set.NewGauge(name+labels, func() float64 { return v })
		}
	}

	set.WritePrometheus(w)
}
