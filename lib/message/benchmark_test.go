package message

import "testing"

// sink keeps the compiler from discarding benchmark results
var sink any

// BenchmarkBuild benchmarks message creation for all strategies
func BenchmarkBuild(b *testing.B) {
	for name, factory := range testStrategies {
		b.Run(name, func(b *testing.B) {
			strategy := factory()
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				msg, err := strategy.Build(DefaultID, DefaultName)
				if err != nil {
					b.Fatalf("Failed to build: %v", err)
				}
				sink = msg
			}
		})
	}
}

// BenchmarkSerialize benchmarks serialization of a prebuilt message
func BenchmarkSerialize(b *testing.B) {
	for name, factory := range testStrategies {
		b.Run(name, func(b *testing.B) {
			strategy := factory()
			msg, err := strategy.Build(DefaultID, DefaultName)
			if err != nil {
				b.Fatalf("Failed to build: %v", err)
			}
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				data, err := strategy.Serialize(msg)
				if err != nil {
					b.Fatalf("Failed to serialize: %v", err)
				}
				sink = data
			}
		})
	}
}

// BenchmarkDeserialize benchmarks parsing of the default person
func BenchmarkDeserialize(b *testing.B) {
	for name, factory := range testStrategies {
		b.Run(name, func(b *testing.B) {
			strategy := factory()
			msg, _ := strategy.Build(DefaultID, DefaultName)
			data, err := strategy.Serialize(msg)
			if err != nil {
				b.Fatalf("Failed to serialize: %v", err)
			}
			b.ReportMetric(float64(len(data)), "bytes")
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				parsed, err := strategy.Deserialize(data)
				if err != nil {
					b.Fatalf("Failed to deserialize: %v", err)
				}
				sink = parsed
			}
		})
	}
}
