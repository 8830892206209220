// SPDX-License-Identifier: MIT
package engine_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/mamdani/engine"
)

// BenchmarkCompute measures one full pass of the tipping rule base.
func BenchmarkCompute(b *testing.B) {
	e, err := engine.New(tippingConfig(b))
	if err != nil {
		b.Fatal(err)
	}
	in := map[string]float64{"service": 6.5, "food": 7}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = e.Compute(in)
	}
}

// BenchmarkComputeBatch measures the errgroup fan-out on 256 requests.
func BenchmarkComputeBatch(b *testing.B) {
	e, err := engine.New(tippingConfig(b), engine.WithParallelism(4))
	if err != nil {
		b.Fatal(err)
	}
	batch := make([]map[string]float64, 256)
	for i := range batch {
		batch[i] = map[string]float64{"service": float64(i%21) / 2, "food": float64((i*7)%21) / 2}
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = e.ComputeBatch(context.Background(), batch)
	}
}
