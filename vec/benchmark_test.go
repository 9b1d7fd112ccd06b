// Copyright 2025 go-vec256 Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package vec_test

import (
	stdmath "math"
	"testing"

	"github.com/ajroetker/go-vec256/vec"
)

// ============================================================================
// Register-level benchmarks over a 4096-element buffer
// ============================================================================

const benchSize = 4096

func benchInput(scale float32) []float32 {
	input := make([]float32, benchSize)
	for i := range input {
		input[i] = float32(i%100-50) * scale
	}
	return input
}

func benchUnary(b *testing.B, input []float32, fn func(vec.Float32x8) vec.Float32x8) {
	output := make([]float32, len(input))
	b.ReportAllocs()
	b.SetBytes(int64(len(input) * 4))
	for i := 0; i < b.N; i++ {
		for j := 0; j < len(input); j += vec.Size {
			fn(vec.LoadU(input[j:])).Store(output[j:])
		}
	}
}

func BenchmarkExp(b *testing.B) {
	input := benchInput(0.1)
	b.Run("ExpU20", func(b *testing.B) {
		benchUnary(b, input, vec.Float32x8.ExpU20)
	})
	b.Run("Exp", func(b *testing.B) {
		benchUnary(b, input, vec.Float32x8.Exp)
	})
	b.Run("Stdlib", func(b *testing.B) {
		output := make([]float32, len(input))
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			for j, x := range input {
				output[j] = float32(stdmath.Exp(float64(x)))
			}
		}
	})
}

func BenchmarkErf(b *testing.B) {
	input := benchInput(0.05)
	b.Run("Vec", func(b *testing.B) {
		benchUnary(b, input, vec.Float32x8.Erf)
	})
	b.Run("Stdlib", func(b *testing.B) {
		output := make([]float32, len(input))
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			for j, x := range input {
				output[j] = float32(stdmath.Erf(float64(x)))
			}
		}
	})
}

func BenchmarkCatalog(b *testing.B) {
	input := benchInput(0.03)
	for _, bc := range []struct {
		name string
		fn   func(vec.Float32x8) vec.Float32x8
	}{
		{"Log", func(v vec.Float32x8) vec.Float32x8 { return v.Abs().Log() }},
		{"Sin", vec.Float32x8.Sin},
		{"Atan", vec.Float32x8.Atan},
		{"Tanh", vec.Float32x8.Tanh},
		{"Erfc", vec.Float32x8.Erfc},
		{"Pow", func(v vec.Float32x8) vec.Float32x8 { return v.Abs().Pow(v) }},
	} {
		b.Run(bc.name, func(b *testing.B) {
			benchUnary(b, input, bc.fn)
		})
	}
}

func BenchmarkMaximum(b *testing.B) {
	input := benchInput(1)
	zero := vec.Zero()
	benchUnary(b, input, func(v vec.Float32x8) vec.Float32x8 {
		return vec.Maximum(v, zero)
	})
}

func BenchmarkHasInfNaN(b *testing.B) {
	input := benchInput(1)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		for j := 0; j < len(input); j += vec.Size {
			if vec.LoadU(input[j:]).HasInfNaN() {
				b.Fatal("unexpected Inf/NaN")
			}
		}
	}
}

func BenchmarkLoadUNStoreN(b *testing.B) {
	src := benchInput(1)[:vec.Size]
	dst := make([]float32, vec.Size)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		n := i % (vec.Size + 1)
		vec.LoadUN(src, n).StoreN(dst, n)
	}
}
