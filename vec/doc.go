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

// Package vec provides a fixed-width float32 lane type for numeric kernels.
//
// A Float32x8 holds exactly Size (8) float32 lanes backed by one register of
// the capability tier selected at build time:
//
//   - Wide tier (amd64 with GOEXPERIMENT=simd): archsimd.Float32x8, AVX2+FMA.
//   - Fallback tier (everything else): a [8]float32 array, pure Go.
//
// Both tiers expose the same API and the same semantics, including NaN
// propagation and partial-width tails. There is no runtime dispatch: a binary
// contains exactly one tier.
//
// Lanes cannot be indexed. Values are observed through Store/StoreN and
// produced through Broadcast, New, Arange, LoadU/LoadUN or FromRegister.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-vec256/vec"
//
//	x := vec.LoadUN(src, n)        // zero-filled past n
//	y := x.Mul(x).Add(vec.Broadcast(1))
//	y.StoreN(dst, n)               // writes exactly n elements
//
// Comparisons (Eq, Lt, ...) return masks: lanes with every bit set (true) or
// clear (false). Masks combine with And/Or/Xor and select with Blendv.
//
// # Accuracy
//
// The elementary functions are straight-line register code built from the
// same primitives on both tiers, so a given input produces the same bits on
// either. Bounds are the largest distance, in float32 ULPs, from the float64
// result rounded to float32, over the whole float32 domain unless noted:
//
//   - 1 ULP: Exp, Exp2, Log, Log2, Log10, Log1p, Pow, Hypot
//   - 2 ULP: Expm1, Asin, Acos, Atan, Atan2, Asinh, Atanh
//   - 2 ULP: Sin, Cos for |x| < 65536; larger lanes are evaluated in float64
//     and rounded once
//   - 3 ULP: Tan (|x| < 65536, float64 beyond), Sinh, Cosh, Tanh, Acosh
//   - 4 ULP: Erfc
//   - exact: Copysign, Fmod, Nextafter
//
// Erf carries the 1.5e-7 absolute error of its rational approximation and
// ExpU20 a 2e-6 relative error. Lgamma and the special functions (Erfinv, I0,
// I0e, Digamma, Igamma, Igammac) are evaluated lane by lane through
// internal/vmath.
//
// NaN inputs give NaN outputs. Zeros, infinities and domain errors follow
// package math: Log(0) = -Inf, Log(-1) = NaN, Atanh(1) = +Inf, Pow(x, 0) = 1,
// Hypot(Inf, NaN) = +Inf, and the odd functions keep the sign of a zero.
package vec
