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

// Package vmath evaluates, lane by lane, the float32 functions that have no
// register kernel in package vec.
//
// Functions take and return a Block so that a caller holding a lane register
// stores it once, evaluates, and reloads it once. The vectorized catalog
// (Exp, Log, Sin, Pow, ...) lives in package vec itself; its per-function
// error bounds are listed in the vec package documentation.
//
// # Accuracy
//
//   - Lgamma: evaluated in float64 and rounded once, within 1 ULP away from
//     the zeros of lgamma at 1 and 2, where only absolute error is bounded.
//   - Fmod, Nextafter: exact.
//   - Erfinv, I0, I0e, Digamma, Igamma, Igammac: bounds stated on each in
//     special.go.
//
// NaN inputs propagate to NaN outputs.
package vmath
