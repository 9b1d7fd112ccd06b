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

// Package algo provides slice-level kernels built from vec lane operations.
//
// Each helper walks its input in full vectors and finishes with one partial
// vector loaded by vec.LoadUN and stored by vec.StoreN, so the tail goes
// through the same lane function as the body and no scalar fallback exists.
// Lanes past the tail are zero inside the function and are never written
// back.
//
//	algo.Transform(out, in, vec.Float32x8.Erf)
//
// The Parallel variants split the work over a workerpool.Pool on
// vector-aligned boundaries and produce the same result.
package algo
