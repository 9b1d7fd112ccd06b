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

//go:build amd64 && goexperiment.simd

package vec

import "simd/archsimd"

const currentTier = TierAVX2

func init() {
	// The tier is fixed when the binary is built.
	if !archsimd.X86.AVX2() || !CPUHasAVX2FMA() {
		panic("vec: binary built for the avx2 tier but the CPU lacks AVX2/FMA; rebuild without GOEXPERIMENT=simd")
	}
}
