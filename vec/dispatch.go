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

package vec

import "golang.org/x/sys/cpu"

// Tier identifies the capability tier compiled into this binary.
type Tier int

const (
	// TierFallback is the pure Go tier: registers are [8]float32 arrays.
	TierFallback Tier = iota

	// TierAVX2 is the wide tier: registers are 256-bit AVX2 vectors and
	// fused multiply-add uses FMA3. Selected by building for amd64 with
	// GOEXPERIMENT=simd.
	TierAVX2
)

// String returns a human-readable name for the tier.
func (t Tier) String() string {
	switch t {
	case TierFallback:
		return "fallback"
	case TierAVX2:
		return "avx2"
	default:
		return "unknown"
	}
}

// CurrentTier returns the tier this binary was built with.
//
// The tier is a build-time constant; it never changes while the process runs.
func CurrentTier() Tier {
	return currentTier
}

// RegisterBytes returns the width of one lane register in bytes (always 32).
func RegisterBytes() int {
	return Size * 4
}

// CPUHasAVX2FMA reports whether the running CPU supports AVX2 and FMA3, the
// instructions the wide tier requires. Fallback builds run everywhere; this
// is informational for them.
func CPUHasAVX2FMA() bool {
	return cpu.X86.HasAVX2 && cpu.X86.HasFMA
}
