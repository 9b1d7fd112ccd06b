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

package algo

import (
	"math/bits"

	"github.com/chewxy/math32"

	"github.com/ajroetker/go-vec256/vec"
)

// horizontalSum adds the lanes of v pairwise: (l0+l4)+(l2+l6) and so on, the
// order a 128-bit split then in-half reduction produces.
func horizontalSum(v vec.Float32x8) float32 {
	v = v.Add(vec.Permute2F128(v, v, 0x01))
	v = v.Add(vec.Shuffle(v, v, 0x4E))
	v = v.Add(vec.Shuffle(v, v, 0xB1))
	var lanes [vec.Size]float32
	v.Store(lanes[:])
	return lanes[0]
}

// Sum returns the sum of src, accumulated in eight lanes. The result may
// differ from a sequential sum by rounding.
func Sum(src []float32) float32 {
	acc := vec.Zero()
	i := 0
	for ; i+vec.Size <= len(src); i += vec.Size {
		acc = acc.Add(vec.LoadU(src[i:]))
	}
	if rem := len(src) - i; rem > 0 {
		acc = acc.Add(vec.LoadUN(src[i:], rem))
	}
	return horizontalSum(acc)
}

// Dot returns the dot product of a and b using fused multiply-add per lane.
// It panics if the lengths differ.
func Dot(a, b []float32) float32 {
	if len(a) != len(b) {
		panic("algo: input slices differ in length")
	}
	acc := vec.Zero()
	i := 0
	for ; i+vec.Size <= len(a); i += vec.Size {
		acc = vec.FMAdd(vec.LoadU(a[i:]), vec.LoadU(b[i:]), acc)
	}
	if rem := len(a) - i; rem > 0 {
		acc = vec.FMAdd(vec.LoadUN(a[i:], rem), vec.LoadUN(b[i:], rem), acc)
	}
	return horizontalSum(acc)
}

// MaxValue returns the largest element of src, NaN if any element is NaN,
// and -Inf for an empty slice.
func MaxValue(src []float32) float32 {
	negInf := vec.Broadcast(math32.Inf(-1))
	acc := negInf
	i := 0
	for ; i+vec.Size <= len(src); i += vec.Size {
		acc = vec.Maximum(acc, vec.LoadU(src[i:]))
	}
	if rem := len(src) - i; rem > 0 {
		// Pad the tail with -Inf so the zero lanes do not win.
		tail := vec.Set(negInf, vec.LoadUN(src[i:], rem), rem)
		acc = vec.Maximum(acc, tail)
	}
	acc = vec.Maximum(acc, vec.Permute2F128(acc, acc, 0x01))
	acc = vec.Maximum(acc, vec.Shuffle(acc, acc, 0x4E))
	acc = vec.Maximum(acc, vec.Shuffle(acc, acc, 0xB1))
	var lanes [vec.Size]float32
	acc.Store(lanes[:])
	return lanes[0]
}

// CountIf returns the number of elements whose lane is true in pred.
func CountIf(src []float32, pred func(vec.Float32x8) vec.Float32x8) int {
	count := 0
	i := 0
	for ; i+vec.Size <= len(src); i += vec.Size {
		count += bits.OnesCount8(uint8(pred(vec.LoadU(src[i:])).MoveMask()))
	}
	if rem := len(src) - i; rem > 0 {
		m := pred(vec.LoadUN(src[i:], rem)).MoveMask() & (1<<rem - 1)
		count += bits.OnesCount8(uint8(m))
	}
	return count
}

// FindIf returns the index of the first element whose lane is true in pred,
// or -1.
func FindIf(src []float32, pred func(vec.Float32x8) vec.Float32x8) int {
	i := 0
	for ; i+vec.Size <= len(src); i += vec.Size {
		if m := pred(vec.LoadU(src[i:])).MoveMask(); m != 0 {
			return i + bits.TrailingZeros8(uint8(m))
		}
	}
	if rem := len(src) - i; rem > 0 {
		if m := pred(vec.LoadUN(src[i:], rem)).MoveMask() & (1<<rem - 1); m != 0 {
			return i + bits.TrailingZeros8(uint8(m))
		}
	}
	return -1
}

// HasInfNaN reports whether any element of src is infinite or NaN.
func HasInfNaN(src []float32) bool {
	i := 0
	for ; i+vec.Size <= len(src); i += vec.Size {
		if vec.LoadU(src[i:]).HasInfNaN() {
			return true
		}
	}
	if rem := len(src) - i; rem > 0 {
		return vec.LoadUN(src[i:], rem).HasInfNaN()
	}
	return false
}
