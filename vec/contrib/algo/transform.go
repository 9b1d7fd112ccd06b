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

import "github.com/ajroetker/go-vec256/vec"

// Transform sets dst[i] to lane i of fn applied over src. It panics if dst
// is shorter than src.
func Transform(dst, src []float32, fn func(vec.Float32x8) vec.Float32x8) {
	n := len(src)
	if len(dst) < n {
		panic("algo: dst slice too short")
	}
	i := 0
	for ; i+vec.Size <= n; i += vec.Size {
		fn(vec.LoadU(src[i:])).Store(dst[i:])
	}
	if rem := n - i; rem > 0 {
		fn(vec.LoadUN(src[i:], rem)).StoreN(dst[i:], rem)
	}
}

// Transform2 is the binary form of Transform over a and b, which must have
// the same length.
func Transform2(dst, a, b []float32, fn func(x, y vec.Float32x8) vec.Float32x8) {
	n := len(a)
	if len(b) != n {
		panic("algo: input slices differ in length")
	}
	if len(dst) < n {
		panic("algo: dst slice too short")
	}
	i := 0
	for ; i+vec.Size <= n; i += vec.Size {
		fn(vec.LoadU(a[i:]), vec.LoadU(b[i:])).Store(dst[i:])
	}
	if rem := n - i; rem > 0 {
		fn(vec.LoadUN(a[i:], rem), vec.LoadUN(b[i:], rem)).StoreN(dst[i:], rem)
	}
}

// Convert copies src into dst through lane registers and returns the number
// of elements copied, min(len(dst), len(src)).
func Convert(dst, src []float32) int {
	n := min(len(dst), len(src))
	i := 0
	for ; i+vec.Size <= n; i += vec.Size {
		vec.LoadU(src[i:]).Store(dst[i:])
	}
	if rem := n - i; rem > 0 {
		vec.LoadUN(src[i:], rem).StoreN(dst[i:], rem)
	}
	return n
}

// Fill sets every element of dst to value.
func Fill(dst []float32, value float32) {
	v := vec.Broadcast(value)
	i := 0
	for ; i+vec.Size <= len(dst); i += vec.Size {
		v.Store(dst[i:])
	}
	v.StoreN(dst[i:], len(dst)-i)
}
