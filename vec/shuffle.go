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

// The shuffles below operate on the two 128-bit halves of the register
// (lanes 0-3 and 4-7). They are the building blocks of the transpose
// kernels.

// UnpackLo interleaves the low two lanes of each half:
// [a0,b0,a1,b1, a4,b4,a5,b5].
func UnpackLo(a, b Float32x8) Float32x8 {
	return Float32x8{r: regUnpackLo(a.r, b.r)}
}

// UnpackHi interleaves the high two lanes of each half:
// [a2,b2,a3,b3, a6,b6,a7,b7].
func UnpackHi(a, b Float32x8) Float32x8 {
	return Float32x8{r: regUnpackHi(a.r, b.r)}
}

// Shuffle picks, within each half, two lanes of a then two lanes of b,
// using the 2-bit fields of imm from low to high.
func Shuffle(a, b Float32x8, imm uint8) Float32x8 {
	return Float32x8{r: regShuffle(a.r, b.r, imm)}
}

// Permute2F128 builds each half of the result from a whole half of a or b.
// The low nibble of imm controls the low half and the high nibble the high
// half: 0 a.lo, 1 a.hi, 2 b.lo, 3 b.hi. Setting bit 3 of a nibble zeroes
// that half.
func Permute2F128(a, b Float32x8, imm uint8) Float32x8 {
	return Float32x8{r: regPermute2F128(a.r, b.r, imm)}
}
