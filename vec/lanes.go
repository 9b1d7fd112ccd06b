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

// This file holds the lane-level definition of the 256-bit shuffle algebra
// (two 128-bit halves of 4 lanes each). The fallback tier uses these
// directly as its register operations and the tests check the wide tier
// against them.

// half is the number of 32-bit lanes in one 128-bit half.
const half = Size / 2

// unpackLoLanes interleaves the low pairs of each half:
// [a0,b0,a1,b1 | a4,b4,a5,b5].
func unpackLoLanes(a, b *[Size]float32) [Size]float32 {
	var r [Size]float32
	for h := 0; h < Size; h += half {
		r[h], r[h+1], r[h+2], r[h+3] = a[h], b[h], a[h+1], b[h+1]
	}
	return r
}

// unpackHiLanes interleaves the high pairs of each half:
// [a2,b2,a3,b3 | a6,b6,a7,b7].
func unpackHiLanes(a, b *[Size]float32) [Size]float32 {
	var r [Size]float32
	for h := 0; h < Size; h += half {
		r[h], r[h+1], r[h+2], r[h+3] = a[h+2], b[h+2], a[h+3], b[h+3]
	}
	return r
}

// shuffleLanes selects two lanes from a and two from b within each half,
// using the 2-bit fields of imm: [a[imm0], a[imm1], b[imm2], b[imm3]].
func shuffleLanes(a, b *[Size]float32, imm uint8) [Size]float32 {
	var r [Size]float32
	for h := 0; h < Size; h += half {
		r[h] = a[h+int(imm&3)]
		r[h+1] = a[h+int((imm>>2)&3)]
		r[h+2] = b[h+int((imm>>4)&3)]
		r[h+3] = b[h+int((imm>>6)&3)]
	}
	return r
}

// permute2F128Lanes builds each 128-bit half of the result from one half of
// a or b. Each nibble of imm selects: 0 a.lo, 1 a.hi, 2 b.lo, 3 b.hi; bit 3
// of the nibble zeroes that half instead.
func permute2F128Lanes(a, b *[Size]float32, imm uint8) [Size]float32 {
	var r [Size]float32
	for dst := 0; dst < 2; dst++ {
		ctl := (imm >> (4 * dst)) & 0xF
		if ctl&0x8 != 0 {
			continue
		}
		src := a
		if ctl&0x2 != 0 {
			src = b
		}
		off := int(ctl&0x1) * half
		copy(r[dst*half:dst*half+half], src[off:off+half])
	}
	return r
}
