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

//go:build !amd64 || !goexperiment.simd

package vec

import "math"

// This file provides the fallback tier's register operations. Each function
// reproduces the lane semantics of the corresponding AVX2 instruction,
// including operand order for min/max and the bit patterns of masks.

// Register is the fallback tier's lane register.
type Register = [Size]float32

const allOnesBits = 0xFFFFFFFF

var allOnesLane = math.Float32frombits(allOnesBits)

func regBroadcast(x float32) Register {
	return Register{x, x, x, x, x, x, x, x}
}

func regLoad(p *[Size]float32) Register {
	return *p
}

func regStore(r Register, p *[Size]float32) {
	*p = r
}

func regAdd(a, b Register) Register {
	for i := range a {
		a[i] += b[i]
	}
	return a
}

func regSub(a, b Register) Register {
	for i := range a {
		a[i] -= b[i]
	}
	return a
}

func regMul(a, b Register) Register {
	for i := range a {
		a[i] *= b[i]
	}
	return a
}

func regDiv(a, b Register) Register {
	for i := range a {
		a[i] /= b[i]
	}
	return a
}

// regMin is VMINPS: a < b ? a : b. If either lane is NaN, or both are
// zeros of either sign, the b lane is returned.
func regMin(a, b Register) Register {
	for i := range a {
		if !(a[i] < b[i]) {
			a[i] = b[i]
		}
	}
	return a
}

// regMax is VMAXPS: a > b ? a : b, returning b on NaN or equal zeros.
func regMax(a, b Register) Register {
	for i := range a {
		if !(a[i] > b[i]) {
			a[i] = b[i]
		}
	}
	return a
}

func regSqrt(a Register) Register {
	// Rounding the float64 root to float32 is correctly rounded: 53 >= 2*24+2.
	for i := range a {
		a[i] = float32(math.Sqrt(float64(a[i])))
	}
	return a
}

func regTrunc(a Register) Register {
	for i := range a {
		a[i] = float32(math.Trunc(float64(a[i])))
	}
	return a
}

func regFloor(a Register) Register {
	for i := range a {
		a[i] = float32(math.Floor(float64(a[i])))
	}
	return a
}

func regCeil(a Register) Register {
	for i := range a {
		a[i] = float32(math.Ceil(float64(a[i])))
	}
	return a
}

func regRoundEven(a Register) Register {
	for i := range a {
		a[i] = float32(math.RoundToEven(float64(a[i])))
	}
	return a
}

// fma32 returns a*b+c rounded once to float32. The product is exact in
// float64 and TwoSum recovers the error of the float64 sum. An inexact sum
// is moved to the odd neighbour on the side of the exact value (round to
// odd), which makes the final conversion to float32 round correctly.
func fma32(a, b, c float32) float32 {
	p := float64(a) * float64(b)
	s := p + float64(c)
	if math.IsInf(s, 0) || math.IsNaN(s) {
		return float32(s)
	}
	bb := s - p
	e := (p - (s - bb)) + (float64(c) - bb)
	if e != 0 && math.Float64bits(s)&1 == 0 {
		s = math.Nextafter(s, math.Copysign(math.Inf(1), e))
	}
	return float32(s)
}

// regFMA computes a*b+c with a single rounding, like VFMADD.
func regFMA(a, b, c Register) Register {
	for i := range a {
		a[i] = fma32(a[i], b[i], c[i])
	}
	return a
}

// regFMS computes a*b-c fused.
func regFMS(a, b, c Register) Register {
	for i := range a {
		a[i] = fma32(a[i], b[i], -c[i])
	}
	return a
}

// regFNMA computes -(a*b)+c fused.
func regFNMA(a, b, c Register) Register {
	for i := range a {
		a[i] = fma32(-a[i], b[i], c[i])
	}
	return a
}

func regAnd(a, b Register) Register {
	for i := range a {
		a[i] = math.Float32frombits(math.Float32bits(a[i]) & math.Float32bits(b[i]))
	}
	return a
}

func regOr(a, b Register) Register {
	for i := range a {
		a[i] = math.Float32frombits(math.Float32bits(a[i]) | math.Float32bits(b[i]))
	}
	return a
}

func regXor(a, b Register) Register {
	for i := range a {
		a[i] = math.Float32frombits(math.Float32bits(a[i]) ^ math.Float32bits(b[i]))
	}
	return a
}

// regAndNot is VANDNPS: ^a & b.
func regAndNot(a, b Register) Register {
	for i := range a {
		a[i] = math.Float32frombits(^math.Float32bits(a[i]) & math.Float32bits(b[i]))
	}
	return a
}

func regCmp(a, b Register, p cmpPredicate) Register {
	for i := range a {
		if cmpLane(a[i], b[i], p) {
			a[i] = allOnesLane
		} else {
			a[i] = 0
		}
	}
	return a
}

// regMoveMask is VMOVMSKPS: bit i is the sign bit of lane i.
func regMoveMask(a Register) int {
	m := 0
	for i := range a {
		m |= int(math.Float32bits(a[i])>>31) << i
	}
	return m
}

// regBlend is VBLENDPS: lane i from b when bit i of imm is set.
func regBlend(a, b Register, imm uint8) Register {
	for i := range a {
		if imm&(1<<i) != 0 {
			a[i] = b[i]
		}
	}
	return a
}

// regBlendv is VBLENDVPS: lane i from b when the sign bit of mask lane i is set.
func regBlendv(a, b, mask Register) Register {
	for i := range a {
		if math.Float32bits(mask[i])>>31 != 0 {
			a[i] = b[i]
		}
	}
	return a
}

// regPow2 converts integral lanes n to int32 (round to nearest even, like
// VCVTPS2DQ) and returns the float whose bits are (n+127)<<23.
func regPow2(n Register) Register {
	for i := range n {
		k := int32(math.RoundToEven(float64(n[i])))
		n[i] = math.Float32frombits(uint32(k+127) << 23)
	}
	return n
}

// regExponent returns the biased exponent field of each lane as a float.
func regExponent(a Register) Register {
	for i := range a {
		a[i] = float32((math.Float32bits(a[i]) >> 23) & 0xFF)
	}
	return a
}

func regUnpackLo(a, b Register) Register {
	return unpackLoLanes(&a, &b)
}

func regUnpackHi(a, b Register) Register {
	return unpackHiLanes(&a, &b)
}

func regShuffle(a, b Register, imm uint8) Register {
	return shuffleLanes(&a, &b, imm)
}

func regPermute2F128(a, b Register, imm uint8) Register {
	return permute2F128Lanes(&a, &b, imm)
}
