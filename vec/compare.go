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

import "math"

// cmpPredicate names an AVX compare predicate. O: false if either operand is
// NaN (ordered). U: true if either operand is NaN (unordered). Q: quiet, no
// exception on NaN.
type cmpPredicate uint8

const (
	cmpEqOQ cmpPredicate = iota
	cmpLtOQ
	cmpLeOQ
	cmpUnordQ
	cmpNeqUQ
	cmpGtOQ
	cmpGeOQ
)

// cmpLane evaluates p on one pair of lanes. Go's scalar comparisons are
// already ordered for ==, <, <=, >, >= and unordered for !=.
func cmpLane(a, b float32, p cmpPredicate) bool {
	switch p {
	case cmpEqOQ:
		return a == b
	case cmpLtOQ:
		return a < b
	case cmpLeOQ:
		return a <= b
	case cmpUnordQ:
		return a != a || b != b
	case cmpNeqUQ:
		return a != b
	case cmpGtOQ:
		return a > b
	case cmpGeOQ:
		return a >= b
	default:
		panic("vec: unknown comparison predicate")
	}
}

// Eq returns a mask of lanes where v == o. NaN lanes compare false.
func (v Float32x8) Eq(o Float32x8) Float32x8 {
	return Float32x8{r: regCmp(v.r, o.r, cmpEqOQ)}
}

// Ne returns a mask of lanes where v != o. NaN lanes compare true.
func (v Float32x8) Ne(o Float32x8) Float32x8 {
	return Float32x8{r: regCmp(v.r, o.r, cmpNeqUQ)}
}

// Lt returns a mask of lanes where v < o. NaN lanes compare false.
func (v Float32x8) Lt(o Float32x8) Float32x8 {
	return Float32x8{r: regCmp(v.r, o.r, cmpLtOQ)}
}

// Le returns a mask of lanes where v <= o. NaN lanes compare false.
func (v Float32x8) Le(o Float32x8) Float32x8 {
	return Float32x8{r: regCmp(v.r, o.r, cmpLeOQ)}
}

// Gt returns a mask of lanes where v > o. NaN lanes compare false.
func (v Float32x8) Gt(o Float32x8) Float32x8 {
	return Float32x8{r: regCmp(v.r, o.r, cmpGtOQ)}
}

// Ge returns a mask of lanes where v >= o. NaN lanes compare false.
func (v Float32x8) Ge(o Float32x8) Float32x8 {
	return Float32x8{r: regCmp(v.r, o.r, cmpGeOQ)}
}

var oneF = Broadcast(1)

// EqF is Eq with lanes 1.0 (true) or 0.0 (false) instead of a bit mask.
func (v Float32x8) EqF(o Float32x8) Float32x8 { return v.Eq(o).And(oneF) }

// NeF is Ne with 1.0/0.0 lanes.
func (v Float32x8) NeF(o Float32x8) Float32x8 { return v.Ne(o).And(oneF) }

// LtF is Lt with 1.0/0.0 lanes.
func (v Float32x8) LtF(o Float32x8) Float32x8 { return v.Lt(o).And(oneF) }

// LeF is Le with 1.0/0.0 lanes.
func (v Float32x8) LeF(o Float32x8) Float32x8 { return v.Le(o).And(oneF) }

// GtF is Gt with 1.0/0.0 lanes.
func (v Float32x8) GtF(o Float32x8) Float32x8 { return v.Gt(o).And(oneF) }

// GeF is Ge with 1.0/0.0 lanes.
func (v Float32x8) GeF(o Float32x8) Float32x8 { return v.Ge(o).And(oneF) }

// ZeroMask returns an integer with bit i set when lane i equals zero
// (either sign). NaN lanes are not zero.
func (v Float32x8) ZeroMask() int {
	return regMoveMask(regCmp(v.r, regBroadcast(0), cmpEqOQ))
}

// MoveMask returns an integer with bit i set to the sign bit of lane i.
// Applied to a mask it yields one bit per true lane.
func (v Float32x8) MoveMask() int {
	return regMoveMask(v.r)
}

// IsNaN returns a mask of the NaN lanes.
func (v Float32x8) IsNaN() Float32x8 {
	return Float32x8{r: regCmp(v.r, regBroadcast(0), cmpUnordQ)}
}

// infNaNByteMask selects, in a byte-granular sign mask of a 256-bit value,
// the top bit of bytes 0, 1 and 2 of every 32-bit lane: lane bits 7, 15
// and 23. Byte 3 (sign and high exponent bits) is skipped.
const infNaNByteMask = 0x77777777

// HasInfNaN reports whether any lane is +Inf, -Inf or NaN.
//
// v - v is +0 for every finite lane and NaN otherwise, and every NaN has
// bit 23 (the low exponent bit) set. The test reads the per-byte top bits
// of the difference and masks them with 0x77777777, the same bit positions
// VPMOVMSKB inspects in the AVX2 kernel this mirrors. Negative zero and
// subnormals are finite and do not trigger it.
func (v Float32x8) HasInfNaN() bool {
	var d [Size]float32
	regStore(regSub(v.r, v.r), &d)
	return byteSignMask(&d)&infNaNByteMask != 0
}

// byteSignMask emulates VPMOVMSKB on a 256-bit value: bit 4*i+j of the
// result is the top bit of byte j of lane i.
func byteSignMask(lanes *[Size]float32) uint32 {
	var m uint32
	for i, x := range lanes {
		bits := math.Float32bits(x)
		for j := 0; j < 4; j++ {
			m |= ((bits >> (8*j + 7)) & 1) << (4*i + j)
		}
	}
	return m
}
