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

// This file provides the operations that map to one hardware instruction
// (or a short fixed sequence of them) on every tier.

var (
	signMaskF = Broadcast(math.Float32frombits(0x80000000)) // -0
	zeroF     = Broadcast(0)
)

// Add returns v + o lane by lane.
func (v Float32x8) Add(o Float32x8) Float32x8 {
	return Float32x8{r: regAdd(v.r, o.r)}
}

// Sub returns v - o lane by lane.
func (v Float32x8) Sub(o Float32x8) Float32x8 {
	return Float32x8{r: regSub(v.r, o.r)}
}

// Mul returns v * o lane by lane.
func (v Float32x8) Mul(o Float32x8) Float32x8 {
	return Float32x8{r: regMul(v.r, o.r)}
}

// Div returns v / o lane by lane.
func (v Float32x8) Div(o Float32x8) Float32x8 {
	return Float32x8{r: regDiv(v.r, o.r)}
}

// Add returns a + b lane by lane.
func Add(a, b Float32x8) Float32x8 { return a.Add(b) }

// Sub returns a - b lane by lane.
func Sub(a, b Float32x8) Float32x8 { return a.Sub(b) }

// Mul returns a * b lane by lane.
func Mul(a, b Float32x8) Float32x8 { return a.Mul(b) }

// Div returns a / b lane by lane.
func Div(a, b Float32x8) Float32x8 { return a.Div(b) }

// And returns the bitwise AND of the lane bit patterns.
func (v Float32x8) And(o Float32x8) Float32x8 {
	return Float32x8{r: regAnd(v.r, o.r)}
}

// Or returns the bitwise OR of the lane bit patterns.
func (v Float32x8) Or(o Float32x8) Float32x8 {
	return Float32x8{r: regOr(v.r, o.r)}
}

// Xor returns the bitwise XOR of the lane bit patterns.
func (v Float32x8) Xor(o Float32x8) Float32x8 {
	return Float32x8{r: regXor(v.r, o.r)}
}

// AndNot returns ^v & o on the lane bit patterns.
func (v Float32x8) AndNot(o Float32x8) Float32x8 {
	return Float32x8{r: regAndNot(v.r, o.r)}
}

// Neg flips the sign bit of every lane, NaN and zero included.
func (v Float32x8) Neg() Float32x8 {
	return Float32x8{r: regXor(signMaskF.r, v.r)}
}

// Abs clears the sign bit of every lane.
func (v Float32x8) Abs() Float32x8 {
	return Float32x8{r: regAndNot(signMaskF.r, v.r)}
}

// Sqrt returns the correctly rounded square root.
func (v Float32x8) Sqrt() Float32x8 {
	return Float32x8{r: regSqrt(v.r)}
}

// Reciprocal returns 1/v by full-precision division.
func (v Float32x8) Reciprocal() Float32x8 {
	return Float32x8{r: regDiv(oneF.r, v.r)}
}

// Rsqrt returns 1/sqrt(v) by a correctly rounded sqrt and a division, not
// the hardware reciprocal-sqrt estimate.
func (v Float32x8) Rsqrt() Float32x8 {
	return Float32x8{r: regDiv(oneF.r, regSqrt(v.r))}
}

// Trunc rounds toward zero.
func (v Float32x8) Trunc() Float32x8 {
	return Float32x8{r: regTrunc(v.r)}
}

// Floor rounds toward -Inf.
func (v Float32x8) Floor() Float32x8 {
	return Float32x8{r: regFloor(v.r)}
}

// Ceil rounds toward +Inf.
func (v Float32x8) Ceil() Float32x8 {
	return Float32x8{r: regCeil(v.r)}
}

// Round rounds to the nearest integer, ties to even.
func (v Float32x8) Round() Float32x8 {
	return Float32x8{r: regRoundEven(v.r)}
}

// Frac returns v - Trunc(v).
func (v Float32x8) Frac() Float32x8 {
	return v.Sub(v.Trunc())
}

// Real returns v. Lanes model real numbers.
func (v Float32x8) Real() Float32x8 { return v }

// Imag returns zero. Lanes model real numbers.
func (v Float32x8) Imag() Float32x8 { return zeroF }

// Conj returns v. Lanes model real numbers.
func (v Float32x8) Conj() Float32x8 { return v }

// FMAdd returns a*b + c with a single rounding.
func FMAdd(a, b, c Float32x8) Float32x8 {
	return Float32x8{r: regFMA(a.r, b.r, c.r)}
}

// FMSub returns a*b - c with a single rounding.
func FMSub(a, b, c Float32x8) Float32x8 {
	return Float32x8{r: regFMS(a.r, b.r, c.r)}
}

// Maximum returns the lane-wise maximum, NaN if either lane is NaN.
//
// The hardware max returns its second operand on NaN; OR-ing in the
// unordered mask turns those lanes into the all-ones pattern, which is a NaN.
func Maximum(a, b Float32x8) Float32x8 {
	m := regMax(a.r, b.r)
	return Float32x8{r: regOr(m, regCmp(a.r, b.r, cmpUnordQ))}
}

// Minimum returns the lane-wise minimum, NaN if either lane is NaN.
func Minimum(a, b Float32x8) Float32x8 {
	m := regMin(a.r, b.r)
	return Float32x8{r: regOr(m, regCmp(a.r, b.r, cmpUnordQ))}
}

// HardwareMax returns a > b ? a : b per lane (b when either is NaN).
func HardwareMax(a, b Float32x8) Float32x8 {
	return Float32x8{r: regMax(a.r, b.r)}
}

// HardwareMin returns a < b ? a : b per lane (b when either is NaN).
func HardwareMin(a, b Float32x8) Float32x8 {
	return Float32x8{r: regMin(a.r, b.r)}
}

// Clamp returns min(hi, max(lo, a)) with hardware operand order, so a NaN
// lane of a passes through.
func Clamp(a, lo, hi Float32x8) Float32x8 {
	return Float32x8{r: regMin(hi.r, regMax(lo.r, a.r))}
}

// ClampMin returns max(lo, a).
func ClampMin(a, lo Float32x8) Float32x8 {
	return Float32x8{r: regMax(lo.r, a.r)}
}

// ClampMax returns min(hi, a).
func ClampMax(a, hi Float32x8) Float32x8 {
	return Float32x8{r: regMin(hi.r, a.r)}
}
