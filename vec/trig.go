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

// trigReduceMax bounds the three-part Cody-Waite reduction: past it k*pi/2
// needs more bits of pi than P1+P2+P3 carry.
const trigReduceMax = 65536

var (
	trigTwoOverPi = regBroadcast(2 / math.Pi)
	trigP1        = regBroadcast(0x1.921fb6p+0)
	trigP2        = regBroadcast(-0x1.777a5cp-25)
	trigP3        = regBroadcast(-0x1.ee58p-50)
	trigMax       = regBroadcast(trigReduceMax)
	threeR        = regBroadcast(3)
	negOneR       = regBroadcast(-1)

	// sin(r) = r + r³ * P(r²).
	sinCoeffs = regTable(2.718311493989822e-6, -0.00019839334836096632,
		0.008333329385889463, -0.16666666641626524)
	// cos(r) = 1 + r² * P(r²).
	cosCoeffs = regTable(2.443315711809948e-5, -0.001388731625493765,
		0.04166662453689337, -0.4999999963229337)
	// Cephes tanf: tan(r) = r + r³ * P(r²).
	tanCoeffs = regTable(9.38540185543e-3, 3.11992232697e-3, 2.44301354525e-2,
		5.34112807005e-2, 1.33387994085e-1, 3.33331568548e-1)
)

// regTrigReduce returns r = x - k*pi/2 and the quadrant q = k mod 4.
func regTrigReduce(x Register) (r, q Register) {
	k := regRoundEven(regMul(x, trigTwoOverPi))
	r = regFNMA(k, trigP1, x)
	r = regFNMA(k, trigP2, r)
	r = regFNMA(k, trigP3, r)
	q = regSub(k, regMul(fourR, regFloor(regMul(k, quarterR))))
	return r, q
}

// regPatchLarge recomputes in float64 the lanes of r whose input is NaN, ±Inf
// or at least trigReduceMax in magnitude.
func regPatchLarge(r, x Register, f func(float64) float64) Register {
	inRange := regMoveMask(regCmp(regAbs(x), trigMax, cmpLtOQ))
	if inRange == 1<<Size-1 {
		return r
	}
	var lr, lx [Size]float32
	regStore(r, &lr)
	regStore(x, &lx)
	for i := range lr {
		if inRange&(1<<i) == 0 {
			lr[i] = float32(f(float64(lx[i])))
		}
	}
	return regLoad(&lr)
}

func regSinCos(r Register) (s, c Register) {
	z := regMul(r, r)
	s = regFMA(regMul(r, z), regPoly(z, sinCoeffs), r)
	c = regFMA(z, regPoly(z, cosCoeffs), oneF.r)
	return s, c
}

func regOddQuadrant(q Register) Register {
	return regOr(regCmp(q, oneF.r, cmpEqOQ), regCmp(q, threeR, cmpEqOQ))
}

func regSin(x Register) Register {
	r, q := regTrigReduce(x)
	s, c := regSinCos(r)
	v := regBlendv(s, c, regOddQuadrant(q))
	v = regXor(v, regAnd(signMaskF.r, regCmp(q, twoF.r, cmpGeOQ)))
	v = regBlendv(v, x, regCmp(x, zeroF.r, cmpEqOQ))
	return regPatchLarge(v, x, math.Sin)
}

func regCos(x Register) Register {
	r, q := regTrigReduce(x)
	s, c := regSinCos(r)
	v := regBlendv(c, s, regOddQuadrant(q))
	flip := regOr(regCmp(q, oneF.r, cmpEqOQ), regCmp(q, twoF.r, cmpEqOQ))
	v = regXor(v, regAnd(signMaskF.r, flip))
	return regPatchLarge(v, x, math.Cos)
}

func regTan(x Register) Register {
	r, q := regTrigReduce(x)
	z := regMul(r, r)
	y := regFMA(regMul(r, z), regPoly(z, tanCoeffs), r)
	y = regBlendv(y, regDiv(negOneR, y), regOddQuadrant(q))
	y = regBlendv(y, x, regCmp(x, zeroF.r, cmpEqOQ))
	return regPatchLarge(y, x, math.Tan)
}

// Sin returns the sine. Lanes with |v| >= 65536 are evaluated in float64.
func (v Float32x8) Sin() Float32x8 { return Float32x8{r: regSin(v.r)} }

// Cos returns the cosine. Lanes with |v| >= 65536 are evaluated in float64.
func (v Float32x8) Cos() Float32x8 { return Float32x8{r: regCos(v.r)} }

// Tan returns the tangent. Lanes with |v| >= 65536 are evaluated in float64.
func (v Float32x8) Tan() Float32x8 { return Float32x8{r: regTan(v.r)} }
