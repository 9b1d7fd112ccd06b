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

// The register kernels in this file and its siblings (log.go, trig.go,
// invtrig.go, hyperbolic.go, pow.go, erf.go) are written only in terms of the
// reg* primitives, so both tiers return the same bits for the same input.
// Accuracy bounds are listed in doc.go.

// regTable broadcasts polynomial coefficients, highest order first.
func regTable(c ...float32) []Register {
	t := make([]Register, len(c))
	for i, x := range c {
		t[i] = regBroadcast(x)
	}
	return t
}

// regPoly evaluates the polynomial with coefficients c (highest order first)
// at x by Horner's rule.
func regPoly(x Register, c []Register) Register {
	p := c[0]
	for _, ci := range c[1:] {
		p = regFMA(p, x, ci)
	}
	return p
}

// regCopysign returns the magnitude of a with the sign of b.
func regCopysign(a, b Register) Register {
	return regOr(regAndNot(signMaskF.r, a), regAnd(signMaskF.r, b))
}

func regAbs(a Register) Register { return regAndNot(signMaskF.r, a) }

// regNeg flips the sign bit; regNegate is only available on the wide tier.
func regNeg(a Register) Register { return regXor(signMaskF.r, a) }

func regIsNaN(a Register) Register { return regCmp(a, a, cmpUnordQ) }

var (
	infR     = regBroadcast(float32(math.Inf(1)))
	negInfR  = regBroadcast(float32(math.Inf(-1)))
	quarterR = regBroadcast(0.25)
	fourR    = regBroadcast(4)

	expLog2e = regBroadcast(math.Log2E)
	expLn2Hi = regBroadcast(0.693359375)
	expLn2Lo = regBroadcast(-2.12194440e-4)
	expHi    = regBroadcast(89)
	expLo    = regBroadcast(-104)
	expm1Lo  = regBroadcast(-17.5)
	exp2Hi   = regBroadcast(129)
	exp2Lo   = regBroadcast(-151)

	// Taylor series of e^r.
	expCoeffs = regTable(1.0/5040, 1.0/720, 1.0/120, 1.0/24, 1.0/6, 0.5, 1, 1)

	// (e^r - 1 - r) / r².
	expm1Coeffs = regTable(1.0/362880, 1.0/40320, 1.0/5040, 1.0/720, 1.0/120, 1.0/24, 1.0/6, 0.5)

	// ln(2)^i / i!.
	exp2Coeffs = regTable(0x1.ffcbfcp-17, 0x1.430912p-13, 0x1.5d87fep-10, 0x1.3b2ab6p-7,
		0x1.c6b08ep-5, 0x1.ebfbep-3, 0x1.62e43p-1, 1)
)

// regScale returns p * 2^k for integral k in [-160, 130]. The power is applied
// in two halves so that neither factor leaves the normal range.
func regScale(p, k Register) Register {
	k1 := regFloor(regMul(k, halfF.r))
	k2 := regSub(k, k1)
	return regMul(regMul(p, regPow2(k1)), regPow2(k2))
}

// regExpReduce splits x = k*ln2 + r with |r| <= ln2/2 using a two-part ln2.
func regExpReduce(x Register) (k, r Register) {
	k = regRoundEven(regMul(x, expLog2e))
	r = regFNMA(k, expLn2Hi, x)
	r = regFNMA(k, expLn2Lo, r)
	return k, r
}

func regExp(x Register) Register {
	xc := regMax(regMin(x, expHi), expLo)
	k, r := regExpReduce(xc)
	res := regScale(regPoly(r, expCoeffs), k)
	return regBlendv(res, x, regIsNaN(x))
}

func regExp2(x Register) Register {
	xc := regMax(regMin(x, exp2Hi), exp2Lo)
	k := regRoundEven(xc)
	res := regScale(regPoly(regSub(xc, k), exp2Coeffs), k)
	return regBlendv(res, x, regIsNaN(x))
}

// regExpm1 forms 2^k * (1 + em) - 1 as 2 * (s*em + (s - 1/2)) with
// s = 2^(k-1).
func regExpm1(x Register) Register {
	xc := regMax(regMin(x, expHi), expm1Lo)
	k, r := regExpReduce(xc)
	em := regFMA(regMul(r, r), regPoly(r, expm1Coeffs), r)
	s := regPow2(regSub(k, oneF.r))
	res := regMul(regFMA(s, em, regSub(s, halfF.r)), twoF.r)
	keep := regOr(regCmp(x, zeroF.r, cmpEqOQ), regIsNaN(x))
	return regBlendv(res, x, keep)
}

// Exp returns e**v. Results below the smallest subnormal flush to +0 and
// above math.MaxFloat32 saturate to +Inf.
func (v Float32x8) Exp() Float32x8 { return Float32x8{r: regExp(v.r)} }

// Exp2 returns 2**v.
func (v Float32x8) Exp2() Float32x8 { return Float32x8{r: regExp2(v.r)} }

// Expm1 returns e**v - 1, accurate near zero.
func (v Float32x8) Expm1() Float32x8 { return Float32x8{r: regExpm1(v.r)} }
