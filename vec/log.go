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

var (
	logMinNormal = regBroadcast(0x1p-126)
	logSubScale  = regBroadcast(0x1p23)
	logSubBias   = regBroadcast(-23)
	logBias      = regBroadcast(127)
	logMantMask  = regBroadcast(math.Float32frombits(0x007FFFFF))
	logSqrt2     = regBroadcast(math.Sqrt2)

	log2eHi  = regBroadcast(1.44269502)
	log2eLo  = regBroadcast(1.92596299e-8)
	log10eHi = regBroadcast(0.434294492)
	log10eLo = regBroadcast(-1.01030501e-8)
	lg2Hi    = regBroadcast(0.301025391)
	lg2Lo    = regBroadcast(4.60503898e-6)

	// Cephes logf: (log(1+f) - f + f²/2) / f³.
	logCoeffs = regTable(7.0376836292e-2, -1.1514610310e-1, 1.1676998740e-1, -1.2420140846e-1,
		1.4249322787e-1, -1.6668057665e-1, 2.0000714765e-1, -2.4999993993e-1, 3.3333331174e-1)
)

// regLogReduce writes a positive x as 2^e * m with m in (sqrt(2)/2, sqrt(2)].
// Subnormal inputs are scaled into the normal range first.
func regLogReduce(x Register) (e, m Register) {
	tiny := regCmp(x, logMinNormal, cmpLtOQ)
	x = regBlendv(x, regMul(x, logSubScale), tiny)
	e = regAnd(logSubBias, tiny)
	e = regAdd(e, regSub(regExponent(x), logBias))
	m = regOr(regAnd(x, logMantMask), oneF.r)

	big := regCmp(m, logSqrt2, cmpGtOQ)
	m = regBlendv(m, regMul(m, halfF.r), big)
	e = regBlendv(e, regAdd(e, oneF.r), big)
	return e, m
}

// regLogCore returns e, f and y with log(x) = e*ln2 + f + y and |y| small
// next to f.
func regLogCore(x Register) (e, f, y Register) {
	e, m := regLogReduce(x)
	f = regSub(m, oneF.r)
	z := regMul(f, f)
	y = regMul(regMul(regPoly(f, logCoeffs), f), z)
	y = regFNMA(halfF.r, z, y)
	return e, f, y
}

// regLogSpecial patches the lanes where x is zero, negative, +Inf or NaN.
func regLogSpecial(x, r Register) Register {
	r = regBlendv(r, nanF.r, regCmp(x, zeroF.r, cmpLtOQ))
	r = regBlendv(r, negInfR, regCmp(x, zeroF.r, cmpEqOQ))
	r = regBlendv(r, x, regCmp(x, infR, cmpEqOQ))
	return regBlendv(r, x, regIsNaN(x))
}

// regLogScaled returns log(x * 2^extra) for integral extra.
func regLogScaled(x, extra Register) Register {
	e, f, y := regLogCore(x)
	e = regAdd(e, extra)
	r := regFMA(e, expLn2Lo, y)
	r = regAdd(r, f)
	r = regFMA(e, expLn2Hi, r)
	return regLogSpecial(x, r)
}

func regLog(x Register) Register { return regLogScaled(x, zeroF.r) }

func regLog2(x Register) Register {
	e, f, y := regLogCore(x)
	a := regFMA(y, log2eHi, regMul(f, log2eLo))
	b := regFMA(f, log2eHi, a)
	return regLogSpecial(x, regAdd(b, e))
}

func regLog10(x Register) Register {
	e, f, y := regLogCore(x)
	a := regFMA(y, log10eHi, regMul(f, log10eLo))
	a = regFMA(e, lg2Lo, a)
	b := regFMA(f, log10eHi, a)
	return regLogSpecial(x, regFMA(e, lg2Hi, b))
}

// regLog1p evaluates log(u) for u = 1+x and adds c = (x - (u-1)) / u, the
// first-order correction for the rounding of u.
func regLog1p(x Register) Register {
	u := regAdd(oneF.r, x)
	c := regDiv(regSub(x, regSub(u, oneF.r)), u)
	e, f, y := regLogCore(u)
	r := regAdd(regFMA(e, expLn2Lo, y), c)
	r = regAdd(r, f)
	r = regFMA(e, expLn2Hi, r)
	r = regLogSpecial(u, r)
	keep := regOr(regCmp(x, zeroF.r, cmpEqOQ), regIsNaN(x))
	return regBlendv(r, x, keep)
}

// Log returns the natural logarithm: -Inf for ±0 and NaN for v < 0.
func (v Float32x8) Log() Float32x8 { return Float32x8{r: regLog(v.r)} }

// Log2 returns the base-2 logarithm.
func (v Float32x8) Log2() Float32x8 { return Float32x8{r: regLog2(v.r)} }

// Log10 returns the base-10 logarithm.
func (v Float32x8) Log10() Float32x8 { return Float32x8{r: regLog10(v.r)} }

// Log1p returns log(1 + v), accurate near zero.
func (v Float32x8) Log1p() Float32x8 { return Float32x8{r: regLog1p(v.r)} }
