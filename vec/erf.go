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

var (
	erfP  = Broadcast(0.3275911)
	erfP1 = Broadcast(0.254829592)
	erfP2 = Broadcast(-0.284496736)
	erfP3 = Broadcast(1.421413741)
	erfP4 = Broadcast(-1.453152027)
	erfP5 = Broadcast(1.061405429)
)

// Erf returns the error function using the Abramowitz and Stegun 7.1.26
// rational approximation, absolute error below 1.5e-7 plus float32 rounding.
//
//	erf(x) = sign(x) * (1 - (p1 t + p2 t² + p3 t³ + p4 t⁴ + p5 t⁵) e^(-x²))
//	t = 1 / (1 + p|x|)
func (v Float32x8) Erf() Float32x8 {
	sign := regAnd(signMaskF.r, v.r)
	abs := regXor(sign, v.r)

	t := regDiv(oneF.r, regFMA(erfP.r, abs, oneF.r))

	r := regFMA(erfP5.r, t, erfP4.r)
	r = regFMA(r, t, erfP3.r)
	r = regFMA(r, t, erfP2.r)
	r = regFMA(r, t, erfP1.r)

	e := regNeg(regExp(regNeg(regMul(v.r, v.r))))

	res := regFMA(regMul(e, t), r, oneF.r)
	return Float32x8{r: regXor(sign, res)}
}

var (
	erfcSmall = regBroadcast(0.47)
	erfcMid   = regBroadcast(2)
	erfcShift = regBroadcast(1.25)

	// 2/sqrt(pi) as head and tail.
	erfcC0   = regBroadcast(1.12837923)
	erfcC0Lo = regBroadcast(-5.86353834e-8)

	// erf(x) = 2/sqrt(pi) * (x + x³*Q(x²)), Maclaurin terms.
	erfcTaylor = regTable(-1.0/75600, 1.0/9360, -1.0/1320, 1.0/216, -1.0/42, 0.1, -1.0/3)

	// erfc(a) * e^(a²) on [0.47, 2] in powers of a - 1.25.
	erfcNear = regTable(6.4405489e-05, -0.000193826549, 0.000467531703, -0.00130714523,
		0.00355470111, -0.00908645708, 0.0220112391, -0.05021777, 0.106795572,
		-0.208821893, 0.367822915)
	// a * erfc(a) * e^(a²) for a >= 2 in powers of 1/a.
	erfcFar = regTable(2.68150759, -9.79668331, 15.1061707, -11.8628778, 3.56434321,
		1.6964041, -1.80184209, 0.18125613, 0.394495368, 0.00300847949, -0.282298118,
		8.01436818e-06, 0.564189434)
)

// regErfc multiplies a fitted erfc(a)*e^(a²) by e^(-a²), with a² carried as a
// dfloat so the exponential does not amplify its rounding error. Below 0.47 it
// uses 1 - erf(x) from the Maclaurin series.
func regErfc(x Register) Register {
	a := regAbs(x)
	hi := regMul(a, a)
	lo := regFMS(a, a, hi)
	g := regExpDF(dfloat{regNeg(hi), regNeg(lo)})

	near := regMul(regPoly(regSub(a, erfcShift), erfcNear), g)
	far := regDiv(regMul(regPoly(regDiv(oneF.r, a), erfcFar), g), a)
	r := regBlendv(far, near, regCmp(a, erfcMid, cmpLtOQ))
	r = regBlendv(r, regSub(twoF.r, r), regCmp(x, zeroF.r, cmpLtOQ))

	z := regMul(x, x)
	q := regPoly(z, erfcTaylor)
	small := regSub(regFNMA(x, erfcC0, oneF.r), regMul(x, regFMA(regMul(erfcC0, z), q, erfcC0Lo)))
	r = regBlendv(r, small, regCmp(a, erfcSmall, cmpLtOQ))
	return regBlendv(r, x, regIsNaN(x))
}

// Erfc returns the complementary error function 1 - erf(v), keeping relative
// accuracy in the tail where erf(v) rounds to 1.
func (v Float32x8) Erfc() Float32x8 { return Float32x8{r: regErfc(v.r)} }
