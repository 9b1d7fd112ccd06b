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

// dfloat is an unevaluated sum hi + lo of float32 lanes with |lo| at most
// half an ULP of hi.
type dfloat struct{ hi, lo Register }

// twoSum returns a + b exactly.
func twoSum(a, b Register) dfloat {
	s := regAdd(a, b)
	v := regSub(s, a)
	e := regAdd(regSub(a, regSub(s, v)), regSub(b, v))
	return dfloat{s, e}
}

// fastTwoSum returns a + b exactly when |a| >= |b|.
func fastTwoSum(a, b Register) dfloat {
	s := regAdd(a, b)
	return dfloat{s, regAdd(regSub(a, s), b)}
}

func dfAdd(a, b dfloat) dfloat {
	s := twoSum(a.hi, b.hi)
	return fastTwoSum(s.hi, regAdd(s.lo, regAdd(a.lo, b.lo)))
}

func dfAddF(a dfloat, b Register) dfloat {
	s := twoSum(a.hi, b)
	return fastTwoSum(s.hi, regAdd(s.lo, a.lo))
}

func dfMul(a, b dfloat) dfloat {
	p := regMul(a.hi, b.hi)
	e := regFMS(a.hi, b.hi, p)
	e = regFMA(a.hi, b.lo, e)
	e = regFMA(a.lo, b.hi, e)
	return fastTwoSum(p, e)
}

func dfMulF(a dfloat, b Register) dfloat {
	p := regMul(a.hi, b)
	e := regFMS(a.hi, b, p)
	e = regFMA(a.lo, b, e)
	return fastTwoSum(p, e)
}

func dfDiv(n, d dfloat) dfloat {
	q := regDiv(n.hi, d.hi)
	r := regFNMA(q, d.hi, n.hi)
	r = regAdd(r, n.lo)
	r = regFNMA(q, d.lo, r)
	return fastTwoSum(q, regDiv(r, d.hi))
}

var (
	// ln2 with a head short enough that e*dfLn2Hi is exact for |e| < 2^8.
	dfLn2Hi    = regBroadcast(0.693145751953125)
	dfLn2Lo    = regBroadcast(1.428606765330187045e-06)
	dfNegLn2Hi = regBroadcast(-0.693145751953125)
	dfNegLn2Lo = regBroadcast(-1.428606765330187045e-06)
	dfExpHi    = regBroadcast(130)
	dfExpLo    = regBroadcast(-160)
	twoThirds  = dfloat{regBroadcast(0.666666687), regBroadcast(-1.98682150e-8)}

	// 2/(2i+1) for the atanh series of log.
	logDFCoeffs = regTable(2.0/15, 2.0/13, 2.0/11, 2.0/9, 2.0/7, 2.0/5)
	expDFCoeffs = regTable(1.0/40320, 1.0/5040, 1.0/720, 1.0/120, 1.0/24, 1.0/6, 0.5)
)

// regLogDF returns log(x) as a dfloat for positive finite x, using
// log(m) = 2*atanh((m-1)/(m+1)).
func regLogDF(x Register) dfloat {
	e, m := regLogReduce(x)
	s := dfDiv(dfloat{regSub(m, oneF.r), zeroF.r}, twoSum(m, oneF.r))
	s2 := dfMul(s, s)
	z := s2.hi
	c := dfAddF(twoThirds, regMul(z, regPoly(z, logDFCoeffs)))
	r := dfMul(dfMul(s2, s), c)
	r = dfAdd(dfloat{regMul(twoF.r, s.hi), regMul(twoF.r, s.lo)}, r)
	return dfAdd(twoSum(regMul(e, dfLn2Hi), regMul(e, dfLn2Lo)), r)
}

// regExpDF returns e^d rounded to float32.
func regExpDF(d dfloat) Register {
	u := regMul(regAdd(d.hi, d.lo), expLog2e)
	q := regRoundEven(regMax(regMin(u, dfExpHi), dfExpLo))
	s := dfAddF(d, regMul(q, dfNegLn2Hi))
	s = dfAddF(s, regMul(q, dfNegLn2Lo))
	p := regPoly(s.hi, expDFCoeffs)
	t := dfAdd(s, dfMulF(dfMul(s, s), p))
	t = dfAddF(t, oneF.r)
	res := regScale(regAdd(t.hi, t.lo), q)
	res = regBlendv(res, infR, regCmp(d.hi, expHi, cmpGtOQ))
	return regBlendv(res, zeroF.r, regCmp(d.hi, expLo, cmpLtOQ))
}

// regPow evaluates |x|^y as exp(y * log|x|) in double-float, then applies the
// sign and special cases of math.Pow.
func regPow(x, y Register) Register {
	ax := regAbs(x)
	l := regLogDF(ax)
	r := regExpDF(dfMulF(l, y))
	// The double-float product is NaN once y*log|x| overflows.
	t := regMul(l.hi, y)
	r = regBlendv(r, infR, regCmp(t, expHi, cmpGtOQ))
	r = regBlendv(r, zeroF.r, regCmp(t, expLo, cmpLtOQ))

	yInt := regCmp(regRoundEven(y), y, cmpEqOQ)
	yHalfInt := regCmp(regMul(regTrunc(regMul(y, halfF.r)), twoF.r), y, cmpNeqUQ)
	yOdd := regAnd(yInt, yHalfInt)

	xNeg := regCmp(x, zeroF.r, cmpLtOQ)
	r = regXor(r, regAnd(signMaskF.r, regAnd(xNeg, yOdd)))
	r = regBlendv(r, nanF.r, regAndNot(yInt, xNeg))

	// x = ±0 or ±Inf: Pow(-Inf, y) = Pow(-0, -y).
	yNeg := regCmp(y, zeroF.r, cmpLtOQ)
	yPos := regCmp(y, zeroF.r, cmpGtOQ)
	xZero := regCmp(ax, zeroF.r, cmpEqOQ)
	xInf := regCmp(ax, infR, cmpEqOQ)
	edge := regBlendv(zeroF.r, infR, regOr(regAnd(xZero, yNeg), regAnd(xInf, yPos)))
	edge = regOr(edge, regAnd(regAnd(signMaskF.r, x), yOdd))
	r = regBlendv(r, edge, regOr(xZero, xInf))

	// y = ±Inf: +Inf when |x| > 1 and y > 0 agree, else +0; 1 for |x| = 1.
	yInf := regCmp(regAbs(y), infR, cmpEqOQ)
	grow := regBlendv(infR, zeroF.r, regXor(regCmp(ax, oneF.r, cmpGtOQ), yPos))
	grow = regBlendv(grow, oneF.r, regCmp(ax, oneF.r, cmpEqOQ))
	r = regBlendv(r, grow, yInf)

	r = regBlendv(r, nanF.r, regCmp(x, y, cmpUnordQ))
	r = regBlendv(r, x, regCmp(y, oneF.r, cmpEqOQ))
	return regBlendv(r, oneF.r, regOr(regCmp(y, zeroF.r, cmpEqOQ), regCmp(x, oneF.r, cmpEqOQ)))
}

var (
	hypotHuge = regBroadcast(0x1p50)
	hypotTiny = regBroadcast(0x1p-50)
	hypotDown = regBroadcast(0x1p-90)
	hypotUp   = regBroadcast(0x1p90)
)

// regHypot scales both operands by a power of two when the larger one is far
// from 1, so the squares neither overflow nor lose bits to underflow.
func regHypot(x, y Register) Register {
	ax, ay := regAbs(x), regAbs(y)
	big, small := regMax(ax, ay), regMin(ax, ay)

	huge := regCmp(big, hypotHuge, cmpGtOQ)
	tiny := regCmp(big, hypotTiny, cmpLtOQ)
	f := regBlendv(regBlendv(oneF.r, hypotDown, huge), hypotUp, tiny)
	inv := regBlendv(regBlendv(oneF.r, hypotUp, huge), hypotDown, tiny)

	b, s := regMul(big, f), regMul(small, f)
	r := regMul(regSqrt(regFMA(b, b, regMul(s, s))), inv)
	r = regBlendv(r, nanF.r, regCmp(x, y, cmpUnordQ))
	return regBlendv(r, infR, regOr(regCmp(ax, infR, cmpEqOQ), regCmp(ay, infR, cmpEqOQ)))
}

// Pow returns v**o with the special cases of math.Pow: Pow(x, ±0) = 1,
// Pow(1, y) = 1, odd integer powers of negative x are negative, and a
// negative finite x raised to a non-integer is NaN.
func (v Float32x8) Pow(o Float32x8) Float32x8 { return Float32x8{r: regPow(v.r, o.r)} }

// Hypot returns sqrt(v*v + o*o) without intermediate overflow. It is +Inf if
// either lane is ±Inf, even when the other is NaN.
func (v Float32x8) Hypot(o Float32x8) Float32x8 { return Float32x8{r: regHypot(v.r, o.r)} }
