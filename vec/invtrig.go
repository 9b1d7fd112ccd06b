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
	// pi/2 and pi split into a float32 head and the rounding error of it.
	pio2Hi = regBroadcast(1.57079637)
	pio2Lo = regBroadcast(-4.37113883e-8)
	piHi   = regBroadcast(3.14159274)
	piLo   = regBroadcast(-8.74227766e-8)

	negHalfR = regBroadcast(-0.5)

	// Cephes asinf: asin(s) = s + s*z*P(z), z = s².
	asinCoeffs = regTable(4.2163199048e-2, 2.4181311049e-2, 4.5470025998e-2,
		7.4953002686e-2, 1.6666752422e-1)
	// atan(s) = s + s³*P(s²) on [0, 1].
	atanCoeffs = regTable(0.00282363896258175373077393, -0.0159569028764963150024414,
		0.0425049886107444763183594, -0.0748900920152664184570312,
		0.106347933411598205566406, -0.142027363181114196777344,
		0.199926957488059997558594, -0.333331018686294555664062)
)

// regAsinParts returns s and tail with asin(s) ~= s + tail. Lanes with
// |x| > 1/2 use s = sqrt((1-|x|)/2) and fold the rounding error of the
// square root into tail. Otherwise s is small, taken from x itself.
func regAsinParts(x, small Register) (s, tail, big Register) {
	a := regAbs(x)
	big = regCmp(a, halfF.r, cmpGtOQ)
	z := regBlendv(regMul(small, small), regMul(halfF.r, regSub(oneF.r, a)), big)
	s = regBlendv(small, regSqrt(z), big)

	slo := regDiv(regFNMA(s, s, z), regAdd(s, s))
	slo = regAnd(slo, big)
	slo = regAndNot(regCmp(z, zeroF.r, cmpEqOQ), slo)

	tail = regAdd(regMul(regMul(s, z), regPoly(z, asinCoeffs)), slo)
	return s, tail, big
}

func regAsin(x Register) Register {
	s, tail, big := regAsinParts(x, regAbs(x))
	r := regAdd(s, tail)
	// pi/2 - 2*(s + tail)
	rb := regSub(regSub(pio2Hi, regMul(twoF.r, s)), regSub(regMul(twoF.r, tail), pio2Lo))
	return regCopysign(regBlendv(r, rb, big), x)
}

func regAcos(x Register) Register {
	s, tail, big := regAsinParts(x, x)
	r := regSub(pio2Hi, regAdd(s, regSub(tail, pio2Lo)))
	pos := regAdd(regMul(twoF.r, s), regMul(twoF.r, tail))
	neg := regSub(regSub(piHi, regMul(twoF.r, s)), regSub(regMul(twoF.r, tail), piLo))
	r = regBlendv(r, pos, big)
	return regBlendv(r, neg, regCmp(x, negHalfR, cmpLtOQ))
}

func regAtanPoly(s Register) Register {
	t := regMul(s, s)
	return regFMA(regMul(s, t), regPoly(t, atanCoeffs), s)
}

func regAtan(x Register) Register {
	a := regAbs(x)
	big := regCmp(a, oneF.r, cmpGtOQ)
	y := regAtanPoly(regBlendv(a, regDiv(oneF.r, a), big))
	y = regBlendv(y, regSub(pio2Hi, regSub(y, pio2Lo)), big)
	return regCopysign(y, x)
}

// regAtan2 reduces to atan(min/max) on [0, 1] and reflects by octant.
func regAtan2(y, x Register) Register {
	ax, ay := regAbs(x), regAbs(y)
	bothInf := regAnd(regCmp(ax, infR, cmpEqOQ), regCmp(ay, infR, cmpEqOQ))
	ax = regBlendv(ax, oneF.r, bothInf)
	ay = regBlendv(ay, oneF.r, bothInf)

	num, den := regMin(ax, ay), regMax(ax, ay)
	t := regAndNot(regCmp(den, zeroF.r, cmpEqOQ), regDiv(num, den))
	r := regAtanPoly(t)
	r = regBlendv(r, regSub(pio2Hi, regSub(r, pio2Lo)), regCmp(ay, ax, cmpGtOQ))
	// Blendv selects on the sign bit, so x itself marks the lanes with x < 0
	// or x = -0.
	r = regBlendv(r, regSub(piHi, regSub(r, piLo)), x)
	r = regCopysign(r, y)
	return regBlendv(r, nanF.r, regCmp(x, y, cmpUnordQ))
}

// Asin returns the arcsine; NaN outside [-1, 1].
func (v Float32x8) Asin() Float32x8 { return Float32x8{r: regAsin(v.r)} }

// Acos returns the arccosine; NaN outside [-1, 1].
func (v Float32x8) Acos() Float32x8 { return Float32x8{r: regAcos(v.r)} }

// Atan returns the arctangent.
func (v Float32x8) Atan() Float32x8 { return Float32x8{r: regAtan(v.r)} }

// Atan2 returns atan2(v, o), the angle of the point (o, v), following the
// quadrant and signed-zero conventions of math.Atan2.
func (v Float32x8) Atan2(o Float32x8) Float32x8 { return Float32x8{r: regAtan2(v.r, o.r)} }
