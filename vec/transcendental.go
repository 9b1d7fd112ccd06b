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

import (
	"math"

	"github.com/ajroetker/go-vec256/internal/vmath"
)

// This file holds the rest of the transcendental catalog: the functions
// without a register kernel, evaluated per lane through internal/vmath, and
// the fast ExpU20 approximation.

func (v Float32x8) viaBlock(f func(*vmath.Block) vmath.Block) Float32x8 {
	var lanes vmath.Block
	regStore(v.r, &lanes)
	out := f(&lanes)
	return Float32x8{r: regLoad(&out)}
}

func (v Float32x8) viaBlock2(o Float32x8, f func(a, b *vmath.Block) vmath.Block) Float32x8 {
	var la, lb vmath.Block
	regStore(v.r, &la)
	regStore(o.r, &lb)
	out := f(&la, &lb)
	return Float32x8{r: regLoad(&out)}
}

// Lgamma returns log|Gamma(v)|.
func (v Float32x8) Lgamma() Float32x8 { return v.viaBlock(vmath.Lgamma) }

// Fmod returns the remainder of v/o with the sign of v.
func (v Float32x8) Fmod(o Float32x8) Float32x8 { return v.viaBlock2(o, vmath.Fmod) }

// Copysign returns the magnitude of v with the sign of o.
func (v Float32x8) Copysign(o Float32x8) Float32x8 { return Float32x8{r: regCopysign(v.r, o.r)} }

// Nextafter returns the next float32 after v in the direction of o.
func (v Float32x8) Nextafter(o Float32x8) Float32x8 { return v.viaBlock2(o, vmath.Nextafter) }

// Lane-by-lane special functions with no register formulation.

// Erfinv returns the inverse error function.
func (v Float32x8) Erfinv() Float32x8 { return v.Map(vmath.CalcErfinv) }

// I0 returns the modified Bessel function of the first kind, order zero.
func (v Float32x8) I0() Float32x8 { return v.Map(vmath.CalcI0) }

// I0e returns exp(-|v|) * I0(v).
func (v Float32x8) I0e() Float32x8 { return v.Map(vmath.CalcI0e) }

// Digamma returns the logarithmic derivative of the gamma function.
func (v Float32x8) Digamma() Float32x8 { return v.Map(vmath.CalcDigamma) }

// Igamma returns the regularized lower incomplete gamma P(v, x).
func (v Float32x8) Igamma(x Float32x8) Float32x8 { return v.Map2(x, vmath.CalcIgamma) }

// Igammac returns the regularized upper incomplete gamma Q(v, x).
func (v Float32x8) Igammac(x Float32x8) Float32x8 { return v.Map2(x, vmath.CalcIgammac) }

var (
	expU20C1    = Broadcast(0.999999701)
	expU20C2    = Broadcast(0.499991506)
	expU20C3    = Broadcast(0.166676521)
	expU20C4    = Broadcast(0.0418978221)
	expU20C5    = Broadcast(0.00828929059)
	expU20Log2e = Broadcast(math.Float32frombits(0x3fb8aa3b))
	expU20Ln2   = Broadcast(math.Float32frombits(0x3f317218))
	expU20LnMin = Broadcast(math.Float32frombits(0xc2aeac50)) // ln(FLT_MIN)
	expU20LnMax = Broadcast(math.Float32frombits(0x42b17218)) // ln(FLT_MAX)
	halfF       = Broadcast(0.5)
	twoF        = Broadcast(2)
)

// ExpU20 returns e**v with a relative error of about 1e-6 (20 bits), trading
// accuracy for a short, branch-free instruction sequence.
//
// Inputs are clamped to [ln(FLT_MIN), ln(FLT_MAX)] and results for inputs
// below ln(FLT_MIN) are flushed to zero. The exponent is split as
// n = floor(v*log2(e) + 0.5), the remainder r = v - n*ln2 is fed to a
// degree-5 polynomial, and 2^(n-1) is built directly in the exponent bits
// and doubled at the end so that n = 128 does not overflow the bias. A NaN
// lane is not preserved: it is clamped like +Inf.
func (v Float32x8) ExpU20() Float32x8 {
	belowMin := regCmp(v.r, expU20LnMin.r, cmpLtOQ)

	src := regMax(regMin(v.r, expU20LnMax.r), expU20LnMin.r)
	fx := regFloor(regFMA(src, expU20Log2e.r, halfF.r))
	r := regFNMA(fx, expU20Ln2.r, src)

	p := regFMA(r, expU20C5.r, expU20C4.r)
	p = regFMA(r, p, expU20C3.r)
	p = regFMA(r, p, expU20C2.r)
	p = regFMA(r, p, expU20C1.r)
	p = regFMA(r, p, oneF.r)

	scale := regPow2(regSub(fx, oneF.r))
	scale = regBlendv(scale, zeroF.r, belowMin)

	return Float32x8{r: regMul(regMul(p, scale), twoF.r)}
}

var (
	piF  = Broadcast(math.Pi)
	nanF = Broadcast(float32(math.NaN()))
)

// Angle returns the argument of each lane seen as a real number: 0 for
// v >= 0 (including -0), pi for v < 0 and NaN for NaN.
func (v Float32x8) Angle() Float32x8 {
	notNaN := regCmp(v.r, v.r, cmpEqOQ)
	// The all-ones lanes of notNaN are NaN patterns, so they compare
	// unequal to zero; only the NaN inputs produce an equal lane.
	isNaN := regCmp(notNaN, zeroF.r, cmpEqOQ)
	neg := regCmp(v.r, zeroF.r, cmpLtOQ)
	angle := regBlendv(zeroF.r, piF.r, neg)
	return Float32x8{r: regBlendv(angle, nanF.r, isNaN)}
}
