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

package vmath

import (
	"math"

	"github.com/chewxy/math32"
)

// Scalar special functions. They evaluate in float64 and round once, and are
// applied lane by lane by the vector catalog.

// CalcErfinv returns the inverse error function: ±Inf at ±1, NaN outside
// [-1, 1]. Within 2 ULP.
func CalcErfinv(x float32) float32 {
	return float32(math.Erfinv(float64(x)))
}

// i0SeriesLimit bounds the argument for which the power series of I0 is
// summed; above it the asymptotic expansion is used.
const i0SeriesLimit = 20

// CalcI0 returns the modified Bessel function of the first kind, order
// zero. Even in x; overflows to +Inf past |x| ~ 91. Within 2 ULP.
func CalcI0(x float32) float32 {
	if math32.IsNaN(x) {
		return x
	}
	ax := math.Abs(float64(x))
	if ax <= i0SeriesLimit {
		return float32(i0Series(ax))
	}
	return float32(math.Exp(ax) * i0AsymptoticScaled(ax))
}

// CalcI0e returns exp(-|x|) * I0(x), the exponentially scaled I0. Within
// 2 ULP.
func CalcI0e(x float32) float32 {
	if math32.IsNaN(x) {
		return x
	}
	ax := math.Abs(float64(x))
	if ax <= i0SeriesLimit {
		return float32(math.Exp(-ax) * i0Series(ax))
	}
	return float32(i0AsymptoticScaled(ax))
}

// i0Series sums (x²/4)^k / (k!)².
func i0Series(x float64) float64 {
	q := x * x / 4
	term, sum := 1.0, 1.0
	for k := 1.0; k < 200; k++ {
		term *= q / (k * k)
		sum += term
		if term < sum*1e-17 {
			break
		}
	}
	return sum
}

// i0AsymptoticScaled returns exp(-x) * I0(x) for large x from
// 1/sqrt(2πx) * Σ ((2k-1)!!)² / (k! (8x)^k).
func i0AsymptoticScaled(x float64) float64 {
	term, sum := 1.0, 1.0
	for k := 1.0; k < 30; k++ {
		next := term * (2*k - 1) * (2*k - 1) / (k * 8 * x)
		if next >= term {
			break
		}
		term = next
		sum += term
		if term < sum*1e-17 {
			break
		}
	}
	return sum / math.Sqrt(2*math.Pi*x)
}

// digammaAsymptotic holds B_2k / 2k for k = 1..7.
var digammaAsymptotic = [...]float64{
	1.0 / 12,
	-1.0 / 120,
	1.0 / 252,
	-1.0 / 240,
	1.0 / 132,
	-691.0 / 32760,
	1.0 / 12,
}

// CalcDigamma returns the logarithmic derivative of Gamma. Poles: ∓Inf at
// ±0 (sign opposite the zero), NaN at negative integers. Within 4 ULP.
func CalcDigamma(x float32) float32 {
	switch {
	case x == 0:
		return math32.Copysign(math32.Inf(1), -x)
	case math32.IsNaN(x) || math32.IsInf(x, -1):
		return math32.NaN()
	case math32.IsInf(x, 1):
		return x
	case x < 0 && x == math32.Trunc(x):
		return math32.NaN()
	}
	return float32(digamma(float64(x)))
}

func digamma(x float64) float64 {
	result := 0.0
	if x < 0 {
		// Reflection: ψ(1-x) - ψ(x) = π cot(πx).
		result = -math.Pi / math.Tan(math.Pi*x)
		x = 1 - x
	}
	for x < 10 {
		result -= 1 / x
		x++
	}
	inv2 := 1 / (x * x)
	poly, p := 0.0, inv2
	for _, c := range digammaAsymptotic {
		poly += c * p
		p *= inv2
	}
	return result + math.Log(x) - 0.5/x - poly
}

// CalcIgamma returns the regularized lower incomplete gamma function
// P(a, x). NaN for a < 0 or x < 0. Within 1e-6 absolute.
func CalcIgamma(a, x float32) float32 {
	if r, ok := igammaEdge(a, x, false); ok {
		return r
	}
	af, xf := float64(a), float64(x)
	if xf < af+1 {
		return float32(igammaSeries(af, xf))
	}
	return float32(1 - igammacFraction(af, xf))
}

// CalcIgammac returns the regularized upper incomplete gamma function
// Q(a, x) = 1 - P(a, x). NaN for a < 0 or x < 0. Within 1e-6 absolute.
func CalcIgammac(a, x float32) float32 {
	if r, ok := igammaEdge(a, x, true); ok {
		return r
	}
	af, xf := float64(a), float64(x)
	if xf < af+1 {
		return float32(1 - igammaSeries(af, xf))
	}
	return float32(igammacFraction(af, xf))
}

// igammaEdge resolves the domain boundaries shared by P and Q. upper selects
// the Q value.
func igammaEdge(a, x float32, upper bool) (float32, bool) {
	pick := func(p, q float32) (float32, bool) {
		if upper {
			return q, true
		}
		return p, true
	}
	nan := math32.NaN()
	switch {
	case math32.IsNaN(a) || math32.IsNaN(x) || a < 0 || x < 0:
		return nan, true
	case a == 0:
		if x > 0 {
			return pick(1, 0)
		}
		return nan, true
	case x == 0:
		return pick(0, 1)
	case math32.IsInf(a, 1):
		if math32.IsInf(x, 1) {
			return nan, true
		}
		return pick(0, 1)
	case math32.IsInf(x, 1):
		return pick(1, 0)
	}
	return 0, false
}

const (
	igammaEps     = 1e-15
	igammaTiny    = 1e-300
	igammaMaxIter = 2000
)

// igammaPrefix returns x^a e^-x / Gamma(a), computed in log space.
func igammaPrefix(a, x float64) float64 {
	lg, _ := math.Lgamma(a)
	return math.Exp(a*math.Log(x) - x - lg)
}

// igammaSeries evaluates P(a, x) by its power series; converges fast for
// x < a+1.
func igammaSeries(a, x float64) float64 {
	ap := a
	del := 1 / a
	sum := del
	for n := 0; n < igammaMaxIter; n++ {
		ap++
		del *= x / ap
		sum += del
		if math.Abs(del) < math.Abs(sum)*igammaEps {
			break
		}
	}
	return sum * igammaPrefix(a, x)
}

// igammacFraction evaluates Q(a, x) by its continued fraction with the
// modified Lentz method; converges fast for x >= a+1.
func igammacFraction(a, x float64) float64 {
	b := x + 1 - a
	c := 1 / igammaTiny
	d := 1 / b
	h := d
	for i := 1; i < igammaMaxIter; i++ {
		an := -float64(i) * (float64(i) - a)
		b += 2
		d = an*d + b
		if math.Abs(d) < igammaTiny {
			d = igammaTiny
		}
		c = b + an/c
		if math.Abs(c) < igammaTiny {
			c = igammaTiny
		}
		d = 1 / d
		del := d * c
		h *= del
		if math.Abs(del-1) < igammaEps {
			break
		}
	}
	return h * igammaPrefix(a, x)
}
