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
	"testing"

	"github.com/ajroetker/go-vec256/internal/vmath"
)

func relErr(got, want float32) float64 {
	if got == want {
		return 0
	}
	return math.Abs(float64(got)-float64(want)) / math.Max(math.Abs(float64(want)), 1e-30)
}

// orderedBits maps float32 values onto integers in the same order, with -0
// and +0 both at zero.
func orderedBits(x float32) int64 {
	b := int64(math.Float32bits(x))
	if b&0x80000000 != 0 {
		b = 0x80000000 - b
	}
	return b
}

// ulpDistance counts the float32 values between got and want. Two NaNs are
// at distance zero; a NaN and a number are infinitely far apart.
func ulpDistance(got, want float32) int64 {
	switch {
	case isNaN32(got) && isNaN32(want):
		return 0
	case isNaN32(got) || isNaN32(want):
		return math.MaxInt64
	}
	d := orderedBits(got) - orderedBits(want)
	if d < 0 {
		d = -d
	}
	return d
}

// sweep returns lo and every stride-th float32 after it, up to hi.
func sweep(lo, hi float32, stride uint32) []float32 {
	var xs []float32
	for x := lo; x <= hi; {
		xs = append(xs, x)
		b := math.Float32bits(x)
		if x < 0 {
			if b-0x80000000 <= stride {
				x = 0
				continue
			}
			b -= stride
		} else {
			b += stride
		}
		next := math.Float32frombits(b)
		if !(next > x) {
			break
		}
		x = next
	}
	return xs
}

// checkULP reports got if it is more than bound ULPs from want or has the
// wrong sign for a zero.
func checkULP(t *testing.T, name string, in []float32, got, want float32, bound int64) bool {
	t.Helper()
	if d := ulpDistance(got, want); d > bound {
		t.Errorf("%s%v = %v (%#x), want %v (%#x): %d ulp", name, in, got, math.Float32bits(got), want, math.Float32bits(want), d)
		return false
	}
	if got == 0 && want == 0 && math.Signbit(float64(got)) != math.Signbit(float64(want)) {
		t.Errorf("%s%v = %v, want %v", name, in, got, want)
		return false
	}
	return true
}

const (
	sweepStride  = 4099
	gridStride   = 6000011
	maxFloat32   = float32(math.MaxFloat32)
	minSubnormal = float32(math.SmallestNonzeroFloat32)
)

type unaryKernel struct {
	name   string
	fn     func(Float32x8) Float32x8
	ref    func(float64) float64
	lo, hi float32
	bound  int64
}

var unaryKernels = []unaryKernel{
	{"Exp", Float32x8.Exp, math.Exp, -110, 100, 1},
	{"Exp2", Float32x8.Exp2, math.Exp2, -160, 140, 1},
	{"Expm1", Float32x8.Expm1, math.Expm1, -30, 100, 2},
	{"Log", Float32x8.Log, math.Log, minSubnormal, maxFloat32, 1},
	{"Log2", Float32x8.Log2, math.Log2, minSubnormal, maxFloat32, 1},
	{"Log10", Float32x8.Log10, math.Log10, minSubnormal, maxFloat32, 1},
	{"Log1p", Float32x8.Log1p, math.Log1p, -0.99999994, maxFloat32, 1},
	{"Sin", Float32x8.Sin, math.Sin, -trigReduceMax, trigReduceMax, 2},
	{"Cos", Float32x8.Cos, math.Cos, -trigReduceMax, trigReduceMax, 2},
	{"Tan", Float32x8.Tan, math.Tan, -trigReduceMax, trigReduceMax, 3},
	{"Asin", Float32x8.Asin, math.Asin, -1, 1, 2},
	{"Acos", Float32x8.Acos, math.Acos, -1, 1, 2},
	{"Atan", Float32x8.Atan, math.Atan, -maxFloat32, maxFloat32, 2},
	{"Sinh", Float32x8.Sinh, math.Sinh, -95, 95, 3},
	{"Cosh", Float32x8.Cosh, math.Cosh, -95, 95, 3},
	{"Tanh", Float32x8.Tanh, math.Tanh, -100, 100, 3},
	{"Asinh", Float32x8.Asinh, math.Asinh, -maxFloat32, maxFloat32, 2},
	{"Acosh", Float32x8.Acosh, math.Acosh, 1, maxFloat32, 3},
	{"Atanh", Float32x8.Atanh, math.Atanh, -1, 1, 2},
	{"Erfc", Float32x8.Erfc, math.Erfc, -12, 12, 4},
}

func TestUnaryKernelsAgainstFloat64(t *testing.T) {
	for _, k := range unaryKernels {
		t.Run(k.name, func(t *testing.T) {
			xs := sweep(k.lo, k.hi, sweepStride)
			var worst int64
			for off := 0; off < len(xs); off += Size {
				n := min(Size, len(xs)-off)
				var got [Size]float32
				k.fn(LoadUN(xs[off:], n)).StoreN(got[:], n)
				for i, x := range xs[off : off+n] {
					want := float32(k.ref(float64(x)))
					worst = max(worst, ulpDistance(got[i], want))
					if !checkULP(t, k.name, []float32{x}, got[i], want, k.bound) {
						return
					}
				}
			}
			t.Logf("%d inputs in [%g, %g], worst %d ulp", len(xs), k.lo, k.hi, worst)
		})
	}
}

func TestUnaryKernelsSpecialValues(t *testing.T) {
	nan := float32(math.NaN())
	negZero := float32(math.Copysign(0, -1))
	inf := float32(math.Inf(1))
	in := New(0, negZero, inf, -inf, nan, 0, negZero, nan)
	for _, k := range unaryKernels {
		got := lanesOf(k.fn(in))
		for i, x := range lanesOf(in) {
			want := float32(k.ref(float64(x)))
			if !sameBits(got[i], want) && !(isNaN32(got[i]) && isNaN32(want)) {
				t.Errorf("%s(%v) = %v, want %v", k.name, x, got[i], want)
			}
		}
	}
}

func TestDomainEdges(t *testing.T) {
	nan := float32(math.NaN())
	inf := float32(math.Inf(1))
	tests := []struct {
		name string
		got  Float32x8
		want [Size]float32
	}{
		{"Log", New(1, -1, -inf, 0, 2, 1, 1, 1).Log(), [Size]float32{0, nan, nan, -inf, float32(math.Ln2), 0, 0, 0}},
		{"Log1p", New(-1, -2, -inf, 0, 0, 0, 0, 0).Log1p(), [Size]float32{-inf, nan, nan, 0, 0, 0, 0, 0}},
		{"Asin", New(1, -1, 1.5, -2, 0, 0, 0, 0).Asin(), [Size]float32{math.Pi / 2, -math.Pi / 2, nan, nan, 0, 0, 0, 0}},
		{"Acos", New(1, -1, 1.5, -2, 0, 0, 0, 0).Acos(), [Size]float32{0, math.Pi, nan, nan, math.Pi / 2, math.Pi / 2, math.Pi / 2, math.Pi / 2}},
		{"Acosh", New(1, 0.5, -1, 0, 1, 1, 1, 1).Acosh(), [Size]float32{0, nan, nan, nan, 0, 0, 0, 0}},
		{"Atanh", New(1, -1, 2, -1.5, 0, 0, 0, 0).Atanh(), [Size]float32{inf, -inf, nan, nan, 0, 0, 0, 0}},
		{"Expm1", New(-inf, 200, 0, 0, 0, 0, 0, 0).Expm1(), [Size]float32{-1, inf, 0, 0, 0, 0, 0, 0}},
		{"Exp", New(-200, 200, 0, 0, 0, 0, 0, 0).Exp(), [Size]float32{0, inf, 1, 1, 1, 1, 1, 1}},
		{"Tanh", New(-inf, inf, 50, -50, 0, 0, 0, 0).Tanh(), [Size]float32{-1, 1, 1, -1, 0, 0, 0, 0}},
		{"Erfc", New(-inf, inf, 20, -20, 0, 0, 0, 0).Erfc(), [Size]float32{2, 0, 0, 2, 1, 1, 1, 1}},
	}
	for _, tt := range tests {
		for i, g := range lanesOf(tt.got) {
			if !sameBits(g, tt.want[i]) && !(isNaN32(g) && isNaN32(tt.want[i])) {
				t.Errorf("%s lane %d: got %v, want %v", tt.name, i, g, tt.want[i])
			}
		}
	}
}

func TestTrigLargeArguments(t *testing.T) {
	kernels := []struct {
		name string
		fn   func(Float32x8) Float32x8
		ref  func(float64) float64
	}{
		{"Sin", Float32x8.Sin, math.Sin},
		{"Cos", Float32x8.Cos, math.Cos},
		{"Tan", Float32x8.Tan, math.Tan},
	}
	xs := sweep(trigReduceMax, 1e30, 1<<16+1)
	for _, k := range kernels {
		for off := 0; off+Size <= len(xs); off += Size {
			got := lanesOf(k.fn(LoadU(xs[off:])))
			for i, x := range xs[off : off+Size] {
				want := float32(k.ref(float64(x)))
				if !checkULP(t, k.name, []float32{x}, got[i], want, 0) {
					break
				}
			}
		}

		// Only the out-of-range lanes take the float64 path.
		mixed := New(1, 1e6, -2, -7e4, 0.5, 1e20, 3, 65535)
		got := lanesOf(k.fn(mixed))
		for i, x := range lanesOf(mixed) {
			alone := lanesOf(k.fn(Broadcast(x)))[0]
			if !sameBits(got[i], alone) {
				t.Errorf("%s lane %d: %v in a mixed register, %v alone", k.name, i, got[i], alone)
			}
		}
	}
}

func forEachPair(t *testing.T, name string, xs, ys []float32, fn func(a, b Float32x8) Float32x8, ref func(a, b float64) float64, bound int64) {
	t.Helper()
	var worst int64
	for _, x := range xs {
		a := Broadcast(x)
		for off := 0; off < len(ys); off += Size {
			n := min(Size, len(ys)-off)
			var got [Size]float32
			fn(a, LoadUN(ys[off:], n)).StoreN(got[:], n)
			for i, y := range ys[off : off+n] {
				want := float32(ref(float64(x), float64(y)))
				worst = max(worst, ulpDistance(got[i], want))
				if !checkULP(t, name, []float32{x, y}, got[i], want, bound) {
					return
				}
			}
		}
	}
	t.Logf("%s: %d pairs, worst %d ulp", name, len(xs)*len(ys), worst)
}

func TestBinaryKernelsAgainstFloat64(t *testing.T) {
	all := sweep(-maxFloat32, maxFloat32, gridStride)
	t.Run("Atan2", func(t *testing.T) {
		forEachPair(t, "Atan2", all, all, Float32x8.Atan2, math.Atan2, 2)
	})
	t.Run("Hypot", func(t *testing.T) {
		forEachPair(t, "Hypot", all, all, Float32x8.Hypot, math.Hypot, 1)
	})
	t.Run("Pow", func(t *testing.T) {
		xs := sweep(minSubnormal, maxFloat32, gridStride/2)
		ys := sweep(-200, 200, gridStride/2)
		forEachPair(t, "Pow", xs, ys, Float32x8.Pow, math.Pow, 1)
	})
	t.Run("PowNegativeBase", func(t *testing.T) {
		xs := sweep(-1000, -1e-3, gridStride/4)
		ys := []float32{-7, -3, -2, -1, 2, 3, 4, 5, 11, 0.5, -2.5}
		forEachPair(t, "Pow", xs, ys, Float32x8.Pow, math.Pow, 1)
	})
}

func TestPowSpecialCases(t *testing.T) {
	nan := float32(math.NaN())
	inf := float32(math.Inf(1))
	negZero := float32(math.Copysign(0, -1))
	pairs := [][2]float32{
		{nan, 0}, {nan, negZero}, {1, nan}, {1, inf}, {2, 1}, {nan, 1}, {-3, 1},
		{nan, 2}, {2, nan},
		{0, -3}, {negZero, -3}, {negZero, -2}, {0, -inf}, {negZero, -inf}, {0, inf},
		{negZero, -0.5}, {negZero, 3}, {negZero, 2}, {0, 0.5}, {negZero, 0.5},
		{-1, inf}, {-1, -inf}, {2, inf}, {2, -inf}, {0.5, inf}, {0.5, -inf}, {-2, inf}, {-0.5, -inf},
		{inf, 2}, {inf, -2}, {inf, 0.5}, {-inf, 3}, {-inf, 2}, {-inf, -3}, {-inf, -2}, {-inf, 0.5},
		{-2, 0.5}, {-8, 1.0 / 3}, {-1, 0.5}, {-inf, -inf}, {-inf, inf},
		{-2, 3}, {-2, 2}, {-2, -3}, {2, 10}, {-1, 1 << 24}, {-1, 1<<24 + 2},
		{1e30, 2}, {1e-30, 2}, {1e-30, -2}, {3, 200},
	}
	for off := 0; off < len(pairs); off += Size {
		var xs, ys [Size]float32
		n := min(Size, len(pairs)-off)
		for i := range n {
			xs[i], ys[i] = pairs[off+i][0], pairs[off+i][1]
		}
		got := lanesOf(LoadU(xs[:]).Pow(LoadU(ys[:])))
		for i := range n {
			want := float32(math.Pow(float64(xs[i]), float64(ys[i])))
			if !sameBits(got[i], want) && !(isNaN32(got[i]) && isNaN32(want)) {
				t.Errorf("Pow(%v, %v) = %v, want %v", xs[i], ys[i], got[i], want)
			}
		}
	}
}

func TestAtan2Quadrants(t *testing.T) {
	nan := float32(math.NaN())
	inf := float32(math.Inf(1))
	negZero := float32(math.Copysign(0, -1))
	vals := []float32{0, negZero, 1, -1, inf, -inf, nan, 3e-39}
	for _, y := range vals {
		got := lanesOf(Broadcast(y).Atan2(LoadU(vals)))
		for i, x := range vals {
			want := float32(math.Atan2(float64(y), float64(x)))
			checkULP(t, "Atan2", []float32{y, x}, got[i], want, 2)
		}
	}
}

func TestHypotSpecialCases(t *testing.T) {
	nan := float32(math.NaN())
	inf := float32(math.Inf(1))
	negZero := float32(math.Copysign(0, -1))
	x := New(inf, nan, -inf, nan, 3, 0, negZero, 1e-45)
	y := New(nan, -inf, 1, 1, -4, negZero, negZero, 1e-45)
	got := lanesOf(x.Hypot(y))
	want := [Size]float32{inf, inf, inf, nan, 5, 0, 0, float32(math.Hypot(1e-45, 1e-45))}
	for i := range got {
		if !sameBits(got[i], want[i]) && !(isNaN32(got[i]) && isNaN32(want[i])) {
			t.Errorf("Hypot lane %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestExactCatalog(t *testing.T) {
	nan := float32(math.NaN())
	negZero := float32(math.Copysign(0, -1))
	v := New(5.5, -5.5, 7, 1, negZero, -3, 1e7, nan)
	o := New(2, 2, -3, -1, 5, negZero, 3, 1)
	lv, lo := lanesOf(v), lanesOf(o)

	mod := lanesOf(v.Fmod(o))
	cs := lanesOf(v.Copysign(o))
	next := lanesOf(v.Nextafter(o))
	for i := range lv {
		x, y := float64(lv[i]), float64(lo[i])
		if want := float32(math.Mod(x, y)); !sameBits(mod[i], want) && !(isNaN32(mod[i]) && isNaN32(want)) {
			t.Errorf("Fmod lane %d: got %v, want %v", i, mod[i], want)
		}
		if math.Signbit(float64(cs[i])) != math.Signbit(y) || math.Float32bits(cs[i])&^(1<<31) != math.Float32bits(lv[i])&^(1<<31) {
			t.Errorf("Copysign lane %d: got %v, want |%v| with the sign of %v", i, cs[i], lv[i], lo[i])
		}
		want := math.Nextafter32(lv[i], lo[i])
		if !sameBits(next[i], want) && !(isNaN32(next[i]) && isNaN32(want)) {
			t.Errorf("Nextafter lane %d: got %v, want %v", i, next[i], want)
		}
	}
}

func TestLgamma(t *testing.T) {
	v := New(0.5, 1.5, 3, 4.25, 10, 33.5, -0.5, -2.5)
	got := lanesOf(v.Lgamma())
	for i, x := range lanesOf(v) {
		lg, _ := math.Lgamma(float64(x))
		checkULP(t, "Lgamma", []float32{x}, got[i], float32(lg), 1)
	}
}

func TestSpecialFunctionsPerLane(t *testing.T) {
	v := New(-0.75, -0.1, 0.2, 0.5, 1, 2.5, 7, 30)
	a := New(0.5, 1, 1.5, 2, 3, 5, 10, 0.1)
	lv, la := lanesOf(v), lanesOf(a)

	erfinv := lanesOf(New(-0.9, -0.5, 0, 0.1, 0.3, 0.5, 0.75, 0.99).Erfinv())
	i0 := lanesOf(v.I0())
	i0e := lanesOf(v.I0e())
	dg := lanesOf(v.Digamma())
	ig := lanesOf(a.Igamma(v.Abs()))
	igc := lanesOf(a.Igammac(v.Abs()))
	lerf := [Size]float32{-0.9, -0.5, 0, 0.1, 0.3, 0.5, 0.75, 0.99}
	for i := 0; i < Size; i++ {
		if want := vmath.CalcErfinv(lerf[i]); !sameBits(erfinv[i], want) {
			t.Errorf("Erfinv lane %d: got %v, want %v", i, erfinv[i], want)
		}
		if want := vmath.CalcI0(lv[i]); !sameBits(i0[i], want) {
			t.Errorf("I0 lane %d: got %v, want %v", i, i0[i], want)
		}
		if want := vmath.CalcI0e(lv[i]); !sameBits(i0e[i], want) {
			t.Errorf("I0e lane %d: got %v, want %v", i, i0e[i], want)
		}
		if want := vmath.CalcDigamma(lv[i]); !sameBits(dg[i], want) {
			t.Errorf("Digamma lane %d: got %v, want %v", i, dg[i], want)
		}
		x := float32(math.Abs(float64(lv[i])))
		if want := vmath.CalcIgamma(la[i], x); !sameBits(ig[i], want) {
			t.Errorf("Igamma lane %d: got %v, want %v", i, ig[i], want)
		}
		if want := vmath.CalcIgammac(la[i], x); !sameBits(igc[i], want) {
			t.Errorf("Igammac lane %d: got %v, want %v", i, igc[i], want)
		}
	}
}

func TestExpU20(t *testing.T) {
	for x := float32(-86.9); x <= 87.7; x += 0.37 {
		v := Arange(x, 0.04)
		got := lanesOf(v.ExpU20())
		for i, xi := range lanesOf(v) {
			want := float32(math.Exp(float64(xi)))
			if e := relErr(got[i], want); e > 2e-6 {
				t.Fatalf("ExpU20(%v) = %v, want %v (rel %g)", xi, got[i], want, e)
			}
		}
	}
}

func TestExpU20Limits(t *testing.T) {
	lnMin := math.Float32frombits(0xc2aeac50)
	lnMax := math.Float32frombits(0x42b17218)
	inf := float32(math.Inf(1))
	v := New(-100, float32(math.Inf(-1)), lnMin-0.01, lnMin, -87, 0, lnMax, inf)
	got := lanesOf(v.ExpU20())

	// Below ln(FLT_MIN) the scale is forced to zero. Just above it,
	// 2^(n-1) has a zero exponent field and also flushes to zero.
	for i := 0; i < 5; i++ {
		if !sameBits(got[i], 0) {
			t.Errorf("lane %d: ExpU20(%v) = %v, want +0", i, lanesOf(v)[i], got[i])
		}
	}
	if got[5] != 1 {
		t.Errorf("ExpU20(0) = %v, want 1", got[5])
	}
	// The clamp to ln(FLT_MAX) gives n = 128, so the result is 2^128.
	if got[6] != inf || got[7] != inf {
		t.Errorf("ExpU20(ln(FLT_MAX)), ExpU20(+Inf) = %v, %v, want +Inf", got[6], got[7])
	}
	if nan := lanesOf(Broadcast(float32(math.NaN())).ExpU20())[0]; nan != inf {
		t.Errorf("ExpU20(NaN) = %v, want +Inf", nan)
	}
}

func TestErf(t *testing.T) {
	for x := float32(-5); x <= 5; x += 0.093 {
		v := Arange(x, 0.011)
		got := lanesOf(v.Erf())
		for i, xi := range lanesOf(v) {
			want := math.Erf(float64(xi))
			if d := math.Abs(float64(got[i]) - want); d > 2e-6 {
				t.Fatalf("Erf(%v) = %v, want %v (diff %g)", xi, got[i], want, d)
			}
		}
	}
}

func TestErfOddAndSaturates(t *testing.T) {
	v := New(0.25, 0.5, 1, 2, 3, 6, 10, 0)
	pos := lanesOf(v.Erf())
	neg := lanesOf(v.Neg().Erf())
	for i := range pos {
		if pos[i] != -neg[i] {
			t.Errorf("lane %d: erf(x)=%v, erf(-x)=%v", i, pos[i], neg[i])
		}
	}
	if pos[6] != 1 {
		t.Errorf("Erf(10) = %v, want 1", pos[6])
	}
	if math.Abs(float64(pos[7])) > 1e-6 {
		t.Errorf("Erf(0) = %v, want 0", pos[7])
	}
}

func TestAngle(t *testing.T) {
	nan := float32(math.NaN())
	negZero := float32(math.Copysign(0, -1))
	v := New(1, -1, 0, negZero, nan, float32(math.Inf(-1)), float32(math.Inf(1)), -1e-45)
	got := lanesOf(v.Angle())
	pi := float32(math.Pi)
	want := [Size]float32{0, pi, 0, 0, nan, pi, 0, pi}
	for i := range got {
		if isNaN32(want[i]) {
			if !isNaN32(got[i]) {
				t.Errorf("lane %d: got %v, want NaN", i, got[i])
			}
			continue
		}
		if got[i] != want[i] {
			t.Errorf("lane %d: got %v, want %v", i, got[i], want[i])
		}
	}
}
