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
	// e^x overflows float32 past 88.72; above hypBig the result is built
	// from e^(x/2) squared instead.
	hypBig    = regBroadcast(88)
	tanhSat   = regBroadcast(20)
	invHypBig = regBroadcast(4096)
)

// regExpHalfSquared returns e^a / 2 as (e^(a/2) / 2) * e^(a/2), which is
// cosh(a) and |sinh(a)| once e^-a is negligible.
func regExpHalfSquared(a Register) Register {
	h := regExp(regMul(halfF.r, a))
	return regMul(regMul(halfF.r, h), h)
}

func regSinh(x Register) Register {
	a := regAbs(x)
	em := regExpm1(regMin(a, expHi))
	r := regMul(halfF.r, regAdd(em, regDiv(em, regAdd(em, oneF.r))))
	r = regBlendv(r, regExpHalfSquared(a), regCmp(a, hypBig, cmpGtOQ))
	r = regCopysign(r, x)
	return regBlendv(r, x, regIsNaN(x))
}

func regCosh(x Register) Register {
	a := regAbs(x)
	e := regExp(regMin(a, expHi))
	r := regFMA(halfF.r, e, regDiv(halfF.r, e))
	r = regBlendv(r, regExpHalfSquared(a), regCmp(a, hypBig, cmpGtOQ))
	return regBlendv(r, x, regIsNaN(x))
}

func regTanh(x Register) Register {
	a := regAbs(x)
	em := regExpm1(regMul(twoF.r, regMin(a, tanhSat)))
	r := regDiv(em, regAdd(em, twoF.r))
	r = regCopysign(r, x)
	return regBlendv(r, x, regIsNaN(x))
}

func regAsinh(x Register) Register {
	a := regAbs(x)
	a2 := regMul(a, a)
	t := regAdd(a, regDiv(a2, regAdd(oneF.r, regSqrt(regAdd(oneF.r, a2)))))
	r := regLog1p(t)
	// asinh(a) = log(2a) once 1/a² is below half an ULP.
	r = regBlendv(r, regLogScaled(a, oneF.r), regCmp(a, invHypBig, cmpGtOQ))
	r = regCopysign(r, x)
	return regBlendv(r, x, regIsNaN(x))
}

func regAcosh(x Register) Register {
	t := regSub(x, oneF.r)
	r := regLog1p(regAdd(t, regSqrt(regFMA(t, t, regMul(twoF.r, t)))))
	r = regBlendv(r, regLogScaled(x, oneF.r), regCmp(x, invHypBig, cmpGtOQ))
	r = regBlendv(r, nanF.r, regCmp(x, oneF.r, cmpLtOQ))
	return regBlendv(r, x, regIsNaN(x))
}

// regAtanh is log1p(2a / (1-a)) / 2, with the argument rewritten as
// 2a + 2a²/(1-a) below one half to keep the small terms exact.
func regAtanh(x Register) Register {
	a := regAbs(x)
	u := regSub(oneF.r, a)
	twoA := regMul(twoF.r, a)
	near := regAdd(twoA, regDiv(regMul(twoA, a), u))
	far := regDiv(regAdd(a, a), u)
	arg := regBlendv(far, near, regCmp(a, halfF.r, cmpLtOQ))
	r := regMul(halfF.r, regLog1p(arg))
	r = regCopysign(r, x)
	return regBlendv(r, x, regIsNaN(x))
}

// Sinh returns the hyperbolic sine.
func (v Float32x8) Sinh() Float32x8 { return Float32x8{r: regSinh(v.r)} }

// Cosh returns the hyperbolic cosine.
func (v Float32x8) Cosh() Float32x8 { return Float32x8{r: regCosh(v.r)} }

// Tanh returns the hyperbolic tangent.
func (v Float32x8) Tanh() Float32x8 { return Float32x8{r: regTanh(v.r)} }

// Asinh returns the inverse hyperbolic sine.
func (v Float32x8) Asinh() Float32x8 { return Float32x8{r: regAsinh(v.r)} }

// Acosh returns the inverse hyperbolic cosine; NaN for v < 1.
func (v Float32x8) Acosh() Float32x8 { return Float32x8{r: regAcosh(v.r)} }

// Atanh returns the inverse hyperbolic tangent: ±Inf at ±1 and NaN outside
// [-1, 1].
func (v Float32x8) Atanh() Float32x8 { return Float32x8{r: regAtanh(v.r)} }
