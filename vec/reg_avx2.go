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

//go:build amd64 && goexperiment.simd

package vec

import "simd/archsimd"

// This file provides the wide tier's register operations on archsimd types.

// Register is the wide tier's lane register.
type Register = archsimd.Float32x8

var (
	avx2ZeroI    = archsimd.BroadcastInt32x8(0)
	avx2OnesI    = archsimd.BroadcastInt32x8(-1)
	avx2SignI    = archsimd.BroadcastInt32x8(int32(-0x80000000))
	avx2Bias     = archsimd.BroadcastInt32x8(127)
	avx2ExpMaskI = archsimd.BroadcastInt32x8(0xFF)
	avx2ZeroF    = archsimd.BroadcastFloat32x8(0)
	avx2AllOnes  = avx2OnesI.AsFloat32x8()
)

func regBroadcast(x float32) Register {
	return archsimd.BroadcastFloat32x8(x)
}

func regLoad(p *[Size]float32) Register {
	return archsimd.LoadFloat32x8Slice(p[:])
}

func regStore(r Register, p *[Size]float32) {
	r.StoreSlice(p[:])
}

func regAdd(a, b Register) Register { return a.Add(b) }
func regSub(a, b Register) Register { return a.Sub(b) }
func regMul(a, b Register) Register { return a.Mul(b) }
func regDiv(a, b Register) Register { return a.Div(b) }

// regMin keeps VMINPS operand order: a < b ? a : b.
func regMin(a, b Register) Register {
	// Merge semantics: x.Merge(y, m) returns x where m is true, y elsewhere.
	return a.Merge(b, a.Less(b))
}

// regMax keeps VMAXPS operand order: a > b ? a : b.
func regMax(a, b Register) Register {
	return a.Merge(b, a.Greater(b))
}

func regSqrt(a Register) Register      { return a.Sqrt() }
func regTrunc(a Register) Register     { return a.Trunc() }
func regFloor(a Register) Register     { return a.Floor() }
func regCeil(a Register) Register      { return a.Ceil() }
func regRoundEven(a Register) Register { return a.RoundToEven() }

func regNegate(a Register) Register {
	return a.AsInt32x8().Xor(avx2SignI).AsFloat32x8()
}

// regFMA computes a*b+c with VFMADD.
func regFMA(a, b, c Register) Register {
	return a.MulAdd(b, c)
}

// regFMS computes a*b-c. Negating c is exact, so this is still one rounding.
func regFMS(a, b, c Register) Register {
	return a.MulAdd(b, regNegate(c))
}

// regFNMA computes -(a*b)+c.
func regFNMA(a, b, c Register) Register {
	return regNegate(a).MulAdd(b, c)
}

func regAnd(a, b Register) Register {
	return a.AsInt32x8().And(b.AsInt32x8()).AsFloat32x8()
}

func regOr(a, b Register) Register {
	return a.AsInt32x8().Or(b.AsInt32x8()).AsFloat32x8()
}

func regXor(a, b Register) Register {
	return a.AsInt32x8().Xor(b.AsInt32x8()).AsFloat32x8()
}

// regAndNot is VANDNPS: ^a & b.
func regAndNot(a, b Register) Register {
	return a.AsInt32x8().Xor(avx2OnesI).And(b.AsInt32x8()).AsFloat32x8()
}

func maskToRegister(m archsimd.Mask32x8) Register {
	return avx2AllOnes.Merge(avx2ZeroF, m)
}

func regCmp(a, b Register, p cmpPredicate) Register {
	switch p {
	case cmpEqOQ:
		return maskToRegister(a.Equal(b))
	case cmpLtOQ:
		return maskToRegister(a.Less(b))
	case cmpLeOQ:
		return maskToRegister(a.LessEqual(b))
	case cmpGtOQ:
		return maskToRegister(a.Greater(b))
	case cmpGeOQ:
		return maskToRegister(a.GreaterEqual(b))
	case cmpNeqUQ:
		// Complement of ordered equality: true whenever either lane is NaN.
		return avx2ZeroF.Merge(avx2AllOnes, a.Equal(b))
	case cmpUnordQ:
		return maskToRegister(a.IsNaN().Or(b.IsNaN()))
	default:
		panic("vec: unknown comparison predicate")
	}
}

func regMoveMask(a Register) int {
	return int(a.AsInt32x8().Less(avx2ZeroI).ToBits())
}

func regBlend(a, b Register, imm uint8) Register {
	return b.Merge(a, archsimd.Mask32x8FromBits(imm))
}

func regBlendv(a, b, mask Register) Register {
	return b.Merge(a, mask.AsInt32x8().Less(avx2ZeroI))
}

func regPow2(n Register) Register {
	return n.RoundToEven().ConvertToInt32().Add(avx2Bias).ShiftAllLeft(23).AsFloat32x8()
}

// regExponent returns the biased exponent field of each lane as a float.
func regExponent(a Register) Register {
	return a.AsInt32x8().ShiftAllRight(23).And(avx2ExpMaskI).ConvertToFloat32()
}

// regUnpackLo is VUNPCKLPS: within each 128-bit half, the low two lanes of
// a and b interleaved.
func regUnpackLo(a, b Register) Register {
	return a.AsInt32x8().InterleaveLoGrouped(b.AsInt32x8()).AsFloat32x8()
}

// regUnpackHi is VUNPCKHPS.
func regUnpackHi(a, b Register) Register {
	return a.AsInt32x8().InterleaveHiGrouped(b.AsInt32x8()).AsFloat32x8()
}

// regShuffle is VSHUFPS: per 128-bit half, two lanes of a picked by the low
// selector pairs of imm followed by two lanes of b.
func regShuffle(a, b Register, imm uint8) Register {
	return a.SelectFromPairGrouped(imm&3, (imm>>2)&3, 4+(imm>>4)&3, 4+(imm>>6)&3, b)
}

func regHalf(a, b Register, sel uint8) archsimd.Float32x4 {
	switch sel & 3 {
	case 0:
		return a.GetLo()
	case 1:
		return a.GetHi()
	case 2:
		return b.GetLo()
	default:
		return b.GetHi()
	}
}

// regPermute2F128 is VPERM2F128: each nibble of imm picks a 128-bit half of
// a or b for the matching result half; bit 3 of the nibble zeroes it.
func regPermute2F128(a, b Register, imm uint8) Register {
	r := avx2ZeroF
	if imm&0x08 == 0 {
		r = r.SetLo(regHalf(a, b, imm))
	}
	if imm&0x80 == 0 {
		r = r.SetHi(regHalf(a, b, imm>>4))
	}
	return r
}
