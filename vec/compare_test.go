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
	"os"
	"testing"
)

func TestComparisonsNaN(t *testing.T) {
	nan := float32(math.NaN())
	a := New(1, 2, 3, nan, 5, nan, float32(math.Copysign(0, -1)), 8)
	b := New(1, 3, 2, 4, nan, nan, 0, 8)
	la, lb := lanesOf(a), lanesOf(b)

	tests := []struct {
		name string
		mask Float32x8
		num  Float32x8
		ref  func(x, y float32) bool
	}{
		{"Eq", a.Eq(b), a.EqF(b), func(x, y float32) bool { return x == y }},
		{"Ne", a.Ne(b), a.NeF(b), func(x, y float32) bool { return x != y }},
		{"Lt", a.Lt(b), a.LtF(b), func(x, y float32) bool { return x < y }},
		{"Le", a.Le(b), a.LeF(b), func(x, y float32) bool { return x <= y }},
		{"Gt", a.Gt(b), a.GtF(b), func(x, y float32) bool { return x > y }},
		{"Ge", a.Ge(b), a.GeF(b), func(x, y float32) bool { return x >= y }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mask, num := lanesOf(tt.mask), lanesOf(tt.num)
			for i := range mask {
				wantBits, wantNum := uint32(0), float32(0)
				if tt.ref(la[i], lb[i]) {
					wantBits, wantNum = 0xFFFFFFFF, 1
				}
				if got := math.Float32bits(mask[i]); got != wantBits {
					t.Errorf("lane %d (%v, %v): mask %#x, want %#x", i, la[i], lb[i], got, wantBits)
				}
				if num[i] != wantNum {
					t.Errorf("lane %d (%v, %v): numeric %v, want %v", i, la[i], lb[i], num[i], wantNum)
				}
			}
		})
	}
}

func TestMaskCombination(t *testing.T) {
	v := Arange(0, 1)
	inRange := v.Ge(Broadcast(2)).And(v.Lt(Broadcast(6)))
	if got := inRange.MoveMask(); got != 0x3C {
		t.Errorf("MoveMask = %#x, want 0x3c", got)
	}
	if got := inRange.Or(v.Eq(Broadcast(7))).MoveMask(); got != 0xBC {
		t.Errorf("MoveMask = %#x, want 0xbc", got)
	}
	if got := inRange.Xor(v.Lt(Broadcast(4))).MoveMask(); got != 0x33 {
		t.Errorf("MoveMask = %#x, want 0x33", got)
	}
}

func TestZeroMask(t *testing.T) {
	nan := float32(math.NaN())
	v := New(0, 1, float32(math.Copysign(0, -1)), nan, 1e-45, 0, -1, 0)
	if got, want := v.ZeroMask(), 0b10100101; got != want {
		t.Errorf("ZeroMask = %#b, want %#b", got, want)
	}
}

func TestIsNaN(t *testing.T) {
	nan := float32(math.NaN())
	inf := float32(math.Inf(1))
	v := New(nan, 0, inf, -inf, math.Float32frombits(0xFFC00001), 1, math.Float32frombits(0x7F800001), float32(math.Copysign(0, -1)))
	want := 0b01010001
	if got := v.IsNaN().MoveMask(); got != want {
		t.Errorf("IsNaN mask = %#b, want %#b", got, want)
	}
}

func TestHasInfNaN(t *testing.T) {
	tests := []struct {
		name string
		v    Float32x8
		want bool
	}{
		{"finite", New(1, -2, 3e38, -3e38, 1e-45, 0, float32(math.Copysign(0, -1)), 42), false},
		{"zero", Zero(), false},
		{"+inf last lane", New(0, 0, 0, 0, 0, 0, 0, float32(math.Inf(1))), true},
		{"-inf first lane", New(float32(math.Inf(-1)), 0, 0, 0, 0, 0, 0, 0), true},
		{"nan middle", New(0, 0, 0, float32(math.NaN()), 0, 0, 0, 0), true},
		{"max float", Broadcast(math.MaxFloat32), false},
		{"smallest subnormal", Broadcast(math.SmallestNonzeroFloat32), false},
	}
	for _, tt := range tests {
		if got := tt.v.HasInfNaN(); got != tt.want {
			t.Errorf("%s: HasInfNaN = %v, want %v", tt.name, got, tt.want)
		}
	}
}

// hasInfNaNRef is the scalar definition HasInfNaN must agree with.
func hasInfNaNRef(bits uint32) bool {
	return bits&0x7F800000 == 0x7F800000
}

// TestHasInfNaNPerLaneSampled checks every sign and exponent combination
// against a spread of mantissas, in every lane position.
func TestHasInfNaNPerLaneSampled(t *testing.T) {
	mantissas := []uint32{0, 1, 2, 0x7F, 0x80, 0xFF, 0x100, 0x7FFF, 0x8000, 0x3FFFFF, 0x400000, 0x400001, 0x7FFFFE, 0x7FFFFF}
	for sign := uint32(0); sign < 2; sign++ {
		for exp := uint32(0); exp < 256; exp++ {
			for _, m := range mantissas {
				bits := sign<<31 | exp<<23 | m
				want := hasInfNaNRef(bits)
				var lanes [Size]float32
				for lane := 0; lane < Size; lane++ {
					lanes = [Size]float32{}
					lanes[lane] = math.Float32frombits(bits)
					if got := LoadU(lanes[:]).HasInfNaN(); got != want {
						t.Fatalf("bits %#08x in lane %d: HasInfNaN = %v, want %v", bits, lane, got, want)
					}
				}
			}
		}
	}
}

// TestHasInfNaNExhaustive scans all 2^32 bit patterns. It takes minutes, so
// it only runs when VEC_EXHAUSTIVE is set.
func TestHasInfNaNExhaustive(t *testing.T) {
	if testing.Short() || os.Getenv("VEC_EXHAUSTIVE") == "" {
		t.Skip("set VEC_EXHAUSTIVE=1 to scan all bit patterns")
	}
	for bits := uint64(0); bits <= math.MaxUint32; bits++ {
		b := uint32(bits)
		if got := Broadcast(math.Float32frombits(b)).HasInfNaN(); got != hasInfNaNRef(b) {
			t.Fatalf("bits %#08x: HasInfNaN = %v", b, got)
		}
	}
}
