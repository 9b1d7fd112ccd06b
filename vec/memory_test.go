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
)

const sentinel = float32(-12345)

func TestLoadUNZeroFill(t *testing.T) {
	src := []float32{1, 2, 3, 4, 5, 6, 7, 8}
	for count := 0; count <= Size; count++ {
		// Passing a slice of exactly count elements panics on any read
		// past it.
		got := lanesOf(LoadUN(src[:count:count], count))
		for i := range got {
			want := float32(0)
			if i < count {
				want = src[i]
			}
			if !sameBits(got[i], want) {
				t.Errorf("count %d lane %d: got %v, want %v", count, i, got[i], want)
			}
		}
	}
}

func TestStoreNLeavesTail(t *testing.T) {
	v := New(1, 2, 3, 4, 5, 6, 7, 8)
	for count := 0; count <= Size; count++ {
		buf := make([]float32, Size+2)
		for i := range buf {
			buf[i] = sentinel
		}
		v.StoreN(buf, count)
		for i, x := range buf {
			want := sentinel
			if i < count {
				want = float32(i + 1)
			}
			if x != want {
				t.Errorf("count %d index %d: got %v, want %v", count, i, x, want)
			}
		}
	}
}

func TestLoadStoreRoundTrip(t *testing.T) {
	src := []float32{float32(math.Copysign(0, -1)), 1.5, float32(math.Inf(1)), 3, float32(math.NaN()), 1e-40, -7, 9}
	for count := 0; count <= Size; count++ {
		buf := make([]float32, Size)
		for i := range buf {
			buf[i] = sentinel
		}
		LoadUN(src, count).StoreN(buf, count)
		for i := range buf {
			if i < count {
				if !sameBits(buf[i], src[i]) {
					t.Errorf("count %d index %d: got %v, want %v", count, i, buf[i], src[i])
				}
			} else if buf[i] != sentinel {
				t.Errorf("count %d index %d: overwritten with %v", count, i, buf[i])
			}
		}
	}
}

func TestLoadUOffset(t *testing.T) {
	data := make([]float32, 20)
	for i := range data {
		data[i] = float32(i)
	}
	got := lanesOf(LoadU(data[5:]))
	for i, x := range got {
		if x != float32(5+i) {
			t.Errorf("lane %d: got %v, want %d", i, x, 5+i)
		}
	}
}

func TestLoadUShortPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("LoadU on a 7-element slice did not panic")
		}
	}()
	LoadU(make([]float32, Size-1))
}
