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

// Size is the number of float32 lanes in a Float32x8. It is the same for
// every capability tier.
const Size = 8

// Number is a constraint for the numeric types accepted as an Arange step.
type Number interface {
	~float32 | ~float64 |
		~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Float32x8 is a vector of Size float32 lanes held in one tier register.
//
// Float32x8 values are plain values: copying one copies the register. The
// zero value has all lanes set to +0.
type Float32x8 struct {
	r Register
}

// Size returns the number of lanes, always Size.
func (Float32x8) Size() int {
	return Size
}

// Register returns the underlying tier register.
func (v Float32x8) Register() Register {
	return v.r
}

// FromRegister wraps a tier register without copying through memory.
func FromRegister(r Register) Float32x8 {
	return Float32x8{r: r}
}

// Broadcast returns a vector with every lane set to x.
func Broadcast(x float32) Float32x8 {
	return Float32x8{r: regBroadcast(x)}
}

// Zero returns a vector with every lane set to +0.
func Zero() Float32x8 {
	return Float32x8{r: regBroadcast(0)}
}

// New returns a vector holding e0..e7, e0 in lane 0.
func New(e0, e1, e2, e3, e4, e5, e6, e7 float32) Float32x8 {
	lanes := [Size]float32{e0, e1, e2, e3, e4, e5, e6, e7}
	return Float32x8{r: regLoad(&lanes)}
}

// Arange returns base + i*step in lane i.
//
// step is converted to float32 before the multiply, matching how kernels
// build index vectors from integer strides.
func Arange[S Number](base float32, step S) Float32x8 {
	s := float32(step)
	var lanes [Size]float32
	for i := range lanes {
		lanes[i] = base + float32(i)*s
	}
	return Float32x8{r: regLoad(&lanes)}
}
