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

// setMasks[c] selects b in lanes [0,c) for Set.
var setMasks = [Size]uint8{0x00, 0x01, 0x03, 0x07, 0x0F, 0x1F, 0x3F, 0x7F}

// Blend returns, for each lane i, b[i] if bit i of imm is set and a[i]
// otherwise.
func Blend(a, b Float32x8, imm uint8) Float32x8 {
	return Float32x8{r: regBlend(a.r, b.r, imm)}
}

// Blendv returns, for each lane i, b[i] if the sign bit of mask[i] is set
// and a[i] otherwise. Any comparison result can be used as mask.
func Blendv(a, b, mask Float32x8) Float32x8 {
	return Float32x8{r: regBlendv(a.r, b.r, mask.r)}
}

// Set returns b in lanes [0,count) and a in lanes [count,Size). A count of
// Size or more returns b; zero or a negative count returns a.
func Set(a, b Float32x8, count int) Float32x8 {
	switch {
	case count >= Size:
		return b
	case count <= 0:
		return a
	}
	return Blend(a, b, setMasks[count])
}
