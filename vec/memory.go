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

// LoadU loads Size elements from src. No alignment is required. It panics if
// len(src) < Size.
func LoadU(src []float32) Float32x8 {
	return Float32x8{r: regLoad((*[Size]float32)(src))}
}

// LoadUN loads the first count elements of src into lanes [0,count) and sets
// the remaining lanes to exactly zero. Elements at src[count:] are never
// read, so src may be a tail shorter than Size.
//
// count must be in [0,Size].
func LoadUN(src []float32, count int) Float32x8 {
	if count == Size {
		return LoadU(src)
	}
	var tmp [Size]float32
	copy(tmp[:count], src[:count])
	return Float32x8{r: regLoad(&tmp)}
}

// Store writes all Size lanes to dst. It panics if len(dst) < Size.
func (v Float32x8) Store(dst []float32) {
	regStore(v.r, (*[Size]float32)(dst))
}

// StoreN writes lanes [0,count) to dst[:count]. dst[count:] is never
// written. A count of zero writes nothing.
//
// count must be in [0,Size].
func (v Float32x8) StoreN(dst []float32, count int) {
	switch {
	case count == Size:
		v.Store(dst)
	case count > 0:
		var tmp [Size]float32
		regStore(v.r, &tmp)
		copy(dst[:count], tmp[:count])
	}
}
