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

// Map applies f to each lane and returns the results.
//
// Map goes through memory and calls f once per lane, which breaks the
// register pipeline. Use it for functions with no vector formulation.
func (v Float32x8) Map(f func(float32) float32) Float32x8 {
	var lanes [Size]float32
	regStore(v.r, &lanes)
	for i, x := range lanes {
		lanes[i] = f(x)
	}
	return Float32x8{r: regLoad(&lanes)}
}

// Map2 applies f to each pair of lanes (v[i], o[i]).
func (v Float32x8) Map2(o Float32x8, f func(a, b float32) float32) Float32x8 {
	var la, lb [Size]float32
	regStore(v.r, &la)
	regStore(o.r, &lb)
	for i := range la {
		la[i] = f(la[i], lb[i])
	}
	return Float32x8{r: regLoad(&la)}
}
