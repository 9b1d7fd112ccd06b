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

// Lanes is the number of values in a Block.
const Lanes = 8

// Block is one register's worth of float32 values.
type Block = [Lanes]float32

func unary(x *Block, f func(float64) float64) Block {
	var r Block
	for i, v := range x {
		r[i] = float32(f(float64(v)))
	}
	return r
}

func binary32(x, y *Block, f func(a, b float32) float32) Block {
	var r Block
	for i := range x {
		r[i] = f(x[i], y[i])
	}
	return r
}

// Lgamma returns log|Gamma(x)|.
func Lgamma(x *Block) Block {
	return unary(x, func(v float64) float64 {
		lg, _ := math.Lgamma(v)
		return lg
	})
}

// Fmod returns the remainder of x/y with the sign of x. The result is exact.
func Fmod(x, y *Block) Block { return binary32(x, y, math32.Mod) }

// Nextafter returns the next representable float32 after x toward y.
func Nextafter(x, y *Block) Block { return binary32(x, y, math32.Nextafter) }
