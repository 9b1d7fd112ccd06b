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

// Package transpose provides float32 matrix transposition built on 8x8
// register tiles.
//
// The 8x8 kernel loads up to eight rows into lane registers and transposes
// them with three rounds of shuffles: 32-bit unpacks within 128-bit halves,
// 64-bit shuffles, then 128-bit half permutes. Partial tiles load and store
// through vec.LoadUN and vec.StoreN, so they never touch memory outside the
// M x N block.
//
// Matrices are row-major with explicit leading dimensions: element (i, j) of
// src is src[i*ldSrc+j] and lands at dst[j*ldDst+i].
package transpose

import (
	"github.com/ajroetker/go-vec256/vec"
	"github.com/ajroetker/go-vec256/vec/contrib/workerpool"
)

// Tile is the edge length of the register tile.
const Tile = vec.Size

// MxN8x8 transposes the m x n block at src into the n x m block at dst.
// It panics unless 0 <= m, n <= 8.
//
// Rows of src are loaded whole when n == 8 and zero-filled past n otherwise;
// rows of dst are stored whole when m == 8 and only m elements otherwise.
func MxN8x8(src []float32, ldSrc int, dst []float32, ldDst int, m, n int) {
	if m > Tile || n > Tile || m < 0 || n < 0 {
		panic("transpose: expects M, N <= 8")
	}
	if m == 0 || n == 0 {
		return
	}

	var in [Tile]vec.Float32x8
	for i := 0; i < m; i++ {
		row := src[i*ldSrc:]
		if n == Tile {
			in[i] = vec.LoadU(row)
		} else {
			in[i] = vec.LoadUN(row, n)
		}
	}
	// Rows m..7 stay zero.

	// Interleave 32-bit elements of row pairs.
	var tmp [Tile]vec.Float32x8
	for i := 0; i < (m+1)/2; i++ {
		tmp[2*i] = vec.UnpackLo(in[2*i], in[2*i+1])
		tmp[2*i+1] = vec.UnpackHi(in[2*i], in[2*i+1])
	}
	for i := (m + 1) / 2 * 2; i < Tile; i++ {
		tmp[i] = vec.Zero()
	}

	// Interleave 64-bit pairs within each group of four.
	for g := 0; g < (m+3)/4; g++ {
		b := 4 * g
		in[b] = vec.Shuffle(tmp[b], tmp[b+2], 0x44)
		in[b+1] = vec.Shuffle(tmp[b], tmp[b+2], 0xee)
		in[b+2] = vec.Shuffle(tmp[b+1], tmp[b+3], 0x44)
		in[b+3] = vec.Shuffle(tmp[b+1], tmp[b+3], 0xee)
	}

	// Swap 128-bit halves between the two groups. Only the n output rows
	// are needed.
	for i := 0; i < n; i++ {
		if i < 4 {
			tmp[i] = vec.Permute2F128(in[4+i], in[i], 0x02)
		} else {
			tmp[i] = vec.Permute2F128(in[i], in[i-4], 0x13)
		}
	}

	for i := 0; i < n; i++ {
		row := dst[i*ldDst:]
		if m == Tile {
			tmp[i].Store(row)
		} else {
			tmp[i].StoreN(row, m)
		}
	}
}

// MxN transposes the m x n matrix at src into the n x m matrix at dst. It
// walks 8x8 tiles in row-major order, then the right remainder column, the
// bottom remainder row and the corner.
func MxN(src []float32, ldSrc int, dst []float32, ldDst int, m, n int) {
	fullM := m / Tile * Tile
	fullN := n / Tile * Tile

	i := 0
	for ; i < fullM; i += Tile {
		j := 0
		for ; j < fullN; j += Tile {
			MxN8x8(src[i*ldSrc+j:], ldSrc, dst[j*ldDst+i:], ldDst, Tile, Tile)
		}
		if rem := n - j; rem > 0 {
			MxN8x8(src[i*ldSrc+j:], ldSrc, dst[j*ldDst+i:], ldDst, Tile, rem)
		}
	}

	mrem := m - i
	if mrem <= 0 {
		return
	}
	j := 0
	for ; j < fullN; j += Tile {
		MxN8x8(src[i*ldSrc+j:], ldSrc, dst[j*ldDst+i:], ldDst, mrem, Tile)
	}
	if rem := n - j; rem > 0 {
		MxN8x8(src[i*ldSrc+j:], ldSrc, dst[j*ldDst+i:], ldDst, mrem, rem)
	}
}

// ParallelMxN is MxN with bands of tile rows spread over pool. Bands start on
// multiples of Tile, so every band sees the same tiling MxN would and writes
// a disjoint set of dst columns. The result is identical to MxN.
func ParallelMxN(pool *workerpool.Pool, src []float32, ldSrc int, dst []float32, ldDst int, m, n int) {
	if m <= 0 || n <= 0 {
		return
	}
	pool.ParallelForAligned(m, Tile, func(start, end int) {
		MxN(src[start*ldSrc:], ldSrc, dst[start:], ldDst, end-start, n)
	})
}
