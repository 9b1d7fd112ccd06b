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

package main

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-vec256/vec"
	"github.com/ajroetker/go-vec256/vec/contrib/algo"
	"github.com/ajroetker/go-vec256/vec/contrib/workerpool"
)

const (
	defaultSamples = 1 << 20

	// sampleStride is odd, so i*sampleStride visits distinct patterns mod 2^32.
	sampleStride = 0x9E3779B1

	// Exhaustive scans split the 2^32 patterns into blocks indexed by the
	// high 16 bits.
	blockBits  = 16
	numBlocks  = 1 << (32 - blockBits)
	blockBatch = 4
)

// boundaryPatterns are always checked: zeros, subnormals, the largest
// finite values, infinities and NaNs of both signs.
var boundaryPatterns = []uint32{
	0x00000000, 0x80000000, 0x00000001, 0x807FFFFF, 0x00800000,
	0x7F7FFFFF, 0xFF7FFFFF, 0x7F800000, 0xFF800000,
	0x7F800001, 0x7FC00000, 0xFFC00000, 0x7FFFFFFF, 0xFFFFFFFF,
	0x3F800000, 0x4B000000, 0x7F000000, 0x3F800080, 0x00008000,
}

// isInfOrNaN is the scalar reference: the exponent field is all ones.
func isInfOrNaN(bits uint32) bool {
	return bits&0x7F800000 == 0x7F800000
}

// checkPattern places bits in lane bits&7 of an otherwise zero vector and
// reports whether HasInfNaN agrees with the scalar reference.
func checkPattern(bits uint32) bool {
	var lanes [vec.Size]float32
	lanes[bits&(vec.Size-1)] = math.Float32frombits(bits)
	return vec.LoadU(lanes[:]).HasInfNaN() == isInfOrNaN(bits)
}

// scanResult accumulates mismatches across workers.
type scanResult struct {
	mu         sync.Mutex
	checked    uint64
	mismatches uint64
	first      uint32
}

func (r *scanResult) add(checked, mismatches uint64, first uint32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checked += checked
	if mismatches > 0 && (r.mismatches == 0 || first < r.first) {
		r.first = first
	}
	r.mismatches += mismatches
}

func (r *scanResult) checkAll(patterns func(yield func(uint32))) {
	var checked, mismatches uint64
	var first uint32
	patterns(func(bits uint32) {
		checked++
		if !checkPattern(bits) {
			if mismatches == 0 || bits < first {
				first = bits
			}
			mismatches++
		}
	})
	r.add(checked, mismatches, first)
}

// scanExhaustive checks every float32 bit pattern.
func scanExhaustive(pool *workerpool.Pool) *scanResult {
	res := &scanResult{}
	pool.ParallelForAtomicBatched(numBlocks, blockBatch, func(start, end int) {
		res.checkAll(func(yield func(uint32)) {
			for hi := start; hi < end; hi++ {
				base := uint32(hi) << blockBits
				for lo := uint32(0); lo < 1<<blockBits; lo++ {
					yield(base | lo)
				}
			}
		})
	})
	return res
}

// scanSampled checks the boundary patterns and n patterns spread across the
// whole 32-bit space.
func scanSampled(pool *workerpool.Pool, n int) *scanResult {
	res := &scanResult{}
	res.checkAll(func(yield func(uint32)) {
		for _, bits := range boundaryPatterns {
			yield(bits)
		}
	})
	pool.ParallelForAligned(n, 1<<12, func(start, end int) {
		res.checkAll(func(yield func(uint32)) {
			for i := start; i < end; i++ {
				yield(uint32(i) * sampleStride)
			}
		})
	})
	return res
}

func runSelftest(cmd *cobra.Command, args []string) error {
	exhaustive, _ := cmd.Flags().GetBool("exhaustive")
	samples, _ := cmd.Flags().GetInt("samples")
	threads, _ := cmd.Flags().GetInt("threads")
	if samples < 0 {
		return fmt.Errorf("--samples must be >= 0, got %d", samples)
	}
	if threads <= 0 {
		threads = algo.NumThreadsFromEnv()
	}

	pool := workerpool.New(threads)
	defer pool.Close()

	w := cmd.OutOrStdout()
	mode := "sampled"
	begin := time.Now()
	var res *scanResult
	if exhaustive {
		mode = "exhaustive"
		res = scanExhaustive(pool)
	} else {
		res = scanSampled(pool, samples)
	}
	fmt.Fprintf(w, "HasInfNaN %s scan (%s tier, %d workers): %d patterns, %d mismatches in %v\n",
		mode, vec.CurrentTier(), pool.NumWorkers(), res.checked, res.mismatches, time.Since(begin).Round(time.Millisecond))
	if res.mismatches > 0 {
		return fmt.Errorf("HasInfNaN disagrees with the exponent check on %d patterns, first 0x%08X", res.mismatches, res.first)
	}
	return nil
}
