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

package algo

import (
	"os"
	"runtime"
	"strconv"
	"sync"

	"github.com/ajroetker/go-vec256/vec"
	"github.com/ajroetker/go-vec256/vec/contrib/workerpool"
)

// NumThreadsEnv names the environment variable that sizes DefaultPool.
const NumThreadsEnv = "VEC_NUM_THREADS"

// minParallelLen is the input length below which the Parallel helpers run
// on the calling goroutine.
const minParallelLen = 1 << 14

var (
	defaultPoolOnce sync.Once
	defaultPool     *workerpool.Pool
)

// DefaultPool returns a process-wide pool created on first use. Its size is
// VEC_NUM_THREADS when that parses as a positive integer and GOMAXPROCS
// otherwise. The pool is never closed.
func DefaultPool() *workerpool.Pool {
	defaultPoolOnce.Do(func() {
		defaultPool = workerpool.New(NumThreadsFromEnv())
	})
	return defaultPool
}

// NumThreadsFromEnv returns the worker count requested by VEC_NUM_THREADS,
// or GOMAXPROCS if it is unset or not a positive integer.
func NumThreadsFromEnv() int {
	val := os.Getenv(NumThreadsEnv)
	if val == "" {
		return runtime.GOMAXPROCS(0)
	}
	if n, err := strconv.Atoi(val); err == nil && n > 0 {
		return n
	}
	return runtime.GOMAXPROCS(0)
}

// ParallelTransform is Transform with the input split across pool in chunks
// that are multiples of vec.Size. Short inputs run inline. A nil pool uses
// DefaultPool.
func ParallelTransform(pool *workerpool.Pool, dst, src []float32, fn func(vec.Float32x8) vec.Float32x8) {
	if len(dst) < len(src) {
		panic("algo: dst slice too short")
	}
	if len(src) < minParallelLen {
		Transform(dst, src, fn)
		return
	}
	if pool == nil {
		pool = DefaultPool()
	}
	pool.ParallelForAligned(len(src), vec.Size, func(start, end int) {
		Transform(dst[start:end], src[start:end], fn)
	})
}

// ParallelTransform2 is the binary form of ParallelTransform.
func ParallelTransform2(pool *workerpool.Pool, dst, a, b []float32, fn func(x, y vec.Float32x8) vec.Float32x8) {
	if len(a) != len(b) {
		panic("algo: input slices differ in length")
	}
	if len(dst) < len(a) {
		panic("algo: dst slice too short")
	}
	if len(a) < minParallelLen {
		Transform2(dst, a, b, fn)
		return
	}
	if pool == nil {
		pool = DefaultPool()
	}
	pool.ParallelForAligned(len(a), vec.Size, func(start, end int) {
		Transform2(dst[start:end], a[start:end], b[start:end], fn)
	})
}
