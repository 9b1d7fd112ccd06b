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

//go:build onednn

package opaque

import (
	"fmt"
	"unsafe"
)

const backendEnabled = true

func dataPtr(t *Tensor) (unsafe.Pointer, error) {
	if t == nil {
		return nil, fmt.Errorf("nil tensor: %w", ErrInvalidTensor)
	}
	if t.DataPtr == nil {
		return nil, fmt.Errorf("tensor has no storage: %w", ErrInvalidTensor)
	}
	return t.DataPtr, nil
}

func fromDataPtr(ptr unsafe.Pointer, dims []int64, dtype DType, device Device, metadata []byte) (*Tensor, error) {
	if ptr == nil {
		return nil, fmt.Errorf("nil data pointer: %w", ErrInvalidTensor)
	}
	if dtype.Size() == 0 {
		return nil, fmt.Errorf("unsupported dtype %v: %w", dtype, ErrInvalidTensor)
	}
	for i, d := range dims {
		if d < 0 {
			return nil, fmt.Errorf("negative size %d in dim %d: %w", d, i, ErrInvalidTensor)
		}
	}
	t := &Tensor{
		DataPtr: ptr,
		Dims:    append([]int64(nil), dims...),
		DType:   dtype,
		Device:  device,
	}
	if len(metadata) > 0 {
		t.Metadata = append([]byte(nil), metadata...)
	}
	return t, nil
}
