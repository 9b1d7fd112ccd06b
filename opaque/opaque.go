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

// Package opaque exchanges tensors held in an externally managed ("opaque")
// memory layout with lane kernels.
//
// It exposes two operations: reading the raw data pointer of an opaque
// tensor, and wrapping caller-owned memory as an opaque tensor view. Both
// depend on the oneDNN backend, which is compiled in only with the onednn
// build tag:
//
//	go build -tags onednn ./...
//
// Without the tag both operations fail with an error wrapping
// ErrBackendDisabled. Enabled reports which build is running.
package opaque

import (
	"errors"
	"fmt"
	"unsafe"
)

// ErrBackendDisabled is returned by every operation when the binary was
// built without the onednn tag.
var ErrBackendDisabled = errors.New("oneDNN build is disabled")

// ErrInvalidTensor is returned for nil tensors, nil data pointers and
// malformed shapes.
var ErrInvalidTensor = errors.New("opaque: invalid tensor")

// DType is the element type of a tensor.
type DType int

const (
	// Float32 is IEEE 754 binary32, the only type the vec kernels read.
	Float32 DType = iota
	// Float64 is IEEE 754 binary64.
	Float64
	// BFloat16 is the upper half of a binary32.
	BFloat16
	// Float16 is IEEE 754 binary16.
	Float16
	// Int32 is a signed 32-bit integer.
	Int32
	// Int8 is a signed 8-bit integer.
	Int8
	// UInt8 is an unsigned 8-bit integer.
	UInt8
)

var dtypeSizes = [...]int{
	Float32:  4,
	Float64:  8,
	BFloat16: 2,
	Float16:  2,
	Int32:    4,
	Int8:     1,
	UInt8:    1,
}

var dtypeNames = [...]string{
	Float32:  "float32",
	Float64:  "float64",
	BFloat16: "bfloat16",
	Float16:  "float16",
	Int32:    "int32",
	Int8:     "int8",
	UInt8:    "uint8",
}

// Size returns the element size in bytes, or 0 for an unknown type.
func (d DType) Size() int {
	if d < 0 || int(d) >= len(dtypeSizes) {
		return 0
	}
	return dtypeSizes[d]
}

func (d DType) String() string {
	if d < 0 || int(d) >= len(dtypeNames) {
		return fmt.Sprintf("DType(%d)", int(d))
	}
	return dtypeNames[d]
}

// DeviceType identifies the memory a tensor lives in.
type DeviceType int

const (
	// CPU is host memory.
	CPU DeviceType = iota
	// XPU is accelerator memory; its data pointer is not addressable from Go.
	XPU
)

// Device is a device type plus an ordinal.
type Device struct {
	Type  DeviceType
	Index int
}

func (d Device) String() string {
	switch d.Type {
	case CPU:
		return "cpu"
	case XPU:
		return fmt.Sprintf("xpu:%d", d.Index)
	default:
		return fmt.Sprintf("device(%d):%d", int(d.Type), d.Index)
	}
}

// Tensor is a view over memory in an opaque layout. The memory is owned by
// whoever created it; a Tensor never frees it.
type Tensor struct {
	DataPtr  unsafe.Pointer
	Dims     []int64
	DType    DType
	Device   Device
	Metadata []byte // layout descriptor, interpreted by the backend only
}

// Numel returns the number of elements described by Dims. A rank-0 tensor
// has one element.
func (t *Tensor) Numel() int64 {
	n := int64(1)
	for _, d := range t.Dims {
		n *= d
	}
	return n
}

// Enabled reports whether the oneDNN backend was compiled in.
func Enabled() bool {
	return backendEnabled
}

// DataPtrFromOpaqueTensor returns the raw data pointer of t.
func DataPtrFromOpaqueTensor(t *Tensor) (unsafe.Pointer, error) {
	p, err := dataPtr(t)
	if err != nil {
		return nil, fmt.Errorf("opaque: data pointer from tensor: %w", err)
	}
	return p, nil
}

// TensorFromDataPtr wraps caller-owned memory at ptr as an opaque tensor of
// the given shape, element type and device. metadata is copied.
func TensorFromDataPtr(ptr unsafe.Pointer, dims []int64, dtype DType, device Device, metadata []byte) (*Tensor, error) {
	t, err := fromDataPtr(ptr, dims, dtype, device, metadata)
	if err != nil {
		return nil, fmt.Errorf("opaque: tensor from data pointer %v %v on %v: %w", dims, dtype, device, err)
	}
	return t, nil
}

// Float32s returns the elements of a float32 CPU tensor as a slice sharing
// its memory, for use with vec and algo kernels.
func Float32s(t *Tensor) ([]float32, error) {
	if t != nil {
		for _, d := range t.Dims {
			if d < 0 {
				return nil, fmt.Errorf("opaque: negative dimension in %v: %w", t.Dims, ErrInvalidTensor)
			}
		}
	}
	p, err := DataPtrFromOpaqueTensor(t)
	if err != nil {
		return nil, err
	}
	if t.DType != Float32 || t.Device.Type != CPU {
		return nil, fmt.Errorf("opaque: want float32 cpu tensor, got %v on %v: %w", t.DType, t.Device, ErrInvalidTensor)
	}
	return unsafe.Slice((*float32)(p), t.Numel()), nil
}
