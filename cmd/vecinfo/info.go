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
	"io"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/viterin/vek/vek32"
	"golang.org/x/sys/cpu"

	"github.com/ajroetker/go-vec256/opaque"
	"github.com/ajroetker/go-vec256/vec"
)

func runInfo(cmd *cobra.Command, args []string) error {
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "GOOS: %s\n", runtime.GOOS)
	fmt.Fprintf(w, "GOARCH: %s\n", runtime.GOARCH)
	fmt.Fprintf(w, "NumCPU: %d\n", runtime.NumCPU())
	fmt.Fprintln(w)

	fmt.Fprintf(w, "vec tier: %s\n", vec.CurrentTier())
	fmt.Fprintf(w, "vec register width: %d bytes (%d lanes)\n", vec.RegisterBytes(), vec.Size)
	fmt.Fprintf(w, "CPU has AVX2+FMA: %v\n", vec.CPUHasAVX2FMA())
	fmt.Fprintf(w, "oneDNN backend: %s\n", enabledString(opaque.Enabled()))
	fmt.Fprintln(w)

	switch runtime.GOARCH {
	case "arm64":
		printARM64Features(w)
	case "amd64":
		printAMD64Features(w)
	}

	fmt.Fprintln(w)
	info := vek32.Info()
	fmt.Fprintf(w, "vek acceleration: %v\n", info.Acceleration)
	fmt.Fprintf(w, "vek CPU features: %v\n", info.CPUFeatures)
	return nil
}

func enabledString(b bool) string {
	if b {
		return "enabled"
	}
	return "disabled"
}

func printARM64Features(w io.Writer) {
	fmt.Fprintln(w, "=== golang.org/x/sys/cpu.ARM64 ===")
	fmt.Fprintf(w, "  HasASIMD:   %v (NEON baseline)\n", cpu.ARM64.HasASIMD)
	fmt.Fprintf(w, "  HasFP:      %v\n", cpu.ARM64.HasFP)
	fmt.Fprintf(w, "  HasASIMDHP: %v (FP16 NEON)\n", cpu.ARM64.HasASIMDHP)
	fmt.Fprintf(w, "  HasSVE:     %v\n", cpu.ARM64.HasSVE)
	fmt.Fprintf(w, "  HasSVE2:    %v\n", cpu.ARM64.HasSVE2)
}

func printAMD64Features(w io.Writer) {
	fmt.Fprintln(w, "=== golang.org/x/sys/cpu.X86 ===")
	fmt.Fprintf(w, "  HasAVX:      %v\n", cpu.X86.HasAVX)
	fmt.Fprintf(w, "  HasAVX2:     %v\n", cpu.X86.HasAVX2)
	fmt.Fprintf(w, "  HasFMA:      %v\n", cpu.X86.HasFMA)
	fmt.Fprintf(w, "  HasAVX512F:  %v\n", cpu.X86.HasAVX512F)
	fmt.Fprintf(w, "  HasAVX512VL: %v\n", cpu.X86.HasAVX512VL)
	fmt.Fprintf(w, "  HasSSE41:    %v\n", cpu.X86.HasSSE41)
}
