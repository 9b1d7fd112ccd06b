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

// Command vecinfo prints the lane tier, CPU features and backend status of
// this build, and verifies the Inf/NaN scan against a scalar reference.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "vecinfo",
		Short: "Report the 8-lane float32 vector build and CPU",
		Long: `vecinfo reports which register tier the vec package was compiled with,
the x86 and ARM feature flags golang.org/x/sys/cpu detects, and whether the
oneDNN tensor backend is linked in.

Run "vecinfo selftest" to check HasInfNaN against a scalar reference.`,
		SilenceUsage: true,
		RunE:         runInfo,
	}

	rootCmd.AddCommand(&cobra.Command{
		Use:   "info",
		Short: "Print tier and CPU feature information",
		Args:  cobra.NoArgs,
		RunE:  runInfo,
	})

	selftestCmd := &cobra.Command{
		Use:   "selftest",
		Short: "Check HasInfNaN against the exponent test on float32 bit patterns",
		Long: `selftest places float32 bit patterns in a vector and compares HasInfNaN
with a scalar all-ones-exponent check. By default a fixed spread of patterns
is checked; --exhaustive checks all 2^32 of them.`,
		Args: cobra.NoArgs,
		RunE: runSelftest,
	}
	selftestCmd.Flags().Bool("exhaustive", false, "Check every float32 bit pattern (slow)")
	selftestCmd.Flags().Int("samples", defaultSamples, "Number of patterns to check when not exhaustive")
	selftestCmd.Flags().Int("threads", 0, "Worker count (0 = VEC_NUM_THREADS or GOMAXPROCS)")
	rootCmd.AddCommand(selftestCmd)

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
