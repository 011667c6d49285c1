// Copyright 2025 go-highway Authors
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

// hwygemm reports the vector level selected for this CPU, benchmarks the
// matmul kernels at every supported level and checks them against a
// reference BLAS.
//
// Usage:
//
//	hwygemm info
//	hwygemm bench --m 256 --p 256 --n 256 --dtype f32
//	hwygemm verify --m 67 --p 45 --n 93
//
// Set HWY_MAX_LEVEL, HWY_NO_FMA or HWY_NO_SIMD to cap the detected level.
package main

import (
	goflag "flag"
	"os"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		klog.Flush()
		os.Exit(1)
	}
	klog.Flush()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "hwygemm",
		Short:        "Inspect, benchmark and verify the tiled matmul kernels",
		SilenceUsage: true,
	}
	klogFlags := goflag.NewFlagSet("klog", goflag.ContinueOnError)
	klog.InitFlags(klogFlags)
	root.PersistentFlags().AddGoFlagSet(klogFlags)

	root.AddCommand(newInfoCmd(), newBenchCmd(), newVerifyCmd())
	return root
}
