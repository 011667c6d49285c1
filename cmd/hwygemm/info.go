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

package main

import (
	"fmt"
	"io"
	"runtime"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/tilekernel/hwygemm/hwy"
	"github.com/tilekernel/hwygemm/hwy/contrib/matmul"
	"golang.org/x/sys/cpu"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print the detected CPU features, dispatch level and tile shapes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printInfo(cmd.OutOrStdout())
		},
	}
}

func printInfo(out io.Writer) error {
	fmt.Fprintf(out, "GOOS/GOARCH: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Fprintf(out, "Dispatch level: %s (%s), %d-byte vectors\n", hwy.CurrentLevel(), hwy.CurrentName(), hwy.CurrentWidth())

	fmt.Fprintln(out, "\nCPU features:")
	switch runtime.GOARCH {
	case "amd64", "386":
		fmt.Fprintf(out, "  SSE2:  %v\n", cpu.X86.HasSSE2)
		fmt.Fprintf(out, "  AVX:   %v\n", cpu.X86.HasAVX)
		fmt.Fprintf(out, "  AVX2:  %v\n", cpu.X86.HasAVX2)
		fmt.Fprintf(out, "  FMA:   %v\n", cpu.X86.HasFMA)
	case "arm64":
		fmt.Fprintf(out, "  ASIMD: %v\n", cpu.ARM64.HasASIMD)
		fmt.Fprintf(out, "  FP:    %v\n", cpu.ARM64.HasFP)
	default:
		fmt.Fprintln(out, "  (none probed)")
	}

	fmt.Fprintln(out, "\nTile shapes (BlockM x BlockP x BlockN):")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  LEVEL\tFLOAT32\tFLOAT64\tSUPPORTED")
	for _, level := range hwy.AllLevels() {
		fmt.Fprintf(w, "  %s\t%s\t%s\t%v\n", level,
			matmul.TileFor[float32](level), matmul.TileFor[float64](level), hwy.Supports(level))
	}
	return w.Flush()
}
