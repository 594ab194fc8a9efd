// Command strideinfo prints stride plans for strided subsampling.
//
// Usage:
//
//	strideinfo [flags] [stride ...]
//
// Without arguments it prints plans for strides 1..8.
//
// Examples:
//
//	strideinfo 2 4
//	strideinfo -len 1024 -start 3 2
//	strideinfo -len 16 -indices 3
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/kapteenimuttipolpa/embedded-utils/seq"
)

func main() {
	srcLen := flag.Int("len", 64, "source length in elements")
	start := flag.Int("start", 0, "start index into the source")
	indices := flag.Bool("indices", false, "print the selected source indices")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: strideinfo [flags] [stride ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints required destination lengths for strided subsampling.\n")
		fmt.Fprintf(os.Stderr, "Without arguments, prints plans for strides 1..8.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  strideinfo 2 4\n")
		fmt.Fprintf(os.Stderr, "  strideinfo -len 1024 -start 3 2\n")
		fmt.Fprintf(os.Stderr, "  strideinfo -len 16 -indices 3\n")
	}
	flag.Parse()

	if *srcLen < 0 {
		fmt.Fprintf(os.Stderr, "error: source length must be >= 0\n")
		os.Exit(1)
	}

	strides := resolveStrides(flag.Args())
	if len(strides) == 0 {
		fmt.Fprintf(os.Stderr, "error: no valid strides\n")
		os.Exit(1)
	}

	printPlans(*srcLen, *start, strides, *indices)
}

func resolveStrides(args []string) []int {
	if len(args) == 0 {
		return []int{1, 2, 3, 4, 5, 6, 7, 8}
	}

	var result []int
	for _, arg := range args {
		n, err := strconv.Atoi(strings.TrimSpace(arg))
		if err != nil || n <= 0 {
			fmt.Fprintf(os.Stderr, "warning: ignoring invalid stride %q (must be a positive integer)\n", arg)
			continue
		}
		result = append(result, n)
	}
	return result
}

func printPlans(srcLen, start int, strides []int, showIndices bool) {
	// Source of index values, so a strided copy over it yields the
	// selected source positions directly.
	source := make([]int, srcLen)
	for i := range source {
		source[i] = i
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Stride\tStart\tSource Len\tRequired Dst\tFirst\tLast\n")
	fmt.Fprintf(tw, "------\t-----\t----------\t------------\t-----\t----\n")

	for _, stride := range strides {
		selected, err := seq.EveryNth(source, stride, start)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: stride %d: %v\n", stride, err)
			continue
		}

		first, last := "-", "-"
		if len(selected) > 0 {
			first = strconv.Itoa(selected[0])
			last = strconv.Itoa(selected[len(selected)-1])
		}

		fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%s\t%s\n",
			stride,
			start,
			srcLen,
			seq.RequiredLen(srcLen, start, stride),
			first,
			last,
		)

		if showIndices {
			fmt.Fprintf(tw, "\t\t\t%v\t\t\n", selected)
		}
	}

	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}
