// Command freqresponse prints the frequency response of analog filter
// designs and weighting curves.
//
// Usage:
//
//	freqresponse [flags] [filter-name ...]
//
// Without arguments it prints the response of all filter families.
//
// Examples:
//
//	freqresponse butterworth
//	freqresponse -cutoff 500 -order 4 butterworth bessel
//	freqresponse -ripple 1 chebyshev1
//	freqresponse -highpass butterworth
//	freqresponse a-weighting c-weighting
//	freqresponse -list
package main

import (
	"flag"
	"fmt"
	"math"
	"math/cmplx"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-analog/analog/design"
	"github.com/cwbudde/algo-analog/analog/filter"
	"github.com/cwbudde/algo-analog/analog/weighting"
)

// params carries the flag values every builder may draw from.
type params struct {
	cutoff   float64
	order    int
	ripple   float64
	highpass bool
}

type filterEntry struct {
	name      string
	usesOrder bool
	build     func(p params) *filter.Filter
}

var registry = []filterEntry{
	{"butterworth", true, func(p params) *filter.Filter {
		return &design.NewButterworth(p.cutoff, p.order, p.highpass).Filter
	}},
	{"chebyshev1", true, func(p params) *filter.Filter {
		return &design.NewChebyshev1(p.cutoff, p.ripple, p.order, p.highpass).Filter
	}},
	{"chebyshev2", true, func(p params) *filter.Filter {
		return &design.NewChebyshev2(p.cutoff, p.ripple, p.order, p.highpass).Filter
	}},
	{"bessel", true, func(p params) *filter.Filter {
		return &design.NewBessel(p.cutoff, p.order, p.highpass).Filter
	}},
	{"a-weighting", false, func(params) *filter.Filter { return weighting.New(weighting.TypeA) }},
	{"b-weighting", false, func(params) *filter.Filter { return weighting.New(weighting.TypeB) }},
	{"c-weighting", false, func(params) *filter.Filter { return weighting.New(weighting.TypeC) }},
	{"d-weighting", false, func(params) *filter.Filter { return weighting.New(weighting.TypeD) }},
	{"u-weighting", false, func(params) *filter.Filter { return weighting.New(weighting.TypeU) }},
}

func main() {
	cutoff := flag.Float64("cutoff", 1000, "cutoff frequency in Hz")
	order := flag.Int("order", 2, "filter order")
	ripple := flag.Float64("ripple", 3, "ripple / stop-band attenuation in dB (Chebyshev)")
	highpass := flag.Bool("highpass", false, "design a highpass instead of a lowpass")
	from := flag.Float64("from", 10, "lowest frequency in Hz")
	to := flag.Float64("to", 20000, "highest frequency in Hz")
	points := flag.Int("points", 21, "number of logarithmically spaced frequencies")
	list := flag.Bool("list", false, "list available filter names")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: freqresponse [flags] [filter-name ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints the frequency response of analog filter designs.\n")
		fmt.Fprintf(os.Stderr, "Without arguments, prints the response of all filter families.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  freqresponse butterworth bessel\n")
		fmt.Fprintf(os.Stderr, "  freqresponse -cutoff 500 -order 4 -highpass butterworth\n")
		fmt.Fprintf(os.Stderr, "  freqresponse a-weighting\n")
		fmt.Fprintf(os.Stderr, "  freqresponse -list\n")
	}
	flag.Parse()

	if *list {
		printList()
		return
	}

	if *from <= 0 || *to <= *from || *points < 2 {
		fmt.Fprintf(os.Stderr, "error: need 0 < from < to and at least 2 points\n")
		os.Exit(1)
	}

	names := flag.Args()
	if len(names) == 0 {
		for _, e := range registry {
			names = append(names, e.name)
		}
	}

	entries := resolveEntries(names)
	if len(entries) == 0 {
		fmt.Fprintf(os.Stderr, "error: no matching filters\n")
		os.Exit(1)
	}

	p := params{cutoff: *cutoff, order: *order, ripple: *ripple, highpass: *highpass}
	frequencies := floats.LogSpan(make([]float64, *points), *from, *to)
	printResponses(entries, p, frequencies)
}

func printList() {
	names := make([]string, len(registry))
	for i, e := range registry {
		names[i] = e.name
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Println(n)
	}
}

func resolveEntries(names []string) []filterEntry {
	byName := make(map[string]filterEntry, len(registry))
	for _, e := range registry {
		byName[e.name] = e
	}

	var result []filterEntry
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		e, ok := byName[name]
		if !ok {
			fmt.Fprintf(os.Stderr, "warning: unknown filter %q (use -list to see available)\n", name)
			continue
		}
		result = append(result, e)
	}
	return result
}

func printResponses(entries []filterEntry, p params, frequencies []float64) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	header := []string{"Frequency [Hz]"}
	responses := make([][]complex128, len(entries))
	for i, e := range entries {
		label := e.name
		if e.usesOrder {
			label = fmt.Sprintf("%s (n=%d)", e.name, p.order)
		}
		header = append(header, label+" [dB]")
		responses[i] = e.build(p).Evaluate(frequencies)[0]
	}
	if _, err := fmt.Fprintln(tw, strings.Join(header, "\t")); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}

	for k, f := range frequencies {
		row := []string{fmt.Sprintf("%.1f", f)}
		for i := range entries {
			row = append(row, fmt.Sprintf("%+.2f", toDB(responses[i][k])))
		}
		if _, err := fmt.Fprintln(tw, strings.Join(row, "\t")); err != nil {
			fmt.Fprintf(os.Stderr, "error: failed to write output row: %v\n", err)
			return
		}
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

func toDB(value complex128) float64 {
	return 20 * math.Log10(cmplx.Abs(value))
}
