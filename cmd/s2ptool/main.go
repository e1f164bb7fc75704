// Command s2ptool inspects and combines 2-port mag-angle network-parameter
// files.
//
// Usage:
//
//	s2ptool [flags] file.s2p
//
// Without flags it prints a summary of each scattering parameter.
//
// Examples:
//
//	s2ptool channel.s2p
//	s2ptool -delay channel.s2p
//	s2ptool -cascade fixture.s2p -o combined.s2p channel.s2p
//	s2ptool -cascade fixture.s2p -unit mhz -o combined.s2p channel.s2p
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-sparam/sparam"
	"github.com/cwbudde/algo-sparam/touchstone"
)

var paramNames = []struct {
	name      string
	dest, src int
}{
	{"S11", 1, 1},
	{"S21", 2, 1},
	{"S12", 1, 2},
	{"S22", 2, 2},
}

func main() {
	cascadePath := flag.String("cascade", "", "second .s2p file to cascade after the input")
	outPath := flag.String("o", "", "output .s2p file (required with -cascade)")
	unitName := flag.String("unit", "ghz", "frequency unit for output files (hz, khz, mhz, ghz)")
	showDelay := flag.Bool("delay", false, "print per-bin group delay of S21")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: s2ptool [flags] file.s2p")
		flag.PrintDefaults()
		os.Exit(2)
	}

	network, err := touchstone.ReadFile(flag.Arg(0))
	if err != nil {
		fatal(err)
	}

	if *cascadePath != "" {
		if *outPath == "" {
			fatal(fmt.Errorf("-cascade requires -o"))
		}

		rhs, err := touchstone.ReadFile(*cascadePath)
		if err != nil {
			fatal(err)
		}

		if err := network.Cascade(rhs); err != nil {
			fatal(err)
		}

		unit, err := parseUnit(*unitName)
		if err != nil {
			fatal(err)
		}

		if err := touchstone.WriteFile(*outPath, network, touchstone.WithFreqUnit(unit)); err != nil {
			fatal(err)
		}

		fmt.Printf("wrote %s\n", *outPath)
		return
	}

	if *showDelay {
		printDelay(network.Param(2, 1))
		return
	}

	printSummary(network)
}

func printSummary(n *sparam.Network) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Param\tPoints\tFmin (GHz)\tFmax (GHz)\tMin (dB)\tMax (dB)\tAvg (dB)")

	for _, p := range paramNames {
		trace := n.Param(p.dest, p.src)

		st, err := trace.Analyze()
		if err != nil {
			fmt.Fprintf(w, "%s\t0\t-\t-\t-\t-\t-\n", p.name)
			continue
		}

		fmt.Fprintf(w, "%s\t%d\t%.4f\t%.4f\t%.2f\t%.2f\t%.2f\n",
			p.name, st.Points, st.MinFreq*1e-9, st.MaxFreq*1e-9,
			st.Min_dB, st.Max_dB, st.Average_dB)
	}

	w.Flush()
}

func printDelay(trace *sparam.Trace) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Bin\tFreq (GHz)\tDelay (ps)")

	for i := 0; i+1 < trace.Len(); i++ {
		fmt.Fprintf(w, "%d\t%.4f\t%.3f\n",
			i, trace.At(i).Frequency*1e-9, trace.GroupDelay(i)*1e12)
	}

	w.Flush()
}

func parseUnit(name string) (touchstone.FreqUnit, error) {
	switch strings.ToLower(name) {
	case "hz":
		return touchstone.UnitHz, nil
	case "khz":
		return touchstone.UnitKHz, nil
	case "mhz":
		return touchstone.UnitMHz, nil
	case "ghz":
		return touchstone.UnitGHz, nil
	default:
		return touchstone.UnitGHz, fmt.Errorf("unknown frequency unit %q", name)
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "s2ptool: %v\n", err)
	os.Exit(1)
}
