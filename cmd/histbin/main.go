// Command histbin queries the bin layout of a histogram defined in YAML.
//
// Usage:
//
//	histbin -config hist.yaml [-v] [-probes n] info
//	histbin -config hist.yaml index x0 x1 ...
//	histbin -config hist.yaml bin i
//	histbin -config hist.yaml grid
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/aclements/go-moremath/vec"
	"github.com/claireguyot/root/axis"
	"github.com/claireguyot/root/config"
	"github.com/claireguyot/root/hist"
	"github.com/sirupsen/logrus"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s -config file.yaml [flags] info|index x...|bin i|grid\n", os.Args[0])
		flag.PrintDefaults()
	}
	configPath := flag.String("config", "", "YAML histogram definition")
	verbose := flag.Bool("v", false, "enable debug logging")
	probes := flag.Int("probes", 0, "for info: classify `n` evenly spaced probes across each axis")
	flag.Parse()

	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	if *configPath == "" || flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.WithError(err).WithField("config", *configPath).Fatal("failed to load histogram definition")
	}

	h, err := cfg.Build(hist.WithLogger(log))
	if err != nil {
		log.WithError(err).WithField("config", *configPath).Fatal("failed to build histogram")
	}

	cmd, args := flag.Arg(0), flag.Args()[1:]
	switch cmd {
	case "info":
		err = info(os.Stdout, h, *probes)
	case "index":
		err = index(os.Stdout, h, args)
	case "bin":
		err = bin(os.Stdout, h, args)
	case "grid":
		err = grid(os.Stdout, h)
	default:
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		log.WithError(err).WithFields(logrus.Fields{
			"command": cmd,
			"args":    strings.Join(args, " "),
		}).Fatal("command failed")
	}
}

func info(w io.Writer, h *hist.Histogram, probes int) error {
	l := h.Layout()
	fmt.Fprintf(w, "shape:          %s\n", l.Key())
	fmt.Fprintf(w, "dims:           %d\n", h.GetNDims())
	fmt.Fprintf(w, "bins:           %d\n", h.GetNBins())
	fmt.Fprintf(w, "regular bins:   %d\n", h.GetNRegularBins())
	fmt.Fprintf(w, "overflow bins:  %d\n", h.GetNOverflowBins())
	fmt.Fprintf(w, "growth policy:  %v\n", h.GetGrowthPolicy())
	fmt.Fprintf(w, "overflow table: %t\n", l.HasOverflowTable())

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', tabwriter.AlignRight)
	for i := range h.GetNDims() {
		a := h.GetAxis(i)
		fmt.Fprintf(w, "\naxis %d: %v, %d bins\n", i, a.Kind(), a.GetNBinsNoOver())
		fmt.Fprintf(tw, "bin\tfrom\tcenter\tto\t\n")
		for _, p := range axis.Properties(a) {
			fmt.Fprintf(tw, "%s\t%g\t%g\t%g\t\n", label(p.Index), p.From, p.Center, p.To)
		}
		if err := tw.Flush(); err != nil {
			return err
		}

		if probes > 0 {
			xs := vec.Linspace(a.GetBinFrom(1), a.GetBinTo(a.GetNBinsNoOver()), probes)
			bins := make([]string, len(xs))
			for j, x := range xs {
				bins[j] = fmt.Sprintf("%g->%s", x, label(a.FindBin(x)))
			}
			fmt.Fprintf(w, "probes: %s\n", strings.Join(bins, " "))
		}
	}

	return nil
}

func index(w io.Writer, h *hist.Histogram, args []string) error {
	coords := make([]float64, len(args))
	for i, arg := range args {
		x, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return fmt.Errorf("coordinate %d: %w", i, err)
		}
		coords[i] = x
	}

	global, err := h.GetBinIndex(coords...)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, global)

	return nil
}

func bin(w io.Writer, h *hist.Histogram, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("bin takes one global index, got %d arguments", len(args))
	}
	global, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("global index: %w", err)
	}

	local, err := h.Layout().LocalBins(global, nil)
	if err != nil {
		return err
	}
	from, err := h.GetBinFrom(global)
	if err != nil {
		return err
	}
	center, err := h.GetBinCenter(global)
	if err != nil {
		return err
	}
	to, err := h.GetBinTo(global)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "axis\tbin\tfrom\tcenter\tto\t\n")
	for i := range local {
		fmt.Fprintf(tw, "%d\t%s\t%g\t%g\t%g\t\n", i, label(local[i]), from[i], center[i], to[i])
	}

	return tw.Flush()
}

// grid prints the global index of every bin, one table per plane of the
// axes beyond the second, with axis 0 as columns and axis 1 as rows.
func grid(w io.Writer, h *hist.Histogram) error {
	cols := axis.Sequence(h.GetAxis(0))
	rows := []int{0}
	if h.GetNDims() > 1 {
		rows = axis.Sequence(h.GetAxis(1))
	}
	rowLen, planeLen := len(cols), len(cols)*len(rows)

	tw := tabwriter.NewWriter(w, 0, 8, 1, ' ', tabwriter.AlignRight)
	n := 0
	for global, local := range h.Layout().All() {
		if n%planeLen == 0 {
			if n > 0 {
				fmt.Fprintln(tw)
			}
			if len(local) > 2 {
				fmt.Fprintf(tw, "plane %s\n", labels(local[2:]))
			}
			fmt.Fprint(tw, "\t")
			for _, c := range cols {
				fmt.Fprintf(tw, "%s\t", label(c))
			}
			fmt.Fprintln(tw)
		}
		if n%rowLen == 0 {
			row := ""
			if len(local) > 1 {
				row = label(local[1])
			}
			fmt.Fprintf(tw, "%s\t", row)
		}
		fmt.Fprintf(tw, "%d\t", global)
		if n%rowLen == rowLen-1 {
			fmt.Fprintln(tw)
		}
		n++
	}

	return tw.Flush()
}

func label(bin int) string {
	switch bin {
	case axis.Underflow:
		return "U"
	case axis.Overflow:
		return "O"
	default:
		return strconv.Itoa(bin)
	}
}

func labels(bins []int) string {
	out := make([]string, len(bins))
	for i, b := range bins {
		out[i] = label(b)
	}

	return strings.Join(out, ",")
}
