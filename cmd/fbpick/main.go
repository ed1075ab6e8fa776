// Command fbpick picks first breaks on a seismic record and optionally
// measures how the picks degrade under added noise.
//
// Usage:
//
//	fbpick [flags]
//
// The record is read from CSV (-record, one row per time sample, one column
// per trace) together with an optional sensor geometry (-geometry, one row
// of coordinates per trace), or synthesised with -synthetic.
//
// Examples:
//
//	fbpick -synthetic
//	fbpick -synthetic -strategy stalta -snr 50,20,10,5,2
//	fbpick -record shot.csv -geometry sensors.csv -strategy model -v
//	fbpick -record shot.csv -strategy threshold -threshold 0.2
//	fbpick -list
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-firstbreak/dsp/core"
	"github.com/cwbudde/algo-firstbreak/dsp/signal"
	"github.com/cwbudde/algo-firstbreak/pick"
	"github.com/cwbudde/algo-firstbreak/seismic"
	"github.com/cwbudde/algo-firstbreak/seismic/synth"
	"github.com/cwbudde/algo-firstbreak/stats/picks"
)

type params struct {
	threshold  float64
	short      int
	long       int
	ratio      float64
	goodWindow int
	radius     int
	degree     int
	workers    int
}

type strategyEntry struct {
	name     string
	desc     string
	geometry bool
	build    func(p params) (pick.Strategy, error)
}

var registry = []strategyEntry{
	{"threshold", "first sample with |x| > threshold", false, func(p params) (pick.Strategy, error) {
		return pick.NewThreshold(p.threshold, pick.WithWorkers(p.workers))
	}},
	{"stalta", "first STA/LTA ratio above -ratio after the long window", false, func(p params) (pick.Strategy, error) {
		return pick.NewSTALTA(p.short, p.long, p.ratio, pick.WithWorkers(p.workers))
	}},
	{"model", "STA/LTA refined around a fitted travel-time curve (needs geometry)", true, func(p params) (pick.Strategy, error) {
		return pick.NewModelDriven(p.short, p.long, p.ratio,
			pick.WithWorkers(p.workers),
			pick.WithGoodWindow(p.goodWindow),
			pick.WithSearchRadius(p.radius),
			pick.WithPolyDegree(p.degree),
		)
	}},
}

func main() {
	recordPath := flag.String("record", "", "record CSV (rows are time samples, columns are traces)")
	geometryPath := flag.String("geometry", "", "geometry CSV (one row of coordinates per trace)")
	synthetic := flag.Bool("synthetic", false, "pick a synthetic shot gather instead of -record")
	strategy := flag.String("strategy", "model", "picking strategy (use -list to see available)")
	list := flag.Bool("list", false, "list available strategies")
	fs := flag.Float64("fs", core.DefaultSampleRate, "sample rate in Hz")
	var p params
	flag.Float64Var(&p.threshold, "threshold", 0.1, "absolute amplitude threshold (threshold strategy)")
	flag.IntVar(&p.short, "short", 20, "short-term window in samples")
	flag.IntVar(&p.long, "long", 200, "long-term window in samples")
	flag.Float64Var(&p.ratio, "ratio", 3, "STA/LTA trigger ratio")
	flag.IntVar(&p.goodWindow, "good-window", pick.DefaultGoodWindow, "samples after the earliest pick still trusted for the model fit")
	flag.IntVar(&p.radius, "radius", pick.DefaultSearchRadius, "re-search radius around the model prediction in samples")
	flag.IntVar(&p.degree, "degree", pick.DefaultPolyDegree, "travel-time polynomial degree")
	flag.IntVar(&p.workers, "workers", 0, "traces picked concurrently (0 = GOMAXPROCS)")
	snrList := flag.String("snr", "", "comma-separated peak SNR values for a noise-robustness sweep")
	noise := flag.String("noise", "white", "noise colour for the sweep: white or pink")
	seed := flag.Int64("seed", 1, "random seed for synthetic data and noise")
	writeRecord := flag.String("write-record", "", "write the input record to this CSV file")
	writeGeometry := flag.String("write-geometry", "", "write the input geometry to this CSV file")
	verbose := flag.Bool("v", false, "print the fitted travel-time model")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: fbpick [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Picks seismic first breaks and prints one row per trace.\n")
		fmt.Fprintf(os.Stderr, "With -snr, re-picks noisy copies and prints the error per SNR.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  fbpick -synthetic\n")
		fmt.Fprintf(os.Stderr, "  fbpick -synthetic -strategy stalta -snr 50,20,10,5,2\n")
		fmt.Fprintf(os.Stderr, "  fbpick -record shot.csv -geometry sensors.csv -v\n")
	}
	flag.Parse()

	if *list {
		printList()
		return
	}

	entry, ok := lookup(*strategy)
	if !ok {
		fatalf("unknown strategy %q (use -list to see available)", *strategy)
	}
	kind, err := signal.ParseNoiseKind(*noise)
	if err != nil {
		fatalf("%v", err)
	}
	snrs, err := parseSNRs(*snrList)
	if err != nil {
		fatalf("%v", err)
	}

	gen := signal.NewGeneratorWithOptions([]core.ProcessorOption{core.WithSampleRate(*fs)}, signal.WithSeed(*seed))

	var (
		rec   *seismic.Record
		geom  *seismic.Geometry
		truth []int
	)
	switch {
	case *synthetic:
		shot, err := synth.NewShot(synth.DefaultShotConfig(), gen)
		if err != nil {
			fatalf("synthesise shot: %v", err)
		}
		rec, geom, truth = shot.Record, shot.Geometry, shot.FirstBreaks
	case *recordPath != "":
		rec, geom, err = seismic.Load(*recordPath, *geometryPath)
		if err != nil {
			fatalf("%v", err)
		}
	default:
		flag.Usage()
		os.Exit(2)
	}
	if entry.geometry && geom == nil {
		fatalf("strategy %q needs -geometry", entry.name)
	}

	if err := writeInputs(rec, geom, *writeRecord, *writeGeometry); err != nil {
		fatalf("%v", err)
	}

	s, err := entry.build(p)
	if err != nil {
		fatalf("%v", err)
	}
	picker, err := pick.NewPicker(s, core.WithSampleRate(*fs), core.WithWorkers(p.workers))
	if err != nil {
		fatalf("%v", err)
	}

	got, err := picker.Run(rec, geom)
	if err != nil {
		fatalf("pick: %v", err)
	}

	if *verbose {
		if m, ok := s.(*pick.ModelDriven); ok {
			printModel(m, rec, geom)
		}
	}
	printPicks(got, truth, picker.SampleRate())

	if len(snrs) == 0 {
		return
	}
	ref := truth
	if ref == nil {
		ref = got
	}
	printSweep(picker, rec, geom, ref, snrs, kind, gen)
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
	os.Exit(1)
}

func lookup(name string) (strategyEntry, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, e := range registry {
		if e.name == name {
			return e, true
		}
	}
	return strategyEntry{}, false
}

func printList() {
	entries := append([]strategyEntry(nil), registry...)
	sort.Slice(entries, func(i, j int) bool { return entries[i].name < entries[j].name })
	for _, e := range entries {
		fmt.Printf("%-10s %s\n", e.name, e.desc)
	}
}

func parseSNRs(s string) ([]float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var out []float64
	for _, f := range strings.Split(s, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil || !(v > 0) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("invalid SNR %q: must be a positive number", f)
		}
		out = append(out, v)
	}
	return out, nil
}

func writeInputs(rec *seismic.Record, geom *seismic.Geometry, recordPath, geometryPath string) error {
	if recordPath != "" {
		if err := writeFile(recordPath, func(f *os.File) error { return seismic.WriteCSV(f, rec) }); err != nil {
			return err
		}
	}
	if geometryPath != "" && geom != nil {
		if err := writeFile(geometryPath, func(f *os.File) error { return seismic.WriteGeometryCSV(f, geom) }); err != nil {
			return err
		}
	}
	return nil
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}

func printModel(m *pick.ModelDriven, rec *seismic.Record, geom *seismic.Geometry) {
	model, err := m.Fit(rec, geom)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: model fit: %v\n", err)
		return
	}
	if model.Fallback {
		fmt.Printf("model: fallback to STA/LTA picks (%d trusted traces)\n\n", len(model.Trusted))
		return
	}
	fmt.Printf("model: source trace %d, %d trusted traces, degree %d\n", model.Source, len(model.Trusted), m.Degree())
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintf(tw, "Trace\tDistance\tInitial\tPredicted\n")
	_, _ = fmt.Fprintf(tw, "-----\t--------\t-------\t---------\n")
	for j, d := range model.Distances {
		predicted, _ := model.Predict(d)
		_, _ = fmt.Fprintf(tw, "%d\t%.2f\t%d\t%d\n", j, d, model.Initial[j], predicted)
	}
	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
	fmt.Println()
}

func printPicks(got, truth []int, fs float64) {
	ms := picks.ToMilliseconds(got, fs)
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if truth == nil {
		_, _ = fmt.Fprintf(tw, "Trace\tPick\tTime [ms]\n")
		_, _ = fmt.Fprintf(tw, "-----\t----\t---------\n")
	} else {
		_, _ = fmt.Fprintf(tw, "Trace\tPick\tTime [ms]\tTrue\tError\n")
		_, _ = fmt.Fprintf(tw, "-----\t----\t---------\t----\t-----\n")
	}
	for j, p := range got {
		if truth == nil {
			_, _ = fmt.Fprintf(tw, "%d\t%d\t%.2f\n", j, p, ms[j])
			continue
		}
		diff := "-"
		if p != seismic.NoPick && truth[j] != seismic.NoPick {
			diff = strconv.Itoa(p - truth[j])
		}
		_, _ = fmt.Fprintf(tw, "%d\t%d\t%.2f\t%d\t%s\n", j, p, ms[j], truth[j], diff)
	}
	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

func printSweep(picker *pick.Picker, rec *seismic.Record, geom *seismic.Geometry, ref []int, snrs []float64, kind signal.NoiseKind, gen *signal.Generator) {
	fmt.Printf("\nNoise sweep (%s noise, reference: %d traces)\n", kind, len(ref))
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintf(tw, "SNR\tSNR [dB]\tMatched\tMissing\tSpurious\tBias\tRMSE [samples]\tRMSE [ms]\n")
	_, _ = fmt.Fprintf(tw, "---\t--------\t-------\t-------\t--------\t----\t--------------\t---------\n")
	for _, snr := range snrs {
		noisy, err := synth.AddNoise(rec, snr, kind, gen)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: snr %g: %v\n", snr, err)
			continue
		}
		got, err := picker.Run(noisy, geom)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: snr %g: %v\n", snr, err)
			continue
		}
		c, err := picks.Compare(got, ref)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: snr %g: %v\n", snr, err)
			continue
		}
		_, _ = fmt.Fprintf(tw, "%g\t%.1f\t%d\t%d\t%d\t%.2f\t%.2f\t%.3f\n",
			snr,
			core.LinearToDB(snr),
			c.Matched,
			c.Missing,
			c.Spurious,
			c.Bias,
			c.RMSE,
			c.RMSEMilliseconds(picker.SampleRate()),
		)
	}
	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}
