package pick_test

import (
	"fmt"

	"github.com/cwbudde/algo-firstbreak/dsp/core"
	"github.com/cwbudde/algo-firstbreak/dsp/signal"
	"github.com/cwbudde/algo-firstbreak/pick"
	"github.com/cwbudde/algo-firstbreak/seismic"
	"github.com/cwbudde/algo-firstbreak/seismic/synth"
)

func ExampleThreshold() {
	traces := make([][]float64, 4)
	for j := range traces {
		traces[j] = make([]float64, 50)
		traces[j][10+3*j] = 1
	}
	traces[3][19] = 0
	rec, _ := seismic.FromTraces(traces)

	s, _ := pick.NewThreshold(0.5)
	picks, _ := s.Pick(rec)
	fmt.Println(picks)

	// Output:
	// [10 13 16 -1]
}

func ExampleSTALTA() {
	trace := make([]float64, 400)
	for i := 250; i < len(trace); i++ {
		trace[i] = 1
	}
	rec, _ := seismic.FromTraces([][]float64{trace})

	s, _ := pick.NewSTALTA(20, 200, 3)
	picks, _ := s.Pick(rec)
	fmt.Println(picks)

	// Output:
	// [250]
}

func ExamplePicker_Run() {
	gen := signal.NewGenerator(core.WithSampleRate(2000))
	shot, _ := synth.NewShot(synth.DefaultShotConfig(), gen)

	m, _ := pick.NewModelDriven(20, 200, 3)
	p, _ := pick.NewPicker(m, core.WithSampleRate(2000))
	picks, _ := p.Run(shot.Record, shot.Geometry)

	fmt.Println("true:", shot.FirstBreaks[:4])
	fmt.Println("picked:", picks[:4])

	// Output:
	// true: [752 740 727 715]
	// picked: [771 759 746 734]
}
