package headless

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"

	"falling-sand/internal/sims/sand"
)

const (
	plotHeight = 10
	plotWidth  = 80
)

// WriteReport prints the run summary followed by charts of the particle
// count and mean velocity over time.
func WriteReport(w io.Writer, res Result) error {
	st := res.Final
	if _, err := fmt.Fprintf(w, "grid %dx%d  gravity %.3f  seed %d  ticks %d  elapsed %s\n",
		res.Grid[0], res.Grid[1], res.Gravity, res.Seed, len(res.Samples), res.Elapsed.Round(time.Millisecond)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "painted %d  particles %d  pile %d  velocity mean %.3f max %.3f\n\n",
		res.Painted, st.Particles, st.PileHeight, st.MeanVelocity, st.MaxVelocity); err != nil {
		return err
	}
	if len(res.Samples) == 0 {
		return nil
	}
	charts := []struct {
		caption string
		value   func(sand.Stats) float64
	}{
		{"particles per tick", func(s sand.Stats) float64 { return float64(s.Particles) }},
		{"mean velocity per tick", func(s sand.Stats) float64 { return s.MeanVelocity }},
	}
	for _, c := range charts {
		graph := asciigraph.Plot(res.Series(c.value),
			asciigraph.Height(plotHeight),
			asciigraph.Width(plotWidth),
			asciigraph.Caption(c.caption),
		)
		if _, err := fmt.Fprintf(w, "%s\n\n", graph); err != nil {
			return err
		}
	}
	return nil
}

// WriteSweep prints one row per run and a chart of the final mean velocity
// against gravity.
func WriteSweep(w io.Writer, results []Result) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "GRAVITY\tPARTICLES\tPILE\tMEAN V\tMAX V\tELAPSED")
	for _, r := range results {
		fmt.Fprintf(tw, "%.3f\t%d\t%d\t%.3f\t%.3f\t%s\n",
			r.Gravity, r.Final.Particles, r.Final.PileHeight, r.Final.MeanVelocity, r.Final.MaxVelocity,
			r.Elapsed.Round(time.Millisecond))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if len(results) < 2 {
		return nil
	}
	means := make([]float64, len(results))
	for i, r := range results {
		means[i] = r.Final.MeanVelocity
	}
	graph := asciigraph.Plot(means,
		asciigraph.Height(plotHeight),
		asciigraph.Caption("final mean velocity by gravity"),
	)
	_, err := fmt.Fprintf(w, "\n%s\n", graph)
	return err
}
