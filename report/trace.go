// ABOUTME: Accumulates per-generation (generation, best fit score) records and flushes a tabwriter summary
// ABOUTME: Fulfills ga.Recorder; the summary is thinned so long runs stay readable

package report

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// entry is one generation's best-fitness record.
type entry struct {
	generation   int
	bestFitScore int
}

// Trace implements ga.Recorder, keeping every generation's best fit score
// in memory and printing a condensed tabular summary on Flush.
type Trace struct {
	entries []entry
	// EveryN prints one summary row for every EveryN recorded generations;
	// 0 or less means every generation is printed.
	EveryN int
}

// Record appends a generation's best fit score to the trace.
func (t *Trace) Record(generation int, bestFitScore int) {
	t.entries = append(t.entries, entry{generation: generation, bestFitScore: bestFitScore})
}

// Flush writes a tabwriter-formatted summary of the trace to w, thinned to
// every EveryN generations (always including the last one).
func (t *Trace) Flush(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	if _, err := fmt.Fprintln(tw, "generation\tbest_fit_score"); err != nil {
		return err
	}

	step := t.EveryN
	if step <= 0 {
		step = 1
	}

	for i, e := range t.entries {
		last := i == len(t.entries)-1
		if i%step != 0 && !last {
			continue
		}

		if _, err := fmt.Fprintf(tw, "%d\t%d\n", e.generation, e.bestFitScore); err != nil {
			return err
		}
	}

	return tw.Flush()
}
