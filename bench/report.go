package bench

import (
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"
)

// WriteTable prints results grouped by distribution, one line per
// algorithm with the elapsed milliseconds and the predicate count.
func WriteTable(w io.Writer, results []Result) error {
	width := 0
	for _, res := range results {
		if len(res.Algorithm) > width {
			width = len(res.Algorithm)
		}
	}

	var current Distribution
	for i, res := range results {
		if i == 0 || res.Distribution != current {
			if i > 0 {
				if _, err := fmt.Fprintln(w); err != nil {
					return err
				}
			}
			current = res.Distribution
			if _, err := fmt.Fprintf(w, "Timing %s:\n", current); err != nil {
				return err
			}
		}

		ms := float64(res.Elapsed) / float64(time.Millisecond)
		if _, err := fmt.Fprintf(w, "  %-*s %9.2f ms (%d predicates)\n", width, res.Algorithm, ms, res.Predicates); err != nil {
			return err
		}
	}
	return nil
}

func WriteYAML(w io.Writer, results []Result) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(results); err != nil {
		return err
	}
	return enc.Close()
}
