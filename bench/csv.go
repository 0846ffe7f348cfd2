package bench

import (
	"fmt"
	"io"
)

// csvHeader matches the spreadsheet import layout: one row per sample,
// errors adjacent to the values they measure.
const csvHeader = "Theta, CORDIC Cosine, Standard Cosine, Cosine Error, CORDIC Sine, Standard Sine, Sine Error"

// WriteCSV emits the sweep as comma-separated rows suitable for
// redirection into a spreadsheet-importable file.
func WriteCSV(w io.Writer, samples []Sample) error {
	if _, err := fmt.Fprintln(w, csvHeader); err != nil {
		return err
	}
	for _, s := range samples {
		_, err := fmt.Fprintf(w, "%g,%g,%g,%g,%g,%g,%g\n",
			s.Theta,
			s.CordicCos, s.StdCos, s.CosErr,
			s.CordicSin, s.StdSin, s.SinErr)
		if err != nil {
			return err
		}
	}
	return nil
}
