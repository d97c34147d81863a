/*
NAME
  csv.go

DESCRIPTION
  csv.go exports a Recording's rows as CSV, either as raw integer counts
  or as millivolts, with a configurable column count and a choice of how
  to render null cells (§4.3).

AUTHOR
  Niccolo Rigacci <niccolo@rigacci.org> (original ecg_contec.py export_csv, ecg_scp.py csv_format)

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package ecg90a

import (
	"bufio"
	"fmt"
	"os"

	"github.com/rigacci/ecg90a/codec/scp"
)

// amplitudeMultiplier converts a raw device count to millivolts, derived
// from the ECG90A's fixed 5000 nanovolt amplitude resolution.
const amplitudeMultiplier = float64(scp.AmplitudeNanovolt) / 1_000_000.0

// CSVOptions configures one CSV export.
type CSVOptions struct {
	Overwrite   bool
	AsMillivolt bool
	NoneAsZero  bool
	XOffset     int32
	Columns     int
}

// DefaultCSVOptions returns the export's baseline settings: integer
// counts, nulls rendered empty, the device's default X-axis offset and
// the full 12-column layout.
func DefaultCSVOptions() CSVOptions {
	return CSVOptions{XOffset: DefaultXOffset, Columns: DefaultCSVColumns}
}

// ExportCSV writes r's samples to path as CSV. It refuses to run if r
// carries any error flag from header parsing, or if path already exists
// and opts.Overwrite is false.
func (r *Recording) ExportCSV(path string, opts CSVOptions) error {
	if r.Errs != 0 {
		r.log.Warning("refusing CSV export, recording header did not parse correctly", "errors", r.Errs.String())
		return fmt.Errorf("recording has unresolved errors: %s", r.Errs)
	}
	if _, err := os.Stat(path); err == nil && !opts.Overwrite {
		r.log.Warning("output file already exists, will not overwrite", "path", path)
		r.Errs |= OutputExists
		return fmt.Errorf("output file %q already exists", path)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create %q: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	it, err := r.Rows(opts.XOffset, opts.Columns)
	if err != nil {
		return err
	}
	defer it.Close()

	for it.Next() {
		row := it.Row()
		for i, cell := range row {
			if i > 0 {
				w.WriteByte(',')
			}
			w.WriteString(csvFormat(cell, opts))
		}
		w.WriteByte('\n')
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("could not flush %q: %w", path, err)
	}
	return it.Err()
}

// csvFormat renders one cell per the original tool's csv_format helper:
// an empty field for null values (unless opts.NoneAsZero), an integer
// count, or a millivolt reading scaled by the amplitude multiplier.
func csvFormat(c Cell, opts CSVOptions) string {
	if c.Null && !opts.NoneAsZero {
		return ""
	}
	v := c.Value
	if opts.AsMillivolt {
		return fmt.Sprintf("%.6f", float64(v)*amplitudeMultiplier)
	}
	return fmt.Sprintf("%d", v)
}
