/*
NAME
  scpexport.go

DESCRIPTION
  scpexport.go drives codec/scp's builder from a Recording: it reads
  every row, converts device cells into scp.Samples, and writes the
  assembled record to disk (§4.4).

AUTHOR
  Niccolo Rigacci <niccolo@rigacci.org> (original ecg_contec.py export_scp)

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package ecg90a

import (
	"fmt"
	"os"

	"github.com/rigacci/ecg90a/codec/scp"
)

// ExportSCP writes r's samples to path as a complete SCP-ECG record. It
// refuses to run under the same conditions as ExportCSV (§4.3, §4.4):
// unresolved header errors, or an existing output file without
// overwrite.
func (r *Recording) ExportSCP(path string, overwrite bool) error {
	if r.Errs != 0 {
		r.log.Warning("refusing SCP export, recording header did not parse correctly", "errors", r.Errs.String())
		return fmt.Errorf("recording has unresolved errors: %s", r.Errs)
	}
	if _, err := os.Stat(path); err == nil && !overwrite {
		r.log.Warning("output file already exists, will not overwrite", "path", path)
		r.Errs |= OutputExists
		return fmt.Errorf("output file %q already exists", path)
	}

	it, err := r.Rows(DefaultXOffset, len(scp.ECG90ALeads))
	if err != nil {
		return err
	}
	defer it.Close()

	rows := make([]scp.Row, 0, r.Samples)
	for it.Next() {
		rows = append(rows, toSCPRow(it.Row()))
	}
	if err := it.Err(); err != nil {
		return fmt.Errorf("error reading rows for SCP export: %w", err)
	}

	in := scp.BuildInput{
		Patient: scp.Patient{
			Name:        r.PatientName,
			CaseID:      r.CaseID,
			Sex:         r.PatientSex,
			Age:         r.PatientAge,
			WeightKg:    r.PatientKg,
			AcquiredAt:  r.Timestamp,
			DeviceModel: "ECG90A",
		},
		TotalSamples: uint32(len(rows)),
		Rows:         rows,
	}
	result := scp.Build(in)
	if result.Truncated {
		r.log.Warning("rhythm data truncated to fit Section #6's length field", "samples", len(rows))
		r.Errs |= SamplesTruncated
	}

	if err := os.WriteFile(path, result.Record, 0644); err != nil {
		return fmt.Errorf("could not write %q: %w", path, err)
	}
	return nil
}

// toSCPRow converts one device row (I, II, III, aVR, aVL, aVF, V1..V6,
// in that order when Columns==12) into codec/scp's Row shape, column
// for column.
func toSCPRow(row Row) scp.Row {
	var out scp.Row
	for i := range out {
		if i >= len(row) {
			out[i] = scp.NullSample()
			continue
		}
		c := row[i]
		if c.Null {
			out[i] = scp.NullSample()
		} else {
			out[i] = scp.IntSample(c.Value)
		}
	}
	return out
}
