/*
NAME
  rows.go

DESCRIPTION
  rows.go implements the restartable row iterator over a device file's
  sample payload, deriving leads I, aVR, aVL and aVF from the recorded
  leads II and III via the Einthoven/Goldberger formulas (§4.1, §4.2).

AUTHOR
  Niccolo Rigacci <niccolo@rigacci.org> (original ecg_contec.py ecg.readline)

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
	"io"
	"os"

	"github.com/rigacci/ecg90a/codec/codecutil"
)

// Cell is one sampled value, either present or explicitly null (the
// device's out-of-scale sentinel).
type Cell struct {
	Value int32
	Null  bool
}

// Row is one time-aligned sample across up to 12 derived and recorded
// leads: I, II, III, aVR, aVL, aVF, then any further recorded series
// (V1..V6 on a standard ECG90A capture).
type Row []Cell

// RowIter iterates a Recording's samples one row at a time. It is
// restartable: calling Rows again opens a fresh file handle and starts
// from the first sample, just as the device reader re-opens its source
// file for every export (§4.1).
type RowIter struct {
	r       *Recording
	f       *os.File
	sc      *codecutil.ByteScanner
	xoffset int32
	cols    int
	read    int64
	row     Row
	err     error
	done    bool
}

// Rows returns a fresh iterator over r's samples, applying xoffset to
// every recorded value and truncating each row to cols columns.
func (r *Recording) Rows(xoffset int32, cols int) (*RowIter, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("could not open %q for row iteration: %w", r.path, err)
	}
	if _, err := f.Seek(HeaderLen, io.SeekStart); err != nil {
		f.Close()
		return nil, fmt.Errorf("could not seek past header: %w", err)
	}
	return &RowIter{
		r:       r,
		f:       f,
		sc:      codecutil.NewByteScanner(f, make([]byte, 4096)),
		xoffset: xoffset,
		cols:    cols,
	}, nil
}

// Next advances the iterator and reports whether a row is available.
// It returns false at end of data (an all-zero row, or a genuine short
// read) and on any I/O error; callers distinguish the two via Err.
func (it *RowIter) Next() bool {
	if it.done {
		return false
	}
	bytesPerSample := it.r.SampleBits / 8
	raw := make([]Cell, it.r.DataSeries)
	for i := 0; i < it.r.DataSeries; i++ {
		v, null, err := it.readSample(bytesPerSample)
		if err != nil {
			it.r.log.Warning("unexpected EOF reading sample row", "rows_read", it.read,
				"expected", it.r.Samples, "series_index", i)
			it.r.Errs |= ShortRead | UnexpectedEOD
			if err != io.EOF {
				it.err = err
			}
			it.done = true
			return false
		}
		if null {
			raw[i] = Cell{Null: true}
		} else {
			raw[i] = Cell{Value: v + it.xoffset}
		}
	}

	if isAllZero(raw, it.xoffset) {
		if it.read != it.r.Samples {
			it.r.log.Warning("unexpected end of data", "rows_read", it.read, "expected", it.r.Samples)
			it.r.Errs |= UnexpectedEOD
		}
		it.done = true
		return false
	}

	it.row = deriveRow(raw, it.cols)
	it.read++
	return true
}

// readSample reads one little-endian sample and reports whether it was
// the null sentinel, in which case it is not shifted by xoffset.
func (it *RowIter) readSample(n int) (value int32, null bool, err error) {
	var u uint32
	for i := 0; i < n; i++ {
		b, rerr := it.sc.ReadByte()
		if rerr != nil {
			return 0, false, rerr
		}
		u |= uint32(b) << (8 * i)
	}
	if u == NullSentinel {
		return 0, true, nil
	}
	return int32(u), false, nil
}

// isAllZero reports whether every recorded series is present (non-null)
// and decoded to exactly xoffset, i.e. a raw zero before shifting: the
// device's end-of-data marker. A row containing any null cell can never
// be the end marker, matching the original's strict list equality.
func isAllZero(raw []Cell, xoffset int32) bool {
	for _, c := range raw {
		if c.Null || c.Value != xoffset {
			return false
		}
	}
	return true
}

// deriveRow builds the output row: I, II, III, aVR, aVL, aVF from the
// recorded leads II and III (raw[0], raw[1]) via the Einthoven and
// Goldberger formulas, followed by any remaining recorded series,
// truncated to cols entries. The formulas operate on the xoffset-shifted
// values, not the raw device readings, matching the original tool.
func deriveRow(raw []Cell, cols int) Row {
	leadII, leadIII := raw[0], raw[1]

	var i, avr, avl, avf Cell
	if leadII.Null || leadIII.Null {
		i, avr, avl, avf = Cell{Null: true}, Cell{Null: true}, Cell{Null: true}, Cell{Null: true}
	} else {
		ii, iii := leadII.Value, leadIII.Value
		i = Cell{Value: ii - iii}
		avr = Cell{Value: iii/2 - ii}
		avl = Cell{Value: ii/2 - iii}
		avf = Cell{Value: (ii + iii) / 2}
	}

	out := make(Row, 0, len(raw)+4)
	out = append(out, i, leadII, leadIII, avr, avl, avf)
	out = append(out, raw[2:]...)
	if cols >= 0 && cols < len(out) {
		out = out[:cols]
	}
	return out
}

// Row returns the most recently decoded row.
func (it *RowIter) Row() Row { return it.row }

// Err returns any I/O error that stopped iteration early. A normal
// end-of-data condition (all-zero row) is not an error.
func (it *RowIter) Err() error { return it.err }

// Close releases the iterator's file handle.
func (it *RowIter) Close() error { return it.f.Close() }
