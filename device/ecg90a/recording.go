/*
NAME
  recording.go

DESCRIPTION
  recording.go opens a Contec ECG90A device file, parses its fixed-width
  header, and derives the metadata (sample count, duration, timestamp)
  needed before any export can run (§4.1, §4.2).

AUTHOR
  Niccolo Rigacci <niccolo@rigacci.org> (original ecg_contec.py ecg.__init__)

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package ecg90a reads device files recorded by a Contec ECG90A
// electrocardiograph and exports them as CSV or SCP-ECG records.
package ecg90a

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ausocean/utils/logging"
)

// Fixed layout and sampling parameters of an ECG90A device file (§3).
const (
	HeaderLen = 43
	FooterLen = 37

	DefaultSampleRate  = 800
	DefaultDataSeries  = 8
	DefaultSampleBits  = 16
	DefaultXOffset     = -2048
	NullSentinel       = 0x6800
	DatetimeLayout     = "2006-01-02 15:04:05"
	DefaultCSVColumns  = 12
)

// Patient sex codes as stored in the device header.
const (
	SexFemale  uint8 = 0
	SexMale    uint8 = 1
	SexUnknown uint8 = 255
)

// SexLabel returns the human-readable label for a device sex code.
func SexLabel(code uint8) string {
	switch code {
	case SexFemale:
		return "F"
	case SexMale:
		return "M"
	case SexUnknown:
		return "Unknown"
	default:
		return fmt.Sprintf("Unknown code %d", code)
	}
}

// Recording holds the parsed header and derived metadata of one ECG90A
// device file. Construction never fails outright: conditions that would
// once have aborted parsing instead raise a bit in Errs, and callers are
// expected to check Errs before exporting (§7).
type Recording struct {
	log  logging.Logger
	path string

	SampleRate int
	DataSeries int
	SampleBits int

	FileSize      int64
	FileModTime   time.Time
	PayloadLen    int64
	Samples       int64
	Duration      time.Duration

	CaseID      string
	PatientName string
	PatientSex  uint8
	PatientAge  uint8
	PatientKg   uint8
	Timestamp   time.Time

	Errs ErrorFlags
}

// Option configures a Recording's acquisition parameters away from the
// ECG90A defaults.
type Option func(*Recording)

// WithSampleRate overrides the default 800Hz sample rate.
func WithSampleRate(hz int) Option { return func(r *Recording) { r.SampleRate = hz } }

// WithDataSeries overrides the default count of 8 recorded data series.
func WithDataSeries(n int) Option { return func(r *Recording) { r.DataSeries = n } }

// WithSampleBits overrides the default 16-bit sample width.
func WithSampleBits(n int) Option { return func(r *Recording) { r.SampleBits = n } }

// Open parses the device file at path and returns a Recording. The
// returned Recording is always non-nil; inspect its Errs field to learn
// whether it's safe to export.
func Open(l logging.Logger, path string, opts ...Option) *Recording {
	r := &Recording{
		log:        l,
		path:       path,
		SampleRate: DefaultSampleRate,
		DataSeries: DefaultDataSeries,
		SampleBits: DefaultSampleBits,
	}
	for _, opt := range opts {
		opt(r)
	}

	info, err := os.Stat(path)
	if err != nil {
		l.Error("input file does not exist", "path", path, "error", err.Error())
		r.Errs |= FileMissing
		return r
	}
	if r.SampleBits%8 != 0 {
		l.Error("sample_bits is not a multiple of 8", "bits", r.SampleBits)
		r.Errs |= HeaderInvalid
		return r
	}

	r.FileSize = info.Size()
	r.FileModTime = info.ModTime()
	r.PayloadLen = r.FileSize - HeaderLen - FooterLen
	bytesPerSample := int64(r.DataSeries * r.SampleBits / 8)
	if bytesPerSample <= 0 || r.PayloadLen%bytesPerSample != 0 {
		l.Error("file size mismatch", "file_size", r.FileSize, "header_len", HeaderLen,
			"footer_len", FooterLen, "payload_len", r.PayloadLen, "bytes_per_sample", bytesPerSample)
		r.Errs |= HeaderInvalid
		return r
	}
	r.Samples = r.PayloadLen / bytesPerSample
	r.Duration = time.Duration(float64(r.Samples) / float64(r.SampleRate) * float64(time.Second))

	f, err := os.Open(path)
	if err != nil {
		l.Error("error opening file header", "error", err.Error())
		r.Errs |= HeaderInvalid
		return r
	}
	defer f.Close()

	if err := r.readHeader(f); err != nil {
		l.Error("error reading file header", "error", err.Error())
		r.Errs |= HeaderInvalid
		return r
	}

	return r
}

// Byte offsets of the fixed-width fields within the 43-byte header.
const (
	hdrCaseOff      = 0
	hdrTimestampOff = 10
	hdrNameOff      = 32
	hdrSexOff       = 40
	hdrAgeOff       = 41
	hdrWeightOff    = 42
)

// readHeader parses the 43-byte header from the start of f.
func (r *Recording) readHeader(f *os.File) error {
	buf := make([]byte, HeaderLen)
	if _, err := io.ReadFull(f, buf); err != nil {
		return err
	}

	r.CaseID = asciiz(buf[hdrCaseOff : hdrCaseOff+8])
	r.PatientName = asciiz(buf[hdrNameOff : hdrNameOff+8])
	r.PatientSex = buf[hdrSexOff]
	r.PatientAge = buf[hdrAgeOff]
	r.PatientKg = buf[hdrWeightOff]

	rawTimestamp := asciiz(buf[hdrTimestampOff : hdrTimestampOff+20])
	t, err := time.ParseInLocation(DatetimeLayout, rawTimestamp, time.Local)
	if err != nil {
		fallback := r.FileModTime.Format(DatetimeLayout)
		r.log.Warning("bad time format, using file mtime instead", "raw", rawTimestamp, "fallback", fallback)
		r.Errs |= TimestampBad
		t, _ = time.ParseInLocation(DatetimeLayout, fallback, time.Local)
	}
	r.Timestamp = t

	return nil
}

// asciiz trims b at its first NUL byte and returns the remainder as a
// string, mirroring the device format's C-style fixed-width strings.
func asciiz(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}
