/*
NAME
  config.go

DESCRIPTION
  config.go holds the configuration surface for the ecg90a command:
  which input file to read, which outputs to write, and the formatting
  knobs each output honors (§4.2, §4.3, §4.4, §4.8).

AUTHOR
  Niccolo Rigacci <niccolo@rigacci.org> (original ecg_contec.py __main__ argparse options)

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package ecgconfig provides the configuration settings for the ecg90a
// command.
package ecgconfig

// Config provides the parameters relevant to one ecg90a invocation. A
// zero Config is not valid; use Defaults to obtain a usable baseline,
// then override the fields the caller wants to change.
type Config struct {
	// InputPath is the ECG90A device file to read. Required.
	InputPath string

	// CSVPath is the CSV export's target path; EmitCSV requests the
	// export. A blank CSVPath with EmitCSV set derives the path from
	// InputPath plus a ".csv" suffix.
	CSVPath string
	EmitCSV bool

	// SCPPath is the SCP-ECG export's target path; EmitSCP requests the
	// export. A blank SCPPath with EmitSCP set derives the path from
	// InputPath plus a ".scp" suffix.
	SCPPath string
	EmitSCP bool

	// Overwrite allows an export to replace an existing output file.
	Overwrite bool

	// AsMillivolt selects millivolt-scaled CSV output instead of raw
	// integer sample counts.
	AsMillivolt bool

	// NoneAsZero renders null cells as zero instead of an empty CSV
	// field.
	NoneAsZero bool

	// XOffset shifts every sampled value before CSV export, zero-centering
	// the device's raw counts by default. SCP-ECG export does not read it
	// and always applies the device default offset.
	XOffset int32

	// Columns caps the number of leads written per CSV row.
	Columns int

	// SampleRate, DataSeries and SampleBits override the ECG90A's fixed
	// acquisition parameters; almost never needed outside testing.
	SampleRate int
	DataSeries int
	SampleBits int
}

// ECG90A's fixed acquisition and framing parameters, also the defaults
// this config starts from (§3).
const (
	DefaultSampleRate = 800
	DefaultDataSeries = 8
	DefaultSampleBits = 16
	DefaultXOffset    = -2048
	DefaultColumns    = 12
)

// Defaults returns a Config with ECG90A's standard acquisition
// parameters and CSV formatting, emitting neither output until the
// caller sets InputPath and an Emit flag.
func Defaults() Config {
	return Config{
		XOffset:    DefaultXOffset,
		Columns:    DefaultColumns,
		SampleRate: DefaultSampleRate,
		DataSeries: DefaultDataSeries,
		SampleBits: DefaultSampleBits,
	}
}

// Validate reports any configuration combination that cannot produce a
// usable export: a missing input path, a non-positive column count, or
// a sample bit width that isn't a whole number of bytes.
func (c *Config) Validate() error {
	switch {
	case c.InputPath == "":
		return errInputPathRequired
	case c.Columns <= 0:
		return errColumnsInvalid
	case c.SampleBits%8 != 0:
		return errSampleBitsInvalid
	}
	return nil
}
