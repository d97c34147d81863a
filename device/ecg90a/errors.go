/*
NAME
  errors.go

DESCRIPTION
  errors.go defines the cumulative, non-fatal error bitset carried by a
  Recording (§7). Conditions accumulate rather than abort; exports
  are total functions that refuse to run once any bit is set.

AUTHOR
  Niccolo Rigacci <niccolo@rigacci.org> (original ecg_contec.py)

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package ecg90a

// ErrorFlags is an 8-bit-per-bit set of non-fatal conditions raised while
// reading or exporting a device recording (§7).
type ErrorFlags uint8

// Recognized error bits. Bit 0x20 is intentionally unassigned: the device
// format's error taxonomy has a gap there (spec.md's own bit list skips
// it), so it's left reserved rather than repurposed.
const (
	FileMissing      ErrorFlags = 0x01
	HeaderInvalid    ErrorFlags = 0x02
	ShortRead        ErrorFlags = 0x04
	UnexpectedEOD    ErrorFlags = 0x08
	OutputExists     ErrorFlags = 0x10
	TimestampBad     ErrorFlags = 0x40
	SamplesTruncated ErrorFlags = 0x80
)

var flagNames = []struct {
	bit  ErrorFlags
	name string
}{
	{FileMissing, "FILE_MISSING"},
	{HeaderInvalid, "HEADER_INVALID"},
	{ShortRead, "SHORT_READ"},
	{UnexpectedEOD, "UNEXPECTED_EOD"},
	{OutputExists, "OUTPUT_EXISTS"},
	{TimestampBad, "TIMESTAMP_BAD"},
	{SamplesTruncated, "SAMPLES_TRUNCATED"},
}

// String renders the set bits, space separated, or "OK" if none are set.
func (f ErrorFlags) String() string {
	if f == 0 {
		return "OK"
	}
	s := ""
	for _, fl := range flagNames {
		if f&fl.bit != 0 {
			if s != "" {
				s += " "
			}
			s += fl.name
		}
	}
	return s
}

// Has reports whether bit is set.
func (f ErrorFlags) Has(bit ErrorFlags) bool { return f&bit != 0 }
