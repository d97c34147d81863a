/*
NAME
  huffman.go

DESCRIPTION
  huffman.go implements a bit-level streaming decoder for the SCP-ECG
  default Huffman table (§4.5): 19 prefix codes covering sample values
  0 and ±1..±8, plus two escape codes for raw 8-bit and 16-bit signed
  literals.

AUTHOR
  Niccolo Rigacci <niccolo@rigacci.org> (original tools/scp-ecg-parse/huffman.py)

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package huffman decodes SCP-ECG rhythm data encoded under the
// standard's default Huffman table into a signed sample stream.
package huffman

import (
	"bytes"
	"errors"
	"io"
	"math"

	"github.com/icza/bitio"
)

// escape8 and escape16 are the two default-table codes (length 10) that
// mean "the next 8 (or 16) bits are a raw signed literal", rather than a
// sample value. Real table values are only 0 and ±1..±8, so these
// sentinels sit far outside that range while still fitting in int32.
const (
	escape8  = math.MinInt32
	escape16 = math.MinInt32 + 1
)

// code is one entry of the default Huffman table: a bit length and the
// prefix value read MSB-first, mapping to either a sample value or one of
// the two escapes.
type code struct {
	length int
	prefix uint32
	value  int32
}

// defaultTable is the SCP-ECG standard's Table 1, 19 entries, read
// MSB-first (§4.5).
var defaultTable = []code{
	{1, 0b0, 0},
	{3, 0b100, 1},
	{3, 0b101, -1},
	{4, 0b1100, 2},
	{4, 0b1101, -2},
	{5, 0b11100, 3},
	{5, 0b11101, -3},
	{6, 0b111100, 4},
	{6, 0b111101, -4},
	{7, 0b1111100, 5},
	{7, 0b1111101, -5},
	{8, 0b11111100, 6},
	{8, 0b11111101, -6},
	{9, 0b111111100, 7},
	{9, 0b111111101, -7},
	{10, 0b1111111100, 8},
	{10, 0b1111111101, -8},
	{10, 0b1111111110, escape8},
	{10, 0b1111111111, escape16},
}

// lookup finds the table entry with the given bit length and prefix, if
// one exists.
func lookup(length int, prefix uint32) (code, bool) {
	for _, c := range defaultTable {
		if c.length == length && c.prefix == prefix {
			return c, true
		}
	}
	return code{}, false
}

// ErrMalformed is returned when the stream ends mid-literal: a state the
// default table's escapes leave genuinely unparseable (§4.5 "if in
// LITERAL state, the stream is malformed").
var ErrMalformed = errors.New("huffman: stream ended inside a literal escape")

// Decode decodes all Huffman-coded values in data and returns them as a
// signed sample stream. An unmatched trailing prefix (padding bits at the
// end of the last byte) is not an error — it is emitted as a warning by
// callers that care, per §4.5's end-of-stream handling — but a stream
// that ends mid-literal is ErrMalformed.
func Decode(data []byte) ([]int32, error) {
	return DecodeReader(bytes.NewReader(data))
}

// DecodeReader streams the decode from r, the same algorithm as Decode,
// for callers that don't want to buffer the whole input up front.
func DecodeReader(r io.Reader) ([]int32, error) {
	br := bitio.NewReader(r)

	var out []int32
	var prefix uint32
	var size int

	for {
		bit, err := br.ReadBits(1)
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			// Stream exhausted. An unmatched trailing prefix is padding,
			// not a hard error (§4.5).
			return out, nil
		}
		if err != nil {
			return out, err
		}
		prefix = prefix<<1 | uint32(bit)
		size++

		c, ok := lookup(size, prefix)
		if !ok {
			continue
		}

		switch c.value {
		case escape8:
			v, err := readLiteral(br, 8)
			if err != nil {
				return out, err
			}
			out = append(out, v)
		case escape16:
			v, err := readLiteral(br, 16)
			if err != nil {
				return out, err
			}
			out = append(out, v)
		default:
			out = append(out, c.value)
		}
		prefix, size = 0, 0
	}
}

// readLiteral reads n bits MSB-first and reinterprets them as a signed
// two's-complement integer of that width (§4.5, state LITERAL-N).
func readLiteral(br *bitio.Reader, n uint8) (int32, error) {
	u, err := br.ReadBits(n)
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return 0, ErrMalformed
	}
	if err != nil {
		return 0, err
	}
	switch n {
	case 8:
		return int32(int8(u)), nil
	case 16:
		return int32(int16(u)), nil
	default:
		panic("huffman: unsupported literal width")
	}
}
