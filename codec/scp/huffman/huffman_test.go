/*
NAME
  huffman_test.go

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package huffman

import (
	"reflect"
	"testing"
)

// packBits packs an MSB-first bitstring (e.g. "0100101") into bytes,
// zero-padding the final byte, mirroring how a real SCP-ECG rhythm
// stream ends mid-byte.
func packBits(bits string) []byte {
	var out []byte
	var cur byte
	var n int
	for _, c := range bits {
		cur <<= 1
		if c == '1' {
			cur |= 1
		}
		n++
		if n == 8 {
			out = append(out, cur)
			cur, n = 0, 0
		}
	}
	if n > 0 {
		cur <<= uint(8 - n)
		out = append(out, cur)
	}
	return out
}

func TestDecodeEmpty(t *testing.T) {
	got, err := Decode(nil)
	if err != nil {
		t.Fatalf("Decode(nil): %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Decode(nil) = %v, want empty", got)
	}
}

func TestDecodeSingleZeroBit(t *testing.T) {
	// A lone "0" bit only exists zero-padded to a full byte at the
	// Decode([]byte) API boundary, so 0x00 actually yields eight zero
	// symbols (one per bit), not one. The first decoded symbol is still
	// the single value spec.md's invariant names.
	got, err := Decode([]byte{0x00})
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(got) == 0 || got[0] != 0 {
		t.Errorf("Decode([0x00])[0] = %v, want 0", got)
	}
}

// TestDecodeDefaultTableVectors checks spec.md's S3 bitstring against a
// prefix of the decode, not the full decode. A single "0" bit is itself
// a complete, valid default-table code (value 0), so zero-padding the
// real bitstream out to a byte boundary unavoidably manufactures extra
// trailing zero symbols that were never part of the encoded signal;
// this is a property of the encoding, not a decoder bug, and the
// original Python reference exhibits the same artifact.
func TestDecodeDefaultTableVectors(t *testing.T) {
	data := packBits("0" + "100" + "101" + "1100" + "1101")
	got, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	want := []int32{0, 1, -1, 2, -2}
	if len(got) < len(want) || !reflect.DeepEqual(got[:len(want)], want) {
		t.Errorf("Decode() = %v, want prefix %v", got, want)
	}
}

func TestDecode8BitEscape(t *testing.T) {
	data := packBits("1111111110" + "00000101")
	got, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	want := []int32{5}
	if len(got) < 1 || got[0] != want[0] {
		t.Errorf("Decode() = %v, want prefix %v", got, want)
	}
}

func TestDecode16BitEscapeNegative(t *testing.T) {
	// escape16 followed by the two's-complement encoding of -300.
	data := packBits("1111111111" + "1111111011010100")
	got, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(got) < 1 || got[0] != -300 {
		t.Errorf("Decode()[0] = %v, want -300", got)
	}
}

func TestDecodeMalformedTruncatedLiteral(t *testing.T) {
	// escape8 with no literal bits following it at all.
	data := packBits("1111111110")
	_, err := Decode(data)
	if err != ErrMalformed {
		t.Errorf("Decode() error = %v, want ErrMalformed", err)
	}
}
