/*
NAME
  section_test.go

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package scp

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func TestPackSectionRoundTrip(t *testing.T) {
	payload := []byte{0xAA, 0xBB, 0xCC, 0xDD}
	buf := PackSection(3, payload)

	if len(buf) != SectionHeaderLen+len(payload) {
		t.Fatalf("length = %d, want %d", len(buf), SectionHeaderLen+len(payload))
	}
	if id := binary.LittleEndian.Uint16(buf[2:4]); id != 3 {
		t.Errorf("id = %d, want 3", id)
	}
	if length := binary.LittleEndian.Uint32(buf[4:8]); length != uint32(len(buf)) {
		t.Errorf("length field = %d, want %d", length, len(buf))
	}
	if !bytes.Equal(buf[16:], payload) {
		t.Errorf("payload = % X, want % X", buf[16:], payload)
	}

	wantCRC := CRCHQX(buf[2:], 0xFFFF)
	gotCRC := binary.LittleEndian.Uint16(buf[0:2])
	if gotCRC != wantCRC {
		t.Errorf("stored CRC = 0x%04X, want 0x%04X", gotCRC, wantCRC)
	}

	// ReadSectionHeader must accept what PackSection produced.
	h, err := ReadSectionHeader(bytes.NewReader(buf), 0)
	if err != nil {
		t.Fatalf("ReadSectionHeader: %v", err)
	}
	if h.ID != 3 || h.Length != uint32(len(buf)) {
		t.Errorf("header = %+v", h)
	}
}

func TestPackSectionZeroReservedForNonZero(t *testing.T) {
	buf := PackSection(1, nil)
	if !bytes.Equal(buf[10:16], make([]byte, 6)) {
		t.Errorf("reserved field for section 1 = % X, want zero", buf[10:16])
	}

	buf0 := PackSection(0, nil)
	if string(buf0[10:16]) != "SCPECG" {
		t.Errorf("reserved field for section 0 = %q, want %q", buf0[10:16], "SCPECG")
	}
}

func TestMakePointerFieldAbsentSectionIndexIsZero(t *testing.T) {
	buf := MakePointerField(5, 0, 9999)
	id := binary.LittleEndian.Uint16(buf[0:2])
	length := binary.LittleEndian.Uint32(buf[2:6])
	index := binary.LittleEndian.Uint32(buf[6:10])
	if id != 5 || length != 0 || index != 0 {
		t.Errorf("MakePointerField(5, 0, 9999) = id=%d length=%d index=%d, want id=5 length=0 index=0",
			id, length, index)
	}
}

func TestMakePointerFieldPresentSection(t *testing.T) {
	buf := MakePointerField(1, 100, 143)
	index := binary.LittleEndian.Uint32(buf[6:10])
	if index != 143 {
		t.Errorf("index = %d, want 143", index)
	}
}
