/*
NAME
  section.go

DESCRIPTION
  section.go implements the SCP-ECG section header: the 16-byte
  CRC+id+length+version+protocol+reserved prefix that precedes every
  section payload, and the record-level pointer table held in Section #0.

AUTHOR
  Niccolo Rigacci <niccolo@rigacci.org> (original ecg_scp.py)

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package scp

import (
	"encoding/binary"
	"fmt"
)

// Fixed layout sizes (§3, §4.4).
const (
	RecordHeaderLen  = 6  // u16 record_crc || u32 record_size
	SectionHeaderLen = 16 // u16 crc || u16 id || u32 length || u8 version || u8 protocol || 6 reserved
	PointerFieldLen  = 10 // u16 id || u32 length || u32 index
	MinPointerFields = 12 // ids 0..11, Section #0 always carries at least this many.

	sectionVersion  = 0x14
	sectionProtocol = 0x14
)

// reservedMagic is the Section #0 reserved field; every other section's
// reserved field is six zero bytes.
var reservedMagic = [6]byte{'S', 'C', 'P', 'E', 'C', 'G'}

// SectionHeader is the fixed 16-byte prefix of every SCP-ECG section.
type SectionHeader struct {
	CRC      uint16
	ID       uint16
	Length   uint32 // includes this 16-byte header.
	Version  uint8
	Protocol uint8
	Reserved [6]byte
}

// String renders the header for human inspection, in the spirit of the
// original tool's print_section_header.
func (h SectionHeader) String() string {
	return fmt.Sprintf("section %d: crc=0x%04X length=%d version=0x%02X protocol=0x%02X",
		h.ID, h.CRC, h.Length, h.Version, h.Protocol)
}

// PackSection prepends a section header (with CRC) to payload, as
// pack_section in the original tool does. id 0 gets the "SCPECG" reserved
// magic; every other id gets six zero bytes.
func PackSection(id uint16, payload []byte) []byte {
	buf := make([]byte, SectionHeaderLen+len(payload))
	binary.LittleEndian.PutUint16(buf[2:4], id)
	binary.LittleEndian.PutUint32(buf[4:8], uint32(SectionHeaderLen+len(payload)))
	buf[8] = sectionVersion
	buf[9] = sectionProtocol
	if id == 0 {
		copy(buf[10:16], reservedMagic[:])
	}
	copy(buf[16:], payload)
	crc := CRCHQX(buf[2:], 0xFFFF)
	binary.LittleEndian.PutUint16(buf[0:2], crc)
	return buf
}

// PointerEntry is one 10-byte row of Section #0's pointer table.
type PointerEntry struct {
	ID     uint16
	Length uint32
	Index  uint32 // 1-based byte offset of the section within the record, 0 if absent.
}

// MakePointerField packs one PointerEntry, matching make_pointer_field's
// rule that an absent section (length 0) always carries index 0 regardless
// of the accumulator passed in.
func MakePointerField(id uint16, length, index uint32) []byte {
	if length == 0 {
		index = 0
	}
	buf := make([]byte, PointerFieldLen)
	binary.LittleEndian.PutUint16(buf[0:2], id)
	binary.LittleEndian.PutUint32(buf[2:6], length)
	binary.LittleEndian.PutUint32(buf[6:10], index)
	return buf
}
