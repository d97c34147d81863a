/*
NAME
  reader.go

DESCRIPTION
  reader.go implements the pure field parsers and section-header reader
  used by SCP-ECG inspection tooling (§4.7): dates, times, ages,
  machine-id blocks, tagged patient parameters, and CRC-checked section
  headers.

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
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// ParseDate converts a 4-byte SCP-ECG date (u16 year, u8 month, u8 day)
// into "YYYY-MM-DD". An out-of-range month or day is reported as a zero
// date rather than failing, matching the original tool's parse_date.
func ParseDate(b [4]byte) (s string, warn bool) {
	year := binary.LittleEndian.Uint16(b[0:2])
	month := b[2]
	day := b[3]
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return "0000-00-00", true
	}
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day), false
}

// ParseTime converts a 3-byte SCP-ECG time (u8 hour, u8 minute, u8 second)
// into "HH:MM:SS", with the same zeroing-on-invalid behaviour as ParseDate.
func ParseTime(b [3]byte) (s string, warn bool) {
	hour, minute, second := b[0], b[1], b[2]
	if hour > 23 || minute > 59 || second > 59 {
		return "00:00:00", true
	}
	return fmt.Sprintf("%02d:%02d:%02d", hour, minute, second), false
}

// ParseAge converts a 3-byte SCP-ECG age (u16 value, u8 unit) into a human
// string, e.g. "30 Years", or "Not specified" when both fields are zero.
func ParseAge(b [3]byte) string {
	age := binary.LittleEndian.Uint16(b[0:2])
	unit := b[2]
	name, ok := ageUnitNames[unit]
	if !ok {
		unit = AgeUnspecified
		name = ageUnitNames[AgeUnspecified]
	}
	if age == 0 && unit == AgeUnspecified {
		return "Not specified"
	}
	return fmt.Sprintf("%d %s", age, name)
}

// ParseMachineID converts the 38-byte Section #1 machine-id block into a
// human summary, matching the original tool's parse_machine_id.
func ParseMachineID(b []byte) (string, error) {
	if len(b) < 14 {
		return "", fmt.Errorf("scp: machine-id block too short: %d bytes", len(b))
	}
	institute := binary.LittleEndian.Uint16(b[1:3])
	department := binary.LittleEndian.Uint16(b[3:5])
	device := binary.LittleEndian.Uint16(b[5:7])
	devType := b[7]
	model := asciiz(b[8:14])
	return fmt.Sprintf("Inst. %d, Dept. %d, Dev. %d, Type %d, Model %q",
		institute, department, device, devType, model), nil
}

// asciiz returns the portion of b preceding the first NUL byte.
func asciiz(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		return string(b[:i])
	}
	return string(b)
}

// ReadSectionHeader reads the 16-byte header at offset within r and
// verifies its CRC against the payload that follows, per §3's
// "section_crc is CRC-HQX over the 14 bytes after the CRC plus the
// payload." A CRC mismatch is a hard error (§7): readers must not
// silently accept a corrupt section.
func ReadSectionHeader(r io.ReaderAt, offset int64) (SectionHeader, error) {
	var raw [SectionHeaderLen]byte
	if _, err := r.ReadAt(raw[:], offset); err != nil {
		return SectionHeader{}, fmt.Errorf("scp: read section header at %d: %w", offset, err)
	}
	h := SectionHeader{
		CRC:      binary.LittleEndian.Uint16(raw[0:2]),
		ID:       binary.LittleEndian.Uint16(raw[2:4]),
		Length:   binary.LittleEndian.Uint32(raw[4:8]),
		Version:  raw[8],
		Protocol: raw[9],
	}
	copy(h.Reserved[:], raw[10:16])

	if h.Length < 2 {
		return h, fmt.Errorf("scp: section %d has implausible length %d", h.ID, h.Length)
	}
	body := make([]byte, h.Length-2)
	if _, err := r.ReadAt(body, offset+2); err != nil {
		return h, fmt.Errorf("scp: read section %d body: %w", h.ID, err)
	}
	calc := CRCHQX(body, 0xFFFF)
	if calc != h.CRC {
		return h, errors.Wrapf(ErrCRCMismatch, "section %d: stored 0x%04X, computed 0x%04X", h.ID, h.CRC, calc)
	}
	return h, nil
}

// ErrCRCMismatch is returned, wrapped with context, when a section or
// record CRC fails verification. Per §7 this is always a hard error.
var ErrCRCMismatch = errors.New("scp: CRC mismatch")

// Parameter is a decoded Section #1 tagged field.
type Parameter struct {
	Tag      uint8
	TagLabel string
	Length   uint16
	Value    string
}

// ReadParameter reads one tagged field from Section #1's patient data and
// dispatches on tag to the appropriate parser (§4.7), matching the
// original's read_parameter.
func ReadParameter(r io.Reader) (Parameter, error) {
	var head [3]byte
	if _, err := io.ReadFull(r, head[:]); err != nil {
		return Parameter{}, fmt.Errorf("scp: read parameter tag: %w", err)
	}
	tag := head[0]
	length := binary.LittleEndian.Uint16(head[1:3])
	raw := make([]byte, length)
	if _, err := io.ReadFull(r, raw); err != nil {
		return Parameter{}, fmt.Errorf("scp: read parameter value: %w", err)
	}

	p := Parameter{Tag: tag, TagLabel: TagName(tag), Length: length}
	switch {
	case tag == TagDateAcq:
		var b [4]byte
		copy(b[:], raw)
		s, _ := ParseDate(b)
		p.Value = s
	case tag == TagPatientDateOfBirth:
		var b [4]byte
		copy(b[:], raw)
		s, _ := ParseDate(b)
		p.Value = s
	case tag == TagTimeAcq:
		var b [3]byte
		copy(b[:], raw)
		s, _ := ParseTime(b)
		p.Value = s
	case tag == TagPatientSex:
		if len(raw) >= 1 {
			p.Value = SexName(raw[0])
		}
	case tag == TagPatientAge:
		var b [3]byte
		copy(b[:], raw)
		p.Value = ParseAge(b)
	case tag == TagAcqDevID || tag == TagAnalyzDevID:
		s, err := ParseMachineID(raw)
		if err != nil {
			return Parameter{}, err
		}
		p.Value = s
	case isASCIIZTag(tag):
		p.Value = asciiz(raw)
	default:
		p.Value = fmt.Sprintf("% X", raw)
	}
	return p, nil
}

// isASCIIZTag reports whether tag holds a zero-terminated text value.
func isASCIIZTag(tag uint8) bool {
	switch tag {
	case TagPatientLastName, TagPatientFirstName, TagPatientID, TagPatientSecondLast,
		TagDiagIndication, TagAcqInstDesc, TagAnalyzInstDesc, TagAcqDeptDesc, TagAnalyzDeptDesc,
		TagRefPhysician, TagLatestPhysician, TagTechnicianDesc, TagRoomDesc, TagFreeText,
		TagECGSeqNum, TagTextMedHist:
		return true
	}
	return false
}

// DecodeRaw decodes a raw (ENCODING_REAL) rhythm payload into signed
// 16-bit samples, matching the original's raw_decoder. An odd trailing
// byte is dropped with a warning flag, returned via ok.
func DecodeRaw(data []byte) (samples []int16, ok bool) {
	n := len(data)
	ok = true
	if n%2 != 0 {
		n--
		ok = false
	}
	samples = make([]int16, 0, n/2)
	for i := 0; i < n; i += 2 {
		samples = append(samples, int16(binary.LittleEndian.Uint16(data[i:i+2])))
	}
	return samples, ok
}
