/*
NAME
  builder.go

DESCRIPTION
  builder.go assembles a complete SCP-ECG record: Section #1 (patient
  data), Section #3 (lead definition), Section #6 (rhythm data), Section
  #0 (pointer table), and the outer record CRC and length (§4.4).

AUTHOR
  Niccolo Rigacci <niccolo@rigacci.org> (original ecg_contec.py export_scp)

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
	"time"
)

// AmplitudeNanovolt and SampleRateHz are ECG90A's fixed acquisition
// parameters (§3).
const (
	AmplitudeNanovolt = 5000
	SampleRateHz      = 800

	// maxSamplesPerLead is the largest sample count Section #6's 16-bit
	// byte-length field can address: floor(0xFFFF / 2) samples of 2 bytes
	// each (§4.4, invariant 9).
	maxSamplesPerLead = 0xFFFF / 2
)

// Patient holds the Section #1 fields sourced from the device header.
type Patient struct {
	Name        string
	CaseID      string
	Sex         uint8 // raw device code: 0=F, 1=M, 255=unknown.
	Age         uint8
	WeightKg    uint8
	AcquiredAt  time.Time
	DeviceModel string
}

// BuildInput is everything the builder needs to assemble a record.
type BuildInput struct {
	Patient      Patient
	TotalSamples uint32
	Rows         []Row // len(Rows) == TotalSamples, in ECG90ALeads column order.
}

// BuildResult is the encoded record plus any non-fatal conditions raised
// while building it.
type BuildResult struct {
	Record    []byte
	Truncated bool // set when rhythm data exceeded maxSamplesPerLead (§4.4).
}

// Build assembles a complete SCP-ECG record from in, per §4.4.
func Build(in BuildInput) BuildResult {
	s1 := buildSection1(in.Patient)
	s3 := buildSection3(in.TotalSamples)
	s6, truncated := buildSection6(in.Rows)

	sections := map[uint16][]byte{1: s1, 3: s3, 6: s6}
	s0 := buildSection0(sections)

	order := []uint16{0, 1, 3, 6}
	var body []byte
	for _, id := range order {
		payload := s0
		if id != 0 {
			payload = sections[id]
		}
		if len(payload) == 0 {
			continue
		}
		body = append(body, PackSection(id, payload)...)
	}

	record := make([]byte, RecordHeaderLen+len(body))
	binary.LittleEndian.PutUint32(record[2:6], uint32(RecordHeaderLen+len(body)))
	copy(record[6:], body)
	crc := CRCHQX(record[2:], 0xFFFF)
	binary.LittleEndian.PutUint16(record[0:2], crc)

	return BuildResult{Record: record, Truncated: truncated}
}

// buildSection1 packs the patient-data tags, in the order spec.md §4.4
// names: PatientID, ECGSeqNum, LastName, Sex, Weight, Age, DateAcq,
// TimeAcq, AcqDevID, EOF.
func buildSection1(p Patient) []byte {
	var buf []byte
	tag := func(t uint8, v []byte) {
		head := make([]byte, 3)
		head[0] = t
		binary.LittleEndian.PutUint16(head[1:3], uint16(len(v)))
		buf = append(buf, head...)
		buf = append(buf, v...)
	}
	asciizBytes := func(s string) []byte { return append([]byte(s), 0) }

	var sex uint8
	switch p.Sex {
	case 1:
		sex = SexMale
	case 0:
		sex = SexFemale
	default:
		sex = SexUnknown
	}

	weightUnit := uint8(WeightUnspecified)
	if p.WeightKg != 0 {
		weightUnit = WeightKilogram
	}
	ageUnit := uint8(AgeUnspecified)
	if p.Age != 0 {
		ageUnit = AgeYears
	}

	tag(TagPatientID, asciizBytes(p.Name))
	tag(TagECGSeqNum, asciizBytes(p.CaseID))
	tag(TagPatientLastName, asciizBytes(p.Name))
	tag(TagPatientSex, []byte{sex})
	tag(TagPatientWeight, packValueUnit(uint16(p.WeightKg), weightUnit))
	tag(TagPatientAge, packValueUnit(uint16(p.Age), ageUnit))
	tag(TagDateAcq, packDate(p.AcquiredAt))
	tag(TagTimeAcq, packTime(p.AcquiredAt))
	tag(TagAcqDevID, packMachineID(p.DeviceModel))
	tag(TagEOF, nil)
	return buf
}

// packValueUnit encodes the u16 value || u8 unit shape shared by the age
// and weight tags (§4.4).
func packValueUnit(value uint16, unit uint8) []byte {
	b := make([]byte, 3)
	binary.LittleEndian.PutUint16(b[0:2], value)
	b[2] = unit
	return b
}

// packDate encodes a date as u16 year || u8 month || u8 day.
func packDate(t time.Time) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint16(b[0:2], uint16(t.Year()))
	b[2] = byte(t.Month())
	b[3] = byte(t.Day())
	return b
}

// packTime encodes a time as u8 hour || u8 minute || u8 second.
func packTime(t time.Time) []byte {
	return []byte{byte(t.Hour()), byte(t.Minute()), byte(t.Second())}
}

// packMachineID builds the 38-byte machine-id block: 8 zero bytes, then
// the first 5 bytes of model plus a NUL, then 24 zero bytes (§4.4).
func packMachineID(model string) []byte {
	b := make([]byte, 38)
	name := []byte(model)
	if len(name) > 5 {
		name = name[:5]
	}
	copy(b[8:8+len(name)], name)
	return b
}

// buildSection3 packs the lead-definition table for the 12 standard
// ECG90A leads (§4.4).
func buildSection3(totalSamples uint32) []byte {
	leadsNumber := uint8(len(ECG90ALeads))
	flags := byte(AllSimultaneousRead) | (leadsNumber << 3)

	buf := make([]byte, 0, 2+9*int(leadsNumber))
	buf = append(buf, leadsNumber, flags)
	for _, id := range ECG90ALeads {
		entry := make([]byte, 9)
		binary.LittleEndian.PutUint32(entry[0:4], 1)
		binary.LittleEndian.PutUint32(entry[4:8], totalSamples)
		entry[8] = id
		buf = append(buf, entry...)
	}
	return buf
}

// buildSection6 packs the rhythm data: header fields plus each lead's
// samples, little-endian signed 16-bit, null cells written as 0 (§4.4).
// Samples per lead are capped at maxSamplesPerLead; exceeding it sets
// truncated.
func buildSection6(rows []Row) (payload []byte, truncated bool) {
	leadsNumber := len(ECG90ALeads)
	sampleIntervalUs := uint16(1_000_000 / SampleRateHz)

	n := len(rows)
	if n > maxSamplesPerLead {
		n = maxSamplesPerLead
		truncated = true
	}
	bytesPerLead := uint16(n * 2)

	header := make([]byte, 6)
	binary.LittleEndian.PutUint16(header[0:2], AmplitudeNanovolt)
	binary.LittleEndian.PutUint16(header[2:4], sampleIntervalUs)
	header[4] = EncodingReal
	header[5] = BimodalCompressionFalse
	payload = append(payload, header...)

	lenField := make([]byte, 2*leadsNumber)
	for i := 0; i < leadsNumber; i++ {
		binary.LittleEndian.PutUint16(lenField[i*2:i*2+2], bytesPerLead)
	}
	payload = append(payload, lenField...)

	for lead := 0; lead < leadsNumber; lead++ {
		series := make([]byte, n*2)
		for i := 0; i < n; i++ {
			v := rows[i][lead]
			var val int16
			if !v.Null {
				val = int16(v.Value)
			}
			binary.LittleEndian.PutUint16(series[i*2:i*2+2], uint16(val))
		}
		payload = append(payload, series...)
	}
	return payload, truncated
}

// buildSection0 lays out the pointer table. The index accumulator is
// updated for every id 1..11, but an absent (empty) section contributes a
// length of 0, so only present sections move it forward; absent entries
// carry length 0 and index 0.
func buildSection0(sections map[uint16][]byte) []byte {
	var buf []byte

	length0 := uint32(SectionHeaderLen + PointerFieldLen*MinPointerFields)
	index := uint32(RecordHeaderLen + 1)
	buf = append(buf, MakePointerField(0, length0, index)...)
	index += length0

	for id := uint16(1); id < MinPointerFields; id++ {
		length := uint32(len(sections[id]))
		if length > 0 {
			length += SectionHeaderLen
		}
		buf = append(buf, MakePointerField(id, length, index)...)
		index += length
	}
	return buf
}
