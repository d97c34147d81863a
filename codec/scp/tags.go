/*
NAME
  tags.go

DESCRIPTION
  tags.go holds the Section #1 (patient data) tag identifiers and the
  small enumerations (sex, age unit, weight unit, rhythm encoding) used
  by the patient-data and rhythm-data sections.

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

import "fmt"

// Section #1 tag identifiers. The builder (§4.4) only emits a subset of
// these; the full table is carried so the reader helpers (§4.7) can label
// and parse any conformant SCP-ECG Section #1, not just ones this encoder
// produced.
const (
	TagPatientLastName      = 0
	TagPatientFirstName     = 1
	TagPatientID            = 2
	TagPatientSecondLast    = 3
	TagPatientAge           = 4
	TagPatientDateOfBirth   = 5
	TagPatientSex           = 8
	TagDrugs                = 10
	TagDiagIndication       = 13
	TagAcqDevID             = 14
	TagAnalyzDevID          = 15
	TagAcqInstDesc          = 16
	TagAnalyzInstDesc       = 17
	TagAcqDeptDesc          = 18
	TagAnalyzDeptDesc       = 19
	TagRefPhysician         = 20
	TagLatestPhysician      = 21
	TagTechnicianDesc       = 22
	TagRoomDesc             = 23
	TagDateAcq              = 25
	TagTimeAcq              = 26
	TagFreeText             = 30
	TagECGSeqNum            = 31
	TagHistDiagCodes        = 32
	TagDateTimeZone         = 34
	TagTextMedHist          = 35
	TagEOF                  = 255

	// TagPatientHeight and TagPatientWeight are absent from the Python
	// reference's own TAG table (a gap in ecg_scp.py: TAG_PATIENT_WEIGHT is
	// referenced by ecg_contec.py's Section #1 builder but never assigned a
	// value there). ANSI/AAMI EC71:2001 defines them as tags 6 and 7
	// respectively, immediately after PatientDateOfBirth; used here so the
	// weight field the device header carries round-trips into Section #1.
	TagPatientHeight = 6
	TagPatientWeight = 7
)

// tagNames labels each known tag for human inspection, carried from the
// original tool's TAG dict.
var tagNames = map[uint8]string{
	TagPatientLastName:   "Patient Last Name",
	TagPatientFirstName:  "Patient First Name",
	TagPatientID:         "Patient ID",
	TagPatientSecondLast: "Second Last Name",
	TagPatientAge:        "Patient Age",
	TagPatientDateOfBirth: "Patient Date of Birth",
	TagPatientHeight:     "Patient Height",
	TagPatientWeight:     "Patient Weight",
	TagPatientSex:        "Patient Sex",
	TagDrugs:             "Drugs",
	TagDiagIndication:    "Diagnosis or Referral Indication",
	TagAcqDevID:          "Acquiring Device Id",
	TagAnalyzDevID:       "Analyzing Device Id",
	TagAcqInstDesc:       "Acquiring Institution Description",
	TagAnalyzInstDesc:    "Analyzing Institution Description",
	TagAcqDeptDesc:       "Acquiring Department Description",
	TagAnalyzDeptDesc:    "Analyzing Department Description",
	TagRefPhysician:      "Referring Physician",
	TagLatestPhysician:   "Latest Confirming Physician",
	TagTechnicianDesc:    "Technician Description",
	TagRoomDesc:          "Room Description",
	TagDateAcq:           "Date of Acquisition",
	TagTimeAcq:           "Time of Acquisition",
	TagFreeText:          "Free Text",
	TagECGSeqNum:         "ECG Sequence Number",
	TagHistDiagCodes:     "History diagnostic codes",
	TagDateTimeZone:      "Date Time Zone",
	TagTextMedHist:       "Free-text Medical History",
	TagEOF:               "End of section",
}

// TagName returns the human label of tag, or a fallback for unknown tags.
func TagName(tag uint8) string {
	if name, ok := tagNames[tag]; ok {
		return name
	}
	return fmt.Sprintf("Unknown %d", tag)
}

// Patient sex codes (Section #1, tag 8).
const (
	SexUnknown     = 0
	SexMale        = 1
	SexFemale      = 2
	SexUnspecified = 9
)

var sexNames = map[uint8]string{
	SexUnknown:     "Not Known",
	SexMale:        "Male",
	SexFemale:      "Female",
	SexUnspecified: "Unspecified",
}

// SexName returns the human label of an SCP-ECG sex code.
func SexName(code uint8) string {
	if name, ok := sexNames[code]; ok {
		return name
	}
	return fmt.Sprintf("Invalid %d", code)
}

// Patient age units (Section #1, tag 4).
const (
	AgeUnspecified = 0
	AgeYears       = 1
	AgeMonths      = 2
	AgeWeeks       = 3
	AgeDays        = 4
	AgeHours       = 5
)

var ageUnitNames = map[uint8]string{
	AgeUnspecified: "Unspecified",
	AgeYears:       "Years",
	AgeMonths:      "Months",
	AgeWeeks:       "Weeks",
	AgeDays:        "Days",
	AgeHours:       "Hours",
}

// Patient weight units, matching the age encoding's shape (§4.4).
const (
	WeightUnspecified = 0
	WeightKilogram    = 1
)

// Rhythm data encodings (Section #6, §4.5, §4.6).
const (
	EncodingReal        = 0
	EncodingFirstDiff   = 1
	EncodingSecondDiff  = 2
)

var encodingNames = map[uint8]string{
	EncodingReal:       "Real (zero difference)",
	EncodingFirstDiff:  "First difference",
	EncodingSecondDiff: "Second difference",
}

// EncodingName returns the human label of a Section #6 encoding byte.
func EncodingName(e uint8) string {
	if name, ok := encodingNames[e]; ok {
		return name
	}
	return fmt.Sprintf("Unknown encoding %d", e)
}

const (
	BimodalCompressionFalse = 0
	BimodalCompressionTrue  = 1
)

// DefaultHuffmanTable is the table-id value SCP-ECG readers use to mean
// "the default Huffman table" when a record declares compressed rhythm
// data (Section #2). This module never writes compressed records but
// carries the constant for inspection tooling.
const DefaultHuffmanTable = 19999
