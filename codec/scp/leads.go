/*
NAME
  leads.go

DESCRIPTION
  leads.go holds the SCP-ECG standard lead numbering scheme (ANSI/AAMI
  EC71:2001) and the subset of it ECG90A recordings use.

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

// Standard 12-lead IDs (§4.4), the ones ECG90A recordings actually emit.
const (
	LeadI   = 1
	LeadII  = 2
	LeadV1  = 3
	LeadV2  = 4
	LeadV3  = 5
	LeadV4  = 6
	LeadV5  = 7
	LeadV6  = 8
	LeadIII = 61
	LeadAVR = 62
	LeadAVL = 63
	LeadAVF = 64
)

// ECG90ALeads lists the lead IDs in the column order this device's row
// iterator produces: I, II, III, aVR, aVL, aVF, V1..V6.
var ECG90ALeads = [12]uint8{
	LeadI, LeadII, LeadIII, LeadAVR, LeadAVL, LeadAVF,
	LeadV1, LeadV2, LeadV3, LeadV4, LeadV5, LeadV6,
}

// leadNames is the full SCP-ECG lead name table, carried from the original
// tool's LEAD dict for the reader side: it lets inspection tooling label
// any conformant Section #3 entry, including calibration leads this
// encoder never emits.
var leadNames = map[uint8]string{
	1: "I", 2: "II", 3: "V1", 4: "V2", 5: "V3", 6: "V4", 7: "V5", 8: "V6",
	9: "V7", 10: "V2R", 11: "V3R", 12: "V4R", 13: "V5R", 14: "V6R", 15: "V7R",
	16: "X", 17: "Y", 18: "Z", 19: "CC5", 20: "CM5",
	21: "LA", 22: "RA", 23: "LL", 24: "I", 25: "E", 26: "C", 27: "A", 28: "M", 29: "F", 30: "H",
	31: "I-cal", 32: "II-cal", 33: "V1-cal", 34: "V2-cal", 35: "V3-cal", 36: "V4-cal",
	37: "V5-cal", 38: "V6-cal", 39: "V7-cal", 40: "V2R-cal", 41: "V3R-cal", 42: "V4R-cal",
	43: "V5R-cal", 44: "V6R-cal", 45: "V7R-cal", 46: "X-cal", 47: "Y-cal", 48: "Z-cal",
	49: "CC5-cal", 50: "CM5-cal", 51: "Left Arm-cal", 52: "Right Arm-cal", 53: "Left Leg-cal",
	54: "I-cal", 55: "E-cal", 56: "C-cal", 57: "A-cal", 58: "M-cal", 59: "F-cal", 60: "H-cal",
	61: "III", 62: "aVR", 63: "aVL", 64: "aVF",
}

// LeadName returns the human name of lead id, or a fallback label for
// unrecognized ids.
func LeadName(id uint8) string {
	if name, ok := leadNames[id]; ok {
		return name
	}
	return fmt.Sprintf("Unknown lead %d", id)
}

// AllSimultaneousRead is the Section #3 flags bit meaning every lead was
// sampled simultaneously (§4.4).
const AllSimultaneousRead = 0b100

// LeadDef is one 9-byte entry of Section #3's lead definition table.
type LeadDef struct {
	StartSample uint32
	EndSample   uint32
	LeadID      uint8
}
