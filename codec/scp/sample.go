/*
NAME
  sample.go

DESCRIPTION
  sample.go defines the null-aware sample type the SCP-ECG builder
  consumes, decoupling it from any particular device reader (§9
  "Rearchitecting source patterns": a tagged value replaces a dual-use
  signed/None cell).

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package scp

// Sample is one lead value, either a signed reading or an explicit null.
type Sample struct {
	Value int32
	Null  bool
}

// IntSample returns a non-null Sample holding v.
func IntSample(v int32) Sample { return Sample{Value: v} }

// NullSample returns the null sentinel Sample.
func NullSample() Sample { return Sample{Null: true} }

// Row is one time-aligned sample across the 12 standard leads, in the
// order I, II, III, aVR, aVL, aVF, V1..V6, matching ECG90ALeads.
type Row [12]Sample
