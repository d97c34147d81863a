/*
NAME
  seconddiff.go

DESCRIPTION
  seconddiff.go implements the stateful accumulator that turns a
  second-difference encoded rhythm stream back into sample values (§4.6).

AUTHOR
  Niccolo Rigacci <niccolo@rigacci.org> (original ecg_scp.py second_diff)

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package seconddiff reconstructs a sample sequence from a stream of
// second differences, for SCP-ECG rhythm data encoded under
// ENCODING_SECOND_DIFF.
package seconddiff

// State is a running accumulator fed one second-difference value at a
// time. The zero value is ready to use.
//
// Its first two inputs are special cases (§4.6, §9.4): the first value
// emitted is the input itself, and the second input only initializes the
// first-difference register rather than being integrated. From the third
// input onward it behaves as a standard double accumulator: d1 += d2,
// v += d1.
type State struct {
	started  bool
	haveDiff bool
	value    int32
	diff1    int32
}

// Next feeds one second-difference value and returns the reconstructed
// sample.
func (s *State) Next(d2 int32) int32 {
	if !s.started {
		s.started = true
		s.value = d2
		return d2
	}
	if !s.haveDiff {
		s.diff1 = d2 - s.value
		s.value = d2
		s.haveDiff = true
		return d2
	}
	s.diff1 += d2
	s.value += s.diff1
	return s.value
}

// Decode reconstructs an entire sequence from a slice of second
// differences, starting from a fresh State.
func Decode(diffs []int32) []int32 {
	var s State
	out := make([]int32, len(diffs))
	for i, d := range diffs {
		out[i] = s.Next(d)
	}
	return out
}
