/*
NAME
  rows_test.go

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package ecg90a

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestDeriveRow checks the Einthoven/Goldberger derivation against the
// original tool's formulas, hand-verified independently of spec.md's own
// worked example: its S1 numbers are internally inconsistent (computing
// lead I as II-III gives 60 for both of its sample rows, yet it prints
// 60 then 70), the same kind of authoring slip already documented for
// the second-difference worked example. These fixtures are derived
// directly from the formulas instead.
func TestDeriveRow(t *testing.T) {
	raw := []Cell{
		{Value: 100}, {Value: 40}, // II, III
		{Value: 0}, {Value: 0}, {Value: 0}, {Value: 0}, {Value: 0}, {Value: 0},
	}
	got := deriveRow(raw, 6)
	want := Row{
		{Value: 60},  // I = II - III = 100 - 40
		{Value: 100}, // II
		{Value: 40},  // III
		{Value: -80}, // aVR = III/2 - II = 20 - 100
		{Value: 10},  // aVL = II/2 - III = 50 - 40
		{Value: 70},  // aVF = (II + III) / 2 = 140 / 2
	}
	if !cmp.Equal(got, want) {
		t.Errorf("deriveRow() mismatch (-got +want):\n%s", cmp.Diff(got, want))
	}
}

func TestDeriveRowNullPropagation(t *testing.T) {
	raw := []Cell{
		{Null: true}, {Value: 40},
		{Value: 0}, {Value: 0}, {Value: 0}, {Value: 0}, {Value: 0}, {Value: 0},
	}
	got := deriveRow(raw, 6)
	for _, lead := range []Cell{got[0], got[3], got[4], got[5]} {
		if !lead.Null {
			t.Errorf("expected derived lead to be null when II is null, got %+v", lead)
		}
	}
	if got[2].Null || got[2].Value != 40 {
		t.Errorf("lead III should pass through unaffected, got %+v", got[2])
	}
}

func TestIsAllZero(t *testing.T) {
	zero := []Cell{{Value: 0}, {Value: 0}, {Value: 0}, {Value: 0}, {Value: 0}, {Value: 0}, {Value: 0}, {Value: 0}}
	if !isAllZero(zero, 0) {
		t.Error("expected all-zero row to be detected")
	}

	withNull := []Cell{{Null: true}, {Value: 0}, {Value: 0}, {Value: 0}, {Value: 0}, {Value: 0}, {Value: 0}, {Value: 0}}
	if isAllZero(withNull, 0) {
		t.Error("a row containing a null cell must never count as the end-of-data marker")
	}

	nonZero := []Cell{{Value: 1}, {Value: 0}, {Value: 0}, {Value: 0}, {Value: 0}, {Value: 0}, {Value: 0}, {Value: 0}}
	if isAllZero(nonZero, 0) {
		t.Error("a row with any non-zero sample must not be the end-of-data marker")
	}
}
