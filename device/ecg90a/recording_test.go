/*
NAME
  recording_test.go

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package ecg90a

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/ausocean/utils/logging"
)

// buildDeviceFile assembles a minimal, well-formed ECG90A device file:
// a 43-byte header, two real sample rows over 8 data series (only the
// first two, II and III, non-zero), an all-zero terminator row, and a
// 37-byte zero footer.
func buildDeviceFile(t *testing.T) string {
	t.Helper()

	header := make([]byte, HeaderLen)
	copy(header[0:8], "T1")
	copy(header[10:30], "2020-01-02 03:04:05")
	copy(header[32:40], "X")
	header[40] = 1  // sex: male
	header[41] = 30 // age
	header[42] = 70 // weight

	putRow := func(ii, iii uint16) []byte {
		row := make([]byte, 16) // 8 series * 2 bytes
		binary.LittleEndian.PutUint16(row[0:2], ii)
		binary.LittleEndian.PutUint16(row[2:4], iii)
		return row
	}

	var payload []byte
	payload = append(payload, putRow(100, 40)...)
	payload = append(payload, putRow(110, 50)...)
	payload = append(payload, putRow(0, 0)...) // terminator

	footer := make([]byte, FooterLen)

	path := filepath.Join(t.TempDir(), "sample.ecg")
	var data []byte
	data = append(data, header...)
	data = append(data, payload...)
	data = append(data, footer...)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("could not write test device file: %v", err)
	}
	return path
}

func TestOpenParsesHeader(t *testing.T) {
	path := buildDeviceFile(t)
	r := Open((*logging.TestLogger)(t), path)

	if r.Errs != 0 {
		t.Fatalf("Errs = %s, want OK", r.Errs)
	}
	if r.CaseID != "T1" {
		t.Errorf("CaseID = %q, want %q", r.CaseID, "T1")
	}
	if r.PatientName != "X" {
		t.Errorf("PatientName = %q, want %q", r.PatientName, "X")
	}
	if r.PatientSex != SexMale {
		t.Errorf("PatientSex = %d, want %d", r.PatientSex, SexMale)
	}
	if r.PatientAge != 30 {
		t.Errorf("PatientAge = %d, want 30", r.PatientAge)
	}
	if r.PatientKg != 70 {
		t.Errorf("PatientKg = %d, want 70", r.PatientKg)
	}
	if r.Samples != 3 {
		t.Errorf("Samples = %d, want 3 (includes the terminator row)", r.Samples)
	}
}

func TestOpenFileMissing(t *testing.T) {
	r := Open((*logging.TestLogger)(t), filepath.Join(t.TempDir(), "does-not-exist.ecg"))
	if !r.Errs.Has(FileMissing) {
		t.Errorf("Errs = %s, want FILE_MISSING set", r.Errs)
	}
}

func TestExportCSV(t *testing.T) {
	path := buildDeviceFile(t)
	r := Open((*logging.TestLogger)(t), path)
	if r.Errs != 0 {
		t.Fatalf("unexpected header errors: %s", r.Errs)
	}

	out := filepath.Join(t.TempDir(), "out.csv")
	opts := CSVOptions{XOffset: 0, Columns: 6}
	if err := r.ExportCSV(out, opts); err != nil {
		t.Fatalf("ExportCSV: %v", err)
	}

	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("could not read exported CSV: %v", err)
	}
	want := "60,100,40,-80,10,70\n60,110,50,-85,5,80\n"
	if string(got) != want {
		t.Errorf("CSV output = %q, want %q", got, want)
	}

	// The terminator row arrives before the file-size-derived sample
	// count is exhausted, which the original tool always flags.
	if !r.Errs.Has(UnexpectedEOD) {
		t.Errorf("Errs = %s, want UNEXPECTED_EOD set after a terminator row", r.Errs)
	}
}

func TestExportCSVRefusesExistingOutput(t *testing.T) {
	path := buildDeviceFile(t)
	r := Open((*logging.TestLogger)(t), path)

	out := filepath.Join(t.TempDir(), "out.csv")
	if err := os.WriteFile(out, []byte("existing"), 0644); err != nil {
		t.Fatal(err)
	}

	err := r.ExportCSV(out, DefaultCSVOptions())
	if err == nil {
		t.Fatal("expected an error exporting over an existing file without Overwrite")
	}
	if !r.Errs.Has(OutputExists) {
		t.Errorf("Errs = %s, want OUTPUT_EXISTS set", r.Errs)
	}
}

func TestOpenBadTimestampFallsBackToModTime(t *testing.T) {
	path := buildDeviceFile(t)
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	copy(raw[10:30], make([]byte, 20)) // blank out the timestamp field
	if err := os.WriteFile(path, raw, 0644); err != nil {
		t.Fatal(err)
	}

	r := Open((*logging.TestLogger)(t), path)
	if !r.Errs.Has(TimestampBad) {
		t.Errorf("Errs = %s, want TIMESTAMP_BAD set", r.Errs)
	}
	if r.Timestamp.IsZero() {
		t.Error("Timestamp should fall back to the file's mtime, not stay zero")
	}
}
