/*
NAME
  crc.go

DESCRIPTION
  crc.go implements the CRC-HQX checksum (CRC-CCITT, poly 0x1021, initial
  value 0xFFFF, no reflection, no final XOR) used throughout SCP-ECG for
  both section and record checksums.

AUTHOR
  Niccolo Rigacci <niccolo@rigacci.org> (original ecg_contec.py)

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package scp implements the subset of the SCP-ECG (ANSI/AAMI EC71:2001)
// binary record format needed to build and inspect ECG90A exports: section
// headers, the pointer table, tagged patient data, lead definitions and
// rhythm data, along with their nested CRC checksums.
package scp

// crcTable is precomputed for polynomial 0x1021 processed MSB-first, the
// table-driven equivalent of the bit-by-bit CRC-CCITT update.
var crcTable = makeCRCTable(0x1021)

func makeCRCTable(poly uint16) *[256]uint16 {
	var t [256]uint16
	for i := range t {
		crc := uint16(i) << 8
		for j := 0; j < 8; j++ {
			if crc&0x8000 != 0 {
				crc = (crc << 1) ^ poly
			} else {
				crc <<= 1
			}
		}
		t[i] = crc
	}
	return &t
}

// CRCHQX computes the CRC-HQX checksum of b, starting from seed. Callers
// that want the standard SCP-ECG checksum pass seed = 0xFFFF.
//
// CRCHQX("123456789", 0xFFFF) == 0x29B1, the standard CRC-CCITT-FALSE test
// vector.
func CRCHQX(b []byte, seed uint16) uint16 {
	crc := seed
	for _, v := range b {
		crc = (crc << 8) ^ crcTable[byte(crc>>8)^v]
	}
	return crc
}
