/*
NAME
  crc_test.go

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package scp

import "testing"

func TestCRCHQX(t *testing.T) {
	tests := []struct {
		name string
		in   string
		seed uint16
		want uint16
	}{
		{"standard CRC-CCITT-FALSE vector", "123456789", 0xFFFF, 0x29B1},
		{"empty input returns seed", "", 0xFFFF, 0xFFFF},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CRCHQX([]byte(tt.in), tt.seed)
			if got != tt.want {
				t.Errorf("CRCHQX(%q, 0x%04X) = 0x%04X, want 0x%04X", tt.in, tt.seed, got, tt.want)
			}
		})
	}
}
