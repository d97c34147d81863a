/*
NAME
  csv.go

DESCRIPTION
  csv.go adapts a Config's CSV-related fields into the ecg90a device
  package's CSVOptions shape.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package ecgconfig

import "github.com/rigacci/ecg90a/device/ecg90a"

// ToCSVOptions builds the CSVOptions a Recording.ExportCSV call needs
// from c's formatting fields.
func ToCSVOptions(c Config) ecg90a.CSVOptions {
	return ecg90a.CSVOptions{
		Overwrite:   c.Overwrite,
		AsMillivolt: c.AsMillivolt,
		NoneAsZero:  c.NoneAsZero,
		XOffset:     c.XOffset,
		Columns:     c.Columns,
	}
}
