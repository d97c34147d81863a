/*
NAME
  errors.go

DESCRIPTION
  errors.go lists the sentinel errors Config.Validate can return.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package ecgconfig

import "errors"

var (
	errInputPathRequired = errors.New("ecgconfig: input path is required")
	errColumnsInvalid    = errors.New("ecgconfig: columns must be positive")
	errSampleBitsInvalid = errors.New("ecgconfig: sample bits must be a multiple of 8")
)
