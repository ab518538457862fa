// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package date

import "fmt"

// Date locates a block on the chain's time axis: the epoch it belongs to and
// the slot within that epoch.
type Date struct {
	Epoch uint32
	Slot  uint32
}

// Compare returns a negative number, 0, or positive number if [d] is before,
// equal to, or after [other]. Dates order by epoch first, then slot.
func (d Date) Compare(other Date) int {
	switch {
	case d.Epoch < other.Epoch:
		return -1
	case d.Epoch > other.Epoch:
		return 1
	case d.Slot < other.Slot:
		return -1
	case d.Slot > other.Slot:
		return 1
	default:
		return 0
	}
}

func (d Date) Less(other Date) bool {
	return d.Compare(other) < 0
}

func (d Date) String() string {
	return fmt.Sprintf("%d.%d", d.Epoch, d.Slot)
}
