// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package block

import (
	"errors"
	"fmt"
)

// BlockVersion selects the consensus scheme that authenticates a header. It
// is pure dispatch: the producer asserts it and the reader trusts the framing
// it implies, so a value outside the reserved set makes the rest of the bytes
// unparseable.
type BlockVersion uint16

const (
	// VersionNone is used when no consensus layer authenticates the block,
	// e.g. the chain's genesis block.
	VersionNone BlockVersion = iota
	// VersionBFT authenticates with a single signature from the designated
	// leader.
	VersionBFT
	// VersionGenesisPraos combines VRF leader eligibility with a key-evolving
	// signature.
	VersionGenesisPraos
)

var ErrUnsupportedBlockVersion = errors.New("unsupported block version")

func (v BlockVersion) String() string {
	switch v {
	case VersionNone:
		return "none"
	case VersionBFT:
		return "bft"
	case VersionGenesisPraos:
		return "genesis-praos"
	default:
		return fmt.Sprintf("unknown-%d", uint16(v))
	}
}
