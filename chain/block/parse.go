// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package block

import (
	"fmt"

	"github.com/ava-labs/mockchain/utils/wrappers"
)

// Parse reconstructs a header from its canonical byte representation. The
// 2-byte size prefix is consumed but not validated against the buffer;
// framing is the caller's responsibility. A header is either fully decoded or
// not decoded at all: any failure surfaces immediately and no partial result
// is returned.
func Parse(bytes []byte) (*Header, error) {
	p := wrappers.Packer{Bytes: bytes}

	_ = p.UnpackShort() // size prefix, framing only

	var common Common
	unpackCommon(&p, &common)
	if p.Errored() {
		return nil, p.Err
	}

	var proof Proof
	switch common.Version {
	case VersionNone:
		proof = &NoProof{}
	case VersionBFT:
		bft := &BftProof{}
		copy(bft.LeaderID[:], p.UnpackFixedBytes(len(bft.LeaderID)))
		copy(bft.Signature[:], p.UnpackFixedBytes(len(bft.Signature)))
		proof = bft
	case VersionGenesisPraos:
		praos := &GenesisPraosProof{}
		copy(praos.VRFPublicKey[:], p.UnpackFixedBytes(len(praos.VRFPublicKey)))
		copy(praos.VRFProof[:], p.UnpackFixedBytes(len(praos.VRFProof)))
		copy(praos.KESPublicKey[:], p.UnpackFixedBytes(len(praos.KESPublicKey)))
		copy(praos.KESProof[:], p.UnpackFixedBytes(len(praos.KESProof)))
		proof = praos
	default:
		// Guessing a layout for an unknown version would silently corrupt
		// chain data, so no bytes past Common are consumed.
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBlockVersion, uint16(common.Version))
	}
	if p.Errored() {
		return nil, p.Err
	}

	return &Header{
		Common: common,
		Proof:  proof,
	}, nil
}
