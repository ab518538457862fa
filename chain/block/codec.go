// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package block

import (
	"errors"
	"fmt"

	"github.com/ava-labs/mockchain/chain/leadership"
	"github.com/ava-labs/mockchain/chain/vrf"
	"github.com/ava-labs/mockchain/ids"
	"github.com/ava-labs/mockchain/utils/wrappers"
)

// Header wire layout, all integers big-endian:
//
//	+-------------------+----------+
//	| size              : 2 bytes  | covers every byte after itself
//	+-------------------+----------+
//	| version           : 2 bytes  |
//	| content size      : 4 bytes  |
//	| epoch             : 4 bytes  |
//	| slot              : 4 bytes  |
//	| content hash      : 32 bytes |
//	| parent hash       : 32 bytes |
//	+-------------------+----------+
//	| proof section, by version:   |
//	|   none          : 0 bytes    |
//	|   bft           : 96 bytes   | leader id + signature
//	|   genesis praos : 224 bytes  | vrf key + vrf proof + kes key + kes sig
//	+-------------------+----------+
const (
	commonLen = wrappers.ShortLen + // version
		wrappers.IntLen + // content size
		2*wrappers.IntLen + // date
		2*ids.IDLen // content + parent hashes

	bftProofLen = leadership.LeaderIDLen + leadership.SignatureLen

	genesisPraosProofLen = vrf.PublicKeyLen + vrf.ProofLen + bftProofLen

	// maxHeaderLen is the size of the largest constructible header; the
	// packer uses it to bound allocation.
	maxHeaderLen = wrappers.ShortLen + commonLen + genesisPraosProofLen
)

var ErrVersionMismatch = errors.New("proof variant does not match block version")

// Bytes returns the canonical byte representation of [h]: the 2-byte size
// prefix, the Common fields, then the version-specific proof section. The
// size is packed through a hole: reserved up front, backfilled once the rest
// of the header has been written.
func (h *Header) Bytes() ([]byte, error) {
	if h.Proof == nil || h.Proof.Version() != h.Common.Version {
		return nil, fmt.Errorf("%w: version %s with proof %T",
			ErrVersionMismatch, h.Common.Version, h.Proof)
	}

	p := wrappers.Packer{MaxSize: maxHeaderLen}
	sizeHole := p.PackShortHole()

	packCommon(&p, &h.Common)

	switch proof := h.Proof.(type) {
	case *NoProof:
	case *BftProof:
		p.PackFixedBytes(proof.LeaderID.Bytes())
		p.PackFixedBytes(proof.Signature.Bytes())
	case *GenesisPraosProof:
		p.PackFixedBytes(proof.VRFPublicKey.Bytes())
		p.PackFixedBytes(proof.VRFProof.Bytes())
		p.PackFixedBytes(proof.KESPublicKey.Bytes())
		p.PackFixedBytes(proof.KESProof.Bytes())
	}

	p.FillShortHole(sizeHole, uint16(len(p.Bytes)-wrappers.ShortLen))
	return p.Bytes, p.Err
}

// bytes returns the serialized Common fields: exactly the byte range that is
// signed or proven.
func (c *Common) bytes() []byte {
	p := wrappers.Packer{MaxSize: commonLen}
	packCommon(&p, c)
	return p.Bytes
}

func packCommon(p *wrappers.Packer, c *Common) {
	p.PackShort(uint16(c.Version))
	p.PackInt(c.ContentSize)
	p.PackInt(c.Date.Epoch)
	p.PackInt(c.Date.Slot)
	p.PackFixedBytes(c.ContentHash.Bytes())
	p.PackFixedBytes(c.ParentHash.Bytes())
}

func unpackCommon(p *wrappers.Packer, c *Common) {
	c.Version = BlockVersion(p.UnpackShort())
	c.ContentSize = p.UnpackInt()
	c.Date.Epoch = p.UnpackInt()
	c.Date.Slot = p.UnpackInt()
	copy(c.ContentHash[:], p.UnpackFixedBytes(ids.IDLen))
	copy(c.ParentHash[:], p.UnpackFixedBytes(ids.IDLen))
}
