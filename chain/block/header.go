// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package block

import (
	"github.com/ava-labs/mockchain/chain/date"
	"github.com/ava-labs/mockchain/chain/leadership"
	"github.com/ava-labs/mockchain/ids"
	"github.com/ava-labs/mockchain/utils/hashing"
	"github.com/ava-labs/mockchain/utils/wrappers"
)

// Common is the consensus-independent prefix of a header, shared across all
// consensus schemes. It is exactly the byte range covered by the header's
// proof; no other header bytes participate in authentication.
type Common struct {
	Version BlockVersion `json:"version"`
	Date    date.Date    `json:"date"`
	// ContentSize is the declared size in bytes of the block body this header
	// describes. Checking it against the actual body is a ledger-layer
	// concern.
	ContentSize uint32 `json:"contentSize"`
	ContentHash ids.ID `json:"contentHash"`
	ParentHash  ids.ID `json:"parentHash"`
}

// Header is the authenticated metadata record identifying and ordering one
// block: where the block sits on the chain (date and parent hash) and the
// proof that the appropriate producer made it. Headers are plain values;
// every derived property is recomputed from the fields, so a copy can never
// observe stale state.
type Header struct {
	Common Common `json:"common"`
	Proof  Proof  `json:"proof"`
}

func (h *Header) Version() BlockVersion {
	return h.Common.Version
}

func (h *Header) Date() date.Date {
	return h.Common.Date
}

func (h *Header) ContentSize() uint32 {
	return h.Common.ContentSize
}

func (h *Header) ContentHash() ids.ID {
	return h.Common.ContentHash
}

func (h *Header) ParentHash() ids.ID {
	return h.Common.ParentHash
}

// Leader returns the claimed producer of this header, independent of whether
// the proof verifies.
func (h *Header) Leader() (leadership.LeaderID, bool) {
	return h.Proof.Leader()
}

// ID returns the header's content-addressed identity: the digest of its
// serialized bytes with the size prefix stripped. The prefix is a framing
// artifact whose value is a function of the remaining bytes, so identity must
// not depend on it.
func (h *Header) ID() (ids.ID, error) {
	b, err := h.Bytes()
	if err != nil {
		return ids.Empty, err
	}
	return ids.ID(hashing.ComputeHash256Array(b[wrappers.ShortLen:])), nil
}

// VerifyProof returns whether the proof authenticates the header's Common
// fields. A false result is not an error: the header may be well formed yet
// signed with the wrong key or over altered content.
func (h *Header) VerifyProof() bool {
	commonBytes := h.Common.bytes()
	switch proof := h.Proof.(type) {
	case *NoProof:
		// Headers with no consensus layer are trivially accepted here; higher
		// layers may apply additional rules.
		return true
	case *BftProof:
		return proof.LeaderID.Verify(commonBytes, proof.Signature)
	case *GenesisPraosProof:
		// VRF eligibility is not checked: it needs the epoch nonce and stake
		// distribution, which live outside the header.
		return proof.KESPublicKey.Verify(commonBytes, proof.KESProof)
	default:
		return false
	}
}
