// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package block

import (
	"github.com/ava-labs/mockchain/chain/leadership"
	"github.com/ava-labs/mockchain/chain/vrf"
)

var (
	_ Proof = (*NoProof)(nil)
	_ Proof = (*BftProof)(nil)
	_ Proof = (*GenesisPraosProof)(nil)
)

// Proof is the consensus-scheme-specific payload that authenticates a
// header's Common fields. The set of implementations is closed: the codec and
// the verifier both switch exhaustively over the three types in this package,
// and the variant must match Common's block version.
type Proof interface {
	// Version returns the block version this proof is legal with.
	Version() BlockVersion

	// Leader returns the claimed producer of the header, if the scheme names
	// one. The claim is independent of verification; the ledger layer checks
	// it against the leader schedule.
	Leader() (leadership.LeaderID, bool)

	isProof()
}

// NoProof carries no authentication. It is only legal with VersionNone.
type NoProof struct{}

func (*NoProof) Version() BlockVersion {
	return VersionNone
}

func (*NoProof) Leader() (leadership.LeaderID, bool) {
	return leadership.EmptyLeaderID, false
}

func (*NoProof) isProof() {}

// BftProof authenticates a header with a single signature over the serialized
// Common fields, verifiable with the leader's embedded public key.
type BftProof struct {
	LeaderID  leadership.LeaderID
	Signature leadership.Signature
}

func (*BftProof) Version() BlockVersion {
	return VersionBFT
}

func (p *BftProof) Leader() (leadership.LeaderID, bool) {
	return p.LeaderID, true
}

func (*BftProof) isProof() {}

// GenesisPraosProof attests eligibility to lead the slot with a VRF public
// key and proven output, and authenticates the Common fields with a
// key-evolving signature the same way a BFT signature does.
type GenesisPraosProof struct {
	VRFPublicKey vrf.PublicKey
	VRFProof     vrf.Proof
	KESPublicKey leadership.LeaderID
	KESProof     leadership.Signature
}

func (*GenesisPraosProof) Version() BlockVersion {
	return VersionGenesisPraos
}

// Leader returns the producer identity derived from the KES public key.
func (p *GenesisPraosProof) Leader() (leadership.LeaderID, bool) {
	return p.KESPublicKey, true
}

func (*GenesisPraosProof) isProof() {}
