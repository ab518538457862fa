// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package block

import (
	"github.com/ava-labs/mockchain/chain/date"
	"github.com/ava-labs/mockchain/chain/leadership"
	"github.com/ava-labs/mockchain/chain/vrf"
	"github.com/ava-labs/mockchain/ids"
	"github.com/ava-labs/mockchain/utils/crypto"
)

// BuildUnsigned returns a header carrying no proof. The chain's genesis block
// is the usual case.
func BuildUnsigned(
	blockDate date.Date,
	contentSize uint32,
	contentHash ids.ID,
	parentHash ids.ID,
) *Header {
	return &Header{
		Common: Common{
			Version:     VersionNone,
			Date:        blockDate,
			ContentSize: contentSize,
			ContentHash: contentHash,
			ParentHash:  parentHash,
		},
		Proof: &NoProof{},
	}
}

// BuildBFT signs the serialized Common fields with [key] and attaches the
// resulting BFT proof. The leader id embeds [key]'s public key, so the
// returned header verifies under it.
func BuildBFT(
	blockDate date.Date,
	contentSize uint32,
	contentHash ids.ID,
	parentHash ids.ID,
	key crypto.PrivateKey,
) (*Header, error) {
	common := Common{
		Version:     VersionBFT,
		Date:        blockDate,
		ContentSize: contentSize,
		ContentHash: contentHash,
		ParentHash:  parentHash,
	}

	leaderID, err := leadership.LeaderIDFromKey(key.PublicKey())
	if err != nil {
		return nil, err
	}
	sig, err := leadership.Sign(key, common.bytes())
	if err != nil {
		return nil, err
	}

	return &Header{
		Common: common,
		Proof: &BftProof{
			LeaderID:  leaderID,
			Signature: sig,
		},
	}, nil
}

// BuildGenesisPraos attaches the producer's VRF eligibility material and
// signs the serialized Common fields with the current key of the key-evolving
// scheme.
func BuildGenesisPraos(
	blockDate date.Date,
	contentSize uint32,
	contentHash ids.ID,
	parentHash ids.ID,
	vrfPublicKey vrf.PublicKey,
	vrfProof vrf.Proof,
	kesKey crypto.PrivateKey,
) (*Header, error) {
	common := Common{
		Version:     VersionGenesisPraos,
		Date:        blockDate,
		ContentSize: contentSize,
		ContentHash: contentHash,
		ParentHash:  parentHash,
	}

	kesPublicKey, err := leadership.LeaderIDFromKey(kesKey.PublicKey())
	if err != nil {
		return nil, err
	}
	kesProof, err := leadership.Sign(kesKey, common.bytes())
	if err != nil {
		return nil, err
	}

	return &Header{
		Common: common,
		Proof: &GenesisPraosProof{
			VRFPublicKey: vrfPublicKey,
			VRFProof:     vrfProof,
			KESPublicKey: kesPublicKey,
			KESProof:     kesProof,
		},
	}, nil
}
